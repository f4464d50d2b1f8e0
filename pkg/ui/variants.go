package ui

// Variant is a named visual style shared by several components. Each
// component accepts the subset listed in its own lookup table and falls
// back to its default for the rest.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantPrimary     Variant = "primary"
	VariantSecondary   Variant = "secondary"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
	VariantDestructive Variant = "destructive"
	VariantLink        Variant = "link"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantInfo        Variant = "info"
	VariantPills       Variant = "pills"
	VariantUnderline   Variant = "underline"
	VariantBordered    Variant = "bordered"
	VariantFloating    Variant = "floating"
)

// Size is a component size step.
type Size string

const (
	SizeXS   Size = "xs"
	SizeSm   Size = "sm"
	SizeMd   Size = "md"
	SizeLg   Size = "lg"
	SizeXL   Size = "xl"
	SizeIcon Size = "icon"
)

// Color is the accent color of form controls.
type Color string

const (
	ColorPrimary     Color = "primary"
	ColorSuccess     Color = "success"
	ColorWarning     Color = "warning"
	ColorDestructive Color = "destructive"
)

var colorClasses = map[Color]string{
	ColorPrimary:     "bg-primary",
	ColorSuccess:     "bg-success",
	ColorWarning:     "bg-warning",
	ColorDestructive: "bg-destructive",
}

func colorClass(c Color) string {
	if cls, ok := colorClasses[c]; ok {
		return cls
	}
	return colorClasses[ColorPrimary]
}

// Orientation lays a component out horizontally or vertically.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// lookup returns table[key], or table[fallback] when key is unknown.
func lookup[K comparable](table map[K]string, key, fallback K) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}
