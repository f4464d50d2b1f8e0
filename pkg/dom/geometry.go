package dom

// Rect is a measured element box in viewport coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Size returns the dimensions of the rect.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsZero reports whether the rect has no area. Elements that are not
// rendered measure as zero.
func (r Rect) IsZero() bool { return r.Width == 0 && r.Height == 0 }

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}
