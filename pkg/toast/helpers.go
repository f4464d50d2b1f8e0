package toast

import "context"

// Show queues a toast with the given variant and message on the provider
// in ctx and returns its ID. It panics like Use when ctx has no provider.
func Show(ctx context.Context, variant Variant, message string) string {
	return Use(ctx).Add(Toast{
		Description: message,
		Variant:     variant,
		Duration:    DefaultDuration,
	})
}

// Success shows a success toast.
//
//	toast.Success(ctx, "Changes saved!")
func Success(ctx context.Context, message string) string {
	return Show(ctx, VariantSuccess, message)
}

// Error shows a destructive toast.
//
//	toast.Error(ctx, "Failed to delete item")
func Error(ctx context.Context, message string) string {
	return Show(ctx, VariantDestructive, message)
}

// Warning shows a warning toast.
//
//	toast.Warning(ctx, "This action cannot be undone")
func Warning(ctx context.Context, message string) string {
	return Show(ctx, VariantWarning, message)
}

// Info shows an info toast.
//
//	toast.Info(ctx, "New features available")
func Info(ctx context.Context, message string) string {
	return Show(ctx, VariantInfo, message)
}

// WithTitle shows a toast with a title and message.
//
//	toast.WithTitle(ctx, toast.VariantSuccess, "Settings", "Your changes have been saved.")
func WithTitle(ctx context.Context, variant Variant, title, message string) string {
	return Use(ctx).Add(Toast{
		Title:       title,
		Description: message,
		Variant:     variant,
		Duration:    DefaultDuration,
	})
}

// WithAction shows a toast with an action button.
//
//	toast.WithAction(ctx, toast.VariantInfo, "Item archived", "Undo", restore)
func WithAction(ctx context.Context, variant Variant, message, label string, onClick func()) string {
	return Use(ctx).Add(Toast{
		Description: message,
		Variant:     variant,
		Duration:    DefaultDuration,
		Action:      &Action{Label: label, OnClick: onClick},
	})
}
