// Package toast provides the notification queue behind toast components.
//
// A Provider holds the toasts of one page, newest first, capped at
// MaxToasts. Each toast that is not Sticky schedules its own dismissal
// (DefaultDuration when Duration is zero); dismissal marks the toast Dismissing so the view can play an
// exit animation, and the toast is removed once the exit delay elapses.
// Remove and Clear skip the animation and cancel pending timers.
//
// # Providing
//
// The provider travels through a context.Context:
//
//	p := toast.NewProvider(toast.WithMaxToasts(3), toast.WithPosition(toast.BottomRight))
//	ctx = toast.NewContext(ctx, p)
//
// # Raising toasts
//
// In handlers:
//
//	func DeleteProject(ctx context.Context, id int) error {
//	    if err := db.Projects.Delete(id); err != nil {
//	        toast.Error(ctx, "Failed to delete project")
//	        return err
//	    }
//
//	    toast.Success(ctx, "Project deleted")
//	    return nil
//	}
//
// Use and the helpers panic when the context carries no provider.
package toast
