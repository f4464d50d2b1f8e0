package toast

import (
	"context"

	"github.com/vango-dev/vangoui/internal/errors"
)

type providerKey struct{}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider carried by ctx.
func FromContext(ctx context.Context) (*Provider, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(providerKey{}).(*Provider)
	return p, ok && p != nil
}

// Use returns the provider carried by ctx. It panics with error E001 when
// there is none: raising toasts without a provider is a wiring mistake,
// not a runtime condition.
func Use(ctx context.Context) *Provider {
	p, ok := FromContext(ctx)
	if !ok {
		panic(errors.New("E001").
			WithSuggestion("Attach a provider with toast.NewContext(ctx, toast.NewProvider()) before rendering."))
	}
	return p
}
