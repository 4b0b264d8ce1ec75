package graph

import (
	"context"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
)

type ctxKey struct{}

// WithIdentity attaches the verified request identity to the context.
func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// IdentityFromContext returns the caller's identity, or nil for anonymous
// requests. No resolver currently requires one; operations that want to
// enforce auth check this themselves.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	id, ok := ctx.Value(ctxKey{}).(*domain.Identity)
	if !ok {
		return nil
	}
	return id
}
