package auth

import (
	"context"

	"github.com/google/uuid"
)

type clientIDKey struct{}

func ContextWithClientID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

func ClientIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(clientIDKey{}).(uuid.UUID)
	return id, ok
}
