package contract

import "context"

// TokenRepository is the client-local durable storage for the opaque
// session token. Values are stored and returned verbatim; nothing here
// decodes or verifies them.
type TokenRepository interface {
	Get(ctx context.Context, key string) (token string, found bool, err error)
	Save(ctx context.Context, key, token string) error
	Delete(ctx context.Context, key string) error
}
