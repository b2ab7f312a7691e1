package ports

import "context"

// PreferenceStore defines the contract for persisting user preferences across sessions
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Ping(ctx context.Context) error
	Close() error
}
