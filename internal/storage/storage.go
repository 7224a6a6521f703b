// Package storage defines the key/value persistence port used for the client
// session. The interface hides the concrete store so auth logic stays portable
// across platforms (embedded sqlite here, could be a file or OS keychain).
package storage

import "context"

// Storage is a small persistent key/value port.
//
// Contract:
//   - Get returns (nil, nil) for an absent key.
//   - Set overwrites an existing value.
//   - Clear wipes every key.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
