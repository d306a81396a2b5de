// Package kvstore is the per-client key-value state of Askify: the server
// side of what a browser keeps in local storage (the session user, the
// theme preference, notification read marks).
package kvstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Store holds string values by key and notifies subscribers of changes.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns the value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Subscribe delivers the new value of key after every Set, and "" after
	// every Delete, until cancel is called or ctx is done. Slow receivers
	// may miss intermediate values but always see a later one.
	Subscribe(ctx context.Context, key string) (updates <-chan string, cancel func(), err error)
	Close() error
}

var ErrUnknownDriver = errors.New("unknown store driver")

// Key namespaces name under a client scope.
func Key(scope, name string) string {
	return "client:" + scope + ":" + name
}

// GetJSON decodes the value at key into v. It reports false when the key
// is missing.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decoding %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return s.Set(ctx, key, string(raw))
}
