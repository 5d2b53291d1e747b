package ports

import "context"

// LocalStorage is a string-keyed blob store with browser local-storage
// semantics: Set overwrites, Delete of a missing key is not an error, and Get
// reports absence with ok=false.
type LocalStorage interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
