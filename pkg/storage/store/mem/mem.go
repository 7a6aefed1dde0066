// Package mem implements store.DB on top of a Go map guarded by a single mutex.
package mem

import (
	"sync"

	"github.com/korthochain/memkv/pkg/storage/store"
)

type memStore struct {
	mu sync.Mutex
	m  map[string]string
}

// New returns an empty store. The whole map sits behind one lock, so
// operations on unrelated keys still serialize.
func New() store.DB {
	return &memStore{m: make(map[string]string)}
}

func (db *memStore) Set(k, v string) {
	k, v = store.Clip(k), store.Clip(v)

	db.mu.Lock()
	defer db.mu.Unlock()
	db.m[k] = v
}

func (db *memStore) Get(k string) (string, error) {
	k = store.Clip(k)

	db.mu.Lock()
	defer db.mu.Unlock()
	v, ok := db.m[k]
	if !ok {
		return "", store.ErrNotExist
	}
	return v, nil
}

// Del removes k. Removing an absent key is not an error.
func (db *memStore) Del(k string) {
	k = store.Clip(k)

	db.mu.Lock()
	defer db.mu.Unlock()
	delete(db.m, k)
}

func (db *memStore) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.m)
}
