// Package store is the persistence layer: a key-value adapter holding
// JSON-encoded collections under fixed keys, modeled on the browser
// local-storage table it replaces. The Store is the sole point of contact
// with the underlying medium; every other package goes through it.
package store

import (
	"encoding/json"
	"fmt"
)

// Storage keys. The values under these keys are the external persisted
// format and must not change shape.
const (
	KeySessionUser      = "userData"
	KeyIsAdmin          = "isAdmin"
	KeyAdminLoggedIn    = "adminLoggedIn"
	KeyAdminCredentials = "adminCredentials"
	KeyAllUsers         = "allUsers"
	KeyAllAppointments  = "allAppointments"
)

// KV is the raw storage contract. Values are strings, like local storage.
// Set fully overwrites; Get reports absence with its second return.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// StorageError wraps any failure of the underlying medium or of decoding
// what it returned. It aborts the in-progress operation; there are no
// retries and no offline queue.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: key %q: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store adapts a KV into typed collection and scalar access. It performs
// no locking and gives no atomicity across two writes: a failure between
// related writes leaves them inconsistent, as in the source system.
type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// getJSON decodes the value at key into v. Returns false when the key is
// absent. A value that does not parse is a StorageError, not an empty
// result: reading empty past a corrupt decode would wipe the collection on
// the next write.
func (s *Store) getJSON(key string, v any) (bool, error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return false, &StorageError{Key: key, Err: err}
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, &StorageError{Key: key, Err: err}
	}
	return true, nil
}

func (s *Store) setJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &StorageError{Key: key, Err: err}
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) delete(key string) error {
	if err := s.kv.Delete(key); err != nil {
		return &StorageError{Key: key, Err: err}
	}
	return nil
}
