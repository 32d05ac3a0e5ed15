package hackblock

import (
	"encoding/json"
	"fmt"
)

// Maybe holds a value that may not be set. The zero value is unset.
// It replaces the "NOTSET" magic numbers used for charge groups
// and coordinates in residue libraries.
type Maybe[T any] struct {
	val T
	ok  bool
}

// Some returns a Maybe set to v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{val: v, ok: true}
}

// Get returns the value and whether it is set.
func (M Maybe[T]) Get() (T, bool) {
	return M.val, M.ok
}

// IsSet returns true if the value has been set.
func (M Maybe[T]) IsSet() bool {
	return M.ok
}

// Or returns the value if set, def otherwise.
func (M Maybe[T]) Or(def T) T {
	if M.ok {
		return M.val
	}
	return def
}

// String returns the value formatted with %v, or "-" if unset.
func (M Maybe[T]) String() string {
	if !M.ok {
		return "-"
	}
	return fmt.Sprintf("%v", M.val)
}

// MarshalJSON encodes an unset value as null.
func (M Maybe[T]) MarshalJSON() ([]byte, error) {
	if !M.ok {
		return []byte("null"), nil
	}
	return json.Marshal(M.val)
}

func (M *Maybe[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		var zero T
		M.val, M.ok = zero, false
		return nil
	}
	if err := json.Unmarshal(b, &M.val); err != nil {
		return err
	}
	M.ok = true
	return nil
}
