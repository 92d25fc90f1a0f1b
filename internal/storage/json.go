package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// ErrorKind classifies JSON persistence failures.
type ErrorKind int

const (
	KindJSONParse ErrorKind = iota
	KindDecode
	KindEncode
)

// Error wraps a persistence failure with the offending key.
type Error struct {
	Kind ErrorKind
	Key  string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindJSONParse:
		return fmt.Sprintf("parse %q: %v", e.Key, e.Err)
	case KindDecode:
		return fmt.Sprintf("decode %q: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("encode %q: %v", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// GetJSON loads and decodes the value stored under key. An absent key returns
// found=false with no error; malformed or mistyped JSON returns an *Error.
func GetJSON[T any](ctx context.Context, s *Store, key string) (value T, found bool, err error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return value, false, err
	}
	if !json.Valid([]byte(raw)) {
		return value, false, &Error{Kind: KindJSONParse, Key: key, Err: fmt.Errorf("invalid JSON")}
	}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return value, false, &Error{Kind: KindDecode, Key: key, Err: err}
	}
	return value, true, nil
}

// SetJSON encodes value and stores it under key.
func SetJSON[T any](ctx context.Context, s *Store, key string, value T) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return &Error{Kind: KindEncode, Key: key, Err: err}
	}
	return s.Set(ctx, key, string(encoded))
}
