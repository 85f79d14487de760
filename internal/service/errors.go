package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrConflict: a user with the same email already exists.
	ErrConflict = errors.New("email already in use")
	// ErrNotFound: the user or post does not exist (or the id cannot name one).
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials: the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("password is not valid")
	// ErrForbidden: the caller is authenticated but does not own the post.
	ErrForbidden = errors.New("not authorized to modify this post")
	// ErrUnauthenticated: an operation that needs an identity was called without one.
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError lists rejected input fields keyed by their JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid data: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err is (or wraps) a *ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
