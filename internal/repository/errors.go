package repository

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification. Every *Error unwraps to the
// sentinel matching its Kind, so errors.Is(err, ErrNotFound) works on
// wrapped repository failures.
var (
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// ErrorKind is a coarse-grained categorization for repository errors.
type ErrorKind string

const (
	KindDuplicateKey    ErrorKind = "duplicate_key"
	KindNotFound        ErrorKind = "not_found"
	KindInvalidQuantity ErrorKind = "invalid_quantity"
)

// Error is the single error type returned by the repositories.
type Error struct {
	Op   string
	Kind ErrorKind
	ID   int
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case KindDuplicateKey:
		return ErrDuplicateKey
	case KindNotFound:
		return ErrNotFound
	case KindInvalidQuantity:
		return ErrInvalidQuantity
	default:
		return nil
	}
}

// IsKind reports whether err is a repository *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

func duplicateKey(op string, id int) error {
	return &Error{Op: op, Kind: KindDuplicateKey, ID: id, Msg: fmt.Sprintf("Item with ID %d already exists.", id)}
}

func notFound(op string, id int) error {
	return &Error{Op: op, Kind: KindNotFound, ID: id, Msg: fmt.Sprintf("Item with ID %d not found.", id)}
}

func invalidQuantity(op string, id int) error {
	return &Error{Op: op, Kind: KindInvalidQuantity, ID: id, Msg: "Quantity cannot be negative."}
}
