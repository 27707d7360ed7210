// Package apperrors maps provider- and driver-specific failures onto a
// closed set of error kinds at the boundary, so callers switch on a kind
// instead of poking at duck-typed error codes.
package apperrors

import (
	"context"
	"errors"
	"net/http"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Kind int

const (
	Unknown Kind = iota
	InvalidCredential
	UserNotFound
	PermissionDenied
	Network
)

func (k Kind) String() string {
	switch k {
	case InvalidCredential:
		return "invalid_credential"
	case UserNotFound:
		return "user_not_found"
	case PermissionDenied:
		return "permission_denied"
	case Network:
		return "network"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Kind.String() + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Err: pkgerrors.Wrap(err, msg)}
}

// KindOf classifies an arbitrary error. Already-classified errors keep
// their kind; driver errors are mapped here and nowhere else.
func KindOf(err error) Kind {
	if err == nil {
		return Unknown
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return UserNotFound
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return InvalidCredential
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return Network
	case mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return Network
	default:
		return Unknown
	}
}

// HTTPStatus picks the response code a handler should surface for a kind.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidCredential:
		return http.StatusUnauthorized
	case UserNotFound:
		return http.StatusNotFound
	case PermissionDenied:
		return http.StatusForbidden
	case Network:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
