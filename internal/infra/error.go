package infra

import (
	"errors"
	"log/slog"

	"cinema-checkout/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by every infrastructure adapter, remote or in-memory.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Infrastructure error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

// NewError builds an expected, non-exceptional error without logging it.
func NewError(kind ErrorKind, msg string) error {
	return Error{Kind: kind, msg: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	// Authority client
	KindUnreachable ErrorKind = "UNREACHABLE"
	KindBadStatus   ErrorKind = "BAD_STATUS"
	KindBadBody     ErrorKind = "BAD_BODY"

	// In-memory store
	KindNotFound ErrorKind = "NOT_FOUND"
	KindConflict ErrorKind = "CONFLICT"
)
