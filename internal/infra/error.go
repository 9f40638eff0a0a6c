package infra

import (
	"errors"

	"hotel-booking-engine/internal/pkg/errs"
	"hotel-booking-engine/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

// WrapRepoErr wraps a storage error. Without an explicit kind the kind is
// derived from the PostgreSQL error code. The result also carries the
// matching errs taxonomy mark so callers above the repository can branch on it.
func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := classify(err)
	if len(kinds) > 0 {
		kind = kinds[0]
	}

	var wrapped error
	if err != nil {
		wrapped = errs.Wrap(err, msg)
	}

	var out error = RepositoryError{Kind: kind, msg: msg, err: wrapped}
	if marker := taxonomyMark(kind); marker != nil {
		out = errs.Mark(out, marker)
	}
	return out
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	switch pgconv.PgErrorCode(err) {
	case pgUniqueViolation:
		return KindDuplicateKey
	case pgForeignKeyViolation:
		return KindForeignKeyViolated
	case pgExclusionViolation:
		return KindExclusionViolated
	default:
		return KindDBFailure
	}
}

func taxonomyMark(kind RepositoryErrorKind) error {
	switch kind {
	case KindNotFound:
		return errs.ErrNotFound
	case KindExclusionViolated:
		// the room-night exclusion constraint is the only one in the schema
		return errs.ErrAvailabilityConflict
	default:
		return nil
	}
}
