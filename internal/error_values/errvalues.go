package errorvalues

import "errors"

var (
	ErrNotFound        = errors.New("record doesn't exist")
	ErrDuplicateRecord = errors.New("duplicate record")
	ErrWrongPassword   = errors.New("wrong name or password")
	ErrInvalidToken    = errors.New("invalid token")
	ErrValidation      = errors.New("validation error")
	ErrNotAdmin        = errors.New("admin rights required")
)

const (
	EntityUser      = "user"
	EntityBook      = "book"
	EntityWord      = "word"
	EntityDailyPlan = "daily plan"
)

// NotFoundError tells which entity was missing. It matches ErrNotFound.
type NotFoundError struct {
	Entity string
}

func NotFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

func (e *NotFoundError) Error() string {
	return e.Entity + " doesn't exist"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// MissingEntity returns the entity name carried by err, if any.
func MissingEntity(err error) (string, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Entity, true
	}
	return "", false
}
