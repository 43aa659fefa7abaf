package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("get account: %w", NotFound("account", 7))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, "get account: account 7 not found", err.Error())

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "account", nf.Entity)
	assert.Equal(t, int64(7), nf.ID)
}

func TestInvalid_NamesField(t *testing.T) {
	err := Invalid("end_date", "must not be before start_date")

	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, "invalid end_date: must not be before start_date", err.Error())
}

func TestConstraintError_Message(t *testing.T) {
	cause := errors.New("pq: duplicate key value")
	err := &ConstraintError{
		Kind:       ConstraintUnique,
		Constraint: "uq_users_email",
		Field:      "email",
		Err:        cause,
	}

	assert.True(t, errors.Is(err, ErrConstraint))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, `unique constraint "uq_users_email" violated on email`, err.Error())
}

func TestConstraintError_NoField(t *testing.T) {
	err := &ConstraintError{Kind: ConstraintForeignKey, Constraint: "fk_x"}
	assert.Equal(t, `foreign_key constraint "fk_x" violated`, err.Error())
}

func TestConfigError(t *testing.T) {
	cause := errors.New("relation \"budgets\" does not exist")
	err := &ConfigError{Reason: "schema check", Err: cause}

	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "configuration error: schema check")
	assert.Equal(t, "configuration error: bad port", (&ConfigError{Reason: "bad port"}).Error())
}
