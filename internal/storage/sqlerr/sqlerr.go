// Package sqlerr turns driver errors into the apperr taxonomy so no storage
// detail reaches callers.
package sqlerr

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/carson-networks/ledger-server/internal/apperr"
)

const (
	codeNotNull    = "23502"
	codeForeignKey = "23503"
	codeUnique     = "23505"
	codeCheck      = "23514"
)

// Columns guarded by each named constraint of the schema.
var constraintFields = map[string]string{
	"uq_users_email":           "email",
	"uq_categories_category":   "category",
	"ck_categories_type":       "type",
	"ck_transactions_type":     "type",
	"ck_budgets_period":        "end_date",
	"fk_accounts_user":         "user_id",
	"fk_transactions_user":     "user_id",
	"fk_transactions_account":  "account_id",
	"fk_transactions_category": "category_id",
	"fk_budgets_user":          "user_id",
	"fk_budgets_category":      "category_id",
	"fk_notifications_user":    "user_id",
}

// Translate maps sql.ErrNoRows to a NotFoundError for entity/id and integrity
// violations to a ConstraintError. Other errors are returned unchanged.
func Translate(err error, entity string, id int64) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(entity, id)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	var kind apperr.ConstraintKind
	switch string(pqErr.Code) {
	case codeUnique:
		kind = apperr.ConstraintUnique
	case codeForeignKey:
		kind = apperr.ConstraintForeignKey
	case codeCheck:
		kind = apperr.ConstraintCheck
	case codeNotNull:
		kind = apperr.ConstraintNotNull
	default:
		return err
	}

	field := pqErr.Column
	if f, ok := constraintFields[pqErr.Constraint]; ok {
		field = f
	}

	return &apperr.ConstraintError{
		Kind:       kind,
		Constraint: pqErr.Constraint,
		Field:      field,
		Err:        err,
	}
}
