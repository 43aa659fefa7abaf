package transaction

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/carson-networks/ledger-server/internal/storage/query"
)

// Amounts are summed as numeric so totals are exact in decimal.
const totalsByCategorySQL = `
SELECT t.category_id, c.category, t.type,
       COUNT(*) AS count,
       COALESCE(SUM(t.amount::numeric), 0) AS total
FROM transactions t
JOIN categories c ON c.id = t.category_id
WHERE t.user_id = ?
GROUP BY t.category_id, c.category, t.type
ORDER BY t.category_id, t.type`

var _ ITransactionReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	return query.One[Transaction](ctx, r.exec, query.SelectByID(tableName, id), entityName, id)
}

// List returns transactions matching the filter ordered by id. Nil filter
// returns all.
func (r *Reader) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{sm.From(tableName)}
	limit, offset := 0, 0
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.AccountID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.From != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(filter.From.UTC()))))
		}
		if filter.To != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(filter.To.UTC()))))
		}
		limit, offset = filter.Limit, filter.Offset
	}
	queryMods = append(queryMods, query.Page(limit, offset)...)
	return query.All[Transaction](ctx, r.exec, psql.Select(queryMods...))
}

// TotalsByCategory groups a user's transactions by category and type.
func (r *Reader) TotalsByCategory(ctx context.Context, userID int64) ([]*CategoryTotal, error) {
	return query.All[CategoryTotal](ctx, r.exec, psql.RawQuery(totalsByCategorySQL, userID))
}
