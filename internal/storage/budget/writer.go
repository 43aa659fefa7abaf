package budget

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/ledger-server/internal/storage/query"
)

var _ IBudgetWriter = (*Writer)(nil)

type Writer struct {
	tx bob.Tx
	Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx: tx,
		Reader: Reader{
			exec: tx,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Budget, error) {
	return query.One[Budget](ctx, w.tx, query.SelectByID(tableName, id, sm.ForUpdate()), entityName, id)
}

func (w *Writer) Insert(ctx context.Context, create *BudgetCreate) (*Budget, error) {
	q := psql.Insert(
		im.Into(tableName, "user_id", "category_id", "amount", "start_date", "end_date"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.CategoryID),
			psql.Arg(create.Amount),
			psql.Arg(create.StartDate.UTC()),
			psql.Arg(create.EndDate.UTC()),
		),
		im.Returning("*"),
	)
	return query.One[Budget](ctx, w.tx, q, entityName, 0)
}

func (w *Writer) Update(ctx context.Context, id int64, update *BudgetUpdate) (*Budget, error) {
	sets := []bob.Mod[*dialect.UpdateQuery]{query.Touch()}
	if v, ok := update.CategoryID.Get(); ok {
		sets = append(sets, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		sets = append(sets, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.StartDate.Get(); ok {
		sets = append(sets, um.SetCol("start_date").ToArg(v.UTC()))
	}
	if v, ok := update.EndDate.Get(); ok {
		sets = append(sets, um.SetCol("end_date").ToArg(v.UTC()))
	}
	return query.One[Budget](ctx, w.tx, query.UpdateByID(tableName, id, sets...), entityName, id)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	return query.DeleteByID(ctx, w.tx, tableName, entityName, id)
}
