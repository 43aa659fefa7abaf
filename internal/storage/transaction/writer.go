package transaction

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

var _ ITransactionWriter = (*Writer)(nil)

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

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Transaction, error) {
	return query.One[Transaction](ctx, w.tx, query.SelectByID(tableName, id, sm.ForUpdate()), entityName, id)
}

// Insert stores a transaction. It never touches the account balance.
func (w *Writer) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	columns := []string{"user_id", "account_id", "category_id", "amount", "description", "type"}
	values := []bob.Expression{
		psql.Arg(create.UserID),
		psql.Arg(create.AccountID),
		psql.Arg(create.CategoryID),
		psql.Arg(create.Amount),
		psql.Arg(create.Description),
		psql.Arg(int16(create.Type)),
	}
	if !create.TransactionDate.IsZero() {
		columns = append(columns, "transaction_date")
		values = append(values, psql.Arg(create.TransactionDate.UTC()))
	}

	q := psql.Insert(
		im.Into(tableName, columns...),
		im.Values(values...),
		im.Returning("*"),
	)
	return query.One[Transaction](ctx, w.tx, q, entityName, 0)
}

func (w *Writer) Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error) {
	sets := []bob.Mod[*dialect.UpdateQuery]{query.Touch()}
	if v, ok := update.AccountID.Get(); ok {
		sets = append(sets, um.SetCol("account_id").ToArg(v))
	}
	if v, ok := update.CategoryID.Get(); ok {
		sets = append(sets, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		sets = append(sets, um.SetCol("amount").ToArg(v))
	}
	if !update.Description.IsUnset() {
		sets = append(sets, um.SetCol("description").ToArg(update.Description.Ptr()))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		sets = append(sets, um.SetCol("transaction_date").ToArg(v.UTC()))
	}
	if v, ok := update.Type.Get(); ok {
		sets = append(sets, um.SetCol("type").ToArg(int16(v)))
	}
	return query.One[Transaction](ctx, w.tx, query.UpdateByID(tableName, id, sets...), entityName, id)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	return query.DeleteByID(ctx, w.tx, tableName, entityName, id)
}
