package account

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

var _ IAccountWriter = (*Writer)(nil)

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

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Account, error) {
	return query.One[Account](ctx, w.tx, query.SelectByID(tableName, id, sm.ForUpdate()), entityName, id)
}

func (w *Writer) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	columns := []string{"user_id", "name"}
	values := []bob.Expression{psql.Arg(create.UserID), psql.Arg(create.Name)}
	if balance, ok := create.Balance.Get(); ok {
		columns = append(columns, "balance")
		values = append(values, psql.Arg(balance))
	}

	q := psql.Insert(
		im.Into(tableName, columns...),
		im.Values(values...),
		im.Returning("*"),
	)
	return query.One[Account](ctx, w.tx, q, entityName, 0)
}

func (w *Writer) Update(ctx context.Context, id int64, update *AccountUpdate) (*Account, error) {
	sets := []bob.Mod[*dialect.UpdateQuery]{query.Touch()}
	if v, ok := update.Name.Get(); ok {
		sets = append(sets, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Balance.Get(); ok {
		sets = append(sets, um.SetCol("balance").ToArg(v))
	}
	return query.One[Account](ctx, w.tx, query.UpdateByID(tableName, id, sets...), entityName, id)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	return query.DeleteByID(ctx, w.tx, tableName, entityName, id)
}
