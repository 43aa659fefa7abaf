package user

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

var _ IUserWriter = (*Writer)(nil)

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

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*User, error) {
	return query.One[User](ctx, w.tx, query.SelectByID(tableName, id, sm.ForUpdate()), entityName, id)
}

func (w *Writer) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	q := psql.Insert(
		im.Into(tableName, "name", "email", "password", "is_active"),
		im.Values(
			psql.Arg(create.Name),
			psql.Arg(create.Email),
			psql.Arg(create.Password),
			psql.Arg(create.IsActive),
		),
		im.Returning("*"),
	)
	return query.One[User](ctx, w.tx, q, entityName, 0)
}

func (w *Writer) Update(ctx context.Context, id int64, update *UserUpdate) (*User, error) {
	sets := []bob.Mod[*dialect.UpdateQuery]{query.Touch()}
	if v, ok := update.Name.Get(); ok {
		sets = append(sets, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Email.Get(); ok {
		sets = append(sets, um.SetCol("email").ToArg(v))
	}
	if v, ok := update.Password.Get(); ok {
		sets = append(sets, um.SetCol("password").ToArg(v))
	}
	if v, ok := update.IsActive.Get(); ok {
		sets = append(sets, um.SetCol("is_active").ToArg(v))
	}
	return query.One[User](ctx, w.tx, query.UpdateByID(tableName, id, sets...), entityName, id)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	return query.DeleteByID(ctx, w.tx, tableName, entityName, id)
}
