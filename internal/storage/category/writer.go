package category

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/ledger-server/internal/storage/query"
)

var _ ICategoryWriter = (*Writer)(nil)

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

func (w *Writer) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	q := psql.Insert(
		im.Into(tableName, "category", "type"),
		im.Values(psql.Arg(create.Category), psql.Arg(int16(create.Type))),
		im.Returning("*"),
	)
	return query.One[Category](ctx, w.tx, q, entityName, 0)
}

// Update changes a category. The table has no updated_at column.
func (w *Writer) Update(ctx context.Context, id int64, update *CategoryUpdate) (*Category, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Category.Get(); ok {
		sets = append(sets, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		sets = append(sets, um.SetCol("type").ToArg(int16(v)))
	}
	if len(sets) == 0 {
		return w.FindByID(ctx, id)
	}
	return query.One[Category](ctx, w.tx, query.UpdateByID(tableName, id, sets...), entityName, id)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	return query.DeleteByID(ctx, w.tx, tableName, entityName, id)
}
