package category

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/carson-networks/ledger-server/internal/storage/query"
)

var _ ICategoryReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Category, error) {
	return query.One[Category](ctx, r.exec, query.SelectByID(tableName, id), entityName, id)
}

// List returns categories ordered by id. Nil filter returns all.
func (r *Reader) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{sm.From(tableName)}
	limit, offset := 0, 0
	if filter != nil {
		if filter.Type != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(int16(*filter.Type)))))
		}
		limit, offset = filter.Limit, filter.Offset
	}
	queryMods = append(queryMods, query.Page(limit, offset)...)
	return query.All[Category](ctx, r.exec, psql.Select(queryMods...))
}
