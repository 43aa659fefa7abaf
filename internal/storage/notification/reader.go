package notification

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"

	"github.com/carson-networks/ledger-server/internal/storage/query"
)

var _ INotificationReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Notification, error) {
	return query.One[Notification](ctx, r.exec, query.SelectByID(tableName, id), entityName, id)
}

// List returns notifications ordered by id. Nil filter returns all.
func (r *Reader) List(ctx context.Context, filter *NotificationFilter) ([]*Notification, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{sm.From(tableName)}
	limit, offset := 0, 0
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.UnreadOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("read").EQ(psql.Arg(false))))
		}
		limit, offset = filter.Limit, filter.Offset
	}
	queryMods = append(queryMods, query.Page(limit, offset)...)
	return query.All[Notification](ctx, r.exec, psql.Select(queryMods...))
}
