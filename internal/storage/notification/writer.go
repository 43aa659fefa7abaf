package notification

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/ledger-server/internal/storage/query"
)

var _ INotificationWriter = (*Writer)(nil)

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

func (w *Writer) Insert(ctx context.Context, create *NotificationCreate) (*Notification, error) {
	q := psql.Insert(
		im.Into(tableName, "user_id", "message"),
		im.Values(psql.Arg(create.UserID), psql.Arg(create.Message)),
		im.Returning("*"),
	)
	return query.One[Notification](ctx, w.tx, q, entityName, 0)
}

// MarkRead flags a notification as read. Marking twice is a no-op.
func (w *Writer) MarkRead(ctx context.Context, id int64) (*Notification, error) {
	return query.One[Notification](ctx, w.tx, query.UpdateByID(tableName, id, um.SetCol("read").ToArg(true)), entityName, id)
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	return query.DeleteByID(ctx, w.tx, tableName, entityName, id)
}
