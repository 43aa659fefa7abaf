package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/notification"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// Writer groups every table bound to one database transaction.
type Writer struct {
	tx            bob.Tx
	Users         user.IUserWriter
	Accounts      account.IAccountWriter
	Categories    category.ICategoryWriter
	Transactions  transaction.ITransactionWriter
	Budgets       budget.IBudgetWriter
	Notifications notification.INotificationWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:            tx,
		Users:         user.NewWriter(tx),
		Accounts:      account.NewWriter(tx),
		Categories:    category.NewWriter(tx),
		Transactions:  transaction.NewWriter(tx),
		Budgets:       budget.NewWriter(tx),
		Notifications: notification.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
