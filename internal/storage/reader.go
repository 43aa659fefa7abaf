package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/account"
	"github.com/carson-networks/ledger-server/internal/storage/budget"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/notification"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// Reader groups the read side of every table over one executor.
type Reader struct {
	Users         user.IUserReader
	Accounts      account.IAccountReader
	Categories    category.ICategoryReader
	Transactions  transaction.ITransactionReader
	Budgets       budget.IBudgetReader
	Notifications notification.INotificationReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Users:         user.NewReader(exec),
		Accounts:      account.NewReader(exec),
		Categories:    category.NewReader(exec),
		Transactions:  transaction.NewReader(exec),
		Budgets:       budget.NewReader(exec),
		Notifications: notification.NewReader(exec),
	}
}
