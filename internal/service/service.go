package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Store is the part of storage.Storage the services depend on.
type Store interface {
	Read() *storage.Reader
	WithTx(ctx context.Context, fn func(*storage.Writer) error) error
}

// Service holds all business logic services.
type Service struct {
	User         *UserService
	Account      *AccountService
	Category     *CategoryService
	Transaction  *TransactionService
	Budget       *BudgetService
	Notification *NotificationService
	Summary      *SummaryService
}

// NewService creates a new Service with the given storage. bcryptCost is used
// for every password hash.
func NewService(store Store, bcryptCost int) *Service {
	return &Service{
		User:         NewUserService(store, bcryptCost),
		Account:      NewAccountService(store),
		Category:     NewCategoryService(store),
		Transaction:  NewTransactionService(store),
		Budget:       NewBudgetService(store),
		Notification: NewNotificationService(store),
		Summary:      NewSummaryService(store),
	}
}
