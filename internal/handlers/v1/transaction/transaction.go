package transaction

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

const tag = "Transactions"

// IDPath addresses a single transaction.
type IDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Transaction id"`
}

type transactionService interface {
	transactionCreator
	transactionGetter
	transactionLister
	transactionUpdater
	transactionDeleter
}

// Register registers every transaction operation with the Huma API.
func Register(api huma.API, svc transactionService) {
	NewCreateTransactionHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
}

func parseType(value string) (service.TransactionType, error) {
	t, err := service.ParseTransactionType(value)
	if err != nil {
		return 0, apierror.InvalidBody("type", value, err)
	}
	return t, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := projection.ParseTime(value)
	if err != nil {
		return time.Time{}, apierror.InvalidBody(field, value, err)
	}
	return t, nil
}
