package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
	"github.com/carson-networks/ledger-server/internal/service"
)

type GetTransactionOutput struct {
	Body projection.Transaction
}

type transactionGetter interface {
	GetTransaction(ctx context.Context, id int64) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get a transaction",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *IDPath) (*GetTransactionOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("transactionID", input.ID)

	stopTimer := logData.AddTiming("getTransactionMs")
	tx, err := h.TransactionService.GetTransaction(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "get transaction", err)
	}

	return &GetTransactionOutput{Body: projection.FromTransaction(tx)}, nil
}
