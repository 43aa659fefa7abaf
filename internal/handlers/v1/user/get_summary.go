package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/projection"
)

type GetSummaryOutput struct {
	Body projection.Summary
}

// GetSummaryHandler handles GET /v1/users/{id}/summary.
type GetSummaryHandler struct {
	SummaryService summaryGetter
}

func NewGetSummaryHandler(svc summaryGetter) *GetSummaryHandler {
	return &GetSummaryHandler{SummaryService: svc}
}

func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user-summary",
		Method:      http.MethodGet,
		Path:        "/v1/users/{id}/summary",
		Summary:     "Summarize a user's transactions",
		Description: "Counts the user's transactions by type and by category and totals their amounts.",
		Tags:        []string{tag},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *IDPath) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("userID", input.ID)

	stopTimer := logData.AddTiming("getSummaryMs")
	summary, err := h.SummaryService.GetSummary(ctx, input.ID)
	stopTimer()
	if err != nil {
		return nil, apierror.FromService(ctx, "summarize transactions", err)
	}

	logData.AddData("transactionCount", summary.TransactionCount)

	return &GetSummaryOutput{Body: projection.FromSummary(summary)}, nil
}
