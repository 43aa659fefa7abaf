package status

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/carson-networks/ledger-server/internal/logging"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Database pinger
}

func NewHandler(db pinger) Handler {
	return Handler{Database: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	stopTimer := logData.AddTiming("pingMs")
	err := h.Database.Ping(req.Context())
	stopTimer()
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return fmt.Errorf("status: ping database: %w", err)
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
