package operator

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// Operator is the worker that runs queued writes, each in its own transaction.
type Operator struct {
	storage txRunner
	queue   chan ActionItem
}

func NewOperator(s txRunner, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{err: o.storage.WithTx(item.ctx, item.action)}
}

// Action is one unit of write work. Returning an error rolls it back.
type Action func(*storage.Writer) error

type ActionItem struct {
	ctx      context.Context
	action   Action
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
