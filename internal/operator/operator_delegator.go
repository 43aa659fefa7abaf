package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// ErrStopped is returned for writes submitted after Stop.
var ErrStopped = errors.New("operator: stopped")

const queueSize = 1000

type txRunner interface {
	WithTx(ctx context.Context, fn func(*storage.Writer) error) error
}

type store interface {
	txRunner
	Read() *storage.Reader
}

// OperatorDelegator bounds the number of concurrent write transactions by
// funnelling them through a fixed pool of Operators. Reads bypass the queue.
type OperatorDelegator struct {
	storage    store
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s store, numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop drains the queue and waits for in-flight writes.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *OperatorDelegator) Read() *storage.Reader {
	return d.storage.Read()
}

// WithTx queues fn and waits for its transaction to finish.
func (d *OperatorDelegator) WithTx(ctx context.Context, fn func(*storage.Writer) error) error {
	return d.Process(ctx, fn)
}

func (d *OperatorDelegator) Process(ctx context.Context, action Action) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
