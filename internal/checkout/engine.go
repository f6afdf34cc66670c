package checkout

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/checkout/internal/storage"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrDuplicateCustomer = errors.New("customer already queued")
	ErrNilCustomer       = errors.New("customer is nil")
)

// Receipt is what a counter hands out for a customer. Display produces
// receipts with a zero ID for customers that are still waiting.
type Receipt struct {
	ID       uuid.UUID
	Counter  Counter
	Customer *storage.Customer
	Total    decimal.Decimal
}

// Engine owns the three counter queues and the history of every customer it
// has seen. It is not safe for concurrent use.
type Engine struct {
	thresholds       Thresholds
	rejectDuplicates bool
	queues           [len(Counters)][]*storage.Customer
	history          []*storage.Customer
	queued           *cache.CustomerIndex
	logger           *zap.Logger
	newReceiptID     func() uuid.UUID
}

func NewEngine(thresholds Thresholds, rejectDuplicates bool, logger *zap.Logger) *Engine {
	return &Engine{
		thresholds:       thresholds,
		rejectDuplicates: rejectDuplicates,
		queued:           cache.NewCustomerIndex(),
		logger:           logger,
		newReceiptID:     uuid.New,
	}
}

// AddCustomer routes the customer by its current item count and records it in
// history, whether or not it is ever served.
func (e *Engine) AddCustomer(customer *storage.Customer) (Counter, error) {
	if customer == nil {
		metrics.OperationErrorsTotal.WithLabelValues("add_customer").Inc()
		return 0, ErrNilCustomer
	}
	if e.rejectDuplicates && e.queued.Contains(customer.ID) {
		metrics.OperationErrorsTotal.WithLabelValues("add_customer").Inc()
		return 0, fmt.Errorf("%w: id %d", ErrDuplicateCustomer, customer.ID)
	}

	counter := e.thresholds.Route(customer.ItemCount())
	e.queues[counter.index()] = append(e.queues[counter.index()], customer)
	e.queued.Add(customer.ID)
	e.history = append(e.history, customer)

	metrics.CustomersAddedTotal.WithLabelValues(counter.Label()).Inc()
	e.observeQueue(counter)

	e.logger.Debug("customer queued",
		zap.Int("customer_id", customer.ID),
		zap.Int("items", customer.ItemCount()),
		zap.Stringer("counter", counter),
	)
	return counter, nil
}

// Load adds customers in order. A rejected customer does not stop the rest.
func (e *Engine) Load(customers []*storage.Customer) error {
	var errs error
	for _, customer := range customers {
		if _, err := e.AddCustomer(customer); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// RemoveCustomer drops the first queued customer with id, searching counter 1,
// then 2, then 3. History keeps its entry.
func (e *Engine) RemoveCustomer(id int) (Counter, error) {
	for _, counter := range Counters {
		queue := e.queues[counter.index()]
		for i, customer := range queue {
			if customer.ID != id {
				continue
			}

			e.queues[counter.index()] = append(queue[:i], queue[i+1:]...)
			e.queued.Remove(id)

			metrics.CustomersRemovedTotal.Inc()
			e.observeQueue(counter)
			e.logger.Debug("customer removed", zap.Int("customer_id", id), zap.Stringer("counter", counter))
			return counter, nil
		}
	}

	metrics.OperationErrorsTotal.WithLabelValues("remove_customer").Inc()
	return 0, fmt.Errorf("%w: id %d", ErrCustomerNotFound, id)
}

// ProcessAll serves one customer per non-empty counter per pass until every
// queue is drained, so counters take turns instead of draining one at a time.
func (e *Engine) ProcessAll() []Receipt {
	var receipts []Receipt
	for e.Pending() > 0 {
		for _, counter := range Counters {
			if receipt, ok := e.ProcessOne(counter); ok {
				receipts = append(receipts, receipt)
			}
		}
	}
	return receipts
}

// ProcessOne serves the head of the counter's queue. The served customer is
// appended to history a second time.
func (e *Engine) ProcessOne(counter Counter) (Receipt, bool) {
	if !counter.Valid() {
		return Receipt{}, false
	}
	queue := e.queues[counter.index()]
	if len(queue) == 0 {
		return Receipt{}, false
	}

	customer := queue[0]
	queue[0] = nil
	e.queues[counter.index()] = queue[1:]
	e.queued.Remove(customer.ID)
	e.history = append(e.history, customer)

	receipt := Receipt{
		ID:       e.newReceiptID(),
		Counter:  counter,
		Customer: customer,
		Total:    customer.TotalAmountPaid(),
	}

	metrics.CustomersProcessedTotal.WithLabelValues(counter.Label()).Inc()
	e.observeQueue(counter)
	e.logger.Info("customer processed",
		zap.Int("customer_id", customer.ID),
		zap.Stringer("counter", counter),
		zap.Stringer("receipt_id", receipt.ID),
		zap.String("total", receipt.Total.StringFixed(2)),
	)
	return receipt, true
}

// Display lists every waiting customer, counter 1 first, in queue order.
func (e *Engine) Display() []Receipt {
	var receipts []Receipt
	for _, counter := range Counters {
		for _, customer := range e.queues[counter.index()] {
			receipts = append(receipts, Receipt{
				Counter:  counter,
				Customer: customer,
				Total:    customer.TotalAmountPaid(),
			})
		}
	}
	return receipts
}

func (e *Engine) Queue(counter Counter) []*storage.Customer {
	if !counter.Valid() {
		return nil
	}
	queue := make([]*storage.Customer, len(e.queues[counter.index()]))
	copy(queue, e.queues[counter.index()])
	return queue
}

func (e *Engine) History() []*storage.Customer {
	history := make([]*storage.Customer, len(e.history))
	copy(history, e.history)
	return history
}

// Pending is the number of customers waiting across all counters.
func (e *Engine) Pending() int {
	n := 0
	for _, queue := range e.queues {
		n += len(queue)
	}
	return n
}

func (e *Engine) observeQueue(counter Counter) {
	metrics.QueueLength.WithLabelValues(counter.Label()).Set(float64(len(e.queues[counter.index()])))
}
