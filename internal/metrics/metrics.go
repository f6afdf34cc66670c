package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CustomersAddedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_customers_added_total",
		Help: "Total number of customers routed to a counter queue.",
	},
		[]string{"counter"},
	)

	CustomersProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_customers_processed_total",
		Help: "Total number of customers served at a counter.",
	},
		[]string{"counter"},
	)

	CustomersRemovedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_customers_removed_total",
		Help: "Total number of customers taken out of a queue before being served.",
	})

	QueueLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "checkout_queue_length",
		Help: "Current number of customers waiting at a counter.",
	},
		[]string{"counter"},
	)

	LedgerLinesSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_ledger_lines_skipped_total",
		Help: "Total number of malformed ledger lines skipped while loading.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
