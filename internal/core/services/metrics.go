package services

import (
	"errors"

	"github.com/SscSPs/accounting_mappings/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// operationsTotal counts service operations.
	// Labels: operation, outcome (success, not_found, invalid, error)
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "accounting_mappings",
		Subsystem: "reconciliation",
		Name:      "operations_total",
		Help:      "Total reconciliation operations by outcome",
	}, []string{"operation", "outcome"})

	// bulkItemsTotal counts items of bulk upserts.
	// Labels: entity, result (saved, rejected, merged)
	bulkItemsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "accounting_mappings",
		Subsystem: "reconciliation",
		Name:      "bulk_items_total",
		Help:      "Total bulk upsert items by result",
	}, []string{"entity", "result"})
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrValidation):
		return "invalid"
	default:
		return "error"
	}
}

// recordOperation is deferred with a pointer to the named error result.
func recordOperation(operation string, err *error) {
	operationsTotal.WithLabelValues(operation, outcomeOf(*err)).Inc()
}

func recordBulk(entity string, saved, rejected, merged int) {
	bulkItemsTotal.WithLabelValues(entity, "saved").Add(float64(saved))
	bulkItemsTotal.WithLabelValues(entity, "rejected").Add(float64(rejected))
	bulkItemsTotal.WithLabelValues(entity, "merged").Add(float64(merged))
}
