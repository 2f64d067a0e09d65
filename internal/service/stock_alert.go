package service

import (
	"log/slog"

	"sweet-shop/internal/model"
	"sweet-shop/internal/worker"
)

// LowStockAlerter reports sweets whose stock fell to the threshold or below.
// Alerts run on the worker pool so the purchase response is not delayed.
type LowStockAlerter struct {
	pool      worker.Pool
	logger    *slog.Logger
	threshold int
}

func NewLowStockAlerter(pool worker.Pool, logger *slog.Logger, threshold int) *LowStockAlerter {
	return &LowStockAlerter{pool: pool, logger: logger, threshold: threshold}
}

// Check submits an alert when s is at or below the threshold and reports
// whether it did.
func (a *LowStockAlerter) Check(s *model.Sweet) bool {
	if s == nil || s.Quantity > a.threshold {
		return false
	}
	id, name, qty := s.ID, s.Name, s.Quantity
	a.pool.Submit(func() {
		a.logger.Warn("low stock",
			"sweet_id", id,
			"name", name,
			"quantity", qty,
			"threshold", a.threshold,
		)
	})
	return true
}
