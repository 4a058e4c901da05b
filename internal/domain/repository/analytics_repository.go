package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// AnalyticsRepository consultas de solo lectura para el dashboard.
type AnalyticsRepository interface {
	// CountClients devuelve el total de clientes registrados.
	CountClients(ctx context.Context) (int64, error)
	// CountProjects devuelve (total, activos).
	CountProjects(ctx context.Context) (total, active int64, err error)
	// PaidRevenue suma los montos de las facturas en estado paid.
	PaidRevenue(ctx context.Context) (decimal.Decimal, error)
	// CountOpenInvoices cuenta facturas en estado pending u overdue.
	CountOpenInvoices(ctx context.Context) (int64, error)
}
