package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/agencia-ops/internal/domain/entity"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// CountClients devuelve el total de clientes registrados.
func (r *AnalyticsRepo) CountClients(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

// CountProjects devuelve (total, activos) en una sola consulta.
func (r *AnalyticsRepo) CountProjects(ctx context.Context) (total, active int64, err error) {
	const query = `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1)
		FROM projects`
	if err := r.pool.QueryRow(ctx, query, entity.ProjectStatusActive).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("count projects: %w", err)
	}
	return total, active, nil
}

// PaidRevenue suma los montos de las facturas en estado paid.
func (r *AnalyticsRepo) PaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(amount), 0) FROM invoices WHERE status = $1`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, entity.InvoiceStatusPaid).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("paid revenue: %w", err)
	}
	return total, nil
}

// CountOpenInvoices cuenta facturas en estado pending u overdue.
func (r *AnalyticsRepo) CountOpenInvoices(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM invoices WHERE status IN ($1, $2)`
	var n int64
	if err := r.pool.QueryRow(ctx, query, entity.InvoiceStatusPending, entity.InvoiceStatusOverdue).Scan(&n); err != nil {
		return 0, fmt.Errorf("count open invoices: %w", err)
	}
	return n, nil
}
