package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO resumen para GET /api/dashboard/stats.
// TotalRevenue suma los montos de las facturas pagadas; PendingInvoices cuenta
// las que siguen en pending u overdue.
type DashboardStatsDTO struct {
	TotalClients    int64           `json:"total_clients"`
	ActiveProjects  int64           `json:"active_projects"`
	TotalProjects   int64           `json:"total_projects"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	PendingInvoices int64           `json:"pending_invoices"`
}
