// Package analytics arma las métricas agregadas del dashboard de la agencia.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/agencia-ops/internal/application/dto"
	"github.com/tu-usuario/agencia-ops/internal/domain/repository"
)

// DashboardUseCase calcula el resumen del dashboard: clientes, proyectos,
// ingresos cobrados y facturas abiertas.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats consulta las cuatro métricas en paralelo (consultas independientes)
// y arma el DTO del dashboard.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	type clientsResult struct {
		total int64
		err   error
	}
	type projectsResult struct {
		total, active int64
		err           error
	}
	type revenueResult struct {
		revenue decimal.Decimal
		err     error
	}
	type openResult struct {
		open int64
		err  error
	}

	clientsChan := make(chan clientsResult, 1)
	projectsChan := make(chan projectsResult, 1)
	revenueChan := make(chan revenueResult, 1)
	openChan := make(chan openResult, 1)

	go func() {
		total, err := uc.analyticsRepo.CountClients(ctx)
		clientsChan <- clientsResult{total, err}
	}()
	go func() {
		total, active, err := uc.analyticsRepo.CountProjects(ctx)
		projectsChan <- projectsResult{total, active, err}
	}()
	go func() {
		revenue, err := uc.analyticsRepo.PaidRevenue(ctx)
		revenueChan <- revenueResult{revenue, err}
	}()
	go func() {
		open, err := uc.analyticsRepo.CountOpenInvoices(ctx)
		openChan <- openResult{open, err}
	}()

	clients := <-clientsChan
	projects := <-projectsChan
	revenue := <-revenueChan
	open := <-openChan

	if clients.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", clients.err)
	}
	if projects.err != nil {
		return nil, fmt.Errorf("dashboard: proyectos: %w", projects.err)
	}
	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos: %w", revenue.err)
	}
	if open.err != nil {
		return nil, fmt.Errorf("dashboard: facturas abiertas: %w", open.err)
	}

	return &dto.DashboardStatsDTO{
		TotalClients:    clients.total,
		ActiveProjects:  projects.active,
		TotalProjects:   projects.total,
		TotalRevenue:    revenue.revenue,
		PendingInvoices: open.open,
	}, nil
}
