package service

import (
	"context"

	"github.com/Niko2Tech/ProyectoPortafolio/internal/dto"
	"github.com/Niko2Tech/ProyectoPortafolio/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DashboardService assembles the general-information panel. The eight
// aggregations are independent reads, so they run concurrently; the first
// error cancels the rest.
type DashboardService struct {
	dashboard repository.DashboardRepository
	log       zerolog.Logger
}

func NewDashboardService(dashboard repository.DashboardRepository, log zerolog.Logger) *DashboardService {
	return &DashboardService{dashboard: dashboard, log: log}
}

func (s *DashboardService) InformacionGeneral(ctx context.Context) (*dto.DashboardResponse, error) {
	var resp dto.DashboardResponse

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		card, err := s.dashboard.ProductosStockBajo(ctx)
		if err != nil {
			return err
		}
		resp.Cards.ProductosStockBajo = *card
		return nil
	})
	g.Go(func() error {
		card, err := s.dashboard.VentasHoy(ctx)
		if err != nil {
			return err
		}
		resp.Cards.VentasHoy = *card
		return nil
	})
	g.Go(func() error {
		card, err := s.dashboard.ComprasDelMes(ctx)
		if err != nil {
			return err
		}
		resp.Cards.ComprasDelMes = *card
		return nil
	})
	g.Go(func() error {
		rows, err := s.dashboard.VentasPorDia(ctx)
		if err != nil {
			return err
		}
		resp.Graficos.VentasPorDia = emptyIfNil(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := s.dashboard.TopProductos(ctx)
		if err != nil {
			return err
		}
		resp.Graficos.TopProductos = emptyIfNil(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := s.dashboard.MetodosPagoMasUsados(ctx)
		if err != nil {
			return err
		}
		resp.Graficos.MetodosPagoMasUsados = emptyIfNil(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := s.dashboard.ComprasPorMes(ctx)
		if err != nil {
			return err
		}
		resp.Graficos.ComprasPorMes = emptyIfNil(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := s.dashboard.MovimientosInventarioPorDia(ctx)
		if err != nil {
			return err
		}
		resp.Graficos.MovimientosInventario = emptyIfNil(rows)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg("error armando dashboard")
		return nil, err
	}
	return &resp, nil
}

// emptyIfNil keeps chart arrays serializing as [] instead of null.
func emptyIfNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
