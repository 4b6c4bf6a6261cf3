package report

import (
	"context"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/report"
	"golang.org/x/sync/errgroup"
)

const recentOrderLimit = 5

// StatsService aggregates store-wide figures for the admin dashboard
type StatsService struct {
	productRepo catalog.ProductRepository
	userRepo    identity.UserRepository
	orderRepo   ordering.OrderRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	productRepo catalog.ProductRepository,
	userRepo identity.UserRepository,
	orderRepo ordering.OrderRepository,
) *StatsService {
	return &StatsService{
		productRepo: productRepo,
		userRepo:    userRepo,
		orderRepo:   orderRepo,
	}
}

// Dashboard fetches counts, total revenue and the five most recent orders.
// The five queries run concurrently; any failure aborts the whole request.
func (s *StatsService) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	var dashboard report.Dashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.productRepo.Count(ctx)
		dashboard.Stats.Products = count
		return err
	})
	g.Go(func() error {
		count, err := s.userRepo.Count(ctx)
		dashboard.Stats.Users = count
		return err
	})
	g.Go(func() error {
		count, err := s.orderRepo.Count(ctx)
		dashboard.Stats.Orders = count
		return err
	})
	g.Go(func() error {
		revenue, err := s.orderRepo.SumTotalAmount(ctx)
		dashboard.Stats.Revenue = revenue
		return err
	})
	g.Go(func() error {
		orders, err := s.orderRepo.FindRecent(ctx, recentOrderLimit)
		dashboard.RecentOrders = orders
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
