package services

import (
	"context"

	"backoffice/internal/domain/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// StatsService computes dashboard aggregates. The queries run concurrently
// and are not taken from a single snapshot.
type StatsService struct {
	Stats StatsStore
	Views ViewCache
}

func (s StatsService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (s StatsService) GetOrderStats(ctx context.Context) (models.OrderStats, error) {
	var out models.OrderStats
	slot, hit := s.views().Load(ctx, "orders", "stats", &out)
	if hit {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.TotalOrders, err = s.Stats.CountOrders(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.PendingOrders, err = s.Stats.CountOrdersByStatus(gctx, models.OrderPending)
		return err
	})
	g.Go(func() (err error) {
		out.CompletedOrders, err = s.Stats.CountOrdersByStatus(gctx, models.OrderCompleted)
		return err
	})
	g.Go(func() (err error) {
		out.Revenue, err = s.Stats.SumOrderAmounts(gctx, models.PaymentPaid)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.OrderStats{}, storeErr(ctx, "stats", "order_stats", "stats", err, "failed to compute order stats")
	}

	s.views().Store(ctx, slot, out)
	return out, nil
}

func (s StatsService) GetProductsStats(ctx context.Context) (models.ProductStats, error) {
	var out models.ProductStats
	slot, hit := s.views().Load(ctx, "products", "stats", &out)
	if hit {
		return out, nil
	}

	var prices models.PriceSummary
	out.ByCategory = map[models.ProductCategory]int{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Total, err = s.Stats.CountProducts(gctx)
		return err
	})
	g.Go(func() error {
		counts, err := s.Stats.CountProductsByCategory(gctx)
		if err != nil {
			return err
		}
		for _, c := range counts {
			out.ByCategory[models.ProductCategory(c.Key)] = c.Count
		}
		return nil
	})
	g.Go(func() (err error) {
		out.Featured, err = s.Stats.CountFeaturedProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		prices, err = s.Stats.ProductPriceSummary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.ProductStats{}, storeErr(ctx, "stats", "product_stats", "stats", err, "failed to compute product stats")
	}

	out.NonFeatured = out.Total - out.Featured
	out.AveragePrice = decimal.NewFromFloat(prices.Average).Round(0).IntPart()
	out.MinPrice = prices.Min
	out.MaxPrice = prices.Max

	s.views().Store(ctx, slot, out)
	return out, nil
}
