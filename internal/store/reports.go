package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"restoflow/internal/models"
)

type CustomerStats struct {
	models.Customer
	TotalOrders int          `json:"totalOrders"`
	TotalSpent  models.Price `json:"totalSpent"`
	LastOrder   *time.Time   `json:"lastOrder"`
}

type Summary struct {
	TotalOrders    int             `json:"totalOrders"`
	TotalRevenue   models.Price    `json:"totalRevenue"`
	AverageSpent   models.Price    `json:"averageSpent"`
	MenuByCategory map[string]int  `json:"menuByCategory"`
	Customers      []CustomerStats `json:"customers"`
}

// Summary reads customers, orders and the menu and aggregates them in
// memory. The database is only a row source here.
func (s *Store) Summary(ctx context.Context) (Summary, error) {
	customers, err := s.ListCustomers(ctx)
	if err != nil {
		return Summary{}, err
	}
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return Summary{}, err
	}
	menu, err := s.ListMenu(ctx)
	if err != nil {
		return Summary{}, err
	}
	return BuildSummary(customers, orders, menu), nil
}

// BuildSummary matches orders to customers by customer id. Revenue uses the
// stored order totals, average spend is revenue over the number of
// customers.
func BuildSummary(customers []models.Customer, orders []models.Order, menu []models.MenuItem) Summary {
	summary := Summary{
		TotalOrders:    len(orders),
		MenuByCategory: make(map[string]int, len(models.Categories)),
		Customers:      make([]CustomerStats, 0, len(customers)),
	}
	for _, category := range models.Categories {
		summary.MenuByCategory[category] = 0
	}
	for _, item := range menu {
		summary.MenuByCategory[item.Category]++
	}

	byCustomer := make(map[int64]*CustomerStats, len(customers))
	for _, c := range customers {
		summary.Customers = append(summary.Customers, CustomerStats{
			Customer:   c,
			TotalSpent: models.NewPrice(decimal.Zero),
		})
	}
	for i := range summary.Customers {
		byCustomer[summary.Customers[i].ID] = &summary.Customers[i]
	}

	revenue := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.TotalPrice.Decimal)

		stats, ok := byCustomer[o.CustomerID]
		if !ok {
			continue
		}
		stats.TotalOrders++
		stats.TotalSpent = models.NewPrice(stats.TotalSpent.Add(o.TotalPrice.Decimal))
		if stats.LastOrder == nil || o.CreatedAt.After(*stats.LastOrder) {
			created := o.CreatedAt
			stats.LastOrder = &created
		}
	}

	summary.TotalRevenue = models.NewPrice(revenue)
	summary.AverageSpent = models.NewPrice(decimal.Zero)
	if len(customers) > 0 {
		summary.AverageSpent = models.NewPrice(revenue.Div(decimal.NewFromInt(int64(len(customers)))))
	}
	return summary
}
