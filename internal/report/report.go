// Package report computes dashboard aggregates over collections already
// fetched by the repositories. Every function is pure: inputs are never
// mutated and no database access happens here.
package report

import (
	"sort"

	"github.com/nmoreira/dropship/internal/domain"
)

// LowStockThreshold is the stock level at or below which a product is
// flagged on the dashboard.
const LowStockThreshold = 10

// RecentLimit bounds the "recent activity" and "top sellers" lists.
const RecentLimit = 5

type StatusStat struct {
	Status  domain.OrderStatus `json:"status"`
	Count   int                `json:"count"`
	Revenue float64            `json:"revenue"`
}

type SellerStat struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

type Summary struct {
	TotalCustomers  int                `json:"total_customers"`
	TotalProducts   int                `json:"total_products"`
	TotalOrders     int                `json:"total_orders"`
	TotalRevenue    float64            `json:"total_revenue"`
	InventoryValue  float64            `json:"inventory_value"`
	StatusBreakdown []StatusStat       `json:"status_breakdown"`
	TopSellers      []SellerStat       `json:"top_sellers"`
	LowStock        []domain.Product   `json:"low_stock"`
	Recent          []domain.OrderView `json:"recent_orders"`
}

// InventoryValue is the sum of price times stock over all products.
func InventoryValue(products []domain.Product) float64 {
	total := 0.0
	for _, p := range products {
		total += p.Price * float64(p.StockQuantity)
	}
	return total
}

// TotalRevenue sums total_amount over all orders regardless of status.
func TotalRevenue(orders []domain.OrderView) float64 {
	total := 0.0
	for _, o := range orders {
		total += o.TotalAmount
	}
	return total
}

// StatusBreakdown groups orders by status, emitting groups in order of
// first occurrence rather than a fixed enum order.
func StatusBreakdown(orders []domain.OrderView) []StatusStat {
	idx := map[domain.OrderStatus]int{}
	stats := []StatusStat{}
	for _, o := range orders {
		i, ok := idx[o.Status]
		if !ok {
			i = len(stats)
			idx[o.Status] = i
			stats = append(stats, StatusStat{Status: o.Status})
		}
		stats[i].Count++
		stats[i].Revenue += o.TotalAmount
	}
	return stats
}

// TopSellers groups orders by product, sums quantity and revenue, and
// returns the top groups by revenue. The sort is stable, so revenue ties
// keep the order in which the groups were first seen.
func TopSellers(orders []domain.OrderView) []SellerStat {
	idx := map[uint]int{}
	stats := []SellerStat{}
	for _, o := range orders {
		i, ok := idx[o.ProductID]
		if !ok {
			i = len(stats)
			idx[o.ProductID] = i
			stats = append(stats, SellerStat{ProductID: o.ProductID, ProductName: o.ProductName})
		}
		stats[i].Quantity += o.Quantity
		stats[i].Revenue += o.TotalAmount
	}
	sort.SliceStable(stats, func(a, b int) bool { return stats[a].Revenue > stats[b].Revenue })
	if len(stats) > RecentLimit {
		stats = stats[:RecentLimit]
	}
	return stats
}

// LowStock returns the products with stock at or below the threshold.
func LowStock(products []domain.Product) []domain.Product {
	out := []domain.Product{}
	for _, p := range products {
		if p.StockQuantity <= LowStockThreshold {
			out = append(out, p)
		}
	}
	return out
}

// Recent returns the newest orders by creation time, newest first.
func Recent(orders []domain.OrderView) []domain.OrderView {
	out := make([]domain.OrderView, len(orders))
	copy(out, orders)
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	if len(out) > RecentLimit {
		out = out[:RecentLimit]
	}
	return out
}

// BuildSummary assembles the full dashboard from already-fetched data.
func BuildSummary(customers []domain.Customer, products []domain.Product, orders []domain.OrderView) Summary {
	return Summary{
		TotalCustomers:  len(customers),
		TotalProducts:   len(products),
		TotalOrders:     len(orders),
		TotalRevenue:    TotalRevenue(orders),
		InventoryValue:  InventoryValue(products),
		StatusBreakdown: StatusBreakdown(orders),
		TopSellers:      TopSellers(orders),
		LowStock:        LowStock(products),
		Recent:          Recent(orders),
	}
}
