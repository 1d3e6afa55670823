package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nmoreira/dropship/internal/domain"
	"github.com/nmoreira/dropship/internal/report"
)

func view(productID uint, qty int, total float64, status domain.OrderStatus) domain.OrderView {
	return domain.OrderView{Order: domain.Order{
		ProductID:   productID,
		Quantity:    qty,
		TotalAmount: total,
		Status:      status,
	}}
}

func TestInventoryValue(t *testing.T) {
	products := []domain.Product{
		{Price: 10, StockQuantity: 5},
		{Price: 20, StockQuantity: 2},
	}
	assert.Equal(t, 90.0, report.InventoryValue(products))
	assert.Equal(t, 0.0, report.InventoryValue(nil))
}

func TestTotalRevenue(t *testing.T) {
	orders := []domain.OrderView{
		view(1, 1, 20, domain.OrderStatusPending),
		view(2, 1, 50, domain.OrderStatusCancelled),
	}
	assert.Equal(t, 70.0, report.TotalRevenue(orders))
}

func TestStatusBreakdownFirstOccurrenceOrder(t *testing.T) {
	orders := []domain.OrderView{
		view(1, 1, 10, domain.OrderStatusShipped),
		view(2, 1, 20, domain.OrderStatusPending),
		view(3, 1, 30, domain.OrderStatusShipped),
	}
	stats := report.StatusBreakdown(orders)
	assert.Len(t, stats, 2)
	assert.Equal(t, domain.OrderStatusShipped, stats[0].Status)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 40.0, stats[0].Revenue)
	assert.Equal(t, domain.OrderStatusPending, stats[1].Status)
	assert.Equal(t, 1, stats[1].Count)
	assert.Equal(t, 20.0, stats[1].Revenue)
}

func TestTopSellers(t *testing.T) {
	orders := []domain.OrderView{
		view(1, 2, 20, domain.OrderStatusPending),
		view(2, 1, 50, domain.OrderStatusPending),
		view(1, 1, 10, domain.OrderStatusPending),
	}
	top := report.TopSellers(orders)
	assert.Len(t, top, 2)
	assert.Equal(t, uint(2), top[0].ProductID)
	assert.Equal(t, 1, top[0].Quantity)
	assert.Equal(t, 50.0, top[0].Revenue)
	assert.Equal(t, uint(1), top[1].ProductID)
	assert.Equal(t, 3, top[1].Quantity)
	assert.Equal(t, 30.0, top[1].Revenue)
}

func TestTopSellersStableOnTies(t *testing.T) {
	orders := []domain.OrderView{
		view(7, 1, 25, domain.OrderStatusPending),
		view(8, 1, 25, domain.OrderStatusPending),
	}
	top := report.TopSellers(orders)
	assert.Equal(t, uint(7), top[0].ProductID)
	assert.Equal(t, uint(8), top[1].ProductID)
}

func TestTopSellersCapsAtFive(t *testing.T) {
	orders := []domain.OrderView{}
	for i := uint(1); i <= 7; i++ {
		orders = append(orders, view(i, 1, float64(i), domain.OrderStatusPending))
	}
	assert.Len(t, report.TopSellers(orders), 5)
}

func TestLowStock(t *testing.T) {
	products := []domain.Product{
		{Name: "a", StockQuantity: 5},
		{Name: "b", StockQuantity: 10},
		{Name: "c", StockQuantity: 11},
	}
	low := report.LowStock(products)
	assert.Len(t, low, 2)
	assert.Equal(t, "a", low[0].Name)
	assert.Equal(t, "b", low[1].Name)
}

func TestRecentDoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	orders := []domain.OrderView{}
	for i := 0; i < 7; i++ {
		v := view(uint(i+1), 1, 10, domain.OrderStatusPending)
		v.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		orders = append(orders, v)
	}
	recent := report.Recent(orders)
	assert.Len(t, recent, 5)
	assert.Equal(t, uint(7), recent[0].ProductID)
	assert.Equal(t, uint(3), recent[4].ProductID)
	// input order untouched
	assert.Equal(t, uint(1), orders[0].ProductID)
}

func TestBuildSummary(t *testing.T) {
	customers := []domain.Customer{{Name: "c"}}
	products := []domain.Product{{Price: 10, StockQuantity: 5}}
	orders := []domain.OrderView{view(1, 1, 10, domain.OrderStatusPending)}
	s := report.BuildSummary(customers, products, orders)
	assert.Equal(t, 1, s.TotalCustomers)
	assert.Equal(t, 1, s.TotalProducts)
	assert.Equal(t, 1, s.TotalOrders)
	assert.Equal(t, 10.0, s.TotalRevenue)
	assert.Equal(t, 50.0, s.InventoryValue)
	assert.Len(t, s.StatusBreakdown, 1)
	assert.Len(t, s.LowStock, 1)
}
