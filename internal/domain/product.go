package domain

import "time"

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:180;not null" json:"name"`
	SKU           string    `gorm:"column:sku;size:120;uniqueIndex;not null" json:"sku"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Cost          *float64  `gorm:"type:decimal(10,2)" json:"cost"`
	StockQuantity int       `gorm:"default:0" json:"stock_quantity"`
	SupplierName  string    `gorm:"size:140" json:"supplier_name"`
	SupplierURL   string    `gorm:"size:255" json:"supplier_url"`
	Category      string    `gorm:"size:100" json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Margin is the profit margin as a percentage of the selling price.
// Products without a recorded cost report 0.
func (p Product) Margin() float64 {
	if p.Cost == nil || p.Price <= 0 {
		return 0
	}
	return (p.Price - *p.Cost) / p.Price * 100
}
