package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every valid status in display order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	CustomerID     uint        `gorm:"index;not null" json:"customer_id"`
	Customer       Customer    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProductID      uint        `gorm:"index;not null" json:"product_id"`
	Product        Product     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Quantity       int         `gorm:"not null;default:1" json:"quantity"`
	TotalAmount    float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status         OrderStatus `gorm:"type:varchar(30);index;default:pending" json:"status"`
	TrackingNumber string      `gorm:"size:120" json:"tracking_number"`
	Notes          string      `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// OrderView is an order joined at read time with display fields from the
// related customer and product. Nothing here is stored twice; the join
// happens on every listing.
type OrderView struct {
	Order
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	CustomerPhone string  `json:"customer_phone"`
	ProductName   string  `json:"product_name"`
	ProductSKU    string  `gorm:"column:product_sku" json:"product_sku"`
	ProductPrice  float64 `json:"product_price"`
}
