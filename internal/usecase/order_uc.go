package usecase

import (
	"context"
	"fmt"

	"github.com/nmoreira/dropship/internal/domain"
)

type OrderUC struct {
	Orders   domain.OrderRepo
	Products domain.ProductRepo
}

// Create derives total_amount from the product's current price at
// creation time; later price changes never touch existing orders.
// Stock is intentionally not decremented here: single-row writes only,
// matching the store's atomicity model.
func (uc *OrderUC) Create(ctx context.Context, o *domain.Order) error {
	if o.CustomerID == 0 || o.ProductID == 0 {
		return fmt.Errorf("%w: customer and product are required", domain.ErrInvalid)
	}
	if o.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalid)
	}
	if o.Status == "" {
		o.Status = domain.OrderStatusPending
	}
	if !o.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalid, o.Status)
	}
	p, err := uc.Products.FindByID(ctx, o.ProductID)
	if err != nil {
		return err
	}
	o.TotalAmount = p.Price * float64(o.Quantity)
	return uc.Orders.Create(ctx, o)
}

func (uc *OrderUC) List(ctx context.Context, statuses []domain.OrderStatus) ([]domain.OrderView, error) {
	for _, s := range statuses {
		if !s.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalid, s)
		}
	}
	return uc.Orders.List(ctx, statuses)
}

func (uc *OrderUC) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalid, status)
	}
	return uc.Orders.Update(ctx, id, map[string]any{"status": string(status)})
}

type OrderUpdate struct {
	TrackingNumber *string `json:"tracking_number"`
	Notes          *string `json:"notes"`
}

func (uc *OrderUC) Update(ctx context.Context, id uint, upd OrderUpdate) error {
	fields := map[string]any{}
	if upd.TrackingNumber != nil {
		fields["tracking_number"] = *upd.TrackingNumber
	}
	if upd.Notes != nil {
		fields["notes"] = *upd.Notes
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalid)
	}
	return uc.Orders.Update(ctx, id, fields)
}

func (uc *OrderUC) Delete(ctx context.Context, id uint) error {
	return uc.Orders.Delete(ctx, id)
}
