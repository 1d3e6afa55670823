package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/nmoreira/dropship/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

// List returns all orders newest first, joined with the customer and
// product display fields. An optional status set filters the result.
func (r *OrderRepo) List(ctx context.Context, statuses []domain.OrderStatus) ([]domain.OrderView, error) {
	var views []domain.OrderView
	q := r.db.WithContext(ctx).Table("orders").
		Select("orders.*, customers.name AS customer_name, customers.email AS customer_email, customers.phone AS customer_phone, products.name AS product_name, products.sku AS product_sku, products.price AS product_price").
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Joins("LEFT JOIN products ON products.id = orders.product_id")
	if len(statuses) > 0 {
		q = q.Where("orders.status IN ?", statuses)
	}
	if err := q.Order("orders.created_at desc").Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

func (r *OrderRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Order{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
