package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/nmoreira/dropship/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	if c.Email != "" {
		c.Email = strings.ToLower(c.Email)
	}
	return translateCreateErr(r.db.WithContext(ctx).Create(c).Error, "email")
}

func (r *CustomerRepo) List(ctx context.Context, query string) ([]domain.Customer, error) {
	var list []domain.Customer
	q := r.db.WithContext(ctx).Model(&domain.Customer{})
	if s := strings.TrimSpace(query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if err := q.Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CustomerRepo) Update(ctx context.Context, id uint, fields map[string]any) error {
	if email, ok := fields["email"].(string); ok {
		fields["email"] = strings.ToLower(email)
	}
	res := r.db.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translateCreateErr(res.Error, "email")
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Customer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
