package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nmoreira/dropship/internal/domain"
)

type ProductUC struct {
	Products domain.ProductRepo
}

func (uc *ProductUC) Create(ctx context.Context, p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.SKU) == "" {
		return fmt.Errorf("%w: name and sku are required", domain.ErrInvalid)
	}
	if p.Price <= 0 {
		return fmt.Errorf("%w: price must be greater than zero", domain.ErrInvalid)
	}
	if p.Cost != nil && *p.Cost < 0 {
		return fmt.Errorf("%w: cost cannot be negative", domain.ErrInvalid)
	}
	if p.StockQuantity < 0 {
		return fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalid)
	}
	p.SKU = strings.ToUpper(strings.TrimSpace(p.SKU))
	return uc.Products.Create(ctx, p)
}

func (uc *ProductUC) List(ctx context.Context) ([]domain.Product, error) {
	return uc.Products.List(ctx)
}

type ProductUpdate struct {
	Name          *string  `json:"name"`
	SKU           *string  `json:"sku"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	Cost          *float64 `json:"cost"`
	StockQuantity *int     `json:"stock_quantity"`
	SupplierName  *string  `json:"supplier_name"`
	SupplierURL   *string  `json:"supplier_url"`
	Category      *string  `json:"category"`
}

func (uc *ProductUC) Update(ctx context.Context, id uint, upd ProductUpdate) error {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.SKU != nil {
		if strings.TrimSpace(*upd.SKU) == "" {
			return fmt.Errorf("%w: sku cannot be empty", domain.ErrInvalid)
		}
		fields["sku"] = strings.ToUpper(strings.TrimSpace(*upd.SKU))
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price <= 0 {
			return fmt.Errorf("%w: price must be greater than zero", domain.ErrInvalid)
		}
		fields["price"] = *upd.Price
	}
	if upd.Cost != nil {
		if *upd.Cost < 0 {
			return fmt.Errorf("%w: cost cannot be negative", domain.ErrInvalid)
		}
		fields["cost"] = *upd.Cost
	}
	if upd.StockQuantity != nil {
		if *upd.StockQuantity < 0 {
			return fmt.Errorf("%w: stock cannot be negative", domain.ErrInvalid)
		}
		fields["stock_quantity"] = *upd.StockQuantity
	}
	if upd.SupplierName != nil {
		fields["supplier_name"] = *upd.SupplierName
	}
	if upd.SupplierURL != nil {
		fields["supplier_url"] = *upd.SupplierURL
	}
	if upd.Category != nil {
		fields["category"] = *upd.Category
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalid)
	}
	return uc.Products.Update(ctx, id, fields)
}

func (uc *ProductUC) Delete(ctx context.Context, id uint) error {
	return uc.Products.Delete(ctx, id)
}
