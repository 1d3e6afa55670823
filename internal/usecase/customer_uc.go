package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nmoreira/dropship/internal/domain"
	"github.com/nmoreira/dropship/internal/validate"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
}

func (uc *CustomerUC) Create(ctx context.Context, c *domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("%w: name and address are required", domain.ErrInvalid)
	}
	if !validate.Email(c.Email) {
		return fmt.Errorf("%w: email", domain.ErrInvalid)
	}
	if !validate.Phone(c.Phone) {
		return fmt.Errorf("%w: phone must be 10-15 digits", domain.ErrInvalid)
	}
	c.Email = strings.ToLower(c.Email)
	if c.Country == "" {
		c.Country = "USA"
	}
	return uc.Customers.Create(ctx, c)
}

func (uc *CustomerUC) List(ctx context.Context, query string) ([]domain.Customer, error) {
	return uc.Customers.List(ctx, query)
}

// CustomerUpdate carries the partial field set of an update; nil fields
// are left untouched.
type CustomerUpdate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	ZipCode *string `json:"zip_code"`
	Country *string `json:"country"`
}

func (uc *CustomerUC) Update(ctx context.Context, id uint, upd CustomerUpdate) error {
	fields := map[string]any{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Email != nil {
		if !validate.Email(*upd.Email) {
			return fmt.Errorf("%w: email", domain.ErrInvalid)
		}
		fields["email"] = strings.ToLower(*upd.Email)
	}
	if upd.Phone != nil {
		if !validate.Phone(*upd.Phone) {
			return fmt.Errorf("%w: phone must be 10-15 digits", domain.ErrInvalid)
		}
		fields["phone"] = *upd.Phone
	}
	if upd.Address != nil {
		fields["address"] = *upd.Address
	}
	if upd.City != nil {
		fields["city"] = *upd.City
	}
	if upd.State != nil {
		fields["state"] = *upd.State
	}
	if upd.ZipCode != nil {
		fields["zip_code"] = *upd.ZipCode
	}
	if upd.Country != nil {
		fields["country"] = *upd.Country
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", domain.ErrInvalid)
	}
	return uc.Customers.Update(ctx, id, fields)
}

func (uc *CustomerUC) Delete(ctx context.Context, id uint) error {
	return uc.Customers.Delete(ctx, id)
}
