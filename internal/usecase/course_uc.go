package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/nmoreira/dropship/internal/domain"
)

type CourseUC struct {
	Courses domain.CourseRepo
}

func (uc *CourseUC) Create(ctx context.Context, c *domain.Course) error {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Slug) == "" {
		return fmt.Errorf("%w: title and slug are required", domain.ErrInvalid)
	}
	c.Slug = strings.ToLower(strings.TrimSpace(c.Slug))
	return uc.Courses.Create(ctx, c)
}

func (uc *CourseUC) List(ctx context.Context) ([]domain.Course, error) {
	return uc.Courses.List(ctx)
}

func (uc *CourseUC) Delete(ctx context.Context, id uint) error {
	return uc.Courses.Delete(ctx, id)
}
