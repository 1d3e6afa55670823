package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/nmoreira/dropship/internal/domain"
)

type CourseRepo struct{ db *gorm.DB }

func NewCourseRepo(db *gorm.DB) *CourseRepo { return &CourseRepo{db: db} }

func (r *CourseRepo) Create(ctx context.Context, c *domain.Course) error {
	return translateCreateErr(r.db.WithContext(ctx).Create(c).Error, "slug")
}

func (r *CourseRepo) List(ctx context.Context) ([]domain.Course, error) {
	var list []domain.Course
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CourseRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
