package domain

import "context"

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	List(ctx context.Context, query string) ([]Customer, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type ProductRepo interface {
	Create(ctx context.Context, p *Product) error
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type OrderRepo interface {
	Create(ctx context.Context, o *Order) error
	List(ctx context.Context, statuses []OrderStatus) ([]OrderView, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

type CourseRepo interface {
	Create(ctx context.Context, c *Course) error
	List(ctx context.Context) ([]Course, error)
	Delete(ctx context.Context, id uint) error
}

// CourseCatalog is the outbound port to the external course listing API.
type CourseCatalog interface {
	FetchCourses(ctx context.Context, limit int) ([]CatalogCourse, error)
}
