package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/nmoreira/dropship/internal/domain"
)

// Placeholder values used when the catalog omits a field.
const (
	unknownTitle       = "Unknown Course"
	unknownSlug        = "unknown"
	unknownTeacher     = "Unknown"
	noDescription      = "No description available"
	importedCategory   = "Online Courses"
	unlimitedStock     = 9999
	DefaultImportPrice = 99.99
)

type ImportUC struct {
	Catalog      domain.CourseCatalog
	Products     *ProductUC
	Courses      *CourseUC
	PageSize     int
	DefaultPrice float64
}

// MapCourseToProduct turns a catalog course into a product row. The
// mapping is pure and deterministic: the same slug always yields the
// same SKU, so a re-import lands on the duplicate-sku path instead of
// creating a second row.
func MapCourseToProduct(c domain.CatalogCourse, defaultPrice float64) domain.Product {
	title := c.Title
	if title == "" {
		title = unknownTitle
	}
	slug := c.Slug
	if slug == "" {
		slug = unknownSlug
	}
	description := c.Description
	if description == "" {
		description = noDescription
	}
	teacher := c.TeacherName
	if teacher == "" {
		teacher = unknownTeacher
	}
	cost := 0.0
	return domain.Product{
		Name:          title,
		SKU:           "PLATZI-" + strings.ToUpper(slug),
		Description:   description,
		Price:         defaultPrice,
		Cost:          &cost,
		StockQuantity: unlimitedStock,
		SupplierName:  "Platzi - " + teacher,
		SupplierURL:   "https://platzi.com/courses/" + c.Slug,
		Category:      importedCategory,
	}
}

// Fetch pulls courses from the catalog without importing anything.
func (uc *ImportUC) Fetch(ctx context.Context, limit int) ([]domain.CatalogCourse, error) {
	if limit <= 0 {
		limit = uc.PageSize
	}
	return uc.Catalog.FetchCourses(ctx, limit)
}

// ImportOne maps a single course into the product catalog and records
// the course row. A course already recorded under the same slug is not
// an error; the product insert decides success.
func (uc *ImportUC) ImportOne(ctx context.Context, c domain.CatalogCourse, price float64) (uint, error) {
	if price <= 0 {
		price = uc.defaultPrice()
	}
	p := MapCourseToProduct(c, price)
	if err := uc.Products.Create(ctx, &p); err != nil {
		return 0, err
	}
	course := domain.Course{Title: p.Name, Slug: strings.ToLower(c.Slug), Description: c.Description, TeacherName: c.TeacherName}
	if course.Slug == "" {
		course.Slug = unknownSlug
	}
	if err := uc.Courses.Create(ctx, &course); err != nil && !domain.IsDuplicate(err) {
		log.Warn().Err(err).Str("slug", course.Slug).Msg("could not record imported course")
	}
	return p.ID, nil
}

// ImportReport counts the outcome of a bulk import. Rows committed
// before a failure stay committed; there is no rollback.
type ImportReport struct {
	BatchID   string   `json:"batch_id"`
	Requested int      `json:"requested"`
	Imported  int      `json:"imported"`
	Skipped   int      `json:"skipped"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// ImportAll fetches up to count courses and imports them sequentially.
// Duplicates count as skipped, other failures as failed; the fetch
// itself failing is the only error returned.
func (uc *ImportUC) ImportAll(ctx context.Context, count int, price float64) (ImportReport, error) {
	report := ImportReport{BatchID: uuid.NewString()}
	courses, err := uc.Fetch(ctx, count)
	if err != nil {
		return report, err
	}
	report.Requested = len(courses)
	for _, c := range courses {
		_, err := uc.ImportOne(ctx, c, price)
		switch {
		case err == nil:
			report.Imported++
		case domain.IsDuplicate(err):
			report.Skipped++
		default:
			report.Failed++
			report.Errors = append(report.Errors, c.Slug+": "+err.Error())
		}
	}
	log.Info().Str("batch", report.BatchID).Int("imported", report.Imported).
		Int("skipped", report.Skipped).Int("failed", report.Failed).Msg("catalog import finished")
	return report, nil
}

func (uc *ImportUC) defaultPrice() float64 {
	if uc.DefaultPrice > 0 {
		return uc.DefaultPrice
	}
	return DefaultImportPrice
}
