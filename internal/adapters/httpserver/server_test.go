package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nmoreira/dropship/internal/adapters/httpserver"
	"github.com/nmoreira/dropship/internal/adapters/repo/postgres"
	"github.com/nmoreira/dropship/internal/domain"
	"github.com/nmoreira/dropship/internal/usecase"
)

type fakeCatalog struct {
	courses []domain.CatalogCourse
	err     error
}

func (f *fakeCatalog) FetchCourses(context.Context, int) ([]domain.CatalogCourse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.courses, nil
}

func setupServer(t *testing.T, catalog domain.CourseCatalog) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Customer{}, &domain.Product{}, &domain.Order{}, &domain.Course{}))

	customers := &usecase.CustomerUC{Customers: postgres.NewCustomerRepo(db)}
	products := &usecase.ProductUC{Products: postgres.NewProductRepo(db)}
	orders := &usecase.OrderUC{Orders: postgres.NewOrderRepo(db), Products: postgres.NewProductRepo(db)}
	courses := &usecase.CourseUC{Courses: postgres.NewCourseRepo(db)}
	importer := &usecase.ImportUC{Catalog: catalog, Products: products, Courses: courses, PageSize: 20, DefaultPrice: 99.99}
	return httpserver.New(customers, products, orders, courses, importer)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCustomerLifecycle(t *testing.T) {
	h := setupServer(t, &fakeCatalog{})

	rec := doJSON(t, h, http.MethodPost, "/api/customers", map[string]any{
		"name": "John Doe", "email": "John@Example.com", "phone": "(555) 123-4567", "address": "123 Main St",
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())
	var created domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "john@example.com", created.Email)
	assert.NotZero(t, created.ID)

	// same email again, case-shifted, is a 409 with the specific message
	rec = doJSON(t, h, http.MethodPost, "/api/customers", map[string]any{
		"name": "Jane", "email": "JOHN@example.com", "phone": "5559876543", "address": "9 Side St",
	})
	assert.Equal(t, 409, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer with this email already exists")

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/customers/%d", created.ID), map[string]any{"city": "Austin"})
	assert.Equal(t, 200, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/customers/%d", created.ID), nil)
	assert.Equal(t, 200, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/customers/%d", created.ID), nil)
	assert.Equal(t, 404, rec.Code)
}

func TestCustomerValidationErrors(t *testing.T) {
	h := setupServer(t, &fakeCatalog{})

	rec := doJSON(t, h, http.MethodPost, "/api/customers", map[string]any{
		"name": "John", "email": "john.example.com", "phone": "5551234567", "address": "x",
	})
	assert.Equal(t, 400, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/customers", map[string]any{
		"name": "John", "email": "john@example.com", "phone": "+15551234567", "address": "x",
	})
	assert.Equal(t, 400, rec.Code)
}

func TestOrderFlowAndDashboard(t *testing.T) {
	h := setupServer(t, &fakeCatalog{})

	rec := doJSON(t, h, http.MethodPost, "/api/customers", map[string]any{
		"name": "John Doe", "email": "john@example.com", "phone": "5551234567", "address": "x",
	})
	require.Equal(t, 201, rec.Code)
	var cust domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cust))

	rec = doJSON(t, h, http.MethodPost, "/api/products", map[string]any{
		"name": "Headphones", "sku": "wh-001", "price": 29.99, "stock_quantity": 5,
	})
	require.Equal(t, 201, rec.Code)
	var prod domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prod))
	assert.Equal(t, "WH-001", prod.SKU)

	rec = doJSON(t, h, http.MethodPost, "/api/orders", map[string]any{
		"customer_id": cust.ID, "product_id": prod.ID, "quantity": 2,
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())
	var order domain.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 59.98, order.TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, order.Status)

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", order.ID), map[string]any{"status": "shipped"})
	assert.Equal(t, 200, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodGet, "/api/orders?status=shipped", nil)
	require.Equal(t, 200, rec.Code)
	var listing struct {
		Items []domain.OrderView `json:"items"`
		Total int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Equal(t, 1, listing.Total)
	assert.Equal(t, "John Doe", listing.Items[0].CustomerName)
	assert.Equal(t, "WH-001", listing.Items[0].ProductSKU)

	rec = doJSON(t, h, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, 200, rec.Code)
	var summary struct {
		TotalOrders    int     `json:"total_orders"`
		TotalRevenue   float64 `json:"total_revenue"`
		InventoryValue float64 `json:"inventory_value"`
		LowStock       []any   `json:"low_stock"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 59.98, summary.TotalRevenue)
	assert.InDelta(t, 149.95, summary.InventoryValue, 0.001)
	assert.Len(t, summary.LowStock, 1)
}

func TestCatalogImportEndpoint(t *testing.T) {
	catalog := &fakeCatalog{courses: []domain.CatalogCourse{
		{Title: "Python Basics", Slug: "python-basics", TeacherName: "Ana"},
	}}
	h := setupServer(t, catalog)

	rec := doJSON(t, h, http.MethodPost, "/api/catalog/import", map[string]any{"count": 1})
	require.Equal(t, 200, rec.Code, rec.Body.String())
	var rep usecase.ImportReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 1, rep.Imported)

	// importing the same slug again skips instead of duplicating
	rec = doJSON(t, h, http.MethodPost, "/api/catalog/import", map[string]any{"count": 1})
	require.Equal(t, 200, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 0, rep.Imported)
	assert.Equal(t, 1, rep.Skipped)

	rec = doJSON(t, h, http.MethodGet, "/api/products", nil)
	require.Equal(t, 200, rec.Code)
	var listing struct {
		Items []domain.Product `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, "PLATZI-PYTHON-BASICS", listing.Items[0].SKU)
	assert.Equal(t, "Online Courses", listing.Items[0].Category)
}

func TestExportXLSX(t *testing.T) {
	h := setupServer(t, &fakeCatalog{})
	rec := doJSON(t, h, http.MethodGet, "/admin/export.xlsx", nil)
	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())
}

func TestRequestIDHeader(t *testing.T) {
	h := setupServer(t, &fakeCatalog{})
	rec := doJSON(t, h, http.MethodGet, "/health", nil)
	assert.Equal(t, 200, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
