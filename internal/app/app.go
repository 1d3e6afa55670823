package app

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/nmoreira/dropship/internal/adapters/catalog/platzi"
	"github.com/nmoreira/dropship/internal/adapters/httpserver"
	"github.com/nmoreira/dropship/internal/adapters/repo/postgres"
	"github.com/nmoreira/dropship/internal/domain"
	"github.com/nmoreira/dropship/internal/usecase"
)

// Config is the runtime configuration beyond the database DSN, all of
// it read from the environment so no credential lives in source.
type Config struct {
	CatalogURL      string
	CatalogPageSize int
	CatalogTimeout  time.Duration
	ImportPrice     float64
}

func LoadConfig() Config {
	cfg := Config{
		CatalogURL:      platzi.DefaultURL,
		CatalogPageSize: 20,
		CatalogTimeout:  10 * time.Second,
		ImportPrice:     usecase.DefaultImportPrice,
	}
	if v := os.Getenv("CATALOG_URL"); v != "" {
		cfg.CatalogURL = v
	}
	if v := os.Getenv("CATALOG_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CatalogPageSize = n
		}
	}
	if v := os.Getenv("CATALOG_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CatalogTimeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("IMPORT_DEFAULT_PRICE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.ImportPrice = f
		}
	}
	return cfg
}

type App struct {
	DB         *gorm.DB
	CustomerUC *usecase.CustomerUC
	ProductUC  *usecase.ProductUC
	OrderUC    *usecase.OrderUC
	CourseUC   *usecase.CourseUC
	ImportUC   *usecase.ImportUC
}

func NewApp(db *gorm.DB, cfg Config) *App {
	custRepo := postgres.NewCustomerRepo(db)
	prodRepo := postgres.NewProductRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	courseRepo := postgres.NewCourseRepo(db)
	catalog := platzi.NewClient(cfg.CatalogURL, cfg.CatalogTimeout)

	app := &App{DB: db}
	app.CustomerUC = &usecase.CustomerUC{Customers: custRepo}
	app.ProductUC = &usecase.ProductUC{Products: prodRepo}
	app.OrderUC = &usecase.OrderUC{Orders: orderRepo, Products: prodRepo}
	app.CourseUC = &usecase.CourseUC{Courses: courseRepo}
	app.ImportUC = &usecase.ImportUC{
		Catalog:      catalog,
		Products:     app.ProductUC,
		Courses:      app.CourseUC,
		PageSize:     cfg.CatalogPageSize,
		DefaultPrice: cfg.ImportPrice,
	}
	return app
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.CustomerUC, a.ProductUC, a.OrderUC, a.CourseUC, a.ImportUC)
}

// Migrate creates the schema and the indexes the listing paths lean on.
func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.Customer{}, &domain.Product{}, &domain.Order{}, &domain.Course{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_product_id ON orders(product_id)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_sku ON products(sku)").Error

	return nil
}
