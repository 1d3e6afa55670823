package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/nmoreira/dropship/internal/domain"
)

// Workbook renders customers, products and orders into an XLSX file with
// a dashboard sheet of the same aggregates the API exposes.
func Workbook(customers []domain.Customer, products []domain.Product, orders []domain.OrderView) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Dashboard"); err != nil {
		return nil, err
	}

	if err := writeDashboard(f, customers, products, orders); err != nil {
		return nil, err
	}
	if err := writeCustomers(f, customers); err != nil {
		return nil, err
	}
	if err := writeProducts(f, products); err != nil {
		return nil, err
	}
	if err := writeOrders(f, orders); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeDashboard(f *excelize.File, customers []domain.Customer, products []domain.Product, orders []domain.OrderView) error {
	s := BuildSummary(customers, products, orders)
	rows := [][]any{
		{"Metric", "Value"},
		{"Total Customers", s.TotalCustomers},
		{"Total Products", s.TotalProducts},
		{"Total Orders", s.TotalOrders},
		{"Total Revenue", s.TotalRevenue},
		{"Inventory Value", s.InventoryValue},
		{},
		{"Status", "Orders", "Revenue"},
	}
	for _, st := range s.StatusBreakdown {
		rows = append(rows, []any{string(st.Status), st.Count, st.Revenue})
	}
	rows = append(rows, []any{}, []any{"Top Product", "Units", "Revenue"})
	for _, top := range s.TopSellers {
		name := top.ProductName
		if name == "" {
			name = fmt.Sprintf("Product #%d", top.ProductID)
		}
		rows = append(rows, []any{name, top.Quantity, top.Revenue})
	}
	for i, r := range rows {
		if err := writeRow(f, "Dashboard", i+1, r...); err != nil {
			return err
		}
	}
	return nil
}

func writeCustomers(f *excelize.File, customers []domain.Customer) error {
	if _, err := f.NewSheet("Customers"); err != nil {
		return err
	}
	if err := writeRow(f, "Customers", 1, "ID", "Name", "Email", "Phone", "Address", "City", "State", "Zip", "Country", "Created"); err != nil {
		return err
	}
	for i, c := range customers {
		if err := writeRow(f, "Customers", i+2, c.ID, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ZipCode, c.Country, c.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}

func writeProducts(f *excelize.File, products []domain.Product) error {
	if _, err := f.NewSheet("Products"); err != nil {
		return err
	}
	if err := writeRow(f, "Products", 1, "ID", "Name", "SKU", "Price", "Cost", "Stock", "Category", "Supplier", "Margin %"); err != nil {
		return err
	}
	for i, p := range products {
		cost := 0.0
		if p.Cost != nil {
			cost = *p.Cost
		}
		if err := writeRow(f, "Products", i+2, p.ID, p.Name, p.SKU, p.Price, cost, p.StockQuantity, p.Category, p.SupplierName, p.Margin()); err != nil {
			return err
		}
	}
	return nil
}

func writeOrders(f *excelize.File, orders []domain.OrderView) error {
	if _, err := f.NewSheet("Orders"); err != nil {
		return err
	}
	if err := writeRow(f, "Orders", 1, "ID", "Customer", "Email", "Product", "SKU", "Qty", "Total", "Status", "Tracking", "Created"); err != nil {
		return err
	}
	for i, o := range orders {
		if err := writeRow(f, "Orders", i+2, o.ID, o.CustomerName, o.CustomerEmail, o.ProductName, o.ProductSKU, o.Quantity, o.TotalAmount, string(o.Status), o.TrackingNumber, o.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}
