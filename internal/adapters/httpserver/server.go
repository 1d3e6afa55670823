package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nmoreira/dropship/internal/adapters/catalog/platzi"
	"github.com/nmoreira/dropship/internal/domain"
	"github.com/nmoreira/dropship/internal/report"
	"github.com/nmoreira/dropship/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	customers *usecase.CustomerUC
	products  *usecase.ProductUC
	orders    *usecase.OrderUC
	courses   *usecase.CourseUC
	importer  *usecase.ImportUC
}

func New(customers *usecase.CustomerUC, products *usecase.ProductUC, orders *usecase.OrderUC, courses *usecase.CourseUC, importer *usecase.ImportUC) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		customers: customers,
		products:  products,
		orders:    orders,
		courses:   courses,
		importer:  importer,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	s.mux.HandleFunc("/api/customers", s.handleCustomers)
	s.mux.HandleFunc("/api/customers/", s.handleCustomerByID)
	s.mux.HandleFunc("/api/products", s.handleProducts)
	s.mux.HandleFunc("/api/products/", s.handleProductByID)
	s.mux.HandleFunc("/api/orders", s.handleOrders)
	s.mux.HandleFunc("/api/orders/", s.handleOrderByID)
	s.mux.HandleFunc("/api/courses", s.handleCourses)
	s.mux.HandleFunc("/api/courses/", s.handleCourseByID)

	s.mux.HandleFunc("/api/catalog/courses", s.handleCatalogCourses)
	s.mux.HandleFunc("/api/catalog/import", s.handleCatalogImport)

	s.mux.HandleFunc("/api/dashboard", s.handleDashboard)
	s.mux.HandleFunc("/admin/export.xlsx", s.handleExportXLSX)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, 200, map[string]any{"status": "ok"})
}

// --- customers ---

func (s *Server) handleCustomers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.customers.List(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var c domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeError(w, 400, "invalid json")
			return
		}
		if err := s.customers.Create(r.Context(), &c); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 201, c)
	default:
		writeError(w, 405, "method not allowed")
	}
}

func (s *Server) handleCustomerByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/api/customers/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodPut:
		var upd usecase.CustomerUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeError(w, 400, "invalid json")
			return
		}
		if err := s.customers.Update(r.Context(), id, upd); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "message": "customer updated"})
	case http.MethodDelete:
		if err := s.customers.Delete(r.Context(), id); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "message": "customer deleted"})
	default:
		writeError(w, 405, "method not allowed")
	}
}

// --- products ---

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.products.List(r.Context())
		if err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var p domain.Product
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			writeError(w, 400, "invalid json")
			return
		}
		if err := s.products.Create(r.Context(), &p); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 201, p)
	default:
		writeError(w, 405, "method not allowed")
	}
}

func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/api/products/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodPut:
		var upd usecase.ProductUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeError(w, 400, "invalid json")
			return
		}
		if err := s.products.Update(r.Context(), id, upd); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "message": "product updated"})
	case http.MethodDelete:
		if err := s.products.Delete(r.Context(), id); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "message": "product deleted"})
	default:
		writeError(w, 405, "method not allowed")
	}
}

// --- orders ---

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		var statuses []domain.OrderStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			for _, part := range strings.Split(raw, ",") {
				statuses = append(statuses, domain.OrderStatus(strings.TrimSpace(part)))
			}
		}
		views, err := s.orders.List(r.Context(), statuses)
		if err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": views, "total": len(views)})
	case http.MethodPost:
		var o domain.Order
		if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
			writeError(w, 400, "invalid json")
			return
		}
		if err := s.orders.Create(r.Context(), &o); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 201, o)
	default:
		writeError(w, 405, "method not allowed")
	}
}

func (s *Server) handleOrderByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if strings.HasSuffix(rest, "/status") {
		s.handleOrderStatus(w, r, strings.TrimSuffix(rest, "/status"))
		return
	}
	id, ok := pathID(w, r, "/api/orders/")
	if !ok {
		return
	}
	switch r.Method {
	case http.MethodPut:
		var upd usecase.OrderUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			writeError(w, 400, "invalid json")
			return
		}
		if err := s.orders.Update(r.Context(), id, upd); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "message": "order updated"})
	case http.MethodDelete:
		if err := s.orders.Delete(r.Context(), id); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"status": "ok", "message": "order deleted"})
	default:
		writeError(w, 405, "method not allowed")
	}
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request, idStr string) {
	if r.Method != http.MethodPut {
		writeError(w, 405, "method not allowed")
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		writeError(w, 400, "invalid id")
		return
	}
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if err := s.orders.UpdateStatus(r.Context(), uint(id), req.Status); err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"status": "ok", "message": fmt.Sprintf("order status updated to %s", req.Status)})
}

// --- courses ---

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.courses.List(r.Context())
		if err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 200, map[string]any{"items": list, "total": len(list)})
	case http.MethodPost:
		var c domain.Course
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			writeError(w, 400, "invalid json")
			return
		}
		if err := s.courses.Create(r.Context(), &c); err != nil {
			s.writeErr(w, err)
			return
		}
		writeJSON(w, 201, c)
	default:
		writeError(w, 405, "method not allowed")
	}
}

func (s *Server) handleCourseByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "/api/courses/")
	if !ok {
		return
	}
	if r.Method != http.MethodDelete {
		writeError(w, 405, "method not allowed")
		return
	}
	if err := s.courses.Delete(r.Context(), id); err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, 200, map[string]any{"status": "ok", "message": "course deleted"})
}

// --- catalog ---

func (s *Server) handleCatalogCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "method not allowed")
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, 400, "invalid limit")
			return
		}
		limit = n
	}
	courses, err := s.importer.Fetch(r.Context(), limit)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	items := make([]map[string]any, 0, len(courses))
	for _, c := range courses {
		items = append(items, map[string]any{
			"title":        c.Title,
			"slug":         c.Slug,
			"description":  c.Description,
			"teacher_name": c.TeacherName,
		})
	}
	writeJSON(w, 200, map[string]any{"items": items, "total": len(items)})
}

func (s *Server) handleCatalogImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, 405, "method not allowed")
		return
	}
	var req struct {
		Count        int     `json:"count"`
		DefaultPrice float64 `json:"default_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	rep, err := s.importer.ImportAll(r.Context(), req.Count, req.DefaultPrice)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, 200, rep)
}

// --- dashboard & export ---

func (s *Server) fetchAll(r *http.Request) ([]domain.Customer, []domain.Product, []domain.OrderView, error) {
	customers, err := s.customers.List(r.Context(), "")
	if err != nil {
		return nil, nil, nil, err
	}
	products, err := s.products.List(r.Context())
	if err != nil {
		return nil, nil, nil, err
	}
	orders, err := s.orders.List(r.Context(), nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return customers, products, orders, nil
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "method not allowed")
		return
	}
	customers, products, orders, err := s.fetchAll(r)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, 200, report.BuildSummary(customers, products, orders))
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, 405, "method not allowed")
		return
	}
	customers, products, orders, err := s.fetchAll(r)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	f, err := report.Workbook(customers, products, orders)
	if err != nil {
		s.writeErr(w, err)
		return
	}
	defer f.Close()
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		s.writeErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=dropship-%s.xlsx", time.Now().Format("2006-01-02")))
	w.WriteHeader(200)
	_, _ = w.Write(buf.Bytes())
}

// --- helpers ---

func pathID(w http.ResponseWriter, r *http.Request, prefix string) (uint, bool) {
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		writeError(w, 400, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"status": "error", "message": msg})
}

// writeErr maps domain and catalog errors onto HTTP responses. Duplicate
// keys get a field-specific message so the UI can tell them apart from
// generic store failures.
func (s *Server) writeErr(w http.ResponseWriter, err error) {
	var dup *domain.DuplicateKeyError
	var statusErr *platzi.StatusError
	var apiErr *platzi.APIError
	switch {
	case errors.As(err, &dup):
		writeError(w, 409, duplicateMessage(dup.Field))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, 404, "not found")
	case errors.Is(err, domain.ErrInvalid):
		writeError(w, 400, err.Error())
	case errors.Is(err, platzi.ErrTimeout):
		writeError(w, 504, "catalog request timed out")
	case errors.As(err, &statusErr), errors.As(err, &apiErr):
		writeError(w, 502, err.Error())
	default:
		log.Error().Err(err).Msg("operation failed")
		writeError(w, 500, "operation failed: "+err.Error())
	}
}

func duplicateMessage(field string) string {
	switch field {
	case "email":
		return "customer with this email already exists"
	case "sku":
		return "product with this SKU already exists"
	case "slug":
		return "course with this slug already exists"
	}
	return field + " already exists"
}
