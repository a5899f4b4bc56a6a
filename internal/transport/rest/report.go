package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
	"github.com/heartmarshall/bookstore-backend/internal/service/report"
)

type reportService interface {
	DailyRevenue(ctx context.Context, date string) (domain.DailyRevenue, error)
	MonthlyTopProducts(ctx context.Context, month string, n int) ([]domain.ProductRevenue, error)
	HighValueCustomers(ctx context.Context, input report.HighValueInput) ([]domain.CustomerValue, error)
}

const (
	defaultTopN       = 10
	defaultWindowDays = 30
)

// ReportHandler serves revenue and customer reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type dailyRevenueResponse struct {
	Date       string          `json:"date"`
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"order_count"`
}

type productRevenueResponse struct {
	Rank      int             `json:"rank"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Units     int             `json:"units"`
	Revenue   decimal.Decimal `json:"revenue"`
}

type customerValueResponse struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	OrderCount int             `json:"order_count"`
	Total      decimal.Decimal `json:"total"`
}

// DailyRevenue handles GET /api/v1/reports/daily-revenue?date=YYYY-MM-DD.
func (h *ReportHandler) DailyRevenue(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	res, err := h.svc.DailyRevenue(r.Context(), date)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dailyRevenueResponse{
		Date:       res.Date.Format("2006-01-02"),
		From:       res.From,
		To:         res.To,
		Revenue:    res.Revenue,
		OrderCount: res.OrderCount,
	})
}

// TopProducts handles GET /api/v1/reports/top-products?month=YYYY-MM&n=.
func (h *ReportHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", defaultTopN)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	rows, err := h.svc.MonthlyTopProducts(r.Context(), r.URL.Query().Get("month"), n)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]productRevenueResponse, len(rows))
	for i, row := range rows {
		out[i] = productRevenueResponse{
			Rank:      i + 1,
			ProductID: row.ProductID,
			Name:      row.NameEN,
			Units:     row.Units,
			Revenue:   row.Revenue,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// HighValueCustomers handles
// GET /api/v1/reports/high-value-customers?window_days=&threshold=.
func (h *ReportHandler) HighValueCustomers(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "window_days", defaultWindowDays)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("threshold"))
	if raw == "" {
		writeDomainError(w, r, h.log, domain.NewValidationError("threshold", "required"))
		return
	}
	threshold, err := decimal.NewFromString(raw)
	if err != nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("threshold", "must be a decimal number"))
		return
	}

	rows, err := h.svc.HighValueCustomers(r.Context(), report.HighValueInput{
		WindowDays: days,
		Threshold:  threshold,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]customerValueResponse, len(rows))
	for i, row := range rows {
		out[i] = customerValueResponse{
			CustomerID: row.CustomerID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Email:      row.Email,
			OrderCount: row.OrderCount,
			Total:      row.Total,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
