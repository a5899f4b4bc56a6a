package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
	"github.com/heartmarshall/bookstore-backend/internal/service/order"
)

type orderService interface {
	CreateOrder(ctx context.Context, input order.CreateOrderInput) (*order.CreateOrderResult, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
}

type historyService interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]domain.SalesHistoryRecord, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]domain.SalesHistoryRecord, error)
}

// OrderHandler serves order endpoints.
type OrderHandler struct {
	orders  orderService
	history historyService
	log     *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(orders orderService, history historyService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, history: history, log: logger.With("handler", "order")}
}

type createOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id"`
	Items      []orderItemRequest `json:"items"`
}

type orderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type orderResponse struct {
	ID         uuid.UUID          `json:"id"`
	CustomerID uuid.UUID          `json:"customer_id"`
	CreatedAt  time.Time          `json:"created_at"`
	Total      decimal.Decimal    `json:"total_amount"`
	Items      []lineItemResponse `json:"items"`
}

type lineItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID string          `json:"product_id"`
	Position  int             `json:"position"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type historyRecordResponse struct {
	LineItemID     uuid.UUID       `json:"line_item_id"`
	OrderID        uuid.UUID       `json:"order_id"`
	OrderCreatedAt time.Time       `json:"order_created_at"`
	CustomerID     uuid.UUID       `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	ProductName    string          `json:"product_name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	RecordedAt     time.Time       `json:"recorded_at"`
}

// Create handles POST /api/v1/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	input := order.CreateOrderInput{
		CustomerID: req.CustomerID,
		Items:      make([]order.OrderedItem, len(req.Items)),
	}
	for i, it := range req.Items {
		input.Items[i] = order.OrderedItem{ProductID: it.ProductID, Quantity: it.Quantity}
	}

	res, err := h.orders.CreateOrder(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.Header().Set("Location", "/api/v1/orders/"+res.OrderID.String())
	writeJSON(w, http.StatusCreated, orderResponse{
		ID:         res.OrderID,
		CustomerID: res.CustomerID,
		CreatedAt:  res.CreatedAt,
		Total:      res.Total,
		Items:      toLineItemResponses(res.Items),
	})
}

// Get handles GET /api/v1/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	o, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, orderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		CreatedAt:  o.CreatedAt,
		Total:      o.TotalAmount,
		Items:      toLineItemResponses(o.Items),
	})
}

// History handles GET /api/v1/orders/{id}/history.
func (h *OrderHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.history.ListByOrder(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(records))
}

// CustomerHistory handles GET /api/v1/customers/{id}/history?limit=.
func (h *OrderHandler) CustomerHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	records, err := h.history.ListByCustomer(r.Context(), id, limit)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponses(records))
}

func toLineItemResponses(items []domain.OrderLineItem) []lineItemResponse {
	out := make([]lineItemResponse, len(items))
	for i, li := range items {
		out[i] = lineItemResponse{
			ID:        li.ID,
			ProductID: li.ProductID,
			Position:  li.Position,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			LineTotal: li.LineTotal(),
		}
	}
	return out
}

func toHistoryResponses(records []domain.SalesHistoryRecord) []historyRecordResponse {
	out := make([]historyRecordResponse, len(records))
	for i, rec := range records {
		out[i] = historyRecordResponse{
			LineItemID:     rec.LineItemID,
			OrderID:        rec.OrderID,
			OrderCreatedAt: rec.OrderCreatedAt,
			CustomerID:     rec.CustomerID,
			CustomerName:   rec.CustomerName,
			ProductName:    rec.ProductName,
			Quantity:       rec.Quantity,
			UnitPrice:      rec.UnitPrice,
			RecordedAt:     rec.RecordedAt,
		}
	}
	return out
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, errorBody{
			Code:    codeValidation,
			Message: "invalid input",
			Fields:  []fieldError{{Field: name, Message: "must be a UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}
