package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
	"github.com/heartmarshall/bookstore-backend/internal/service/catalog"
)

type catalogService interface {
	CreateCategory(ctx context.Context, input catalog.CreateCategoryInput) (domain.Category, error)
	MoveCategory(ctx context.Context, input catalog.MoveCategoryInput) error
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	SearchProducts(ctx context.Context, input catalog.SearchProductsInput) ([]domain.Product, error)
}

// CatalogHandler serves category maintenance and product lookup.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type createCategoryRequest struct {
	NameEN           string     `json:"name_en"`
	NameLocal        string     `json:"name_local"`
	DescriptionEN    string     `json:"description_en"`
	DescriptionLocal string     `json:"description_local"`
	ParentID         *uuid.UUID `json:"parent_id"`
}

type moveCategoryRequest struct {
	ParentID *uuid.UUID `json:"parent_id"`
}

type categoryResponse struct {
	ID               uuid.UUID  `json:"id"`
	NameEN           string     `json:"name_en"`
	NameLocal        string     `json:"name_local,omitempty"`
	DescriptionEN    string     `json:"description_en,omitempty"`
	DescriptionLocal string     `json:"description_local,omitempty"`
	ParentID         *uuid.UUID `json:"parent_id"`
}

type productResponse struct {
	ID            string          `json:"id"`
	CategoryID    uuid.UUID       `json:"category_id"`
	AuthorID      uuid.UUID       `json:"author_id"`
	NameEN        string          `json:"name_en"`
	NameLocal     string          `json:"name_local,omitempty"`
	DescriptionEN string          `json:"description_en,omitempty"`
	Price         decimal.Decimal `json:"price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
}

// CreateCategory handles POST /api/v1/categories.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), catalog.CreateCategoryInput{
		NameEN:           req.NameEN,
		NameLocal:        req.NameLocal,
		DescriptionEN:    req.DescriptionEN,
		DescriptionLocal: req.DescriptionLocal,
		ParentID:         req.ParentID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, categoryResponse{
		ID:               c.ID,
		NameEN:           c.NameEN,
		NameLocal:        c.NameLocal,
		DescriptionEN:    c.DescriptionEN,
		DescriptionLocal: c.DescriptionLocal,
		ParentID:         c.ParentID,
	})
}

// MoveCategory handles PUT /api/v1/categories/{id}/parent.
func (h *CatalogHandler) MoveCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req moveCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	if err := h.svc.MoveCategory(r.Context(), catalog.MoveCategoryInput{CategoryID: id, ParentID: req.ParentID}); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetProduct handles GET /api/v1/products/{id}.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProduct(r.Context(), chiParam(r, "id"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(p))
}

// SearchProducts handles GET /api/v1/products/search?q=&limit=.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	products, err := h.svc.SearchProducts(r.Context(), catalog.SearchProductsInput{
		Query: r.URL.Query().Get("q"),
		Limit: limit,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		AuthorID:      p.AuthorID,
		NameEN:        p.NameEN,
		NameLocal:     p.NameLocal,
		DescriptionEN: p.DescriptionEN,
		Price:         p.Price,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
	}
}
