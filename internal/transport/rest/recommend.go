package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
	"github.com/heartmarshall/bookstore-backend/internal/service/recommend"
)

type recommendService interface {
	RecommendProducts(ctx context.Context, input recommend.RecommendInput) ([]domain.Recommendation, error)
}

// RecommendHandler serves product recommendations.
type RecommendHandler struct {
	svc recommendService
	log *slog.Logger
}

// NewRecommendHandler creates a RecommendHandler.
func NewRecommendHandler(svc recommendService, logger *slog.Logger) *RecommendHandler {
	return &RecommendHandler{svc: svc, log: logger.With("handler", "recommend")}
}

type recommendationResponse struct {
	ProductID  string    `json:"product_id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
	AuthorID   uuid.UUID `json:"author_id"`
}

// List handles GET /api/v1/customers/{id}/recommendations?mode=&limit=.
func (h *RecommendHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	recs, err := h.svc.RecommendProducts(r.Context(), recommend.RecommendInput{
		CustomerID: id,
		Mode:       r.URL.Query().Get("mode"),
		Limit:      limit,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]recommendationResponse, len(recs))
	for i, rec := range recs {
		out[i] = recommendationResponse{
			ProductID:  rec.ProductID,
			Name:       rec.NameEN,
			CategoryID: rec.CategoryID,
			AuthorID:   rec.AuthorID,
		}
	}
	writeJSON(w, http.StatusOK, out)
}
