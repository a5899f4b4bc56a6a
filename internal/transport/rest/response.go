package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
	"github.com/heartmarshall/bookstore-backend/pkg/ctxutil"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Error codes rendered in the error envelope.
const (
	codeValidation        = "validation"
	codeNotFound          = "not_found"
	codeConflict          = "conflict"
	codeAlreadyExists     = "already_exists"
	codeInsufficientStock = "insufficient_stock"
	codeInternal          = "internal"
	codeBadRequest        = "bad_request"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    []fieldError      `json:"fields,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, r *http.Request, status int, body errorBody) {
	body.RequestID = ctxutil.RequestIDFromCtx(r.Context())
	writeJSON(w, status, errorEnvelope{Error: body})
}

// writeDomainError maps service errors onto HTTP statuses:
// validation 400, not found 404, conflict 409, insufficient stock 422.
// Anything else is logged and rendered as 500.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		se *domain.InsufficientStockError
	)

	switch {
	case errors.As(err, &ve):
		fields := make([]fieldError, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeError(w, r, http.StatusBadRequest, errorBody{Code: codeValidation, Message: "invalid input", Fields: fields})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, r, http.StatusBadRequest, errorBody{Code: codeValidation, Message: err.Error()})
	case errors.As(err, &se):
		writeError(w, r, http.StatusUnprocessableEntity, errorBody{
			Code:    codeInsufficientStock,
			Message: "insufficient stock",
			Details: map[string]string{
				"product_id": se.ProductID,
				"requested":  strconv.Itoa(se.Requested),
				"available":  strconv.Itoa(se.Available),
			},
		})
	case errors.Is(err, domain.ErrInsufficientStock):
		writeError(w, r, http.StatusUnprocessableEntity, errorBody{Code: codeInsufficientStock, Message: "insufficient stock"})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, errorBody{Code: codeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, errorBody{Code: codeAlreadyExists, Message: err.Error()})
	case errors.Is(err, domain.ErrConflict):
		writeError(w, r, http.StatusConflict, errorBody{Code: codeConflict, Message: err.Error()})
	case errors.Is(err, context.Canceled):
		// Client went away; nothing useful to send.
		log.DebugContext(r.Context(), "request canceled", slog.String("error", err.Error()))
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
		)
		writeError(w, r, http.StatusInternalServerError, errorBody{Code: codeInternal, Message: "internal server error"})
	}
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeError(w, r, http.StatusBadRequest, errorBody{Code: codeBadRequest, Message: message})
}

// decodeJSON reads a single JSON object from the body, rejecting unknown
// fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid request body: trailing data")
	}
	return nil
}

// queryInt parses an optional integer query parameter. Missing means def.
func queryInt(r *http.Request, name string, def int) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
