package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 2000
	maxQueryLen       = 200
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	NameEN           string
	NameLocal        string
	DescriptionEN    string
	DescriptionLocal string
	ParentID         *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.NameEN)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name_en", Message: "required"})
	}
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name_en", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	}
	if len(strings.TrimSpace(i.NameLocal)) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name_local", Message: fmt.Sprintf("max %d characters", maxNameLen)})
	}
	if len(i.DescriptionEN) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description_en", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}
	if len(i.DescriptionLocal) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description_local", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must be a valid id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MoveCategoryInput re-parents a category. A nil ParentID makes it a root.
type MoveCategoryInput struct {
	CategoryID uuid.UUID
	ParentID   *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MoveCategoryInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.ParentID != nil {
		switch {
		case *i.ParentID == uuid.Nil:
			errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must be a valid id"})
		case *i.ParentID == i.CategoryID:
			errs = append(errs, domain.FieldError{Field: "parent_id", Message: "cycle"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchProductsInput holds the parameters for SearchProducts.
type SearchProductsInput struct {
	Query string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i SearchProductsInput) Validate() error {
	var errs []domain.FieldError

	q := strings.TrimSpace(i.Query)
	if q == "" {
		errs = append(errs, domain.FieldError{Field: "q", Message: "required"})
	}
	if len(q) > maxQueryLen {
		errs = append(errs, domain.FieldError{Field: "q", Message: fmt.Sprintf("max %d characters", maxQueryLen)})
	}
	if i.Limit < 0 || i.Limit > MaxSearchLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", MaxSearchLimit)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
