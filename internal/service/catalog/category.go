package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/bookstore-backend/internal/domain"
)

// CreateCategory inserts a new category under an existing parent, or as a root.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (domain.Category, error) {
	ctx, span := tracer.Start(ctx, "catalog.CreateCategory")
	defer span.End()

	if err := input.Validate(); err != nil {
		return domain.Category{}, err
	}

	c := domain.Category{
		ID:               uuid.New(),
		NameEN:           strings.TrimSpace(input.NameEN),
		NameLocal:        strings.TrimSpace(input.NameLocal),
		DescriptionEN:    input.DescriptionEN,
		DescriptionLocal: input.DescriptionLocal,
		ParentID:         input.ParentID,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if c.ParentID != nil {
			if _, err := s.repo.GetCategory(txCtx, *c.ParentID); err != nil {
				return fmt.Errorf("get parent: %w", err)
			}
		}
		if err := s.repo.CreateCategory(txCtx, c); err != nil {
			return fmt.Errorf("create category: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Category{}, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", c.ID.String()),
		slog.String("name", c.NameEN),
	)
	return c, nil
}

// MoveCategory re-parents a category. Linking a category under itself or
// one of its descendants fails with a "cycle" validation error. Moves are
// serialized on the tree lock so the ancestor walk sees every committed move.
func (s *Service) MoveCategory(ctx context.Context, input MoveCategoryInput) error {
	ctx, span := tracer.Start(ctx, "catalog.MoveCategory",
		trace.WithAttributes(attribute.String("category.id", input.CategoryID.String())),
	)
	defer span.End()

	if err := input.Validate(); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.LockCategoryTree(txCtx); err != nil {
			return err
		}
		if _, err := s.repo.GetCategory(txCtx, input.CategoryID); err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		if input.ParentID != nil {
			ancestors, err := s.repo.AncestorIDs(txCtx, *input.ParentID)
			if err != nil {
				return fmt.Errorf("parent ancestors: %w", err)
			}
			// AncestorIDs includes the parent itself; empty means it does not exist.
			if len(ancestors) == 0 {
				return fmt.Errorf("category %s: %w", *input.ParentID, domain.ErrNotFound)
			}
			if slices.Contains(ancestors, input.CategoryID) {
				return domain.NewValidationError("parent_id", "cycle")
			}
		}

		if err := s.repo.SetCategoryParent(txCtx, input.CategoryID, input.ParentID); err != nil {
			return fmt.Errorf("set parent: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}

	s.log.InfoContext(ctx, "category moved", slog.String("category_id", input.CategoryID.String()))
	return nil
}
