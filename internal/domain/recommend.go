package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RecommendMode selects how candidates relate to a customer's purchases.
type RecommendMode string

const (
	RecommendSameCategory          RecommendMode = "same_category"
	RecommendSameCategoryAndAuthor RecommendMode = "same_category_and_author"
)

func (m RecommendMode) String() string { return string(m) }

func (m RecommendMode) IsValid() bool {
	switch m {
	case RecommendSameCategory, RecommendSameCategoryAndAuthor:
		return true
	}
	return false
}

// ParseRecommendMode parses a mode name case-insensitively. An empty string
// selects RecommendSameCategory.
func ParseRecommendMode(s string) (RecommendMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RecommendSameCategory, nil
	}
	m := RecommendMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("unknown recommend mode %q: %w", s, ErrValidation)
	}
	return m, nil
}

// Recommendation is a suggested product the customer has not bought yet.
type Recommendation struct {
	ProductID  string
	NameEN     string
	CategoryID uuid.UUID
	AuthorID   uuid.UUID
}
