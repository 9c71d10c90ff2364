package persistence

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
)

func paginate(q *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	return q
}

// orderBy applies sortBy when set, otherwise fallback. Column names come
// from validated queries only.
func orderBy(q *gorm.DB, sortBy, sortOrder, fallback string) *gorm.DB {
	if sortBy == "" {
		return q.Order(fallback)
	}
	order := sortOrder
	if order == "" {
		order = "asc"
	}
	return q.Order(fmt.Sprintf("%s %s", sortBy, order))
}

// translate maps gorm errors onto the shared domain errors
func translate(err error, action, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %s: %w", action, entity, domain.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %s: %w", action, entity, domain.ErrConflict)
	default:
		return fmt.Errorf("failed to %s %s: %w", action, entity, err)
	}
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s with ID %s: %w", entity, id, domain.ErrNotFound)
}
