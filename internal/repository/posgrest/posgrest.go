package posgrest

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is a generic GORM-based repository implementation.
// It provides the keyed read/write operations shared by every store; the
// store types add their own aggregate queries on top.
type repository[T interface{}] struct {
	db  *gorm.DB
	key string
}

// New creates a generic repository for type T whose primary key column is key.
func New[T interface{}](db *gorm.DB, key string) *repository[T] {
	return &repository[T]{
		db:  db,
		key: key,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// CreateIfAbsent inserts the entity and silently skips it when the key already exists.
func (r *repository[T]) CreateIfAbsent(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(entity).Error
}

// CreateBatch inserts all entities in a single statement.
func (r *repository[T]) CreateBatch(ctx context.Context, entities []T) error {
	if len(entities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entities).Error
}

// Save inserts or fully replaces the entity identified by its primary key.
func (r *repository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: r.key}},
		UpdateAll: true,
	}).Create(entity).Error
}

// GetByID retrieves a single entity by its key. A missing row is reported as (nil, nil).
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", r.key), id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetBy retrieves entities matching a condition, ordered as requested.
func (r *repository[T]) GetBy(ctx context.Context, order string, query string, args ...interface{}) ([]T, error) {
	var entities []T
	tx := r.db.WithContext(ctx).Where(query, args...)
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}
