package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/bizmarket/internal/domain/lifecycle"
)

type Scope = func(*gorm.DB) *gorm.DB

// GormStore holds the persistence operations every resource shares.
// notFound is returned (unwrapped) whenever a lookup by id misses.
type GormStore[T any] struct {
	db       *gorm.DB
	notFound error
}

func NewGormStore[T any](db *gorm.DB, notFound error) GormStore[T] {
	return GormStore[T]{db: db, notFound: notFound}
}

// List returns matching records in insertion order.
func (s GormStore[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	var out []T
	err := s.db.WithContext(ctx).
		Scopes(scopes...).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Latest returns up to limit records, newest first.
func (s GormStore[T]) Latest(ctx context.Context, limit int, scopes ...Scope) ([]T, error) {
	var out []T
	err := s.db.WithContext(ctx).
		Scopes(scopes...).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s GormStore[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(new(T)).
		Scopes(scopes...).
		Count(&n).Error
	return n, err
}

func (s GormStore[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var out T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.notFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s GormStore[T]) Insert(ctx context.Context, v *T) error {
	return s.db.WithContext(ctx).Create(v).Error
}

// Update merges cols into the record and returns the stored result.
// updated_at is refreshed by GORM.
func (s GormStore[T]) Update(ctx context.Context, id string, cols map[string]any) (*T, error) {
	if len(cols) == 0 {
		return s.FindByID(ctx, id)
	}

	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, s.notFound
	}

	return s.FindByID(ctx, id)
}

// Transition applies rule as one conditional UPDATE and reports whether a
// row changed. extra columns are written together with the new state.
func (s GormStore[T]) Transition(ctx context.Context, id string, rule lifecycle.Rule, extra map[string]any) (bool, error) {
	cols := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		cols[k] = v
	}
	cols[rule.Column] = rule.To

	from := make([]any, len(rule.From))
	for i, f := range rule.From {
		from[i] = f
	}

	res := s.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Where(clause.IN{Column: clause.Column{Name: rule.Column}, Values: from}).
		Updates(cols)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func withStatus(status string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if status == "" {
			return db
		}
		return db.Where("status = ?", status)
	}
}

func ownedBy(ownerID string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}
