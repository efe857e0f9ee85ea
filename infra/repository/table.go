package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultBatchSize is the number of rows sent per INSERT statement.
const DefaultBatchSize = 100

// newestFirst orders by the timestamp column, quoted by the dialect.
var newestFirst = clause.OrderByColumn{
	Column: clause.Column{Name: "timestamp"},
	Desc:   true,
}

// table implements repository.Table for a domain type D persisted as model M.
type table[D any, M any] struct {
	db        *gorm.DB
	batchSize int
	toModel   func(*D) *M
	toDomain  func(*M) *D
}

func newTable[D any, M any](
	db *gorm.DB,
	batchSize int,
	toModel func(*D) *M,
	toDomain func(*M) *D,
) table[D, M] {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return table[D, M]{
		db:        db,
		batchSize: batchSize,
		toModel:   toModel,
		toDomain:  toDomain,
	}
}

func (t table[D, M]) Any(ctx context.Context) (bool, error) {
	var rows []M
	err := WrapError(func() error {
		return t.db.WithContext(ctx).Limit(1).Find(&rows).Error
	})
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

func (t table[D, M]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := WrapError(func() error {
		return t.db.WithContext(ctx).Model(new(M)).Count(&n).Error
	})
	return n, err
}

func (t table[D, M]) CreateBatch(ctx context.Context, items []*D) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]*M, 0, len(items))
	for _, item := range items {
		models = append(models, t.toModel(item))
	}
	err := WrapError(func() error {
		return t.db.WithContext(ctx).
			Omit(clause.Associations).
			CreateInBatches(models, t.batchSize).Error
	})
	if err != nil {
		return err
	}
	// copy generated IDs back to the caller's values
	for i, m := range models {
		*items[i] = *t.toDomain(m)
	}
	return nil
}

func (t table[D, M]) List(ctx context.Context) ([]*D, error) {
	return t.find(ctx, t.db.WithContext(ctx).Order("id"))
}

func (t table[D, M]) find(ctx context.Context, q *gorm.DB) ([]*D, error) {
	var rows []*M
	if err := WrapError(func() error {
		return q.WithContext(ctx).Find(&rows).Error
	}); err != nil {
		return nil, err
	}
	result := make([]*D, 0, len(rows))
	for _, row := range rows {
		result = append(result, t.toDomain(row))
	}
	return result, nil
}

func (t table[D, M]) first(ctx context.Context, q *gorm.DB) (*D, error) {
	var row M
	if err := WrapError(func() error {
		return q.WithContext(ctx).Take(&row).Error
	}); err != nil {
		return nil, err
	}
	return t.toDomain(&row), nil
}
