package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/types"
)

type StandardCategoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, category *types.StandardCategory) (*types.StandardCategory, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.StandardCategory, error)
	GetByCategoryID(ctx context.Context, tx *gorm.DB, categoryID string) (*types.StandardCategory, error)
}

type standardCategoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStandardCategoryRepo(db *gorm.DB, baseLog *logger.Logger) StandardCategoryRepo {
	repoLog := baseLog.With("repo", "StandardCategoryRepo")
	return &standardCategoryRepo{db: db, log: repoLog}
}

func (r *standardCategoryRepo) Create(ctx context.Context, tx *gorm.DB, category *types.StandardCategory) (*types.StandardCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *standardCategoryRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.StandardCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.StandardCategory
	if err := transaction.WithContext(ctx).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *standardCategoryRepo) GetByCategoryID(ctx context.Context, tx *gorm.DB, categoryID string) (*types.StandardCategory, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.StandardCategory
	err := transaction.WithContext(ctx).
		Where("category_id = ?", categoryID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
