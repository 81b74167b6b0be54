package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/types"
)

// ConfigFilter narrows List results. Zero-valued fields are ignored; the
// owner scope is never optional and lives on the call, not the filter.
type ConfigFilter struct {
	Sector     types.Sector
	CategoryID string
}

type PricingConfigurationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, cfg *types.PricingConfiguration) (*types.PricingConfiguration, error)
	GetByID(ctx context.Context, tx *gorm.DB, ownerID string, id int) (*types.PricingConfiguration, error)
	GetByTuple(ctx context.Context, tx *gorm.DB, ownerID, categoryID string, sector types.Sector, pipeSize string) (*types.PricingConfiguration, error)
	List(ctx context.Context, tx *gorm.DB, ownerID string, filter ConfigFilter) ([]*types.PricingConfiguration, error)
	ListByCategory(ctx context.Context, tx *gorm.DB, ownerID, categoryID, pipeSize string) ([]*types.PricingConfiguration, error)
	LatestByCategorySector(ctx context.Context, tx *gorm.DB, ownerID, categoryID string, sector types.Sector) (*types.PricingConfiguration, error)
	Save(ctx context.Context, tx *gorm.DB, cfg *types.PricingConfiguration) (*types.PricingConfiguration, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, ownerID string, id int) error
}

type pricingConfigurationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPricingConfigurationRepo(db *gorm.DB, baseLog *logger.Logger) PricingConfigurationRepo {
	repoLog := baseLog.With("repo", "PricingConfigurationRepo")
	return &pricingConfigurationRepo{db: db, log: repoLog}
}

func (r *pricingConfigurationRepo) Create(ctx context.Context, tx *gorm.DB, cfg *types.PricingConfiguration) (*types.PricingConfiguration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Create(cfg).Error; err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *pricingConfigurationRepo) GetByID(ctx context.Context, tx *gorm.DB, ownerID string, id int) (*types.PricingConfiguration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.PricingConfiguration
	err := transaction.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *pricingConfigurationRepo) GetByTuple(ctx context.Context, tx *gorm.DB, ownerID, categoryID string, sector types.Sector, pipeSize string) (*types.PricingConfiguration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.PricingConfiguration
	err := transaction.WithContext(ctx).
		Where("owner_id = ? AND category_id = ? AND sector = ? AND pipe_size = ?", ownerID, categoryID, sector, pipeSize).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *pricingConfigurationRepo) List(ctx context.Context, tx *gorm.DB, ownerID string, filter ConfigFilter) ([]*types.PricingConfiguration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).Where("owner_id = ?", ownerID)
	if filter.Sector != "" {
		query = query.Where("sector = ?", filter.Sector)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}

	var results []*types.PricingConfiguration
	if err := query.Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *pricingConfigurationRepo) ListByCategory(ctx context.Context, tx *gorm.DB, ownerID, categoryID, pipeSize string) ([]*types.PricingConfiguration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	query := transaction.WithContext(ctx).
		Where("owner_id = ? AND category_id = ?", ownerID, categoryID)
	if pipeSize != "" {
		query = query.Where("pipe_size = ?", pipeSize)
	}

	var results []*types.PricingConfiguration
	if err := query.Order("id DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *pricingConfigurationRepo) LatestByCategorySector(ctx context.Context, tx *gorm.DB, ownerID, categoryID string, sector types.Sector) (*types.PricingConfiguration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.PricingConfiguration
	err := transaction.WithContext(ctx).
		Where("owner_id = ? AND category_id = ? AND sector = ?", ownerID, categoryID, sector).
		Order("id DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *pricingConfigurationRepo) Save(ctx context.Context, tx *gorm.DB, cfg *types.PricingConfiguration) (*types.PricingConfiguration, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).Save(cfg).Error; err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *pricingConfigurationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, ownerID string, id int) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&types.PricingConfiguration{}, id).Error; err != nil {
		return err
	}
	return nil
}
