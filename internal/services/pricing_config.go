package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/drainwise/drainwise-backend/internal/apierr"
	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/options"
	"github.com/drainwise/drainwise-backend/internal/repos"
	"github.com/drainwise/drainwise-backend/internal/types"
)

// ConfigPayload is the write shape for create, update and auto-save. Updates
// are full-replace: a field omitted here is replaced with its safe default,
// not carried over from the stored record.
type ConfigPayload struct {
	CategoryID    string       `json:"categoryId"`
	CategoryName  string       `json:"categoryName"`
	Sector        types.Sector `json:"sector"`
	PipeSize      string       `json:"pipeSize"`
	CategoryColor string       `json:"categoryColor"`

	PricingOptions     options.Map `json:"pricingOptions"`
	QuantityOptions    options.Map `json:"quantityOptions"`
	MinQuantityOptions options.Map `json:"minQuantityOptions"`
	AdditionalOptions  options.Map `json:"additionalOptions"`

	StackOrder    options.Orders `json:"stackOrder"`
	MathOperators []string       `json:"mathOperators"`
	RangeValues   datatypes.JSON `json:"rangeValues"`

	VehicleTravelRates           datatypes.JSON `json:"vehicleTravelRates"`
	VehicleTravelRatesStackOrder []string       `json:"vehicleTravelRatesStackOrder"`

	IsActive *bool `json:"isActive"`
}

// DeleteResult is returned from a confirmed delete: a message for the UI and
// the removed record for audit purposes.
type DeleteResult struct {
	Message string                      `json:"message"`
	Deleted *types.PricingConfiguration `json:"deleted"`
}

type PricingConfigService interface {
	List(ctx context.Context, ownerID string, filter repos.ConfigFilter) ([]*types.PricingConfiguration, error)
	ListByCategory(ctx context.Context, ownerID, categoryID, pipeSize string) ([]*types.PricingConfiguration, error)
	GetByID(ctx context.Context, ownerID string, id int) (*types.PricingConfiguration, error)
	Create(ctx context.Context, ownerID string, payload ConfigPayload) (*types.PricingConfiguration, error)
	Update(ctx context.Context, ownerID string, id int, payload ConfigPayload) (*types.PricingConfiguration, error)
	Delete(ctx context.Context, ownerID string, id int, userConfirmed bool) (*DeleteResult, error)
	AutoDetectPipeSize(ctx context.Context, ownerID string, req AutoDetectRequest) (*types.PricingConfiguration, error)
}

type pricingConfigService struct {
	db         *gorm.DB
	log        *logger.Logger
	configRepo repos.PricingConfigurationRepo
}

func NewPricingConfigService(db *gorm.DB, log *logger.Logger, configRepo repos.PricingConfigurationRepo) PricingConfigService {
	serviceLog := log.With("service", "PricingConfigService")
	return &pricingConfigService{db: db, log: serviceLog, configRepo: configRepo}
}

func (s *pricingConfigService) List(ctx context.Context, ownerID string, filter repos.ConfigFilter) ([]*types.PricingConfiguration, error) {
	if filter.Sector != "" && !filter.Sector.Valid() {
		return nil, apierr.Validation("unknown sector %q", filter.Sector)
	}
	results, err := s.configRepo.List(ctx, nil, ownerID, filter)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	for _, cfg := range results {
		repairStackOrders(cfg)
	}
	return results, nil
}

func (s *pricingConfigService) ListByCategory(ctx context.Context, ownerID, categoryID, pipeSize string) ([]*types.PricingConfiguration, error) {
	if categoryID == "" {
		return nil, apierr.Validation("categoryId is required")
	}
	results, err := s.configRepo.ListByCategory(ctx, nil, ownerID, categoryID, pipeSize)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	for _, cfg := range results {
		repairStackOrders(cfg)
	}
	return results, nil
}

func (s *pricingConfigService) GetByID(ctx context.Context, ownerID string, id int) (*types.PricingConfiguration, error) {
	cfg, err := s.configRepo.GetByID(ctx, nil, ownerID, id)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	if cfg == nil {
		return nil, apierr.NotFound("pricing configuration %d not found", id)
	}
	repairStackOrders(cfg)
	return cfg, nil
}

func (s *pricingConfigService) Create(ctx context.Context, ownerID string, payload ConfigPayload) (*types.PricingConfiguration, error) {
	cfg, err := buildRecord(ownerID, payload, "")
	if err != nil {
		return nil, err
	}
	created, err := s.configRepo.Create(ctx, nil, cfg)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierr.Conflict("a configuration for %s/%s/%smm already exists", cfg.CategoryID, cfg.Sector, cfg.PipeSize)
		}
		return nil, apierr.Storage(err)
	}
	s.log.Info("Created pricing configuration",
		"id", created.ID, "categoryId", created.CategoryID, "sector", created.Sector, "pipeSize", created.PipeSize)
	return created, nil
}

func (s *pricingConfigService) Update(ctx context.Context, ownerID string, id int, payload ConfigPayload) (*types.PricingConfiguration, error) {
	existing, err := s.configRepo.GetByID(ctx, nil, ownerID, id)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	if existing == nil {
		return nil, apierr.NotFound("pricing configuration %d not found", id)
	}

	cfg, err := buildRecord(ownerID, payload, existing.CategoryID)
	if err != nil {
		return nil, err
	}
	cfg.ID = existing.ID
	cfg.CreatedAt = existing.CreatedAt
	cfg.UpdatedAt = time.Now().UTC()

	saved, err := s.configRepo.Save(ctx, nil, cfg)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierr.Conflict("a configuration for %s/%s/%smm already exists", cfg.CategoryID, cfg.Sector, cfg.PipeSize)
		}
		return nil, apierr.Storage(err)
	}
	return saved, nil
}

func (s *pricingConfigService) Delete(ctx context.Context, ownerID string, id int, userConfirmed bool) (*DeleteResult, error) {
	existing, err := s.configRepo.GetByID(ctx, nil, ownerID, id)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	if existing == nil {
		return nil, apierr.NotFound("pricing configuration %d not found", id)
	}
	if !userConfirmed {
		return nil, apierr.ConfirmationRequired("deletion requires userConfirmed: true")
	}

	// Audit line goes out before the row does.
	s.log.Info("Deleting pricing configuration",
		"id", existing.ID,
		"categoryId", existing.CategoryID,
		"categoryName", existing.CategoryName,
		"deletedAt", time.Now().UTC().Format(time.RFC3339))

	if err := s.configRepo.DeleteByID(ctx, nil, ownerID, id); err != nil {
		return nil, apierr.Storage(err)
	}
	return &DeleteResult{
		Message: fmt.Sprintf("Configuration %q deleted", existing.CategoryName),
		Deleted: existing,
	}, nil
}

// buildRecord applies the store-boundary defaults and validation shared by
// create and update. existingCategoryID keeps a record's identity when an
// update omits categoryId; create passes "" and gets a synthetic id.
func buildRecord(ownerID string, payload ConfigPayload, existingCategoryID string) (*types.PricingConfiguration, error) {
	sector := payload.Sector
	if sector == "" {
		sector = types.SectorUtilities
	}
	if !sector.Valid() {
		return nil, apierr.Validation("unknown sector %q", payload.Sector)
	}

	categoryID := payload.CategoryID
	if categoryID == "" {
		categoryID = existingCategoryID
	}
	if categoryID == "" {
		categoryID = fmt.Sprintf("clean-%d", time.Now().UnixMilli())
	}

	pipeSize := payload.PipeSize
	if pipeSize == "" {
		pipeSize = types.DefaultPipeSize
	}

	color := payload.CategoryColor
	if color == "" {
		color = types.DefaultCategoryColor
	}

	operators := payload.MathOperators
	if len(operators) == 0 {
		operators = []string{types.DefaultMathOperator}
	}
	for _, op := range operators {
		if !types.IsMathOperator(op) {
			return nil, apierr.Validation("unknown math operator %q", op)
		}
	}

	for section := range payload.StackOrder {
		known := false
		for _, name := range options.Sections {
			if section == name {
				known = true
				break
			}
		}
		if !known {
			return nil, apierr.Validation("unknown stack order section %q", section)
		}
	}

	rangeValues := payload.RangeValues
	if len(rangeValues) == 0 {
		rangeValues = datatypes.JSON([]byte(`{}`))
	}
	vehicleRates := payload.VehicleTravelRates
	if len(vehicleRates) == 0 {
		vehicleRates = datatypes.JSON([]byte(`[]`))
	}
	vehicleRatesOrder := payload.VehicleTravelRatesStackOrder
	if vehicleRatesOrder == nil {
		vehicleRatesOrder = []string{}
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	cfg := &types.PricingConfiguration{
		OwnerID:            ownerID,
		CategoryID:         categoryID,
		CategoryName:       payload.CategoryName,
		Sector:             sector,
		PipeSize:           pipeSize,
		CategoryColor:      color,
		PricingOptions:     payload.PricingOptions,
		QuantityOptions:    payload.QuantityOptions,
		MinQuantityOptions: payload.MinQuantityOptions,
		AdditionalOptions:  payload.AdditionalOptions,
		StackOrder:         payload.StackOrder,
		MathOperators:      datatypes.NewJSONSlice(operators),
		RangeValues:        rangeValues,

		VehicleTravelRates:           vehicleRates,
		VehicleTravelRatesStackOrder: datatypes.NewJSONSlice(vehicleRatesOrder),

		IsActive: active,
	}
	repairStackOrders(cfg)
	return cfg, nil
}

// repairStackOrders prunes stale keys from every section's explicit order
// and appends keys the order is missing. Stale entries can appear when a
// client removed an option without saving a reorder; they must never reach
// rendering or evaluation.
func repairStackOrders(cfg *types.PricingConfiguration) {
	if cfg.StackOrder == nil {
		cfg.StackOrder = options.Orders{}
	}
	for _, section := range options.Sections {
		m := cfg.OptionSection(section)
		repaired := options.Repair(*m, cfg.StackOrder[section])
		if repaired == nil {
			delete(cfg.StackOrder, section)
			continue
		}
		cfg.StackOrder[section] = repaired
	}
}

// isDuplicateKey relies on gorm's TranslateError mode, which maps both the
// postgres and sqlite unique-violation codes onto ErrDuplicatedKey.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
