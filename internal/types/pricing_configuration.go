package types

import (
	"time"

	"gorm.io/datatypes"

	"github.com/drainwise/drainwise-backend/internal/options"
)

// PricingConfiguration is one pricing record per
// (owner, category, sector, pipe size) tuple. The four option sections are
// ordered maps persisted as JSON columns; StackOrder carries the explicit
// per-section display order where one has been saved.
type PricingConfiguration struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID      string `gorm:"column:owner_id;not null;index;uniqueIndex:uniq_owner_category_sector_pipe" json:"ownerId"`
	CategoryID   string `gorm:"column:category_id;not null;index;uniqueIndex:uniq_owner_category_sector_pipe" json:"categoryId"`
	CategoryName string `gorm:"column:category_name;not null" json:"categoryName"`
	Sector       Sector `gorm:"column:sector;not null;uniqueIndex:uniq_owner_category_sector_pipe" json:"sector"`
	PipeSize     string `gorm:"column:pipe_size;not null;uniqueIndex:uniq_owner_category_sector_pipe" json:"pipeSize"`

	CategoryColor string `gorm:"column:category_color;not null" json:"categoryColor"`

	PricingOptions     options.Map `gorm:"column:pricing_options" json:"pricingOptions"`
	QuantityOptions    options.Map `gorm:"column:quantity_options" json:"quantityOptions"`
	MinQuantityOptions options.Map `gorm:"column:min_quantity_options" json:"minQuantityOptions"`
	AdditionalOptions  options.Map `gorm:"column:additional_options" json:"additionalOptions"`

	StackOrder    options.Orders              `gorm:"column:stack_order" json:"stackOrder"`
	MathOperators datatypes.JSONSlice[string] `gorm:"column:math_operators" json:"mathOperators"`
	RangeValues   datatypes.JSON              `gorm:"column:range_values" json:"rangeValues"`

	VehicleTravelRates           datatypes.JSON              `gorm:"column:vehicle_travel_rates" json:"vehicleTravelRates"`
	VehicleTravelRatesStackOrder datatypes.JSONSlice[string] `gorm:"column:vehicle_travel_rates_stack_order" json:"vehicleTravelRatesStackOrder"`

	IsActive  bool      `gorm:"column:is_active;not null" json:"isActive"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (PricingConfiguration) TableName() string {
	return "pricing_configuration"
}

// OptionSection returns a pointer to the section's option map, or nil for an
// unknown section name.
func (pc *PricingConfiguration) OptionSection(section string) *options.Map {
	switch section {
	case options.SectionPricing:
		return &pc.PricingOptions
	case options.SectionQuantity:
		return &pc.QuantityOptions
	case options.SectionMinQuantity:
		return &pc.MinQuantityOptions
	case options.SectionAdditional:
		return &pc.AdditionalOptions
	}
	return nil
}
