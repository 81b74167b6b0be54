package types

import "time"

// StandardCategory is a catalog entry in the work-category library,
// independent of any particular pricing configuration.
type StandardCategory struct {
	ID           int    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID   string `gorm:"column:category_id;uniqueIndex;not null" json:"categoryId"`
	CategoryName string `gorm:"column:category_name;not null" json:"categoryName"`
	Description  string `gorm:"column:description" json:"description"`
	IconName     string `gorm:"column:icon_name" json:"iconName"`
	IsDefault    bool   `gorm:"column:is_default;not null" json:"isDefault"`
	IsActive     bool   `gorm:"column:is_active;not null" json:"isActive"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (StandardCategory) TableName() string {
	return "standard_category"
}
