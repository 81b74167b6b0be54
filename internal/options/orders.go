package options

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Section names for the four option groups of a configuration.
const (
	SectionPricing     = "pricing"
	SectionQuantity    = "quantity"
	SectionMinQuantity = "minQuantity"
	SectionAdditional  = "additional"
)

var Sections = []string{SectionPricing, SectionQuantity, SectionMinQuantity, SectionAdditional}

// Orders holds the explicit display order per section. An absent or empty
// list means natural map order applies for that section.
type Orders map[string][]string

func (o Orders) Get(section string) []string {
	return o[section]
}

func (o Orders) Value() (driver.Value, error) {
	if o == nil {
		o = Orders{}
	}
	b, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (o *Orders) Scan(value interface{}) error {
	if value == nil {
		*o = Orders{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("options: cannot scan %T", value)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		*o = Orders{}
		return nil
	}
	return json.Unmarshal(raw, o)
}

func (Orders) GormDataType() string {
	return "json"
}

func (Orders) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "JSONB"
	case "mysql":
		return "JSON"
	}
	return "JSON"
}
