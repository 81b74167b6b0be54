package types

// Sector is one of the six fixed business-domain contexts a configuration
// can belong to. The sector gates which industry standards apply.
type Sector string

const (
	SectorUtilities    Sector = "utilities"
	SectorAdoption     Sector = "adoption"
	SectorHighways     Sector = "highways"
	SectorInsurance    Sector = "insurance"
	SectorConstruction Sector = "construction"
	SectorDomestic     Sector = "domestic"
)

var AllSectors = []Sector{
	SectorUtilities,
	SectorAdoption,
	SectorHighways,
	SectorInsurance,
	SectorConstruction,
	SectorDomestic,
}

func (s Sector) Valid() bool {
	switch s {
	case SectorUtilities, SectorAdoption, SectorHighways, SectorInsurance, SectorConstruction, SectorDomestic:
		return true
	}
	return false
}

// StandardPipeSizes is the MSCC5 ladder of pipe diameters (mm) recognised
// without explicit custom entry.
var StandardPipeSizes = []string{
	"100", "150", "200", "225", "300", "375", "450", "525",
	"600", "675", "750", "900", "1050", "1200", "1500",
}

func IsStandardPipeSize(size string) bool {
	for _, s := range StandardPipeSizes {
		if s == size {
			return true
		}
	}
	return false
}

const (
	// DefaultPipeSize is the 150mm drain run, the most common size in UK
	// networks and the size new configurations start on.
	DefaultPipeSize = "150"
	// DefaultCategoryColor is the neutral placeholder until a user picks one.
	DefaultCategoryColor = "#ffffff"
	// DefaultMathOperator is the no-op operator new configurations carry.
	DefaultMathOperator = "N/A"
)

// MathOperators that may appear between enabled pricing values.
var MathOperators = []string{"N/A", "+", "-", "×", "÷"}

func IsMathOperator(op string) bool {
	for _, o := range MathOperators {
		if o == op {
			return true
		}
	}
	return false
}
