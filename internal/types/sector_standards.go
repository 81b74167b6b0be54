package types

// SectorStandard is one named industry standard governing work in a sector.
type SectorStandard struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Authority   string `json:"authority"`
	Description string `json:"description"`
}

// SectorStandardsConfig maps a sector to its governing standards. The data
// is compiled in; it is reference material, never mutated at runtime.
type SectorStandardsConfig struct {
	Sector         Sector           `json:"sector"`
	Standards      []SectorStandard `json:"standards"`
	ComplianceNote string           `json:"complianceNote"`
}

var sectorStandards = map[Sector]SectorStandardsConfig{
	SectorUtilities: {
		Sector: SectorUtilities,
		Standards: []SectorStandard{
			{Name: "MSCC5", Version: "5th Edition", Authority: "WRc", Description: "Manual of Sewer Condition Classification — defect coding for CCTV surveys of public sewers."},
			{Name: "SRM", Version: "Issue 3", Authority: "WRc", Description: "Sewerage Risk Management — condition grading and rehabilitation prioritisation."},
			{Name: "Drain Repair Book", Version: "4th Edition", Authority: "WRc", Description: "Repair and renovation techniques for drains and sewers."},
		},
		ComplianceNote: "Surveys and repairs on public sewers must be coded to MSCC5 and graded per SRM before submission to the water company.",
	},
	SectorAdoption: {
		Sector: SectorAdoption,
		Standards: []SectorStandard{
			{Name: "Code for Adoption", Version: "2020", Authority: "Water UK", Description: "Design and Construction Guidance for sewers intended for adoption under Section 104."},
			{Name: "MSCC5", Version: "5th Edition", Authority: "WRc", Description: "Condition classification applied to pre-adoption CCTV surveys."},
			{Name: "BS EN 1610", Version: "2015", Authority: "BSI", Description: "Construction and testing of drains and sewers."},
		},
		ComplianceNote: "Pre-adoption surveys must evidence compliance with the Design and Construction Guidance before vesting.",
	},
	SectorHighways: {
		Sector: SectorHighways,
		Standards: []SectorStandard{
			{Name: "CD 535", Version: "Rev 1", Authority: "National Highways", Description: "Design Manual for Roads and Bridges — drainage asset data and risk management."},
			{Name: "HADDMS", Version: "Current", Authority: "National Highways", Description: "Highways drainage data management system survey and reporting formats."},
			{Name: "MSCC5", Version: "5th Edition", Authority: "WRc", Description: "Condition classification for highway drainage CCTV surveys."},
		},
		ComplianceNote: "Highway drainage surveys are delivered in HADDMS-compatible format with MSCC5 coding.",
	},
	SectorInsurance: {
		Sector: SectorInsurance,
		Standards: []SectorStandard{
			{Name: "MSCC5 Domestic", Version: "5th Edition", Authority: "WRc", Description: "Domestic coding subset for insurance drainage investigations."},
			{Name: "ABI Guidance", Version: "Current", Authority: "Association of British Insurers", Description: "Guidance on subsidence and drainage claim investigation."},
		},
		ComplianceNote: "Insurance reports must distinguish pre-existing defects from claim-related damage using MSCC5 coding.",
	},
	SectorConstruction: {
		Sector: SectorConstruction,
		Standards: []SectorStandard{
			{Name: "BS EN 1610", Version: "2015", Authority: "BSI", Description: "Construction and testing of drains and sewers."},
			{Name: "CDM Regulations", Version: "2015", Authority: "HSE", Description: "Construction design and management duties for drainage works."},
			{Name: "MSCC5", Version: "5th Edition", Authority: "WRc", Description: "Condition classification for post-construction verification surveys."},
		},
		ComplianceNote: "Post-construction surveys verify workmanship against BS EN 1610 acceptance criteria.",
	},
	SectorDomestic: {
		Sector: SectorDomestic,
		Standards: []SectorStandard{
			{Name: "MSCC5 Domestic", Version: "5th Edition", Authority: "WRc", Description: "Domestic coding subset for private drain surveys."},
			{Name: "Building Regulations Part H", Version: "2015", Authority: "HM Government", Description: "Drainage and waste disposal requirements for dwellings."},
		},
		ComplianceNote: "Domestic survey reports reference Part H requirements where remedial work is recommended.",
	},
}

// StandardsForSector returns the compiled-in standards for a sector.
func StandardsForSector(sector Sector) (SectorStandardsConfig, bool) {
	cfg, ok := sectorStandards[sector]
	return cfg, ok
}

// AllSectorStandards returns the standards for every sector, in the fixed
// sector order.
func AllSectorStandards() []SectorStandardsConfig {
	out := make([]SectorStandardsConfig, 0, len(AllSectors))
	for _, s := range AllSectors {
		out = append(out, sectorStandards[s])
	}
	return out
}
