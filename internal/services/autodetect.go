package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/datatypes"

	"github.com/drainwise/drainwise-backend/internal/apierr"
	"github.com/drainwise/drainwise-backend/internal/types"
)

// AutoDetectRequest asks the store to materialize a configuration for a
// pipe size the category has no record for yet. Only ladder sizes are
// allowed through this path; custom sizes go through manual create.
type AutoDetectRequest struct {
	CategoryID string       `json:"categoryId"`
	PipeSize   string       `json:"pipeSize"`
	Sector     types.Sector `json:"sector"`
}

func (s *pricingConfigService) AutoDetectPipeSize(ctx context.Context, ownerID string, req AutoDetectRequest) (*types.PricingConfiguration, error) {
	if req.CategoryID == "" {
		return nil, apierr.Validation("categoryId is required")
	}
	if !types.IsStandardPipeSize(req.PipeSize) {
		return nil, apierr.Validation("pipe size %q is not a standard size (%s)", req.PipeSize, strings.Join(types.StandardPipeSizes, ","))
	}
	sector := req.Sector
	if sector == "" {
		sector = types.SectorUtilities
	}
	if !sector.Valid() {
		return nil, apierr.Validation("unknown sector %q", req.Sector)
	}

	// Idempotent short-circuit: if the tuple already exists, return it.
	existing, err := s.configRepo.GetByTuple(ctx, nil, ownerID, req.CategoryID, sector, req.PipeSize)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	if existing != nil {
		repairStackOrders(existing)
		return existing, nil
	}

	// Clone the newest sibling of the same category and sector, any size.
	base, err := s.configRepo.LatestByCategorySector(ctx, nil, ownerID, req.CategoryID, sector)
	if err != nil {
		return nil, apierr.Storage(err)
	}

	cfg := &types.PricingConfiguration{
		OwnerID:    ownerID,
		CategoryID: req.CategoryID,
		Sector:     sector,
		PipeSize:   req.PipeSize,
		IsActive:   true,
	}
	if base != nil {
		cfg.CategoryName = deriveSizeName(base.CategoryName, req.PipeSize)
		cfg.CategoryColor = base.CategoryColor
		cfg.PricingOptions = base.PricingOptions
		cfg.QuantityOptions = base.QuantityOptions
		cfg.MinQuantityOptions = base.MinQuantityOptions
		cfg.AdditionalOptions = base.AdditionalOptions
		cfg.StackOrder = base.StackOrder
		cfg.MathOperators = base.MathOperators
		cfg.RangeValues = base.RangeValues
		cfg.VehicleTravelRates = base.VehicleTravelRates
		cfg.VehicleTravelRatesStackOrder = base.VehicleTravelRatesStackOrder
	} else {
		cfg.CategoryName = fmt.Sprintf("%smm Configuration", req.PipeSize)
		cfg.CategoryColor = types.DefaultCategoryColor
		cfg.MathOperators = datatypes.NewJSONSlice([]string{types.DefaultMathOperator})
		cfg.RangeValues = datatypes.JSON([]byte(`{}`))
		cfg.VehicleTravelRates = datatypes.JSON([]byte(`[]`))
		cfg.VehicleTravelRatesStackOrder = datatypes.NewJSONSlice([]string{})
	}
	repairStackOrders(cfg)

	created, err := s.configRepo.Create(ctx, nil, cfg)
	if err != nil {
		if isDuplicateKey(err) {
			// A concurrent request materialized the same tuple between our
			// existence check and the insert; use its row.
			winner, getErr := s.configRepo.GetByTuple(ctx, nil, ownerID, req.CategoryID, sector, req.PipeSize)
			if getErr != nil {
				return nil, apierr.Storage(getErr)
			}
			if winner != nil {
				repairStackOrders(winner)
				return winner, nil
			}
		}
		return nil, apierr.Storage(err)
	}

	s.log.Info("Auto-detected pipe size configuration",
		"id", created.ID, "categoryId", created.CategoryID, "sector", created.Sector,
		"pipeSize", created.PipeSize, "clonedFrom", baseID(base))
	return created, nil
}

func baseID(base *types.PricingConfiguration) int {
	if base == nil {
		return 0
	}
	return base.ID
}

var (
	tpPrefixPattern = regexp.MustCompile(`^TP(\d+)\s*-\s*`)
	mmTokenPattern  = regexp.MustCompile(`\b\d+mm\b`)
)

// deriveSizeName rewrites a sibling's display name for a new pipe size:
// any "<digits>mm " token is stripped, a leading "TP<digits> - " prefix is
// kept, and the new size token is inserted after the prefix.
// "TP1 - 150mm CCTV" with size 300 becomes "TP1 - 300mm CCTV".
func deriveSizeName(baseName, pipeSize string) string {
	rest := baseName
	prefix := ""
	if m := tpPrefixPattern.FindStringSubmatch(baseName); m != nil {
		prefix = fmt.Sprintf("TP%s - ", m[1])
		rest = baseName[len(m[0]):]
	}
	rest = strings.Join(strings.Fields(mmTokenPattern.ReplaceAllString(rest, " ")), " ")
	if rest == "" {
		return fmt.Sprintf("%s%smm Configuration", prefix, pipeSize)
	}
	return fmt.Sprintf("%s%smm %s", prefix, pipeSize, rest)
}
