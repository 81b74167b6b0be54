package services

import (
	"github.com/drainwise/drainwise-backend/internal/apierr"
	"github.com/drainwise/drainwise-backend/internal/types"
)

// SectorStandardsService reads the compiled-in standards tables. There is
// no storage behind it; the data ships with the binary.
type SectorStandardsService interface {
	List() []types.SectorStandardsConfig
	Get(sector types.Sector) (*types.SectorStandardsConfig, error)
}

type sectorStandardsService struct{}

func NewSectorStandardsService() SectorStandardsService {
	return &sectorStandardsService{}
}

func (s *sectorStandardsService) List() []types.SectorStandardsConfig {
	return types.AllSectorStandards()
}

func (s *sectorStandardsService) Get(sector types.Sector) (*types.SectorStandardsConfig, error) {
	cfg, ok := types.StandardsForSector(sector)
	if !ok {
		return nil, apierr.NotFound("unknown sector %q", sector)
	}
	return &cfg, nil
}
