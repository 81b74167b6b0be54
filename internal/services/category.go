package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/drainwise/drainwise-backend/internal/apierr"
	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/repos"
	"github.com/drainwise/drainwise-backend/internal/types"
)

type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	IconName     string `json:"iconName"`
}

type StandardCategoryService interface {
	List(ctx context.Context) ([]*types.StandardCategory, error)
	Create(ctx context.Context, req CreateCategoryRequest) (*types.StandardCategory, error)
}

type standardCategoryService struct {
	db           *gorm.DB
	log          *logger.Logger
	categoryRepo repos.StandardCategoryRepo
}

func NewStandardCategoryService(db *gorm.DB, log *logger.Logger, categoryRepo repos.StandardCategoryRepo) StandardCategoryService {
	serviceLog := log.With("service", "StandardCategoryService")
	return &standardCategoryService{db: db, log: serviceLog, categoryRepo: categoryRepo}
}

func (s *standardCategoryService) List(ctx context.Context) ([]*types.StandardCategory, error) {
	results, err := s.categoryRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	return results, nil
}

func (s *standardCategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*types.StandardCategory, error) {
	name := strings.TrimSpace(req.CategoryName)
	if name == "" {
		return nil, apierr.Validation("categoryName is required")
	}

	slug := DeriveCategorySlug(name)
	if slug == "" {
		return nil, apierr.Validation("categoryName %q yields an empty id", name)
	}

	existing, err := s.categoryRepo.GetByCategoryID(ctx, nil, slug)
	if err != nil {
		return nil, apierr.Storage(err)
	}
	if existing != nil {
		return nil, apierr.Conflict("category %q already exists", slug)
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = GenerateCategoryDescription(name)
	}

	category := &types.StandardCategory{
		CategoryID:   slug,
		CategoryName: name,
		Description:  description,
		IconName:     req.IconName,
		IsDefault:    false,
		IsActive:     true,
	}
	created, err := s.categoryRepo.Create(ctx, nil, category)
	if err != nil {
		if isDuplicateKey(err) {
			return nil, apierr.Conflict("category %q already exists", slug)
		}
		return nil, apierr.Storage(err)
	}
	s.log.Info("Created standard category", "categoryId", created.CategoryID)
	return created, nil
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9-]`)

// DeriveCategorySlug lowercases a display name and hyphenates whitespace
// runs: "CCTV Jet Vac" -> "cctv-jet-vac".
func DeriveCategorySlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	slug = slugStripPattern.ReplaceAllString(slug, "")
	return strings.Trim(slug, "-")
}

// descriptionTemplates is scanned in order; the first keyword contained in
// the lowercased category name wins. No scoring, no multi-match resolution.
var descriptionTemplates = []struct {
	keyword  string
	template string
}{
	{"patch", "Localised patch repairs to defective pipework carried out in accordance with the WRc Drain Repair Book."},
	{"lining", "Structural lining of defective pipework in accordance with the WRc Drain Repair Book and manufacturer specifications."},
	{"cctv", "CCTV drainage inspection surveys coded to WRc standards with full condition reporting."},
	{"jet", "High pressure water jetting and cleansing of drainage systems to remove blockages and restore flow."},
	{"vac", "Vacuumation and waste removal services for drainage systems and associated chambers."},
	{"excavat", "Excavation and replacement of defective pipework where no-dig repair is not viable, reinstated to specification."},
	{"root", "Mechanical root cutting and removal to restore pipe capacity prior to survey or repair."},
	{"tanker", "Tankered waste collection and disposal through licensed treatment facilities."},
	{"survey", "Drainage survey and condition assessment services reported to WRc standards."},
}

// GenerateCategoryDescription produces the default description for a
// category the caller did not describe.
func GenerateCategoryDescription(categoryName string) string {
	lowered := strings.ToLower(categoryName)
	for _, t := range descriptionTemplates {
		if strings.Contains(lowered, t.keyword) {
			return t.template
		}
	}
	return fmt.Sprintf("%s services carried out in accordance with WRc Group standards and industry best practice.", categoryName)
}
