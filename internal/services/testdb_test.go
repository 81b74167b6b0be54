package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/repos"
	"github.com/drainwise/drainwise-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.PricingConfiguration{}, &types.StandardCategory{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func newTestConfigService(t *testing.T) (PricingConfigService, repos.PricingConfigurationRepo) {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	repo := repos.NewPricingConfigurationRepo(db, log)
	return NewPricingConfigService(db, log, repo), repo
}

func newTestCategoryService(t *testing.T) StandardCategoryService {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger(t)
	return NewStandardCategoryService(db, log, repos.NewStandardCategoryRepo(db, log))
}
