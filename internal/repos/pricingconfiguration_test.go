package repos

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/drainwise/drainwise-backend/internal/options"
	"github.com/drainwise/drainwise-backend/internal/types"
)

func newConfig(ownerID, categoryID string, sector types.Sector, pipeSize string) *types.PricingConfiguration {
	return &types.PricingConfiguration{
		OwnerID:       ownerID,
		CategoryID:    categoryID,
		CategoryName:  categoryID,
		Sector:        sector,
		PipeSize:      pipeSize,
		CategoryColor: types.DefaultCategoryColor,
		IsActive:      true,
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, newConfig("owner-a", "cctv", types.SectorUtilities, "150"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}
}

func TestTupleUniquenessEnforced(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, newConfig("owner-a", "cctv", types.SectorUtilities, "150")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create(ctx, nil, newConfig("owner-a", "cctv", types.SectorUtilities, "150"))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("want duplicated key error, got %v", err)
	}

	// Same tuple under a different owner is a different configuration.
	if _, err := repo.Create(ctx, nil, newConfig("owner-b", "cctv", types.SectorUtilities, "150")); err != nil {
		t.Fatalf("create for other owner: %v", err)
	}
}

func TestListIsOwnerScoped(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	seeds := []*types.PricingConfiguration{
		newConfig("owner-a", "cctv", types.SectorUtilities, "150"),
		newConfig("owner-a", "patching", types.SectorHighways, "150"),
		newConfig("owner-b", "cctv", types.SectorUtilities, "150"),
	}
	for _, cfg := range seeds {
		if _, err := repo.Create(ctx, nil, cfg); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, err := repo.List(ctx, nil, "owner-a", ConfigFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list: want=2 got=%d", len(all))
	}
	for _, cfg := range all {
		if cfg.OwnerID != "owner-a" {
			t.Fatalf("foreign row leaked: %+v", cfg)
		}
	}

	filtered, err := repo.List(ctx, nil, "owner-a", ConfigFilter{Sector: types.SectorUtilities, CategoryID: "cctv"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].CategoryID != "cctv" {
		t.Fatalf("filtered list: got=%d", len(filtered))
	}
}

func TestGetByIDIsOwnerScoped(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, newConfig("owner-a", "cctv", types.SectorUtilities, "150"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, "owner-b", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("foreign owner read someone else's configuration")
	}
}

func TestListByCategoryNewestFirst(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	for _, size := range []string{"100", "150", "225"} {
		if _, err := repo.Create(ctx, nil, newConfig("owner-a", "cctv", types.SectorUtilities, size)); err != nil {
			t.Fatalf("seed %s: %v", size, err)
		}
	}

	results, err := repo.ListByCategory(ctx, nil, "owner-a", "cctv", "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("list: want=3 got=%d", len(results))
	}
	if results[0].PipeSize != "225" || results[2].PipeSize != "100" {
		t.Fatalf("ordering: got %s..%s", results[0].PipeSize, results[2].PipeSize)
	}

	bySize, err := repo.ListByCategory(ctx, nil, "owner-a", "cctv", "150")
	if err != nil {
		t.Fatalf("list pipeSize: %v", err)
	}
	if len(bySize) != 1 || bySize[0].PipeSize != "150" {
		t.Fatalf("pipeSize filter: got=%d", len(bySize))
	}
}

func TestLatestByCategorySector(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, nil, newConfig("owner-a", "cctv", types.SectorUtilities, "100")); err != nil {
		t.Fatalf("seed: %v", err)
	}
	newest := newConfig("owner-a", "cctv", types.SectorUtilities, "300")
	if _, err := repo.Create(ctx, nil, newest); err != nil {
		t.Fatalf("seed: %v", err)
	}

	base, err := repo.LatestByCategorySector(ctx, nil, "owner-a", "cctv", types.SectorUtilities)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if base == nil || base.ID != newest.ID {
		t.Fatalf("latest: want id=%d got=%+v", newest.ID, base)
	}

	missing, err := repo.LatestByCategorySector(ctx, nil, "owner-a", "cctv", types.SectorDomestic)
	if err != nil {
		t.Fatalf("latest missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("want nil for unseen sector, got %+v", missing)
	}
}

func TestJSONColumnsRoundTrip(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	cfg := newConfig("owner-a", "cctv", types.SectorUtilities, "150")
	cfg.PricingOptions.Set("dayrate", options.Entry{Enabled: true, Value: "450"})
	cfg.PricingOptions.Set("halfday", options.Entry{Value: "250"})
	cfg.StackOrder = options.Orders{options.SectionPricing: {"halfday", "dayrate"}}

	created, err := repo.Create(ctx, nil, cfg)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	back, err := repo.GetByID(ctx, nil, "owner-a", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if back == nil {
		t.Fatal("row vanished")
	}
	e, ok := back.PricingOptions.Get("dayrate")
	if !ok || !e.Enabled || e.Value != "450" {
		t.Fatalf("pricing option: got=%+v ok=%v", e, ok)
	}
	if got := back.StackOrder.Get(options.SectionPricing); len(got) != 2 || got[0] != "halfday" {
		t.Fatalf("stack order: got=%v", got)
	}
}

func TestDeleteByIDIsOwnerScoped(t *testing.T) {
	repo := NewPricingConfigurationRepo(newTestDB(t), newTestLogger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, newConfig("owner-a", "cctv", types.SectorUtilities, "150"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.DeleteByID(ctx, nil, "owner-b", created.ID); err != nil {
		t.Fatalf("foreign delete: %v", err)
	}
	still, err := repo.GetByID(ctx, nil, "owner-a", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if still == nil {
		t.Fatal("foreign owner deleted the row")
	}

	if err := repo.DeleteByID(ctx, nil, "owner-a", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := repo.GetByID(ctx, nil, "owner-a", created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if gone != nil {
		t.Fatal("row survived delete")
	}
}
