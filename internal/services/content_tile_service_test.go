package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	"github.com/Caarnus/newburgh-lodge/internal/auth"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func newTestTileService(t *testing.T) (*ContentTileService, *repositories.ContentTileRepository) {
	t.Helper()
	repo := repositories.NewContentTileRepository(setupTestDB(t))
	return NewContentTileService(repo), repo
}

func TestContentTileService_CreateGeneratesSlug(t *testing.T) {
	svc, _ := newTestTileService(t)
	rc := officerRC()

	tile, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type:  TileText,
		Title: strPtr("Lodge History"),
		Config: map[string]interface{}{
			"body": "Founded in 1788.",
		},
	})
	if err != nil {
		t.Fatalf("Failed to create tile: %v", err)
	}
	if tile.Slug != "lodge-history" {
		t.Errorf("Expected slug derived from title, got %q", tile.Slug)
	}
	if tile.Page != "welcome" {
		t.Errorf("Expected default page welcome, got %q", tile.Page)
	}
	if !tile.Enabled {
		t.Error("Expected new tiles to start enabled")
	}
	if tile.ColStart != 1 || tile.RowStart != 1 || tile.ColSpan != 1 || tile.RowSpan != 1 {
		t.Errorf("Expected default 1x1 layout at 1,1, got %d,%d span %dx%d",
			tile.ColStart, tile.RowStart, tile.ColSpan, tile.RowSpan)
	}

	// An untitled tile still gets a non-empty generated slug.
	anon, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{Type: TileText})
	if err != nil {
		t.Fatalf("Failed to create untitled tile: %v", err)
	}
	if anon.Slug == "" {
		t.Error("Expected a generated slug for an untitled tile")
	}
}

func TestContentTileService_CreateRejectsDuplicateSlug(t *testing.T) {
	svc, _ := newTestTileService(t)
	rc := officerRC()

	if _, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type: TileText,
		Slug: "summer-notice",
	}); err != nil {
		t.Fatalf("Failed to create first tile: %v", err)
	}

	_, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type: TileText,
		Slug: "summer-notice",
	})
	var verrs apperr.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation error for duplicate slug, got %v", err)
	}
	if _, ok := verrs["slug"]; !ok {
		t.Errorf("Expected the slug field flagged, got %v", verrs)
	}
}

func TestContentTileService_CreateRequiresOfficer(t *testing.T) {
	svc, _ := newTestTileService(t)
	memberRC := reqctx.RequestContext{ActorID: 2, Capabilities: auth.Capabilities{IsMember: true}}

	_, err := svc.Create(context.Background(), memberRC, requests.TileUpsertRequest{Type: TileText})
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for a plain member, got %v", err)
	}
}

func TestContentTileService_UpdateCleansConfig(t *testing.T) {
	svc, _ := newTestTileService(t)
	rc := officerRC()

	tile, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type: TileLinks,
		Slug: "resources",
		Config: map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{"label": "Grand Lodge", "url": "https://example.org"},
			},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create tile: %v", err)
	}

	updated, err := svc.Update(context.Background(), rc, tile.ID, requests.TileUpsertRequest{
		Config: map[string]interface{}{
			"items": []interface{}{
				map[string]interface{}{
					"label":   "Calendar",
					"url":     "/events",
					"tracker": "utm_nonsense",
				},
			},
			"theme": "dark",
		},
	})
	if err != nil {
		t.Fatalf("Failed to update tile: %v", err)
	}

	items, ok := updated.Config["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("Expected one stored link item, got %v", updated.Config["items"])
	}
	item := items[0].(map[string]interface{})
	if item["label"] != "Calendar" || item["url"] != "/events" {
		t.Errorf("Expected the replacement link persisted, got %v", item)
	}
	if _, ok := item["tracker"]; ok {
		t.Error("Expected unknown item keys dropped on update")
	}
	if _, ok := updated.Config["theme"]; ok {
		t.Error("Expected unknown top-level keys dropped on update")
	}
}

func TestContentTileService_PublicPageOnlyEnabled(t *testing.T) {
	svc, _ := newTestTileService(t)
	rc := officerRC()

	first, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type: TileText,
		Slug: "visible",
		Sort: intPtr(2),
	})
	if err != nil {
		t.Fatalf("Failed to create tile: %v", err)
	}
	second, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type: TileText,
		Slug: "hidden",
		Sort: intPtr(1),
	})
	if err != nil {
		t.Fatalf("Failed to create tile: %v", err)
	}
	if _, err := svc.Update(context.Background(), rc, second.ID, requests.TileUpsertRequest{
		Enabled: boolPtr(false),
	}); err != nil {
		t.Fatalf("Failed to disable tile: %v", err)
	}

	public, err := svc.PublicPage(context.Background(), "welcome")
	if err != nil {
		t.Fatalf("Failed to list public tiles: %v", err)
	}
	if len(public) != 1 || public[0].ID != first.ID {
		t.Errorf("Expected only the enabled tile on the public page, got %v", public)
	}

	manage, err := svc.ManagePage(context.Background(), rc, "welcome")
	if err != nil {
		t.Fatalf("Failed to list manage tiles: %v", err)
	}
	if len(manage) != 2 {
		t.Fatalf("Expected both tiles in the layout editor, got %d", len(manage))
	}
	if manage[0].ID != second.ID {
		t.Errorf("Expected sort order in the editor listing, got %v", manage)
	}

	if _, err := svc.ManagePage(context.Background(), reqctx.RequestContext{}, "welcome"); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for anonymous layout access, got %v", err)
	}
}

func TestContentTileService_ReorderClampsPositions(t *testing.T) {
	svc, repo := newTestTileService(t)
	rc := officerRC()

	tile, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type: TileText,
		Slug: "movable",
	})
	if err != nil {
		t.Fatalf("Failed to create tile: %v", err)
	}

	err = svc.Reorder(context.Background(), rc, requests.TileReorderRequest{
		Tiles: []requests.TilePosition{
			{ID: tile.ID, Sort: 5, ColStart: 0, RowStart: 2, ColSpan: 0, RowSpan: 3},
			{ID: 0, Sort: 1},
		},
	})
	if err != nil {
		t.Fatalf("Failed to reorder tiles: %v", err)
	}

	stored, err := repo.GetByID(context.Background(), tile.ID)
	if err != nil {
		t.Fatalf("Failed to reload tile: %v", err)
	}
	if stored.Sort != 5 || stored.RowStart != 2 || stored.RowSpan != 3 {
		t.Errorf("Expected reorder values applied, got sort=%d row=%d span=%d",
			stored.Sort, stored.RowStart, stored.RowSpan)
	}
	if stored.ColStart != 1 || stored.ColSpan != 1 {
		t.Errorf("Expected zero positions clamped to 1, got col=%d span=%d",
			stored.ColStart, stored.ColSpan)
	}

	memberRC := reqctx.RequestContext{ActorID: 2, Capabilities: auth.Capabilities{IsMember: true}}
	if err := svc.Reorder(context.Background(), memberRC, requests.TileReorderRequest{}); !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("Expected ErrForbidden for a plain member, got %v", err)
	}
}

func TestContentTileService_DeleteHidesTile(t *testing.T) {
	svc, _ := newTestTileService(t)
	rc := officerRC()

	tile, err := svc.Create(context.Background(), rc, requests.TileUpsertRequest{
		Type: TileText,
		Slug: "ephemeral",
	})
	if err != nil {
		t.Fatalf("Failed to create tile: %v", err)
	}

	if err := svc.Delete(context.Background(), rc, tile.ID); err != nil {
		t.Fatalf("Failed to delete tile: %v", err)
	}
	if _, err := svc.Update(context.Background(), rc, tile.ID, requests.TileUpsertRequest{}); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}
