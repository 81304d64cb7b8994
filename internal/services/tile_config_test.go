package services

import (
	"errors"
	"testing"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
)

func TestParseTileConfig_DropsUnknownKeys(t *testing.T) {
	raw := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"label": "Calendar", "url": "/events", "extra": "dropped"},
		},
		"unexpected": "also dropped",
	}

	clean, err := ParseTileConfig(TileLinks, raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, ok := clean["unexpected"]; ok {
		t.Error("Unknown top-level keys must be dropped")
	}
	items, ok := clean["items"].([]interface{})
	if !ok || len(items) != 1 {
		t.Fatalf("Expected one item, got %v", clean["items"])
	}
	item, ok := items[0].(map[string]interface{})
	if !ok {
		t.Fatalf("Unexpected item shape %T", items[0])
	}
	if _, ok := item["extra"]; ok {
		t.Error("Unknown item keys must be dropped")
	}
	if item["label"] != "Calendar" || item["url"] != "/events" {
		t.Errorf("Whitelisted keys must survive, got %v", item)
	}
}

func TestParseTileConfig_NilAndUnknownType(t *testing.T) {
	clean, err := ParseTileConfig(TileText, nil)
	if err != nil || clean != nil {
		t.Errorf("Nil config passes through, got (%v, %v)", clean, err)
	}

	if _, err := ParseTileConfig("marquee", map[string]interface{}{}); err == nil {
		t.Error("Expected an error for an unknown tile type")
	}
}

func TestParseTileConfig_TextAlign(t *testing.T) {
	if _, err := ParseTileConfig(TileText, map[string]interface{}{
		"html": "<p>Welcome</p>", "align": "center",
	}); err != nil {
		t.Errorf("Expected center to pass, got %v", err)
	}

	_, err := ParseTileConfig(TileText, map[string]interface{}{"align": "justified"})
	var verrs apperr.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if _, ok := verrs["config.align"]; !ok {
		t.Errorf("Expected config.align flagged, got %v", verrs)
	}
}

func TestParseTileConfig_LinksValidation(t *testing.T) {
	_, err := ParseTileConfig(TileLinks, map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"label": "", "url": ""},
		},
	})

	var verrs apperr.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if _, ok := verrs["config.items.0.label"]; !ok {
		t.Errorf("Expected the item label flagged, got %v", verrs)
	}
	if _, ok := verrs["config.items.0.url"]; !ok {
		t.Errorf("Expected the item url flagged, got %v", verrs)
	}
}

func TestParseTileConfig_EventsRanges(t *testing.T) {
	if _, err := ParseTileConfig(TileEvents, map[string]interface{}{
		"days_ahead": 30, "limit": 5,
	}); err != nil {
		t.Errorf("Expected in-range values to pass, got %v", err)
	}

	_, err := ParseTileConfig(TileEvents, map[string]interface{}{
		"days_ahead": 0, "limit": 50,
	})
	var verrs apperr.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if _, ok := verrs["config.days_ahead"]; !ok {
		t.Errorf("Expected config.days_ahead flagged, got %v", verrs)
	}
	if _, ok := verrs["config.limit"]; !ok {
		t.Errorf("Expected config.limit flagged, got %v", verrs)
	}
}

func TestParseTileConfig_MismatchedShape(t *testing.T) {
	// items must be a list for a links tile
	_, err := ParseTileConfig(TileLinks, map[string]interface{}{"items": "not-a-list"})
	if err == nil {
		t.Error("Expected an error for a config that does not match the tile type")
	}
}
