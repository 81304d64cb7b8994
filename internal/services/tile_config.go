package services

import (
	"encoding/json"
	"fmt"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
)

// Tile types form a closed set; each carries its own fixed config record.
const (
	TileText       = "text"
	TileNewsletter = "newsletter"
	TileImageText  = "image_text"
	TileImage      = "image"
	TileLinks      = "links"
	TileEvents     = "events"
	TileCTA        = "cta"
)

var tileTypes = []string{
	TileText, TileNewsletter, TileImageText, TileImage, TileLinks, TileEvents, TileCTA,
}

// IsTileType reports whether t names a known tile type.
func IsTileType(t string) bool {
	for _, known := range tileTypes {
		if known == t {
			return true
		}
	}
	return false
}

type textConfig struct {
	HTML  *string `json:"html,omitempty"`
	Align *string `json:"align,omitempty"`
}

type newsletterConfig struct {
	CoverImageURL *string `json:"cover_image_url,omitempty"`
	IssueTitle    *string `json:"issue_title,omitempty"`
	IssueDate     *string `json:"issue_date,omitempty"`
	SummaryHTML   *string `json:"summary_html,omitempty"`
	LinkURL       *string `json:"link_url,omitempty"`
	LinkLabel     *string `json:"link_label,omitempty"`
}

type imageTextConfig struct {
	ImageURL  *string `json:"image_url,omitempty"`
	Alt       *string `json:"alt,omitempty"`
	TextHTML  *string `json:"text_html,omitempty"`
	LinkURL   *string `json:"link_url,omitempty"`
	LinkLabel *string `json:"link_label,omitempty"`
}

type imageConfig struct {
	ImageURL *string `json:"image_url,omitempty"`
	Alt      *string `json:"alt,omitempty"`
	Caption  *string `json:"caption,omitempty"`
	LinkURL  *string `json:"link_url,omitempty"`
}

type linkItem struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type linksConfig struct {
	Items []linkItem `json:"items,omitempty"`
}

type eventsConfig struct {
	DaysAhead  *int     `json:"days_ahead,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Limit      *int     `json:"limit,omitempty"`
	Endpoint   *string  `json:"endpoint,omitempty"`
}

type ctaConfig struct {
	Label       *string `json:"label,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ParseTileConfig decodes a submitted config through the fixed record for
// the tile's type, so keys outside that record are dropped structurally
// rather than rejected. The result is what gets persisted.
func ParseTileConfig(tileType string, raw map[string]interface{}) (gormModels.JSONMap, error) {
	if raw == nil {
		return nil, nil
	}

	var typed interface{}
	switch tileType {
	case TileText:
		typed = &textConfig{}
	case TileNewsletter:
		typed = &newsletterConfig{}
	case TileImageText:
		typed = &imageTextConfig{}
	case TileImage:
		typed = &imageConfig{}
	case TileLinks:
		typed = &linksConfig{}
	case TileEvents:
		typed = &eventsConfig{}
	case TileCTA:
		typed = &ctaConfig{}
	default:
		return nil, apperr.ValidationErrors{"type": fmt.Sprintf("unknown tile type %q", tileType)}
	}

	if err := roundTrip(raw, typed); err != nil {
		return nil, apperr.ValidationErrors{"config": "config does not match tile type"}
	}

	if err := validateTileConfig(typed); err != nil {
		return nil, err
	}

	var clean gormModels.JSONMap
	if err := roundTrip(typed, &clean); err != nil {
		return nil, fmt.Errorf("failed to normalize tile config: %w", err)
	}
	if len(clean) == 0 {
		return gormModels.JSONMap{}, nil
	}
	return clean, nil
}

func validateTileConfig(typed interface{}) error {
	verrs := apperr.ValidationErrors{}
	switch cfg := typed.(type) {
	case *textConfig:
		if cfg.Align != nil {
			switch *cfg.Align {
			case "left", "center", "right":
			default:
				verrs.Add("config.align", "must be one of left, center, right")
			}
		}
	case *linksConfig:
		if len(cfg.Items) > 20 {
			verrs.Add("config.items", "may not have more than 20 items")
		}
		for i, item := range cfg.Items {
			if item.Label == "" {
				verrs.Add(fmt.Sprintf("config.items.%d.label", i), "label is required")
			}
			if item.URL == "" {
				verrs.Add(fmt.Sprintf("config.items.%d.url", i), "url is required")
			}
		}
	case *eventsConfig:
		if cfg.DaysAhead != nil && (*cfg.DaysAhead < 1 || *cfg.DaysAhead > 365) {
			verrs.Add("config.days_ahead", "must be between 1 and 365")
		}
		if cfg.Limit != nil && (*cfg.Limit < 1 || *cfg.Limit > 20) {
			verrs.Add("config.limit", "must be between 1 and 20")
		}
		if len(cfg.Categories) > 20 {
			verrs.Add("config.categories", "may not have more than 20 entries")
		}
	}
	return verrs.OrNil()
}

// roundTrip re-encodes src into dst, relying on the json field sets of the
// typed config records to keep only whitelisted keys.
func roundTrip(src, dst interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
