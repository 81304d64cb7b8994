package services

import (
	"context"
	"fmt"

	"github.com/Caarnus/newburgh-lodge/internal/apperr"
	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/db/repositories"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/responses"
	gormModels "github.com/Caarnus/newburgh-lodge/internal/models/gorm"
	"github.com/Caarnus/newburgh-lodge/internal/policies"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type ContentTileService struct {
	repo   *repositories.ContentTileRepository
	policy policies.ContentTilePolicy
}

func NewContentTileService(repo *repositories.ContentTileRepository) *ContentTileService {
	return &ContentTileService{repo: repo}
}

// PublicPage returns the enabled tiles of a page in render order.
func (s *ContentTileService) PublicPage(ctx context.Context, page string) ([]responses.TileDTO, error) {
	tiles, err := s.repo.ListPage(ctx, page, true)
	if err != nil {
		return nil, err
	}
	return tileDTOs(tiles), nil
}

// ManagePage returns every tile of a page for the layout editor.
func (s *ContentTileService) ManagePage(ctx context.Context, rc reqctx.RequestContext, page string) ([]responses.TileDTO, error) {
	if !s.policy.Create(rc.Capabilities) {
		return nil, apperr.ErrForbidden
	}

	tiles, err := s.repo.ListPage(ctx, page, false)
	if err != nil {
		return nil, err
	}
	return tileDTOs(tiles), nil
}

func (s *ContentTileService) Create(ctx context.Context, rc reqctx.RequestContext, req requests.TileUpsertRequest) (*responses.TileDTO, error) {
	if !s.policy.Create(rc.Capabilities) {
		return nil, apperr.ErrForbidden
	}

	verrs := apperr.ValidationErrors{}
	if !IsTileType(req.Type) {
		verrs.Add("type", fmt.Sprintf("unknown tile type %q", req.Type))
	}

	tileSlug := req.Slug
	if tileSlug == "" {
		tileSlug = s.generateSlug(req)
	}
	taken, err := s.repo.SlugTaken(ctx, tileSlug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		verrs.Add("slug", "the slug has already been taken")
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	config, err := ParseTileConfig(req.Type, req.Config)
	if err != nil {
		return nil, err
	}

	page := req.Page
	if page == "" {
		page = "welcome"
	}

	tile := gormModels.ContentTile{
		Page:    page,
		Type:    req.Type,
		Slug:    tileSlug,
		Title:   req.Title,
		Config:  config,
		Enabled: true,
	}
	applyLayout(&tile, req)

	if err := s.repo.Create(ctx, &tile); err != nil {
		return nil, err
	}

	dto := tileDTO(&tile)
	return &dto, nil
}

func (s *ContentTileService) Update(ctx context.Context, rc reqctx.RequestContext, id uint, req requests.TileUpsertRequest) (*responses.TileDTO, error) {
	tile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.Update(rc.Capabilities, tile) {
		return nil, apperr.ErrForbidden
	}

	verrs := apperr.ValidationErrors{}
	tileType := req.Type
	if tileType == "" {
		tileType = tile.Type
	}
	if !IsTileType(tileType) {
		verrs.Add("type", fmt.Sprintf("unknown tile type %q", tileType))
	}
	if req.Slug != "" && req.Slug != tile.Slug {
		taken, err := s.repo.SlugTaken(ctx, req.Slug, tile.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			verrs.Add("slug", "the slug has already been taken")
		}
	}
	if err := verrs.OrNil(); err != nil {
		return nil, err
	}

	if req.Config != nil {
		config, err := ParseTileConfig(tileType, req.Config)
		if err != nil {
			return nil, err
		}
		tile.Config = config
	}

	tile.Type = tileType
	if req.Slug != "" {
		tile.Slug = req.Slug
	}
	if req.Page != "" {
		tile.Page = req.Page
	}
	if req.Title != nil {
		tile.Title = req.Title
	}
	if req.Enabled != nil {
		tile.Enabled = *req.Enabled
	}
	applyLayout(tile, req)

	if err := s.repo.Save(ctx, tile); err != nil {
		return nil, err
	}

	dto := tileDTO(tile)
	return &dto, nil
}

func (s *ContentTileService) Delete(ctx context.Context, rc reqctx.RequestContext, id uint) error {
	tile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.Delete(rc.Capabilities, tile) {
		return apperr.ErrForbidden
	}
	return s.repo.Delete(ctx, tile)
}

// Reorder applies a batch of grid positions.
func (s *ContentTileService) Reorder(ctx context.Context, rc reqctx.RequestContext, req requests.TileReorderRequest) error {
	if !s.policy.Create(rc.Capabilities) {
		return apperr.ErrForbidden
	}

	for _, pos := range req.Tiles {
		if pos.ID == 0 {
			continue
		}
		if err := s.repo.UpdatePosition(ctx, pos.ID,
			pos.Sort, max(pos.ColStart, 1), max(pos.RowStart, 1), max(pos.ColSpan, 1), max(pos.RowSpan, 1)); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentTileService) generateSlug(req requests.TileUpsertRequest) string {
	if req.Title != nil && *req.Title != "" {
		return slug.Make(*req.Title)
	}
	return slug.Make(req.Type + "-" + uuid.NewString()[:8])
}

func applyLayout(tile *gormModels.ContentTile, req requests.TileUpsertRequest) {
	if tile.ColStart == 0 {
		tile.ColStart, tile.RowStart, tile.ColSpan, tile.RowSpan = 1, 1, 1, 1
	}
	if req.ColStart != nil {
		tile.ColStart = *req.ColStart
	}
	if req.RowStart != nil {
		tile.RowStart = *req.RowStart
	}
	if req.ColSpan != nil {
		tile.ColSpan = *req.ColSpan
	}
	if req.RowSpan != nil {
		tile.RowSpan = *req.RowSpan
	}
	if req.Sort != nil {
		tile.Sort = *req.Sort
	}
}

func tileDTO(tile *gormModels.ContentTile) responses.TileDTO {
	return responses.TileDTO{
		ID:       tile.ID,
		Page:     tile.Page,
		Type:     tile.Type,
		Slug:     tile.Slug,
		Title:    tile.Title,
		Config:   tile.Config,
		ColStart: tile.ColStart,
		RowStart: tile.RowStart,
		ColSpan:  tile.ColSpan,
		RowSpan:  tile.RowSpan,
		Sort:     tile.Sort,
		Enabled:  tile.Enabled,
	}
}

func tileDTOs(tiles []gormModels.ContentTile) []responses.TileDTO {
	dtos := make([]responses.TileDTO, 0, len(tiles))
	for i := range tiles {
		dtos = append(dtos, tileDTO(&tiles[i]))
	}
	return dtos
}
