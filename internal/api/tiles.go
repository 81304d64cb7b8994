package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	reqctx "github.com/Caarnus/newburgh-lodge/internal/context"
	"github.com/Caarnus/newburgh-lodge/internal/models/dtos/requests"
	"github.com/Caarnus/newburgh-lodge/internal/services"
)

// PublicPageTilesHandler handles GET /api/v1/pages/{page}
//
// Serves the enabled tiles of a page in render order. This is the
// endpoint the public site builds its pages from.
func PublicPageTilesHandler(svc *services.ContentTileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pageParam(r)

		tiles, err := svc.PublicPage(r.Context(), page)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &tiles)
	}
}

// ManagePageTilesHandler handles GET /api/v1/admin/pages/{page}
//
// Same page, but including disabled tiles, for the editing surface.
func ManagePageTilesHandler(svc *services.ContentTileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())
		page := pageParam(r)

		tiles, err := svc.ManagePage(r.Context(), rc, page)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &tiles)
	}
}

// CreateTileHandler handles POST /api/v1/admin/tiles
func CreateTileHandler(svc *services.ContentTileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.TileUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		tile, err := svc.Create(r.Context(), rc, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusCreated, tile)
	}
}

// UpdateTileHandler handles PUT /api/v1/admin/tiles/{tile_id}
func UpdateTileHandler(svc *services.ContentTileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "tile_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid tile id")
			return
		}

		var req requests.TileUpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		tile, err := svc.Update(r.Context(), rc, id, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, tile)
	}
}

// DeleteTileHandler handles DELETE /api/v1/admin/tiles/{tile_id}
func DeleteTileHandler(svc *services.ContentTileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		id, ok := uintParam(r, "tile_id")
		if !ok {
			respondWithError(w, http.StatusBadRequest, "Invalid tile id")
			return
		}

		if err := svc.Delete(r.Context(), rc, id); err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithMessage(w, http.StatusOK, "Tile deleted")
	}
}

func pageParam(r *http.Request) string {
	page := chi.URLParam(r, "page")
	if page == "" {
		page = "welcome"
	}
	return page
}

// ReorderTilesHandler handles PUT /api/v1/admin/tiles/reorder
func ReorderTilesHandler(svc *services.ContentTileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc := reqctx.GetRequestContext(r.Context())

		var req requests.TileReorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.Reorder(r.Context(), rc, req); err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithMessage(w, http.StatusOK, "Layout saved")
	}
}
