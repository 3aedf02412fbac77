package library

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
	"lokarni/pkg/events"
	"lokarni/pkg/media"
	"lokarni/pkg/response"
)

type LibraryHandler struct {
	service LibraryService
	hub     *events.Hub
}

func NewLibraryHandler(service LibraryService, hub *events.Hub) *LibraryHandler {
	return &LibraryHandler{service: service, hub: hub}
}

func (h *LibraryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/assets", h.listAssets)
	router.POST("/assets/refresh", h.refreshAssets)
	router.GET("/assets/:id", h.getAssetByID)
	router.PATCH("/assets/:id/favorite", h.toggleFavorite)
}

// gridItem is a list entry enriched with the path a grid card renders.
type gridItem struct {
	assets.Asset
	PreviewPath string `json:"preview_path"`
}

func toGridItems(list []assets.Asset) []gridItem {
	items := make([]gridItem, len(list))
	for i, a := range list {
		items[i] = gridItem{
			Asset:       a,
			PreviewPath: media.PreviewPath(a.PreviewImage, a.MediaFiles),
		}
	}
	return items
}

// @Summary      List assets
// @Description  Returns the local collection filtered for a view, without touching the backend
// @Tags         assets
// @Produce      json
// @Param        view  query  string  false  "View mode"  default(all)  example(favorites)
// @Success      200  {object}  response.APIResponse "Assets listed"
// @Router       /assets [get]
func (h *LibraryHandler) listAssets(c *gin.Context) {
	view := assets.ParseView(c.Query("view"))
	list := h.service.List(view)

	data := gin.H{"items": toGridItems(list), "total": len(list), "view": view.String()}
	response.SendAPIResponse(c, http.StatusOK, true, "assets listed", data)
}

// @Summary      Refresh the asset collection
// @Description  Pulls the full collection from the catalog backend into the local store
// @Tags         assets
// @Produce      json
// @Param        view  query  string  false  "View mode applied to the response"  default(all)
// @Success      200  {object}  response.APIResponse "Assets refreshed"
// @Failure      502  {object}  response.APIResponse "Backend unreachable or rejected the request"
// @Router       /assets/refresh [post]
func (h *LibraryHandler) refreshAssets(c *gin.Context) {
	if _, err := h.service.Refresh(c.Request.Context()); err != nil {
		response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
		return
	}

	view := assets.ParseView(c.Query("view"))
	list := h.service.List(view)

	data := gin.H{"items": toGridItems(list), "total": len(list), "view": view.String()}
	response.SendAPIResponse(c, http.StatusOK, true, "assets refreshed", data)
}

// @Summary      Get asset by ID
// @Tags         assets
// @Produce      json
// @Param        id  path  int  true  "Asset ID"
// @Success      200  {object}  response.APIResponse{data=assets.Asset} "Asset fetched"
// @Failure      400  {object}  response.APIResponse "Invalid asset ID"
// @Failure      404  {object}  response.APIResponse "Asset not found"
// @Router       /assets/{id} [get]
func (h *LibraryHandler) getAssetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendError(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	asset, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "asset fetched", asset)
}

// @Summary      Toggle the favorite flag
// @Description  Flips is_favorite server-side and reconciles the confirmed result into the active view
// @Tags         assets
// @Produce      json
// @Param        id    path   int     true   "Asset ID"
// @Param        view  query  string  false  "Active view"  default(all)
// @Success      200  {object}  response.APIResponse "Favorite toggled"
// @Failure      400  {object}  response.APIResponse "Invalid asset ID"
// @Failure      502  {object}  response.APIResponse "Backend unreachable or rejected the request"
// @Router       /assets/{id}/favorite [patch]
func (h *LibraryHandler) toggleFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.SendError(c, http.StatusBadRequest, "invalid asset id")
		return
	}

	view := assets.ParseView(c.Query("view"))

	updated, removed, err := h.service.ToggleFavorite(c.Request.Context(), id, view)
	if err != nil {
		response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
		return
	}

	if removed {
		h.hub.Broadcast(events.AssetRemoved(updated.ID))
	} else {
		h.hub.Broadcast(events.AssetUpdated(updated))
	}

	data := gin.H{"asset": updated, "removed_from_view": removed}
	response.SendAPIResponse(c, http.StatusOK, true, "favorite toggled", data)
}
