package detail

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
	"lokarni/pkg/events"
	"lokarni/pkg/response"
)

// DetailHandler exposes detail sessions over HTTP. A session is opened for
// one asset, drives its edit/carousel state, and is closed when the view
// goes away.
type DetailHandler struct {
	sessions *Manager
	client   catalog.Client
	store    *assets.Store
	hub      *events.Hub
}

func NewDetailHandler(sessions *Manager, client catalog.Client, store *assets.Store, hub *events.Hub) *DetailHandler {
	return &DetailHandler{sessions: sessions, client: client, store: store, hub: hub}
}

func (h *DetailHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/sessions", h.openSession)
	router.GET("/sessions/:id", h.getSession)
	router.DELETE("/sessions/:id", h.closeSession)

	router.POST("/sessions/:id/edit", h.beginEdit)
	router.POST("/sessions/:id/cancel", h.cancelEdit)
	router.PUT("/sessions/:id/buffer", h.updateBuffer)
	router.POST("/sessions/:id/save", h.save)

	router.PATCH("/sessions/:id/favorite", h.toggleFavorite)
	router.DELETE("/sessions/:id/asset", h.deleteAsset)

	router.POST("/sessions/:id/media/next", h.nextMedia)
	router.POST("/sessions/:id/media/prev", h.prevMedia)
}

type openSessionRequest struct {
	AssetID int64 `json:"asset_id" binding:"required"`
}

// sessionData renders the controller for a response. The buffer is only
// included while an edit is in flight.
func sessionData(id string, ctrl *Controller) gin.H {
	data := gin.H{
		"session_id": id,
		"state":      ctrl.State(),
		"asset":      ctrl.Asset(),
		"media":      ctrl.CurrentMedia(),
	}
	if ctrl.State() != StateViewing {
		data["buffer"] = ctrl.Buffer()
	}
	return data
}

// withSession resolves the session from the path and runs fn under its
// lock. A missing session answers 404 directly.
func (h *DetailHandler) withSession(c *gin.Context, fn func(session *Session, ctrl *Controller)) {
	session, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		response.SendError(c, http.StatusNotFound, "session not found")
		return
	}

	_ = session.Do(func(ctrl *Controller) error {
		fn(session, ctrl)
		return nil
	})
}

// @Summary      Open a detail session
// @Description  Starts a session for one asset, served locally when cached and fetched from the backend otherwise
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request  body  openSessionRequest  true  "Asset to open"
// @Success      201  {object}  response.APIResponse "Session opened"
// @Failure      400  {object}  response.APIResponse "Invalid request body"
// @Failure      502  {object}  response.APIResponse "Backend unreachable or rejected the request"
// @Router       /sessions [post]
func (h *DetailHandler) openSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "asset_id is required")
		return
	}

	asset, ok := h.store.Get(req.AssetID)
	if !ok {
		fetched, err := h.client.GetAsset(c.Request.Context(), req.AssetID)
		if err != nil {
			response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
			return
		}
		asset = fetched
	}

	session := h.sessions.Open(NewController(asset))
	response.SendAPIResponse(c, http.StatusCreated, true, "session opened", sessionData(session.ID, session.controller))
}

// @Summary      Read a detail session
// @Tags         sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.APIResponse "Session state"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Router       /sessions/{id} [get]
func (h *DetailHandler) getSession(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		response.SendAPIResponse(c, http.StatusOK, true, "session state", sessionData(session.ID, ctrl))
	})
}

// @Summary      Close a detail session
// @Description  Drops the session and any draft it held; the asset itself is untouched
// @Tags         sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.APIResponse "Session closed"
// @Router       /sessions/{id} [delete]
func (h *DetailHandler) closeSession(c *gin.Context) {
	h.sessions.Close(c.Param("id"))
	response.SendAPIResponse(c, http.StatusOK, true, "session closed", nil)
}

// @Summary      Start editing
// @Description  Seeds the edit buffer from the last confirmed asset state
// @Tags         sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.APIResponse "Editing started"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Failure      409  {object}  response.APIResponse "An edit is already in progress"
// @Router       /sessions/{id}/edit [post]
func (h *DetailHandler) beginEdit(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		if err := ctrl.BeginEdit(); err != nil {
			response.SendError(c, http.StatusConflict, err.Error())
			return
		}
		response.SendAPIResponse(c, http.StatusOK, true, "editing started", sessionData(session.ID, ctrl))
	})
}

// @Summary      Cancel editing
// @Description  Discards the draft and returns to viewing
// @Tags         sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.APIResponse "Edit cancelled"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Failure      409  {object}  response.APIResponse "No edit in progress"
// @Router       /sessions/{id}/cancel [post]
func (h *DetailHandler) cancelEdit(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		if err := ctrl.CancelEdit(); err != nil {
			response.SendError(c, http.StatusConflict, err.Error())
			return
		}
		response.SendAPIResponse(c, http.StatusOK, true, "edit cancelled", sessionData(session.ID, ctrl))
	})
}

// @Summary      Replace the edit buffer
// @Description  Overwrites the draft with the submitted field set; nothing reaches the backend until save
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        id       path  string      true  "Session ID"
// @Param        request  body  EditBuffer  true  "Draft field values"
// @Success      200  {object}  response.APIResponse "Buffer updated"
// @Failure      400  {object}  response.APIResponse "Invalid request body"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Failure      409  {object}  response.APIResponse "No edit in progress"
// @Router       /sessions/{id}/buffer [put]
func (h *DetailHandler) updateBuffer(c *gin.Context) {
	var buffer EditBuffer
	if err := c.ShouldBindJSON(&buffer); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid buffer payload")
		return
	}

	h.withSession(c, func(session *Session, ctrl *Controller) {
		if err := ctrl.SetBuffer(buffer); err != nil {
			response.SendError(c, http.StatusConflict, err.Error())
			return
		}
		response.SendAPIResponse(c, http.StatusOK, true, "buffer updated", sessionData(session.ID, ctrl))
	})
}

// @Summary      Save the draft
// @Description  Sends the full buffer to the backend; on failure the session stays in editing with the draft intact
// @Tags         sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.APIResponse "Asset saved"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Failure      409  {object}  response.APIResponse "No edit in progress"
// @Failure      502  {object}  response.APIResponse "Backend unreachable or rejected the request"
// @Router       /sessions/{id}/save [post]
func (h *DetailHandler) save(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		updated, err := ctrl.Save(c.Request.Context(), h.client)
		if err != nil {
			if errors.Is(err, ErrNotEditing) {
				response.SendError(c, http.StatusConflict, err.Error())
				return
			}
			response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
			return
		}

		h.store.Replace(updated)
		h.hub.Broadcast(events.AssetUpdated(updated))
		response.SendAPIResponse(c, http.StatusOK, true, "asset saved", sessionData(session.ID, ctrl))
	})
}

// @Summary      Toggle the favorite flag from a detail session
// @Description  Available in every session state; the confirmed result is reconciled into the active view
// @Tags         sessions
// @Produce      json
// @Param        id    path   string  true   "Session ID"
// @Param        view  query  string  false  "Active view"  default(all)
// @Success      200  {object}  response.APIResponse "Favorite toggled"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Failure      502  {object}  response.APIResponse "Backend unreachable or rejected the request"
// @Router       /sessions/{id}/favorite [patch]
func (h *DetailHandler) toggleFavorite(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		updated, err := ctrl.ToggleFavorite(c.Request.Context(), h.client)
		if err != nil {
			response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
			return
		}

		view := assets.ParseView(c.Query("view"))
		removed := h.store.ApplyFavorite(updated, view)
		if removed {
			h.hub.Broadcast(events.AssetRemoved(updated.ID))
		} else {
			h.hub.Broadcast(events.AssetUpdated(updated))
		}

		data := sessionData(session.ID, ctrl)
		data["removed_from_view"] = removed
		response.SendAPIResponse(c, http.StatusOK, true, "favorite toggled", data)
	})
}

// @Summary      Delete the asset
// @Description  Permanently removes the asset from the backend; requires confirm=true and closes the session
// @Tags         sessions
// @Produce      json
// @Param        id       path   string  true   "Session ID"
// @Param        confirm  query  bool    false  "Must be true to proceed"
// @Success      200  {object}  response.APIResponse "Asset deleted"
// @Failure      400  {object}  response.APIResponse "Confirmation missing"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Failure      502  {object}  response.APIResponse "Backend unreachable or rejected the request"
// @Router       /sessions/{id}/asset [delete]
func (h *DetailHandler) deleteAsset(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		confirmed := c.Query("confirm") == "true"
		assetID := ctrl.Asset().ID

		if err := ctrl.Delete(c.Request.Context(), h.client, confirmed); err != nil {
			if errors.Is(err, ErrConfirmationRequired) {
				response.SendError(c, http.StatusBadRequest, err.Error())
				return
			}
			response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
			return
		}

		h.store.Remove(assetID)
		h.sessions.Close(session.ID)
		h.hub.Broadcast(events.AssetRemoved(assetID))
		response.SendAPIResponse(c, http.StatusOK, true, "asset deleted", nil)
	})
}

// @Summary      Advance the media carousel
// @Tags         sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.APIResponse "Carousel moved"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Router       /sessions/{id}/media/next [post]
func (h *DetailHandler) nextMedia(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		ctrl.NextMedia()
		response.SendAPIResponse(c, http.StatusOK, true, "carousel moved", sessionData(session.ID, ctrl))
	})
}

// @Summary      Step the media carousel back
// @Tags         sessions
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.APIResponse "Carousel moved"
// @Failure      404  {object}  response.APIResponse "Session not found"
// @Router       /sessions/{id}/media/prev [post]
func (h *DetailHandler) prevMedia(c *gin.Context) {
	h.withSession(c, func(session *Session, ctrl *Controller) {
		ctrl.PrevMedia()
		response.SendAPIResponse(c, http.StatusOK, true, "carousel moved", sessionData(session.ID, ctrl))
	})
}
