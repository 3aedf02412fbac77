package importer

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
	"lokarni/pkg/credentials"
	"lokarni/pkg/events"
	"lokarni/pkg/response"
)

type ImportHandler struct {
	service ImportService
	store   *assets.Store
	hub     *events.Hub
}

func NewImportHandler(service ImportService, store *assets.Store, hub *events.Hub) *ImportHandler {
	return &ImportHandler{service: service, store: store, hub: hub}
}

func (h *ImportHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/import", h.importAsset)
	router.GET("/import/credential", h.getCredential)
}

type importRequest struct {
	URL    string `json:"url" binding:"required"`
	APIKey string `json:"api_key"`
}

// @Summary      Import an asset from Civitai
// @Description  Routes a pasted Civitai URL to the matching backend import workflow
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        request body importRequest true "Import request"
// @Success      201  {object}  response.APIResponse{data=assets.Asset} "Asset imported"
// @Failure      400  {object}  response.APIResponse "Invalid or malformed URL"
// @Failure      502  {object}  response.APIResponse "Backend rejected the import or was unreachable"
// @Router       /import [post]
func (h *ImportHandler) importAsset(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	// The response cookie is the short-lived sink; it only gets written when
	// the import succeeds.
	cookieSink := credentials.NewCookieSink(c.Writer, c.Request)

	created, err := h.service.Import(c.Request.Context(), req.URL, req.APIKey, cookieSink)
	if err != nil {
		if errors.Is(err, ErrMalformedURL) {
			response.SendError(c, http.StatusBadRequest, err.Error())
			return
		}
		response.SendError(c, catalog.HTTPStatus(err), catalog.UserMessage(err))
		return
	}

	h.store.Insert(created)
	h.hub.Broadcast(events.AssetImported(created))

	response.SendAPIResponse(c, http.StatusCreated, true, "asset imported", created)
}

// @Summary      Read the stored Civitai credential
// @Description  Returns the API key cached by the last successful import, if any
// @Tags         import
// @Produce      json
// @Success      200  {object}  response.APIResponse "Stored credential (may be empty)"
// @Failure      500  {object}  response.APIResponse "Credential store unavailable"
// @Router       /import/credential [get]
func (h *ImportHandler) getCredential(c *gin.Context) {
	value, err := h.service.StoredCredential(c.Request.Context())
	if err != nil {
		response.SendError(c, http.StatusInternalServerError, "credential store unavailable")
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "credential fetched", gin.H{"api_key": value})
}
