package detail

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
	"lokarni/pkg/events"
	"lokarni/pkg/response"
)

type detailFixture struct {
	router   *gin.Engine
	client   *mockCatalogClient
	sessions *Manager
	store    *assets.Store
	hub      *events.Hub
}

func setupDetailRouter(t *testing.T) *detailFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &detailFixture{
		router:   gin.New(),
		client:   new(mockCatalogClient),
		sessions: NewManager(),
		store:    assets.NewStore(),
		hub:      events.NewHub(),
	}
	NewDetailHandler(f.sessions, f.client, f.store, f.hub).RegisterRoutes(f.router)
	return f
}

func (f *detailFixture) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, response.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func sessionIDFrom(t *testing.T, resp response.APIResponse) string {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	id, ok := data["session_id"].(string)
	require.True(t, ok)
	return id
}

func TestOpenSession_ServedFromLocalCollection(t *testing.T) {
	f := setupDetailRouter(t)
	f.store.Insert(assets.Asset{ID: 42, Name: "cached"})

	w, resp := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})

	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, resp.Success)
	require.Equal(t, 1, f.sessions.Count())
	f.client.AssertNotCalled(t, "GetAsset", mock.Anything, mock.Anything)

	data := resp.Data.(map[string]any)
	require.Equal(t, string(StateViewing), data["state"])
}

func TestOpenSession_FallsBackToBackend(t *testing.T) {
	f := setupDetailRouter(t)
	f.client.On("GetAsset", mock.Anything, int64(7)).Return(assets.Asset{ID: 7, Name: "remote"}, nil)

	w, _ := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 7})

	require.Equal(t, http.StatusCreated, w.Code)
	f.client.AssertExpectations(t)
}

func TestOpenSession_MissingAssetID(t *testing.T) {
	f := setupDetailRouter(t)

	w, _ := f.do(t, http.MethodPost, "/sessions", gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionRoutes_UnknownSessionIs404(t *testing.T) {
	f := setupDetailRouter(t)

	w, _ := f.do(t, http.MethodPost, "/sessions/nope/edit", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditSaveFlow_ReconcilesStoreAndBroadcasts(t *testing.T) {
	f := setupDetailRouter(t)
	subscriber := f.hub.Add("test", nil)
	f.store.Insert(assets.Asset{ID: 42, Name: "old"})

	_, opened := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})
	sid := sessionIDFrom(t, opened)

	confirmed := assets.Asset{ID: 42, Name: "new"}
	f.client.On("UpdateAsset", mock.Anything, int64(42), mock.MatchedBy(func(fields catalog.UpdateFields) bool {
		return fields.Name == "new"
	})).Return(confirmed, nil)

	w, _ := f.do(t, http.MethodPost, "/sessions/"+sid+"/edit", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = f.do(t, http.MethodPut, "/sessions/"+sid+"/buffer", EditBuffer{Name: "new"})
	require.Equal(t, http.StatusOK, w.Code)

	w, saved := f.do(t, http.MethodPost, "/sessions/"+sid+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := saved.Data.(map[string]any)
	require.Equal(t, string(StateViewing), data["state"])

	stored, ok := f.store.Get(42)
	require.True(t, ok)
	require.Equal(t, "new", stored.Name)

	event := <-subscriber.Send
	require.Equal(t, events.TypeAssetUpdated, event.Type)
}

func TestSave_BackendFailureStaysEditing(t *testing.T) {
	f := setupDetailRouter(t)
	f.store.Insert(assets.Asset{ID: 42, Name: "old"})

	_, opened := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})
	sid := sessionIDFrom(t, opened)

	f.client.On("UpdateAsset", mock.Anything, int64(42), mock.Anything).
		Return(assets.Asset{}, &catalog.APIError{StatusCode: 422, Detail: "name must not be empty"})

	f.do(t, http.MethodPost, "/sessions/"+sid+"/edit", nil)
	f.do(t, http.MethodPut, "/sessions/"+sid+"/buffer", EditBuffer{})

	w, resp := f.do(t, http.MethodPost, "/sessions/"+sid+"/save", nil)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "name must not be empty", resp.Message)

	// Session remains editing and the store keeps the confirmed state.
	_, state := f.do(t, http.MethodGet, "/sessions/"+sid, nil)
	data := state.Data.(map[string]any)
	require.Equal(t, string(StateEditing), data["state"])

	stored, _ := f.store.Get(42)
	require.Equal(t, "old", stored.Name)
}

func TestSave_WithoutEditIsConflict(t *testing.T) {
	f := setupDetailRouter(t)
	f.store.Insert(assets.Asset{ID: 42})

	_, opened := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})
	sid := sessionIDFrom(t, opened)

	w, _ := f.do(t, http.MethodPost, "/sessions/"+sid+"/save", nil)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteAsset_WithoutConfirmationIsRejected(t *testing.T) {
	f := setupDetailRouter(t)
	f.store.Insert(assets.Asset{ID: 42})

	_, opened := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})
	sid := sessionIDFrom(t, opened)

	w, _ := f.do(t, http.MethodDelete, "/sessions/"+sid+"/asset", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	f.client.AssertNotCalled(t, "DeleteAsset", mock.Anything, mock.Anything)
	require.Equal(t, 1, f.sessions.Count())
}

func TestDeleteAsset_ConfirmedRemovesEverywhere(t *testing.T) {
	f := setupDetailRouter(t)
	subscriber := f.hub.Add("test", nil)
	f.store.Insert(assets.Asset{ID: 42})

	_, opened := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})
	sid := sessionIDFrom(t, opened)

	f.client.On("DeleteAsset", mock.Anything, int64(42)).Return(nil)

	w, _ := f.do(t, http.MethodDelete, "/sessions/"+sid+"/asset?confirm=true", nil)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, f.sessions.Count())
	_, ok := f.store.Get(42)
	require.False(t, ok)

	event := <-subscriber.Send
	require.Equal(t, events.TypeAssetRemoved, event.Type)
	require.EqualValues(t, 42, event.AssetID)
}

func TestToggleFavorite_FavoritesViewRemovalReported(t *testing.T) {
	f := setupDetailRouter(t)
	f.store.ReplaceAll([]assets.Asset{{ID: 42, IsFavorite: true}})

	_, opened := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})
	sid := sessionIDFrom(t, opened)

	f.client.On("ToggleFavorite", mock.Anything, int64(42)).Return(assets.Asset{ID: 42, IsFavorite: false}, nil)

	w, resp := f.do(t, http.MethodPatch, "/sessions/"+sid+"/favorite?view=favorites", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	require.Equal(t, true, data["removed_from_view"])
	require.Empty(t, f.store.Snapshot())
}

func TestCarouselRoutes_MoveTheSession(t *testing.T) {
	f := setupDetailRouter(t)
	f.store.Insert(assets.Asset{ID: 42, MediaFiles: []string{"/a.png", "/b.png"}})

	_, opened := f.do(t, http.MethodPost, "/sessions", gin.H{"asset_id": 42})
	sid := sessionIDFrom(t, opened)

	_, resp := f.do(t, http.MethodPost, "/sessions/"+sid+"/media/next", nil)
	data := resp.Data.(map[string]any)
	mediaView := data["media"].(map[string]any)
	require.EqualValues(t, 1, mediaView["index"])

	_, resp = f.do(t, http.MethodPost, "/sessions/"+sid+"/media/prev", nil)
	data = resp.Data.(map[string]any)
	mediaView = data["media"].(map[string]any)
	require.EqualValues(t, 0, mediaView["index"])
}
