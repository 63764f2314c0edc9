package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/attestia/docregistry/internal/registry/repository"
	"github.com/attestia/docregistry/internal/registry/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	svc := service.New(repository.NewMemoryRepo())
	RegisterDocumentRoutes(g, svc)
	return g
}

func doJSON(t *testing.T, g *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestDocumentLifecycle(t *testing.T) {
	g := newTestRouter()

	// create
	w := doJSON(t, g, http.MethodPost, "/documents", `{"name":"A","hash":"h1","owner":"o1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "pending", created["status"])
	require.Contains(t, created, "updatedAt")
	require.Nil(t, created["updatedAt"])

	// update: supplied fields win, the rest stay
	w = doJSON(t, g, http.MethodPut, "/documents/"+id, `{"status":"authenticated"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "authenticated", updated["status"])
	require.Equal(t, "A", updated["name"])
	require.Equal(t, "h1", updated["hash"])
	require.NotNil(t, updated["updatedAt"])

	// get returns the updated record
	w = doJSON(t, g, http.MethodGet, "/documents/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, updated, got)

	// delete returns the record as confirmation
	w = doJSON(t, g, http.MethodDelete, "/documents/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	var removed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &removed))
	require.Equal(t, id, removed["id"])

	// gone
	w = doJSON(t, g, http.MethodGet, "/documents/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAcceptsStatusOverride(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodPost, "/documents", `{"name":"B","hash":"h2","owner":"o2","status":"legalized"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, "legalized", created["status"])
}

func TestListReturnsAllDocuments(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodGet, "/documents", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", strings.TrimSpace(w.Body.String()))

	doJSON(t, g, http.MethodPost, "/documents", `{"name":"A","hash":"h1","owner":"o1"}`)
	doJSON(t, g, http.MethodPost, "/documents", `{"name":"B","hash":"h2","owner":"o1"}`)

	w = doJSON(t, g, http.MethodGet, "/documents", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
}

func TestUnknownIDStatusCodesAndMessages(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodGet, "/documents/ghost", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "ghost")
	require.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	w = doJSON(t, g, http.MethodPut, "/documents/ghost", `{"status":"authenticated"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "update document ghost")

	w = doJSON(t, g, http.MethodDelete, "/documents/ghost", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "delete document ghost")
}

func TestFailedUpdateDoesNotMutate(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodPost, "/documents", `{"name":"A","hash":"h1","owner":"o1"}`)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	// miss on another id leaves the stored record untouched
	w = doJSON(t, g, http.MethodPut, "/documents/other", `{"name":"Z"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, g, http.MethodGet, "/documents/"+id, "")
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "A", got["name"])
	require.Nil(t, got["updatedAt"])
}

func TestMalformedBodyIsAServerFault(t *testing.T) {
	g := newTestRouter()

	w := doJSON(t, g, http.MethodPost, "/documents", `{"name":`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
