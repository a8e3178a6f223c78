package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_ai_server/internal/logger"
	"sitegen_ai_server/internal/placeholder"
	"sitegen_ai_server/internal/registry"
	"sitegen_ai_server/internal/site"
)

type offlineTextGen struct{}

func (offlineTextGen) GenerateText(context.Context, string) (string, error) {
	return "", errors.New("offline")
}

type offlineImageGen struct{}

func (offlineImageGen) GenerateImage(context.Context, string, string) (string, error) {
	return "", errors.New("offline")
}

func newTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewTestLogger(t)
	resolver := placeholder.NewResolver(offlineTextGen{}, offlineImageGen{}, placeholder.NewMemoryCache(), log)
	builder := site.NewBuilder(registry.New(), resolver, log)
	handler := NewAPIHandler(builder, resolver, t.TempDir(), false, log)

	router := gin.New()
	router.POST("/project/generate", handler.GenerateSite)
	router.POST("/template/resolve", handler.ResolveTemplate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestResolveTemplateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/template/resolve", map[string]interface{}{
		"template":    "[HERO_TITLE] — [CONTACT_PHONE]",
		"projectName": "bean-there",
		"context":     map[string]interface{}{"industry": "cafe"},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var result placeholder.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "Artisan Coffee Experience — 02-123-4567", result.ReplacedTemplate)
	assert.Equal(t, 0.5, result.Confidence)
	assert.True(t, result.FallbackUsed)
}

func TestResolveTemplateRequiresTemplate(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/template/resolve", map[string]interface{}{
		"context": map[string]interface{}{"industry": "cafe"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateSiteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/project/generate", map[string]interface{}{
		"projectName": "bean-there",
		"userIntent":  "cozy cafe website",
		"context":     map[string]interface{}{"industry": "cafe"},
		"finalJson": map[string]interface{}{
			"business": map[string]interface{}{"name": "Bean There"},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var result site.SiteResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.NotEmpty(t, result.ProjectID)
	assert.NotEmpty(t, result.Files)
	assert.True(t, result.FallbackUsed)
}

func TestGenerateSiteRequiresIndustry(t *testing.T) {
	router := newTestRouter(t)

	w := postJSON(t, router, "/project/generate", map[string]interface{}{
		"projectName": "bean-there",
		"context":     map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
