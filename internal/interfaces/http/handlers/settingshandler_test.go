package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	settingsApp "veil/internal/application/settings"
	"veil/internal/domain/settings"
	"veil/internal/shared/logger"
)

type memorySettingsRepo struct {
	doc *settings.Document
}

func (r *memorySettingsRepo) Load(ctx context.Context) (*settings.Document, error) {
	if r.doc == nil {
		return settings.DefaultDocument(), nil
	}
	return r.doc.Clone(), nil
}

func (r *memorySettingsRepo) Save(ctx context.Context, doc *settings.Document) error {
	r.doc = doc.Clone()
	return nil
}

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

func setupSettingsRouter(repo *memorySettingsRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := settingsApp.NewService(repo, discardLogger())
	handler := NewSettingsHandler(service, discardLogger())

	engine := gin.New()
	engine.GET("/api/settings", handler.GetSettings)
	engine.PUT("/api/settings", handler.ModifySettings)
	return engine
}

func TestSettingsHandler_GetSettings_Defaults(t *testing.T) {
	engine := setupSettingsRouter(&memorySettingsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    settings.Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data.NotificationEnable)
	assert.True(t, body.Data.NotificationEnable.Login)
}

func TestSettingsHandler_ModifySettings_PersistsAndReturnsDocument(t *testing.T) {
	repo := &memorySettingsRepo{}
	engine := setupSettingsRouter(repo)

	payload := `{"telegram": {"enable": true, "token": "123:abc"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, repo.doc)
	require.NotNil(t, repo.doc.Telegram)
	assert.True(t, repo.doc.Telegram.Enable)
}

func TestSettingsHandler_ModifySettings_ValidationFailureReportsEveryField(t *testing.T) {
	repo := &memorySettingsRepo{}
	engine := setupSettingsRouter(repo)

	payload := `{"webhook": {"enable": true, "timeout": 1, "recurrent": 0}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, repo.doc)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Type   string `json:"type"`
			Fields []struct {
				Field  string `json:"field"`
				Reason string `json:"reason"`
			} `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "validation_error", body.Error.Type)
	require.Len(t, body.Error.Fields, 2)
	assert.Equal(t, "webhook.timeout", body.Error.Fields[0].Field)
	assert.Equal(t, "webhook.recurrent", body.Error.Fields[1].Field)
}

func TestSettingsHandler_ModifySettings_MalformedBody(t *testing.T) {
	engine := setupSettingsRouter(&memorySettingsRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsHandler_ModifySettings_NullSectionClears(t *testing.T) {
	repo := &memorySettingsRepo{
		doc: &settings.Document{
			Discord:            &settings.DiscordConfig{Enable: true},
			NotificationEnable: settings.DefaultNotificationEnable(),
		},
	}
	engine := setupSettingsRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/settings", strings.NewReader(`{"discord": null}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, repo.doc.Discord)
}
