package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"presubuild/internal/config"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

	cfg := &config.Config{
		App:      config.AppConfig{Name: "PresuBuild API", Environment: "test", Port: 8080},
		Storage:  config.StorageConfig{Driver: config.StorageSQLite, DSN: "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"},
		Payments: config.PaymentsConfig{CurrencyID: "ARS"},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Server:   config.ServerConfig{EnableSwagger: true},
	}

	h, closeRepos, err := buildHandlers(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(closeRepos)

	router, err := NewRouter(cfg, zap.NewNop(), h)
	require.NoError(t, err)
	return router
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_Ping(t *testing.T) {
	r := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestRouter_BudgetLifecycle(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/v1/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mi Constructora", decode(t, w)["businessName"])

	w = doJSON(t, r, http.MethodPost, "/v1/catalog", `{"name":"Revoque grueso","unitPrice":1000,"unit":"m²","category":"Albañilería"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	itemID := decode(t, w)["id"].(string)
	require.NotEmpty(t, itemID)

	w = doJSON(t, r, http.MethodPost, "/v1/catalog", `{"name":"Sin unidad","unitPrice":10,"unit":"docena"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	draft := `{"client":{"name":"Juan Perez","phone":"+54 11 5555-0000"},
		"laborItems":[{"catalogItemId":"` + itemID + `","quantity":3},{"catalogItemId":"missing","quantity":1}],
		"materials":[{"name":"Cemento","quantity":"2","unit":"bolsa","unitPrice":"450"}]}`

	w = doJSON(t, r, http.MethodPost, "/v1/budgets/preview", draft)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 3900.0, decode(t, w)["totals"].(map[string]any)["total"])

	w = doJSON(t, r, http.MethodPost, "/v1/budgets", draft)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)
	id := created["id"].(string)
	assert.True(t, strings.HasPrefix(id, "OBRA-"))
	assert.Equal(t, 3900.0, created["total"])
	assert.Equal(t, "pendiente", created["status"])
	assert.Len(t, created["laborItems"], 1)

	w = doJSON(t, r, http.MethodPost, "/v1/budgets/"+id+"/payment-link", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/v1/budgets/"+id+"/status", `{"status":"aceptado"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "aceptado", decode(t, w)["status"])

	w = doJSON(t, r, http.MethodPatch, "/v1/budgets/"+id+"/status", `{"status":"cerrado"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// a catalog price change leaves the saved budget untouched
	w = doJSON(t, r, http.MethodPost, "/v1/catalog/price-adjustment", `{"percent":50}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodGet, "/v1/budgets/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3900.0, decode(t, w)["total"])

	w = doJSON(t, r, http.MethodPost, "/v1/budgets/"+id+"/payment-link", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, decode(t, w)["initPoint"], "pref_id=mock-")

	w = doJSON(t, r, http.MethodGet, "/v1/budgets?status=aceptado&q=juan", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = doJSON(t, r, http.MethodGet, "/v1/budgets/"+id+"/pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "PresuBuild_"+id)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = doJSON(t, r, http.MethodGet, "/v1/budgets/"+id+"/whatsapp", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(decode(t, w)["link"].(string), "https://wa.me/541155550000?text="))

	w = doJSON(t, r, http.MethodGet, "/v1/budgets/export.xlsx", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")

	w = doJSON(t, r, http.MethodGet, "/v1/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode(t, w)
	assert.Equal(t, 3900.0, summary["acceptedRevenue"])
	assert.Equal(t, 1.0, summary["budgetCount"])

	w = doJSON(t, r, http.MethodDelete, "/v1/budgets/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodGet, "/v1/budgets/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_LogoUploadTooLarge(t *testing.T) {
	r := newTestServer(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("logo", "logo.png")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0x1}, (1<<20)+10))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/v1/settings/logo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "LOGO_TOO_LARGE")
}

func TestCorsConfig(t *testing.T) {
	cc := corsConfig(config.CORSConfig{AllowedOrigins: []string{"*"}, AllowCredentials: true})
	assert.True(t, cc.AllowAllOrigins)
	assert.False(t, cc.AllowCredentials)

	cc = corsConfig(config.CORSConfig{AllowedOrigins: []string{"http://app.test"}, AllowCredentials: true, MaxAge: 60})
	assert.False(t, cc.AllowAllOrigins)
	assert.Equal(t, []string{"http://app.test"}, cc.AllowOrigins)
	assert.True(t, cc.AllowCredentials)
}

func TestBuildRepositories_UnknownDriver(t *testing.T) {
	_, err := buildRepositories(context.Background(), &config.Config{Storage: config.StorageConfig{Driver: "mongo"}}, zap.NewNop())
	assert.Error(t, err)
}
