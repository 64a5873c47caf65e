package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hometownheating/internal/config"
	"hometownheating/internal/services"
	"hometownheating/internal/storage"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := storage.NewMemoryStore()
	emailSvc := services.NewEmailService(&config.EmailConfig{NotifyEmail: "ops@example.com"})

	e := echo.New()
	NewContactHandler(services.NewContactService(store.ContactInquiries, emailSvc)).Register(e)
	NewComfortClubHandler(services.NewComfortClubService(store.Applications, emailSvc)).Register(e)
	NewHealthHandler(services.NewHealthService("Hometown Heating API", nil)).Register(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const contactBody = `{
	"firstName": "Jane",
	"lastName": "Doe",
	"email": "jane@example.com",
	"phone": "613-555-0100",
	"service": "Heat Pumps",
	"message": "Looking for a quote."
}`

const clubBody = `{
	"firstName": "John",
	"lastName": "Smith",
	"email": "john@example.com",
	"phone": "613-555-0199",
	"address": "123 King St W",
	"systemCount": "2"
}`

func TestContactSubmitEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/contact", contactBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)

	// The stored record shows up on the list endpoint.
	rec = doJSON(e, http.MethodGet, "/api/contact-inquiries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var inquiries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inquiries))
	require.Len(t, inquiries, 1)
	assert.Equal(t, resp.ID, inquiries[0]["id"])
	assert.Equal(t, "Jane", inquiries[0]["firstName"])
	assert.Equal(t, "Heat Pumps", inquiries[0]["service"])
	assert.NotEmpty(t, inquiries[0]["createdAt"])
}

func TestContactSubmitValidationFailure(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/contact", `{"firstName":"Jane","lastName":"Doe","phone":"613-555-0100"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid form data", resp.Error)
	require.NotEmpty(t, resp.Details)
	assert.Equal(t, "email", resp.Details[0].Field)

	// Nothing was stored.
	rec = doJSON(e, http.MethodGet, "/api/contact-inquiries", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestContactSubmitMalformedBody(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/contact", `{"firstName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComfortClubSubmitAndStatusFlow(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/comfort-club", clubBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.ID)

	// New applications start pending.
	rec = doJSON(e, http.MethodGet, "/api/comfort-club-applications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var apps []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, "pending", apps[0]["status"])

	// Approve it.
	rec = doJSON(e, http.MethodPatch, "/api/comfort-club/"+resp.ID+"/status", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var patchResp struct {
		Success     bool           `json:"success"`
		Application map[string]any `json:"application"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patchResp))
	assert.True(t, patchResp.Success)
	assert.Equal(t, "approved", patchResp.Application["status"])

	// A later read reflects the update.
	rec = doJSON(e, http.MethodGet, "/api/comfort-club-applications", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apps))
	require.Len(t, apps, 1)
	assert.Equal(t, "approved", apps[0]["status"])
}

func TestComfortClubStatusUnknownID(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPatch, "/api/comfort-club/no-such-id/status", `{"status":"approved"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Application not found", resp.Error)
}

func TestComfortClubStatusMissingValue(t *testing.T) {
	e := newTestServer(t)

	for _, body := range []string{`{}`, `{"status":""}`, `{"status":"  "}`} {
		rec := doJSON(e, http.MethodPatch, "/api/comfort-club/some-id/status", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestListEndpointsNewestFirst(t *testing.T) {
	e := newTestServer(t)

	first := doJSON(e, http.MethodPost, "/api/contact", contactBody)
	require.Equal(t, http.StatusOK, first.Code)
	second := doJSON(e, http.MethodPost, "/api/contact", contactBody)
	require.Equal(t, http.StatusOK, second.Code)

	var firstResp, secondResp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))
	assert.NotEqual(t, firstResp.ID, secondResp.ID)

	rec := doJSON(e, http.MethodGet, "/api/contact-inquiries", "")
	var inquiries []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inquiries))
	require.Len(t, inquiries, 2)

	// Newest first: the second submission leads.
	createdFirst, _ := inquiries[0]["createdAt"].(string)
	createdSecond, _ := inquiries[1]["createdAt"].(string)
	assert.GreaterOrEqual(t, createdFirst, createdSecond)
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		Service string `json:"service"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "Hometown Heating API", resp.Service)
}
