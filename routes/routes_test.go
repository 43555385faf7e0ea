package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ujjwalnp/ZenithTREKS/handlers"
	"github.com/ujjwalnp/ZenithTREKS/models"
	"github.com/ujjwalnp/ZenithTREKS/storage"
	"github.com/ujjwalnp/ZenithTREKS/utils"
)

const testSecret = "routes-test-secret"

// newTestApp wires the routes against a nil DB and temp-dir stores. The
// cases below only exercise paths that are rejected before any query runs,
// plus the DB-free media endpoints.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	h := handlers.New(nil, storage.NewLocal(t.TempDir()), storage.NewLocal(t.TempDir()))
	app := fiber.New()
	BookingRoutes(app, h)
	ReviewRoutes(app, h)
	MediaRoutes(app, h)
	return app
}

func authCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()
	token, err := utils.CreateToken(models.User{ID: 7, Name: "Tester", Email: "t@example.com", Role: role}, testSecret)
	require.NoError(t, err)
	return &http.Cookie{Name: utils.AuthCookieName, Value: token}
}

func jsonRequest(method, target string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBookingStatusUpdateRequiresAuth(t *testing.T) {
	app := newTestApp(t)

	req := jsonRequest(http.MethodPatch, "/api/bookings/1", fiber.Map{"status": "confirmed"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestBookingStatusUpdateRequiresAdmin(t *testing.T) {
	app := newTestApp(t)

	req := jsonRequest(http.MethodPatch, "/api/bookings/1", fiber.Map{"status": "confirmed"})
	req.AddCookie(authCookie(t, models.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestBookingStatusUpdateRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t)

	req := jsonRequest(http.MethodPatch, "/api/bookings/1", fiber.Map{"status": "approved"})
	req.AddCookie(authCookie(t, models.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateBookingRejectsBadParticipants(t *testing.T) {
	app := newTestApp(t)

	for _, participants := range []int{0, -2} {
		req := jsonRequest(http.MethodPost, "/api/bookings", fiber.Map{
			"tripId":       1,
			"fullName":     "Asha Gurung",
			"email":        "asha@example.com",
			"phone":        "+9779800000000",
			"participants": participants,
			"bookingDate":  "2026-10-01",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)
	}
}

func TestCreateBookingRejectsMissingFields(t *testing.T) {
	app := newTestApp(t)

	req := jsonRequest(http.MethodPost, "/api/bookings", fiber.Map{"tripId": 1, "participants": 2})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateReviewRejectsBadRating(t *testing.T) {
	app := newTestApp(t)

	for _, rating := range []int{0, 6, -1} {
		req := jsonRequest(http.MethodPost, "/api/reviews", fiber.Map{
			"name":        "Dawa",
			"rating":      rating,
			"description": "Great trek",
		})
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rating %d", rating)
	}
}

func multipartUpload(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestGalleryUploadRequiresAdmin(t *testing.T) {
	app := newTestApp(t)

	req := multipartUpload(t, "/api/gallery", "photo.png", []byte("png"))
	req.AddCookie(authCookie(t, models.RoleUser))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGalleryUploadServeDelete(t *testing.T) {
	app := newTestApp(t)
	payload := []byte("fake png bytes")

	req := multipartUpload(t, "/api/gallery", "photo.png", payload)
	req.AddCookie(authCookie(t, models.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Filename string `json:"filename"`
		URL      string `json:"url"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Regexp(t, regexp.MustCompile(`^\d+-photo\.png$`), created.Filename)
	assert.Equal(t, "/api/gallery/"+created.Filename, created.URL)

	// Retrievable immediately via the returned URL.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, created.URL, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body)

	del := httptest.NewRequest(http.MethodDelete, created.URL, nil)
	del.AddCookie(authCookie(t, models.RoleAdmin))
	resp, err = app.Test(del)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, created.URL, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGalleryUploadRejectsBadExtension(t *testing.T) {
	app := newTestApp(t)

	req := multipartUpload(t, "/api/gallery", "script.php", []byte("<?php"))
	req.AddCookie(authCookie(t, models.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServeImageUnknownFile(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/images/1700000000000-gone.png", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
