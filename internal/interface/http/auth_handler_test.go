package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/zonecast/zonecast/pkg/validation"
)

// These exercise request validation only; a nil pool guarantees the test
// fails if a rejected payload ever reaches storage.
func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	h := NewAuthHandler(nil, nil, testLogger())
	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r := setupAuthRouter()
	w := postJSON(r, "/auth/register", `{"username":"alice","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password")
}

func TestRegisterRejectsShortUsername(t *testing.T) {
	r := setupAuthRouter()
	w := postJSON(r, "/auth/register", `{"username":"ab","password":"supersecret"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username")
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	r := setupAuthRouter()
	w := postJSON(r, "/auth/register", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsMalformedJSON(t *testing.T) {
	r := setupAuthRouter()
	w := postJSON(r, "/auth/login", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRejectsMissingFields(t *testing.T) {
	r := setupAuthRouter()
	w := postJSON(r, "/auth/login", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginBindingAcceptsAnyPasswordLength(t *testing.T) {
	// Wrong passwords that register would refuse on length must still
	// reach the workflow, otherwise the error surface leaks which
	// attempts were policy-short versus merely wrong.
	gin.SetMode(gin.TestMode)
	validation.Init()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"al","password":"short"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req loginRequest
	assert.NoError(t, c.ShouldBindJSON(&req))
	assert.Equal(t, "short", req.Password)
}
