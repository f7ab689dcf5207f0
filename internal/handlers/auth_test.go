package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", path, bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := postJSON(t, Register, "/api/auth/register", RegisterInput{
		Name:     "Asha",
		Email:    "asha_auth@example.com",
		Password: "sup3rsecret",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var regResp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &regResp)
	assert.NotEmpty(t, regResp.Token)

	// Password must never leak in responses
	assert.NotContains(t, w.Body.String(), "sup3rsecret")

	w = postJSON(t, Login, "/api/auth/login", LoginInput{
		Email:    "asha_auth@example.com",
		Password: "sup3rsecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	w := postJSON(t, Register, "/api/auth/register", RegisterInput{
		Name:     "Bala",
		Email:    "bala_auth@example.com",
		Password: "sup3rsecret",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, Login, "/api/auth/login", LoginInput{
		Email:    "bala_auth@example.com",
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	SetupTestDB()
	gin.SetMode(gin.TestMode)

	input := RegisterInput{
		Name:     "Casey",
		Email:    "casey_auth@example.com",
		Password: "sup3rsecret",
	}

	w := postJSON(t, Register, "/api/auth/register", input)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, Register, "/api/auth/register", input)
	assert.Equal(t, http.StatusConflict, w.Code)
}
