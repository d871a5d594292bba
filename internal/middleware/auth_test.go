package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workforce_project/internal/utils"
	"workforce_project/internal/utils/blacklist"
	"workforce_project/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type fakeBlacklist struct {
	revokedTokens map[string]bool
	bannedUsers   map[string]bool
}

func (f *fakeBlacklist) BanUser(_ context.Context, userID string, _ time.Duration) error {
	f.bannedUsers[userID] = true
	return nil
}

func (f *fakeBlacklist) BanToken(_ context.Context, token string, _ time.Duration) error {
	f.revokedTokens[token] = true
	return nil
}

func (f *fakeBlacklist) CheckUser(_ context.Context, userID string) error {
	if f.bannedUsers[userID] {
		return blacklist.ErrUserBanned
	}
	return nil
}

func (f *fakeBlacklist) CheckToken(_ context.Context, token string) error {
	if f.revokedTokens[token] {
		return blacklist.ErrTokenRevoked
	}
	return nil
}

func newFakeBlacklist() *fakeBlacklist {
	return &fakeBlacklist{
		revokedTokens: make(map[string]bool),
		bannedUsers:   make(map[string]bool),
	}
}

func setupRouter(bl blacklist.Blacklist) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Logger = zap.NewNop()

	r := gin.New()
	r.GET("/protected", AuthRequired(testSecret, bl), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID)})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	r := setupRouter(newFakeBlacklist())
	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	r := setupRouter(newFakeBlacklist())
	w := doRequest(r, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	r := setupRouter(newFakeBlacklist())
	w := doRequest(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredValidToken(t *testing.T) {
	token, err := utils.GenerateAccessToken("emp-1", "a@x.com", testSecret, time.Hour)
	require.NoError(t, err)

	r := setupRouter(newFakeBlacklist())
	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "emp-1", body["user_id"])
}

func TestAuthRequiredRevokedToken(t *testing.T) {
	token, err := utils.GenerateAccessToken("emp-1", "a@x.com", testSecret, time.Hour)
	require.NoError(t, err)

	bl := newFakeBlacklist()
	require.NoError(t, bl.BanToken(context.Background(), token, time.Hour))

	r := setupRouter(bl)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBannedUser(t *testing.T) {
	token, err := utils.GenerateAccessToken("emp-1", "a@x.com", testSecret, time.Hour)
	require.NoError(t, err)

	bl := newFakeBlacklist()
	require.NoError(t, bl.BanUser(context.Background(), "emp-1", time.Hour))

	r := setupRouter(bl)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthRequiredNilBlacklist(t *testing.T) {
	token, err := utils.GenerateAccessToken("emp-1", "a@x.com", testSecret, time.Hour)
	require.NoError(t, err)

	r := setupRouter(nil)
	w := doRequest(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}
