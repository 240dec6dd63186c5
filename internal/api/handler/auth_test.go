package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/qs3c/contenthub_go_server/config"
	"github.com/qs3c/contenthub_go_server/internal/api/middleware"
	"github.com/qs3c/contenthub_go_server/internal/model/dto"
	"github.com/qs3c/contenthub_go_server/internal/pkg/cooldown"
	"github.com/qs3c/contenthub_go_server/internal/pkg/oauth"
	"github.com/qs3c/contenthub_go_server/internal/pkg/response"
	"github.com/qs3c/contenthub_go_server/internal/repository"
	"github.com/qs3c/contenthub_go_server/internal/service"
	"github.com/qs3c/contenthub_go_server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeEmailSender 记录发出的验证码，不触碰 SMTP
type fakeEmailSender struct {
	sentCodes map[string]string
	failNext  bool
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{sentCodes: make(map[string]string)}
}

func (f *fakeEmailSender) send(to, code string) error {
	if f.failNext {
		return errors.New("smtp unreachable")
	}
	f.sentCodes[to] = code
	return nil
}

func (f *fakeEmailSender) SendVerificationCode(to, code string) error    { return f.send(to, code) }
func (f *fakeEmailSender) SendPasswordResetCode(to, code string) error   { return f.send(to, code) }
func (f *fakeEmailSender) SendPasswordChangeCode(to, code string) error  { return f.send(to, code) }
func (f *fakeEmailSender) SendAccountDeletionCode(to, code string) error { return f.send(to, code) }

// mockAuth 模拟认证中间件
func mockAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Next()
	}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

func setupAuthHandler(t *testing.T) (*AuthHandler, *fakeEmailSender, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	userRepo := repository.NewUserRepository(db)
	verifyRepo := repository.NewVerificationRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:      "test-secret-key-for-testing",
			ExpireHours: 24,
		},
		Access: config.AccessConfig{
			DefaultTimeLimit: 3600,
			CodeExpireMins:   15,
			ResendCooldown:   60,
		},
		OAuth: config.OAuthConfig{
			Github: config.GithubOAuthConfig{
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
				RedirectURI:  "http://localhost:8080/callback",
			},
		},
	}

	settingSvc := service.NewSettingService(settingRepo, cfg)
	sender := newFakeEmailSender()
	cooldownStore := cooldown.NewStore(rdb, time.Duration(cfg.Access.ResendCooldown)*time.Second)
	authSvc := service.NewAuthService(userRepo, verifyRepo, settingSvc, sender, cooldownStore, cfg)
	stateStore := oauth.NewStateStore(rdb)

	handler := NewAuthHandler(authSvc, stateStore)

	cleanup := func() {
		rdb.Close()
		mr.Close()
		testutil.CleanupTestDB(t, db)
	}

	return handler, sender, db, cleanup
}

func TestAuthHandler_Register_Success(t *testing.T) {
	handler, sender, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	w := performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeSuccess, resp.Code)
	assert.Contains(t, sender.sentCodes, "test@example.com")
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler, _, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	// 密码过短
	req := dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "short",
	}

	w := performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler, _, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Username: "user1",
		Email:    "dup@example.com",
		Password: "password123",
	}
	w := performRequest(router, "POST", "/register", req)
	assert.Equal(t, http.StatusOK, w.Code)

	req.Username = "user2"
	w = performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeParamError, resp.Code)
}

func TestAuthHandler_Register_BetaClosed(t *testing.T) {
	handler, _, db, cleanup := setupAuthHandler(t)
	defer cleanup()

	settingRepo := repository.NewSettingRepository(db)
	settingSvc := service.NewSettingService(settingRepo, &config.Config{})
	require.NoError(t, settingSvc.SetBetaSetting(true, "secret-key"))

	router := gin.New()
	router.POST("/register", handler.Register)

	req := dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	}

	w := performRequest(router, "POST", "/register", req)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, response.CodePermissionDenied, resp.Code)
}

func TestAuthHandler_VerifyThenLogin(t *testing.T) {
	handler, sender, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.POST("/register", handler.Register)
	router.POST("/verify-email", handler.VerifyEmail)
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/register", dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 未验证邮箱不能登录
	w = performRequest(router, "POST", "/login", dto.LoginRequest{
		UsernameOrEmail: "testuser",
		Password:        "password123",
	})
	resp := parseResponse(t, w)
	assert.Equal(t, response.CodeAuthFailed, resp.Code)

	w = performRequest(router, "POST", "/verify-email", dto.VerifyEmailRequest{
		Email: "test@example.com",
		Code:  sender.sentCodes["test@example.com"],
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, "POST", "/login", dto.LoginRequest{
		UsernameOrEmail: "testuser",
		Password:        "password123",
	})
	resp = parseResponse(t, w)
	require.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["token"])
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	handler, _, db, cleanup := setupAuthHandler(t)
	defer cleanup()

	testutil.TestUser(t, db, testutil.WithUsername("someone"))

	router := gin.New()
	router.POST("/login", handler.Login)

	w := performRequest(router, "POST", "/login", dto.LoginRequest{
		UsernameOrEmail: "someone",
		Password:        "wrong-password",
	})
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.CodeAuthFailed, resp.Code)
}

func TestAuthHandler_BetaStatus(t *testing.T) {
	handler, _, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/beta-status", handler.BetaStatus)

	w := performRequest(router, "GET", "/beta-status", nil)
	resp := parseResponse(t, w)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, response.CodeSuccess, resp.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, data["beta_mode"])
}

func TestAuthHandler_GithubAuth_Redirects(t *testing.T) {
	handler, _, _, cleanup := setupAuthHandler(t)
	defer cleanup()

	router := gin.New()
	router.GET("/github", handler.GithubAuth)

	w := performRequest(router, "GET", "/github", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "github.com/login/oauth/authorize")
	assert.Contains(t, location, "test-client-id")
	assert.Contains(t, location, "state=")
}
