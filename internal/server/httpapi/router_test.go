package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server/auth"
	"github.com/dmitrijs2005/foundrmate/internal/server/models"
	"github.com/dmitrijs2005/foundrmate/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

// --- fakes ---

type fakeUsers struct {
	registerRes *services.AuthResult
	registerErr error
	loginRes    *services.AuthResult
	loginErr    error
	verifyRes   *models.PublicUser
	verifyErr   error

	gotRegister [3]string
	gotLogin    [2]string
	gotVerifyID string
}

func (f *fakeUsers) Register(_ context.Context, fullName, email, password string) (*services.AuthResult, error) {
	f.gotRegister = [3]string{fullName, email, password}
	return f.registerRes, f.registerErr
}

func (f *fakeUsers) Login(_ context.Context, email, password string) (*services.AuthResult, error) {
	f.gotLogin = [2]string{email, password}
	return f.loginRes, f.loginErr
}

func (f *fakeUsers) VerifySession(_ context.Context, userID string) (*models.PublicUser, error) {
	f.gotVerifyID = userID
	return f.verifyRes, f.verifyErr
}

type fakeIdeas struct {
	called    bool
	gotUserID string
	gotCtxID  string
	err       error
}

func (f *fakeIdeas) Submit(ctx context.Context, userID, message string) (*models.IdeaAnalysis, error) {
	f.called = true
	f.gotUserID = userID
	f.gotCtxID = auth.UserIDFromContext(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return services.StaticAnalyzer{}.Analyze(ctx, message)
}

const testSecret = "test-secret"

var ada = models.PublicUser{ID: "5b8f5bd8-8d5c-4c57-9d3e-6a6c1f0a1b2c", FullName: "Ada Lovelace", Email: "ada@example.com"}

type testServer struct {
	users  *fakeUsers
	ideas  *fakeIdeas
	tokens *auth.TokenManager
	router *gin.Engine
	h      *handler
}

func newTestServer(t *testing.T, limiter Limiter) *testServer {
	t.Helper()
	ts := &testServer{
		users:  &fakeUsers{},
		ideas:  &fakeIdeas{},
		tokens: auth.NewTokenManager([]byte(testSecret), time.Hour),
	}
	ts.router = NewRouter(Options{
		Users:         ts.users,
		Ideas:         ts.ideas,
		Tokens:        ts.tokens,
		Limiter:       limiter,
		AllowedOrigin: "http://localhost:5173",
		Logger:        logging.Nop{},
	})
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, r)
	return w
}

func (ts *testServer) bearer(t *testing.T, userID string) map[string]string {
	t.Helper()
	tok, _, err := ts.tokens.Issue(userID)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m), w.Body.String())
	return m
}

// --- health ---

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"FoundrMate backend running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// --- register ---

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		res        *services.AuthResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"fullName":"Ada Lovelace","email":"ada@example.com","password":"secret1"}`,
			res:        &services.AuthResult{User: ada, Token: "tok"},
			wantStatus: http.StatusCreated,
			wantBody:   `{"success":true,"message":"User registered successfully","token":"tok","user":{"id":"5b8f5bd8-8d5c-4c57-9d3e-6a6c1f0a1b2c","fullName":"Ada Lovelace","email":"ada@example.com"}}`,
		},
		{
			name:       "validation",
			body:       `{"fullName":"A","email":"x","password":"1"}`,
			err:        common.Validation("Name must be at least 2 characters, Please enter a valid email address"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Name must be at least 2 characters, Please enter a valid email address"}`,
		},
		{
			name:       "duplicate",
			body:       `{"fullName":"Ada","email":"ada@example.com","password":"secret1"}`,
			err:        common.ErrDuplicateEmail,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"User with this email already exists"}`,
		},
		{
			name:       "internal",
			body:       `{"fullName":"Ada","email":"ada@example.com","password":"secret1"}`,
			err:        common.Internal(errors.New("connection refused")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Error creating user account"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			ts.users.registerRes, ts.users.registerErr = tt.res, tt.err

			w := ts.do(t, http.MethodPost, "/api/auth/register", tt.body, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestRegister_MalformedBodyReachesValidation(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.users.registerErr = common.Validation("Please provide all required fields")

	w := ts.do(t, http.MethodPost, "/api/auth/register", `{not json`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, [3]string{}, ts.users.gotRegister)
}

// --- login ---

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		res        *services.AuthResult
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "ok", res: &services.AuthResult{User: ada, Token: "tok"}, wantStatus: http.StatusOK},
		{name: "missing", err: common.Validation("Please provide email and password"), wantStatus: http.StatusBadRequest, wantError: "Please provide email and password"},
		{name: "invalid", err: common.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantError: "Invalid email or password"},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantError: "Error logging in"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			ts.users.loginRes, ts.users.loginErr = tt.res, tt.err

			w := ts.do(t, http.MethodPost, "/api/auth/login", `{"email":"ada@example.com","password":"secret1"}`, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			m := decode(t, w)
			if tt.wantError != "" {
				assert.Equal(t, map[string]any{"error": tt.wantError}, m)
				return
			}
			assert.Equal(t, true, m["success"])
			assert.Equal(t, "Login successful", m["message"])
			assert.Equal(t, "tok", m["token"])
			assert.Equal(t, [2]string{"ada@example.com", "secret1"}, ts.users.gotLogin)
		})
	}
}

// --- gate + verify ---

func TestVerify_Success(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.users.verifyRes = &ada

	w := ts.do(t, http.MethodGet, "/api/auth/verify", "", ts.bearer(t, ada.ID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"user":{"id":"5b8f5bd8-8d5c-4c57-9d3e-6a6c1f0a1b2c","fullName":"Ada Lovelace","email":"ada@example.com"}}`, w.Body.String())
	assert.Equal(t, ada.ID, ts.users.gotVerifyID)
}

func TestVerify_Failures(t *testing.T) {
	ts := newTestServer(t, nil)

	ts.users.verifyErr = common.ErrUserNotFound
	w := ts.do(t, http.MethodGet, "/api/auth/verify", "", ts.bearer(t, ada.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())

	ts.users.verifyErr = common.Internal(errors.New("db"))
	w = ts.do(t, http.MethodGet, "/api/auth/verify", "", ts.bearer(t, ada.ID))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error verifying token"}`, w.Body.String())
}

func TestGate(t *testing.T) {
	ts := newTestServer(t, nil)

	expired := auth.NewTokenManager([]byte(testSecret), time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	expiredTok, _, err := expired.Issue(ada.ID)
	require.NoError(t, err)

	foreignTok, _, err := auth.NewTokenManager([]byte("other"), time.Hour).Issue(ada.ID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized, wantError: "Access denied. No token provided."},
		{name: "scheme only", header: "Bearer", wantStatus: http.StatusUnauthorized, wantError: "Access denied. No token provided."},
		{name: "garbage", header: "Bearer abc.def", wantStatus: http.StatusForbidden, wantError: "Invalid token"},
		{name: "wrong key", header: "Bearer " + foreignTok, wantStatus: http.StatusForbidden, wantError: "Invalid token"},
		{name: "expired", header: "Bearer " + expiredTok, wantStatus: http.StatusForbidden, wantError: "Token expired. Please login again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.ideas.called = false
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := ts.do(t, http.MethodPost, "/api/ideas/submit", `{"message":"x"}`, headers)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, map[string]any{"error": tt.wantError}, decode(t, w))
			assert.False(t, ts.ideas.called, "downstream must not run")
		})
	}
}

type brokenVerifier struct{}

func (brokenVerifier) Verify(string) (*auth.Claims, error) { return nil, errors.New("clock skew") }

func TestGate_UnexpectedFailure(t *testing.T) {
	r := gin.New()
	r.GET("/p", AuthRequired(brokenVerifier{}, logging.Nop{}), func(c *gin.Context) { c.Status(http.StatusTeapot) })

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error authenticating token"}`, w.Body.String())
}

func Test_bearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("Token abc extra"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}

// --- ideas ---

func TestSubmitIdea_Success(t *testing.T) {
	ts := newTestServer(t, nil)
	h := ts.bearer(t, ada.ID)

	w := ts.do(t, http.MethodPost, "/api/ideas/submit", `{"message":"Dog walking marketplace"}`, h)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	m := decode(t, w)
	assert.Equal(t, true, m["success"])
	assert.Equal(t, "Idea received successfully", m["message"])
	assert.Equal(t, map[string]any{
		"ideaSummary":    "Dog walking marketplace",
		"viabilityScore": 7.5,
		"suggestedSteps": []any{"Market research and validation", "Competitive analysis", "Financial planning", "MVP development"},
	}, m["analysis"])

	_, err := time.Parse(time.RFC3339, m["timestamp"].(string))
	assert.NoError(t, err)
	assert.Equal(t, ada.ID, ts.ideas.gotUserID)
	assert.Equal(t, ada.ID, ts.ideas.gotCtxID)
}

func TestSubmitIdea_Failures(t *testing.T) {
	ts := newTestServer(t, nil)
	h := ts.bearer(t, ada.ID)

	ts.ideas.err = common.Validation("Please provide a business idea.")
	w := ts.do(t, http.MethodPost, "/api/ideas/submit", `{"message":"  "}`, h)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Please provide a business idea."}`, w.Body.String())

	ts.ideas.err = errors.New("analyzer down")
	w = ts.do(t, http.MethodPost, "/api/ideas/submit", `{"message":"idea"}`, h)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Error processing your idea"}`, w.Body.String())
}

// --- ambient middleware ---

func TestNoRoute(t *testing.T) {
	ts := newTestServer(t, nil)
	w := ts.do(t, http.MethodGet, "/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, w.Body.String())
}

func TestRequestID_Propagated(t *testing.T) {
	ts := newTestServer(t, nil)
	w := ts.do(t, http.MethodGet, "/health", "", map[string]string{"X-Request-ID": "  abc-123 "})
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodOptions, "/api/auth/login", "", map[string]string{"Origin": "http://localhost:5173"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = ts.do(t, http.MethodGet, "/health", "", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(logging.Nop{}))
	r.GET("/panic", func(c *gin.Context) { panic("kaput") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
