package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sandbox-wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeTokenService struct {
	claims *ports.SessionClaims
	err    error
}

func (f *fakeTokenService) Generate(address string) (string, time.Time, error) {
	return "token-" + address, time.Now().Add(time.Hour), nil
}

func (f *fakeTokenService) Validate(string) (*ports.SessionClaims, error) {
	return f.claims, f.err
}

type fakeEngine struct {
	ports.WalletEngine
	address string
}

func (f *fakeEngine) State() *ports.WalletState {
	return &ports.WalletState{Address: f.address}
}

func sessionRouter(tokenSvc ports.SessionTokenService, engine ports.WalletEngine) *gin.Engine {
	r := gin.New()
	r.GET("/protected", SessionAuth(tokenSvc, engine, zerolog.Nop()), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxAddress))
	})
	return r
}

func TestSessionAuth(t *testing.T) {
	addr := "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23"

	t.Run("missing header", func(t *testing.T) {
		r := sessionRouter(&fakeTokenService{}, &fakeEngine{address: addr})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		r := sessionRouter(&fakeTokenService{err: assert.AnError}, &fakeEngine{address: addr})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for a replaced wallet", func(t *testing.T) {
		tokenSvc := &fakeTokenService{claims: &ports.SessionClaims{Address: "0xdeadbeef"}}
		r := sessionRouter(tokenSvc, &fakeEngine{address: addr})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer stale")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_002")
	})

	t.Run("valid session", func(t *testing.T) {
		tokenSvc := &fakeTokenService{claims: &ports.SessionClaims{Address: addr}}
		r := sessionRouter(tokenSvc, &fakeEngine{address: addr})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, addr, w.Body.String())
	})

	t.Run("address match is case-insensitive", func(t *testing.T) {
		tokenSvc := &fakeTokenService{claims: &ports.SessionClaims{Address: strings.ToLower(addr)}}
		r := sessionRouter(tokenSvc, &fakeEngine{address: addr})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxRequestID))
	})

	t.Run("generates when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
	})

	t.Run("honors incoming header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(HeaderRequestID, "fixed-id")
		r.ServeHTTP(w, req)
		assert.Equal(t, "fixed-id", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zerolog.Nop()))
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestMaxBodySize(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(16))
	r.POST("/test", func(c *gin.Context) {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusRequestEntityTooLarge, "too large")
			return
		}
		c.String(http.StatusOK, string(b))
	})

	t.Run("within limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader([]byte("small")))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "small", w.Body.String())
	})

	t.Run("exceeded", func(t *testing.T) {
		w := httptest.NewRecorder()
		big := bytes.NewReader([]byte(strings.Repeat("A", 100)))
		req := httptest.NewRequest(http.MethodPost, "/test", big)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
