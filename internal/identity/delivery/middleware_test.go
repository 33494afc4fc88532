package delivery

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"jobtrail-backend/internal/identity/domain"
	"jobtrail-backend/internal/identity/repository"
	"jobtrail-backend/internal/identity/verifier"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, repository.ProfileRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.UserProfile{}))
	profiles := repository.NewGormProfileRepository(db)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(verifier.NewJWTVerifier(testSecret), profiles, zaptest.NewLogger(t)), func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject, "email": claims.Email})
	})
	return r, profiles
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestMissingAuthorizationHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestMalformedAuthorizationHeader(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvalidToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", jwt.MapClaims{"sub": "user-1"}))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidTokenResolvesClaims(t *testing.T) {
	r, profiles := newTestRouter(t)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":         "user-1",
		"email":       "dana@example.com",
		"given_name":  "Dana",
		"family_name": "Example",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "dana@example.com")

	// The profile cache refresh is fire-and-forget; give it a beat.
	assert.Eventually(t, func() bool {
		profile, err := profiles.FindByID("user-1")
		return err == nil && profile != nil && profile.Email == "dana@example.com" && profile.GivenName == "Dana"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTokenWithoutSubject(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{"email": "x@example.com"}))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
