package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter(validKeys map[string]bool, hashedKeys []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())
	router.Use(APIKeyAuth(validKeys, hashedKeys))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAPIKeyAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hashed-key"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name           string
		validKeys      map[string]bool
		hashedKeys     []string
		header         string
		query          string
		expectedStatus int
	}{
		{
			name:           "no keys configured disables the check",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid key in header",
			validKeys:      map[string]bool{"plain-key": true},
			header:         "plain-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid key in query parameter",
			validKeys:      map[string]bool{"plain-key": true},
			query:          "plain-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing key",
			validKeys:      map[string]bool{"plain-key": true},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong key",
			validKeys:      map[string]bool{"plain-key": true},
			header:         "other-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "key matching a bcrypt hash",
			hashedKeys:     []string{string(hash)},
			header:         "hashed-key",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "key not matching any bcrypt hash",
			hashedKeys:     []string{string(hash)},
			header:         "other-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "plain and hashed sets are both checked",
			validKeys:      map[string]bool{"plain-key": true},
			hashedKeys:     []string{string(hash)},
			header:         "hashed-key",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupAuthRouter(tt.validKeys, tt.hashedKeys)

			target := "/test"
			if tt.query != "" {
				target += "?api_key=" + tt.query
			}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Body.String(), "unauthorized")
			}
		})
	}
}

func TestKeyAllowed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, keyAllowed("plain", map[string]bool{"plain": true}, nil))
	assert.True(t, keyAllowed("secret", nil, []string{string(hash)}))
	assert.False(t, keyAllowed("nope", map[string]bool{"plain": true}, []string{string(hash)}))
	assert.False(t, keyAllowed("", nil, nil))
}
