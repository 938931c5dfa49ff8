package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-backend/pkg/jwt"
)

const testSecret = "test-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/books", RequireLogin(testSecret, "/login"), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestRequireLoginRedirectsAnonymous(t *testing.T) {
	router := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=/books", w.Header().Get("Location"))
}

func TestRequireLoginRejectsBadToken(t *testing.T) {
	router := protectedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequireLoginRejectsWrongSecret(t *testing.T) {
	router := protectedRouter()

	token, err := jwt.NewManager("other-secret", 60).GenerateAccessToken(uuid.NewString(), "reader@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestRequireLoginAcceptsValidToken(t *testing.T) {
	router := protectedRouter()

	userID := uuid.New()
	token, err := jwt.NewManager(testSecret, 60).GenerateAccessToken(userID.String(), "reader@example.com")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/books", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}
