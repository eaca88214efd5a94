package token

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := GenerateToken(7, "alice@example.com", secret, time.Hour)
	assert.NoError(t, err)

	claims, err := ValidateToken(signed, secret)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := []byte("test-secret")

	signed, err := GenerateToken(7, "alice@example.com", secret, -time.Minute)
	assert.NoError(t, err)

	_, err = ValidateToken(signed, secret)
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeContext := func(header string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/todos", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		return c
	}

	t.Run("Bearer Header", func(t *testing.T) {
		tokenString, err := ExtractToken(makeContext("Bearer abc123"))
		assert.NoError(t, err)
		assert.Equal(t, "abc123", tokenString)
	})

	t.Run("Missing Header", func(t *testing.T) {
		_, err := ExtractToken(makeContext(""))
		assert.ErrorIs(t, err, ErrAuthHeaderMissing)
	})

	t.Run("Wrong Scheme", func(t *testing.T) {
		_, err := ExtractToken(makeContext("Basic abc123"))
		assert.ErrorIs(t, err, ErrInvalidAuthFormat)
	})
}
