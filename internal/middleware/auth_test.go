package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func newProtectedRouter(roles ...model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireRole(roles...), func(c *gin.Context) {
		role, _ := c.Get("userRole")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return router
}

func TestRequireRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	secret := []byte("test_secret")

	validClaims := func(role string) jwt.MapClaims {
		return jwt.MapClaims{
			"sub":  "user-1",
			"role": role,
			"name": "Alice",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
	}

	t.Run("Should pass a matching role through", func(t *testing.T) {
		router := newProtectedRouter(model.RoleHR)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, validClaims("HR")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should match roles case-insensitively", func(t *testing.T) {
		router := newProtectedRouter(model.RoleDepartmentHead)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, validClaims("departmenthead")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should reject a role outside the allowlist", func(t *testing.T) {
		router := newProtectedRouter(model.RoleHR)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, validClaims("Applicant")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should reject a role outside the closed set", func(t *testing.T) {
		router := newProtectedRouter(model.RoleHR)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, validClaims("admin")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should reject a missing authorization header", func(t *testing.T) {
		router := newProtectedRouter(model.RoleHR)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a malformed bearer header", func(t *testing.T) {
		router := newProtectedRouter(model.RoleHR)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		router := newProtectedRouter(model.RoleHR)

		claims := validClaims("HR")
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, claims))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {
		router := newProtectedRouter(model.RoleHR)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, []byte("other_secret"), validClaims("HR")))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should accept the token from the access_token cookie", func(t *testing.T) {
		router := newProtectedRouter(model.RoleApplicant)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, secret, validClaims("Applicant"))})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should stash identity claims in the context", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		var gotID, gotName, gotDept interface{}
		router.GET("/protected", RequireRole(model.RoleDepartmentHead), func(c *gin.Context) {
			gotID, _ = c.Get("userID")
			gotName, _ = c.Get("userName")
			gotDept, _ = c.Get("userDepartment")
			c.Status(http.StatusOK)
		})

		claims := validClaims("DepartmentHead")
		claims["department"] = "Eng"
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, claims))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", gotID)
		assert.Equal(t, "Alice", gotName)
		assert.Equal(t, "Eng", gotDept)
	})
}
