package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	viper.Set("database.driver", "sqlite")
	viper.Set("database.dsn", fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name()))
	viper.Set("jwt.secret", "test-secret")
	viper.Set("jwt.ttl", "1h")
	viper.Set("app.log_level", "error")

	a, err := NewRouter()
	require.NoError(t, err)

	return a
}

func doJSON(t *testing.T, a *API, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)

	return rec
}

func registerAndLogin(t *testing.T, a *API, email, password string) string {
	t.Helper()

	rec := doJSON(t, a, http.MethodPost, "/api/users", gin.H{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, a, http.MethodPost, "/api/users/login", gin.H{
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	return resp.Token
}

func TestRegisterValidation(t *testing.T) {
	a := newTestAPI(t)

	rec := doJSON(t, a, http.MethodPost, "/api/users", gin.H{
		"email":    "not-an-email",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, a, http.MethodPost, "/api/users", gin.H{
		"email":    "a@x.com",
		"password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	a := newTestAPI(t)

	body := gin.H{"email": "a@x.com", "password": "password123"}

	rec := doJSON(t, a, http.MethodPost, "/api/users", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, a, http.MethodPost, "/api/users", body, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newTestAPI(t)

	rec := doJSON(t, a, http.MethodPost, "/api/users", gin.H{
		"email":    "a@x.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, a, http.MethodPost, "/api/users/login", gin.H{
		"email":    "a@x.com",
		"password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, a, http.MethodPost, "/api/users/login", gin.H{
		"email":    "ghost@x.com",
		"password": "password123",
	}, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidateRequiresToken(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodHead, "/api/validate", nil)
	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := registerAndLogin(t, a, "a@x.com", "password123")

	req = httptest.NewRequest(http.MethodHead, "/api/validate", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	a.Router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBucketLifecycle(t *testing.T) {
	a := newTestAPI(t)

	token := registerAndLogin(t, a, "a@x.com", "password123")

	rec := doJSON(t, a, http.MethodPost, "/api/buckets", gin.H{
		"bucket_name": "Travel",
		"description": "See the world",
		"category":    "Adventure",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var bucket struct {
		ID          uint   `json:"id"`
		BucketName  string `json:"bucket_name"`
		Description string `json:"description"`
		User        string `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bucket))
	assert.NotZero(t, bucket.ID)
	assert.Equal(t, "Travel", bucket.BucketName)
	assert.Equal(t, "a@x.com", bucket.User, "serialized user field is the owner's email")

	// The named category sprang into existence
	rec = doJSON(t, a, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Adventure")

	rec = doJSON(t, a, http.MethodGet, "/api/buckets/search?query=travel", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Travel")

	rec = doJSON(t, a, http.MethodPut, fmt.Sprintf("/api/buckets/%d", bucket.ID), gin.H{
		"description": "See the whole world",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "See the whole world")

	rec = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/buckets/%d", bucket.ID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/buckets/%d", bucket.ID), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestActivityLifecycle(t *testing.T) {
	a := newTestAPI(t)

	token := registerAndLogin(t, a, "a@x.com", "password123")

	rec := doJSON(t, a, http.MethodPost, "/api/buckets", gin.H{
		"bucket_name": "Travel",
		"description": "See the world",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var bucket struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bucket))

	rec = doJSON(t, a, http.MethodPost, fmt.Sprintf("/api/buckets/%d/activities", bucket.ID), gin.H{
		"description": "Book flights to Tokyo",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var activity struct {
		ActivityID uint   `json:"activity_id"`
		BucketID   uint   `json:"bucket_id"`
		User       string `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activity))
	assert.NotZero(t, activity.ActivityID)
	assert.Equal(t, bucket.ID, activity.BucketID)
	assert.Equal(t, "a@x.com", activity.User)

	// Activities of a foreign bucket read as a missing bucket
	otherToken := registerAndLogin(t, a, "b@x.com", "password123")
	rec = doJSON(t, a, http.MethodPost, fmt.Sprintf("/api/buckets/%d/activities", bucket.ID), gin.H{
		"description": "Should not land here",
	}, otherToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, a, http.MethodGet, "/api/activities/search?query=tokyo", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Book flights to Tokyo")

	rec = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/buckets/%d/activities/%d", bucket.ID, activity.ActivityID), nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/buckets/%d/activities/%d", bucket.ID, activity.ActivityID), nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserDeleteCascadesOverHTTP(t *testing.T) {
	a := newTestAPI(t)

	token := registerAndLogin(t, a, "a@x.com", "password123")

	rec := doJSON(t, a, http.MethodPost, "/api/buckets", gin.H{
		"bucket_name": "Travel",
		"description": "See the world",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, a, http.MethodDelete, "/api/users", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token's user no longer exists, every scoped route goes dark
	rec = doJSON(t, a, http.MethodGet, "/api/buckets", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
