package httpHandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitness-server/apperrors"
	"fitness-server/auth"
	"fitness-server/entities"
	"fitness-server/services"
	"fitness-server/usecases"
	"fitness-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users   map[string]*entities.User
	weights []entities.Weight
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

func (m *memUserRepo) CreateWithWeight(user *entities.User, weight float64) error {
	for _, u := range m.users {
		if u.Email == user.Email {
			return apperrors.E(apperrors.KindConflict, "email already registered")
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	m.users[user.ID] = user
	m.weights = append(m.weights, entities.Weight{UserID: user.ID, Weight: weight})
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entities.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperrors.E(apperrors.KindNotFound, "user not found")
}

func (m *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.E(apperrors.KindNotFound, "user not found")
}

func (m *memUserRepo) Update(user *entities.User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memUserRepo) Delete(id string) error {
	delete(m.users, id)
	return nil
}

func newAuthRouter(repo *memUserRepo, tokens *auth.TokenManager) *gin.Engine {
	r, _ := newAuthRouterWithFeed(repo, tokens)
	return r
}

func newAuthRouterWithFeed(repo *memUserRepo, tokens *auth.TokenManager) (*gin.Engine, *services.ActivityFeed) {
	gin.SetMode(gin.TestMode)

	feed := services.NewActivityFeed(ws.NewManager(), 50)
	useCase := usecases.NewUserUseCase(repo, tokens, 4)
	handler := NewAuthHandler(useCase, feed)
	mw := NewAuthMiddleware(tokens, repo)

	r := gin.New()
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.GET("/profile", mw.RequireAuth(), handler.Profile)
		authGroup.PUT("/updateUser/:id", mw.RequireAuth(), handler.UpdateUser)
		authGroup.DELETE("/deleteUser/:id", mw.RequireAuth(), handler.DeleteUser)
	}
	return r, feed
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAnn(t *testing.T, r *gin.Engine) map[string]interface{} {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann","email":"ann@x.com","password":"secret1","weight":65}`, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRegister_CreatesUserAndWeight(t *testing.T) {
	repo := newMemUserRepo()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	r := newAuthRouter(repo, tokens)

	resp := registerAnn(t, r)
	assert.Equal(t, true, resp["success"])

	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ann@x.com", data["email"])

	// The stored hash never appears in the response
	_, leaked := data["password"]
	assert.False(t, leaked)
	_, leaked = data["password_hash"]
	assert.False(t, leaked)

	require.Len(t, repo.weights, 1)
	assert.Equal(t, data["id"], repo.weights[0].UserID)
	assert.Equal(t, 65.0, repo.weights[0].Weight)
}

func TestRegister_MissingField(t *testing.T) {
	r := newAuthRouter(newMemUserRepo(), auth.NewTokenManager([]byte("test-secret"), time.Hour))

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"email":"ann@x.com","password":"secret1","weight":65}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	r := newAuthRouter(repo, auth.NewTokenManager([]byte("test-secret"), time.Hour))

	registerAnn(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Ann2","email":"ANN@x.com","password":"secret2","weight":70}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, repo.users, 1)
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newAuthRouter(newMemUserRepo(), auth.NewTokenManager([]byte("test-secret"), time.Hour))
	registerAnn(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ann@x.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "token")
}

func TestLoginAndProfile_Success(t *testing.T) {
	r := newAuthRouter(newMemUserRepo(), auth.NewTokenManager([]byte("test-secret"), time.Hour))
	registerAnn(t, r)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ann@x.com","password":"secret1"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var loginResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	assert.Equal(t, true, loginResp["success"])
	token, _ := loginResp["token"].(string)
	require.NotEmpty(t, token)

	w = doJSON(r, http.MethodGet, "/api/v1/auth/profile", "", token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var profileResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profileResp))
	data := profileResp["data"].(map[string]interface{})
	assert.Equal(t, "Ann", data["name"])
	assert.Equal(t, "ann@x.com", data["email"])
	_, leaked := data["password"]
	assert.False(t, leaked)
}

func TestProfile_NoHeader(t *testing.T) {
	r := newAuthRouter(newMemUserRepo(), auth.NewTokenManager([]byte("test-secret"), time.Hour))

	w := doJSON(r, http.MethodGet, "/api/v1/auth/profile", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile_MalformedHeader(t *testing.T) {
	r := newAuthRouter(newMemUserRepo(), auth.NewTokenManager([]byte("test-secret"), time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/profile", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile_ExpiredToken(t *testing.T) {
	repo := newMemUserRepo()
	expired := auth.NewTokenManager([]byte("test-secret"), -time.Minute)
	live := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	r := newAuthRouter(repo, live)
	registerAnn(t, r)

	var userID string
	for id := range repo.users {
		userID = id
	}
	token, err := expired.Generate(userID, "Ann", "ann@x.com")
	require.NoError(t, err)

	w := doJSON(r, http.MethodGet, "/api/v1/auth/profile", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfile_UserDeletedAfterIssuance(t *testing.T) {
	repo := newMemUserRepo()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	r := newAuthRouter(repo, tokens)
	registerAnn(t, r)

	var userID string
	for id := range repo.users {
		userID = id
	}
	token, err := tokens.Generate(userID, "Ann", "ann@x.com")
	require.NoError(t, err)

	delete(repo.users, userID)

	w := doJSON(r, http.MethodGet, "/api/v1/auth/profile", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateUser_UnknownFieldRejected(t *testing.T) {
	repo := newMemUserRepo()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	r := newAuthRouter(repo, tokens)
	registerAnn(t, r)

	var userID string
	for id := range repo.users {
		userID = id
	}
	token, _ := tokens.Generate(userID, "Ann", "ann@x.com")

	w := doJSON(r, http.MethodPut, "/api/v1/auth/updateUser/"+userID,
		`{"password_hash":"evil"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser_OtherUserRejected(t *testing.T) {
	repo := newMemUserRepo()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	r := newAuthRouter(repo, tokens)
	registerAnn(t, r)

	var userID string
	for id := range repo.users {
		userID = id
	}
	token, _ := tokens.Generate(userID, "Ann", "ann@x.com")

	w := doJSON(r, http.MethodPut, "/api/v1/auth/updateUser/some-other-id",
		`{"name":"Mallory"}`, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteUser_SelfOnly(t *testing.T) {
	repo := newMemUserRepo()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	r := newAuthRouter(repo, tokens)
	registerAnn(t, r)

	var userID string
	for id := range repo.users {
		userID = id
	}
	token, _ := tokens.Generate(userID, "Ann", "ann@x.com")

	w := doJSON(r, http.MethodDelete, "/api/v1/auth/deleteUser/other-id", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, repo.users, 1)

	w = doJSON(r, http.MethodDelete, "/api/v1/auth/deleteUser/"+userID, "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, repo.users)
}

func TestDeleteUser_ClearsActivityFeed(t *testing.T) {
	repo := newMemUserRepo()
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	r, feed := newAuthRouterWithFeed(repo, tokens)
	registerAnn(t, r)

	var userID string
	for id := range repo.users {
		userID = id
	}
	token, _ := tokens.Generate(userID, "Ann", "ann@x.com")

	feed.Record(userID, "workout", "w1", "Logged workout: Run (30 min)")
	require.Len(t, feed.Recent(userID), 1)

	w := doJSON(r, http.MethodDelete, "/api/v1/auth/deleteUser/"+userID, "", token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Nothing buffered survives the account
	assert.Empty(t, feed.Recent(userID))
}
