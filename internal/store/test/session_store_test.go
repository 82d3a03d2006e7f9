package test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leotclient/internal/models"
	"leotclient/internal/storage"
	"leotclient/internal/store"
)

func newSessionFixture(t *testing.T) (*store.SessionStore, *MockUserAPI, storage.Storage) {
	t.Helper()

	fileStore, err := storage.NewFileStorage(filepath.Join(t.TempDir(), "client.json"))
	require.NoError(t, err)

	userAPI := new(MockUserAPI)
	session := store.NewSessionStore(fileStore)
	session.BindAPI(userAPI)
	return session, userAPI, fileStore
}

func TestSessionState_DerivedFromTokenAndUser(t *testing.T) {
	session, userAPI, _ := newSessionFixture(t)

	assert.Equal(t, store.StateLoggedOut, session.State())

	session.SetToken("test-token")
	assert.Equal(t, store.StateTokenOnly, session.State())

	userAPI.On("GetLoginUser", mock.Anything).Return(models.User{
		ID: 1, UserName: "Иван", UserRole: models.RoleUser,
	}, nil).Once()
	require.NoError(t, session.InitUser(context.Background()))
	assert.Equal(t, store.StateAuthenticated, session.State())

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, "Иван", user.UserName)
}

func TestInitUser_SuccessPersistsProfile(t *testing.T) {
	// Arrange
	session, userAPI, fileStore := newSessionFixture(t)
	session.SetToken("test-token")
	userAPI.On("GetLoginUser", mock.Anything).Return(models.User{
		ID: 1, UserName: "Иван", UserRole: models.RoleAdmin,
	}, nil).Once()

	// Act
	require.NoError(t, session.InitUser(context.Background()))

	// Assert: профиль и токен лежат в долговременном хранилище
	raw, ok := fileStore.Get(storage.KeyUserInfo)
	assert.True(t, ok)
	assert.Contains(t, raw, "Иван")
	token, ok := fileStore.Get(storage.KeyToken)
	assert.True(t, ok)
	assert.Equal(t, "test-token", token)
}

func TestInitUser_FailureClearsSession(t *testing.T) {
	// Arrange
	session, userAPI, fileStore := newSessionFixture(t)
	session.SetToken("stale-token")
	userAPI.On("GetLoginUser", mock.Anything).Return(models.User{}, assert.AnError).Once()

	// Act
	err := session.InitUser(context.Background())

	// Assert: неподтверждённый токен сбрасывает сессию целиком
	assert.Error(t, err)
	assert.Empty(t, session.Token())
	assert.Nil(t, session.User())
	assert.Equal(t, store.StateLoggedOut, session.State())
	_, ok := fileStore.Get(storage.KeyToken)
	assert.False(t, ok)
}

func TestHandleUnauthorized_ClearsEverything(t *testing.T) {
	// Arrange: полностью авторизованная сессия
	session, _, fileStore := newSessionFixture(t)
	session.SetToken("test-token")
	session.SetUser(models.User{ID: 1, UserName: "Иван", UserRole: models.RoleUser})

	// Act: сервер ответил 401
	session.HandleUnauthorized()

	// Assert: память и оба ключа хранилища пусты
	assert.Empty(t, session.Token())
	assert.Nil(t, session.User())
	assert.Equal(t, store.StateLoggedOut, session.State())
	_, ok := fileStore.Get(storage.KeyToken)
	assert.False(t, ok)
	_, ok = fileStore.Get(storage.KeyUserInfo)
	assert.False(t, ok)
}

func TestNewSessionStore_RestoresToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	first, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(storage.KeyToken, "saved-token"))

	second, err := storage.NewFileStorage(path)
	require.NoError(t, err)
	session := store.NewSessionStore(second)

	assert.Equal(t, "saved-token", session.Token())
	assert.Equal(t, store.StateTokenOnly, session.State())
}

func TestRestoreUser_FromCache(t *testing.T) {
	session, _, fileStore := newSessionFixture(t)
	require.NoError(t, fileStore.Set(storage.KeyUserInfo, `{"userName":"Иван","userRole":"admin"}`))

	session.RestoreUser()

	user := session.User()
	require.NotNil(t, user)
	assert.Equal(t, "Иван", user.UserName)
	assert.True(t, session.IsAdmin())
}

func TestRestoreUser_CorruptedCacheIgnored(t *testing.T) {
	session, _, fileStore := newSessionFixture(t)
	require.NoError(t, fileStore.Set(storage.KeyUserInfo, "{не json"))

	session.RestoreUser()

	assert.Nil(t, session.User())
}

func TestLogout_ClearsEvenWhenServerFails(t *testing.T) {
	session, userAPI, _ := newSessionFixture(t)
	session.SetToken("test-token")
	session.SetUser(models.User{ID: 1, UserRole: models.RoleUser})
	userAPI.On("Logout", mock.Anything).Return(assert.AnError).Once()

	session.Logout(context.Background())

	assert.Equal(t, store.StateLoggedOut, session.State())
	userAPI.AssertExpectations(t)
}

func TestIsAdmin_ClosedByDefault(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	// без профиля прав нет, даже с токеном
	session.SetToken("test-token")
	assert.False(t, session.IsAdmin())

	session.SetUser(models.User{ID: 1, UserRole: models.RoleUser})
	assert.False(t, session.IsAdmin())

	session.SetUser(models.User{ID: 2, UserRole: models.RoleAdmin})
	assert.True(t, session.IsAdmin())
}

func TestTokenExpiresAt(t *testing.T) {
	session, _, _ := newSessionFixture(t)

	// без токена
	_, ok := session.TokenExpiresAt()
	assert.False(t, ok)

	// непрозрачный токен (Sa-Token по умолчанию выдаёт именно такой)
	session.SetToken("opaque-session-token")
	_, ok = session.TokenExpiresAt()
	assert.False(t, ok)

	// JWT с exp-клеймом
	expires := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": expires.Unix(),
	}).SignedString([]byte("gateway-secret"))
	require.NoError(t, err)

	session.SetToken(signed)
	got, ok := session.TokenExpiresAt()
	assert.True(t, ok)
	assert.True(t, got.Equal(expires))
}
