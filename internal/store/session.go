package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"leotclient/internal/api"
	"leotclient/internal/models"
	"leotclient/internal/storage"
)

// Состояние сессии. Токен - единственный признак входа; пользователь
// может отсутствовать при наличии токена (профиль ещё не загружен).
type SessionState int

const (
	StateLoggedOut SessionState = iota
	StateTokenOnly
	StateAuthenticated
)

// SessionStore владеет токеном и профилем текущего пользователя и
// зеркалит их в долговременное хранилище.
type SessionStore struct {
	mu      sync.Mutex
	token   string
	user    *models.User
	store   storage.Storage
	userAPI api.UserAPI
}

// NewSessionStore восстанавливает токен из хранилища, профиль не трогает:
// он либо загружается с сервера (InitUser), либо из кэша (RestoreUser).
func NewSessionStore(store storage.Storage) *SessionStore {
	s := &SessionStore{store: store}
	if token, ok := store.Get(storage.KeyToken); ok {
		s.token = token
	}
	return s
}

// BindAPI внедряет модуль пользователей после создания HTTP-клиента
// (клиенту нужен SessionStore как источник токена, отсюда два шага).
func (s *SessionStore) BindAPI(userAPI api.UserAPI) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userAPI = userAPI
}

// Token реализует httpclient.TokenSource.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

func (s *SessionStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if err := s.store.Set(storage.KeyToken, token); err != nil {
		log.Printf("[session] не удалось сохранить токен: %v", err)
	}
}

func (s *SessionStore) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
}

// InitUser загружает профиль с сервера. Неудача означает, что токен
// невозможно подтвердить - сессия сбрасывается целиком.
func (s *SessionStore) InitUser(ctx context.Context) error {
	s.mu.Lock()
	userAPI := s.userAPI
	s.mu.Unlock()

	user, err := userAPI.GetLoginUser(ctx)
	if err != nil {
		log.Printf("[session] не удалось загрузить профиль: %v", err)
		s.ClearUser()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	if data, err := json.Marshal(user); err == nil {
		if err := s.store.Set(storage.KeyUserInfo, string(data)); err != nil {
			log.Printf("[session] не удалось сохранить профиль: %v", err)
		}
	}
	return nil
}

// RestoreUser восстанавливает профиль из долговременного кэша.
// Повреждённый кэш просто игнорируется.
func (s *SessionStore) RestoreUser() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.store.Get(storage.KeyUserInfo)
	if !ok {
		return
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("[session] не удалось восстановить профиль: %v", err)
		return
	}
	s.user = &user
}

// ClearUser сбрасывает сессию полностью: память и оба ключа хранилища.
func (s *SessionStore) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	if err := s.store.Remove(storage.KeyToken); err != nil {
		log.Printf("[session] не удалось удалить токен: %v", err)
	}
	if err := s.store.Remove(storage.KeyUserInfo); err != nil {
		log.Printf("[session] не удалось удалить профиль: %v", err)
	}
}

// Logout уведомляет сервер по возможности, локально чистит всегда.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	userAPI := s.userAPI
	s.mu.Unlock()

	if err := userAPI.Logout(ctx); err != nil {
		log.Printf("[session] ошибка выхода на сервере: %v", err)
	}
	s.ClearUser()
}

// HandleUnauthorized - реакция на 401 от любого запроса.
func (s *SessionStore) HandleUnauthorized() {
	s.ClearUser()
}

// IsAdmin закрыт по умолчанию: без загруженного профиля прав нет.
func (s *SessionStore) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.UserRole == models.RoleAdmin
}

// State выводится из пары (token, user).
func (s *SessionStore) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.token == "":
		return StateLoggedOut
	case s.user == nil:
		return StateTokenOnly
	default:
		return StateAuthenticated
	}
}

// TokenExpiresAt подглядывает в exp-клейм токена без проверки подписи
// (ключ есть только у шлюза). Непрозрачные токены отдают ok=false.
func (s *SessionStore) TokenExpiresAt() (time.Time, bool) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return time.Time{}, false
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
