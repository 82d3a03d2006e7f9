package store

import (
	"log"
	"sync"

	"leotclient/internal/storage"
)

type ThemeMode string

const (
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// ThemeStore - двухпозиционный переключатель темы. Каждый переход
// синхронно зеркалится в хранилище и в applier (аналог data-theme
// атрибута документа в браузерном клиенте).
type ThemeStore struct {
	mu      sync.Mutex
	mode    ThemeMode
	store   storage.Storage
	applier func(ThemeMode)
}

// NewThemeStore читает сохранённую тему, по умолчанию тёмная.
// applier вызывается сразу же, как watcher с immediate.
func NewThemeStore(store storage.Storage, applier func(ThemeMode)) *ThemeStore {
	mode := ThemeDark
	if saved, ok := store.Get(storage.KeyTheme); ok {
		if ThemeMode(saved) == ThemeLight {
			mode = ThemeLight
		}
	}

	s := &ThemeStore{mode: mode, store: store, applier: applier}
	s.mirror(mode)
	return s
}

func (s *ThemeStore) Theme() ThemeMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *ThemeStore) Toggle() {
	s.mu.Lock()
	if s.mode == ThemeDark {
		s.mode = ThemeLight
	} else {
		s.mode = ThemeDark
	}
	mode := s.mode
	s.mu.Unlock()

	s.mirror(mode)
}

func (s *ThemeStore) SetTheme(mode ThemeMode) {
	if mode != ThemeDark && mode != ThemeLight {
		return
	}

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()

	s.mirror(mode)
}

func (s *ThemeStore) mirror(mode ThemeMode) {
	if err := s.store.Set(storage.KeyTheme, string(mode)); err != nil {
		log.Printf("[theme] не удалось сохранить тему: %v", err)
	}
	if s.applier != nil {
		s.applier(mode)
	}
}
