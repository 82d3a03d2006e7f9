package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// Ключи долговременного клиентского хранилища.
const (
	KeyToken    = "token"
	KeyUserInfo = "userInfo"
	KeyTheme    = "theme"
)

// Storage - долговременное хранилище клиента (аналог localStorage браузера).
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// FileStorage хранит ключи в одном JSON-файле.
type FileStorage struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// NewFileStorage читает существующий файл, если он есть.
// Повреждённый файл не фатален: хранилище начинается с чистого состояния.
func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{
		path:   path,
		values: make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("ошибка чтения хранилища %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		s.values = make(map[string]string)
	}
	return s, nil
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persist()
}

func (s *FileStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return s.persist()
}

// persist вызывается под мьютексом.
func (s *FileStorage) persist() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации хранилища: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("ошибка записи хранилища %s: %w", s.path, err)
	}
	return nil
}
