package notify

import "fmt"

// Notifier - неблокирующие уведомления пользователю (аналог всплывающих
// сообщений в браузерном клиенте).
type Notifier interface {
	Success(message string)
	Warning(message string)
	Error(message string)
}

// ConsoleNotifier печатает уведомления в стандартный вывод.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (n *ConsoleNotifier) Success(message string) {
	fmt.Println("[OK] " + message)
}

func (n *ConsoleNotifier) Warning(message string) {
	fmt.Println("[!] " + message)
}

func (n *ConsoleNotifier) Error(message string) {
	fmt.Println("[ошибка] " + message)
}
