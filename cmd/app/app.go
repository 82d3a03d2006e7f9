package app

import (
	"log"
	"os"

	"leotclient/internal/api"
	"leotclient/internal/cli"
	"leotclient/internal/config"
	"leotclient/internal/httpclient"
	"leotclient/internal/notify"
	"leotclient/internal/storage"
	"leotclient/internal/store"
)

// App собирает зависимости клиента: хранилище, сессию, HTTP-клиент,
// API-модули и сторы. Порядок важен: клиенту нужен источник токена,
// сессии - модуль пользователей поверх клиента.
func App(cfg *config.Config) *cli.CLI {
	fileStore, err := storage.NewFileStorage(cfg.StorageFile)
	if err != nil {
		log.Fatalf("Не удалось открыть клиентское хранилище: %v", err)
	}

	notifier := notify.NewConsoleNotifier()
	session := store.NewSessionStore(fileStore)

	loading := httpclient.NewLoadingGauge(nil)
	client := httpclient.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, session, loading, session.HandleUnauthorized)
	client.OnToken(session.SetToken)

	apiSet := api.NewAPI(client)
	session.BindAPI(apiSet.User)

	bagu := store.NewBaguStore(session, apiSet, notifier)

	// зеркалим тему в атрибут процесса, как data-theme у документа
	theme := store.NewThemeStore(fileStore, func(mode store.ThemeMode) {
		os.Setenv("LEOT_THEME", string(mode))
	})

	return cli.NewCLI(session, bagu, theme, apiSet, notifier)
}
