package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"leotclient/internal/api"
	"leotclient/internal/models"
	"leotclient/internal/notify"
	"leotclient/internal/router"
	"leotclient/internal/store"
)

// CLI - слой представления: разбирает аргументы команд, валидирует DTO
// и выводит данные сторов. Вся работа с сервером идёт через сторы и
// API-модули.
type CLI struct {
	Session  *store.SessionStore
	Bagu     *store.BaguStore
	Theme    *store.ThemeStore
	API      *api.API
	Notifier notify.Notifier
	Validate *validator.Validate
}

func NewCLI(session *store.SessionStore, bagu *store.BaguStore, theme *store.ThemeStore, a *api.API, notifier notify.Notifier) *CLI {
	return &CLI{
		Session:  session,
		Bagu:     bagu,
		Theme:    theme,
		API:      a,
		Notifier: notifier,
		Validate: validator.New(),
	}
}

// Run выполняет одну команду. Возвращаемая ошибка означает неверное
// использование или отказ сервера; уведомления сторов уже напечатаны.
func (c *CLI) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.cmdLogin(ctx, args)
	case "register":
		return c.cmdRegister(ctx, args)
	case "logout":
		return c.cmdLogout(ctx)
	case "whoami":
		return c.cmdWhoami(ctx)
	case "banks":
		return c.cmdBanks(ctx, args)
	case "bank":
		return c.cmdBank(ctx, args)
	case "questions":
		return c.cmdQuestions(ctx, args)
	case "search":
		return c.cmdSearch(ctx, args)
	case "question":
		return c.cmdQuestion(ctx, args)
	case "thumb":
		return c.cmdThumb(ctx, args)
	case "favour":
		return c.cmdFavour(ctx, args)
	case "favourites":
		return c.cmdFavourites(ctx, args)
	case "comments":
		return c.cmdComments(ctx, args)
	case "comment-add":
		return c.cmdCommentAdd(ctx, args)
	case "comment-reply":
		return c.cmdCommentReply(ctx, args)
	case "comment-thumb":
		return c.cmdCommentThumb(ctx, args)
	case "comment-del":
		return c.cmdCommentDelete(ctx, args)
	case "theme":
		return c.cmdTheme(args)
	case "upload":
		return c.cmdUpload(ctx, args)
	case "user-list":
		return c.cmdUserList(ctx, args)
	case "user-get":
		return c.cmdUserGet(ctx, args)
	case "user-add":
		return c.cmdUserAdd(ctx, args)
	case "user-update":
		return c.cmdUserUpdate(ctx, args)
	case "user-del":
		return c.cmdUserDelete(ctx, args)
	case "q-add":
		return c.cmdQuestionAdd(ctx, args)
	case "q-update":
		return c.cmdQuestionUpdate(ctx, args)
	case "q-del":
		return c.cmdQuestionDelete(ctx, args)
	case "bank-add":
		return c.cmdBankAdd(ctx, args)
	case "bank-update":
		return c.cmdBankUpdate(ctx, args)
	case "bank-del":
		return c.cmdBankDelete(ctx, args)
	case "link":
		return c.cmdLink(ctx, args)
	case "link-batch":
		return c.cmdLinkBatch(ctx, args)
	case "unlink":
		return c.cmdUnlink(ctx, args)
	case "help", "":
		c.printUsage()
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("неизвестная команда: %s", command)
	}
}

// guardRoute прогоняет команду через охрану маршрутов. Пустой путь -
// команда не привязана к маршруту и доступна всегда.
func (c *CLI) guardRoute(path string) bool {
	if path == "" {
		return true
	}
	route, ok := router.FindRoute(path)
	if !ok {
		return true
	}
	if redirect := router.Guard(route, c.Session); redirect != "" {
		if redirect == router.PathLogin {
			c.Notifier.Warning("Сначала войдите в систему (команда login)")
		} else {
			c.Notifier.Warning("Недостаточно прав для этой команды")
		}
		return false
	}
	return true
}

func (c *CLI) printUsage() {
	fmt.Println(`leotclient - клиент платформы подготовки к собеседованиям

Команды:
  login -name -password          вход
  register -name -password       регистрация
  logout                         выход
  whoami                         текущий пользователь
  banks [-page -size -title]     список банков вопросов
  bank -id                       банк и его вопросы
  questions [-bank -page -size]  список вопросов
  search -keyword [...]          поиск вопросов
  question -id                   вопрос с навигацией по банку
  thumb -id / favour -id         лайк / избранное
  favourites [-page -size]       мои избранные вопросы
  comments -question             комментарии вопроса
  comment-add / comment-reply    добавить / ответить
  comment-thumb / comment-del    лайк / удаление комментария
  theme [-set dark|light]        переключение темы
  upload -file [-biz]            загрузка изображения
  user-* / q-* / bank-* / link*  администрирование`)
}

func printQuestionRow(q models.Question) {
	marks := ""
	if q.HasThumb {
		marks += " [+1]"
	}
	if q.HasFavour {
		marks += " [*]"
	}
	fmt.Printf("  #%-6d %s%s  (просмотры %d, лайки %d, в избранном %d)\n",
		q.ID, q.Title, marks, q.ViewNum, q.ThumbNum, q.FavourNum)
	if len(q.Tags) > 0 {
		fmt.Printf("          теги: %s\n", strings.Join(q.Tags, ", "))
	}
}

func printBankRow(b models.QuestionBank) {
	fmt.Printf("  #%-6d %s  (вопросов: %d)\n", b.ID, b.Title, b.QuestionCount)
	if b.Description != "" {
		fmt.Printf("          %s\n", b.Description)
	}
}

func printUserRow(u models.User) {
	fmt.Printf("  #%-6d %-20s %-20s %s\n", u.ID, u.UserName, u.UserAccount, u.UserRole)
}
