package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"leotclient/internal/api"
	"leotclient/internal/models"
	"leotclient/internal/store"
)

func (c *CLI) cmdBanks(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("banks", flag.ContinueOnError)
	page := fs.Int64("page", 1, "номер страницы")
	size := fs.Int64("size", 20, "размер страницы")
	title := fs.String("title", "", "фильтр по названию")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.QueryQuestionBankDTO{Current: *page, PageSize: *size, Title: *title}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры запроса: %w", err)
	}

	c.Bagu.FetchBanks(ctx, req)

	fmt.Printf("Банки вопросов (всего %d):\n", c.Bagu.Total())
	for _, bank := range c.Bagu.Banks() {
		printBankRow(bank)
	}
	return nil
}

func (c *CLI) cmdBank(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bank", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id банка")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}
	if !c.guardRoute(fmt.Sprintf("/bagu/bank/%d", *id)) {
		return nil
	}

	c.Bagu.FetchBankDetail(ctx, *id)
	c.Bagu.FetchBankQuestions(ctx, *id)

	bank := c.Bagu.CurrentBank()
	if bank == nil {
		return nil
	}
	fmt.Printf("Банк #%d: %s\n", bank.ID, bank.Title)
	if bank.Description != "" {
		fmt.Println(bank.Description)
	}
	fmt.Println("Вопросы:")
	for _, q := range c.Bagu.BankQuestionList() {
		printQuestionRow(q)
	}
	return nil
}

func (c *CLI) cmdQuestions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("questions", flag.ContinueOnError)
	page := fs.Int64("page", 1, "номер страницы")
	size := fs.Int64("size", 20, "размер страницы")
	bankID := fs.Int64("bank", 0, "фильтр по банку")
	title := fs.String("title", "", "фильтр по заголовку")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.QueryQuestionDTO{Current: *page, PageSize: *size, QuestionBankID: *bankID, Title: *title}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры запроса: %w", err)
	}

	c.Bagu.FetchQuestions(ctx, req)

	fmt.Printf("Вопросы (всего %d):\n", c.Bagu.Total())
	for _, q := range c.Bagu.Questions() {
		printQuestionRow(q)
	}
	return nil
}

func (c *CLI) cmdSearch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	keyword := fs.String("keyword", "", "поисковый запрос")
	tags := fs.String("tags", "", "теги через запятую")
	bankID := fs.Int64("bank", 0, "ограничить банком")
	sortField := fs.String("sort", "", "поле сортировки")
	sortOrder := fs.String("order", "", "asc или desc")
	page := fs.Int64("page", 1, "номер страницы")
	size := fs.Int64("size", 20, "размер страницы")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.SearchParams{
		Keyword:        *keyword,
		QuestionBankID: *bankID,
		SortField:      *sortField,
		SortOrder:      *sortOrder,
		Current:        *page,
		PageSize:       *size,
	}
	if *tags != "" {
		req.Tags = strings.Split(*tags, ",")
	}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры поиска: %w", err)
	}

	c.Bagu.SearchQuestions(ctx, req)

	fmt.Printf("Найдено %d:\n", c.Bagu.Total())
	for _, q := range c.Bagu.Questions() {
		printQuestionRow(q)
	}
	return nil
}

func (c *CLI) cmdQuestion(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("question", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}

	c.Bagu.FetchQuestionDetail(ctx, *id)

	q := c.Bagu.CurrentQuestion()
	if q == nil {
		return nil
	}
	fmt.Printf("Вопрос #%d: %s\n\n%s\n", q.ID, q.Title, q.Content)
	if q.Answer != "" {
		fmt.Printf("\nОтвет:\n%s\n", q.Answer)
	}
	fmt.Printf("\nПросмотры %d, лайки %d, в избранном %d\n", q.ViewNum, q.ThumbNum, q.FavourNum)

	// навигация по ранее загруженному списку банка
	if prev, ok := c.Bagu.PrevQuestionID(q.ID); ok {
		fmt.Printf("Предыдущий: #%d\n", prev)
	}
	if next, ok := c.Bagu.NextQuestionID(q.ID); ok {
		fmt.Printf("Следующий: #%d\n", next)
	}
	return nil
}

func (c *CLI) cmdThumb(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("thumb", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}
	c.Bagu.ToggleThumb(ctx, *id)
	return nil
}

func (c *CLI) cmdFavour(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("favour", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}
	c.Bagu.ToggleFavour(ctx, *id)
	return nil
}

func (c *CLI) cmdFavourites(ctx context.Context, args []string) error {
	if !c.guardRoute("/bagu/favourites") {
		return nil
	}

	fs := flag.NewFlagSet("favourites", flag.ContinueOnError)
	page := fs.Int64("page", 1, "номер страницы")
	size := fs.Int64("size", 20, "размер страницы")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.PageParams{Current: *page, PageSize: *size}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры запроса: %w", err)
	}

	c.Bagu.FetchFavourites(ctx, req)

	fmt.Printf("Избранное (всего %d):\n", c.Bagu.Total())
	for _, q := range c.Bagu.Favourites() {
		printQuestionRow(q)
	}
	return nil
}

func (c *CLI) cmdComments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("comments", flag.ContinueOnError)
	questionID := fs.Int64("question", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *questionID == 0 {
		return fmt.Errorf("требуется -question")
	}

	c.Bagu.FetchComments(ctx, *questionID)

	for _, comment := range c.Bagu.Comments() {
		printComment(comment, 0)
	}
	return nil
}

func printComment(comment models.QuestionComment, depth int) {
	indent := strings.Repeat("  ", depth)
	mark := ""
	if comment.HasThumb {
		mark = " [+1]"
	}
	fmt.Printf("%s#%d %s: %s (лайки %d)%s\n", indent, comment.ID, comment.UserName, comment.Content, comment.ThumbNum, mark)
	for _, child := range comment.Children {
		printComment(child, depth+1)
	}
}

func (c *CLI) cmdCommentAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("comment-add", flag.ContinueOnError)
	questionID := fs.Int64("question", 0, "id вопроса")
	content := fs.String("text", "", "текст комментария")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.AddCommentDTO{QuestionID: *questionID, Content: *content}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}
	c.Bagu.AddComment(ctx, req)
	return nil
}

func (c *CLI) cmdCommentReply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("comment-reply", flag.ContinueOnError)
	questionID := fs.Int64("question", 0, "id вопроса")
	parentID := fs.Int64("parent", 0, "id корневого комментария")
	replyUserID := fs.Int64("to", 0, "id пользователя, которому отвечаем")
	content := fs.String("text", "", "текст ответа")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.ReplyCommentDTO{QuestionID: *questionID, ParentID: *parentID, ReplyUserID: *replyUserID, Content: *content}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}
	c.Bagu.ReplyComment(ctx, req)
	return nil
}

func (c *CLI) cmdCommentThumb(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("comment-thumb", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id комментария")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}
	c.Bagu.ToggleCommentThumb(ctx, *id)
	return nil
}

func (c *CLI) cmdCommentDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("comment-del", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id комментария")
	questionID := fs.Int64("question", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 || *questionID == 0 {
		return fmt.Errorf("требуются -id и -question")
	}
	c.Bagu.DeleteComment(ctx, *id, *questionID)
	return nil
}

func (c *CLI) cmdTheme(args []string) error {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	set := fs.String("set", "", "dark или light; без флага - переключить")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *set {
	case "":
		c.Theme.Toggle()
	case "dark", "light":
		c.Theme.SetTheme(store.ThemeMode(*set))
	default:
		return fmt.Errorf("недопустимая тема: %s", *set)
	}

	fmt.Printf("Тема: %s\n", c.Theme.Theme())
	return nil
}

func (c *CLI) cmdUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	path := fs.String("file", "", "путь к изображению")
	bizType := fs.String("biz", api.BizTypeQuestionBank, "тип загрузки")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return fmt.Errorf("требуется -file")
	}

	file, err := os.Open(*path)
	if err != nil {
		return fmt.Errorf("не удалось открыть файл: %w", err)
	}
	defer file.Close()

	url, err := c.API.File.UploadImage(ctx, filepath.Base(*path), file, *bizType)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}

	c.Notifier.Success("Изображение загружено")
	fmt.Println(url)
	return nil
}
