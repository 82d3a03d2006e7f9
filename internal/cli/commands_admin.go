package cli

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"leotclient/internal/models"
)

// Администрирование банков и вопросов, маршрут /admin/bagu.

func (c *CLI) cmdQuestionAdd(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("q-add", flag.ContinueOnError)
	title := fs.String("title", "", "заголовок")
	content := fs.String("content", "", "текст вопроса")
	answer := fs.String("answer", "", "ответ")
	tags := fs.String("tags", "", "теги через запятую")
	bankID := fs.Int64("bank", 0, "сразу привязать к банку")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.AddQuestionDTO{Title: *title, Content: *content, Answer: *answer, QuestionBankID: *bankID}
	if *tags != "" {
		req.Tags = strings.Split(*tags, ",")
	}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}

	id, err := c.API.Question.Add(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	c.Notifier.Success(fmt.Sprintf("Вопрос #%d создан", id))
	return nil
}

func (c *CLI) cmdQuestionUpdate(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("q-update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id вопроса")
	title := fs.String("title", "", "заголовок")
	content := fs.String("content", "", "текст вопроса")
	answer := fs.String("answer", "", "ответ")
	tags := fs.String("tags", "", "теги через запятую")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.UpdateQuestionDTO{ID: *id, Title: *title, Content: *content, Answer: *answer}
	if *tags != "" {
		req.Tags = strings.Split(*tags, ",")
	}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}

	ok, err := c.API.Question.Update(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	if ok {
		c.Notifier.Success("Вопрос обновлён")
	}
	return nil
}

func (c *CLI) cmdQuestionDelete(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("q-del", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}

	ok, err := c.API.Question.Delete(ctx, *id)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	if ok {
		c.Notifier.Success("Вопрос удалён")
	}
	return nil
}

func (c *CLI) cmdBankAdd(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("bank-add", flag.ContinueOnError)
	title := fs.String("title", "", "название банка")
	description := fs.String("description", "", "описание")
	picture := fs.String("picture", "", "URL обложки")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.AddQuestionBankDTO{Title: *title, Description: *description, Picture: *picture}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}

	id, err := c.API.QuestionBank.Add(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	c.Notifier.Success(fmt.Sprintf("Банк #%d создан", id))
	return nil
}

func (c *CLI) cmdBankUpdate(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("bank-update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id банка")
	title := fs.String("title", "", "название")
	description := fs.String("description", "", "описание")
	picture := fs.String("picture", "", "URL обложки")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.UpdateQuestionBankDTO{ID: *id, Title: *title, Description: *description, Picture: *picture}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}

	ok, err := c.API.QuestionBank.Update(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	if ok {
		c.Notifier.Success("Банк обновлён")
	}
	return nil
}

func (c *CLI) cmdBankDelete(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("bank-del", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id банка")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}

	ok, err := c.API.QuestionBank.Delete(ctx, *id)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	if ok {
		c.Notifier.Success("Банк удалён")
	}
	return nil
}

func (c *CLI) cmdLink(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("link", flag.ContinueOnError)
	bankID := fs.Int64("bank", 0, "id банка")
	questionID := fs.Int64("question", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.AddQuestionBankQuestionDTO{QuestionBankID: *bankID, QuestionID: *questionID}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}

	ok, err := c.API.BankQuestion.Add(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	if ok {
		c.Notifier.Success("Вопрос привязан к банку")
	}
	return nil
}

func (c *CLI) cmdLinkBatch(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("link-batch", flag.ContinueOnError)
	bankID := fs.Int64("bank", 0, "id банка")
	questions := fs.String("questions", "", "id вопросов через запятую")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var ids []int64
	for _, part := range strings.Split(*questions, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("неверный id вопроса %q", part)
		}
		ids = append(ids, id)
	}

	req := models.BatchAddQuestionDTO{QuestionBankID: *bankID, QuestionIDs: ids}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}

	count, err := c.API.BankQuestion.BatchAdd(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	c.Notifier.Success(fmt.Sprintf("Привязано вопросов: %d", count))
	return nil
}

func (c *CLI) cmdUnlink(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/bagu") {
		return nil
	}

	fs := flag.NewFlagSet("unlink", flag.ContinueOnError)
	bankID := fs.Int64("bank", 0, "id банка")
	questionID := fs.Int64("question", 0, "id вопроса")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *bankID == 0 || *questionID == 0 {
		return fmt.Errorf("требуются -bank и -question")
	}

	ok, err := c.API.BankQuestion.Remove(ctx, *bankID, *questionID)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	if ok {
		c.Notifier.Success("Вопрос отвязан от банка")
	}
	return nil
}
