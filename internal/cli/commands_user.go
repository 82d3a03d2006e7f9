package cli

import (
	"context"
	"flag"
	"fmt"

	"leotclient/internal/models"
)

func (c *CLI) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	name := fs.String("name", "", "имя пользователя")
	password := fs.String("password", "", "пароль")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.LoginRequest{UserName: *name, UserPassword: *password}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры входа: %w", err)
	}

	user, err := c.API.User.Login(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}

	// токен уже перехвачен из заголовка ответа, осталось запомнить профиль
	c.Session.SetUser(user)
	if err := c.Session.InitUser(ctx); err != nil {
		return err
	}

	c.Notifier.Success(fmt.Sprintf("Добро пожаловать, %s", user.UserName))
	return nil
}

func (c *CLI) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "имя пользователя")
	password := fs.String("password", "", "пароль")
	profile := fs.String("profile", "", "о себе")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.RegisterRequest{UserName: *name, UserPassword: *password, Profile: *profile}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры регистрации: %w", err)
	}

	user, err := c.API.User.Register(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}

	c.Notifier.Success(fmt.Sprintf("Пользователь %s зарегистрирован, выполните login", user.UserName))
	return nil
}

func (c *CLI) cmdLogout(ctx context.Context) error {
	c.Session.Logout(ctx)
	c.Notifier.Success("Вы вышли из системы")
	return nil
}

func (c *CLI) cmdWhoami(ctx context.Context) error {
	if c.Session.Token() == "" {
		c.Notifier.Warning("Вы не авторизованы")
		return nil
	}

	// сперва дешёвое восстановление из кэша, затем подтверждение сервером
	if c.Session.User() == nil {
		c.Session.RestoreUser()
	}
	if c.Session.User() == nil {
		if err := c.Session.InitUser(ctx); err != nil {
			return err
		}
	}

	user := c.Session.User()
	if user == nil {
		c.Notifier.Warning("Профиль недоступен")
		return nil
	}
	fmt.Printf("Пользователь: %s (#%d)\nРоль: %s\n", user.UserName, user.ID, user.UserRole)
	if user.Profile != "" {
		fmt.Printf("О себе: %s\n", user.Profile)
	}
	return nil
}

func (c *CLI) cmdUserList(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/users") {
		return nil
	}

	fs := flag.NewFlagSet("user-list", flag.ContinueOnError)
	page := fs.Int64("page", 1, "номер страницы")
	size := fs.Int64("size", 20, "размер страницы")
	name := fs.String("name", "", "фильтр по имени")
	account := fs.String("account", "", "фильтр по аккаунту")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.QueryUserRequest{Current: *page, PageSize: *size, UserName: *name, UserAccount: *account}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры запроса: %w", err)
	}

	result, err := c.API.User.ListUsers(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}

	fmt.Printf("Пользователи (стр. %d, всего %d):\n", result.Current, result.Total)
	for _, user := range result.Records {
		printUserRow(user)
	}
	return nil
}

func (c *CLI) cmdUserGet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user-get", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id пользователя")
	safe := fs.Bool("safe", false, "без чувствительных полей (не требует прав администратора)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}

	var (
		user models.User
		err  error
	)
	if *safe {
		user, err = c.API.User.GetSafeUserByID(ctx, *id)
	} else {
		if !c.guardRoute("/admin/users") {
			return nil
		}
		user, err = c.API.User.GetUserByID(ctx, *id)
	}
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}

	printUserRow(user)
	if user.Profile != "" {
		fmt.Printf("          %s\n", user.Profile)
	}
	return nil
}

func (c *CLI) cmdUserAdd(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/users") {
		return nil
	}

	fs := flag.NewFlagSet("user-add", flag.ContinueOnError)
	name := fs.String("name", "", "имя пользователя")
	password := fs.String("password", "", "пароль")
	profile := fs.String("profile", "", "о себе")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.RegisterRequest{UserName: *name, UserPassword: *password, Profile: *profile}
	if err := c.Validate.Struct(req); err != nil {
		return fmt.Errorf("неверные параметры: %w", err)
	}

	user, err := c.API.User.AddUser(ctx, req)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	c.Notifier.Success(fmt.Sprintf("Пользователь %s создан", user.UserName))
	return nil
}

func (c *CLI) cmdUserUpdate(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/users") {
		return nil
	}

	fs := flag.NewFlagSet("user-update", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id пользователя")
	name := fs.String("name", "", "новое имя")
	profile := fs.String("profile", "", "о себе")
	role := fs.String("role", "", "роль: user или admin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}
	if *role != "" && *role != models.RoleUser && *role != models.RoleAdmin {
		return fmt.Errorf("недопустимая роль: %s", *role)
	}

	user := models.User{ID: *id, UserName: *name, Profile: *profile, UserRole: *role}
	updated, err := c.API.User.UpdateUserInfo(ctx, user)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	c.Notifier.Success(fmt.Sprintf("Пользователь %s обновлён", updated.UserName))
	return nil
}

func (c *CLI) cmdUserDelete(ctx context.Context, args []string) error {
	if !c.guardRoute("/admin/users") {
		return nil
	}

	fs := flag.NewFlagSet("user-del", flag.ContinueOnError)
	id := fs.Int64("id", 0, "id пользователя")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return fmt.Errorf("требуется -id")
	}

	ok, err := c.API.User.DeleteUser(ctx, *id)
	if err != nil {
		c.Notifier.Error(err.Error())
		return err
	}
	if ok {
		c.Notifier.Success("Пользователь удалён")
	} else {
		c.Notifier.Warning("Пользователь не был удалён")
	}
	return nil
}
