package main

import (
	"context"
	"log"
	"os"

	"leotclient/cmd/app"
	"leotclient/internal/config"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	c := app.App(cfg)

	command := ""
	args := []string{}
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	if err := c.Run(context.Background(), command, args); err != nil {
		log.Fatalf("Ошибка выполнения команды: %v", err)
	}
}
