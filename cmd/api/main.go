package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aidar/turmas/internal/app"
	"github.com/aidar/turmas/internal/config"
)

// shutdownTimeout ограничивает время на завершение активных запросов
const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("turmas api: %v", err)
	}
}

func run() error {
	// Конфигурация из окружения и .env
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}

	// Сигнал отменяет контекст, после чего начинается остановка
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return application.Serve(ctx, shutdownTimeout)
}
