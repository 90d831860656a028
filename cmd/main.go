package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"spotlist-analytics-service/internal/config"
	"spotlist-analytics-service/internal/controller"
	"spotlist-analytics-service/internal/db"
	httpserver "spotlist-analytics-service/internal/http"
	"spotlist-analytics-service/internal/repository"
	"spotlist-analytics-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewConnection(ctx, cfg)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer conn.Close()

	if err := db.RunMigrations(ctx, conn); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	repo := repository.NewSpotRepository(conn)
	worker := service.NewBatchSpotWorker(repo, cfg.WorkerBufferSize, cfg.WorkerBatchSize, cfg.WorkerFlushEvery)
	defer worker.Shutdown()

	reportService := service.NewReportService(repo, worker)
	reportController := controller.NewReportController(reportService)

	server := httpserver.NewServer(cfg, reportController)

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	log.Printf("starting server on %s", cfg.HTTPPort)
	if err := server.Listen(cfg.HTTPPort); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
