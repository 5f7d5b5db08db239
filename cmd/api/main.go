package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rosinterop "github.com/PlumpMath/ros-interop/internal"
	"github.com/PlumpMath/ros-interop/internal/repositories"
	"github.com/PlumpMath/ros-interop/internal/services"
	"github.com/caarlos0/env/v11"
	_ "github.com/go-sql-driver/mysql"
)

type config struct {
	Addr string `env:"INTEROP_ADDR" envDefault:":8080"`
	DSN  string `env:"INTEROP_DSN" envDefault:"user:password@/interop"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	db := initDBConnection(cfg.DSN)
	defer db.Close()

	targetRepo := repositories.NewMySQLTargetRepository(db)
	imageRepo := repositories.NewMySQLTargetImageRepository(db)
	targetService := services.NewDefaultTargetService(targetRepo, imageRepo)
	server := rosinterop.NewServer(targetService)

	go func() {
		if err := server.Run(cfg.Addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func initDBConnection(dsn string) *sql.DB {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatal(err)
	}
	db.SetConnMaxLifetime(time.Minute * 3)
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(10)
	return db
}
