package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TirthDesai-Ascensus/BookStore/internal/config"
	"github.com/TirthDesai-Ascensus/BookStore/internal/database"
	"github.com/TirthDesai-Ascensus/BookStore/internal/database/books"
	http_controllers "github.com/TirthDesai-Ascensus/BookStore/internal/http"
	"github.com/TirthDesai-Ascensus/BookStore/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting BookStore v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	booksRepository := books.NewRepository(db.DB)

	statsScheduler := scheduler.NewStatsScheduler(booksRepository, cfg.StatsSnapshot)
	if err := statsScheduler.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start stats scheduler: %v", err)
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database: db,
		Books:    booksRepository,
		Version:  version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		statsScheduler.Stop()
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
