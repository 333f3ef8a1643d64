package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/wordlist/internal/audit"
	"github.com/mrlokans/wordlist/internal/auth"
	"github.com/mrlokans/wordlist/internal/config"
	"github.com/mrlokans/wordlist/internal/database"
	"github.com/mrlokans/wordlist/internal/database/words"
	"github.com/mrlokans/wordlist/internal/demo"
	http_controllers "github.com/mrlokans/wordlist/internal/http"
	"github.com/mrlokans/wordlist/internal/scheduler"
	"github.com/mrlokans/wordlist/internal/tasks"
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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// SIGKILL cannot be caught, so only SIGINT and SIGTERM trigger a graceful stop.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work before the listener so in-flight imports can finish.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// NewAuditor returns the snapshot store configured by AUDIT_DIR, or nil.
func NewAuditor(cfg *config.Config) *audit.Auditor {
	if cfg.Audit.Dir == "" {
		return nil
	}
	log.Printf("Dropped rows will be saved to %s", cfg.Audit.Dir)
	return audit.NewAuditor(cfg.Audit.Dir)
}

// OpenDatabase opens the word list with the options implied by cfg. auditor may be nil.
func OpenDatabase(cfg *config.Config, auditor *audit.Auditor) (*database.Database, error) {
	opts := database.Options{}
	if cfg.Database.LogSQL {
		opts.LogLevel = logger.Info
	}
	if auditor != nil {
		opts.Snapshotter = auditor
	}

	db, err := database.NewDatabase(cfg.Database.Path, cfg.Database.SchemaVersion, opts)
	if err != nil {
		return nil, err
	}
	log.Printf("Serving word list from %s", db.Path())
	return db, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Wordlist v%s", version)

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)
	}

	auditor := NewAuditor(cfg)

	db, err := OpenDatabase(cfg, auditor)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	repo := words.NewRepository(db.DB)

	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewImportWordsQueue(repo))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	var resetScheduler *scheduler.ResetScheduler
	var resetCtxCancel context.CancelFunc
	if cfg.Reset.Schedule != "" {
		resetScheduler, err = scheduler.NewResetScheduler(db, cfg.Reset.Schedule)
		if err != nil {
			log.Fatalf("Failed to initialize reset scheduler: %v", err)
		}

		var resetCtx context.Context
		resetCtx, resetCtxCancel = context.WithCancel(context.Background())
		if err := resetScheduler.Start(resetCtx); err != nil {
			log.Fatalf("Failed to start reset scheduler: %v", err)
		}
	}

	writeGuard := auth.NewWriteGuard(cfg.Auth.TokenHash)
	if writeGuard.IsEnabled() {
		log.Printf("API token required for write requests")
	} else {
		log.Printf("WARNING: API_TOKEN_HASH is not set. Write requests are not authenticated.")
	}

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		Store:          repo,
		Resetter:       db,
		WriteGuard:     writeGuard,
		DemoMiddleware: demoMiddleware,
		Version:        version,
	}
	// Typed nils stored in the interfaces would not compare equal to nil.
	if taskClient != nil {
		routerCfg.ImportQueue = taskClient
	}
	if auditor != nil {
		routerCfg.Snapshots = auditor
	}
	if resetScheduler != nil {
		routerCfg.ResetStatus = resetScheduler
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if resetScheduler != nil {
			resetScheduler.Stop()
			resetCtxCancel()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
