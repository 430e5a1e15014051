package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	openai "todo-backend/internal/llm/openai"
	"todo-backend/internal/priority"
	"todo-backend/internal/services/health"
	"todo-backend/internal/shared/config"
	"todo-backend/internal/shared/server"
	"todo-backend/internal/shared/storage/db"
	"todo-backend/internal/tasks"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	TasksRepo       tasks.TasksRepo
	PriorityService *priority.Service
	TasksService    *tasks.Service
	TasksHandler    *tasks.Handler
	Health          *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		TaskHandler: app.TasksHandler,
		Health:      app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			_ = sqlDB.Close()
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	var repo tasks.TasksRepo
	if app.DB != nil {
		repo = &tasks.PGRepo{DB: app.DB}
	} else {
		repo = tasks.NewMemoryRepo()
	}

	suggester, suggesterMode := buildSuggester(app.Config)
	prioritySvc := priority.NewService(suggester)

	app.TasksRepo = repo
	app.PriorityService = prioritySvc
	app.TasksService = &tasks.Service{Repo: repo, Priority: prioritySvc}
	app.TasksHandler = tasks.NewHandler(app.TasksService)
	app.Health = &health.Service{DB: app.DB, Suggester: suggesterMode}
}

// buildSuggester picks the classifier: the remote adapter when an OpenAI key
// is configured, the keyword heuristic otherwise.
func buildSuggester(cfg config.Config) (priority.Suggester, string) {
	if cfg.LLMProvider != "openai" {
		return priority.Heuristic{}, "heuristic"
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		return priority.Heuristic{}, "heuristic"
	}
	client, err := openai.NewClient(apiKey, cfg.LLMModel)
	if err != nil {
		log.Printf("bootstrap: openai client unavailable; using heuristic classifier: %v", err)
		return priority.Heuristic{}, "heuristic"
	}
	return priority.NewRemote(client, 0), "remote"
}
