// @title Wordbook API
// @description API for vocabulary books and daily study plans
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/wordbook/internal/api"
	"github.com/limbo/wordbook/internal/metrics"
	"github.com/limbo/wordbook/internal/repository"
	"github.com/limbo/wordbook/internal/scheduler"
	"github.com/limbo/wordbook/internal/service"
	"github.com/limbo/wordbook/pkg/cleanup"
	"github.com/limbo/wordbook/pkg/config"
	jwtservice "github.com/limbo/wordbook/pkg/jwt_service"
	"github.com/limbo/wordbook/pkg/password"
	"github.com/limbo/wordbook/pkg/signkey"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func init() {
	service.InitValidator()
}

const schemaTimeout = time.Second * 30

type schemaCreator interface {
	CreateSchema(ctx context.Context) error
}

func main() {
	cfg := config.New()
	setUpLogger(cfg.GetString("LOG_LEVEL"))

	key, err := signkey.Load(cfg.GetString("KEY_PATH"))
	if err != nil {
		log.Fatal("loading signing key error: ", err)
	}
	if key.Generated() {
		slog.Info("new signing key generated", slog.String("path", cfg.GetString("KEY_PATH")))
	}

	pool, err := repository.NewPool(context.Background(), &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		MaxConns: cfg.GetInt("POSTGRES_MAX_CONNS"),
	})
	if err != nil {
		log.Fatal("connecting to database error: ", err)
	}
	usersRepo := repository.NewUsersRepoWithConn(pool)
	booksRepo := repository.NewBooksRepoWithConn(pool)
	wordsRepo := repository.NewWordsRepoWithConn(pool)
	plansRepo := repository.NewDailyPlansRepoWithConn(pool)
	createSchema(pool, usersRepo, booksRepo, wordsRepo, plansRepo)

	dailyPlanService := service.NewDailyPlanService(plansRepo, wordsRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.MustRegister(reg)

	evaluation := scheduler.NewEvaluationScheduler(dailyPlanService, cfg.GetString("EVALUATION_SCHEDULE"))
	if err = evaluation.Start(); err != nil {
		log.Fatal(err)
	}
	cleanup.Register(&cleanup.Job{
		Name: "stopping evaluation scheduler",
		F: func() error {
			evaluation.Stop()
			return nil
		},
	})

	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(usersRepo, password.Default()),
		BookService:      service.NewBookService(booksRepo),
		WordService:      service.NewWordService(wordsRepo),
		DailyPlanService: dailyPlanService,
		JWTService:       jwtservice.New(key.Get()),
		TokenTTL:         cfg.GetDuration("TOKEN_TTL"),
		Gatherer:         reg,
		ShutdownTimeout:  cfg.GetDuration("SHUTDOWN_TIMEOUT"),
	})

	stopped := cleanup.CleanUpOnSignal(syscall.SIGINT, syscall.SIGTERM)
	if err = serv.Run(cfg.GetString("API_ADDRESS")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		cleanup.CleanUp()
		os.Exit(1)
	}
	// Serving stops at the first cleanup job, the rest are still running
	<-stopped
	slog.Info("server exited")
}

// createSchema creates tables in dependency order.
func createSchema(pool *pgxpool.Pool, creators ...schemaCreator) {
	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()
	for _, c := range creators {
		if err := c.CreateSchema(ctx); err != nil {
			pool.Close()
			log.Fatal("creating schema error: ", err)
		}
	}
}

func setUpLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
