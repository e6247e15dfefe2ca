package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/config"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/domain"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/repository"
	"github.com/MarkAnthonyMontano/sis-superadmin-backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var roleFlag string
	var n int
	var withSettings bool

	flag.StringVar(&roleFlag, "role", "student", "role to seed (applicant, student, faculty, registrar)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.BoolVar(&withSettings, "settings", false, "also write the institution settings row")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	role, err := domain.ParseRole(roleFlag)
	if err != nil {
		logger.Error("invalid role flag", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to reach database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if withSettings {
		if err := seed.Settings(cfg, repo); err != nil {
			logger.Error("unable to seed settings", "error", err)
			return
		}
		logger.Info("seeded institution settings", "shortTerm", cfg.Seed.ShortTerm)
	}

	if err := seed.People(cfg, repo, role, n); err != nil {
		logger.Error("unable to seed people", "error", err)
		return
	}
}
