package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tasks-webapi/internal/config"
	"tasks-webapi/internal/logging"
	"tasks-webapi/internal/repository"
	"tasks-webapi/internal/service"
)

type app struct {
	cfg     config.Config
	log     *logrus.Logger
	reports *service.ReportService
	close   func()
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "tasksapi",
		Short:         "Category data access for the tasks web API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file (default .env)")

	root.AddCommand(
		&cobra.Command{
			Use:   "report",
			Short: "Print the category summary once",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(envFile)
				if err != nil {
					return err
				}
				defer a.close()

				summary, err := a.reports.CategorySummary(cmd.Context(), time.Now())
				if err != nil {
					return fmt.Errorf("build report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), summary)
				return nil
			},
		},
		&cobra.Command{
			Use:   "run",
			Short: "Log the category summary on the configured schedule",
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(envFile)
				if err != nil {
					return err
				}
				defer a.close()
				return a.run(cmd.Context())
			},
		},
	)
	return root
}

func newApp(envFile string) (*app, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := repository.NewDB(cfg.DatabaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	closeDB := func() {}
	if sqlDB, err := db.DB(); err == nil {
		closeDB = func() { _ = sqlDB.Close() }
	}

	store := repository.NewDBContext(db)
	categorySvc := service.NewCategoryService(store, log)

	return &app{
		cfg:     cfg,
		log:     log,
		reports: service.NewReportService(categorySvc, store),
		close:   closeDB,
	}, nil
}

func (a *app) run(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !a.cfg.ReportsEnabled() {
		a.log.Warn("no report schedule configured, nothing to do")
		return nil
	}

	job := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		summary, err := a.reports.CategorySummary(jobCtx, time.Now())
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				a.log.WithError(err).Error("report")
			}
			return
		}
		a.log.Info(summary)
	}

	scheduler := service.NewSchedulerService(time.Local, a.log)
	if a.cfg.ReportInterval > 0 {
		if _, err := scheduler.ScheduleInterval(a.cfg.ReportInterval, job); err != nil {
			return fmt.Errorf("schedule reports: %w", err)
		}
	}
	if a.cfg.ReportDailyAt != "" {
		if _, err := scheduler.ScheduleDaily(a.cfg.ReportDailyAt, job); err != nil {
			return fmt.Errorf("schedule daily report: %w", err)
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	a.log.Infof("category reporter started with %d job(s)", scheduler.Entries())
	<-ctx.Done()
	a.log.Info("shutdown complete")
	return nil
}
