package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/616xold/rehab-budd-islem/internal/bot"
	"github.com/616xold/rehab-budd-islem/internal/catalog"
	"github.com/616xold/rehab-budd-islem/internal/config"
	"github.com/616xold/rehab-budd-islem/internal/database"
	"github.com/616xold/rehab-budd-islem/internal/difficulty"
	"github.com/616xold/rehab-budd-islem/internal/excel"
	"github.com/616xold/rehab-budd-islem/internal/flow"
	"github.com/616xold/rehab-budd-islem/internal/progress"
	"github.com/616xold/rehab-budd-islem/internal/scheduler"
	"github.com/616xold/rehab-budd-islem/internal/session"
)

func main() {
	importFile := flag.String("import", "", "import exercises from an Excel or CSV file and exit")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	dsn := cfg.DatabasePath
	if cfg.DBType == "postgres" {
		dsn = cfg.DatabaseURL
	}
	if err := database.Connect(cfg.DBType, dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// The catalog table starts out seeded with the built-in routines;
	// imports can replace or extend them later.
	exercises := catalog.NewRepository()
	if err := exercises.SeedFromStatic(catalog.NewStatic()); err != nil {
		log.Fatalf("Failed to seed exercise catalog: %v", err)
	}

	if *importFile != "" {
		runImport(*importFile, exercises)
		return
	}

	progressRepo := database.NewUserProgressRepository()
	engine := difficulty.New(progressRepo)
	tracker := progress.NewTracker(progressRepo)
	resume := session.NewResumeManager(progressRepo, cfg.ResumeWindowDays)
	dialog := flow.New(exercises, engine, tracker, resume, cfg.FeedbackFrequency)

	b, err := bot.New(cfg.TelegramToken, dialog)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	var sched *scheduler.Scheduler
	if cfg.SchedulerEnabled {
		sched = scheduler.New(b)
		sched.StartHour = cfg.ReminderStartHour
		sched.EndHour = cfg.ReminderEndHour
		if cfg.ReminderMessage != "" {
			sched.Message = cfg.ReminderMessage
		}
		sched.Start()
	}

	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Infof("Received signal: %v", sig)
		if sched != nil {
			sched.Stop()
		}
		b.Stop()
		close(done)
	}()

	log.Info("Rehab Buddy started. Press Ctrl+C to stop.")
	go func() {
		if err := b.Start(); err != nil {
			log.Fatalf("Bot error: %v", err)
		}
	}()

	<-done
	log.Info("Rehab Buddy stopped successfully")
}

// runImport loads exercise content from a spreadsheet into the catalog.
func runImport(path string, repo *catalog.Repository) {
	importConfig := excel.DefaultImportConfig()
	importConfig.FilePath = path

	result, err := excel.ImportExercises(importConfig, repo)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Infof("Import finished: %d processed, %d imported, %d skipped",
		result.TotalProcessed, result.Imported, result.Skipped)
	for _, e := range result.Errors {
		log.Warn(e)
	}
}
