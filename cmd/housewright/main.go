package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/housewright/internal/advisor"
	"github.com/alexanderramin/housewright/internal/catalog"
	"github.com/alexanderramin/housewright/internal/cli"
	"github.com/alexanderramin/housewright/internal/config"
	"github.com/alexanderramin/housewright/internal/db"
	"github.com/alexanderramin/housewright/internal/llm"
	"github.com/alexanderramin/housewright/internal/planner"
	"github.com/alexanderramin/housewright/internal/render"
	"github.com/alexanderramin/housewright/internal/repository"
	"github.com/alexanderramin/housewright/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if cfg.LogCalls {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	// Wire repositories and the unit of work
	plans := repository.NewSQLitePlanRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	renderer := render.NewRunner(render.Options{
		Binary:     cfg.Render.Binary,
		Script:     cfg.Render.Script,
		Format:     cfg.Render.Format,
		Timeout:    time.Duration(cfg.Render.TimeoutMs) * time.Millisecond,
		MaxRetries: cfg.Render.MaxRetries,
	})

	// The advisor always works; the model only improves its answers.
	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls || cfg.LogCalls {
		llmObserver = llm.NewLogObserver(os.Stderr)
	}
	llmClient := llm.NewOllamaClient(llmCfg, llmObserver)

	app := &cli.App{
		Plans:   service.NewPlanService(planner.New(planner.WithCatalog(cat)), plans, uow, observers...),
		Render:  service.NewRenderService(plans, renderer, cfg.OutputDir, observers...),
		Status:  service.NewStatusService(database, plans, cat, cfg.CatalogPath, llmClient, renderer),
		Advisor: advisor.New(llmClient),
		Catalog: cat,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
