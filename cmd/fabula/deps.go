package main

import (
	"fmt"
	"os"

	"github.com/fabula-app/fabula/internal/application/handlers"
	"github.com/fabula-app/fabula/internal/domain/services"
	"github.com/fabula-app/fabula/internal/infrastructure/config"
	"github.com/fabula-app/fabula/internal/infrastructure/memstore"
)

// Deps holds high-level dependencies for commands. Only handlers are
// exposed - services and the store are internal.
type Deps struct {
	Config   *config.Config
	Cards    *handlers.CardHandler
	Transfer *handlers.TransferHandler
}

// withDeps loads config, builds the session and restores the library, then
// calls the provided function. Used by read-only commands.
func withDeps(fn func(*Deps) error) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	return fn(d)
}

// withSave is withDeps for mutating commands: when fn succeeds, the library
// file is written back so the session survives the process.
func withSave(fn func(*Deps) error) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	if err := fn(d); err != nil {
		return err
	}
	return d.saveLibrary()
}

func buildDeps() (*Deps, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cards := services.NewCardService(memstore.New())
	cards.SetHistoryCapacity(cfg.History.Capacity)
	sync := services.NewSyncService(cards)
	importer := services.NewImportService(cards)
	exporter := services.NewExportService(cards)

	d := &Deps{
		Config:   cfg,
		Cards:    handlers.NewCardHandler(cards, sync),
		Transfer: handlers.NewTransferHandler(cards, importer, exporter),
	}

	data, err := os.ReadFile(cfg.Library.Path)
	if os.IsNotExist(err) {
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading library file: %w", err)
	}
	if err := d.Transfer.HandleRestore(data); err != nil {
		return nil, fmt.Errorf("restoring library %s: %w", cfg.Library.Path, err)
	}
	return d, nil
}

// saveLibrary persists the session back to the library file.
func (d *Deps) saveLibrary() error {
	data, err := d.Transfer.HandleExport()
	if err != nil {
		return fmt.Errorf("exporting library: %w", err)
	}
	return config.WriteLibrary(d.Config.Library.Path, data)
}
