package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"github.com/arogowski/vitalog/internal/cli"
	"github.com/arogowski/vitalog/internal/cli/entries"
	"github.com/arogowski/vitalog/internal/cli/meds"
	"github.com/arogowski/vitalog/internal/cli/report"
	"github.com/arogowski/vitalog/internal/cli/settings"
	"github.com/arogowski/vitalog/internal/cli/system"
	"github.com/arogowski/vitalog/internal/constants"
	"github.com/arogowski/vitalog/internal/errors"
	"github.com/arogowski/vitalog/internal/logger"
	"github.com/arogowski/vitalog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Data    string `help:"Data directory, or a .db file for the SQLite backend." default:"${data_path}"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init     system.InitCmd       `cmd:"" help:"Initialize vitalog storage."`
	Add      entries.AddCmd       `cmd:"" help:"Add a journal entry."`
	Edit     entries.EditCmd      `cmd:"" help:"Edit an entry (inserts when the id is unknown)."`
	Delete   entries.DeleteCmd    `cmd:"" help:"Delete an entry."`
	List     entries.ListCmd      `cmd:"" help:"List entries matching a filter."`
	Stats    report.StatsCmd      `cmd:"" help:"Summarize vitals, water and medication adherence."`
	Series   report.SeriesCmd     `cmd:"" help:"Chart metrics over a filtered view."`
	Export   report.ExportCmd     `cmd:"" help:"Export the current view as JSON."`
	Settings settings.SettingsCmd `cmd:"" help:"Show or change settings."`
	Validate system.ValidateCmd   `cmd:"" help:"Scan the collection for suspect fields."`
	Med      struct {
		Add     meds.AddCmd     `cmd:"" help:"Add a medication to the catalog."`
		List    meds.ListCmd    `cmd:"" help:"List the medication catalog."`
		Enable  meds.EnableCmd  `cmd:"" help:"Offer a medication for logging again."`
		Disable meds.DisableCmd `cmd:"" help:"Stop offering a medication."`
	} `cmd:"" help:"Manage the medication catalog."`
	Backup struct {
		Create  system.BackupCreateCmd  `cmd:"" help:"Snapshot all journal documents."`
		List    system.BackupListCmd    `cmd:"" help:"List available snapshots."`
		Restore system.BackupRestoreCmd `cmd:"" help:"Restore a snapshot."`
	} `cmd:"" help:"Manage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal health journal: blood pressure, symptoms, hydration and medication."),
		kong.UsageOnError(),
		kong.Vars{
			"version":   constants.Version,
			"data_path": constants.DefaultDataPath,
		},
	)

	dataPath, err := homedir.Expand(CLI.Data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logDir := dataPath
	if strings.HasSuffix(dataPath, ".db") {
		logDir = filepath.Dir(dataPath)
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: logDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Backend by path shape: a .db file means SQLite, anything else is the
	// flat key-value directory.
	var store storage.Provider
	if strings.HasSuffix(dataPath, ".db") {
		store = storage.NewSQLiteStore(dataPath)
	} else {
		store = storage.NewKVStore(dataPath)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	errors.Fatal(ctx.Run(appCtx))
}
