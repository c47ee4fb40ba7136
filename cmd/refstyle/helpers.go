package main

import (
	"os"

	"github.com/mhoffert/refstyle/internal/citation"
	"github.com/mhoffert/refstyle/internal/config"
	"github.com/mhoffert/refstyle/internal/reference"
	"github.com/mhoffert/refstyle/internal/storage"
	"github.com/mhoffert/refstyle/internal/style"
)

// mustFindRepo locates the enclosing repository or exits.
func mustFindRepo() string {
	root, exitCode := getRepoRoot()
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	repoRoot, err := config.FindRepository(root)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return repoRoot
}

// mustOpenDB opens the repository database or exits.
func mustOpenDB(repoRoot string) *storage.DB {
	db, err := storage.Open(config.DBPath(repoRoot))
	if err != nil {
		exitWithError(ExitError, "opening database: %v", err)
	}
	return db
}

// mustLoadStyles loads the style table, preferring the repository's
// styles.json, then the global styles_path, then the built-in table.
func mustLoadStyles(repoRoot string) *style.Config {
	path := config.StylesPath(repoRoot)
	if _, err := os.Stat(path); err != nil {
		if global := config.GetStylesPath(); global != "" {
			path = global
		}
	}

	cfg, err := style.Load(path)
	if err != nil {
		exitWithError(ExitConfigError, "loading styles: %v", err)
	}
	return cfg
}

// mustEngine builds a citation engine for the repository or exits.
func mustEngine(repoRoot string) *citation.Engine {
	return citation.NewEngine(mustLoadStyles(repoRoot))
}

// mustGetRecord fetches a record by key or exits.
func mustGetRecord(db *storage.DB, key string) *reference.Record {
	rec, err := db.GetByKey(key)
	if err != nil {
		exitWithError(ExitError, "getting reference: %v", err)
	}
	if rec == nil {
		exitWithError(ExitError, "reference not found: %s", key)
	}
	return rec
}

// mustLoadRepoConfig loads repository config or exits.
func mustLoadRepoConfig(repoRoot string) *config.Config {
	cfg, err := config.Load(repoRoot)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}
