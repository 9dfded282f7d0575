// Package cli implements the command-line interface for gitgraph.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gitgraph/internal/config"
	"github.com/kilupskalvis/gitgraph/internal/models"
	"github.com/kilupskalvis/gitgraph/internal/store"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Store  *store.Store
}

// Close releases resources held by cmdContext
func (c *cmdContext) Close() {
	if c.Store != nil {
		c.Store.Close()
	}
}

// initContext loads config, opens the store, and applies migrations
func initContext() *cmdContext {
	cfg, err := config.Load()
	if err != nil {
		exitError("%v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to open store: %v", err)
	}

	if err := st.Initialize(); err != nil {
		st.Close()
		exitError("failed to run migrations: %v", err)
	}

	return &cmdContext{Config: cfg, Store: st}
}

// repoScope resolves a --repo flag value, falling back to the
// configured default repo.
func (c *cmdContext) repoScope(name string) *models.Repo {
	if name == "" {
		name = c.Config.DefaultRepo
	}
	if name == "" {
		exitError("no repo given; pass --repo or set default_repo in the config")
	}

	repo, err := c.Store.GetRepoByName(name)
	if err != nil {
		exitError("%v", err)
	}
	return repo
}

// resolveCommitArg turns a full or prefix hex oid argument into a commit.
func resolveCommitArg(st *store.Store, arg string) *models.Commit {
	if oid, err := models.ParseOid(arg); err == nil {
		commit, err := st.GetCommit(oid)
		if err != nil {
			exitError("%v", err)
		}
		return commit
	}

	commit, err := st.GetCommitByPrefix(arg)
	if err != nil {
		exitError("%v", err)
	}
	return commit
}

// parseOidArg parses a full hex oid argument or exits.
func parseOidArg(arg string) models.Oid {
	oid, err := models.ParseOid(arg)
	if err != nil {
		exitError("%v", err)
	}
	return oid
}

var rootCmd = &cobra.Command{
	Use:   "gitgraph",
	Short: "Git object graphs in SQLite",
	Long: `gitgraph stores a Git repository's object graph (blobs, commits,
trees, tags, refs) in a SQLite database and answers recursive
traversal queries over it: which paths a commit contains, and which
commits and paths a blob appears under.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(refCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(logCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// notFound reports whether an error is a store lookup miss.
func notFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
