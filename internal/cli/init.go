package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gitgraph/internal/config"
	"github.com/kilupskalvis/gitgraph/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new gitgraph database",
	Long: `Initialize a new gitgraph database in the current directory.
This creates a .gitgraph directory holding the configuration and the
SQLite database, and applies the schema.`,
	Run: runInit,
}

var initHash string

func init() {
	initCmd.Flags().StringVar(&initHash, "hash", config.HashSHA1, "Object id hash algorithm (sha1 or sha256)")
}

func runInit(cmd *cobra.Command, args []string) {
	// Check if already initialized
	if _, err := config.FindRoot(); err == nil {
		exitError("gitgraph database already exists")
	}

	cfg, err := config.Initialize(initHash)
	if err != nil {
		exitError("failed to initialize config: %v", err)
	}

	st, err := store.New(cfg.DatabasePath())
	if err != nil {
		exitError("failed to create store: %v", err)
	}
	defer st.Close()

	if err := st.Initialize(); err != nil {
		exitError("failed to apply schema: %v", err)
	}

	oidLen, err := cfg.OidLen()
	if err != nil {
		exitError("%v", err)
	}
	if err := st.SetOidLen(oidLen); err != nil {
		exitError("failed to pin oid length: %v", err)
	}

	fmt.Printf("Initialized gitgraph database (%s, %d-byte ids)\n", cfg.HashAlgo, oidLen)
	fmt.Printf("Database: %s\n", cfg.DatabasePath())
}
