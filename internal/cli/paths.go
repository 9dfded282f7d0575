package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var pathsCmd = &cobra.Command{
	Use:   "paths <commit>",
	Short: "List every file reachable from a commit",
	Long: `Resolve every path reachable from a commit's root tree, printing
one "blob-oid path" line per file. Directories are traversed but not
printed.`,
	Args: cobra.ExactArgs(1),
	Run:  runPaths,
}

func runPaths(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	commit := resolveCommitArg(c.Store, args[0])

	entries, err := c.Store.PathsAtCommit(commit.Oid)
	if err != nil {
		exitError("failed to resolve paths: %v", err)
	}

	if len(entries) == 0 {
		fmt.Printf("commit %s has no files\n", commit.Oid.Short())
		return
	}

	yellow := color.New(color.FgYellow)
	for _, entry := range entries {
		yellow.Printf("%s ", entry.Oid)
		fmt.Println(entry.Path)
	}
}
