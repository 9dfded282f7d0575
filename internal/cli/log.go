package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <commit>",
	Short: "Show the ancestry of a commit",
	Long:  `Display a commit and all its ancestors, newest first by commit date.`,
	Args:  cobra.ExactArgs(1),
	Run:   runLog,
}

var (
	logOneline bool
	logLimit   int
)

func init() {
	logCmd.Flags().BoolVar(&logOneline, "oneline", false, "Show each commit on a single line")
	logCmd.Flags().IntVarP(&logLimit, "n", "n", 0, "Limit the number of commits to show")
}

func runLog(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	start := resolveCommitArg(c.Store, args[0])

	commits, err := c.Store.GetAncestry(start.Oid)
	if err != nil {
		exitError("failed to walk ancestry: %v", err)
	}

	sort.SliceStable(commits, func(i, j int) bool {
		return commits[i].Committer.When.After(commits[j].Committer.When)
	})
	if logLimit > 0 && len(commits) > logLimit {
		commits = commits[:logLimit]
	}

	yellow := color.New(color.FgYellow)
	for _, commit := range commits {
		if logOneline {
			yellow.Printf("%s ", commit.Oid.Short())
			if commit.IsMerge() {
				color.New(color.FgMagenta).Print("(merge) ")
			}
			fmt.Println(commit.Summary())
			continue
		}

		yellow.Printf("commit %s\n", commit.Oid)
		fmt.Printf("Author: %s <%s>\n", commit.Author.Name, commit.Author.Email)
		fmt.Printf("Date:   %s\n", commit.Committer.When.Format("Mon Jan 2 15:04:05 2006 -0700"))
		fmt.Printf("\n    %s\n\n", commit.Summary())
	}
}
