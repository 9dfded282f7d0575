package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

var showCmd = &cobra.Command{
	Use:   "show <oid>",
	Short: "Show a commit or tag",
	Long:  `Show the metadata of a commit (full or prefix oid) or an annotated tag.`,
	Args:  cobra.ExactArgs(1),
	Run:   runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	// Commits first; tags need the full oid.
	commit, err := c.Store.GetCommitByPrefix(args[0])
	if err == nil {
		printCommit(commit)
		return
	}
	if !notFound(err) {
		exitError("%v", err)
	}

	if oid, perr := models.ParseOid(args[0]); perr == nil {
		tag, terr := c.Store.GetTag(oid)
		if terr == nil {
			printTag(tag)
			return
		}
		if !notFound(terr) {
			exitError("%v", terr)
		}
	}

	exitError("no commit or tag matches %s", args[0])
}

func printCommit(commit *models.Commit) {
	yellow := color.New(color.FgYellow)

	yellow.Printf("commit %s\n", commit.Oid)
	fmt.Printf("tree      %s\n", commit.TreeOid)
	for _, parent := range commit.Parents {
		fmt.Printf("parent    %s\n", parent)
	}
	fmt.Printf("author    %s <%s> %s\n", commit.Author.Name, commit.Author.Email, commit.Author.When.Format(time.RFC3339))
	fmt.Printf("committer %s <%s> %s\n", commit.Committer.Name, commit.Committer.Email, commit.Committer.When.Format(time.RFC3339))
	fmt.Printf("\n    %s\n", commit.Summary())
}

func printTag(tag *models.Tag) {
	magenta := color.New(color.FgMagenta)

	magenta.Printf("tag %s\n", tag.Oid)
	fmt.Printf("name   %s\n", tag.Name)
	fmt.Printf("target %s\n", tag.TargetOid)
	fmt.Printf("tagger %s <%s> %s\n", tag.Tagger.Name, tag.Tagger.Email, tag.Tagger.When.Format(time.RFC3339))
	if tag.Message != "" {
		fmt.Printf("\n    %s\n", tag.Message)
	}
}
