package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage repos",
	Long:  `Add and list the named repos that scope refs in this database.`,
}

var repoAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a repo",
	Args:  cobra.ExactArgs(1),
	Run:   runRepoAdd,
}

var repoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List repos",
	Run:   runRepoList,
}

func init() {
	repoCmd.AddCommand(repoAddCmd)
	repoCmd.AddCommand(repoListCmd)
}

func runRepoAdd(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	repo, err := c.Store.CreateRepo(args[0])
	if err != nil {
		exitError("failed to add repo: %v", err)
	}

	// First repo becomes the default scope for ref commands.
	if c.Config.DefaultRepo == "" {
		c.Config.DefaultRepo = repo.Name
		if err := c.Config.Save(); err != nil {
			fmt.Printf("Warning: could not save default repo: %v\n", err)
		}
	}

	fmt.Printf("Added repo %q (id %d)\n", repo.Name, repo.ID)
}

func runRepoList(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	repos, err := c.Store.ListRepos()
	if err != nil {
		exitError("failed to list repos: %v", err)
	}

	if len(repos) == 0 {
		fmt.Println("No repos yet")
		return
	}

	green := color.New(color.FgGreen)
	for _, repo := range repos {
		if repo.Name == c.Config.DefaultRepo {
			green.Printf("* %s", repo.Name)
			fmt.Printf(" (id %d)\n", repo.ID)
		} else {
			fmt.Printf("  %s (id %d)\n", repo.Name, repo.ID)
		}
	}
}
