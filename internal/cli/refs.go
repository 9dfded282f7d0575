package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var refCmd = &cobra.Command{
	Use:   "ref",
	Short: "Manage refs",
	Long: `Set, resolve, list, and delete the named refs of a repo. Direct
refs point at an object oid; symbolic refs point at another ref by
name and resolve through one level of indirection.`,
}

var refRepo string

var refSetCmd = &cobra.Command{
	Use:   "set <name> <oid>",
	Short: "Point a direct ref at an object",
	Args:  cobra.ExactArgs(2),
	Run:   runRefSet,
}

var refSetSymbolicCmd = &cobra.Command{
	Use:   "set-symbolic <name> <target-ref>",
	Short: "Point a symbolic ref at another ref",
	Args:  cobra.ExactArgs(2),
	Run:   runRefSetSymbolic,
}

var refResolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "Resolve a ref to an object oid",
	Args:  cobra.ExactArgs(1),
	Run:   runRefResolve,
}

var refListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a repo's refs",
	Run:   runRefList,
}

var refDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a ref",
	Args:  cobra.ExactArgs(1),
	Run:   runRefDelete,
}

func init() {
	refCmd.PersistentFlags().StringVar(&refRepo, "repo", "", "Repo scoping the refs (defaults to default_repo)")
	refCmd.AddCommand(refSetCmd)
	refCmd.AddCommand(refSetSymbolicCmd)
	refCmd.AddCommand(refResolveCmd)
	refCmd.AddCommand(refListCmd)
	refCmd.AddCommand(refDeleteCmd)
}

func runRefSet(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	repo := c.repoScope(refRepo)
	target := parseOidArg(args[1])

	prev, err := c.Store.SetDirectRef(repo.ID, args[0], target)
	if err != nil {
		exitError("failed to set ref: %v", err)
	}

	if prev.IsZero() {
		fmt.Printf("%s -> %s\n", args[0], target.Short())
	} else {
		fmt.Printf("%s: %s -> %s\n", args[0], prev.Short(), target.Short())
	}
}

func runRefSetSymbolic(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	repo := c.repoScope(refRepo)
	if err := c.Store.SetSymbolicRef(repo.ID, args[0], args[1]); err != nil {
		exitError("failed to set symbolic ref: %v", err)
	}
	fmt.Printf("%s -> %s\n", args[0], args[1])
}

func runRefResolve(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	repo := c.repoScope(refRepo)
	oid, err := c.Store.ResolveRef(repo.ID, args[0])
	if err != nil {
		exitError("%v", err)
	}
	fmt.Println(oid)
}

func runRefList(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	repo := c.repoScope(refRepo)

	direct, err := c.Store.ListDirectRefs(repo.ID)
	if err != nil {
		exitError("failed to list refs: %v", err)
	}
	symbolic, err := c.Store.ListSymbolicRefs(repo.ID)
	if err != nil {
		exitError("failed to list refs: %v", err)
	}

	if len(direct) == 0 && len(symbolic) == 0 {
		fmt.Println("No refs yet")
		return
	}

	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)
	for _, ref := range direct {
		yellow.Printf("%s ", ref.Target.Short())
		fmt.Println(ref.Name)
	}
	for _, ref := range symbolic {
		green.Printf("-> %-8s ", ref.TargetName)
		fmt.Println(ref.Name)
	}
}

func runRefDelete(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	repo := c.repoScope(refRepo)
	if err := c.Store.DeleteRef(repo.ID, args[0]); err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Deleted ref %s\n", args[0])
}
