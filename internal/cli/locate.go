package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kilupskalvis/gitgraph/internal/models"
)

var locateCmd = &cobra.Command{
	Use:   "locate [<blob>...]",
	Short: "Find the commits and paths a blob appears under",
	Long: `Find every (commit, path) under which the given blobs appear.

By default blobs are located by walking the tree containment relation
upward to root trees. With --commit, a single commit's tree is fully
expanded instead and filtered for the blob; this is slower but scoped.
With --sample, blobs are drawn at random from the database instead of
being named on the command line.`,
	Run: runLocate,
}

var (
	locateCommit string
	locateSample int
)

func init() {
	locateCmd.Flags().StringVar(&locateCommit, "commit", "", "Expand this commit's tree instead of walking upward")
	locateCmd.Flags().IntVar(&locateSample, "sample", 0, "Locate n blobs drawn at random")
}

func runLocate(cmd *cobra.Command, args []string) {
	c := initContext()
	defer c.Close()

	var oids []models.Oid
	switch {
	case locateSample > 0:
		if len(args) > 0 {
			exitError("--sample and explicit blob oids are mutually exclusive")
		}
		var err error
		oids, err = c.Store.SampleBlobOids(locateSample)
		if err != nil {
			exitError("failed to sample blobs: %v", err)
		}
	case len(args) > 0:
		for _, arg := range args {
			oids = append(oids, parseOidArg(arg))
		}
	default:
		exitError("no blobs given; pass blob oids or --sample")
	}

	var locations []*models.BlobLocation
	if locateCommit != "" {
		commit := resolveCommitArg(c.Store, locateCommit)
		for _, oid := range oids {
			found, err := c.Store.LocateBlobInCommit(commit.Oid, oid)
			if err != nil {
				exitError("failed to locate blob %s: %v", oid, err)
			}
			locations = append(locations, found...)
		}
	} else {
		var err error
		locations, err = c.Store.LocateBlobs(oids)
		if err != nil {
			exitError("failed to locate blobs: %v", err)
		}
	}

	if len(locations) == 0 {
		fmt.Println("No locations found")
		return
	}

	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)
	for _, loc := range locations {
		yellow.Printf("%s ", loc.BlobOid.Short())
		cyan.Printf("%s ", loc.CommitOid.Short())
		fmt.Println(loc.Path)
	}
}
