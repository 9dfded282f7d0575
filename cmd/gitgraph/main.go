// Command gitgraph inspects Git object graphs stored in SQLite.
package main

import (
	"os"

	"github.com/kilupskalvis/gitgraph/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
