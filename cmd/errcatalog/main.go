// Command errcatalog lists the error catalog and serves it over HTTP.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "errcatalog",
		Short:         "Inspect and serve the structured error catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newListCmd(), newServeCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("errcatalog failed")
		os.Exit(1)
	}
}
