// Command emstbench is a CLI wrapper around package emst: it loads a
// point cloud, runs MST or DBSCAN, and prints or persists the result.
// No business logic lives here; every computation is a call into emst.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "emstbench",
		Short:        "emstbench computes Euclidean MSTs and DBSCAN clusterings",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.AddCommand(newMSTCmd(&configPath))
	root.AddCommand(newDBSCANCmd(&configPath))
	root.AddCommand(newStoreCmd())

	return root
}
