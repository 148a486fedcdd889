package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vortessa/emst"
)

func newMSTCmd(configPath *string) *cobra.Command {
	var k int
	var watch bool
	var showStats bool

	cmd := &cobra.Command{
		Use:   "mst <points-file>",
		Short: "Compute the Euclidean (or mutual-reachability) minimum spanning tree of a point cloud",
		Args:  cobra.ExactArgs(1),
		RunE:  nil,
	}

	save, mongoURI, database, collectionName := addStoreFlags(cmd)
	cacheAddr, cacheTTL := addCacheFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}
		if k > 0 {
			cfg.K = k
		}

		points, err := loadPoints(args[0])
		if err != nil {
			return err
		}

		cache, redisClient := connectCache(*cacheAddr, *cacheTTL)
		if redisClient != nil {
			defer redisClient.Close()
		}
		pointsetHash := emst.HashPrimitives(points)

		edges, hit, err := cache.Get(ctx, pointsetHash, cfg)
		if err != nil {
			return err
		}
		if !hit {
			edges, err = computeMST(points, cfg, watch)
			if err != nil {
				return err
			}
			if err := cache.Set(ctx, pointsetHash, cfg, edges); err != nil {
				return err
			}
		}

		if *save {
			store, client, err := connectStore(ctx, *mongoURI, *database, *collectionName)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			result := emst.Result{
				RunID:     uuid.NewString(),
				CreatedAt: time.Now(),
				NumPoints: points.Size(),
				Edges:     edges,
			}
			if err := store.Save(ctx, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# saved run %s\n", result.RunID)
		}

		return printMSTResult(cmd, edges, showStats)
	}

	cmd.Flags().IntVar(&k, "k", 0, "k for mutual-reachability metric (0 uses config default)")
	cmd.Flags().BoolVar(&watch, "watch", false, "show a live TUI of Borůvka round progress")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print edge weight summary statistics")

	return cmd
}

// computeMST runs the Borůvka driver, optionally rendering the --watch
// TUI driven by cfg.ProgressFunc.
func computeMST(points emst.Primitives, cfg emst.Config, watch bool) ([]emst.WeightedEdge, error) {
	if !watch {
		return emst.MST(points, cfg)
	}

	model := newProgressModel(points.Size())
	program := tea.NewProgram(model)
	cfg.ProgressFunc = func(round, numComponents int) {
		program.Send(progressMsg{round: round, numComponents: numComponents})
	}
	go func() {
		edges, err := emst.MST(points, cfg)
		program.Send(doneMsg{edges: edges, err: err})
	}()
	finalModel, err := program.Run()
	if err != nil {
		return nil, err
	}
	pm := finalModel.(progressModel)
	if pm.err != nil {
		return nil, pm.err
	}
	return pm.edges, nil
}

func printMSTResult(cmd *cobra.Command, edges []emst.WeightedEdge, showStats bool) error {
	for _, e := range edges {
		fmt.Fprintf(cmd.OutOrStdout(), "%d %d %g\n", e.Source, e.Target, e.Weight)
	}
	if showStats {
		stats := emst.SummarizeEdgeWeights(edges)
		fmt.Fprintf(cmd.OutOrStdout(), "# mean=%g variance=%g min=%g max=%g\n",
			stats.Mean, stats.Variance, stats.Min, stats.Max)
	}
	return nil
}
