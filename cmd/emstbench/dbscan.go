package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vortessa/emst"
)

func newDBSCANCmd(configPath *string) *cobra.Command {
	var eps float64
	var coreMinSize, clusterMinSize int

	cmd := &cobra.Command{
		Use:   "dbscan <points-file>",
		Short: "Cluster a point cloud with DBSCAN",
		Args:  cobra.ExactArgs(1),
		RunE:  nil,
	}

	save, mongoURI, database, collectionName := addStoreFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(*configPath)
		if err != nil {
			return err
		}

		points, err := loadPoints(args[0])
		if err != nil {
			return err
		}

		result, err := emst.DBSCAN(points, eps, coreMinSize, clusterMinSize, cfg)
		if err != nil {
			return err
		}

		if *save {
			store, client, err := connectStore(ctx, *mongoURI, *database, *collectionName)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			run := emst.Result{
				RunID:     uuid.NewString(),
				CreatedAt: time.Now(),
				NumPoints: points.Size(),
				Clusters:  result,
			}
			if err := store.Save(ctx, run); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# saved run %s\n", run.RunID)
		}

		for c := 0; c < result.NumClusters(); c++ {
			fmt.Fprintf(cmd.OutOrStdout(), "cluster %d: %v\n", c, result.Cluster(c))
		}
		return nil
	}

	cmd.Flags().Float64Var(&eps, "eps", 1.0, "neighborhood radius")
	cmd.Flags().IntVar(&coreMinSize, "core-min-size", 4, "minimum neighbors for a core point")
	cmd.Flags().IntVar(&clusterMinSize, "cluster-min-size", 2, "minimum cluster size to report")

	return cmd
}
