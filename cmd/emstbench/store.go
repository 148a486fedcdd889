package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vortessa/emst"
)

// connectStore dials MongoDB and wraps the target collection in an
// emst.Store. Callers must close the returned client once done.
func connectStore(ctx context.Context, mongoURI, database, collectionName string) (*emst.Store, *mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, nil, err
	}
	store := emst.NewStore(client.Database(database).Collection(collectionName))
	return store, client, nil
}

func newStoreCmd() *cobra.Command {
	var mongoURI, database, collectionName, runID string

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Retrieve a previously persisted run by run ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, client, err := connectStore(ctx, mongoURI, database, collectionName)
			if err != nil {
				return err
			}
			defer client.Disconnect(ctx)

			result, found, err := store.Load(ctx, runID)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("emstbench: no run found with id %q", runID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d points, %d edges\n",
				result.RunID, result.NumPoints, len(result.Edges))
			return nil
		},
	}

	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringVar(&database, "database", "emst", "MongoDB database name")
	cmd.Flags().StringVar(&collectionName, "collection", "results", "MongoDB collection name")
	cmd.Flags().StringVar(&runID, "run-id", "", "run ID to retrieve")
	cmd.MarkFlagRequired("run-id")

	return cmd
}

// addStoreFlags attaches the --save/--mongo-uri/--database/--collection
// flag group shared by `mst` and `dbscan` to persist a Result under a
// freshly generated run ID.
func addStoreFlags(cmd *cobra.Command) (save *bool, mongoURI, database, collectionName *string) {
	save = cmd.Flags().Bool("save", false, "persist the result to MongoDB after computing it")
	mongoURI = cmd.Flags().String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI (with --save)")
	database = cmd.Flags().String("database", "emst", "MongoDB database name (with --save)")
	collectionName = cmd.Flags().String("collection", "results", "MongoDB collection name (with --save)")
	return
}
