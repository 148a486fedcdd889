package emst

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Result bundles a run's output for persistence: the MST edges, the
// DBSCAN clustering (if computed), and enough metadata to reproduce the
// run's provenance.
type Result struct {
	RunID     string         `bson:"run_id"`
	CreatedAt time.Time      `bson:"created_at"`
	NumPoints int            `bson:"num_points"`
	Edges     []WeightedEdge `bson:"edges,omitempty"`
	Clusters  *ClusterResult `bson:"clusters,omitempty"`
}

// Store persists Results to MongoDB, keyed by RunID, for retrieval by
// cmd/emstbench's `store` subcommand. A nil *Store is valid and every
// method is then a no-op, matching cache.go's optional-dependency shape.
type Store struct {
	collection *mongo.Collection
}

// NewStore wraps a MongoDB collection.
func NewStore(collection *mongo.Collection) *Store {
	return &Store{collection: collection}
}

// Save inserts or replaces a Result document by RunID.
func (s *Store) Save(ctx context.Context, result Result) error {
	if s == nil || s.collection == nil {
		return nil
	}
	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"run_id": result.RunID}, result, opts)
	return err
}

// Load retrieves a Result by RunID. Returns (Result{}, false, nil) if no
// document matches.
func (s *Store) Load(ctx context.Context, runID string) (Result, bool, error) {
	if s == nil || s.collection == nil {
		return Result{}, false, nil
	}
	var result Result
	err := s.collection.FindOne(ctx, bson.M{"run_id": runID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, err
	}
	return result, true, nil
}
