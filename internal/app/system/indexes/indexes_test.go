package indexes_test

import (
	"testing"

	"github.com/dalemusser/clubhub/internal/app/system/indexes"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// And be idempotent on a second run.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll second run failed: %v", err)
	}

	cur, err := db.Collection("tickets").Indexes().List(ctx)
	if err != nil {
		t.Fatalf("list ticket indexes: %v", err)
	}
	defer cur.Close(ctx)

	found := false
	for cur.Next(ctx) {
		var idx struct {
			Key bson.D `bson:"key"`
		}
		if err := cur.Decode(&idx); err != nil {
			t.Fatalf("decode index: %v", err)
		}
		for _, kv := range idx.Key {
			if kv.Key == "national_id" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a national_id index on tickets")
	}
}
