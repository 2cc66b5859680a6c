package servicestore_test

import (
	"testing"

	servicestore "github.com/dalemusser/clubhub/internal/app/store/services"
	"github.com/dalemusser/clubhub/internal/domain/models"
	"github.com/dalemusser/clubhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListMerged_PrimaryWinsOnCollision(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	shared := primitive.NewObjectID()
	fx.CreateService(ctx, "services", "Legacy Title", shared)
	fx.CreateService(ctx, "our_services", "Primary Title", shared)
	legacyOnly := fx.CreateService(ctx, "services", "Legacy Only", primitive.NilObjectID)
	primaryOnly := fx.CreateService(ctx, "our_services", "Primary Only", primitive.NilObjectID)

	store := servicestore.New(db)
	merged, err := store.ListMerged(ctx)
	if err != nil {
		t.Fatalf("ListMerged failed: %v", err)
	}

	if len(merged) != 3 {
		t.Fatalf("merged: got %d services, want 3", len(merged))
	}

	byID := map[primitive.ObjectID]models.Service{}
	for _, svc := range merged {
		byID[svc.ID] = svc
	}
	if got := byID[shared].Title; got != "Primary Title" {
		t.Errorf("collided service title: got %q, want %q", got, "Primary Title")
	}
	if _, ok := byID[legacyOnly.ID]; !ok {
		t.Error("legacy-only service missing from merge")
	}
	if _, ok := byID[primaryOnly.ID]; !ok {
		t.Error("primary-only service missing from merge")
	}
}

func TestGetByID_PrimaryBeforeLegacy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	shared := primitive.NewObjectID()
	fx.CreateService(ctx, "services", "Legacy Copy", shared)
	fx.CreateService(ctx, "our_services", "Primary Copy", shared)

	svc, err := servicestore.New(db).GetByID(ctx, shared)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if svc.Title != "Primary Copy" {
		t.Errorf("title: got %q, want %q", svc.Title, "Primary Copy")
	}
}

func TestCreate_WritesPrimaryOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := servicestore.New(db).Create(ctx, models.Service{
		Title:       "New Service",
		Description: "desc",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	n, err := db.Collection("services").CountDocuments(ctx, map[string]interface{}{"_id": created.ID})
	if err != nil {
		t.Fatalf("count legacy: %v", err)
	}
	if n != 0 {
		t.Error("create must not write the legacy collection")
	}
}

func TestUpdate_MigratesLegacyToPrimary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	legacy := fx.CreateService(ctx, "services", "Legacy Only", primitive.NilObjectID)
	store := servicestore.New(db)

	legacy.Title = "Updated Title"
	if err := store.Update(ctx, legacy.ID, legacy); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, legacy.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Updated Title" {
		t.Errorf("title: got %q, want %q", got.Title, "Updated Title")
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at lost during migration")
	}

	n, err := db.Collection("our_services").CountDocuments(ctx, map[string]interface{}{"_id": legacy.ID})
	if err != nil {
		t.Fatalf("count primary: %v", err)
	}
	if n != 1 {
		t.Error("updated legacy service should now exist in the primary collection")
	}
}

func TestDelete_CountsBothCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	shared := primitive.NewObjectID()
	fx.CreateService(ctx, "services", "Dup", shared)
	fx.CreateService(ctx, "our_services", "Dup", shared)

	deleted, err := servicestore.New(db).Delete(ctx, shared)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted: got %d, want 2", deleted)
	}
}
