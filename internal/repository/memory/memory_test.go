package memory_test

import (
	"context"
	"testing"

	"github.com/msomdec/job-board/internal/domain"
	"github.com/msomdec/job-board/internal/repository/memory"
	"github.com/msomdec/job-board/internal/repository/repotest"
)

var _ domain.Database = (*memory.DB)(nil)

func TestBackendConformance(t *testing.T) {
	repotest.Run(t, func(t *testing.T) domain.Database {
		db := memory.New()
		if err := db.Migrate(context.Background()); err != nil {
			t.Fatalf("Migrate: %v", err)
		}
		return db
	})
}

func TestListReturnsCopies(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	s := db.Records()

	if err := s.Insert(ctx, domain.CollectionUsers, domain.RawRecord{Key: "a", Data: []byte("abc")}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	recs, err := s.List(ctx, domain.CollectionUsers)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	recs[0].Data[0] = 'X'

	got, err := s.Get(ctx, domain.CollectionUsers, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got.Data) != "abc" {
		t.Fatalf("mutating a listed record changed the stored data: %q", got.Data)
	}
}
