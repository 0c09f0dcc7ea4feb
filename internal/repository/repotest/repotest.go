// Package repotest holds the behaviour every storage backend must share.
// Backend packages call Run from their own tests.
package repotest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/msomdec/job-board/internal/domain"
)

// Run exercises the record, value and file stores of a freshly migrated
// database returned by newDB.
func Run(t *testing.T, newDB func(t *testing.T) domain.Database) {
	t.Helper()

	t.Run("EmptyCollection", func(t *testing.T) {
		db := newDB(t)
		recs, err := db.Records().List(context.Background(), domain.CollectionJobs)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(recs) != 0 {
			t.Fatalf("expected empty collection, got %d records", len(recs))
		}
	})

	t.Run("InsertKeepsOrder", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		s := db.Records()

		for _, k := range []string{"c", "a", "b"} {
			if err := s.Insert(ctx, domain.CollectionUsers, raw(k, "v-"+k)); err != nil {
				t.Fatalf("Insert %s: %v", k, err)
			}
		}
		assertKeys(t, s, domain.CollectionUsers, "c", "a", "b")
	})

	t.Run("InsertDuplicate", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		s := db.Records()

		if err := s.Insert(ctx, domain.CollectionApplications, raw("k", "1")); err != nil {
			t.Fatalf("first Insert: %v", err)
		}
		err := s.Insert(ctx, domain.CollectionApplications, raw("k", "2"))
		if !errors.Is(err, domain.ErrDuplicateKey) {
			t.Fatalf("expected ErrDuplicateKey, got %v", err)
		}
		got, err := s.Get(ctx, domain.CollectionApplications, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got.Data) != "1" {
			t.Fatalf("duplicate insert changed data to %q", got.Data)
		}
	})

	t.Run("UpsertReplacesInPlace", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		s := db.Records()

		for _, k := range []string{"a", "b", "c"} {
			if err := s.Insert(ctx, domain.CollectionUsers, raw(k, "old")); err != nil {
				t.Fatalf("Insert %s: %v", k, err)
			}
		}
		if err := s.Upsert(ctx, domain.CollectionUsers, raw("b", "new")); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
		assertKeys(t, s, domain.CollectionUsers, "a", "b", "c")

		got, err := s.Get(ctx, domain.CollectionUsers, "b")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got.Data) != "new" {
			t.Fatalf("expected updated data, got %q", got.Data)
		}
	})

	t.Run("UpsertAppendsNewKey", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		s := db.Records()

		if err := s.Insert(ctx, domain.CollectionUsers, raw("a", "1")); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if err := s.Upsert(ctx, domain.CollectionUsers, raw("z", "2")); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
		assertKeys(t, s, domain.CollectionUsers, "a", "z")
	})

	t.Run("ReplaceOverwrites", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		s := db.Records()

		if err := s.Insert(ctx, domain.CollectionJobs, raw("1", "x")); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if err := s.Replace(ctx, domain.CollectionJobs, []domain.RawRecord{raw("3", "c"), raw("2", "b")}); err != nil {
			t.Fatalf("Replace: %v", err)
		}
		assertKeys(t, s, domain.CollectionJobs, "3", "2")

		if err := s.Replace(ctx, domain.CollectionJobs, nil); err != nil {
			t.Fatalf("Replace with nothing: %v", err)
		}
		assertKeys(t, s, domain.CollectionJobs)
	})

	t.Run("CollectionsAreIsolated", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		s := db.Records()

		if err := s.Insert(ctx, domain.CollectionUsers, raw("same", "user")); err != nil {
			t.Fatalf("Insert users: %v", err)
		}
		if err := s.Insert(ctx, domain.CollectionJobs, raw("same", "job")); err != nil {
			t.Fatalf("Insert jobs with same key: %v", err)
		}
		if err := s.Replace(ctx, domain.CollectionJobs, nil); err != nil {
			t.Fatalf("Replace jobs: %v", err)
		}
		assertKeys(t, s, domain.CollectionUsers, "same")
	})

	t.Run("GetNotFound", func(t *testing.T) {
		db := newDB(t)
		_, err := db.Records().Get(context.Background(), domain.CollectionUsers, "missing")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Values", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		v := db.Values()

		if _, err := v.Get(ctx, "uploadedCV:a@example.com"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound before set, got %v", err)
		}
		if err := v.Set(ctx, "uploadedCV:a@example.com", []byte("one")); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := v.Set(ctx, "uploadedCV:a@example.com", []byte("two")); err != nil {
			t.Fatalf("Set overwrite: %v", err)
		}
		got, err := v.Get(ctx, "uploadedCV:a@example.com")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(got) != "two" {
			t.Fatalf("expected %q, got %q", "two", got)
		}
		if err := v.Delete(ctx, "uploadedCV:a@example.com"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := v.Get(ctx, "uploadedCV:a@example.com"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("Files", func(t *testing.T) {
		db := newDB(t)
		ctx := context.Background()
		f := db.Files()

		data := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff}
		if err := f.Save(ctx, "cv-uploads/1", data); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := f.Get(ctx, "cv-uploads/1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("expected %v, got %v", data, got)
		}
		if err := f.Delete(ctx, "cv-uploads/1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := f.Get(ctx, "cv-uploads/1"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})
}

func raw(key, data string) domain.RawRecord {
	return domain.RawRecord{Key: key, Data: []byte(data)}
}

func assertKeys(t *testing.T, s domain.RecordStore, c domain.CollectionName, want ...string) {
	t.Helper()
	recs, err := s.List(context.Background(), c)
	if err != nil {
		t.Fatalf("List %s: %v", c, err)
	}
	if len(recs) != len(want) {
		t.Fatalf("expected %d records in %s, got %d", len(want), c, len(recs))
	}
	for i, k := range want {
		if recs[i].Key != k {
			t.Fatalf("record %d of %s: expected key %q, got %q", i, c, k, recs[i].Key)
		}
	}
}
