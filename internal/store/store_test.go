package store

import (
	"errors"
	"testing"
)

type testRecord struct {
	ID   string
	Name string
}

func newTestCollection() *Collection[testRecord] {
	return NewCollection(func(r *testRecord) *string { return &r.ID })
}

func TestInsertAssignsID(t *testing.T) {
	c := newTestCollection()

	stored := c.Insert(testRecord{Name: "first"})
	if stored.ID == "" {
		t.Fatal("expected generated id")
	}

	got, err := c.Get(stored.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "first" {
		t.Fatalf("expected first, got %s", got.Name)
	}
}

func TestInsertKeepsProvidedID(t *testing.T) {
	c := newTestCollection()

	stored := c.Insert(testRecord{ID: "fixed", Name: "first"})
	if stored.ID != "fixed" {
		t.Fatalf("expected fixed id, got %s", stored.ID)
	}
}

func TestInsertIDsAreUnique(t *testing.T) {
	c := newTestCollection()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		stored := c.Insert(testRecord{Name: "r"})
		if seen[stored.ID] {
			t.Fatalf("duplicate id %s", stored.ID)
		}
		seen[stored.ID] = true
	}
}

func TestUpdateReplacesWholeRecord(t *testing.T) {
	c := newTestCollection()
	stored := c.Insert(testRecord{Name: "before"})

	updated, err := c.Update(stored.ID, testRecord{ID: "ignored", Name: "after"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != stored.ID {
		t.Fatalf("expected stored id to win, got %s", updated.ID)
	}
	if updated.Name != "after" {
		t.Fatalf("expected after, got %s", updated.Name)
	}
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	c := newTestCollection()

	_, err := c.Update("missing", testRecord{Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMutate(t *testing.T) {
	c := newTestCollection()
	stored := c.Insert(testRecord{Name: "before"})

	mutated, err := c.Mutate(stored.ID, func(r *testRecord) { r.Name = "after" })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mutated.Name != "after" {
		t.Fatalf("expected after, got %s", mutated.Name)
	}

	if _, err := c.Mutate("missing", func(r *testRecord) {}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListInsertionOrderAndPredicates(t *testing.T) {
	c := newTestCollection()
	c.Insert(testRecord{Name: "a"})
	c.Insert(testRecord{Name: "b"})
	c.Insert(testRecord{Name: "a"})

	all := c.List()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].Name != "a" || all[1].Name != "b" || all[2].Name != "a" {
		t.Fatal("expected insertion order")
	}

	onlyA := c.List(func(r testRecord) bool { return r.Name == "a" })
	if len(onlyA) != 2 {
		t.Fatalf("expected 2 filtered records, got %d", len(onlyA))
	}
}
