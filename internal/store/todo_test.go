package store

import (
	"testing"
	"time"

	"github.com/mwhitaker/punchlist/internal/database"
	"github.com/mwhitaker/punchlist/internal/todo"
)

func setupTestStore(t *testing.T) *TodoStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewTodoStore(db)
}

func strPtr(s string) *string { return &s }

func TestCreateDefaults(t *testing.T) {
	s := setupTestStore(t)

	created, err := s.Create("Buy milk", nil, nil, false, nil, nil, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.Completed {
		t.Error("expected completed=false")
	}
	if created.ContractorHired {
		t.Error("expected contractor_hired=false")
	}
	if created.Cost != nil {
		t.Errorf("expected absent cost, got %d", *created.Cost)
	}
	if created.SortOrder != 0 {
		t.Errorf("first todo sort_order = %d, want 0", created.SortOrder)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	second, err := s.Create("Paint wall", nil, nil, false, nil, nil, nil)
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.SortOrder != 1 {
		t.Errorf("second todo sort_order = %d, want 1", second.SortOrder)
	}
}

func TestCreateEmptyTitle(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Create("", nil, nil, false, nil, nil, nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !todo.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	todos, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 0 {
		t.Fatalf("expected no persisted records, got %d", len(todos))
	}
}

func TestOptionalFieldsRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	cost := int64(1250)
	created, err := s.Create("Fix sink", strPtr("leaky faucet"), strPtr("under warranty"),
		true, strPtr("Bob's Plumbing"), strPtr("licensed, call ahead"), &cost)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description == nil || *got.Description != "leaky faucet" {
		t.Errorf("description = %v, want %q", got.Description, "leaky faucet")
	}
	if got.Notes == nil || *got.Notes != "under warranty" {
		t.Errorf("notes = %v, want %q", got.Notes, "under warranty")
	}
	if !got.ContractorHired {
		t.Error("expected contractor_hired=true")
	}
	if got.ContractorName == nil || *got.ContractorName != "Bob's Plumbing" {
		t.Errorf("contractor_name = %v, want %q", got.ContractorName, "Bob's Plumbing")
	}
	if got.Cost == nil || *got.Cost != 1250 {
		t.Errorf("cost = %v, want 1250", got.Cost)
	}
}

func TestAbsentFieldsStayAbsent(t *testing.T) {
	s := setupTestStore(t)

	created, err := s.Create("Bare", nil, nil, false, nil, nil, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Description != nil {
		t.Errorf("description = %q, want absent", *got.Description)
	}
	if got.Notes != nil {
		t.Errorf("notes = %q, want absent", *got.Notes)
	}
	if got.ContractorName != nil {
		t.Errorf("contractor_name = %q, want absent", *got.ContractorName)
	}
	if got.Cost != nil {
		t.Errorf("cost = %d, want absent", *got.Cost)
	}
}

func TestUpdate(t *testing.T) {
	s := setupTestStore(t)

	created, _ := s.Create("Fix sink", nil, nil, false, nil, nil, nil)
	time.Sleep(5 * time.Millisecond)

	updated, err := s.Update(created.ID, "Fix kitchen sink", strPtr("the big one"), nil, false, nil, nil, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Fix kitchen sink" {
		t.Errorf("title = %q, want %q", updated.Title, "Fix kitchen sink")
	}
	if updated.SortOrder != created.SortOrder {
		t.Errorf("update changed sort_order: %d -> %d", created.SortOrder, updated.SortOrder)
	}
	if updated.Completed != created.Completed {
		t.Error("update changed completed")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("updated_at did not advance: %v -> %v", created.UpdatedAt, updated.UpdatedAt)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestUpdateEmptyTitle(t *testing.T) {
	s := setupTestStore(t)

	created, _ := s.Create("Fix sink", nil, nil, false, nil, nil, nil)

	_, err := s.Update(created.ID, "", nil, nil, false, nil, nil, nil)
	if !todo.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestCompleteRestore(t *testing.T) {
	s := setupTestStore(t)

	created, _ := s.Create("Fix sink", strPtr("leaky"), nil, false, nil, nil, nil)
	time.Sleep(5 * time.Millisecond)

	completed, err := s.SetCompleted(created.ID, true)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !completed.Completed {
		t.Error("expected completed=true")
	}
	if !completed.UpdatedAt.After(created.UpdatedAt) {
		t.Error("complete did not advance updated_at")
	}

	// Idempotent: completing again leaves the flag unchanged.
	again, err := s.SetCompleted(created.ID, true)
	if err != nil {
		t.Fatalf("complete again: %v", err)
	}
	if !again.Completed {
		t.Error("expected completed=true after repeat")
	}

	time.Sleep(5 * time.Millisecond)
	restored, err := s.SetCompleted(created.ID, false)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Completed {
		t.Error("expected completed=false after restore")
	}
	if !restored.UpdatedAt.After(completed.UpdatedAt) {
		t.Error("restore did not advance updated_at")
	}

	// Every other field is untouched.
	if restored.Title != created.Title {
		t.Errorf("title changed: %q -> %q", created.Title, restored.Title)
	}
	if restored.Description == nil || *restored.Description != *created.Description {
		t.Errorf("description changed: %v -> %v", created.Description, restored.Description)
	}
	if restored.SortOrder != created.SortOrder {
		t.Errorf("sort_order changed: %d -> %d", created.SortOrder, restored.SortOrder)
	}
	if !restored.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at changed: %v -> %v", created.CreatedAt, restored.CreatedAt)
	}
}

func TestListOrder(t *testing.T) {
	s := setupTestStore(t)

	a, _ := s.Create("first", nil, nil, false, nil, nil, nil)
	b, _ := s.Create("second", nil, nil, false, nil, nil, nil)
	c, _ := s.Create("third", nil, nil, false, nil, nil, nil)

	// Move c to the front.
	if err := s.Reorder([]Assignment{
		{ID: c.ID, SortOrder: 0},
		{ID: a.ID, SortOrder: 1},
		{ID: b.ID, SortOrder: 2},
	}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	todos, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(todos))
	}
	want := []string{"third", "first", "second"}
	for i, w := range want {
		if todos[i].Title != w {
			t.Errorf("list[%d] = %q, want %q", i, todos[i].Title, w)
		}
	}
}

func TestReorderTwoItems(t *testing.T) {
	s := setupTestStore(t)

	a, _ := s.Create("A", nil, nil, false, nil, nil, nil)
	b, _ := s.Create("B", nil, nil, false, nil, nil, nil)

	if err := s.Reorder([]Assignment{
		{ID: a.ID, SortOrder: 0},
		{ID: b.ID, SortOrder: 1},
	}); err != nil {
		t.Fatalf("reorder: %v", err)
	}

	todos, _ := s.List()
	if todos[0].ID != a.ID || todos[1].ID != b.ID {
		t.Errorf("expected A before B, got %q then %q", todos[0].Title, todos[1].Title)
	}
}

func TestReorderEmptyID(t *testing.T) {
	s := setupTestStore(t)

	a, _ := s.Create("A", nil, nil, false, nil, nil, nil)

	err := s.Reorder([]Assignment{
		{ID: a.ID, SortOrder: 5},
		{ID: "", SortOrder: 0},
	})
	if !todo.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// The whole batch rolled back, including the valid assignment.
	got, _ := s.GetByID(a.ID)
	if got.SortOrder != 0 {
		t.Errorf("sort_order = %d, want 0 (batch should be atomic)", got.SortOrder)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := setupTestStore(t)

	created, _ := s.Create("gone soon", nil, nil, false, nil, nil, nil)

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := s.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Error("expected record gone")
	}

	// Second delete of the same id is not an error.
	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestDeleteEmptyID(t *testing.T) {
	s := setupTestStore(t)

	if err := s.Delete(""); !todo.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
