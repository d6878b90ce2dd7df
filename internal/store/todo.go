package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitaker/punchlist/internal/model"
	"github.com/mwhitaker/punchlist/internal/todo"
)

type TodoStore struct {
	db *sql.DB
}

func NewTodoStore(db *sql.DB) *TodoStore {
	return &TodoStore{db: db}
}

const todoCols = `id, title, description, notes, contractor_hired, contractor_name, contractor_details, cost, completed, sort_order, created_at, updated_at`

func scanTodo(scanner interface{ Scan(...any) error }) (*model.Todo, error) {
	var t model.Todo
	var description, notes, contractorName, contractorDetails sql.NullString
	var cost sql.NullInt64
	var hired, completed int

	err := scanner.Scan(
		&t.ID, &t.Title, &description, &notes, &hired, &contractorName,
		&contractorDetails, &cost, &completed, &t.SortOrder, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.ContractorHired = hired != 0
	t.Completed = completed != 0
	if description.Valid {
		t.Description = &description.String
	}
	if notes.Valid {
		t.Notes = &notes.String
	}
	if contractorName.Valid {
		t.ContractorName = &contractorName.String
	}
	if contractorDetails.Valid {
		t.ContractorDetails = &contractorDetails.String
	}
	if cost.Valid {
		t.Cost = &cost.Int64
	}
	return &t, nil
}

func nullStr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// List returns every todo ordered by sort_order ascending, ties broken by
// insertion time.
func (s *TodoStore) List() ([]model.Todo, error) {
	rows, err := s.db.Query(`SELECT ` + todoCols + ` FROM todos ORDER BY sort_order ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, *t)
	}
	return todos, rows.Err()
}

// GetByID returns (nil, nil) when no row matches.
func (s *TodoStore) GetByID(id string) (*model.Todo, error) {
	row := s.db.QueryRow(`SELECT `+todoCols+` FROM todos WHERE id = ?`, id)
	t, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get todo: %w", err)
	}
	return t, nil
}

// Create inserts a new todo at the end of the list: sort_order is one past
// the current maximum, or 0 for an empty table.
func (s *TodoStore) Create(title string, description, notes *string, contractorHired bool, contractorName, contractorDetails *string, cost *int64) (*model.Todo, error) {
	if title == "" {
		return nil, &todo.ValidationError{Field: "title", Reason: "is required"}
	}

	var maxOrder int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(sort_order), -1) FROM todos`).Scan(&maxOrder)
	if err != nil {
		return nil, fmt.Errorf("query max sort_order: %w", err)
	}

	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.db.Exec(
		`INSERT INTO todos (id, title, description, notes, contractor_hired, contractor_name, contractor_details, cost, completed, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)`,
		id, title, nullStr(description), nullStr(notes), boolToInt(contractorHired),
		nullStr(contractorName), nullStr(contractorDetails), nullInt(cost), maxOrder+1, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	return s.GetByID(id)
}

// Update rewrites the editable fields and refreshes updated_at. It never
// touches sort_order or completed.
func (s *TodoStore) Update(id, title string, description, notes *string, contractorHired bool, contractorName, contractorDetails *string, cost *int64) (*model.Todo, error) {
	if id == "" {
		return nil, &todo.ValidationError{Field: "id", Reason: "is required"}
	}
	if title == "" {
		return nil, &todo.ValidationError{Field: "title", Reason: "is required"}
	}

	_, err := s.db.Exec(
		`UPDATE todos SET title = ?, description = ?, notes = ?, contractor_hired = ?, contractor_name = ?, contractor_details = ?, cost = ?, updated_at = ? WHERE id = ?`,
		title, nullStr(description), nullStr(notes), boolToInt(contractorHired),
		nullStr(contractorName), nullStr(contractorDetails), nullInt(cost), time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return s.GetByID(id)
}

// SetCompleted marks a todo complete or restores it. Idempotent: repeating
// the same call only moves updated_at forward.
func (s *TodoStore) SetCompleted(id string, completed bool) (*model.Todo, error) {
	if id == "" {
		return nil, &todo.ValidationError{Field: "id", Reason: "is required"}
	}

	_, err := s.db.Exec(
		`UPDATE todos SET completed = ?, updated_at = ? WHERE id = ?`,
		boolToInt(completed), time.Now().UTC(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("set completed: %w", err)
	}
	return s.GetByID(id)
}

// Delete removes a todo permanently. Deleting an id that no longer exists
// is not an error.
func (s *TodoStore) Delete(id string) error {
	if id == "" {
		return &todo.ValidationError{Field: "id", Reason: "is required"}
	}
	_, err := s.db.Exec(`DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

// Assignment pairs a todo id with its new position.
type Assignment struct {
	ID        string `json:"id"`
	SortOrder int    `json:"sort_order"`
}

// Reorder applies a batch of sort_order assignments in a single
// transaction: either the whole batch commits or none of it does.
func (s *TodoStore) Reorder(assignments []Assignment) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`UPDATE todos SET sort_order = ?, updated_at = ? WHERE id = ?`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, a := range assignments {
		if a.ID == "" {
			return &todo.ValidationError{Field: "id", Reason: "is required"}
		}
		if _, err := stmt.Exec(a.SortOrder, now, a.ID); err != nil {
			return fmt.Errorf("update sort order for id %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
