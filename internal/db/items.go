package db

import (
	"database/sql"

	"github.com/dori/portfolio/internal/model"
)

// GetItems returns every item, orphans included
func (db *DB) GetItems() ([]model.Item, error) {
	rows, err := db.Query(`
		SELECT id, project_id, title, detail, creation_date, priority, completed
		FROM items
		ORDER BY
			completed,
			priority DESC,
			creation_date
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetItemsByProject returns the items of a single project
func (db *DB) GetItemsByProject(projectID string) ([]model.Item, error) {
	rows, err := db.Query(`
		SELECT id, project_id, title, detail, creation_date, priority, completed
		FROM items
		WHERE project_id = ?
		ORDER BY
			completed,
			priority DESC,
			creation_date
	`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// GetItem returns a single item by ID
func (db *DB) GetItem(id string) (*model.Item, error) {
	row := db.QueryRow(`
		SELECT id, project_id, title, detail, creation_date, priority, completed
		FROM items WHERE id = ?
	`, id)

	it, err := scanItemRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return it, err
}

// Helper functions

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		it, err := scanItemRow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanItemRow(s scanner) (*model.Item, error) {
	var it model.Item
	var projectID, title, detail *string
	var creationDate sql.NullTime
	var priority, completed int

	err := s.Scan(&it.ID, &projectID, &title, &detail, &creationDate, &priority, &completed)
	if err != nil {
		return nil, err
	}

	it.ProjectID = projectID
	it.Title = title
	it.Detail = detail
	it.Priority = model.Priority(priority)
	it.Completed = completed == 1
	if creationDate.Valid {
		t := creationDate.Time
		it.CreationDate = &t
	}

	return &it, nil
}

func upsertItem(tx *sql.Tx, it model.Item) error {
	var creationDate interface{}
	if it.CreationDate != nil {
		creationDate = *it.CreationDate
	}

	_, err := tx.Exec(`
		INSERT INTO items (id, project_id, title, detail, creation_date, priority, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			project_id = excluded.project_id,
			title = excluded.title,
			detail = excluded.detail,
			creation_date = excluded.creation_date,
			priority = excluded.priority,
			completed = excluded.completed
	`, it.ID, it.ProjectID, it.Title, it.Detail, creationDate, int(it.Priority), boolInt(it.Completed))
	return err
}

func deleteItem(tx *sql.Tx, id string) error {
	_, err := tx.Exec(`DELETE FROM items WHERE id = ?`, id)
	return err
}
