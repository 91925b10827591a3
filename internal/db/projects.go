package db

import (
	"database/sql"

	"github.com/dori/portfolio/internal/model"
)

// GetProjects returns all projects, newest first
func (db *DB) GetProjects() ([]model.Project, error) {
	rows, err := db.Query(`
		SELECT id, title, detail, color, created_date, closed
		FROM projects
		ORDER BY created_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []model.Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

// GetProject returns a single project by ID
func (db *DB) GetProject(id string) (*model.Project, error) {
	row := db.QueryRow(`
		SELECT id, title, detail, color, created_date, closed
		FROM projects WHERE id = ?
	`, id)

	p, err := scanProjectRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func scanProjectRow(s scanner) (*model.Project, error) {
	var p model.Project
	var title, detail, color *string
	var closed int

	err := s.Scan(&p.ID, &title, &detail, &color, &p.CreatedDate, &closed)
	if err != nil {
		return nil, err
	}

	p.Title = title
	p.Detail = detail
	p.Color = color
	p.Closed = closed == 1

	return &p, nil
}

func upsertProject(tx *sql.Tx, p model.Project) error {
	_, err := tx.Exec(`
		INSERT INTO projects (id, title, detail, color, created_date, closed)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			detail = excluded.detail,
			color = excluded.color,
			created_date = excluded.created_date,
			closed = excluded.closed
	`, p.ID, p.Title, p.Detail, p.Color, p.CreatedDate, boolInt(p.Closed))
	return err
}

// deleteProject removes a project; the schema cascades to its items
func deleteProject(tx *sql.Tx, id string) error {
	_, err := tx.Exec(`DELETE FROM projects WHERE id = ?`, id)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
