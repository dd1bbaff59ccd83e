package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"umlgen/internal/model"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists one parsed diagram model as a local SQLite database.
// Saves are snapshots: the previous model is replaced wholesale.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS declarations (
			name TEXT PRIMARY KEY,
			kind TEXT,
			position INTEGER,
			raw_body TEXT,
			attributes JSON,
			methods JSON
		);`,
		`CREATE TABLE IF NOT EXISTS relations (
			child TEXT,
			kind TEXT,
			target TEXT,
			position INTEGER,
			PRIMARY KEY (child, kind, target)
		);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveModel replaces the stored snapshot with the given declaration and
// relationship tables.
func (s *SQLiteStore) SaveModel(ctx context.Context, m *model.Model, rels *model.Relationships) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM declarations`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM relations`); err != nil {
		return err
	}

	declStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO declarations (name, kind, position, raw_body, attributes, methods)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer declStmt.Close()

	for i, decl := range m.Declarations() {
		attrs, err := json.Marshal(decl.Attributes)
		if err != nil {
			return err
		}
		methods, err := json.Marshal(decl.Methods)
		if err != nil {
			return err
		}
		if _, err := declStmt.ExecContext(ctx, decl.Name, string(decl.Kind), i, decl.RawBody, attrs, methods); err != nil {
			return err
		}
	}

	relStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO relations (child, kind, target, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer relStmt.Close()

	pos := 0
	if rels != nil {
		// Iterate extends in declaration order so loads are deterministic.
		for _, name := range m.Names() {
			if parent, ok := rels.Extends[name]; ok {
				if _, err := relStmt.ExecContext(ctx, name, "extends", parent, pos); err != nil {
					return err
				}
				pos++
			}
		}
		for _, name := range m.Names() {
			for _, iface := range rels.Implements[name] {
				if _, err := relStmt.ExecContext(ctx, name, "implements", iface, pos); err != nil {
					return err
				}
				pos++
			}
		}
	}

	return tx.Commit()
}

// LoadModel reads the stored snapshot back into declaration and relationship
// tables, preserving declaration order and interface first-appearance order.
func (s *SQLiteStore) LoadModel(ctx context.Context) (*model.Model, *model.Relationships, error) {
	m := model.NewModel()
	rels := model.NewRelationships()

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, kind, raw_body, attributes, methods
		FROM declarations ORDER BY position
	`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var decl model.Declaration
		var kind string
		var attrs, methods []byte
		if err := rows.Scan(&decl.Name, &kind, &decl.RawBody, &attrs, &methods); err != nil {
			return nil, nil, err
		}
		decl.Kind = model.Kind(kind)
		if err := json.Unmarshal(attrs, &decl.Attributes); err != nil {
			return nil, nil, fmt.Errorf("corrupt attributes for %s: %w", decl.Name, err)
		}
		if err := json.Unmarshal(methods, &decl.Methods); err != nil {
			return nil, nil, fmt.Errorf("corrupt methods for %s: %w", decl.Name, err)
		}
		m.Add(&decl)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	relRows, err := s.db.QueryContext(ctx, `
		SELECT child, kind, target FROM relations ORDER BY position
	`)
	if err != nil {
		return nil, nil, err
	}
	defer relRows.Close()

	for relRows.Next() {
		var child, kind, target string
		if err := relRows.Scan(&child, &kind, &target); err != nil {
			return nil, nil, err
		}
		switch kind {
		case "extends":
			rels.Extends[child] = target
		case "implements":
			rels.AddImplements(child, target)
		}
	}
	if err := relRows.Err(); err != nil {
		return nil, nil, err
	}

	return m, rels, nil
}
