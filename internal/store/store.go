// Package store provides SQLite persistence for the Reski development
// server: career goals and study tracks.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store provides thread-safe SQLite operations.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new Store with the given database path.
// It initializes the schema if needed.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{db: db}

	// Run migrations
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS objetivos (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cargo TEXT NOT NULL,
			area TEXT NOT NULL,
			demanda TEXT NOT NULL,
			descricao TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS trilhas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			conteudo TEXT NOT NULL,
			status TEXT NOT NULL,
			competencia TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_trilhas_competencia ON trilhas(competencia);
	`

	_, err := s.db.Exec(schema)
	return err
}
