package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Track is a stored study track.
type Track struct {
	ID          int
	Conteudo    string
	Status      string
	Competencia string
	CreatedAt   time.Time
}

// CreateTrack inserts a track and returns it with its assigned id.
func (s *Store) CreateTrack(conteudo, status, competencia string) (*Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	res, err := s.db.Exec(
		`INSERT INTO trilhas (conteudo, status, competencia, created_at)
		 VALUES (?, ?, ?, ?)`,
		conteudo, status, competencia, now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert track: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Track{
		ID:          int(id),
		Conteudo:    conteudo,
		Status:      status,
		Competencia: competencia,
		CreatedAt:   now,
	}, nil
}

// GetTrack returns the track with the given id.
func (s *Store) GetTrack(id int) (*Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Track
	var createdAt int64
	err := s.db.QueryRow(
		`SELECT id, conteudo, status, competencia, created_at
		 FROM trilhas WHERE id = ?`, id,
	).Scan(&t.ID, &t.Conteudo, &t.Status, &t.Competencia, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query track: %w", err)
	}
	t.CreatedAt = time.Unix(createdAt, 0)
	return &t, nil
}

// UpdateTrack replaces the mutable fields of the track with the given id.
func (s *Store) UpdateTrack(id int, conteudo, status, competencia string) (*Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE trilhas SET conteudo = ?, status = ?, competencia = ? WHERE id = ?`,
		conteudo, status, competencia, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update track: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return &Track{ID: id, Conteudo: conteudo, Status: status, Competencia: competencia}, nil
}

// DeleteTrack removes the track with the given id.
func (s *Store) DeleteTrack(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM trilhas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete track: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTracks returns one page of tracks ordered by id, plus the total count.
func (s *Store) ListTracks(offset, limit int, descending bool) ([]*Track, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := "ASC"
	if descending {
		order = "DESC"
	}

	rows, err := s.db.Query(
		`SELECT id, conteudo, status, competencia, created_at
		 FROM trilhas ORDER BY id `+order+` LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*Track
	for rows.Next() {
		var t Track
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.Conteudo, &t.Status, &t.Competencia, &createdAt); err != nil {
			return nil, 0, fmt.Errorf("scan track: %w", err)
		}
		t.CreatedAt = time.Unix(createdAt, 0)
		tracks = append(tracks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM trilhas").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tracks: %w", err)
	}
	return tracks, total, nil
}

// TracksByCompetency returns tracks whose competency matches, newest first.
// Used by the development server's assistant to back suggestions with real
// data when any exists.
func (s *Store) TracksByCompetency(competencia string) ([]*Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, conteudo, status, competencia, created_at
		 FROM trilhas WHERE competencia = ? ORDER BY id DESC`,
		competencia,
	)
	if err != nil {
		return nil, fmt.Errorf("query tracks by competency: %w", err)
	}
	defer rows.Close()

	var tracks []*Track
	for rows.Next() {
		var t Track
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.Conteudo, &t.Status, &t.Competencia, &createdAt); err != nil {
			return nil, fmt.Errorf("scan track: %w", err)
		}
		t.CreatedAt = time.Unix(createdAt, 0)
		tracks = append(tracks, &t)
	}
	return tracks, rows.Err()
}
