package store

import (
	"database/sql"
	"fmt"
	"time"
)

// Goal is a stored career objective.
type Goal struct {
	ID        int
	Cargo     string
	Area      string
	Demanda   string
	Descricao string
	CreatedAt time.Time
}

// CreateGoal inserts a goal and returns it with its assigned id.
func (s *Store) CreateGoal(cargo, area, demanda, descricao string) (*Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	res, err := s.db.Exec(
		`INSERT INTO objetivos (cargo, area, demanda, descricao, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		cargo, area, demanda, descricao, now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Goal{
		ID:        int(id),
		Cargo:     cargo,
		Area:      area,
		Demanda:   demanda,
		Descricao: descricao,
		CreatedAt: now,
	}, nil
}

// GetGoal returns the goal with the given id.
func (s *Store) GetGoal(id int) (*Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var g Goal
	var createdAt int64
	err := s.db.QueryRow(
		`SELECT id, cargo, area, demanda, descricao, created_at
		 FROM objetivos WHERE id = ?`, id,
	).Scan(&g.ID, &g.Cargo, &g.Area, &g.Demanda, &g.Descricao, &createdAt)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query goal: %w", err)
	}
	g.CreatedAt = time.Unix(createdAt, 0)
	return &g, nil
}

// UpdateGoal replaces the mutable fields of the goal with the given id.
func (s *Store) UpdateGoal(id int, cargo, area, demanda, descricao string) (*Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE objetivos SET cargo = ?, area = ?, demanda = ?, descricao = ? WHERE id = ?`,
		cargo, area, demanda, descricao, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	return &Goal{ID: id, Cargo: cargo, Area: area, Demanda: demanda, Descricao: descricao}, nil
}

// DeleteGoal removes the goal with the given id.
func (s *Store) DeleteGoal(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM objetivos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
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

// ListGoals returns one page of goals ordered by id, plus the total count.
func (s *Store) ListGoals(offset, limit int, descending bool) ([]*Goal, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := "ASC"
	if descending {
		order = "DESC"
	}

	rows, err := s.db.Query(
		`SELECT id, cargo, area, demanda, descricao, created_at
		 FROM objetivos ORDER BY id `+order+` LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []*Goal
	for rows.Next() {
		var g Goal
		var createdAt int64
		if err := rows.Scan(&g.ID, &g.Cargo, &g.Area, &g.Demanda, &g.Descricao, &createdAt); err != nil {
			return nil, 0, fmt.Errorf("scan goal: %w", err)
		}
		g.CreatedAt = time.Unix(createdAt, 0)
		goals = append(goals, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM objetivos").Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count goals: %w", err)
	}
	return goals, total, nil
}
