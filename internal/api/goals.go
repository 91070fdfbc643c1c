package api

import (
	"context"
	"fmt"
	"net/http"
)

// Goal is a career objective: the position and area the user is aiming
// for, how in-demand it is, and a free-form description. Wire names match
// the service's Portuguese schema.
type Goal struct {
	ID        int    `json:"id"`
	Cargo     string `json:"cargo"`
	Area      string `json:"area"`
	Demanda   string `json:"demanda"`
	Descricao string `json:"descricao"`
}

// GoalInput is the payload for creating or updating a goal.
type GoalInput struct {
	Cargo     string `json:"cargo"`
	Area      string `json:"area"`
	Demanda   string `json:"demanda"`
	Descricao string `json:"descricao"`
}

const goalsPath = "/objetivos"

// ListGoals returns a page of goals, served from the query cache when a
// fresh entry exists.
func (c *Client) ListGoals(ctx context.Context, params PageParams) (*Page[Goal], error) {
	key := goalsPath[1:] + "?" + params.query().Encode()
	if v, ok := c.cache.Get(key); ok {
		return v.(*Page[Goal]), nil
	}

	var page Page[Goal]
	if err := c.get(ctx, goalsPath, params.query(), &page); err != nil {
		return nil, err
	}
	c.cache.Put(key, &page)
	return &page, nil
}

// CreateGoal creates a goal and invalidates cached goal lists.
func (c *Client) CreateGoal(ctx context.Context, in GoalInput) (*Goal, error) {
	var out Goal
	if err := c.send(ctx, http.MethodPost, goalsPath, in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(goalsPath[1:])
	return &out, nil
}

// UpdateGoal replaces the goal with the given id.
func (c *Client) UpdateGoal(ctx context.Context, id int, in GoalInput) (*Goal, error) {
	var out Goal
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("%s/%d", goalsPath, id), in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(goalsPath[1:])
	return &out, nil
}

// DeleteGoal removes the goal with the given id.
func (c *Client) DeleteGoal(ctx context.Context, id int) error {
	if err := c.send(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", goalsPath, id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(goalsPath[1:])
	return nil
}
