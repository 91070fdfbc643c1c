package api

import (
	"context"
	"fmt"
	"net/http"
)

// Track is a study track ("trilha"): content to study, its progress
// status, and the competency it builds.
type Track struct {
	ID          int    `json:"id"`
	Conteudo    string `json:"conteudo"`
	Status      string `json:"status"`
	Competencia string `json:"competencia"`
}

// TrackInput is the payload for creating or updating a track.
type TrackInput struct {
	Conteudo    string `json:"conteudo"`
	Status      string `json:"status"`
	Competencia string `json:"competencia"`
}

const tracksPath = "/trilhas"

// ListTracks returns a page of tracks, served from the query cache when a
// fresh entry exists.
func (c *Client) ListTracks(ctx context.Context, params PageParams) (*Page[Track], error) {
	key := tracksPath[1:] + "?" + params.query().Encode()
	if v, ok := c.cache.Get(key); ok {
		return v.(*Page[Track]), nil
	}

	var page Page[Track]
	if err := c.get(ctx, tracksPath, params.query(), &page); err != nil {
		return nil, err
	}
	c.cache.Put(key, &page)
	return &page, nil
}

// CreateTrack creates a track and invalidates cached track lists.
func (c *Client) CreateTrack(ctx context.Context, in TrackInput) (*Track, error) {
	var out Track
	if err := c.send(ctx, http.MethodPost, tracksPath, in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(tracksPath[1:])
	return &out, nil
}

// UpdateTrack replaces the track with the given id.
func (c *Client) UpdateTrack(ctx context.Context, id int, in TrackInput) (*Track, error) {
	var out Track
	if err := c.send(ctx, http.MethodPut, fmt.Sprintf("%s/%d", tracksPath, id), in, &out); err != nil {
		return nil, err
	}
	c.cache.Invalidate(tracksPath[1:])
	return &out, nil
}

// DeleteTrack removes the track with the given id.
func (c *Client) DeleteTrack(ctx context.Context, id int) error {
	if err := c.send(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", tracksPath, id), nil, nil); err != nil {
		return err
	}
	c.cache.Invalidate(tracksPath[1:])
	return nil
}
