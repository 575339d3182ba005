package domain

import "time"

// Graph is a named workflow-graph specification persisted per user.
// The (UserID, GraphID) pair is unique within the collection; Data holds the
// serialized graph itself and is opaque to this layer.
type Graph struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	GraphID     string         `json:"graph_id"`
	Name        string         `json:"graph_name"`
	Description string         `json:"graph_description,omitempty"`
	Category    string         `json:"graph_category"`
	Tags        []string       `json:"graph_tags"`
	Data        map[string]any `json:"graph_data"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
