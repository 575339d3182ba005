package handler

type createGraphRequest struct {
	UserID      string         `json:"user_id"    validate:"required"`
	GraphID     string         `json:"graph_id"   validate:"required"`
	Name        string         `json:"graph_name" validate:"required,min=1,max=50"`
	Description string         `json:"graph_description,omitempty" validate:"omitempty,max=100"`
	Category    string         `json:"graph_category" validate:"required,min=8"`
	Tags        []string       `json:"graph_tags,omitempty"`
	Data        map[string]any `json:"graph_data" validate:"required"`
}

type updateGraphRequest struct {
	Name        *string        `json:"graph_name,omitempty"        validate:"omitempty,min=1,max=50"`
	Description *string        `json:"graph_description,omitempty" validate:"omitempty,max=100"`
	Category    *string        `json:"graph_category,omitempty"    validate:"omitempty,min=8"`
	Tags        []string       `json:"graph_tags,omitempty"`
	Data        map[string]any `json:"graph_data,omitempty"`
}

type setGraphRequest struct {
	Data map[string]any `json:"graph_data" validate:"required"`
}
