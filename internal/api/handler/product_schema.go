package handler

type createProductRequest struct {
	Name        string   `json:"name"        validate:"required,min=1,max=200"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	Category    string   `json:"category"    validate:"required"`
	Tags        []string `json:"tags,omitempty"`
}

type updateProductRequest struct {
	Name        *string  `json:"name,omitempty"        validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price,omitempty"       validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	InStock     *bool    `json:"in_stock,omitempty"`
}
