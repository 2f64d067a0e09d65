package api

import (
	"strings"

	"sweet-shop/internal/model"
)

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" validate:"required" example:"alice"`
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	IsAdmin  Flag   `json:"isAdmin" swaggertype:"boolean" example:"false"`
}

// Normalize trims whitespace and lower-cases the email.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// swagger:model api.CreateSweetRequest
type CreateSweetRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100" example:"Dark Chocolate Truffle Box"`
	Category    string   `json:"category" validate:"required,sweetcategory" example:"Chocolate"`
	Price       *float64 `json:"price" validate:"required,gte=0" example:"24.5"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0,lte=9007199254740991" example:"40"`
	Description string   `json:"description" validate:"max=500" example:"Rich 70% cacao truffles"`
	ImageURL    string   `json:"imageUrl" example:"https://via.placeholder.com/150"`
}

func (r *CreateSweetRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

// Sweet builds the record to insert.
func (r *CreateSweetRequest) Sweet() *model.Sweet {
	s := &model.Sweet{
		Name:        r.Name,
		Category:    model.Category(r.Category),
		Description: r.Description,
		ImageURL:    r.ImageURL,
	}
	if r.Price != nil {
		s.Price = *r.Price
	}
	if r.Quantity != nil {
		s.Quantity = *r.Quantity
	}
	if s.ImageURL == "" {
		s.ImageURL = model.DefaultImageURL
	}
	return s
}

// UpdateSweetRequest is a partial update. Only fields present in the body
// are validated and written.
// swagger:model api.UpdateSweetRequest
type UpdateSweetRequest struct {
	Name        Optional[string]  `json:"name" swaggertype:"string" example:"Milk Chocolate Bar"`
	Category    Optional[string]  `json:"category" swaggertype:"string" example:"Chocolate"`
	Price       Optional[float64] `json:"price" swaggertype:"number" example:"3.5"`
	Quantity    Optional[int]     `json:"quantity" swaggertype:"integer" example:"10"`
	Description Optional[string]  `json:"description" swaggertype:"string" example:""`
	ImageURL    Optional[string]  `json:"imageUrl" swaggertype:"string" example:""`
}

// sweetFields carries the provided update values through the validator
// with the same rules as create.
type sweetFields struct {
	Name        *string  `validate:"omitnil,min=2,max=100"`
	Category    *string  `validate:"omitnil,sweetcategory"`
	Price       *float64 `validate:"omitnil,gte=0"`
	Quantity    *int     `validate:"omitnil,gte=0,lte=9007199254740991"`
	Description *string  `validate:"omitnil,max=500"`
}

func (r *UpdateSweetRequest) Normalize() {
	if r.Name.Set {
		r.Name.Value = strings.TrimSpace(r.Name.Value)
	}
	if r.Description.Set {
		r.Description.Value = strings.TrimSpace(r.Description.Value)
	}
	if r.ImageURL.Set {
		r.ImageURL.Value = strings.TrimSpace(r.ImageURL.Value)
	}
}

// Empty reports whether no field was provided.
func (r *UpdateSweetRequest) Empty() bool {
	return !r.Name.Set && !r.Category.Set && !r.Price.Set &&
		!r.Quantity.Set && !r.Description.Set && !r.ImageURL.Set
}

func (r *UpdateSweetRequest) fields() *sweetFields {
	return &sweetFields{
		Name:        r.Name.Ptr(),
		Category:    r.Category.Ptr(),
		Price:       r.Price.Ptr(),
		Quantity:    r.Quantity.Ptr(),
		Description: r.Description.Ptr(),
	}
}

// QuantityRequest has no upper bound: an oversized purchase is reported as
// insufficient stock and an oversized restock as a stock limit by the store.
// swagger:model api.QuantityRequest
type QuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=1" example:"1"`
}
