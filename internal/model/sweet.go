package model

import "time"

// DefaultImageURL is used when a sweet is created without an image.
const DefaultImageURL = "https://via.placeholder.com/150"

// MaxQuantity is the largest stock a sweet can hold: the largest integer a
// JSON number keeps exactly.
const MaxQuantity = 1<<53 - 1

type Sweet struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    Category  `db:"category" json:"category"`
	Price       float64   `db:"price" json:"price"`
	Quantity    int       `db:"quantity" json:"quantity"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// Category is one of the fixed sweet categories.
type Category string

const (
	CategoryChocolate Category = "Chocolate"
	CategoryCandy     Category = "Candy"
	CategoryGummy     Category = "Gummy"
	CategoryHardCandy Category = "Hard Candy"
	CategoryLollipop  Category = "Lollipop"
	CategoryToffee    Category = "Toffee"
	CategoryOther     Category = "Other"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryChocolate,
	CategoryCandy,
	CategoryGummy,
	CategoryHardCandy,
	CategoryLollipop,
	CategoryToffee,
	CategoryOther,
}

func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryChocolate, CategoryCandy, CategoryGummy, CategoryHardCandy,
		CategoryLollipop, CategoryToffee, CategoryOther:
		return true
	default:
		return false
	}
}
