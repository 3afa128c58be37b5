package repository

// CreateItemOptions holds parameters for inserting a new Item document.
type CreateItemOptions struct {
	Name        string
	Category    string
	Condition   string
	Price       float64
	Description string
	ImageURL    string
}
