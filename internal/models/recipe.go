package models

// Recipe is a catalog entry. It is never persisted.
type Recipe struct {
	ID        string
	Name      string
	Thumbnail string
	Category  string
}
