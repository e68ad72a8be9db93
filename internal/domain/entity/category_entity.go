package entity

// Category groups products. Immutable after creation.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
