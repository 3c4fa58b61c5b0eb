package model

// PlaceEntity represents the place table entity
type PlaceEntity struct {
	ID       uint64 `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Address  string `db:"address" json:"address"`
	Category string `db:"category" json:"category"`
}

// PlaceSearchFilter narrows the place search. Name and Category are ignored
// when empty; MinRating applies only when HasMinRating is set.
type PlaceSearchFilter struct {
	Name         string
	Category     string
	MinRating    float64
	HasMinRating bool
}

// PlaceListItem is one search result row with its review aggregate.
type PlaceListItem struct {
	ID            uint64  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Address       string  `db:"address" json:"address"`
	Category      string  `db:"category" json:"category"`
	AverageRating float64 `db:"average_rating" json:"average_rating"`
	ReviewCount   int64   `db:"review_count" json:"review_count"`
}

type PlaceSearchResponse struct {
	Items []PlaceListItem `json:"items"`
}

// PlaceDetail is the single-place view with its ordered reviews.
type PlaceDetail struct {
	ID            uint64           `json:"id"`
	Name          string           `json:"name"`
	Address       string           `json:"address"`
	Category      string           `json:"category"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
	Reviews       []ReviewResponse `json:"reviews"`
}
