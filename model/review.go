package model

import "time"

// ReviewEntity represents the review table entity
type ReviewEntity struct {
	ID        uint64    `db:"id"`
	PlaceID   uint64    `db:"place_id"`
	UserID    uint64    `db:"user_id"`
	Rating    int       `db:"rating"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// AddReviewRequest submits a rating for a place, creating the place on first
// mention of its (name, address) pair.
type AddReviewRequest struct {
	PlaceName    string `json:"place_name" validate:"required"`
	PlaceAddress string `json:"place_address" validate:"required"`
	Rating       int    `json:"rating" validate:"required"`
	Text         string `json:"text"`
	Category     string `json:"category"`
}

// ReviewResponse is the review shape returned to clients, with the reviewer
// name joined in at read time.
type ReviewResponse struct {
	ID        uint64    `db:"id" json:"id"`
	Rating    int       `db:"rating" json:"rating"`
	Text      string    `db:"text" json:"text"`
	UserName  string    `db:"user_name" json:"user_name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
