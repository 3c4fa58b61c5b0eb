package constant

const (
	RatingMin = 1
	RatingMax = 5
)
