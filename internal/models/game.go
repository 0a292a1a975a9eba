package models

// Game represents a single entry in the game catalog.
// ID is assigned by the store and never changes; IsFavorite is only ever
// flipped through the favorite toggle, never through an update.
type Game struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Genre       string  `json:"genre"`
	Platform    string  `json:"platform"`
	Rating      float64 `json:"rating"`
	ReleaseDate string  `json:"releaseDate"`
	ImageURL    string  `json:"imageUrl"`
	IsFavorite  bool    `json:"isFavorite"`
}
