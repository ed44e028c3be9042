package models

// SearchMatch is one row of a name-search result. NumUpcomingShows is
// counted live at request time.
type SearchMatch struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type SearchResults struct {
	Count int           `json:"count"`
	Data  []SearchMatch `json:"data"`
}
