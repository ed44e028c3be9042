package models

import "time"

type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"index" json:"name"`
	City               string    `gorm:"size:120" json:"city"`
	State              string    `gorm:"size:120" json:"state"`
	Address            string    `gorm:"size:120" json:"address"`
	Phone              string    `gorm:"size:120" json:"phone"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	Website            string    `gorm:"size:150" json:"website"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `gorm:"type:text" json:"seeking_description"`
	Genres             string    `gorm:"size:200" json:"genres"` // comma-joined tags, stored denormalized
	Shows              []Show    `gorm:"foreignKey:VenueID" json:"shows,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Venue) TableName() string {
	return "venues"
}

// VenuePage is the detail-view context: the venue plus its shows split
// around the current time.
type VenuePage struct {
	Venue              *Venue `json:"venue"`
	UpcomingShows      []Show `json:"upcoming_shows"`
	UpcomingShowsCount int    `json:"upcoming_shows_count"`
	PastShows          []Show `json:"past_shows"`
	PastShowsCount     int    `json:"past_shows_count"`
}
