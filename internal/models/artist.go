package models

import "time"

type Artist struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"index" json:"name"`
	City               string    `gorm:"size:120" json:"city"`
	State              string    `gorm:"size:120" json:"state"`
	Phone              string    `gorm:"size:120" json:"phone"`
	Genres             string    `gorm:"size:120" json:"genres"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	Website            string    `gorm:"size:120" json:"website"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `gorm:"type:text" json:"seeking_description"`
	Shows              []Show    `gorm:"foreignKey:ArtistID" json:"shows,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Artist) TableName() string {
	return "artists"
}

type ArtistPage struct {
	Artist             *Artist `json:"artist"`
	UpcomingShows      []Show  `json:"upcoming_shows"`
	UpcomingShowsCount int     `json:"upcoming_shows_count"`
	PastShows          []Show  `json:"past_shows"`
	PastShowsCount     int     `json:"past_shows_count"`
}
