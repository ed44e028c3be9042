package models

import "time"

// Show links an artist to a venue at a start time. It carries no state
// of its own beyond the timestamp.
type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtistID  uint      `gorm:"index;not null" json:"artist_id"`
	VenueID   uint      `gorm:"index;not null" json:"venue_id"`
	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	Artist    *Artist   `gorm:"foreignKey:ArtistID" json:"artist,omitempty"`
	Venue     *Venue    `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Show) TableName() string {
	return "shows"
}
