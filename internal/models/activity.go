package models

// Activity is a bookable item attached to a destination. TimeSlot is a
// bare clock time (HH:MM) with no date association; it is never validated
// against the destination's arrival/departure range.
type Activity struct {
	Base
	DestinationID string  `gorm:"type:uuid;not null;index" json:"destination_id"`
	Name          string  `gorm:"size:255;not null" json:"name"`
	Category      string  `gorm:"size:100;not null" json:"category"`
	Cost          float64 `gorm:"type:decimal(10,2);default:0" json:"cost"`
	TimeSlot      *string `gorm:"type:time" json:"time_slot,omitempty"`
	IsBooked      bool    `gorm:"default:false" json:"is_booked"`

	// Relationships
	Destination *Destination `gorm:"foreignKey:DestinationID" json:"destination,omitempty"`
}
