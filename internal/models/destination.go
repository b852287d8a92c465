package models

// Destination is a city stop within a trip. Its stay must nest inside the
// owning trip's date window. OrderIndex sorts destinations for itinerary
// display; it is a sort hint, not a uniqueness constraint, and is only
// guaranteed dense (0..n-1) immediately after a reorder.
type Destination struct {
	Base
	TripID        string   `gorm:"type:uuid;not null;index" json:"trip_id"`
	CityName      string   `gorm:"size:255;not null" json:"city_name"`
	Country       string   `gorm:"size:255;not null" json:"country"`
	ArrivalDate   DateOnly `gorm:"type:date;not null" json:"arrival_date"`
	DepartureDate DateOnly `gorm:"type:date;not null" json:"departure_date"`
	OrderIndex    int      `gorm:"not null;default:0" json:"order_index"`

	// Relationships
	Trip       *Trip      `gorm:"foreignKey:TripID" json:"trip,omitempty"`
	Activities []Activity `gorm:"foreignKey:DestinationID" json:"activities,omitempty"`
}
