package models

// Expense is a cost entry recorded directly against a trip, independent of
// any destination. Its date is not required to fall inside the trip window.
type Expense struct {
	Base
	TripID      string   `gorm:"type:uuid;not null;index" json:"trip_id"`
	Category    string   `gorm:"size:100;not null" json:"category"`
	Amount      float64  `gorm:"type:decimal(10,2);not null" json:"amount"`
	Date        DateOnly `gorm:"type:date;not null" json:"date"`
	Description string   `gorm:"size:500" json:"description,omitempty"`
}
