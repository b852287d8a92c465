package models

// Trip represents a planned journey owned by a single user. Its date
// window bounds every destination nested beneath it.
type Trip struct {
	Base
	UserID      string   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	StartDate   DateOnly `gorm:"type:date;not null" json:"start_date"`
	EndDate     DateOnly `gorm:"type:date;not null" json:"end_date"`
	BudgetLimit float64  `gorm:"type:decimal(10,2);default:0" json:"budget_limit"`
	CoverPhoto  string   `gorm:"size:500" json:"cover_photo,omitempty"`
	IsPublic    bool     `gorm:"default:false" json:"is_public"`
	ShareToken  string   `gorm:"size:255;uniqueIndex" json:"share_token,omitempty"`

	// Relationships
	Destinations []Destination `gorm:"foreignKey:TripID" json:"destinations,omitempty"`
	Expenses     []Expense     `gorm:"foreignKey:TripID" json:"expenses,omitempty"`
}

// Contains reports whether the given range lies inside the trip window.
func (t *Trip) Contains(arrival, departure DateOnly) bool {
	return !arrival.Before(t.StartDate) && !departure.After(t.EndDate)
}
