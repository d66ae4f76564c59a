package models

// Visitor is a walk-in prospect logged for follow-up. Visitors are never edited.
type Visitor struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Phone      string  `json:"phone" db:"phone"`
	Notes      *string `json:"notes,omitempty" db:"notes"`
	RecordedBy string  `json:"recorded_by" db:"recorded_by"`
	CreatedAt  string  `json:"created_at" db:"created_at"`
}

// PTClient is someone enrolled in a personal-training session package.
type PTClient struct {
	ID                int64   `json:"id" db:"id"`
	ClientCode        *string `json:"client_code,omitempty" db:"client_code"`
	ClientName        string  `json:"client_name" db:"client_name"`
	Phone             string  `json:"phone" db:"phone"`
	CoachName         string  `json:"coach_name" db:"coach_name"`
	TotalSessions     int     `json:"total_sessions" db:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions" db:"completed_sessions"`
	RemainingSessions int     `json:"remaining_sessions" db:"remaining_sessions"`
	TotalAmount       float64 `json:"total_amount" db:"total_amount"`
	PaidAmount        float64 `json:"paid_amount" db:"paid_amount"`
	RemainingAmount   float64 `json:"remaining_amount" db:"remaining_amount"`
	StartDate         string  `json:"start_date" db:"start_date"`
	EndDate           string  `json:"end_date" db:"end_date"`
	Notes             *string `json:"notes,omitempty" db:"notes"`
	CreatedAt         string  `json:"created_at" db:"created_at"`
}
