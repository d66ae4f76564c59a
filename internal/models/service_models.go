package models

// Ancillary service kinds. Each kind is stored in its own table.
const (
	ServiceInBody = "inbody"
	ServiceDayUse = "dayuse"
)

// AncillaryService is a one-off paid service not tied to a subscription.
type AncillaryService struct {
	ID         int64   `json:"id" db:"id"`
	Kind       string  `json:"kind"`
	ClientName string  `json:"client_name" db:"client_name"`
	Phone      string  `json:"phone" db:"phone"`
	Price      float64 `json:"price" db:"price"`
	StaffName  string  `json:"staff_name" db:"staff_name"`
	Notes      *string `json:"notes,omitempty" db:"notes"`
	CreatedAt  string  `json:"created_at" db:"created_at"`
}

// IsServiceKind reports whether kind names a known ancillary service.
func IsServiceKind(kind string) bool {
	return kind == ServiceInBody || kind == ServiceDayUse
}
