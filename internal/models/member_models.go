package models

// Subscription types a member can hold.
const (
	SubscriptionMonthly    = "monthly"
	SubscriptionQuarterly  = "quarterly"
	SubscriptionSemiannual = "semiannual"
	SubscriptionAnnual     = "annual"
)

// Payment types accepted at the front desk.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentWallet   = "wallet"
	PaymentTransfer = "transfer"
)

// SubscriptionTypes lists every valid subscription type.
var SubscriptionTypes = []string{SubscriptionMonthly, SubscriptionQuarterly, SubscriptionSemiannual, SubscriptionAnnual}

// PaymentTypes lists every valid payment type.
var PaymentTypes = []string{PaymentCash, PaymentCard, PaymentWallet, PaymentTransfer}

// Member is a gym subscriber with a time-bounded subscription and a payment ledger.
type Member struct {
	ID                int64   `json:"id" db:"id"`
	MemberCode        *string `json:"member_code,omitempty" db:"member_code"`
	Name              string  `json:"name" db:"name"`
	Phone             string  `json:"phone" db:"phone"`
	PhotoPath         *string `json:"photo_path,omitempty" db:"photo_path"`
	SubscriptionType  string  `json:"subscription_type" db:"subscription_type"`
	SubscriptionStart string  `json:"subscription_start" db:"subscription_start"` // YYYY-MM-DD
	SubscriptionEnd   string  `json:"subscription_end" db:"subscription_end"`     // YYYY-MM-DD
	PaymentType       string  `json:"payment_type" db:"payment_type"`
	TotalAmount       float64 `json:"total_amount" db:"total_amount"`
	PaidAmount        float64 `json:"paid_amount" db:"paid_amount"`
	RemainingAmount   float64 `json:"remaining_amount" db:"remaining_amount"`
	Notes             *string `json:"notes,omitempty" db:"notes"`
	CreatedAt         string  `json:"created_at" db:"created_at"` // RFC3339
}

// Membership status values derived at read time.
const (
	StatusActive     = "active"
	StatusNearExpiry = "near_expiry"
	StatusExpired    = "expired"
)

// MemberView is a member plus the values every screen derives from it.
type MemberView struct {
	Member
	Status     string `json:"status"`
	Expired    bool   `json:"expired"`
	NearExpiry bool   `json:"near_expiry"`
	DaysLeft   int    `json:"days_left"`
}

// LookupResult answers the quick subscription check.
type LookupResult struct {
	Found  bool        `json:"found"`
	Member *MemberView `json:"member,omitempty"`
}
