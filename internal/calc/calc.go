// Package calc holds every value the application derives instead of storing:
// subscription end dates, outstanding balances, and expiry status. Views and
// services call these helpers so a member reads the same everywhere.
package calc

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gym_club_backend/internal/models"
)

// DateLayout is the storage and wire format of calendar dates.
const DateLayout = "2006-01-02"

// NearExpiryDays is the warning threshold for subscriptions about to end.
const NearExpiryDays = 7

// MonthsFor returns how many calendar months a subscription type covers.
// Unknown types count as one month.
func MonthsFor(subscriptionType string) int {
	switch strings.ToLower(strings.TrimSpace(subscriptionType)) {
	case models.SubscriptionQuarterly:
		return 3
	case models.SubscriptionSemiannual:
		return 6
	case models.SubscriptionAnnual:
		return 12
	default:
		return 1
	}
}

// EndDate adds the subscription length to start. Day overflow normalizes the
// same way time.AddDate does (Jan 31 + 1 month = Mar 3).
func EndDate(start time.Time, subscriptionType string) time.Time {
	return start.AddDate(0, MonthsFor(subscriptionType), 0)
}

// EndDateString is EndDate over YYYY-MM-DD strings.
func EndDateString(start, subscriptionType string) (string, error) {
	t, err := ParseDate(start)
	if err != nil {
		return "", err
	}
	return FormatDate(EndDate(t, subscriptionType)), nil
}

// Remaining is the unpaid part of a total.
func Remaining(total, paid float64) float64 {
	return total - paid
}

// RemainingSessions is the number of sessions still to be delivered.
func RemainingSessions(total, completed int) int {
	return total - completed
}

// ParseDate parses a YYYY-MM-DD date in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// dateOnly drops the time of day, keeping the calendar date in t's location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsExpired reports whether the subscription ended before today's date.
// Time of day is ignored on both sides.
func IsExpired(end, now time.Time) bool {
	return dateOnly(end).Before(dateOnly(now))
}

// DaysLeft counts whole calendar days from today to end. It is zero on the
// last day and negative once expired.
func DaysLeft(end, now time.Time) int {
	diff := dateOnly(end).Sub(dateOnly(now)).Hours() / 24
	return int(math.Ceil(diff))
}

// NearExpiry reports an active subscription within the warning threshold.
func NearExpiry(end, now time.Time) bool {
	return !IsExpired(end, now) && DaysLeft(end, now) <= NearExpiryDays
}

// Status classifies a subscription end date against now.
func Status(end, now time.Time) string {
	switch {
	case IsExpired(end, now):
		return models.StatusExpired
	case NearExpiry(end, now):
		return models.StatusNearExpiry
	default:
		return models.StatusActive
	}
}

// View attaches the derived status fields to a member. A member whose end
// date cannot be parsed is reported as expired so it is never silently active.
func View(m models.Member, now time.Time) models.MemberView {
	end, err := ParseDate(m.SubscriptionEnd)
	if err != nil {
		return models.MemberView{Member: m, Status: models.StatusExpired, Expired: true}
	}
	return models.MemberView{
		Member:     m,
		Status:     Status(end, now),
		Expired:    IsExpired(end, now),
		NearExpiry: NearExpiry(end, now),
		DaysLeft:   DaysLeft(end, now),
	}
}

// Views maps View over a slice.
func Views(members []models.Member, now time.Time) []models.MemberView {
	out := make([]models.MemberView, 0, len(members))
	for _, m := range members {
		out = append(out, View(m, now))
	}
	return out
}

// SameDay reports whether an RFC3339 timestamp falls on now's local date.
func SameDay(timestamp string, now time.Time) bool {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return false
	}
	ty, tm, td := t.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ty == ny && tm == nm && td == nd
}

// InDateRange reports whether an RFC3339 timestamp's local date lies within
// [from, to]. Empty bounds are open.
func InDateRange(timestamp, from, to string, loc *time.Location) bool {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return false
	}
	day := t.In(loc).Format(DateLayout)
	if from != "" && day < from {
		return false
	}
	if to != "" && day > to {
		return false
	}
	return true
}
