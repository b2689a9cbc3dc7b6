package freshness

import (
	"Go-Pantry-Tracker/domain"
	"fmt"
	"math"
	"time"
)

const (
	day = 24 * time.Hour

	ExpiringWithinDays = 1
	WatchWithinDays    = 3
)

// DaysRemaining is the number of whole days left before exp, rounded up.
func DaysRemaining(exp, now time.Time) int {
	return int(math.Ceil(float64(exp.Sub(now)) / float64(day)))
}

// Classify maps an expiration instant to a freshness status relative to now.
// An item whose expiration instant has already passed is expired even when
// less than a day has elapsed.
func Classify(exp, now time.Time) domain.FreshnessStatus {
	if exp.Before(now) {
		return domain.StatusExpired
	}

	switch days := DaysRemaining(exp, now); {
	case days < 0:
		return domain.StatusExpired
	case days <= ExpiringWithinDays:
		return domain.StatusExpiring
	case days <= WatchWithinDays:
		return domain.StatusWatch
	default:
		return domain.StatusFresh
	}
}

// FormatQuantity renders q with two decimals unless it is a whole number of at least 10.
func FormatQuantity(q float64) string {
	if q >= 10 && q == math.Trunc(q) {
		return fmt.Sprintf("%.0f", q)
	}
	return fmt.Sprintf("%.2f", q)
}
