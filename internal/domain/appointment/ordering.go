package appointment

import (
	"sort"
	"time"

	"github.com/amdeilami/alicetant/internal/models"
)

// sortKey: "2006-01-02 15:04" ordena lexicograficamente == cronologicamente.
func sortKey(ap *models.Appointment) string {
	return ap.Date + " " + ap.Time
}

// SortForDisplay applies the display ordering used by every listing:
// upcoming (future, ACTIVE) appointments first in ascending chronological
// order, then past/cancelled appointments most-recent-first.
func SortForDisplay(aps []models.Appointment, now time.Time) []models.Appointment {
	upcoming, past := Partition(aps, now)
	return append(upcoming, past...)
}

// Partition splits appointments into upcoming and past groups, each already
// sorted for display (upcoming ascending, past descending).
func Partition(aps []models.Appointment, now time.Time) (upcoming, past []models.Appointment) {
	upcoming = make([]models.Appointment, 0, len(aps))
	past = make([]models.Appointment, 0, len(aps))

	for _, ap := range aps {
		if IsUpcoming(&ap, now) {
			upcoming = append(upcoming, ap)
		} else {
			past = append(past, ap)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return sortKey(&upcoming[i]) < sortKey(&upcoming[j])
	})
	sort.SliceStable(past, func(i, j int) bool {
		return sortKey(&past[i]) > sortKey(&past[j])
	})

	return upcoming, past
}
