package appointment

import (
	"time"

	"github.com/amdeilami/alicetant/internal/models"
)

const DefaultSlotMinutes = 30

type TimeSlot struct {
	Time string `json:"time"`
}

// OpenSlots expande as janelas de disponibilidade do dia em slots discretos
// e remove os que já têm agendamento ACTIVE. booked contém os horários
// ("15:04") ocupados na data consultada.
func OpenSlots(
	windows []models.Availability,
	booked map[string]bool,
	date time.Time,
	slotMinutes int,
) []TimeSlot {

	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	step := time.Duration(slotMinutes) * time.Minute
	weekday := int(date.Weekday())

	slots := []TimeSlot{}

	for _, w := range windows {
		if w.DayOfWeek != weekday {
			continue
		}

		start, err1 := time.Parse(TimeLayout, w.StartTime)
		end, err2 := time.Parse(TimeLayout, w.EndTime)
		if err1 != nil || err2 != nil || !end.After(start) {
			continue
		}

		for cur := start; !cur.Add(step).After(end); cur = cur.Add(step) {
			hm := cur.Format(TimeLayout)
			if booked[hm] {
				continue
			}
			slots = append(slots, TimeSlot{Time: hm})
		}
	}

	return slots
}
