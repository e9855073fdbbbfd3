package timezone

import "time"

// All slot dates and times are stored and compared in UTC. Presentation-layer
// conversion to the viewer's local time is a frontend concern.
func Now() time.Time {
	return time.Now().UTC()
}
