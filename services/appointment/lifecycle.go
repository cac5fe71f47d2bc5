// File: services/appointment/lifecycle.go
package appointment

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"praxia/models"
)

// State is the display state of one bucket.
type State string

const (
	StateUnavailable State = "unavailable" // no slot document exists for the bucket
	StateBlocked     State = "blocked"
	StateReserved    State = "reserved"
	StateAvailable   State = "available"
)

// Buckets run hourly from firstBucketHour through lastBucketHour.
const (
	firstBucketHour = 10
	lastBucketHour  = 15
	dateLayout      = "2006-01-02"
)

// DailyBuckets returns the fixed set of bucket labels offered each day.
func DailyBuckets() []string {
	buckets := make([]string, 0, lastBucketHour-firstBucketHour+1)
	for h := firstBucketHour; h <= lastBucketHour; h++ {
		buckets = append(buckets, fmt.Sprintf("%02d:00 - %02d:00", h, h+1))
	}
	return buckets
}

// ValidBucket reports whether label is one of the fixed daily buckets.
func ValidBucket(label string) bool {
	hour, err := bucketStartHour(label)
	if err != nil {
		return false
	}
	return label == fmt.Sprintf("%02d:00 - %02d:00", hour, hour+1) &&
		hour >= firstBucketHour && hour <= lastBucketHour
}

// bucketStartHour parses the starting hour out of a bucket label such as
// "10:00 - 11:00".
func bucketStartHour(label string) (int, error) {
	head, _, ok := strings.Cut(label, ":")
	if !ok {
		return 0, fmt.Errorf("malformed bucket label %q", label)
	}
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, fmt.Errorf("malformed bucket label %q: %w", label, err)
	}
	return hour, nil
}

// Classify derives the display state of a bucket from its stored slot
// document, or its absence. Blocked wins over reserved: first match only.
func Classify(slot *models.Slot) State {
	switch {
	case slot == nil:
		return StateUnavailable
	case slot.IsBlocked:
		return StateBlocked
	case slot.Reserved():
		return StateReserved
	default:
		return StateAvailable
	}
}

// IsPast reports whether the bucket's start time (date plus starting hour)
// lies strictly before now. Full timestamps are compared, so a same-day
// bucket turns past the moment its start hour elapses.
func IsPast(date, bucket string, now time.Time) bool {
	day, err := time.ParseInLocation(dateLayout, date, now.Location())
	if err != nil {
		return false
	}
	hour, err := bucketStartHour(bucket)
	if err != nil {
		return false
	}
	start := day.Add(time.Duration(hour) * time.Hour)
	return start.Before(now)
}

// VisibleSlots filters slots down to what an ordinary actor may see: only
// available buckets whose start time has not passed. Blocked, reserved and
// past buckets are omitted entirely, not rendered as disabled.
func VisibleSlots(slots []models.Slot, now time.Time) []models.Slot {
	visible := make([]models.Slot, 0, len(slots))
	for i := range slots {
		s := slots[i]
		if Classify(&s) != StateAvailable {
			continue
		}
		if IsPast(s.Date, s.TimeSlot, now) {
			continue
		}
		visible = append(visible, s)
	}
	return visible
}

// BuildDayView assembles the privileged occupancy view for one day: every
// fixed bucket appears whether or not a slot document exists, with reserved,
// blocked and past buckets marked disabled so they cannot be re-enabled.
func BuildDayView(date string, slots []models.Slot, now time.Time) models.DayView {
	byBucket := make(map[string]*models.Slot, len(slots))
	for i := range slots {
		if slots[i].Date == date {
			byBucket[slots[i].TimeSlot] = &slots[i]
		}
	}

	view := models.DayView{Date: date}
	for _, bucket := range DailyBuckets() {
		state := Classify(byBucket[bucket])
		past := IsPast(date, bucket, now)
		view.Buckets = append(view.Buckets, models.BucketView{
			TimeSlot: bucket,
			State:    string(state),
			Past:     past,
			Disabled: state == StateReserved || state == StateBlocked || past,
		})
	}
	return view
}
