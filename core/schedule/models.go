package schedule

// Status is a batch lifecycle state. Only active batches take part in
// conflict checks.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses is the canonical set of accepted batch statuses.
var Statuses = map[Status]bool{
	StatusActive:    true,
	StatusSuspended: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

func (s Status) IsActive() bool { return s == StatusActive }
func (s Status) IsValid() bool  { return Statuses[s] }

// BatchRef identifies the batch owning a schedule. It is only ever compared
// for self-exclusion; the name is carried through for reporting.
type BatchRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WeeklySchedule is a read-only projection of a batch's recurring weekly
// meeting slot, built at conflict-check time. A nil Times marks a
// day-level-only schedule whose time overlap cannot be evaluated.
type WeeklySchedule struct {
	Batch  BatchRef
	Days   DaySet
	Times  *TimeRange
	Status Status
}

// NewWeeklySchedule builds a schedule from raw batch record data.
// Malformed day names and time text resolve fail-open: the bad part is
// dropped, a warning is recorded and the schedule stays usable for
// whatever remains comparable.
func NewWeeklySchedule(ref BatchRef, days []string, timeText string, status Status, warns *Warnings) WeeklySchedule {
	sched := WeeklySchedule{Batch: ref, Status: status}

	for _, text := range days {
		day, err := ParseWeekday(text)
		if err != nil {
			warns.addf(ref, "dropping day: %v", err)
			continue
		}
		sched.Days |= NewDaySet(day)
	}

	if timeText != "" {
		times, err := ParseTimeRange(timeText)
		if err != nil {
			warns.addf(ref, "dropping time range: %v", err)
		} else {
			sched.Times = &times
		}
	}
	return sched
}
