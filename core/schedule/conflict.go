package schedule

import "fmt"

// Warning records why a pair of schedules could not be fully evaluated.
// The scan itself never fails: unparseable data resolves to "no conflict",
// and callers who care audit the warnings instead.
type Warning struct {
	Batch  BatchRef `json:"batch"`
	Reason string   `json:"reason"`
}

// Warnings is an optional diagnostic collector; a nil *Warnings discards.
type Warnings []Warning

func (w *Warnings) addf(ref BatchRef, format string, args ...interface{}) {
	if w == nil {
		return
	}
	*w = append(*w, Warning{Batch: ref, Reason: fmt.Sprintf(format, args...)})
}

// FindConflict scans existing schedules, in the order supplied, for the first
// one whose recurring days and time range both overlap the candidate's.
//
// Entries with the candidate's own identity or a non-active status are
// skipped. Pairs missing a comparable time range on either side are skipped
// with a warning. Returns nil when no conflict is found.
func FindConflict(candidate WeeklySchedule, existing []WeeklySchedule, warns *Warnings) *WeeklySchedule {
	if !candidate.Status.IsActive() || candidate.Days.IsEmpty() {
		return nil
	}
	for _, other := range existing {
		if conflicts(candidate, other, warns) {
			other := other
			return &other
		}
	}
	return nil
}

// FindAllConflicts is the exhaustive sibling of FindConflict, in the same
// caller-supplied order.
func FindAllConflicts(candidate WeeklySchedule, existing []WeeklySchedule, warns *Warnings) []WeeklySchedule {
	if !candidate.Status.IsActive() || candidate.Days.IsEmpty() {
		return nil
	}
	var found []WeeklySchedule
	for _, other := range existing {
		if conflicts(candidate, other, warns) {
			found = append(found, other)
		}
	}
	return found
}

func conflicts(candidate, other WeeklySchedule, warns *Warnings) bool {
	if other.Batch.ID == candidate.Batch.ID { // a batch never conflicts with itself
		return false
	}
	if !other.Status.IsActive() {
		return false
	}
	if !candidate.Days.Overlaps(other.Days) {
		return false
	}
	if candidate.Times == nil || other.Times == nil {
		warns.addf(other.Batch, "days overlap but no comparable time range; assuming no conflict")
		return false
	}
	return candidate.Times.Overlaps(*other.Times)
}
