package batch

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/schedule"
)

// Batch is a recurring cohort of a course with a fixed weekly meeting slot.
type Batch struct {
	ID        string          `json:"id"`
	CourseID  string          `json:"course_id"`
	Name      string          `json:"name"`
	Days      []string        `json:"days"`       // full weekday names
	ClassTime string          `json:"class_time"` // e.g. "10:00 AM - 11:00 AM"
	Status    schedule.Status `json:"status"`
	CreatedAt time.Time       `json:"created_at"` // UTC
	UpdatedAt time.Time       `json:"updated_at"` // UTC
}

func (b Batch) Ref() schedule.BatchRef {
	return schedule.BatchRef{ID: b.ID, Name: b.Name}
}

// Schedule projects the batch record into the conflict engine's value type.
func (b Batch) Schedule(warns *schedule.Warnings) schedule.WeeklySchedule {
	return schedule.NewWeeklySchedule(b.Ref(), b.Days, b.ClassTime, b.Status, warns)
}

// NewBatch contains information needed to create a new Batch.
// Day names and the time range are validated here so malformed schedule
// data never reaches storage; the engine only stays lenient for rows that
// predate this check.
type NewBatch struct {
	CourseID  string   `json:"course_id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Days      []string `json:"days" validate:"required,min=1,dive,weekday"`
	ClassTime string   `json:"class_time" validate:"required,timerange"`
}

func (nb *NewBatch) Validate(validate *validator.Validate) error {
	nb.CourseID = core.CleanString(nb.CourseID, true /* lower */)
	nb.Name = core.CleanString(nb.Name)
	for i, day := range nb.Days {
		nb.Days[i] = core.CleanString(day)
	}
	nb.ClassTime = core.CleanString(nb.ClassTime)
	return validate.Struct(nb)
}

// UpdateBatch defines what information may be provided to modify an existing Batch.
type UpdateBatch struct {
	Name      string   `json:"name"`
	Days      []string `json:"days" validate:"omitempty,min=1,dive,weekday"`
	ClassTime string   `json:"class_time" validate:"omitempty,timerange"`
	Status    string   `json:"status" validate:"omitempty,batchstatus"`
}

func (ub *UpdateBatch) Validate(validate *validator.Validate, origBatch Batch) error {
	if name := core.CleanString(ub.Name); name != "" {
		ub.Name = name
	} else {
		ub.Name = origBatch.Name
	}
	if ub.Days == nil {
		ub.Days = origBatch.Days
	} else {
		for i, day := range ub.Days {
			ub.Days[i] = core.CleanString(day)
		}
	}
	if classTime := core.CleanString(ub.ClassTime); classTime != "" {
		ub.ClassTime = classTime
	} else {
		ub.ClassTime = origBatch.ClassTime
	}
	if status := core.CleanString(ub.Status, true /* lower */); status != "" {
		ub.Status = status
	} else {
		ub.Status = string(origBatch.Status)
	}
	return validate.Struct(ub)
}
