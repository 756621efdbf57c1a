package echoapi

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/schedule"
)

type ConflictCheckRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	BatchID   string `json:"batch_id" validate:"required"`
}

func (r *ConflictCheckRequest) Validate(validate *validator.Validate) error {
	r.StudentID = core.CleanString(r.StudentID, true /* lower */)
	r.BatchID = core.CleanString(r.BatchID, true /* lower */)
	return validate.Struct(r)
}

// ConflictingSchedule is the wire form of a conflicting weekly schedule.
type ConflictingSchedule struct {
	Batch schedule.BatchRef `json:"batch"`
	Days  string            `json:"days"`
	Times string            `json:"times,omitempty"`
}

type ConflictCheckResponse struct {
	Conflict *ConflictingSchedule `json:"conflict"`
	Warnings schedule.Warnings    `json:"warnings,omitempty"`
}

func newConflictCheckResponse(conflict *schedule.WeeklySchedule, warns schedule.Warnings) ConflictCheckResponse {
	res := ConflictCheckResponse{Warnings: warns}
	if conflict != nil {
		res.Conflict = &ConflictingSchedule{
			Batch: conflict.Batch,
			Days:  conflict.Days.String(),
		}
		if conflict.Times != nil {
			res.Conflict.Times = conflict.Times.String()
		}
	}
	return res
}
