package enrollment

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/schedule"
)

// Enrollment ties a student to a batch.
type Enrollment struct {
	ID        string          `json:"id"`
	StudentID string          `json:"student_id"`
	BatchID   string          `json:"batch_id"`
	Status    schedule.Status `json:"status"`
	CreatedAt time.Time       `json:"created_at"` // UTC
}

// NewEnrollment contains information needed to enroll a student in one batch.
// StudentEmail is optional; when present the student is notified of skipped
// enrollments.
type NewEnrollment struct {
	StudentID    string `json:"student_id" validate:"required"`
	BatchID      string `json:"batch_id" validate:"required"`
	StudentEmail string `json:"student_email" validate:"omitempty,email"`
}

func (ne *NewEnrollment) Validate(validate *validator.Validate) error {
	ne.StudentID = core.CleanString(ne.StudentID, true /* lower */)
	ne.BatchID = core.CleanString(ne.BatchID, true /* lower */)
	ne.StudentEmail = core.CleanString(ne.StudentEmail, true /* lower */)
	return validate.Struct(ne)
}

// BulkEnrollment enrolls a student in several batches at once; conflicting
// batches are skipped, not fatal.
type BulkEnrollment struct {
	StudentID    string   `json:"student_id" validate:"required"`
	BatchIDs     []string `json:"batch_ids" validate:"required,min=1,dive,required"`
	StudentEmail string   `json:"student_email" validate:"omitempty,email"`
}

func (be *BulkEnrollment) Validate(validate *validator.Validate) error {
	be.StudentID = core.CleanString(be.StudentID, true /* lower */)
	for i, id := range be.BatchIDs {
		be.BatchIDs[i] = core.CleanString(id, true /* lower */)
	}
	be.StudentEmail = core.CleanString(be.StudentEmail, true /* lower */)
	return validate.Struct(be)
}

// CourseEnrollment enrolls a student in every active batch of a course.
type CourseEnrollment struct {
	StudentID    string `json:"student_id" validate:"required"`
	CourseID     string `json:"course_id" validate:"required"`
	StudentEmail string `json:"student_email" validate:"omitempty,email"`
}

func (ce *CourseEnrollment) Validate(validate *validator.Validate) error {
	ce.StudentID = core.CleanString(ce.StudentID, true /* lower */)
	ce.CourseID = core.CleanString(ce.CourseID, true /* lower */)
	ce.StudentEmail = core.CleanString(ce.StudentEmail, true /* lower */)
	return validate.Struct(ce)
}

// SkippedBatch reports one batch left out of a bulk operation and why.
type SkippedBatch struct {
	Batch  schedule.BatchRef `json:"batch"`
	Reason string            `json:"reason"`
}

// Result is the outcome of a bulk or course enrollment.
type Result struct {
	Enrolled []Enrollment   `json:"enrolled"`
	Skipped  []SkippedBatch `json:"skipped"`
}
