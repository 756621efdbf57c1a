package enrollment

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/batch"
	"github.com/trezcool/darasa/core/schedule"
)

var (
	ErrNotFound        = errors.New("enrollment not found")
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this batch")
	ErrBatchNotOpen    = errors.New("batch is not open for enrollment")
)

type (
	Repository interface {
		CreateEnrollment(ctx context.Context, e Enrollment) (Enrollment, error)
		EnrollmentExists(ctx context.Context, studentID, batchID string) (bool, error)
		QueryStudentEnrollments(ctx context.Context, studentID string) ([]Enrollment, error)
		DeleteEnrollmentsByID(ctx context.Context, ids ...string) error
	}

	Service struct {
		repo      Repository
		batchRepo batch.Repository
		mailSvc   core.EmailService
		logger    core.Logger
	}
)

func NewService(repo Repository, batchRepo batch.Repository, mailSvc core.EmailService, logger core.Logger) *Service {
	return &Service{
		repo:      repo,
		batchRepo: batchRepo,
		mailSvc:   mailSvc,
		logger:    logger,
	}
}

// ActiveSchedules projects a student's current active enrollments into the
// conflict engine's value type. Status is evaluated from the batch record at
// call time, never cached.
func (svc *Service) ActiveSchedules(ctx context.Context, studentID string, warns *schedule.Warnings) ([]schedule.WeeklySchedule, error) {
	enrols, err := svc.repo.QueryStudentEnrollments(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying student enrollments")
	}

	scheds := make([]schedule.WeeklySchedule, 0, len(enrols))
	for _, enrol := range enrols {
		if !enrol.Status.IsActive() {
			continue
		}
		b, err := svc.batchRepo.GetBatchByID(ctx, enrol.BatchID)
		if err != nil {
			if errors.Cause(err) == batch.ErrNotFound {
				continue // enrollment outlived its batch
			}
			return nil, errors.Wrap(err, "loading enrolled batch")
		}
		scheds = append(scheds, b.Schedule(warns))
	}
	return scheds, nil
}

// CheckConflict is the dry-run form of Enroll: it reports the first existing
// schedule conflicting with the candidate batch, without enrolling.
func (svc *Service) CheckConflict(ctx context.Context, studentID, batchID string) (*schedule.WeeklySchedule, schedule.Warnings, error) {
	b, err := svc.batchRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}

	var warns schedule.Warnings
	existing, err := svc.ActiveSchedules(ctx, studentID, &warns)
	if err != nil {
		return nil, nil, err
	}
	conflict := schedule.FindConflict(b.Schedule(&warns), existing, &warns)
	svc.logWarnings(studentID, warns)
	return conflict, warns, nil
}

// Enroll enrolls a student in a batch, failing with a ValidationError naming
// the conflicting batch when the schedules clash.
func (svc *Service) Enroll(ctx context.Context, ne NewEnrollment) (Enrollment, error) {
	enrol, skipped, err := svc.enroll(ctx, ne.StudentID, ne.BatchID)
	if err != nil {
		return Enrollment{}, err
	}
	if skipped != nil {
		svc.notifySkipped(ne.StudentEmail, *skipped)
		return Enrollment{}, core.NewValidationError(
			errors.New(skipped.Reason),
			core.FieldError{Field: "batch_id", Error: skipped.Reason},
		)
	}
	return enrol, nil
}

// EnrollMany enrolls a student in each given batch. Conflicting batches are
// skipped and reported; the operation never aborts wholesale on a conflict.
func (svc *Service) EnrollMany(ctx context.Context, be BulkEnrollment) (Result, error) {
	var res Result
	for _, batchID := range be.BatchIDs {
		enrol, skipped, err := svc.enroll(ctx, be.StudentID, batchID)
		if err != nil {
			return Result{}, err
		}
		if skipped != nil {
			res.Skipped = append(res.Skipped, *skipped)
			svc.notifySkipped(be.StudentEmail, *skipped)
			continue
		}
		res.Enrolled = append(res.Enrolled, enrol)
	}
	return res, nil
}

// EnrollCourse cascades a course-level enrollment over the course's batches.
func (svc *Service) EnrollCourse(ctx context.Context, ce CourseEnrollment) (Result, error) {
	batches, err := svc.batchRepo.QueryCourseBatches(ctx, ce.CourseID)
	if err != nil {
		return Result{}, errors.Wrap(err, "querying course batches")
	}

	be := BulkEnrollment{StudentID: ce.StudentID, StudentEmail: ce.StudentEmail}
	for _, b := range batches {
		if !b.Status.IsActive() {
			continue
		}
		be.BatchIDs = append(be.BatchIDs, b.ID)
	}
	return svc.EnrollMany(ctx, be)
}

func (svc *Service) QueryByStudent(ctx context.Context, studentID string) ([]Enrollment, error) {
	return svc.repo.QueryStudentEnrollments(ctx, studentID)
}

func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteEnrollmentsByID(ctx, ids...)
}

// enroll performs one enrollment attempt. A schedule conflict or an existing
// enrollment comes back as a SkippedBatch; anything else is a hard error.
func (svc *Service) enroll(ctx context.Context, studentID, batchID string) (Enrollment, *SkippedBatch, error) {
	b, err := svc.batchRepo.GetBatchByID(ctx, batchID)
	if err != nil {
		if errors.Cause(err) == batch.ErrNotFound {
			return Enrollment{}, nil, core.NewValidationError(err, core.FieldError{Field: "batch_id", Error: err.Error()})
		}
		return Enrollment{}, nil, errors.Wrap(err, "loading batch")
	}
	if !b.Status.IsActive() {
		return Enrollment{}, &SkippedBatch{Batch: b.Ref(), Reason: ErrBatchNotOpen.Error()}, nil
	}

	exists, err := svc.repo.EnrollmentExists(ctx, studentID, batchID)
	if err != nil {
		return Enrollment{}, nil, errors.Wrap(err, "checking existing enrollment")
	}
	if exists {
		return Enrollment{}, &SkippedBatch{Batch: b.Ref(), Reason: ErrAlreadyEnrolled.Error()}, nil
	}

	var warns schedule.Warnings
	existing, err := svc.ActiveSchedules(ctx, studentID, &warns)
	if err != nil {
		return Enrollment{}, nil, err
	}
	conflict := schedule.FindConflict(b.Schedule(&warns), existing, &warns)
	svc.logWarnings(studentID, warns)
	if conflict != nil {
		reason := fmt.Sprintf("schedule conflicts with batch %q", conflict.Batch.Name)
		return Enrollment{}, &SkippedBatch{Batch: b.Ref(), Reason: reason}, nil
	}

	enrol, err := svc.repo.CreateEnrollment(ctx, Enrollment{
		StudentID: studentID,
		BatchID:   batchID,
		Status:    schedule.StatusActive,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Enrollment{}, nil, errors.Wrap(err, "creating enrollment")
	}
	return enrol, nil, nil
}

func (svc *Service) logWarnings(studentID string, warns schedule.Warnings) {
	for _, warn := range warns {
		svc.logger.Warn(
			"conflict check could not fully evaluate a schedule",
			map[string]interface{}{"student": studentID, "batch": warn.Batch.ID, "reason": warn.Reason},
		)
	}
}

func (svc *Service) notifySkipped(email string, skipped SkippedBatch) {
	if email == "" {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: email}},
		Subject: fmt.Sprintf("Enrollment skipped: %s", skipped.Batch.Name),
		BodyStr: fmt.Sprintf(
			"You were not enrolled in %q: %s. Please review your timetable and pick another batch.",
			skipped.Batch.Name, skipped.Reason,
		),
	})
}
