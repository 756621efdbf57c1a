package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core/enrollment"
	"github.com/trezcool/darasa/core/schedule"
)

type dbEnrollment struct {
	ID        string    `db:"id"`
	StudentID string    `db:"student_id"`
	BatchID   string    `db:"batch_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (e dbEnrollment) toEnrollment() enrollment.Enrollment {
	return enrollment.Enrollment{
		ID:        e.ID,
		StudentID: e.StudentID,
		BatchID:   e.BatchID,
		Status:    schedule.Status(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

type enrollmentRepository struct {
	db *sqlx.DB
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *sqlx.DB) *enrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo enrollmentRepository) CreateEnrollment(ctx context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	var row dbEnrollment
	err := repo.db.GetContext(ctx, &row, `
		INSERT INTO enrollment (student_id, batch_id, status, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING *`,
		e.StudentID, e.BatchID, string(e.Status), e.CreatedAt.UTC(),
	)
	if err != nil {
		return enrollment.Enrollment{}, errors.Wrap(err, "creating enrollment")
	}
	return row.toEnrollment(), nil
}

func (repo enrollmentRepository) EnrollmentExists(ctx context.Context, studentID, batchID string) (bool, error) {
	var exists bool
	err := repo.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM enrollment WHERE student_id = $1 AND batch_id = $2)`,
		studentID, batchID,
	)
	if err != nil {
		return false, errors.Wrap(err, "checking enrollment")
	}
	return exists, nil
}

func (repo enrollmentRepository) QueryStudentEnrollments(ctx context.Context, studentID string) ([]enrollment.Enrollment, error) {
	var rows []dbEnrollment
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM enrollment WHERE student_id = $1 ORDER BY created_at`, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "querying student enrollments")
	}
	enrols := make([]enrollment.Enrollment, 0, len(rows))
	for _, row := range rows {
		enrols = append(enrols, row.toEnrollment())
	}
	return enrols, nil
}

func (repo enrollmentRepository) DeleteEnrollmentsByID(ctx context.Context, ids ...string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM enrollment WHERE id = ANY($1)`, pq.StringArray(ids)); err != nil {
		return errors.Wrap(err, "deleting enrollments")
	}
	return nil
}
