package dummydb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/enrollment"
)

type enrollmentRepository struct {
	db *enrollmentTable
}

var _ enrollment.Repository = (*enrollmentRepository)(nil) // interface compliance check

func NewEnrollmentRepository(db *DB) enrollment.Repository {
	return &enrollmentRepository{db: db.enrollment}
}

func (repo *enrollmentRepository) query() []enrollment.Enrollment {
	enrols := make([]enrollment.Enrollment, 0, len(repo.db.table))
	for _, e := range repo.db.table {
		enrols = append(enrols, *e)
	}
	// deterministic order for first-match-wins scans
	sort.Slice(enrols, func(i, j int) bool { return enrols[i].CreatedAt.Before(enrols[j].CreatedAt) })
	return enrols
}

func (repo *enrollmentRepository) CreateEnrollment(_ context.Context, e enrollment.Enrollment) (enrollment.Enrollment, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	repo.db.table[e.ID] = &e
	return e, nil
}

func (repo *enrollmentRepository) EnrollmentExists(_ context.Context, studentID, batchID string) (bool, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, e := range repo.db.table {
		if e.StudentID == studentID && e.BatchID == batchID {
			return true, nil
		}
	}
	return false, nil
}

func (repo *enrollmentRepository) QueryStudentEnrollments(_ context.Context, studentID string) ([]enrollment.Enrollment, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var enrols []enrollment.Enrollment
	for _, e := range repo.query() {
		if e.StudentID == studentID {
			enrols = append(enrols, e)
		}
	}
	return enrols, nil
}

func (repo *enrollmentRepository) DeleteEnrollmentsByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
