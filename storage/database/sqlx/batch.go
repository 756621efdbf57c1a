package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core/batch"
	"github.com/trezcool/darasa/core/schedule"
)

type dbBatch struct {
	ID        string         `db:"id"`
	CourseID  string         `db:"course_id"`
	Name      string         `db:"name"`
	Days      pq.StringArray `db:"days"`
	ClassTime null.String    `db:"class_time"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (b dbBatch) toBatch() batch.Batch {
	return batch.Batch{
		ID:        b.ID,
		CourseID:  b.CourseID,
		Name:      b.Name,
		Days:      b.Days,
		ClassTime: b.ClassTime.String,
		Status:    schedule.Status(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBatches(rows []dbBatch) []batch.Batch {
	batches := make([]batch.Batch, 0, len(rows))
	for _, row := range rows {
		batches = append(batches, row.toBatch())
	}
	return batches
}

type batchRepository struct {
	db *sqlx.DB
}

var _ batch.Repository = (*batchRepository)(nil) // interface compliance check

func NewBatchRepository(db *sqlx.DB) *batchRepository {
	return &batchRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to batch.ErrNotFound
func (repo batchRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return batch.ErrNotFound
	}
	return errors.Wrap(err, msg)
}

func (repo batchRepository) CreateBatch(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	var row dbBatch
	err := repo.db.GetContext(ctx, &row, `
		INSERT INTO batch (course_id, name, days, class_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING *`,
		b.CourseID, b.Name, pq.StringArray(b.Days), null.NewString(b.ClassTime, b.ClassTime != ""),
		string(b.Status), b.CreatedAt.UTC(), b.UpdatedAt.UTC(),
	)
	if err != nil {
		return batch.Batch{}, errors.Wrap(err, "creating batch")
	}
	return row.toBatch(), nil
}

func (repo batchRepository) GetBatchByID(ctx context.Context, id string) (batch.Batch, error) {
	var row dbBatch
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM batch WHERE id = $1`, id); err != nil {
		return batch.Batch{}, repo.trapNoRowsErr(err, "getting batch")
	}
	return row.toBatch(), nil
}

func (repo batchRepository) QueryAllBatches(ctx context.Context) ([]batch.Batch, error) {
	var rows []dbBatch
	if err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM batch ORDER BY created_at`); err != nil {
		return nil, errors.Wrap(err, "querying batches")
	}
	return toBatches(rows), nil
}

func (repo batchRepository) QueryCourseBatches(ctx context.Context, courseID string) ([]batch.Batch, error) {
	var rows []dbBatch
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM batch WHERE course_id = $1 ORDER BY created_at`, courseID)
	if err != nil {
		return nil, errors.Wrap(err, "querying course batches")
	}
	return toBatches(rows), nil
}

func (repo batchRepository) UpdateBatch(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	var row dbBatch
	err := repo.db.GetContext(ctx, &row, `
		UPDATE batch
		SET name       = COALESCE(NULLIF($2, ''), name),
		    days       = COALESCE($3, days),
		    class_time = COALESCE(NULLIF($4, ''), class_time),
		    status     = COALESCE(NULLIF($5, ''), status),
		    updated_at = $6
		WHERE id = $1
		RETURNING *`,
		b.ID, b.Name, pq.StringArray(b.Days), b.ClassTime, string(b.Status), b.UpdatedAt.UTC(),
	)
	if err != nil {
		return batch.Batch{}, repo.trapNoRowsErr(err, "updating batch")
	}
	return row.toBatch(), nil
}

func (repo batchRepository) DeleteBatchesByID(ctx context.Context, ids ...string) error {
	if _, err := repo.db.ExecContext(ctx, `DELETE FROM batch WHERE id = ANY($1)`, pq.StringArray(ids)); err != nil {
		return errors.Wrap(err, "deleting batches")
	}
	return nil
}
