package dummydb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core/batch"
)

type batchRepository struct {
	db *batchTable
}

var _ batch.Repository = (*batchRepository)(nil) // interface compliance check

func NewBatchRepository(db *DB) batch.Repository {
	return &batchRepository{db: db.batch}
}

func (repo *batchRepository) query() []batch.Batch {
	batches := make([]batch.Batch, 0, len(repo.db.table))
	for _, b := range repo.db.table {
		batches = append(batches, *b)
	}
	return batches
}

func (repo *batchRepository) CreateBatch(_ context.Context, b batch.Batch) (batch.Batch, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	repo.db.table[b.ID] = &b
	return b, nil
}

func (repo *batchRepository) GetBatchByID(_ context.Context, id string) (batch.Batch, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if b, ok := repo.db.table[id]; ok {
		return *b, nil
	}
	return batch.Batch{}, batch.ErrNotFound
}

func (repo *batchRepository) QueryAllBatches(_ context.Context) ([]batch.Batch, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *batchRepository) QueryCourseBatches(_ context.Context, courseID string) ([]batch.Batch, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var batches []batch.Batch
	for _, b := range repo.query() {
		if b.CourseID == courseID {
			batches = append(batches, b)
		}
	}
	return batches, nil
}

func (repo *batchRepository) UpdateBatch(_ context.Context, b batch.Batch) (batch.Batch, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	origBatch, ok := repo.db.table[b.ID]
	if !ok {
		return batch.Batch{}, batch.ErrNotFound
	}
	if b.Days != nil {
		origBatch.Days = b.Days
	}
	if b.Status != "" {
		origBatch.Status = b.Status
	}
	if b.Name != "" {
		origBatch.Name = b.Name
	}
	if b.ClassTime != "" {
		origBatch.ClassTime = b.ClassTime
	}
	origBatch.UpdatedAt = b.UpdatedAt

	repo.db.table[b.ID] = origBatch
	return *origBatch, nil
}

func (repo *batchRepository) DeleteBatchesByID(_ context.Context, ids ...string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
