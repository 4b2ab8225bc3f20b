// Package store persists dimension, fact, and analytical records through
// gorm with insert-only-if-new semantics keyed on the synthetic id.
package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrPersistence wraps any storage failure surfaced by the store.
var ErrPersistence = errors.New("persistence error")

// Record is any persisted row carrying a synthetic identity.
type Record interface {
	RecordID() int64
}

// UpsertIfNew inserts the records whose id is not already persisted for the
// record's kind, in input order, and reports which ids were already present.
//
// The existence check is a single batched id lookup. All inserts happen
// inside one transaction: a failure rolls back the whole batch and the call
// returns an error matching both ErrPersistence and the driver error under
// errors.Is. Calling twice with the same input inserts nothing the second
// time.
func UpsertIfNew[T Record](db *gorm.DB, records []T) (inserted []T, existing map[int64]bool, err error) {
	existing = make(map[int64]bool)
	if len(records) == 0 {
		return nil, existing, nil
	}

	ids := make([]int64, len(records))
	for i, record := range records {
		ids[i] = record.RecordID()
	}

	var model T
	var existingIDs []int64
	if err := db.Model(&model).Where("id IN ?", ids).Pluck("id", &existingIDs).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: querying existing ids: %w", ErrPersistence, err)
	}
	for _, id := range existingIDs {
		existing[id] = true
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			if existing[record.RecordID()] {
				continue
			}
			record := record
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			inserted = append(inserted, record)
		}
		return nil
	})
	if err != nil {
		return nil, existing, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return inserted, existing, nil
}

// All fetches every persisted record of the kind, ordered by id so that
// results come back in ingestion order.
func All[T Record](db *gorm.DB) ([]T, error) {
	var records []T
	if err := db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return records, nil
}
