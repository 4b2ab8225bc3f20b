package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"orders-etl-service/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Seller{}))
	return db
}

func sampleSellers(n int) []models.Seller {
	sellers := make([]models.Seller, n)
	for i := range sellers {
		sellers[i] = models.Seller{
			ID:                  int64(i) + 1,
			SellerID:            "s" + string(rune('a'+i)),
			SellerZipCodePrefix: 1000 + int64(i),
			SellerCity:          "sao paulo",
			SellerState:         "SP",
		}
	}
	return sellers
}

func TestUpsertIfNew_InsertsAll(t *testing.T) {
	db := openTestDB(t)
	sellers := sampleSellers(3)

	inserted, existing, err := UpsertIfNew(db, sellers)
	require.NoError(t, err)
	assert.Len(t, inserted, 3)
	assert.Empty(t, existing)

	persisted, err := All[models.Seller](db)
	require.NoError(t, err)
	assert.Equal(t, sellers, persisted)
}

func TestUpsertIfNew_Idempotent(t *testing.T) {
	db := openTestDB(t)
	sellers := sampleSellers(3)

	_, _, err := UpsertIfNew(db, sellers)
	require.NoError(t, err)

	inserted, existing, err := UpsertIfNew(db, sellers)
	require.NoError(t, err)
	assert.Empty(t, inserted, "second identical call inserts nothing")
	assert.Len(t, existing, 3)
	for _, seller := range sellers {
		assert.True(t, existing[seller.ID])
	}

	persisted, err := All[models.Seller](db)
	require.NoError(t, err)
	assert.Len(t, persisted, 3)
}

func TestUpsertIfNew_PartialOverlap(t *testing.T) {
	db := openTestDB(t)

	_, _, err := UpsertIfNew(db, sampleSellers(2))
	require.NoError(t, err)

	inserted, existing, err := UpsertIfNew(db, sampleSellers(4))
	require.NoError(t, err)
	assert.Len(t, inserted, 2, "only the ids not yet persisted are inserted")
	assert.Len(t, existing, 2)
	assert.Equal(t, int64(3), inserted[0].ID)
	assert.Equal(t, int64(4), inserted[1].ID)
}

func TestUpsertIfNew_RollsBackWholeBatch(t *testing.T) {
	db := openTestDB(t)

	// Two records with the same id inside one batch: the second insert
	// violates the primary key, so the whole transaction must roll back.
	batch := sampleSellers(2)
	batch[1].ID = batch[0].ID

	_, _, err := UpsertIfNew(db, batch)
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey,
		"the underlying driver error stays reachable through the wrap chain")

	persisted, err := All[models.Seller](db)
	require.NoError(t, err)
	assert.Empty(t, persisted, "no partial batch is left behind")
}

func TestUpsertIfNew_EmptyBatch(t *testing.T) {
	db := openTestDB(t)

	inserted, existing, err := UpsertIfNew(db, []models.Seller{})
	require.NoError(t, err)
	assert.Empty(t, inserted)
	assert.Empty(t, existing)
}

func TestAll_OrdersByID(t *testing.T) {
	db := openTestDB(t)
	sellers := sampleSellers(3)
	// Insert out of order; All must come back in id order.
	_, _, err := UpsertIfNew(db, []models.Seller{sellers[2], sellers[0], sellers[1]})
	require.NoError(t, err)

	persisted, err := All[models.Seller](db)
	require.NoError(t, err)
	require.Len(t, persisted, 3)
	for i, seller := range persisted {
		assert.Equal(t, int64(i)+1, seller.ID)
	}
}
