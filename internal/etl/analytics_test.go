package etl

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders-etl-service/internal/models"
)

func factRow(sellerID string, price float64) models.FactRecord {
	return models.FactRecord{
		OrderID:                    "o-" + sellerID,
		SellerID:                   sellerID,
		Price:                      price,
		OrderStatus:                "delivered",
		CustomerUniqueID:           "u-" + sellerID,
		ProductCategoryNameEnglish: "perfumery",
		OrderPurchaseTimestamp:     time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTopSellers(t *testing.T) {
	facts := []models.FactRecord{
		factRow("s1", 1.0),
		factRow("s2", 2.0),
		factRow("s3", 3.0),
		factRow("s4", 4.0),
	}

	result, err := TopSellers(facts)
	require.NoError(t, err)
	require.Len(t, result, 4, "under the cap, every seller survives")

	wantSellers := []string{"s4", "s3", "s2", "s1"}
	wantSales := []float64{4.0, 3.0, 2.0, 1.0}
	for i, row := range result {
		assert.Equal(t, int64(i)+1, row.ID, "id follows rank order")
		assert.Equal(t, wantSellers[i], row.SellerID)
		assert.Equal(t, wantSales[i], row.TotalSales)
	}
}

func TestTopSellers_SumsPerSeller(t *testing.T) {
	facts := []models.FactRecord{
		factRow("s1", 10.0),
		factRow("s2", 15.0),
		factRow("s1", 20.0),
	}

	result, err := TopSellers(facts)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "s1", result[0].SellerID)
	assert.Equal(t, 30.0, result[0].TotalSales)
	assert.Equal(t, "s2", result[1].SellerID)
}

func TestTopSellers_CappedAtTen(t *testing.T) {
	var facts []models.FactRecord
	for i := 0; i < 15; i++ {
		facts = append(facts, factRow(fmt.Sprintf("s%02d", i), float64(i)))
	}

	result, err := TopSellers(facts)
	require.NoError(t, err)
	assert.Len(t, result, 10)
	assert.Equal(t, "s14", result[0].SellerID)
}

func TestTopSellers_EmptyInput(t *testing.T) {
	_, err := TopSellers(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestTopSellingProductCategory(t *testing.T) {
	perfumery := factRow("s1", 40.0)
	toys := factRow("s2", 100.0)
	toys.ProductCategoryNameEnglish = "toys"

	result, err := TopSellingProductCategory([]models.FactRecord{perfumery, toys})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "toys", result[0].ProductCategoryNameEnglish)
	assert.Equal(t, 100.0, result[0].TotalSales)
	assert.Equal(t, int64(1), result[0].ID)
}

func TestOrdersStatusCount(t *testing.T) {
	facts := []models.FactRecord{
		factRow("s1", 1), factRow("s2", 1), factRow("s3", 1),
	}
	facts[2].OrderStatus = "shipped"

	result, err := OrdersStatusCount(facts)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "delivered", result[0].OrderStatus)
	assert.Equal(t, int64(2), result[0].Count)
	assert.Equal(t, "shipped", result[1].OrderStatus)
	assert.Equal(t, int64(1), result[1].Count)
}

func TestAverageDeliveryDuration(t *testing.T) {
	bought := time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)
	oneDay := bought.Add(24 * time.Hour)
	threeDays := bought.Add(72 * time.Hour)

	first := factRow("s1", 1)
	first.OrderPurchaseTimestamp = bought
	first.OrderDeliveredCustomerDate = &oneDay
	second := factRow("s2", 1)
	second.OrderPurchaseTimestamp = bought
	second.OrderDeliveredCustomerDate = &threeDays

	result, err := AverageDeliveryDuration([]models.FactRecord{first, second})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "perfumery", result[0].ProductCategoryNameEnglish)
	assert.InDelta(t, 2.0, result[0].AverageDeliveryDurationDays, 1e-9,
		"gaps of 1.0 and 3.0 days average to 2.0")
	assert.Equal(t, int64(1), result[0].ID)
}

func TestAverageDeliveryDuration_SkipsUndelivered(t *testing.T) {
	bought := time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)
	delivered := bought.Add(48 * time.Hour)

	done := factRow("s1", 1)
	done.OrderPurchaseTimestamp = bought
	done.OrderDeliveredCustomerDate = &delivered
	pending := factRow("s2", 1)
	pending.OrderPurchaseTimestamp = bought

	undeliveredCategory := factRow("s3", 1)
	undeliveredCategory.ProductCategoryNameEnglish = "toys"

	result, err := AverageDeliveryDuration([]models.FactRecord{done, pending, undeliveredCategory})
	require.NoError(t, err)
	require.Len(t, result, 1, "a category with no delivered rows is dropped")
	assert.InDelta(t, 2.0, result[0].AverageDeliveryDurationDays, 1e-9)
}

func TestLoyalCustomers(t *testing.T) {
	facts := []models.FactRecord{
		factRow("s1", 1), factRow("s1", 1), factRow("s2", 1),
	}

	result, err := LoyalCustomers(facts)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "u-s1", result[0].CustomerUniqueID)
	assert.Equal(t, int64(2), result[0].NoOfOrders)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)
}

func TestAnalytics_TieBreakIsFirstAppearance(t *testing.T) {
	facts := []models.FactRecord{
		factRow("late", 5.0),
		factRow("early", 5.0),
	}

	result, err := TopSellers(facts)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "late", result[0].SellerID,
		"equal aggregates keep fact-table first-appearance order")
}
