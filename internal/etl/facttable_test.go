package etl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders-etl-service/internal/models"
)

var (
	purchased = time.Date(2017, 10, 2, 10, 56, 33, 0, time.UTC)
	shipBy    = time.Date(2017, 10, 6, 11, 7, 15, 0, time.UTC)
)

// fixtureDimensions builds a consistent one-order universe: one order with
// two items from the same seller, both for the same product.
func fixtureDimensions() Dimensions {
	return Dimensions{
		Orders: []models.Order{{
			ID: 1, OrderID: "o1", CustomerID: "c1", OrderStatus: "delivered",
			OrderPurchaseTimestamp: purchased,
		}},
		OrderItems: []models.OrderItem{
			{ID: 1, OrderID: "o1", OrderItemID: 1, ProductID: "p1", SellerID: "s1", ShippingLimitDate: shipBy, Price: 59.9, FreightValue: 10.0},
			{ID: 2, OrderID: "o1", OrderItemID: 2, ProductID: "p1", SellerID: "s1", ShippingLimitDate: shipBy, Price: 59.9, FreightValue: 10.0},
		},
		Customers: []models.Customer{{
			ID: 1, CustomerID: "c1", CustomerUniqueID: "u1", CustomerZipCodePrefix: 14409,
			CustomerCity: "franca", CustomerState: "SP",
		}},
		OrderPayments: []models.OrderPayment{{
			ID: 1, OrderID: "o1", PaymentSequential: 1, PaymentType: "credit_card",
			PaymentInstallments: 1, PaymentValue: 129.8,
		}},
		Products: []models.Product{{
			ID: 1, ProductID: "p1", ProductCategoryName: "perfumaria",
		}},
		Sellers: []models.Seller{{
			ID: 1, SellerID: "s1", SellerZipCodePrefix: 13023, SellerCity: "campinas", SellerState: "SP",
		}},
		ProductCategories: []models.ProductCategory{{
			ID: 1, ProductCategoryName: "perfumaria", ProductCategoryNameEnglish: "perfumery",
		}},
	}
}

func TestBuildFactTable(t *testing.T) {
	facts, err := BuildFactTable(fixtureDimensions())
	require.NoError(t, err)
	require.Len(t, facts, 2, "one fact row per (order, order item)")

	for i, fact := range facts {
		assert.Equal(t, int64(i)+1, fact.ID, "fresh ids in join output order")
		assert.Equal(t, "o1", fact.OrderID)
		assert.Equal(t, "u1", fact.CustomerUniqueID)
		assert.Equal(t, "perfumaria", fact.ProductCategoryName)
		assert.Equal(t, "perfumery", fact.ProductCategoryNameEnglish)
		assert.Equal(t, "campinas", fact.SellerCity)
	}
	assert.Equal(t, int64(1), facts[0].OrderItemID)
	assert.Equal(t, int64(2), facts[1].OrderItemID)
}

func TestBuildFactTable_DropsUnmatchedRows(t *testing.T) {
	dims := fixtureDimensions()
	// A second order whose item references a product missing from the
	// products dimension must be silently excluded.
	dims.Orders = append(dims.Orders, models.Order{
		ID: 2, OrderID: "o2", CustomerID: "c1", OrderStatus: "shipped",
		OrderPurchaseTimestamp: purchased,
	})
	dims.OrderItems = append(dims.OrderItems, models.OrderItem{
		ID: 3, OrderID: "o2", OrderItemID: 1, ProductID: "ghost", SellerID: "s1",
		ShippingLimitDate: shipBy, Price: 5,
	})

	facts, err := BuildFactTable(dims)
	require.NoError(t, err)
	assert.Len(t, facts, 2)
	for _, fact := range facts {
		assert.NotEqual(t, "o2", fact.OrderID)
	}
}

func TestBuildFactTable_NoDuplicateRows(t *testing.T) {
	dims := fixtureDimensions()
	// An exact duplicate of the first item row survives the join as an
	// identical fact row and must be removed.
	dims.OrderItems = append(dims.OrderItems, models.OrderItem{
		ID: 3, OrderID: "o1", OrderItemID: 1, ProductID: "p1", SellerID: "s1",
		ShippingLimitDate: shipBy, Price: 59.9, FreightValue: 10.0,
	})

	facts, err := BuildFactTable(dims)
	require.NoError(t, err)
	assert.Len(t, facts, 2)

	seen := make(map[string]bool)
	for _, fact := range facts {
		key := factKey(fact)
		assert.False(t, seen[key], "no two fact rows may be equal across every column")
		seen[key] = true
	}
}

func TestBuildFactTable_EmptyDimension(t *testing.T) {
	dims := fixtureDimensions()
	dims.Sellers = nil

	_, err := BuildFactTable(dims)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildFactTable_EmptyPaymentsRejected(t *testing.T) {
	// Payments are not part of the join chain but are part of the
	// seven-table contract.
	dims := fixtureDimensions()
	dims.OrderPayments = nil

	_, err := BuildFactTable(dims)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildFactTable_JoinProducedNothing(t *testing.T) {
	dims := fixtureDimensions()
	dims.ProductCategories = []models.ProductCategory{{
		ID: 1, ProductCategoryName: "unrelated", ProductCategoryNameEnglish: "unrelated",
	}}

	_, err := BuildFactTable(dims)
	assert.ErrorIs(t, err, ErrJoinProducedNothing)
}
