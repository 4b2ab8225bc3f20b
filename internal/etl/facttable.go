// Package etl builds the denormalized fact table from the persisted
// dimension tables and computes the analytical rollups over it.
package etl

import (
	"fmt"
	"strings"
	"time"

	"orders-etl-service/internal/models"
)

// Dimensions carries the seven dimension tables, re-read from storage, in
// the fixed order the fact-table build expects. OrderPayments is part of the
// contract but not of the join chain.
type Dimensions struct {
	Orders            []models.Order
	OrderItems        []models.OrderItem
	Customers         []models.Customer
	OrderPayments     []models.OrderPayment
	Products          []models.Product
	Sellers           []models.Seller
	ProductCategories []models.ProductCategory
}

// BuildFactTable joins the dimension tables on their natural keys into one
// fact row per (order, order item) combination:
//
//	orders ⋈ order_items   on order_id
//	       ⋈ customers     on customer_id
//	       ⋈ products      on product_id (category name only)
//	       ⋈ sellers       on seller_id
//	       ⋈ categories    on product_category_name
//
// All joins are inner: a row whose natural key is missing from any dimension
// is silently excluded. Dimension-local ids are not carried into the result.
// Exact-duplicate rows are removed (keep-first) and a fresh synthetic id is
// assigned, 1..N in join output order. If nothing survives the join chain the
// result is nil and the error wraps ErrJoinProducedNothing.
func BuildFactTable(dims Dimensions) ([]models.FactRecord, error) {
	for _, check := range []struct {
		name string
		size int
	}{
		{"orders", len(dims.Orders)},
		{"order_items", len(dims.OrderItems)},
		{"customers", len(dims.Customers)},
		{"order_payments", len(dims.OrderPayments)},
		{"products", len(dims.Products)},
		{"sellers", len(dims.Sellers)},
		{"product_categories", len(dims.ProductCategories)},
	} {
		if check.size == 0 {
			return nil, fmt.Errorf("%w: dimension %s", ErrEmptyInput, check.name)
		}
	}

	itemsByOrder := make(map[string][]models.OrderItem, len(dims.OrderItems))
	for _, item := range dims.OrderItems {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}
	customersByID := make(map[string][]models.Customer, len(dims.Customers))
	for _, customer := range dims.Customers {
		customersByID[customer.CustomerID] = append(customersByID[customer.CustomerID], customer)
	}
	// Only the category name is pulled from the products dimension.
	categoryByProduct := make(map[string][]string, len(dims.Products))
	for _, product := range dims.Products {
		categoryByProduct[product.ProductID] = append(categoryByProduct[product.ProductID], product.ProductCategoryName)
	}
	sellersByID := make(map[string][]models.Seller, len(dims.Sellers))
	for _, seller := range dims.Sellers {
		sellersByID[seller.SellerID] = append(sellersByID[seller.SellerID], seller)
	}
	englishByCategory := make(map[string][]string, len(dims.ProductCategories))
	for _, category := range dims.ProductCategories {
		englishByCategory[category.ProductCategoryName] = append(englishByCategory[category.ProductCategoryName], category.ProductCategoryNameEnglish)
	}

	var facts []models.FactRecord
	seen := make(map[string]bool)
	for _, order := range dims.Orders {
		for _, item := range itemsByOrder[order.OrderID] {
			for _, customer := range customersByID[order.CustomerID] {
				for _, categoryName := range categoryByProduct[item.ProductID] {
					for _, seller := range sellersByID[item.SellerID] {
						for _, english := range englishByCategory[categoryName] {
							fact := models.FactRecord{
								OrderID:                    order.OrderID,
								CustomerID:                 order.CustomerID,
								OrderStatus:                order.OrderStatus,
								OrderPurchaseTimestamp:     order.OrderPurchaseTimestamp,
								OrderApprovedAt:            order.OrderApprovedAt,
								OrderDeliveredCarrierDate:  order.OrderDeliveredCarrierDate,
								OrderDeliveredCustomerDate: order.OrderDeliveredCustomerDate,
								OrderEstimatedDeliveryDate: order.OrderEstimatedDeliveryDate,
								OrderItemID:                item.OrderItemID,
								ProductID:                  item.ProductID,
								SellerID:                   item.SellerID,
								ShippingLimitDate:          item.ShippingLimitDate,
								Price:                      item.Price,
								FreightValue:               item.FreightValue,
								CustomerUniqueID:           customer.CustomerUniqueID,
								CustomerZipCodePrefix:      customer.CustomerZipCodePrefix,
								CustomerCity:               customer.CustomerCity,
								CustomerState:              customer.CustomerState,
								ProductCategoryName:        categoryName,
								SellerZipCodePrefix:        seller.SellerZipCodePrefix,
								SellerCity:                 seller.SellerCity,
								SellerState:                seller.SellerState,
								ProductCategoryNameEnglish: english,
							}
							key := factKey(fact)
							if seen[key] {
								continue
							}
							seen[key] = true
							fact.ID = int64(len(facts)) + 1
							facts = append(facts, fact)
						}
					}
				}
			}
		}
	}

	if len(facts) == 0 {
		return nil, ErrJoinProducedNothing
	}
	return facts, nil
}

// factKey serializes every fact column except the synthetic id, for
// exact-duplicate detection across the join output.
func factKey(f models.FactRecord) string {
	return strings.Join([]string{
		f.OrderID,
		f.CustomerID,
		f.OrderStatus,
		f.OrderPurchaseTimestamp.Format(time.RFC3339),
		formatNullableTime(f.OrderApprovedAt),
		formatNullableTime(f.OrderDeliveredCarrierDate),
		formatNullableTime(f.OrderDeliveredCustomerDate),
		formatNullableTime(f.OrderEstimatedDeliveryDate),
		fmt.Sprintf("%d", f.OrderItemID),
		f.ProductID,
		f.SellerID,
		f.ShippingLimitDate.Format(time.RFC3339),
		fmt.Sprintf("%g|%g", f.Price, f.FreightValue),
		f.CustomerUniqueID,
		fmt.Sprintf("%d", f.CustomerZipCodePrefix),
		f.CustomerCity,
		f.CustomerState,
		f.ProductCategoryName,
		fmt.Sprintf("%d", f.SellerZipCodePrefix),
		f.SellerCity,
		f.SellerState,
		f.ProductCategoryNameEnglish,
	}, "\x1f")
}

func formatNullableTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
