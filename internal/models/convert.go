package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"orders-etl-service/internal/tabular"
)

// timestampLayout is the timestamp format used by all source extracts.
const timestampLayout = "2006-01-02 15:04:05"

// SellerFromRow builds a Seller from an identified extract row.
func SellerFromRow(id int64, row tabular.Row) (Seller, error) {
	zip, err := parseInt(row, "seller_zip_code_prefix")
	if err != nil {
		return Seller{}, err
	}
	return Seller{
		ID:                  id,
		SellerID:            row["seller_id"],
		SellerZipCodePrefix: zip,
		SellerCity:          row["seller_city"],
		SellerState:         row["seller_state"],
	}, nil
}

// CustomerFromRow builds a Customer from an identified extract row.
func CustomerFromRow(id int64, row tabular.Row) (Customer, error) {
	zip, err := parseInt(row, "customer_zip_code_prefix")
	if err != nil {
		return Customer{}, err
	}
	return Customer{
		ID:                    id,
		CustomerID:            row["customer_id"],
		CustomerUniqueID:      row["customer_unique_id"],
		CustomerZipCodePrefix: zip,
		CustomerCity:          row["customer_city"],
		CustomerState:         row["customer_state"],
	}, nil
}

// OrderFromRow builds an Order from an identified extract row.
func OrderFromRow(id int64, row tabular.Row) (Order, error) {
	purchased, err := parseTime(row, "order_purchase_timestamp")
	if err != nil {
		return Order{}, err
	}
	approved, err := parseNullableTime(row, "order_approved_at")
	if err != nil {
		return Order{}, err
	}
	carrier, err := parseNullableTime(row, "order_delivered_carrier_date")
	if err != nil {
		return Order{}, err
	}
	delivered, err := parseNullableTime(row, "order_delivered_customer_date")
	if err != nil {
		return Order{}, err
	}
	estimated, err := parseNullableTime(row, "order_estimated_delivery_date")
	if err != nil {
		return Order{}, err
	}
	return Order{
		ID:                         id,
		OrderID:                    row["order_id"],
		CustomerID:                 row["customer_id"],
		OrderStatus:                row["order_status"],
		OrderPurchaseTimestamp:     purchased,
		OrderApprovedAt:            approved,
		OrderDeliveredCarrierDate:  carrier,
		OrderDeliveredCustomerDate: delivered,
		OrderEstimatedDeliveryDate: estimated,
	}, nil
}

// OrderItemFromRow builds an OrderItem from an identified extract row.
func OrderItemFromRow(id int64, row tabular.Row) (OrderItem, error) {
	itemID, err := parseInt(row, "order_item_id")
	if err != nil {
		return OrderItem{}, err
	}
	shipBy, err := parseTime(row, "shipping_limit_date")
	if err != nil {
		return OrderItem{}, err
	}
	price, err := parseFloat(row, "price")
	if err != nil {
		return OrderItem{}, err
	}
	freight, err := parseFloat(row, "freight_value")
	if err != nil {
		return OrderItem{}, err
	}
	return OrderItem{
		ID:                id,
		OrderID:           row["order_id"],
		OrderItemID:       itemID,
		ProductID:         row["product_id"],
		SellerID:          row["seller_id"],
		ShippingLimitDate: shipBy,
		Price:             price,
		FreightValue:      freight,
	}, nil
}

// OrderPaymentFromRow builds an OrderPayment from an identified extract row.
func OrderPaymentFromRow(id int64, row tabular.Row) (OrderPayment, error) {
	sequential, err := parseInt(row, "payment_sequential")
	if err != nil {
		return OrderPayment{}, err
	}
	installments, err := parseInt(row, "payment_installments")
	if err != nil {
		return OrderPayment{}, err
	}
	value, err := parseFloat(row, "payment_value")
	if err != nil {
		return OrderPayment{}, err
	}
	return OrderPayment{
		ID:                  id,
		OrderID:             row["order_id"],
		PaymentSequential:   sequential,
		PaymentType:         row["payment_type"],
		PaymentInstallments: installments,
		PaymentValue:        value,
	}, nil
}

// ProductFromRow builds a Product from an identified extract row.
func ProductFromRow(id int64, row tabular.Row) (Product, error) {
	product := Product{
		ID:                  id,
		ProductID:           row["product_id"],
		ProductCategoryName: row["product_category_name"],
	}
	measures := []struct {
		column string
		target **int64
	}{
		{"product_name_length", &product.ProductNameLength},
		{"product_description_length", &product.ProductDescriptionLength},
		{"product_photos_qty", &product.ProductPhotosQty},
		{"product_weight_g", &product.ProductWeightG},
		{"product_length_cm", &product.ProductLengthCm},
		{"product_height_cm", &product.ProductHeightCm},
		{"product_width_cm", &product.ProductWidthCm},
	}
	for _, m := range measures {
		v, err := parseNullableInt(row, m.column)
		if err != nil {
			return Product{}, err
		}
		*m.target = v
	}
	return product, nil
}

// ProductCategoryFromRow builds a ProductCategory from an identified extract row.
func ProductCategoryFromRow(id int64, row tabular.Row) (ProductCategory, error) {
	return ProductCategory{
		ID:                         id,
		ProductCategoryName:        row["product_category_name"],
		ProductCategoryNameEnglish: row["product_category_name_english"],
	}, nil
}

func parseInt(row tabular.Row, column string) (int64, error) {
	raw := strings.TrimSpace(row[column])
	if raw == "" {
		return 0, fmt.Errorf("column %q: empty value", column)
	}
	// Some extracts serialize integer columns as floats ("1.0").
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return int64(v), nil
}

func parseNullableInt(row tabular.Row, column string) (*int64, error) {
	if strings.TrimSpace(row[column]) == "" {
		return nil, nil
	}
	v, err := parseInt(row, column)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseFloat(row tabular.Row, column string) (float64, error) {
	raw := strings.TrimSpace(row[column])
	if raw == "" {
		return 0, fmt.Errorf("column %q: empty value", column)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", column, err)
	}
	return v, nil
}

func parseTime(row tabular.Row, column string) (time.Time, error) {
	raw := strings.TrimSpace(row[column])
	t, err := time.Parse(timestampLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("column %q: %w", column, err)
	}
	return t, nil
}

func parseNullableTime(row tabular.Row, column string) (*time.Time, error) {
	if strings.TrimSpace(row[column]) == "" {
		return nil, nil
	}
	t, err := parseTime(row, column)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
