package models

import "time"

// DimensionKind discriminates the seven dimension record kinds handled by the
// ETL pipeline. Each kind has a fixed column contract (see RequiredColumns)
// and its own persisted table.
type DimensionKind string

const (
	KindSeller          DimensionKind = "sellers"
	KindCustomer        DimensionKind = "customers"
	KindOrder           DimensionKind = "orders"
	KindOrderItem       DimensionKind = "order_items"
	KindOrderPayment    DimensionKind = "order_payments"
	KindProduct         DimensionKind = "products"
	KindProductCategory DimensionKind = "product_categories"
)

// RequiredColumns lists the column names an uploaded extract must carry for
// each dimension kind. Extra columns are ignored; types are not checked here.
var RequiredColumns = map[DimensionKind][]string{
	KindSeller: {
		"seller_id", "seller_zip_code_prefix", "seller_city", "seller_state",
	},
	KindCustomer: {
		"customer_id", "customer_unique_id", "customer_zip_code_prefix",
		"customer_city", "customer_state",
	},
	KindOrder: {
		"order_id", "order_status", "order_purchase_timestamp",
		"order_approved_at", "order_delivered_carrier_date",
		"order_delivered_customer_date", "order_estimated_delivery_date",
	},
	KindOrderItem: {
		"order_id", "order_item_id", "product_id", "seller_id",
		"shipping_limit_date", "price", "freight_value",
	},
	KindOrderPayment: {
		"order_id", "payment_sequential", "payment_type",
		"payment_installments", "payment_value",
	},
	KindProduct: {
		"product_id", "product_category_name", "product_name_length",
		"product_description_length", "product_photos_qty", "product_weight_g",
		"product_length_cm", "product_height_cm", "product_width_cm",
	},
	KindProductCategory: {
		"product_category_name", "product_category_name_english",
	},
}

// Seller is one row of the sellers dimension.
// @Description Seller dimension record.
type Seller struct {
	ID                  int64  `json:"id" gorm:"primaryKey"`
	SellerID            string `json:"seller_id" gorm:"type:varchar(64);not null"`
	SellerZipCodePrefix int64  `json:"seller_zip_code_prefix"`
	SellerCity          string `json:"seller_city" gorm:"type:varchar(255)"`
	SellerState         string `json:"seller_state" gorm:"type:varchar(8)"`
}

// Customer is one row of the customers dimension.
// @Description Customer dimension record.
type Customer struct {
	ID                    int64  `json:"id" gorm:"primaryKey"`
	CustomerID            string `json:"customer_id" gorm:"type:varchar(64);not null"`
	CustomerUniqueID      string `json:"customer_unique_id" gorm:"type:varchar(64)"`
	CustomerZipCodePrefix int64  `json:"customer_zip_code_prefix"`
	CustomerCity          string `json:"customer_city" gorm:"type:varchar(255)"`
	CustomerState         string `json:"customer_state" gorm:"type:varchar(8)"`
}

// Order is one row of the orders dimension. Every timestamp after the
// purchase timestamp may be absent in the extract (order not yet approved,
// shipped or delivered), hence the pointer fields.
// @Description Order dimension record.
type Order struct {
	ID                         int64      `json:"id" gorm:"primaryKey"`
	OrderID                    string     `json:"order_id" gorm:"type:varchar(64);not null"`
	CustomerID                 string     `json:"customer_id" gorm:"type:varchar(64);not null"`
	OrderStatus                string     `json:"order_status" gorm:"type:varchar(32)"`
	OrderPurchaseTimestamp     time.Time  `json:"order_purchase_timestamp"`
	OrderApprovedAt            *time.Time `json:"order_approved_at"`
	OrderDeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date"`
}

// OrderItem is one row of the order items dimension.
// @Description Order item dimension record.
type OrderItem struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	OrderID           string    `json:"order_id" gorm:"type:varchar(64);not null"`
	OrderItemID       int64     `json:"order_item_id"`
	ProductID         string    `json:"product_id" gorm:"type:varchar(64)"`
	SellerID          string    `json:"seller_id" gorm:"type:varchar(64)"`
	ShippingLimitDate time.Time `json:"shipping_limit_date"`
	Price             float64   `json:"price"`
	FreightValue      float64   `json:"freight_value"`
}

// OrderPayment is one row of the order payments dimension. It is persisted
// and served like the other dimensions but is not part of the fact-table
// join chain.
// @Description Order payment dimension record.
type OrderPayment struct {
	ID                  int64   `json:"id" gorm:"primaryKey"`
	OrderID             string  `json:"order_id" gorm:"type:varchar(64);not null"`
	PaymentSequential   int64   `json:"payment_sequential"`
	PaymentType         string  `json:"payment_type" gorm:"type:varchar(32)"`
	PaymentInstallments int64   `json:"payment_installments"`
	PaymentValue        float64 `json:"payment_value"`
}

// Product is one row of the products dimension. The measure columns are
// nullable in the source extract.
// @Description Product dimension record.
type Product struct {
	ID                       int64  `json:"id" gorm:"primaryKey"`
	ProductID                string `json:"product_id" gorm:"type:varchar(64);not null"`
	ProductCategoryName      string `json:"product_category_name" gorm:"type:varchar(255)"`
	ProductNameLength        *int64 `json:"product_name_length"`
	ProductDescriptionLength *int64 `json:"product_description_length"`
	ProductPhotosQty         *int64 `json:"product_photos_qty"`
	ProductWeightG           *int64 `json:"product_weight_g"`
	ProductLengthCm          *int64 `json:"product_length_cm"`
	ProductHeightCm          *int64 `json:"product_height_cm"`
	ProductWidthCm           *int64 `json:"product_width_cm"`
}

// ProductCategory maps a category name to its English translation.
// @Description Product category dimension record.
type ProductCategory struct {
	ID                         int64  `json:"id" gorm:"primaryKey"`
	ProductCategoryName        string `json:"product_category_name" gorm:"type:varchar(255);not null"`
	ProductCategoryNameEnglish string `json:"product_category_name_english" gorm:"type:varchar(255)"`
}

// FactRecord is one denormalized row of the fact table: one (order, order
// item) combination joined across the dimension tables on their natural keys.
// Dimension-local ids are not carried over; ID is assigned fresh when the
// fact table is built.
// @Description Denormalized fact table record.
type FactRecord struct {
	ID                         int64      `json:"id" gorm:"primaryKey"`
	OrderID                    string     `json:"order_id" gorm:"type:varchar(64);not null"`
	CustomerID                 string     `json:"customer_id" gorm:"type:varchar(64)"`
	OrderStatus                string     `json:"order_status" gorm:"type:varchar(32)"`
	OrderPurchaseTimestamp     time.Time  `json:"order_purchase_timestamp"`
	OrderApprovedAt            *time.Time `json:"order_approved_at"`
	OrderDeliveredCarrierDate  *time.Time `json:"order_delivered_carrier_date"`
	OrderDeliveredCustomerDate *time.Time `json:"order_delivered_customer_date"`
	OrderEstimatedDeliveryDate *time.Time `json:"order_estimated_delivery_date"`
	OrderItemID                int64      `json:"order_item_id"`
	ProductID                  string     `json:"product_id" gorm:"type:varchar(64)"`
	SellerID                   string     `json:"seller_id" gorm:"type:varchar(64)"`
	ShippingLimitDate          time.Time  `json:"shipping_limit_date"`
	Price                      float64    `json:"price"`
	FreightValue               float64    `json:"freight_value"`
	CustomerUniqueID           string     `json:"customer_unique_id" gorm:"type:varchar(64)"`
	CustomerZipCodePrefix      int64      `json:"customer_zip_code_prefix"`
	CustomerCity               string     `json:"customer_city" gorm:"type:varchar(255)"`
	CustomerState              string     `json:"customer_state" gorm:"type:varchar(8)"`
	ProductCategoryName        string     `json:"product_category_name" gorm:"type:varchar(255)"`
	SellerZipCodePrefix        int64      `json:"seller_zip_code_prefix"`
	SellerCity                 string     `json:"seller_city" gorm:"type:varchar(255)"`
	SellerState                string     `json:"seller_state" gorm:"type:varchar(8)"`
	ProductCategoryNameEnglish string     `json:"product_category_name_english" gorm:"type:varchar(255)"`
}

// TopSeller is one ranked row of the top-sellers rollup. ID is the rank.
// @Description Top sellers analytical result row.
type TopSeller struct {
	ID         int64   `json:"id" gorm:"primaryKey"`
	SellerID   string  `json:"seller_id" gorm:"type:varchar(64)"`
	TotalSales float64 `json:"total_sales"`
}

// TopProductCategory is one ranked row of the top-selling-category rollup.
// @Description Top selling product category analytical result row.
type TopProductCategory struct {
	ID                         int64   `json:"id" gorm:"primaryKey"`
	ProductCategoryNameEnglish string  `json:"product_category_name_english" gorm:"type:varchar(255)"`
	TotalSales                 float64 `json:"total_sales"`
}

// OrderStatusCount is one ranked row of the order-status distribution.
// @Description Order status count analytical result row.
type OrderStatusCount struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	OrderStatus string `json:"order_status" gorm:"type:varchar(32)"`
	Count       int64  `json:"count"`
}

// AvgDeliveryDuration is one ranked row of the average-delivery-duration
// rollup, in fractional days.
// @Description Average delivery duration analytical result row.
type AvgDeliveryDuration struct {
	ID                          int64   `json:"id" gorm:"primaryKey"`
	ProductCategoryNameEnglish  string  `json:"product_category_name_english" gorm:"type:varchar(255)"`
	AverageDeliveryDurationDays float64 `json:"average_delivery_duration_days"`
}

// LoyalCustomer is one ranked row of the most-loyal-customers rollup.
// @Description Loyal customers analytical result row.
type LoyalCustomer struct {
	ID               int64  `json:"id" gorm:"primaryKey"`
	CustomerUniqueID string `json:"customer_unique_id" gorm:"type:varchar(64)"`
	NoOfOrders       int64  `json:"no_of_orders"`
}

// RecordID implementations satisfy store.Record for every persisted kind.

func (s Seller) RecordID() int64              { return s.ID }
func (c Customer) RecordID() int64            { return c.ID }
func (o Order) RecordID() int64               { return o.ID }
func (i OrderItem) RecordID() int64           { return i.ID }
func (p OrderPayment) RecordID() int64        { return p.ID }
func (p Product) RecordID() int64             { return p.ID }
func (p ProductCategory) RecordID() int64     { return p.ID }
func (f FactRecord) RecordID() int64          { return f.ID }
func (t TopSeller) RecordID() int64           { return t.ID }
func (t TopProductCategory) RecordID() int64  { return t.ID }
func (o OrderStatusCount) RecordID() int64    { return o.ID }
func (a AvgDeliveryDuration) RecordID() int64 { return a.ID }
func (l LoyalCustomer) RecordID() int64       { return l.ID }
