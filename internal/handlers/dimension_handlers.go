package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"orders-etl-service/internal/database"
	"orders-etl-service/internal/models"
	"orders-etl-service/internal/store"
	"orders-etl-service/internal/tabular"
)

// loadDimension runs the full ingestion flow for one dimension kind: save
// the upload, load the table, validate the kind's column contract, assign
// synthetic ids, build typed records, and upsert only the records whose id
// is not yet persisted.
func loadDimension[T store.Record](c *gin.Context, kind models.DimensionKind, label string, fromRow func(int64, tabular.Row) (T, error)) {
	path, fingerprint, err := saveUpload(c)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeInvalidUpload,
			fmt.Sprintf("An error occurred while uploading, kindly upload a valid %s file", label),
			gin.H{"reason": err.Error()})
		return
	}

	table, err := tabular.Load(path)
	if err != nil {
		code := models.ErrorCodeInvalidUpload
		if errors.Is(err, tabular.ErrEmptyTable) {
			code = models.ErrorCodeEmptyTable
		}
		RespondWithError(c, http.StatusBadRequest, code,
			fmt.Sprintf("Could not read the uploaded %s file", label),
			gin.H{"reason": err.Error()})
		return
	}

	// Column contract is checked before any identity or persistence work.
	if err := tabular.RequireColumns(table, models.RequiredColumns[kind]); err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation,
			fmt.Sprintf("Invalid file, kindly provide the %s file", label),
			gin.H{"reason": err.Error()})
		return
	}

	rows, err := tabular.AssignIDs(table)
	if err != nil {
		RespondWithError(c, http.StatusBadRequest, models.ErrorCodeEmptyTable,
			fmt.Sprintf("The uploaded %s file has no rows", label), nil)
		return
	}

	records := make([]T, 0, len(rows))
	for _, row := range rows {
		record, err := fromRow(row.ID, row.Row)
		if err != nil {
			RespondWithError(c, http.StatusBadRequest, models.ErrorCodeValidation,
				fmt.Sprintf("Invalid value in the %s file", label),
				gin.H{"row": row.ID, "reason": err.Error()})
			return
		}
		records = append(records, record)
	}

	inserted, existing, err := store.UpsertIfNew(database.GetDB(), records)
	if err != nil {
		log.Printf("Database operation failed: %v", err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodePersistence,
			"Database operation failed", gin.H{"reason": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "success",
		"message":          "Data processed successfully",
		"body":             preview(inserted),
		"new_count":        len(inserted),
		"existing_count":   len(existing),
		"file_fingerprint": fingerprint,
	})
}

// getTable serves the first five persisted records of a kind plus the total
// count.
func getTable[T store.Record](c *gin.Context, label string) {
	records, err := store.All[T](database.GetDB())
	if err != nil {
		log.Printf("An error occurred retrieving %s data: %v", label, err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodePersistence,
			fmt.Sprintf("Error retrieving %s data", label), gin.H{"reason": err.Error()})
		return
	}

	message := fmt.Sprintf("%s data retrieved successfully", label)
	if len(records) == 0 {
		message = fmt.Sprintf("No %s data available", label)
	}
	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"message":       message,
		"body":          preview(records),
		"count_records": len(records),
	})
}

// LoadSellersData godoc
// @Summary Ingest the sellers extract
// @Description Upload a sellers CSV/XLSX file, validate its columns, and insert the rows not yet persisted.
// @Tags dimensions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Sellers extract"
// @Success 200 {object} map[string]interface{} "Inserted and existing record counts plus a preview"
// @Failure 400 {object} models.APIError "Invalid upload or missing required columns"
// @Failure 500 {object} models.APIError "Storage failure"
// @Router /load_sellers_data [post]
func LoadSellersData(c *gin.Context) {
	loadDimension(c, models.KindSeller, "Sellers", models.SellerFromRow)
}

// LoadCustomersData godoc
// @Summary Ingest the customers extract
// @Tags dimensions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Customers extract"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_customers_data [post]
func LoadCustomersData(c *gin.Context) {
	loadDimension(c, models.KindCustomer, "Customers", models.CustomerFromRow)
}

// LoadOrdersData godoc
// @Summary Ingest the orders extract
// @Tags dimensions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Orders extract"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_orders_data [post]
func LoadOrdersData(c *gin.Context) {
	loadDimension(c, models.KindOrder, "Orders", models.OrderFromRow)
}

// LoadOrderItemsData godoc
// @Summary Ingest the order items extract
// @Tags dimensions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Order items extract"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_order_items_data [post]
func LoadOrderItemsData(c *gin.Context) {
	loadDimension(c, models.KindOrderItem, "Order Items", models.OrderItemFromRow)
}

// LoadOrderPaymentsData godoc
// @Summary Ingest the order payments extract
// @Tags dimensions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Order payments extract"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_order_payments_data [post]
func LoadOrderPaymentsData(c *gin.Context) {
	loadDimension(c, models.KindOrderPayment, "Order Payments", models.OrderPaymentFromRow)
}

// LoadProductsData godoc
// @Summary Ingest the products extract
// @Tags dimensions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Products extract"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_products_data [post]
func LoadProductsData(c *gin.Context) {
	loadDimension(c, models.KindProduct, "Products", models.ProductFromRow)
}

// LoadProductsCategory godoc
// @Summary Ingest the product categories extract
// @Tags dimensions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Product categories extract"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_products_category [post]
func LoadProductsCategory(c *gin.Context) {
	loadDimension(c, models.KindProductCategory, "Product Category", models.ProductCategoryFromRow)
}

// GetSellers serves the persisted sellers dimension.
func GetSellers(c *gin.Context) { getTable[models.Seller](c, "Sellers") }

// GetCustomers serves the persisted customers dimension.
func GetCustomers(c *gin.Context) { getTable[models.Customer](c, "Customers") }

// GetOrders serves the persisted orders dimension.
func GetOrders(c *gin.Context) { getTable[models.Order](c, "Orders") }

// GetOrderItems serves the persisted order items dimension.
func GetOrderItems(c *gin.Context) { getTable[models.OrderItem](c, "Order Items") }

// GetOrderPayments serves the persisted order payments dimension.
func GetOrderPayments(c *gin.Context) { getTable[models.OrderPayment](c, "Order Payments") }

// GetProducts serves the persisted products dimension.
func GetProducts(c *gin.Context) { getTable[models.Product](c, "Products") }

// GetProductsCategory serves the persisted product categories dimension.
func GetProductsCategory(c *gin.Context) { getTable[models.ProductCategory](c, "Product Categories") }
