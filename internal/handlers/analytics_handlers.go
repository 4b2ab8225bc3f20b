package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"orders-etl-service/internal/database"
	"orders-etl-service/internal/etl"
	"orders-etl-service/internal/models"
	"orders-etl-service/internal/store"
)

// runAnalysis recomputes one rollup from the full persisted fact table and
// upserts the ranked result into its own table. Rollup rows are keyed by
// rank, so re-running an unchanged analysis inserts nothing.
func runAnalysis[R store.Record](c *gin.Context, compute func([]models.FactRecord) ([]R, error)) {
	db := database.GetDB()

	facts, err := store.All[models.FactRecord](db)
	if err != nil {
		log.Printf("Database operation failed: %v", err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodePersistence,
			"Database operation failed", gin.H{"reason": err.Error()})
		return
	}
	if len(facts) == 0 {
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeFactTableNotFound,
			"Fact table to be analyzed not found in the database", nil)
		return
	}

	result, err := compute(facts)
	if err != nil {
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error computing the analysis", gin.H{"reason": err.Error()})
		return
	}

	inserted, existing, err := store.UpsertIfNew(db, result)
	if err != nil {
		log.Printf("Database operation failed: %v", err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodePersistence,
			"Database operation failed", gin.H{"reason": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "success",
		"message":        "Data processed successfully",
		"body":           preview(inserted),
		"new_count":      len(inserted),
		"existing_count": len(existing),
	})
}

// LoadTopSellers godoc
// @Summary Compute and persist the top sellers rollup
// @Description Rank sellers by total sales over the fact table, cap at 10, and persist the ranked rows not yet present.
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError "Fact table not loaded"
// @Failure 500 {object} models.APIError
// @Router /load_top_sellers [post]
func LoadTopSellers(c *gin.Context) {
	runAnalysis(c, etl.TopSellers)
}

// LoadTopSellingProductCategory godoc
// @Summary Compute and persist the top selling product category rollup
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_top_selling_product_category [post]
func LoadTopSellingProductCategory(c *gin.Context) {
	runAnalysis(c, etl.TopSellingProductCategory)
}

// LoadOrdersStatusAnalysis godoc
// @Summary Compute and persist the order status distribution
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_orders_status_analysis [post]
func LoadOrdersStatusAnalysis(c *gin.Context) {
	runAnalysis(c, etl.OrdersStatusCount)
}

// LoadAverageDeliveryDuration godoc
// @Summary Compute and persist the average delivery duration per category
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /load_average_delivery_duration [post]
func LoadAverageDeliveryDuration(c *gin.Context) {
	runAnalysis(c, etl.AverageDeliveryDuration)
}

// AnalyzeLoyalCustomers godoc
// @Summary Compute and persist the most loyal customers rollup
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /analyze_loyal_customers [post]
func AnalyzeLoyalCustomers(c *gin.Context) {
	runAnalysis(c, etl.LoyalCustomers)
}

// GetTopSellers serves the persisted top sellers rollup.
func GetTopSellers(c *gin.Context) { getTable[models.TopSeller](c, "Top Sellers") }

// GetTopSellingProductCategory serves the persisted top category rollup.
func GetTopSellingProductCategory(c *gin.Context) {
	getTable[models.TopProductCategory](c, "Top Selling Product Category")
}

// GetOrdersStatusAnalysis serves the persisted order status distribution.
func GetOrdersStatusAnalysis(c *gin.Context) {
	getTable[models.OrderStatusCount](c, "Orders Status Analysis")
}

// GetAverageDeliveryDuration serves the persisted delivery duration rollup.
func GetAverageDeliveryDuration(c *gin.Context) {
	getTable[models.AvgDeliveryDuration](c, "Orders Delivery Analysis")
}

// GetLoyalCustomers serves the persisted loyal customers rollup.
func GetLoyalCustomers(c *gin.Context) { getTable[models.LoyalCustomer](c, "Loyal Customers") }
