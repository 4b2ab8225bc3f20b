package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the ETL and analytics API routes with the given
// Gin router.
func RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	// Dimension ingestion and retrieval
	api.POST("/load_sellers_data", LoadSellersData)
	api.GET("/get_sellers", GetSellers)
	api.POST("/load_customers_data", LoadCustomersData)
	api.GET("/get_customers", GetCustomers)
	api.POST("/load_orders_data", LoadOrdersData)
	api.GET("/get_orders", GetOrders)
	api.POST("/load_order_items_data", LoadOrderItemsData)
	api.GET("/get_order_items", GetOrderItems)
	api.POST("/load_order_payments_data", LoadOrderPaymentsData)
	api.GET("/get_order_payments", GetOrderPayments)
	api.POST("/load_products_data", LoadProductsData)
	api.GET("/get_products", GetProducts)
	api.POST("/load_products_category", LoadProductsCategory)
	api.GET("/get_products_category", GetProductsCategory)

	// Fact table
	api.POST("/process_fact_table", ProcessFactTable)
	api.GET("/get_fact_table", GetFactTable)

	// Analytics
	api.POST("/load_top_sellers", LoadTopSellers)
	api.GET("/get_top_sellers", GetTopSellers)
	api.POST("/load_top_selling_product_category", LoadTopSellingProductCategory)
	api.GET("/get_top_selling_product_category", GetTopSellingProductCategory)
	api.POST("/load_orders_status_analysis", LoadOrdersStatusAnalysis)
	api.GET("/get_orders_status_analysis", GetOrdersStatusAnalysis)
	api.POST("/load_average_delivery_duration", LoadAverageDeliveryDuration)
	api.GET("/get_average_delivery_duration", GetAverageDeliveryDuration)
	api.POST("/analyze_loyal_customers", AnalyzeLoyalCustomers)
	api.GET("/get_loyal_customers", GetLoyalCustomers)
}
