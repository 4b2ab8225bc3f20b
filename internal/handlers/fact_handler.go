package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"orders-etl-service/internal/database"
	"orders-etl-service/internal/etl"
	"orders-etl-service/internal/models"
	"orders-etl-service/internal/store"
)

// readDimensions re-reads all seven dimension tables from storage in
// ingestion order.
func readDimensions(db *gorm.DB) (etl.Dimensions, error) {
	var dims etl.Dimensions
	var err error
	if dims.Orders, err = store.All[models.Order](db); err != nil {
		return dims, err
	}
	if dims.OrderItems, err = store.All[models.OrderItem](db); err != nil {
		return dims, err
	}
	if dims.Customers, err = store.All[models.Customer](db); err != nil {
		return dims, err
	}
	if dims.OrderPayments, err = store.All[models.OrderPayment](db); err != nil {
		return dims, err
	}
	if dims.Products, err = store.All[models.Product](db); err != nil {
		return dims, err
	}
	if dims.Sellers, err = store.All[models.Seller](db); err != nil {
		return dims, err
	}
	if dims.ProductCategories, err = store.All[models.ProductCategory](db); err != nil {
		return dims, err
	}
	return dims, nil
}

// ProcessFactTable godoc
// @Summary Build and persist the fact table
// @Description Join the seven persisted dimension tables on their natural keys, deduplicate, assign fresh ids, and insert the fact rows not yet persisted.
// @Tags fact
// @Produce json
// @Success 200 {object} map[string]interface{} "Inserted and existing fact row counts plus a preview"
// @Failure 404 {object} models.APIError "One or more dimension tables are empty"
// @Failure 500 {object} models.APIError "Storage failure"
// @Router /process_fact_table [post]
func ProcessFactTable(c *gin.Context) {
	db := database.GetDB()

	dims, err := readDimensions(db)
	if err != nil {
		log.Printf("Database operation failed: %v", err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodePersistence,
			"Database operation failed", gin.H{"reason": err.Error()})
		return
	}

	facts, err := etl.BuildFactTable(dims)
	switch {
	case errors.Is(err, etl.ErrEmptyInput):
		RespondWithError(c, http.StatusNotFound, models.ErrorCodeDimensionNotFound,
			"One or more of the dimension tables are empty", gin.H{"reason": err.Error()})
		return
	case errors.Is(err, etl.ErrJoinProducedNothing):
		// A valid outcome of inner-join semantics: every candidate row was
		// missing a match in at least one dimension.
		c.JSON(http.StatusOK, gin.H{
			"status":         "success",
			"message":        "Fact table join produced no rows",
			"body":           []models.FactRecord{},
			"new_count":      0,
			"existing_count": 0,
		})
		return
	case err != nil:
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodeInternalServerError,
			"Error processing the fact table", gin.H{"reason": err.Error()})
		return
	}

	inserted, existing, err := store.UpsertIfNew(db, facts)
	if err != nil {
		log.Printf("Database operation failed: %v", err)
		RespondWithError(c, http.StatusInternalServerError, models.ErrorCodePersistence,
			"Database operation failed, kindly confirm all the dimension tables are loaded",
			gin.H{"reason": err.Error()})
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

// GetFactTable serves the persisted fact table.
func GetFactTable(c *gin.Context) { getTable[models.FactRecord](c, "Fact Table") }
