package etl

import (
	"sort"

	"orders-etl-service/internal/models"
)

// Every rollup recomputes from the full fact table, caps the result at
// resultCap ranked rows, and assigns the row id in rank order (rank 1 → id 1).
// Ties in the aggregate value keep the order in which the group key first
// appears in the fact table (the grouping is insertion-ordered and the sort
// is stable).
const resultCap = 10

// microsecondsPerDay converts a timestamp-difference in microseconds to days.
const microsecondsPerDay = 24 * 60 * 60 * 1000000

// groupAgg accumulates one group's aggregate during a pass over the facts.
type groupAgg struct {
	key   string
	sum   float64
	count int64
}

// groupBy folds the fact rows into per-key aggregates, preserving
// first-appearance order of the keys.
func groupBy(facts []models.FactRecord, key func(models.FactRecord) string, fold func(*groupAgg, models.FactRecord)) []*groupAgg {
	index := make(map[string]*groupAgg)
	var groups []*groupAgg
	for _, fact := range facts {
		k := key(fact)
		g, ok := index[k]
		if !ok {
			g = &groupAgg{key: k}
			index[k] = g
			groups = append(groups, g)
		}
		fold(g, fact)
	}
	return groups
}

// sortAndCap orders groups descending by the given measure and truncates to
// the result cap.
func sortAndCap(groups []*groupAgg, measure func(*groupAgg) float64) []*groupAgg {
	sort.SliceStable(groups, func(i, j int) bool {
		return measure(groups[i]) > measure(groups[j])
	})
	if len(groups) > resultCap {
		groups = groups[:resultCap]
	}
	return groups
}

// TopSellers ranks sellers by summed item price over the fact table.
func TopSellers(facts []models.FactRecord) ([]models.TopSeller, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyInput
	}
	groups := groupBy(facts,
		func(f models.FactRecord) string { return f.SellerID },
		func(g *groupAgg, f models.FactRecord) { g.sum += f.Price })
	groups = sortAndCap(groups, func(g *groupAgg) float64 { return g.sum })

	result := make([]models.TopSeller, len(groups))
	for i, g := range groups {
		result[i] = models.TopSeller{ID: int64(i) + 1, SellerID: g.key, TotalSales: g.sum}
	}
	return result, nil
}

// TopSellingProductCategory ranks English category names by summed item price.
func TopSellingProductCategory(facts []models.FactRecord) ([]models.TopProductCategory, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyInput
	}
	groups := groupBy(facts,
		func(f models.FactRecord) string { return f.ProductCategoryNameEnglish },
		func(g *groupAgg, f models.FactRecord) { g.sum += f.Price })
	groups = sortAndCap(groups, func(g *groupAgg) float64 { return g.sum })

	result := make([]models.TopProductCategory, len(groups))
	for i, g := range groups {
		result[i] = models.TopProductCategory{ID: int64(i) + 1, ProductCategoryNameEnglish: g.key, TotalSales: g.sum}
	}
	return result, nil
}

// OrdersStatusCount counts fact rows per order status.
func OrdersStatusCount(facts []models.FactRecord) ([]models.OrderStatusCount, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyInput
	}
	groups := groupBy(facts,
		func(f models.FactRecord) string { return f.OrderStatus },
		func(g *groupAgg, f models.FactRecord) { g.count++ })
	groups = sortAndCap(groups, func(g *groupAgg) float64 { return float64(g.count) })

	result := make([]models.OrderStatusCount, len(groups))
	for i, g := range groups {
		result[i] = models.OrderStatusCount{ID: int64(i) + 1, OrderStatus: g.key, Count: g.count}
	}
	return result, nil
}

// AverageDeliveryDuration averages, per English category name, the gap
// between purchase and customer delivery in fractional days. Fact rows
// without a delivery date contribute nothing to their group; a group whose
// rows all lack a delivery date is dropped (null-mean semantics).
func AverageDeliveryDuration(facts []models.FactRecord) ([]models.AvgDeliveryDuration, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyInput
	}
	groups := groupBy(facts,
		func(f models.FactRecord) string { return f.ProductCategoryNameEnglish },
		func(g *groupAgg, f models.FactRecord) {
			if f.OrderDeliveredCustomerDate == nil {
				return
			}
			gap := f.OrderDeliveredCustomerDate.Sub(f.OrderPurchaseTimestamp)
			g.sum += float64(gap.Microseconds()) / microsecondsPerDay
			g.count++
		})

	measured := groups[:0]
	for _, g := range groups {
		if g.count > 0 {
			measured = append(measured, g)
		}
	}
	measured = sortAndCap(measured, func(g *groupAgg) float64 { return g.sum / float64(g.count) })

	result := make([]models.AvgDeliveryDuration, len(measured))
	for i, g := range measured {
		result[i] = models.AvgDeliveryDuration{
			ID:                          int64(i) + 1,
			ProductCategoryNameEnglish:  g.key,
			AverageDeliveryDurationDays: g.sum / float64(g.count),
		}
	}
	return result, nil
}

// LoyalCustomers ranks unique customers by their number of fact rows.
func LoyalCustomers(facts []models.FactRecord) ([]models.LoyalCustomer, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyInput
	}
	groups := groupBy(facts,
		func(f models.FactRecord) string { return f.CustomerUniqueID },
		func(g *groupAgg, f models.FactRecord) { g.count++ })
	groups = sortAndCap(groups, func(g *groupAgg) float64 { return float64(g.count) })

	result := make([]models.LoyalCustomer, len(groups))
	for i, g := range groups {
		result[i] = models.LoyalCustomer{ID: int64(i) + 1, CustomerUniqueID: g.key, NoOfOrders: g.count}
	}
	return result, nil
}
