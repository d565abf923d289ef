package metrics

import "github.com/osse101/CraftingDB_Go/internal/domain"

// RecordOperation counts one catalog mutation by its result
func RecordOperation(operation string, res domain.Result) {
	outcome := OutcomeOK
	if !res.OK() {
		outcome = OutcomeRejected
	}
	CatalogOperationsTotal.WithLabelValues(operation, outcome, string(res.Reason)).Inc()
}

// RecordSave counts one save attempt
func RecordSave(err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	CatalogSavesTotal.WithLabelValues(result).Inc()
}

// SetCatalogSize publishes the current collection sizes
func SetCatalogSize(items, recipes int) {
	CatalogItems.Set(float64(items))
	CatalogRecipes.Set(float64(recipes))
}
