// Package pipeline composes parsing, classification and aggregation into
// the single entry point consumed by external callers.
package pipeline

import (
	"dizimo/cents-csv/internal/aggregator"
	"dizimo/cents-csv/internal/classifier"
	"dizimo/cents-csv/internal/gridparser"
	"dizimo/cents-csv/internal/logging"
	"dizimo/cents-csv/internal/models"

	"github.com/google/uuid"
)

// Run executes the full classification pipeline over a decoded cell grid.
// It holds no state across invocations; the mapping is never mutated. The
// only error is a missing required column in the header row.
func Run(grid [][]models.Cell, mapping models.BucketMapping, logger logging.Logger) (*models.Result, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	logger = logger.WithField("run_id", uuid.NewString())

	records, err := gridparser.Parse(grid, logger)
	if err != nil {
		return nil, err
	}

	classified := classifier.Classify(records, mapping)
	result := aggregator.Aggregate(classified)

	logger.Info("Classification run complete",
		logging.Field{Key: "records", Value: result.Stats.TotalRecords},
		logging.Field{Key: "churches", Value: len(result.Summaries)},
		logging.Field{Key: "duplicates", Value: result.Stats.Duplicates},
		logging.Field{Key: "negatives", Value: result.Stats.Negatives},
		logging.Field{Key: "unmapped", Value: result.Stats.Unmapped})

	return &result, nil
}
