package dataset

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"
)

// Load reads the analyzer output from the primary path, falling back to the
// legacy path, falling back to an empty dataset. Load never fails: a service
// with no data still serves its endpoints (fail-open, spec'd behavior of the
// dashboard).
func Load(primary, legacy string, logger *zap.Logger) *Dataset {
	for _, path := range []string{primary, legacy} {
		if path == "" {
			continue
		}
		ds, err := loadFile(path)
		if err != nil {
			logger.Warn("analysis data source unavailable",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		logger.Info("analysis data loaded",
			zap.String("path", path),
			zap.Int("emails", len(ds.Emails)),
			zap.Bool("enhanced", ds.Enhanced),
		)
		return ds
	}

	logger.Warn("no analysis data available, serving empty dataset")
	return Empty()
}

func loadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return normalize(&raw), nil
}
