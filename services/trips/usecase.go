package trips

import (
	"context"
	"io"

	"github.com/piresc/tripstats/internal/pkg/models"
)

// LoaderUC loads trip extracts into the trip store
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/tripstats/services/trips LoaderUC,ReportUC,QualityUC
type LoaderUC interface {
	LoadCSV(ctx context.Context, r io.Reader) (*models.LoadResult, error)
}

// ReportUC serves the trip reports by name
type ReportUC interface {
	// Report runs the named report; limit only applies to top-N reports
	Report(ctx context.Context, name string, limit int) (interface{}, error)
	ReportNames() []string
}

// QualityUC runs the data-quality checks by name
type QualityUC interface {
	Check(ctx context.Context, name string) (interface{}, error)
	CheckNames() []string
}
