package usecase_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/piresc/tripstats/services/trips"
	"github.com/piresc/tripstats/services/trips/mocks"
	"github.com/piresc/tripstats/services/trips/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityCheck(t *testing.T) {
	ctx := context.Background()
	audit := &models.NullFieldAudit{TotalRows: 10, NullDriverID: 4}

	tests := []struct {
		name    string
		check   string
		maxMins int
		setup   func(repo *mocks.MockQualityRepo)
		want    interface{}
		wantErr error
	}{
		{
			name:  "anomalies with default limit",
			check: usecase.CheckAnomalies,
			setup: func(repo *mocks.MockQualityRepo) {
				repo.EXPECT().DurationAnomalies(ctx, usecase.DefaultMaxDurationMinutes).Return([]models.DurationAnomaly{}, nil)
			},
			want: []models.DurationAnomaly{},
		},
		{
			name:    "anomalies with configured limit",
			check:   usecase.CheckAnomalies,
			maxMins: 90,
			setup: func(repo *mocks.MockQualityRepo) {
				repo.EXPECT().DurationAnomalies(ctx, 90).Return([]models.DurationAnomaly{{RequestID: 5, DurationMinutes: -3, Reason: models.AnomalyNegativeDuration}}, nil)
			},
			want: []models.DurationAnomaly{{RequestID: 5, DurationMinutes: -3, Reason: models.AnomalyNegativeDuration}},
		},
		{
			name:  "null audit",
			check: usecase.CheckNulls,
			setup: func(repo *mocks.MockQualityRepo) {
				repo.EXPECT().NullAudit(ctx).Return(audit, nil)
			},
			want: audit,
		},
		{
			name:  "duplicates",
			check: usecase.CheckDuplicates,
			setup: func(repo *mocks.MockQualityRepo) {
				repo.EXPECT().DuplicateKeys(ctx).Return([]models.DuplicateKey{{RequestID: 1, Occurrences: 2}}, nil)
			},
			want: []models.DuplicateKey{{RequestID: 1, Occurrences: 2}},
		},
		{
			name:    "unknown check",
			check:   "orphans",
			setup:   func(repo *mocks.MockQualityRepo) {},
			wantErr: trips.ErrUnknownCheck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockQualityRepo(ctrl)
			tt.setup(repo)
			cfg := &models.Config{Quality: models.QualityConfig{MaxDurationMinutes: tt.maxMins}}

			got, err := usecase.NewQualityUC(cfg, repo).Check(ctx, tt.check)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQualityCheckNames(t *testing.T) {
	uc := usecase.NewQualityUC(&models.Config{}, nil)
	assert.Equal(t, []string{usecase.CheckAnomalies, usecase.CheckNulls, usecase.CheckDuplicates}, uc.CheckNames())
}
