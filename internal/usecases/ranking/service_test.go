package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func groups() []domain.GroupTotals {
	return []domain.GroupTotals{
		{Key: "Books", Revenue: decimal.NewFromInt(100), Orders: 3},
		{Key: "Electronics", Revenue: decimal.NewFromInt(500), Orders: 2},
		{Key: "Toys", Revenue: decimal.NewFromInt(100), Orders: 5},
	}
}

func TestBuildCategoryRanking(t *testing.T) {
	tests := []struct {
		name     string
		previous map[string]domain.CategoryRankingItem
		validate func(t *testing.T, result []*domain.CategoryRankingItem)
	}{
		{
			name:     "Sem ranking anterior",
			previous: map[string]domain.CategoryRankingItem{},
			validate: func(t *testing.T, result []*domain.CategoryRankingItem) {
				require.Len(t, result, 3)
				assert.Equal(t, "Electronics", result[0].Category)
				assert.Equal(t, 1, result[0].Position)
				// Empate em 100 decidido pela chave
				assert.Equal(t, "Books", result[1].Category)
				assert.Equal(t, "Toys", result[2].Category)
				for _, item := range result {
					assert.Equal(t, "2024-01", item.Period)
					assert.Zero(t, item.PositionChange)
					assert.Zero(t, item.PreviousPosition)
				}
			},
		},
		{
			name: "Categoria que subiu e categoria que desceu",
			previous: map[string]domain.CategoryRankingItem{
				"Electronics": {Category: "Electronics", Position: 3},
				"Books":       {Category: "Books", Position: 1},
			},
			validate: func(t *testing.T, result []*domain.CategoryRankingItem) {
				require.Len(t, result, 3)
				assert.Equal(t, 2, result[0].PositionChange)
				assert.Equal(t, 3, result[0].PreviousPosition)
				assert.Equal(t, -1, result[1].PositionChange)
				assert.Equal(t, 1, result[1].PreviousPosition)
				assert.Zero(t, result[2].PreviousPosition)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildCategoryRanking("2024-01", groups(), tt.previous))
		})
	}
}

func TestCategoryRankingService_UpdateCategoryRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCategoryRankingRepository(ctrl)
	service := NewCategoryRankingService(repo)

	repo.EXPECT().
		GetByPeriod(gomock.Any(), "2024-01").
		Return([]domain.CategoryRankingItem{{Category: "Toys", Position: 1}}, nil)
	repo.EXPECT().
		SaveOrUpdate(gomock.Any(), "2024-01", gomock.Len(3)).
		Return(nil)

	result, err := service.UpdateCategoryRanking(context.Background(), "2024-01", groups())

	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, "Toys", result[2].Category)
	assert.Equal(t, -2, result[2].PositionChange)
}

func TestCategoryRankingService_UpdateCategoryRanking_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(repo *mocks.MockCategoryRankingRepository)
	}{
		{
			name: "Erro ao buscar ranking anterior",
			setup: func(repo *mocks.MockCategoryRankingRepository) {
				repo.EXPECT().GetByPeriod(gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão perdida"))
			},
		},
		{
			name: "Erro ao salvar",
			setup: func(repo *mocks.MockCategoryRankingRepository) {
				repo.EXPECT().GetByPeriod(gomock.Any(), gomock.Any()).Return(nil, nil)
				repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("conexão perdida"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockCategoryRankingRepository(ctrl)
			tt.setup(repo)

			_, err := NewCategoryRankingService(repo).UpdateCategoryRanking(context.Background(), "2024-01", groups())

			var rankingErr *RankingError
			require.ErrorAs(t, err, &rankingErr)
			assert.Equal(t, apiErrors.ErrDatabaseOperation, rankingErr.Code)
		})
	}
}

func TestCategoryRankingService_UpdateCategoryRanking_NoGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCategoryRankingRepository(ctrl)

	result, err := NewCategoryRankingService(repo).UpdateCategoryRanking(context.Background(), "2024-01", nil)

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCategoryRankingService_GetCategoryRanking(t *testing.T) {
	tests := []struct {
		name     string
		period   string
		setup    func(repo *mocks.MockCategoryRankingRepository)
		wantCode string
	}{
		{
			name:   "Período informado",
			period: "2024-02",
			setup: func(repo *mocks.MockCategoryRankingRepository) {
				repo.EXPECT().GetRanking(gomock.Any(), "2024-02").Return(&domain.CategoryRankingResponse{Period: "2024-02"}, nil)
			},
		},
		{
			name:   "Último período",
			period: "",
			setup: func(repo *mocks.MockCategoryRankingRepository) {
				repo.EXPECT().GetRanking(gomock.Any(), "").Return(&domain.CategoryRankingResponse{Period: "2024-03"}, nil)
			},
		},
		{
			name:     "Período em formato inválido",
			period:   "02-2024",
			setup:    func(repo *mocks.MockCategoryRankingRepository) {},
			wantCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Erro no banco",
			period: "2024-02",
			setup: func(repo *mocks.MockCategoryRankingRepository) {
				repo.EXPECT().GetRanking(gomock.Any(), "2024-02").Return(nil, errors.New("timeout"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockCategoryRankingRepository(ctrl)
			tt.setup(repo)

			result, err := NewCategoryRankingService(repo).GetCategoryRanking(context.Background(), tt.period)

			if tt.wantCode != "" {
				var rankingErr *RankingError
				require.ErrorAs(t, err, &rankingErr)
				assert.Equal(t, tt.wantCode, rankingErr.Code)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, result)
		})
	}
}
