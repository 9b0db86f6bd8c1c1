package ranking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
)

type RankingService interface {
	GetCategoryRanking(ctx context.Context, period string) (*domain.CategoryRankingResponse, error)
	UpdateCategoryRanking(ctx context.Context, period string, groups []domain.GroupTotals) ([]*domain.CategoryRankingItem, error)
}

type CategoryRankingService struct {
	CategoryRankingRepository repository.CategoryRankingRepository
}

func NewCategoryRankingService(categoryRankingRepository repository.CategoryRankingRepository) RankingService {
	return &CategoryRankingService{
		CategoryRankingRepository: categoryRankingRepository,
	}
}

// GetCategoryRanking aceita período vazio, que significa o último período gravado
func (s *CategoryRankingService) GetCategoryRanking(ctx context.Context, period string) (*domain.CategoryRankingResponse, error) {
	if period != "" {
		if _, err := time.Parse(domain.PeriodLayout, period); err != nil {
			return nil, NewRankingError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, "período deve estar no formato yyyy-mm")
		}
	}

	ranking, err := s.CategoryRankingRepository.GetRanking(ctx, period)
	if err != nil {
		return nil, NewRankingError(err, apiErrors.ErrDatabaseOperation, "erro ao buscar ranking de categorias")
	}

	return ranking, nil
}

// UpdateCategoryRanking recalcula as posições do período e grava o resultado
func (s *CategoryRankingService) UpdateCategoryRanking(ctx context.Context, period string, groups []domain.GroupTotals) ([]*domain.CategoryRankingItem, error) {
	if len(groups) == 0 {
		return []*domain.CategoryRankingItem{}, nil
	}

	previous, err := s.CategoryRankingRepository.GetByPeriod(ctx, period)
	if err != nil {
		return nil, NewRankingError(err, apiErrors.ErrDatabaseOperation, "erro ao buscar ranking anterior")
	}

	rankingsBeforeUpdate := make(map[string]domain.CategoryRankingItem, len(previous))
	for _, item := range previous {
		rankingsBeforeUpdate[item.Category] = item
	}

	updatedRankings := BuildCategoryRanking(period, groups, rankingsBeforeUpdate)

	if err := s.CategoryRankingRepository.SaveOrUpdate(ctx, period, updatedRankings); err != nil {
		return nil, NewRankingError(err, apiErrors.ErrDatabaseOperation, "erro ao salvar ranking de categorias")
	}

	logrus.WithFields(logrus.Fields{
		"period":     period,
		"categories": len(updatedRankings),
	}).Info("Ranking de categorias atualizado")

	return updatedRankings, nil
}

// BuildCategoryRanking ordena as categorias pela receita e calcula a variação de posição
// em relação ao ranking anterior do mesmo período. Variação positiva = subiu.
func BuildCategoryRanking(
	period string,
	groups []domain.GroupTotals,
	rankingsBeforeUpdate map[string]domain.CategoryRankingItem,
) []*domain.CategoryRankingItem {
	ranked := domain.RankGroups(groups, 0)

	updatedRankings := make([]*domain.CategoryRankingItem, 0, len(ranked))
	for _, group := range ranked {
		item := &domain.CategoryRankingItem{
			Period:   period,
			Category: group.Key,
			Revenue:  group.Revenue,
			Orders:   group.Orders,
			Position: group.Position,
		}

		if before, exists := rankingsBeforeUpdate[group.Key]; exists {
			item.PositionChange = before.Position - item.Position
			item.PreviousPosition = before.Position
		}

		updatedRankings = append(updatedRankings, item)
	}

	return updatedRankings
}
