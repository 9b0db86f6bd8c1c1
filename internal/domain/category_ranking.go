package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryRankingResponse struct {
	Period     string                `json:"period"`
	Ranking    []CategoryRankingItem `json:"ranking"`
	LastUpdate time.Time             `json:"last_update"`
}

type CategoryRankingItem struct {
	ID               int             `json:"id"`
	Period           string          `json:"period"` // Formato yyyy-mm (ex: 2024-01)
	Category         string          `json:"category"`
	Revenue          decimal.Decimal `json:"revenue"`
	Orders           int             `json:"orders"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}
