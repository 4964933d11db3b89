package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SelicRate observação mensal da taxa SELIC (percentual do mês).
type SelicRate struct {
	ID        string
	Month     int // 1–12
	Year      int
	Rate      decimal.Decimal // percentual periódico do mês
	CreatedAt time.Time
	UpdatedAt time.Time
}
