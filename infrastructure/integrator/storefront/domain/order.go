package storefrontdomain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            string      `json:"id"`
	Date          string      `json:"created_at"`
	Status        string      `json:"status,omitempty"`
	Customer      Customer    `json:"customer"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Items         []OrderItem `json:"items"`
}

type Customer struct {
	ID       string `json:"id,omitempty"`
	Region   string `json:"region,omitempty"`
	AgeGroup string `json:"age_group,omitempty"`
}

type OrderItem struct {
	SKU       string          `json:"sku,omitempty"`
	Product   string          `json:"product_name"`
	Category  string          `json:"category,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

// Status de pedidos que não entram na análise
var IgnoredStatuses = []string{"canceled", "cancelled", "refunded"}

type GetSalesParams struct {
	StartDate time.Time
	EndDate   time.Time
}

// LineID identifica um item do pedido. Pedidos com um único item mantêm o ID do pedido.
func (o Order) LineID(index int) string {
	if len(o.Items) == 1 {
		return o.ID
	}
	return fmt.Sprintf("%s-%d", o.ID, index+1)
}
