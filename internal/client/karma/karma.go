// Package karma turns confirmed donations into karma points.
//
// Money earns one point per currency unit. Food earns ten points per meal
// and essentials fifteen per package, where the donation amount counts meals
// or packages. Fulfilling a request earns nothing.
package karma

import (
	"fmt"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
)

var rates = map[models.Category]int{
	models.CategoryMoney:      1,
	models.CategoryFood:       10,
	models.CategoryEssentials: 15,
}

// Rule is a line of the "how karma works" help.
type Rule struct {
	Category models.Category
	Points   int
	Unit     string
}

// Rules lists the rates in display order.
func Rules() []Rule {
	return []Rule{
		{Category: models.CategoryMoney, Points: rates[models.CategoryMoney], Unit: "currency unit donated"},
		{Category: models.CategoryFood, Points: rates[models.CategoryFood], Unit: "meal provided"},
		{Category: models.CategoryEssentials, Points: rates[models.CategoryEssentials], Unit: "essentials package"},
	}
}

// PointsFor returns the karma earned by donating amount to a request of
// category c.
func PointsFor(c models.Category, amount int) (int, error) {
	rate, ok := rates[c]
	if !ok {
		return 0, fmt.Errorf("unknown category %q", c)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %d", amount)
	}
	return rate * amount, nil
}
