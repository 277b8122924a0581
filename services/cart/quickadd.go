package cart

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"drepto/models"
	"drepto/utils"
)

var (
	ErrNameRequired = errors.New("medicine name is required")
	ErrInvalidPrice = errors.New("price must be a number greater than zero")
)

// NewQuickAddItem validates a manually entered medicine. The stored price is the
// canonical number string and the id is the current Unix time in milliseconds.
func NewQuickAddItem(name, price string, now time.Time) (models.CartItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.CartItem{}, ErrNameRequired
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) || p <= 0 {
		return models.CartItem{}, ErrInvalidPrice
	}
	return models.CartItem{
		ID:    models.NumericID(now.UnixMilli()),
		Name:  name,
		Price: utils.FormatPrice(p),
	}, nil
}
