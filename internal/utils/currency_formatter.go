package utils

import (
	"fmt"
	"math"

	"github.com/hance08/teller/internal/constants"
)

func FormatFromCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/float64(constants.CentsPerUnit))
}

func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ToCents rounds to the nearest cent.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * constants.CentsPerUnit))
}

func FromCents(cents int64) float64 {
	return float64(cents) / constants.CentsPerUnit
}
