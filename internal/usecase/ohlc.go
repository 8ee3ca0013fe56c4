package usecase

import (
	"math/rand"

	"github.com/dancaldera/investment-api/internal/domain/models"
)

// SynthesizeOHLC derives an open/high/low surrogate from a close-only
// series. Highs and lows take independent positive jitter draws up to
// maxJitter; opens replay the previous close (the first bar opens at
// its own close). The random source is a parameter so callers can seed
// it for reproducible output.
func SynthesizeOHLC(closes []float64, maxJitter float64, rnd *rand.Rand) *models.OHLCSeries {
	n := len(closes)
	o := &models.OHLCSeries{
		Open:  make([]float64, n),
		High:  make([]float64, n),
		Low:   make([]float64, n),
		Close: closes,
	}
	for i, c := range closes {
		o.High[i] = c * (1 + rnd.Float64()*maxJitter)
		o.Low[i] = c * (1 - rnd.Float64()*maxJitter)
		if i == 0 {
			o.Open[i] = c
		} else {
			o.Open[i] = closes[i-1]
		}
	}
	return o
}
