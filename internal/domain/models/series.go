package models

// PriceSeries is an accepted close-price history for one symbol, oldest
// first. Provider nulls are dropped before construction, so every entry is a
// real close with its timestamp.
type PriceSeries struct {
	Symbol     string
	Interval   string
	Timestamps []int64 // unix seconds, aligned with Closes
	Closes     []float64
}

func (s *PriceSeries) Len() int { return len(s.Closes) }

// LastClose returns the most recent close, or 0 for an empty series.
func (s *PriceSeries) LastClose() float64 {
	if len(s.Closes) == 0 {
		return 0
	}
	return s.Closes[len(s.Closes)-1]
}

// LastTimestamp returns the most recent bar time, or 0 for an empty series.
func (s *PriceSeries) LastTimestamp() int64 {
	if len(s.Timestamps) == 0 {
		return 0
	}
	return s.Timestamps[len(s.Timestamps)-1]
}

// OHLCSeries carries aligned open/high/low/close slices. The engine derives
// it synthetically from closes because the provider path is close-only.
type OHLCSeries struct {
	Open  []float64
	High  []float64
	Low   []float64
	Close []float64
}

func (o *OHLCSeries) Len() int { return len(o.Close) }
