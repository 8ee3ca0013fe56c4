package models

import "time"

// AnalyzeRequest is the HTTP query for an on-demand analysis. Unknown
// intervals are accepted here and normalized by the engine.
type AnalyzeRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required,max=12"`
	Interval string `query:"interval" json:"interval" default:"1d" validate:"max=8"`
}

// AnalyzeResponse is the JSON envelope payload for a SignalResult.
type AnalyzeResponse struct {
	Symbol         string    `json:"symbol"`
	Interval       string    `json:"interval"`
	Price          float64   `json:"price"`
	Bullish        float64   `json:"bullish"`
	Bearish        float64   `json:"bearish"`
	Confidence     string    `json:"confidence"`
	Classification string    `json:"classification"`
	Reasons        []string  `json:"reasons,omitempty"`
	Report         string    `json:"report"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// NewAnalyzeResponse maps a SignalResult onto the response DTO.
func NewAnalyzeResponse(r *SignalResult) *AnalyzeResponse {
	return &AnalyzeResponse{
		Symbol:         r.Symbol,
		Interval:       r.Interval,
		Price:          r.Price,
		Bullish:        r.Bullish,
		Bearish:        r.Bearish,
		Confidence:     r.Confidence,
		Classification: r.Classification,
		Reasons:        r.Reasons,
		Report:         r.Report,
		GeneratedAt:    r.GeneratedAt,
	}
}
