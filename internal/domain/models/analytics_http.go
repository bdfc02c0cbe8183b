package models

// Requests for the analytics HTTP endpoints. Defined in domain for
// consistency and reuse.

// CandlePayload is the wire form of a candle in analyze requests.
type CandlePayload struct {
	Timestamp int64   `json:"timestamp" validate:"required"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close" validate:"required"`
	Volume    float64 `json:"volume"`
}

type AnalyzeRequest struct {
	Symbol  string          `json:"symbol"`
	Candles []CandlePayload `json:"candles" validate:"required,min=1,dive"`
}

type SymbolAnalyzeRequest struct {
	Symbol string `query:"symbol" json:"symbol" validate:"required"`
	N      int    `query:"n" json:"n" default:"300" validate:"gte=20,lte=5000"`
	TF     string `query:"tf" json:"tf" default:"1d" validate:"oneof=1m 5m 1d"`
}

type TrainRequest struct {
	// Samples controls synthetic generation when Examples is empty.
	Samples  int               `json:"samples" default:"5000" validate:"gte=0,lte=200000"`
	Examples []TrainingExample `json:"examples,omitempty"`
}

type ImportanceRequest struct {
	TopN int `query:"top_n" json:"top_n" default:"10" validate:"gte=1,lte=50"`
}
