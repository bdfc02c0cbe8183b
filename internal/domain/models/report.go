package models

// Signal values emitted by the engine.
const (
	SignalBuy  = "BUY"
	SignalHold = "HOLD"
	SignalSell = "SELL"
)

// Trend direction and strength labels.
const (
	TrendBullish = "BULLISH"
	TrendBearish = "BEARISH"
	TrendNeutral = "NEUTRAL"

	StrengthStrong   = "STRONG"
	StrengthModerate = "MODERATE"
	StrengthWeak     = "WEAK"
)

// Signal source labels describing how the final signal was produced.
const (
	SourceTraditional      = "TRADITIONAL"
	SourceHybridAgreement  = "HYBRID_AGREEMENT"
	SourceMLHighConfidence = "ML_HIGH_CONFIDENCE"
	SourceModel            = "ML"
	SourceNotTrained       = "NOT_TRAINED"
)

// Volume trend and price-volume correlation labels.
const (
	VolumeIncreasing = "INCREASING"
	VolumeDecreasing = "DECREASING"
	VolumeStable     = "STABLE"

	CorrConfirmatory = "CONFIRMATORY"
	CorrDivergent    = "DIVERGENT"
	CorrNeutral      = "NEUTRAL"
)

// MACDResult holds the MACD line, its signal line and the histogram.
type MACDResult struct {
	Line      float64 `json:"macd_line"`
	Signal    float64 `json:"signal_line"`
	Histogram float64 `json:"histogram"`
}

// BollingerBands holds the three bands for the most recent candle.
type BollingerBands struct {
	Upper  float64 `json:"upper"`
	Middle float64 `json:"middle"`
	Lower  float64 `json:"lower"`
}

// Levels holds the support and resistance levels from the lookback window.
type Levels struct {
	Support    float64 `json:"support"`
	Resistance float64 `json:"resistance"`
}

// TrendInfo classifies the prevailing trend and its strength.
type TrendInfo struct {
	Trend    string `json:"trend"`
	Strength string `json:"strength"`
}

// VolumeAnalysis summarizes volume behavior over the analysis window.
type VolumeAnalysis struct {
	AvgVolume     float64 `json:"avg_volume"`
	CurrentVolume float64 `json:"current_volume"`
	VolumeRatio   float64 `json:"volume_ratio"`
	Trend         string  `json:"trend"`
	OBV           float64 `json:"obv"`
	Correlation   string  `json:"price_volume_correlation"`
}

// Performance holds trailing percentage returns and the 52-week range.
// Boolean flags mark which windows had enough history to compute.
type Performance struct {
	WeekReturn     float64 `json:"week_return"`
	MonthReturn    float64 `json:"month_return"`
	QuarterReturn  float64 `json:"quarter_return"`
	HalfYearReturn float64 `json:"half_year_return"`
	YearReturn     float64 `json:"year_return"`
	Week52High     float64 `json:"week_52_high"`
	Week52Low      float64 `json:"week_52_low"`

	HasWeek     bool `json:"has_week"`
	HasMonth    bool `json:"has_month"`
	HasQuarter  bool `json:"has_quarter"`
	HasHalfYear bool `json:"has_half_year"`
	HasYear     bool `json:"has_year"`
	HasRange52  bool `json:"has_52w_range"`
}

// IndicatorSnapshot carries the raw indicator values behind a report.
// Boolean flags distinguish "computed" from "insufficient history".
type IndicatorSnapshot struct {
	RSI         float64         `json:"rsi"`
	HasRSI      bool            `json:"has_rsi"`
	RSIText     string          `json:"rsi_interpretation"`
	MACD        MACDResult      `json:"macd"`
	HasMACD     bool            `json:"has_macd"`
	MACDText    string          `json:"macd_signal"`
	SMA20       float64         `json:"sma_20"`
	HasSMA20    bool            `json:"has_sma_20"`
	SMA50       float64         `json:"sma_50"`
	HasSMA50    bool            `json:"has_sma_50"`
	SMA200      float64         `json:"sma_200"`
	HasSMA200   bool            `json:"has_sma_200"`
	Bollinger   BollingerBands  `json:"bollinger_bands"`
	HasBands    bool            `json:"has_bollinger_bands"`
}

// ModelPrediction is the classifier's view of a feature vector.
type ModelPrediction struct {
	Signal      string  `json:"signal"`
	Confidence  float64 `json:"confidence"`
	Probability float64 `json:"probability"`
	Source      string  `json:"source"`
}

// AnalyticsReport is the complete output of one analysis call.
// Produced fresh per call; it has no persisted identity.
type AnalyticsReport struct {
	Symbol       string            `json:"symbol,omitempty"`
	Signal       string            `json:"signal"`
	Confidence   float64           `json:"confidence"`
	Trend        string            `json:"trend"`
	Strength     string            `json:"strength"`
	CurrentPrice float64           `json:"current_price"`
	Indicators   IndicatorSnapshot `json:"indicators"`
	Volume       VolumeAnalysis    `json:"volume"`
	Levels       Levels            `json:"levels"`
	Performance  Performance       `json:"performance"`
	MLPrediction *ModelPrediction  `json:"ml_prediction,omitempty"`
	SignalSource string            `json:"signal_source"`
	Summary      string            `json:"summary"`
}
