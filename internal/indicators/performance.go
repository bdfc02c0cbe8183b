package indicators

import "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"

// Trading-day windows for trailing returns.
const (
	windowWeek     = 5
	windowMonth    = 20
	windowQuarter  = 60
	windowHalfYear = 120
	windowYear     = 250
)

// PerformanceMetrics computes trailing percentage returns for the standard
// windows plus the 52-week high/low once a full year of candles is available.
// Windows without enough history keep their Has* flag false.
func PerformanceMetrics(candles []models.Candle) models.Performance {
	var perf models.Performance
	if len(candles) < 2 {
		return perf
	}
	current := candles[len(candles)-1].Close

	ret := func(n int) (float64, bool) {
		if len(candles) <= n {
			return 0, false
		}
		old := candles[len(candles)-n].Close
		if old == 0 {
			return 0, false
		}
		return (current - old) / old * 100, true
	}

	perf.WeekReturn, perf.HasWeek = ret(windowWeek)
	perf.MonthReturn, perf.HasMonth = ret(windowMonth)
	perf.QuarterReturn, perf.HasQuarter = ret(windowQuarter)
	perf.HalfYearReturn, perf.HasHalfYear = ret(windowHalfYear)
	perf.YearReturn, perf.HasYear = ret(windowYear)

	if len(candles) >= windowYear {
		year := candles[len(candles)-windowYear:]
		high := year[0].High
		low := year[0].Low
		for _, c := range year[1:] {
			if c.High > high {
				high = c.High
			}
			if c.Low < low {
				low = c.Low
			}
		}
		perf.Week52High = high
		perf.Week52Low = low
		perf.HasRange52 = true
	}
	return perf
}
