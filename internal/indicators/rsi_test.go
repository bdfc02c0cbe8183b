package indicators

import "testing"

func TestRSIInsufficientData(t *testing.T) {
	prices := []float64{100, 101, 102}
	if _, ok := RSI(prices, 14); ok {
		t.Fatalf("expected not ok for %d prices", len(prices))
	}
}

func TestRSIMonotonicIncreasing(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	rsi, ok := RSI(prices, 14)
	if !ok {
		t.Fatalf("expected ok")
	}
	if rsi != 100 {
		t.Fatalf("expected RSI 100 for strictly rising prices, got %v", rsi)
	}
}

func TestRSIMonotonicDecreasing(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 200 - float64(i)
	}
	rsi, ok := RSI(prices, 14)
	if !ok {
		t.Fatalf("expected ok")
	}
	if rsi != 0 {
		t.Fatalf("expected RSI 0 for strictly falling prices, got %v", rsi)
	}
}

func TestRSIBounded(t *testing.T) {
	prices := []float64{
		100, 103, 99, 104, 98, 105, 97, 101, 102, 96,
		107, 95, 108, 94, 110, 93, 100, 99, 104, 102,
	}
	rsi, ok := RSI(prices, 14)
	if !ok {
		t.Fatalf("expected ok")
	}
	if rsi < 0 || rsi > 100 {
		t.Fatalf("RSI out of range: %v", rsi)
	}
}
