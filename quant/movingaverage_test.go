package quant

import (
	"testing"
)

func TestSimpleMovingAverage(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	got := SimpleMovingAverage(xs, 3)
	want := []float64{1, 1.5, 2, 3, 4}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("SimpleMovingAverage()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExponentialMovingAverage(t *testing.T) {
	xs := []float64{1, 1, 1}
	got := ExponentialMovingAverage(xs, 3)
	for i, v := range got {
		if !approx(v, 1) {
			t.Errorf("ExponentialMovingAverage() of a constant series [%d] = %v, want 1", i, v)
		}
	}

	// alpha = 2/(2+1): ema_1 = (2*2 + 1*1)/3
	got = ExponentialMovingAverage([]float64{1, 2}, 2)
	if want := (2*2.0 + 1) / 3; !approx(got[1], want) {
		t.Errorf("ExponentialMovingAverage()[1] = %v, want %v", got[1], want)
	}
}

func TestBollingerBands(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	middle, upper, lower := BollingerBands(xs, 3, 2)
	for i := range xs {
		if upper[i] < middle[i] || lower[i] > middle[i] {
			t.Errorf("BollingerBands() bands cross the middle at %d: %v %v %v", i, lower[i], middle[i], upper[i])
		}
	}
	// constant series: all bands collapse on the value
	middle, upper, lower = BollingerBands([]float64{2, 2, 2}, 2, 2)
	if !approx(upper[2], 2) || !approx(lower[2], 2) || !approx(middle[2], 2) {
		t.Errorf("BollingerBands() of a constant series = %v %v %v, want all 2", lower[2], middle[2], upper[2])
	}
}
