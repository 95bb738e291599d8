package quant

import "math"

// Moving-average helpers over a single price series. These are not part of
// the aggregation pipeline; they support technical summaries of a holding's
// price history.

// SimpleMovingAverage returns the rolling arithmetic mean of xs over the
// given window. The first window-1 entries are not defined and returned as
// the mean of the values available so far, mirroring an expanding start.
func SimpleMovingAverage(xs []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	out := make([]float64, len(xs))
	sum := 0.0
	for i, v := range xs {
		sum += v
		n := window
		if i+1 < window {
			n = i + 1
		} else if i >= window {
			sum -= xs[i-window]
		}
		out[i] = sum / float64(n)
	}
	return out
}

// ExponentialMovingAverage returns the exponentially weighted moving average
// of xs with smoothing factor 2/(window+1).
func ExponentialMovingAverage(xs []float64, window int) []float64 {
	if window < 1 {
		window = 1
	}
	alpha := 2.0 / (float64(window) + 1)
	out := make([]float64, len(xs))
	for i, v := range xs {
		if i == 0 {
			out[0] = v
			continue
		}
		out[i] = alpha*v + (1-alpha)*out[i-1]
	}
	return out
}

// BollingerBands returns the simple moving average of xs together with the
// upper and lower bands at k rolling standard deviations.
func BollingerBands(xs []float64, window int, k float64) (middle, upper, lower []float64) {
	if window < 1 {
		window = 1
	}
	middle = SimpleMovingAverage(xs, window)
	upper = make([]float64, len(xs))
	lower = make([]float64, len(xs))
	for i := range xs {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		// rolling population deviation around the window mean
		var sq float64
		n := i + 1 - start
		for j := start; j <= i; j++ {
			d := xs[j] - middle[i]
			sq += d * d
		}
		sd := 0.0
		if n > 1 {
			sd = math.Sqrt(sq / float64(n))
		}
		upper[i] = middle[i] + k*sd
		lower[i] = middle[i] - k*sd
	}
	return middle, upper, lower
}
