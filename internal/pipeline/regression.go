package pipeline

// LinearFit is an ordinary least squares line y = Intercept + Slope*x
// fitted over x = 0..N-1.
//
// With fewer than two points the line is undefined; the fit is then flat at
// the mean of the points (0 for none) and Degenerate is set.
type LinearFit struct {
	Slope      float64
	Intercept  float64
	RSquared   float64
	N          int
	Degenerate bool
}

// At evaluates the fitted line at x.
func (f LinearFit) At(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// FitLine fits ys against their indices using the closed-form OLS formulas.
func FitLine(ys []float64) LinearFit {
	if len(ys) == 0 {
		return LinearFit{Degenerate: true}
	}

	n := float64(len(ys))
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range ys {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}

	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return LinearFit{Intercept: sumY / n, N: len(ys), Degenerate: true}
	}

	fit := LinearFit{N: len(ys)}
	fit.Slope = (n*sumXY - sumX*sumY) / denom
	fit.Intercept = (sumY - fit.Slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range ys {
		d := y - fit.At(float64(i))
		ssRes += d * d
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot == 0 {
		fit.RSquared = 1
	} else {
		fit.RSquared = 1 - ssRes/ssTot
	}
	return fit
}
