// Scale Transformations
//
// Scale transformations should work like the ones in ggplot2.
package plotgeom

import (
	"math"

	"gonum.org/v1/plot"
)

// A Transformation bundles two functions Trans and Inverse together with
// an appropiate Ticker. Trans maps the interval from onto the interval to,
// Inverse undoes this mapping.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
	Ticker  plot.Ticker
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return lerp(to.Min, to.Max, (x-from.Min)/(from.Max-from.Min))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return lerp(from.Min, from.Max, (y-to.Min)/(to.Max-to.Min))
	},
	Ticker: DefaultTicks(5),
}

// SqrtTrans maps the square root of from linearly to to. Negative values
// use the negated square root of their magnitude.
var SqrtTrans = Transformation{
	Name: "SquareRoot",
	Trans: func(from, to Interval, x float64) float64 {
		a, b := signedSqrt(from.Min), signedSqrt(from.Max)
		return lerp(to.Min, to.Max, (signedSqrt(x)-a)/(b-a))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		a, b := signedSqrt(from.Min), signedSqrt(from.Max)
		u := lerp(a, b, (y-to.Min)/(to.Max-to.Min))
		return u * math.Abs(u)
	},
	Ticker: DefaultTicks(5),
}

// Log10Trans maps the decimal logarithm of from linearly to to. Both
// edges of from must be positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return lerp(to.Min, to.Max, t)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		t := (y - to.Min) / (to.Max - to.Min)
		if t == 1 {
			return from.Max
		}
		return from.Min * math.Pow(from.Max/from.Min, t)
	},
	Ticker: plot.LogTicks{},
}

// lerp interpolates between a and b. It hits both ends exactly.
func lerp(a, b, t float64) float64 {
	if t == 1 {
		return b
	}
	return a + t*(b-a)
}

func signedSqrt(x float64) float64 {
	if x < 0 {
		return -math.Sqrt(-x)
	}
	return math.Sqrt(x)
}
