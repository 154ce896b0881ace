package geom

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vdobler/plotgeom"
	"github.com/vdobler/plotgeom/data"
)

// ErrInvalidOrder is returned if a stack Order does not return a
// permutation of the series.
var ErrInvalidOrder = errors.New("geom: stack order is not a permutation")

// ----------------------------------------------------------------------------
// Stack

// Pair is the stacked extent of one value: it covers Baseline to Value.
type Pair struct {
	Baseline, Value float64
}

// StackPoint holds the stacked pairs of all series at one index. Values[j]
// belongs to the j-th input series, independent of the stack order.
type StackPoint struct {
	Index  int
	Key    string
	Values []Pair
}

// Offset is the policy determining the baselines of a stack.
type Offset int

const (
	// OffsetNone stacks each series on the running sum of the series
	// below it, starting at 0.
	OffsetNone Offset = iota

	// OffsetExpand works like OffsetNone but normalizes each index to
	// a total height of 1. Negative values count as zero height: their
	// pair stays in place with Baseline == Value. An index without a
	// positive value yields all zero pairs.
	OffsetExpand

	// OffsetDiverging stacks positive values upwards and negative
	// values downwards from 0.
	OffsetDiverging
)

// String returns the name of o.
func (o Offset) String() string {
	switch o {
	case OffsetNone:
		return "none"
	case OffsetExpand:
		return "expand"
	case OffsetDiverging:
		return "diverging"
	}
	return fmt.Sprintf("Offset(%d)", int(o))
}

// An Order returns the stacking order of series as a permutation of
// their indices, bottom-most first. A nil Order keeps the input order.
type Order func(series []data.Series) []int

// OrderNone stacks the series in input order.
func OrderNone(series []data.Series) []int {
	order := make([]int, len(series))
	for i := range order {
		order[i] = i
	}
	return order
}

// OrderReverse stacks the last series at the bottom.
func OrderReverse(series []data.Series) []int {
	order := OrderNone(series)
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// OrderAscending stacks the series with the smallest sum at the bottom.
// Ties keep the input order.
func OrderAscending(series []data.Series) []int {
	order := OrderNone(series)
	sort.SliceStable(order, func(i, j int) bool {
		return series[order[i]].Sum() < series[order[j]].Sum()
	})
	return order
}

// OrderDescending stacks the series with the largest sum at the bottom.
// Ties keep the input order.
func OrderDescending(series []data.Series) []int {
	order := OrderNone(series)
	sort.SliceStable(order, func(i, j int) bool {
		return series[order[i]].Sum() > series[order[j]].Sum()
	})
	return order
}

// Stacker stacks series sharing the same index domain.
type Stacker struct {
	Offset Offset
	Order  Order

	// Keys optionally names the indices; if set it must have one key
	// per value of the series.
	Keys []string
}

// Stack computes the stacked pairs of series. All series must have the
// same length; the result has one StackPoint per index in index order.
// NaN values produce the pair (baseline, NaN) and do not move the
// baseline of the following series.
func (s Stacker) Stack(series []data.Series) ([]StackPoint, error) {
	n, err := data.Len(series)
	if err != nil {
		return nil, err
	}
	if s.Keys != nil && len(s.Keys) != n {
		return nil, fmt.Errorf("%w: %d keys for %d values",
			data.ErrLengthMismatch, len(s.Keys), n)
	}

	orderFn := s.Order
	if orderFn == nil {
		orderFn = OrderNone
	}
	order := orderFn(series)
	if err := checkPermutation(order, len(series)); err != nil {
		return nil, err
	}

	points := make([]StackPoint, n)
	for i := range points {
		points[i] = StackPoint{Index: i, Values: make([]Pair, len(series))}
		if s.Keys != nil {
			points[i].Key = s.Keys[i]
		}
		switch s.Offset {
		case OffsetNone:
			stackNone(points[i].Values, series, order, i)
		case OffsetExpand:
			total := stackPositive(points[i].Values, series, order, i)
			expand(points[i].Values, total)
		case OffsetDiverging:
			stackDiverging(points[i].Values, series, order, i)
		default:
			panic("geom: unknown stack offset " + s.Offset.String())
		}
	}
	tracef("stacked %d series of length %d, offset %s", len(series), n, s.Offset)
	return points, nil
}

func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: %d indices for %d series", ErrInvalidOrder, len(order), n)
	}
	seen := make([]bool, n)
	for _, j := range order {
		if j < 0 || j >= n || seen[j] {
			return fmt.Errorf("%w: %v", ErrInvalidOrder, order)
		}
		seen[j] = true
	}
	return nil
}

// stackNone fills pairs and returns the total at index i.
func stackNone(pairs []Pair, series []data.Series, order []int, i int) float64 {
	sum := 0.0
	for _, j := range order {
		v := series[j].Values[i]
		if math.IsNaN(v) {
			pairs[j] = Pair{sum, math.NaN()}
			continue
		}
		pairs[j] = Pair{sum, sum + v}
		sum += v
	}
	return sum
}

// stackPositive works like stackNone but stacks negative values with
// zero height.
func stackPositive(pairs []Pair, series []data.Series, order []int, i int) float64 {
	sum := 0.0
	for _, j := range order {
		v := series[j].Values[i]
		switch {
		case math.IsNaN(v):
			pairs[j] = Pair{sum, math.NaN()}
		case v < 0:
			pairs[j] = Pair{sum, sum}
		default:
			pairs[j] = Pair{sum, sum + v}
			sum += v
		}
	}
	return sum
}

func stackDiverging(pairs []Pair, series []data.Series, order []int, i int) {
	pos, neg := 0.0, 0.0
	for _, j := range order {
		v := series[j].Values[i]
		switch {
		case math.IsNaN(v):
			pairs[j] = Pair{pos, math.NaN()}
		case v < 0:
			pairs[j] = Pair{neg, neg + v}
			neg += v
		default:
			pairs[j] = Pair{pos, pos + v}
			pos += v
		}
	}
}

// expand normalizes pairs stacked with stackPositive to a total of 1.
func expand(pairs []Pair, total float64) {
	if total == 0 || !finite(total) {
		for j := range pairs {
			pairs[j] = Pair{}
		}
		return
	}
	for j := range pairs {
		pairs[j].Baseline /= total
		pairs[j].Value /= total
	}
}

// Extent returns the interval covered by all pairs of points. It is
// unset ([NaN:NaN]) if points contain no finite values.
func Extent(points []StackPoint) plotgeom.Interval {
	iv := plotgeom.UnsetInterval()
	for _, p := range points {
		for _, v := range p.Values {
			iv.Update(v.Baseline, v.Value)
		}
	}
	return iv
}

// SeriesRecords returns the records of series j of points at the
// categories xs, ready to be drawn by Area, Line or Bar.
func SeriesRecords[X any](xs []X, points []StackPoint, j int) ([]data.Record[X], error) {
	if len(xs) != len(points) {
		return nil, fmt.Errorf("%w: %d categories for %d stack points",
			data.ErrLengthMismatch, len(xs), len(points))
	}
	recs := make([]data.Record[X], len(points))
	for i, p := range points {
		if j < 0 || j >= len(p.Values) {
			return nil, fmt.Errorf("geom: no series %d in stack of %d", j, len(p.Values))
		}
		recs[i] = data.Record[X]{Key: p.Key, X: xs[i], Y: p.Values[j].Value, Y0: p.Values[j].Baseline}
	}
	return recs, nil
}
