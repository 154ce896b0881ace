package data

import (
	"fmt"
	"math"

	"github.com/vdobler/plotgeom"
)

// ----------------------------------------------------------------------------
// Grouping

// Pivot turns records in long format (one record per series and
// category) into one Series per Key. The categories are returned in the
// order of their first appearance, so are the series. Cells without a
// record are NaN, Y values of records sharing Key and X add up.
func Pivot[X comparable](recs []Record[X]) (xs []X, series []Series) {
	xIndex := make(map[X]int)
	keyIndex := make(map[string]int)
	for _, r := range recs {
		if _, ok := xIndex[r.X]; !ok {
			xIndex[r.X] = len(xs)
			xs = append(xs, r.X)
		}
		if _, ok := keyIndex[r.Key]; !ok {
			keyIndex[r.Key] = len(series)
			series = append(series, Series{Key: r.Key})
		}
	}
	for j := range series {
		series[j].Values = make([]float64, len(xs))
		for i := range series[j].Values {
			series[j].Values[i] = math.NaN()
		}
	}
	for _, r := range recs {
		v := &series[keyIndex[r.Key]].Values[xIndex[r.X]]
		if math.IsNaN(*v) {
			*v = r.Y
		} else {
			*v += r.Y
		}
	}
	return xs, series
}

// ----------------------------------------------------------------------------
// Partitioner

// A Partitioner can be used to turn a continuous value into a discrete
// factor, e.g. to bin values for a band scale. The learned Range is cut
// into Partitions intervals of equal width; the last one is closed.
type Partitioner struct {
	Partitions int
	Range      plotgeom.Interval
}

// NewPartitioner returns a partitioner with n partitions and an unset
// range.
func NewPartitioner(n int) *Partitioner {
	return &Partitioner{Partitions: n, Range: plotgeom.UnsetInterval()}
}

// Learn expands the range of p to include x.
func (p *Partitioner) Learn(x ...float64) { p.Range.Update(x...) }

func (p *Partitioner) n() int {
	if p.Partitions < 1 {
		return 1
	}
	return p.Partitions
}

// Index returns the partition of x: -1 below the range (and for NaN),
// Partitions above it.
func (p *Partitioner) Index(x float64) int {
	n := p.n()
	min, max := p.Range.Min, p.Range.Max
	switch {
	case math.IsNaN(x) || !(x >= min):
		return -1
	case x > max:
		return n
	case x == max:
		return n - 1
	}
	k := int(math.Floor((x - min) / ((max - min) / float64(n))))
	if k >= n {
		k = n - 1
	}
	return k
}

// Labels returns the labels of all partitions in increasing order,
// suitable as domain of a band scale.
func (p *Partitioner) Labels() []string {
	n := p.n()
	min, max := p.Range.Min, p.Range.Max
	w := (max - min) / float64(n)
	labels := make([]string, n)
	for k := range labels {
		if k == n-1 {
			labels[k] = fmt.Sprintf("[%g, %g]", min+float64(k)*w, max)
			continue
		}
		labels[k] = fmt.Sprintf("[%g, %g)", min+float64(k)*w, min+float64(k+1)*w)
	}
	return labels
}

// Partition returns the label of the partition of x. Values outside of
// the range get open-ended labels which are not part of Labels.
func (p *Partitioner) Partition(x float64) string {
	if math.IsNaN(x) {
		return "NaN"
	}
	k := p.Index(x)
	switch {
	case k < 0:
		return fmt.Sprintf("(-∞, %g)", p.Range.Min)
	case k >= p.n():
		return fmt.Sprintf("(%g, ∞)", p.Range.Max)
	}
	return p.Labels()[k]
}
