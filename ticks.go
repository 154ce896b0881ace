package plotgeom

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"gonum.org/v1/plot"
)

// DefaultTicks is a plot.Ticker producing at most DefaultTicks major
// ticks at "nice" positions together with the minor ticks between them.
type DefaultTicks int

var _ plot.Ticker = DefaultTicks(0)

// Ticks implements plot.Ticker. Minor ticks carry an empty label.
func (n DefaultTicks) Ticks(min, max float64) []plot.Tick {
	if n <= 0 || !finite(min) || !finite(max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []plot.Tick{{Value: min, Label: formatTick(min)}}
	}

	ls := scale.Linear{Min: min, Max: max}
	major, minor := ls.Ticks(scale.TickOptions{Max: int(n)})

	ticks := make([]plot.Tick, 0, len(major)+len(minor))
	isMajor := make(map[float64]bool, len(major))
	for _, v := range major {
		isMajor[v] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: formatTick(v)})
	}
	for _, v := range minor {
		if isMajor[v] {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 || math.Abs(v) < 1e-12 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
