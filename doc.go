// Package plotgeom turns data values into pixel-space geometry.
//
// It is the numeric core underneath charts: scales map data values to
// pixel positions and the shapes in package geom query those scales to
// produce lines, areas, bars, arcs and pie slices. Nothing here draws;
// the results are plain coordinates and gonum vg paths which a renderer
// can turn into pixels.
//
// # Scales
//
// The concept of a scale is taken from ggplot2 and d3. Package plotgeom
// knows about the following scales:
//   - Linear     A continuous mapping of the interval [d0,d1] onto a pixel
//                range. Sqrt and Log10 are transformed variants.
//   - Band       Discrete categories, each owning a band of some width.
//   - Point      A Band with zero bandwidth.
//   - Ordinal    Discrete categories mapped onto discrete values like colors.
//
// All scales are immutable once constructed. They hold no state between
// calls and may be shared between any number of shapes and goroutines
// during a render pass. Changing the domain or the range requires a new
// scale.
//
// # Errors
//
// Invalid configurations (a degenerate domain, paddings out of range,
// duplicate categories) are reported by the constructors. A value a scale
// cannot represent is not an error: Tick reports it through its second
// return value and shapes turn such misses into gaps.
package plotgeom
