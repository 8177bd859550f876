// Package geom provides an axis-aligned float rectangle stored as four edges.
//
// A Rect may be inverted (Left > Right or Top > Bottom). Offsetting never
// corrects the edge order and never changes Width or Height.
package geom
