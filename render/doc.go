// Package render draws a point set, a tour and optionally the terminal
// renormalization grid as SVG or PNG.
package render
