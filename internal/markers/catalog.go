// Package markers implements the ten-category marker detection engine.
// Each detector is a pure function of the document features it needs and
// records raw counts for the cross-category pattern engines.
package markers

// Categories lists the marker categories in aggregation order.
var Categories = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// Weights are the fixed per-category weights; they sum to 1.0.
var Weights = map[string]float64{
	"A": 0.30,
	"B": 0.15,
	"C": 0.15,
	"D": 0.05,
	"E": 0.10,
	"F": 0.08,
	"G": 0.07,
	"H": 0.05,
	"I": 0.03,
	"J": 0.02,
}

// Caps are the fixed per-category score ceilings applied after summing the
// capped marker scores.
var Caps = map[string]float64{
	"A": 450,
	"B": 270,
	"C": 225,
	"D": 125,
	"E": 155,
	"F": 100,
	"G": 125,
	"H": 180,
	"I": 120,
	"J": 105,
}

// Counts collects raw marker observations keyed by marker name. The
// composite, correlation, and Bayesian stages read from it.
type Counts map[string]float64
