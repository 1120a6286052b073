package ndscene

import "strconv"

// cartesianAxes is the fixed table of single-letter axis names, in order:
// the first axis is "x", the second "y", and so on through the lowercase
// alphabet backwards from "z", then the uppercase alphabet backwards from
// "Z". Axes beyond the 52nd fall back to "d-<index>" naming.
//
// The same table drives both serialization and parsing so that emitted
// fragments re-ingest exactly.
const cartesianAxes = "xyzwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA"

// AxisName returns the attribute name for cartesian axis i (0-based):
// a single letter from the axis table, or "d-<i>" once the table is
// exhausted.
func AxisName(i int) string {
	if i >= 0 && i < len(cartesianAxes) {
		return string(cartesianAxes[i])
	}
	return "d-" + strconv.Itoa(i)
}

// ThetaName returns the attribute name for polar angle i (1-based:
// index 0 of a polar vector is the radius, angles start at 1).
func ThetaName(i int) string {
	return "theta-" + strconv.Itoa(i)
}
