package slider

import "github.com/garrettladley/arcslider/internal/angle"

// NoHandle is returned when no handle should receive an interaction.
const NoHandle = -1

// Resolve picks the handle a pointer at pointerAngle should drive.
//
// A disabled slider never resolves. Once a drag is active its handle stays
// the target until release, whatever the pointer's proximity. Otherwise the
// handle angularly closest to the pointer wins and ties go to handle1.
//
// Handles may cross: nothing here keeps handle1 below handle2. Callers that
// need a non-crossing range clamp the values in their OnChange.
func Resolve(pointerAngle float64, handleAngles []float64, active int, disabled bool) int {
	if disabled || len(handleAngles) == 0 {
		return NoHandle
	}
	if active != NoHandle && active < len(handleAngles) {
		return active
	}

	best := 0
	bestDist := angle.Distance(pointerAngle, handleAngles[0])
	for i := 1; i < len(handleAngles); i++ {
		// strict so a tie keeps the lower index
		if d := angle.Distance(pointerAngle, handleAngles[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// HandleAngles returns the user-frame angle of every handle in c.
func HandleAngles(c Config) []float64 {
	values := c.HandleValues()
	angles := make([]float64, len(values))
	for i, v := range values {
		angles[i] = ValueToAngle(v, c)
	}
	return angles
}
