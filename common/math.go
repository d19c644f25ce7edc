package common

const (
	BaseWidth  = 800
	BaseHeight = 600

	// TicksPerSecond is the fixed simulation rate every frame count is tuned for.
	TicksPerSecond = 60
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Seconds converts a whole number of seconds into simulation ticks.
func Seconds(s int) int {
	return s * TicksPerSecond
}
