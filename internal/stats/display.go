package stats

const (
	LevelNone   = "none"
	LevelZero   = "zero"
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Intensity buckets a calendar day. A nil progress means no entry.
func Intensity(progress *int) string {
	switch {
	case progress == nil:
		return LevelNone
	case *progress == 0:
		return LevelZero
	case *progress < 50:
		return LevelLow
	case *progress < 80:
		return LevelMedium
	default:
		return LevelHigh
	}
}

func Motivation(progress int) string {
	switch {
	case progress >= 100:
		return "Perfect! You owned today. 👑"
	case progress >= 80:
		return "Almost there, keep pushing! 🔥"
	case progress >= 50:
		return "Past the halfway mark. Don't stop now! 🏃"
	case progress > 0:
		return "Starting is half the battle. Keep going! 🌱"
	default:
		return "Nothing done yet? Get moving! ⚡️"
	}
}
