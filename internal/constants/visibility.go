package constants

const (
	// TopmostTransparency is the fixed window alpha while the schedule is hidden.
	TopmostTransparency = 0.3

	// User transparency bounds offered by the settings editor.
	MinTransparency = 0.1
	MaxTransparency = 1.0
)

func init() {
	if TopmostTransparency <= 0 || TopmostTransparency > MaxTransparency {
		panic("TopmostTransparency must be in (0, 1]")
	}
}
