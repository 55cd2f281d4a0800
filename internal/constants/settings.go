package constants

const (
	// Settings document keys
	SettingTransparency      = "transparency"
	SettingTopmostTimeRanges = "topmost_time_ranges"
	SettingSchedules         = "schedules"

	// Default Settings Values
	DefaultTransparency = 1.0
	DefaultPeriodCount  = 15

	// FallbackRangeStart and FallbackRangeEnd replace the whole range list
	// when the editor is given a boundary that is not HH:MM.
	FallbackRangeStart = "08:00"
	FallbackRangeEnd   = "18:00"
)

// Weekdays lists the schedule keys in Monday-first order.
var Weekdays = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DefaultPeriods are the labels every weekday starts with.
var DefaultPeriods = [DefaultPeriodCount]string{
	"早读", "第一节", "第二节", "第三节", "第四节",
	"第五节", "限时一", "第六节", "第七节", "第八节",
	"限时二", "限时三", "第九节", "第十节", "第十一节",
}

// DefaultRanges are the topmost windows used when none are configured.
var DefaultRanges = [][2]string{
	{"08:00", "12:00"},
	{"14:00", "18:00"},
}
