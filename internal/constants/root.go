package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "classboard"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/classboard/class_schedule_settings.json"
	SettingsFileName  = "class_schedule_settings.json"

	// TimeFormat is the format of configured range boundaries (HH:MM)
	TimeFormat = "15:04"

	// DisplayDateFormat and DisplayTimeFormat render the clock snapshot
	DisplayDateFormat = "2006年01月02日"
	DisplayTimeFormat = "15:04:05"

	// Tick periods
	ClockInterval      = time.Second
	VisibilityInterval = 5 * time.Second
	BurnInInterval     = 300 * time.Second

	// Anti-burn-in constants
	MaxPixelShift = 3
	MaxTopPadding = 10

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "classboard-"

	// Instance lock constants
	LockfileName = "classboard.lock"

	// Log constants
	LogDirName  = "logs"
	LogFileName = "classboard.log"
)

// Session States
const (
	StateClock SessionState = iota
	StateEditSettings
)
