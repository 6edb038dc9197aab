package constants

// Database pool settings
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Event field constraints
const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 2000
	LocationMaxLength    = 500

	DefaultEventColor = "#1976d2"

	DefaultRecurrenceInterval  = 1
	DefaultRecurrenceFrequency = "weekly"
)

// Calendar views
const (
	ViewMonth  = "month"
	ViewWeek   = "week"
	ViewDay    = "day"
	ViewAgenda = "agenda"
)

// Request context keys
const (
	ContextRequestID = "request_id"
	HeaderRequestID  = "X-Request-ID"
)

// Export
const (
	CalendarName       = "Calendar"
	ICSContentType     = "text/calendar"
	BackupObjectPrefix = "backups"
)
