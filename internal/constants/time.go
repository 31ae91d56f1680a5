package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// DateTimeFormat is the minute-precision local timestamp format used
	// for entry input (YYYY-MM-DDTHH:MM)
	DateTimeFormat = "2006-01-02T15:04"

	// ShortStampFormat is the compact timestamp used as a series label (DD.MM HH:MM)
	ShortStampFormat = "02.01 15:04"
)
