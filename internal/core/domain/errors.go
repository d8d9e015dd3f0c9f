package domain

import "go.trai.ch/zerr"

var (
	// ErrUnsupportedTimeUnit is raised when a TimeUnit outside the known set reaches the timeline engine.
	ErrUnsupportedTimeUnit = zerr.New("unsupported time unit")

	// ErrInvalidTimeUnit is returned when a time unit name cannot be parsed.
	ErrInvalidTimeUnit = zerr.New("invalid time unit, expected one of hour, day, week, month, year")

	// ErrInvalidWeekRule is returned when a week rule name cannot be parsed.
	ErrInvalidWeekRule = zerr.New("invalid week rule, expected one of firstDay, firstFullWeek, firstFourDayWeek")

	// ErrInvalidLocale is returned when a locale tag cannot be resolved.
	ErrInvalidLocale = zerr.New("invalid locale")

	// ErrInvalidTimezone is returned when a timezone name is not a known IANA location.
	ErrInvalidTimezone = zerr.New("invalid timezone")

	// ErrInvalidWeekday is returned when a weekday name cannot be parsed.
	ErrInvalidWeekday = zerr.New("invalid weekday")

	// ErrInvalidDate is returned when a date value cannot be parsed.
	ErrInvalidDate = zerr.New("invalid date, expected YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC 3339")

	// ErrInvalidDuration is returned when a duration value cannot be parsed.
	ErrInvalidDuration = zerr.New("invalid duration")

	// ErrMissingTimelineRange is returned when a project does not define both timeline start and end.
	ErrMissingTimelineRange = zerr.New("timeline start and end are required")

	// ErrInvalidTimelineRange is returned when the timeline range fails validation for its unit.
	ErrInvalidTimelineRange = zerr.New("invalid timeline range")

	// ErrDuplicateTaskID is returned when two tasks in a project share the same id.
	ErrDuplicateTaskID = zerr.New("duplicate task id")

	// ErrMissingTaskID is returned when a task has no id.
	ErrMissingTaskID = zerr.New("task id is required")

	// ErrMissingTaskStart is returned when a task has no start date.
	ErrMissingTaskStart = zerr.New("task start is required")

	// ErrTaskNotFound is returned when a task id is not defined in the project.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrInvalidTaskRow is returned when a task references a negative row.
	ErrInvalidTaskRow = zerr.New("task row must not be negative")

	// ErrConfigNotFound is returned when no project file can be located.
	ErrConfigNotFound = zerr.New("project file not found")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrUnsupportedConfigFormat is returned for project files that are neither YAML nor TOML.
	ErrUnsupportedConfigFormat = zerr.New("unsupported project file format, expected .yaml, .yml or .toml")

	// ErrInvalidLogLevel is returned when a log level name cannot be parsed.
	ErrInvalidLogLevel = zerr.New("invalid log level")

	// ErrWarmFailed is returned when the tick cache could not be warmed.
	ErrWarmFailed = zerr.New("failed to warm tick cache")

	// ErrOrchestratorClosed is returned when an operation is attempted on a closed layout orchestrator.
	ErrOrchestratorClosed = zerr.New("layout orchestrator is closed")

	// ErrWatcherStartFailed is returned when the project file watcher cannot start.
	ErrWatcherStartFailed = zerr.New("failed to start project watcher")

	// ErrViewerFailed is returned when the interactive viewer exits with an error.
	ErrViewerFailed = zerr.New("interactive viewer failed")
)
