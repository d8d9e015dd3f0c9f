package config

// ProjectFile is the on-disk shape of a project file and of the global config file.
// Pointer fields distinguish "unset" from zero so layers can be merged.
type ProjectFile struct {
	Version  string       `yaml:"version" toml:"version"`
	Timeline *TimelineDTO `yaml:"timeline" toml:"timeline"`
	Layout   *LayoutDTO   `yaml:"layout" toml:"layout"`
	Cache    *CacheDTO    `yaml:"cache" toml:"cache"`
	Pool     *PoolDTO     `yaml:"pool" toml:"pool"`
	Holidays []string     `yaml:"holidays" toml:"holidays"`
	Tasks    []TaskDTO    `yaml:"tasks" toml:"tasks"`
}

// TimelineDTO configures the timeline axis.
type TimelineDTO struct {
	Start          string `yaml:"start" toml:"start"`
	End            string `yaml:"end" toml:"end"`
	Unit           string `yaml:"unit" toml:"unit"`
	Timezone       string `yaml:"timezone" toml:"timezone"`
	Locale         string `yaml:"locale" toml:"locale"`
	FirstDayOfWeek string `yaml:"firstDayOfWeek" toml:"firstDayOfWeek"`
	WeekRule       string `yaml:"weekRule" toml:"weekRule"`
	DateFormat     string `yaml:"dateFormat" toml:"dateFormat"`
	TimeFormat     string `yaml:"timeFormat" toml:"timeFormat"`
	MaxColumns     *int   `yaml:"maxColumns" toml:"maxColumns"`
}

// LayoutDTO configures the layout orchestrator.
type LayoutDTO struct {
	MaxVisibleTasks         *int     `yaml:"maxVisibleTasks" toml:"maxVisibleTasks"`
	EnableVirtualization    *bool    `yaml:"enableVirtualization" toml:"enableVirtualization"`
	DebounceDelay           string   `yaml:"debounceDelay" toml:"debounceDelay"`
	ClampTasksToVisibleRows *bool    `yaml:"clampTasksToVisibleRows" toml:"clampTasksToVisibleRows"`
	RowHeight               *float64 `yaml:"rowHeight" toml:"rowHeight"`
	ColumnWidth             *float64 `yaml:"columnWidth" toml:"columnWidth"`
	VisibleRows             *int     `yaml:"visibleRows" toml:"visibleRows"`
}

// CacheDTO configures the tick cache.
type CacheDTO struct {
	MaxEntries      *int   `yaml:"maxEntries" toml:"maxEntries"`
	CleanupInterval string `yaml:"cleanupInterval" toml:"cleanupInterval"`
}

// PoolDTO configures the element pool.
type PoolDTO struct {
	MaxSize *int `yaml:"maxSize" toml:"maxSize"`
}

// TaskDTO represents a task definition. End and Duration are alternatives; End wins.
type TaskDTO struct {
	ID       string `yaml:"id" toml:"id"`
	Name     string `yaml:"name" toml:"name"`
	Start    string `yaml:"start" toml:"start"`
	End      string `yaml:"end" toml:"end"`
	Duration string `yaml:"duration" toml:"duration"`
	Row      *int   `yaml:"row" toml:"row"`
}
