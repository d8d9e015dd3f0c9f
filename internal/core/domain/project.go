package domain

import "time"

// ProjectFileNames are the file names searched for when no project path is given, in order.
var ProjectFileNames = []string{"gantt.yaml", "gantt.yml", "gantt.toml"}

// GlobalConfigFileName is the user-level configuration file name.
const GlobalConfigFileName = "config.toml"

// Layout defaults.
const (
	DefaultDebounceDelay   = 150 * time.Millisecond
	DefaultMaxVisibleTasks = 100
	DefaultRowHeight       = 32.0
	DefaultColumnWidth     = 60.0
	DefaultMaxColumns      = 60
)

// Cache and pool defaults.
const (
	DefaultCacheMaxEntries      = 1000
	DefaultCacheCleanupInterval = 5 * time.Minute
	DefaultMaxPoolSize          = 500
)

// TimelineSettings describes the timeline a chart is drawn against.
type TimelineSettings struct {
	Start      time.Time
	End        time.Time
	Unit       TimeUnit
	AutoUnit   bool
	Locale     Locale
	DateFormat string
	TimeFormat string
	MaxColumns int
}

// LayoutOptions tunes the layout orchestrator.
type LayoutOptions struct {
	MaxVisibleTasks         int
	EnableVirtualization    bool
	DebounceDelay           time.Duration
	ClampTasksToVisibleRows bool
	RowHeight               float64
	ColumnWidth             float64
	// VisibleRows is the row count the chart is drawn for. Zero means one row per task row.
	VisibleRows int
}

// DefaultLayoutOptions returns the options used when nothing is configured.
func DefaultLayoutOptions() LayoutOptions {
	return LayoutOptions{
		MaxVisibleTasks: DefaultMaxVisibleTasks,
		DebounceDelay:   DefaultDebounceDelay,
		RowHeight:       DefaultRowHeight,
		ColumnWidth:     DefaultColumnWidth,
	}
}

// CacheOptions tunes the tick cache.
type CacheOptions struct {
	MaxEntries      int
	CleanupInterval time.Duration
}

// PoolOptions tunes the element pool.
type PoolOptions struct {
	MaxSize int
}

// Project is a fully resolved project file.
type Project struct {
	Path     string
	Timeline TimelineSettings
	Layout   LayoutOptions
	Cache    CacheOptions
	Pool     PoolOptions
	Holidays []time.Time
	Tasks    []Task
}

// RowCount returns the number of rows needed to show every task.
func (p *Project) RowCount() int {
	if p.Layout.VisibleRows > 0 {
		return p.Layout.VisibleRows
	}
	rows := 0
	for i := range p.Tasks {
		if p.Tasks[i].RowIndex+1 > rows {
			rows = p.Tasks[i].RowIndex + 1
		}
	}
	return rows
}
