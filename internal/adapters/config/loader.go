// Package config loads project files and the global configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/gantt/internal/adapters/locale"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectLoader = (*Loader)(nil)

// dateLayouts are tried in order when parsing dates.
var dateLayouts = []string{"2006-01-02", "2006-01-02T15:04", time.RFC3339}

// Loader implements ports.ProjectLoader for YAML and TOML project files.
// Settings are layered: built-in defaults, then the global config, then the project file.
type Loader struct {
	logger    ports.Logger
	globalDir string
}

// NewLoader creates a Loader reading the global config from the XDG config directory.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		logger:    logger,
		globalDir: defaultGlobalConfigDir(),
	}
}

// WithGlobalDir overrides the global config directory. An empty dir disables the global layer.
func (l *Loader) WithGlobalDir(dir string) *Loader {
	l.globalDir = dir
	return l
}

// defaultGlobalConfigDir returns $XDG_CONFIG_HOME/gantt, falling back to ~/.config/gantt.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "gantt")
}

// Load reads the project at path, or searches cwd and its parents when path is empty.
func (l *Loader) Load(cwd, path string) (*domain.Project, error) {
	projectPath, err := l.resolvePath(cwd, path)
	if err != nil {
		return nil, err
	}

	global, err := l.loadGlobal()
	if err != nil {
		return nil, err
	}

	file, err := readFile(projectPath)
	if err != nil {
		return nil, err
	}

	merged := file
	if global != nil {
		merged = merge(global, file)
	}

	project, err := l.build(merged)
	if err != nil {
		return nil, zerr.With(err, "path", projectPath)
	}
	project.Path = projectPath
	return project, nil
}

func (l *Loader) resolvePath(cwd, path string) (string, error) {
	if path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(cwd, path)
		}
		return filepath.Clean(path), nil
	}

	current := cwd
	for {
		for _, name := range domain.ProjectFileNames {
			candidate := filepath.Join(current, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "find project"), "cwd", cwd)
}

func (l *Loader) loadGlobal() (*ProjectFile, error) {
	if l.globalDir == "" {
		return nil, nil
	}
	path := filepath.Join(l.globalDir, domain.GlobalConfigFileName)

	file, err := readFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(file.Tasks) > 0 {
		l.logger.Warn(fmt.Sprintf("tasks defined in %s are ignored", path))
		file.Tasks = nil
	}
	return file, nil
}

// readFile reads and decodes a project file, choosing the codec by extension.
func readFile(path string) (*ProjectFile, error) {
	// #nosec G304 -- path is provided by the user or found by search
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file ProjectFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedConfigFormat, "read project"), "extension", ext)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return &file, nil
}

// merge overlays top onto base. Tasks and holidays come from top when it defines any.
func merge(base, top *ProjectFile) *ProjectFile {
	out := *top
	out.Timeline = mergeTimeline(base.Timeline, top.Timeline)
	out.Layout = mergeLayout(base.Layout, top.Layout)
	out.Cache = mergeCache(base.Cache, top.Cache)
	out.Pool = mergePool(base.Pool, top.Pool)
	if len(out.Holidays) == 0 {
		out.Holidays = base.Holidays
	}
	return &out
}

func mergeTimeline(base, top *TimelineDTO) *TimelineDTO {
	if base == nil || top == nil {
		return firstNonNil(top, base)
	}
	out := *base
	overrideString(&out.Start, top.Start)
	overrideString(&out.End, top.End)
	overrideString(&out.Unit, top.Unit)
	overrideString(&out.Timezone, top.Timezone)
	overrideString(&out.Locale, top.Locale)
	overrideString(&out.FirstDayOfWeek, top.FirstDayOfWeek)
	overrideString(&out.WeekRule, top.WeekRule)
	overrideString(&out.DateFormat, top.DateFormat)
	overrideString(&out.TimeFormat, top.TimeFormat)
	out.MaxColumns = firstNonNil(top.MaxColumns, base.MaxColumns)
	return &out
}

func mergeLayout(base, top *LayoutDTO) *LayoutDTO {
	if base == nil || top == nil {
		return firstNonNil(top, base)
	}
	out := *base
	out.MaxVisibleTasks = firstNonNil(top.MaxVisibleTasks, base.MaxVisibleTasks)
	out.EnableVirtualization = firstNonNil(top.EnableVirtualization, base.EnableVirtualization)
	overrideString(&out.DebounceDelay, top.DebounceDelay)
	out.ClampTasksToVisibleRows = firstNonNil(top.ClampTasksToVisibleRows, base.ClampTasksToVisibleRows)
	out.RowHeight = firstNonNil(top.RowHeight, base.RowHeight)
	out.ColumnWidth = firstNonNil(top.ColumnWidth, base.ColumnWidth)
	out.VisibleRows = firstNonNil(top.VisibleRows, base.VisibleRows)
	return &out
}

func mergeCache(base, top *CacheDTO) *CacheDTO {
	if base == nil || top == nil {
		return firstNonNil(top, base)
	}
	out := *base
	out.MaxEntries = firstNonNil(top.MaxEntries, base.MaxEntries)
	overrideString(&out.CleanupInterval, top.CleanupInterval)
	return &out
}

func mergePool(base, top *PoolDTO) *PoolDTO {
	if base == nil || top == nil {
		return firstNonNil(top, base)
	}
	return &PoolDTO{MaxSize: firstNonNil(top.MaxSize, base.MaxSize)}
}

func firstNonNil[T any](a, b *T) *T {
	if a != nil {
		return a
	}
	return b
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// build maps a merged file onto domain types.
func (l *Loader) build(file *ProjectFile) (*domain.Project, error) {
	timeline := file.Timeline
	if timeline == nil {
		timeline = &TimelineDTO{}
	}

	loc := time.UTC
	if timeline.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(timeline.Timezone)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTimezone, err.Error()), "timezone", timeline.Timezone)
		}
	}

	settings, err := buildTimeline(timeline, loc)
	if err != nil {
		return nil, err
	}

	layout, err := buildLayout(file.Layout)
	if err != nil {
		return nil, err
	}

	cache, err := buildCache(file.Cache)
	if err != nil {
		return nil, err
	}

	project := &domain.Project{
		Timeline: settings,
		Layout:   layout,
		Cache:    cache,
		Pool:     domain.PoolOptions{MaxSize: domain.DefaultMaxPoolSize},
	}
	if file.Pool != nil && file.Pool.MaxSize != nil {
		project.Pool.MaxSize = *file.Pool.MaxSize
	}

	for _, h := range file.Holidays {
		day, err := ParseDate(h, loc)
		if err != nil {
			return nil, zerr.With(err, "field", "holidays")
		}
		project.Holidays = append(project.Holidays, day)
	}

	project.Tasks, err = buildTasks(file.Tasks, loc)
	if err != nil {
		return nil, err
	}

	if err := fillRange(&project.Timeline, project.Tasks); err != nil {
		return nil, err
	}

	if file.Version == "" {
		l.logger.Debug("project file has no version, assuming 1")
	}
	return project, nil
}

func buildTimeline(dto *TimelineDTO, loc *time.Location) (domain.TimelineSettings, error) {
	settings := domain.TimelineSettings{
		Unit:       domain.UnitDay,
		DateFormat: dto.DateFormat,
		TimeFormat: dto.TimeFormat,
		MaxColumns: domain.DefaultMaxColumns,
	}
	if dto.MaxColumns != nil {
		settings.MaxColumns = *dto.MaxColumns
	}

	var err error
	if dto.Start != "" {
		if settings.Start, err = ParseDate(dto.Start, loc); err != nil {
			return settings, zerr.With(err, "field", "timeline.start")
		}
	}
	if dto.End != "" {
		if settings.End, err = ParseDate(dto.End, loc); err != nil {
			return settings, zerr.With(err, "field", "timeline.end")
		}
	}

	switch unit := strings.TrimSpace(dto.Unit); {
	case unit == "":
	case strings.EqualFold(unit, "auto"):
		settings.AutoUnit = true
	default:
		if settings.Unit, err = domain.ParseTimeUnit(unit); err != nil {
			return settings, err
		}
	}

	if settings.Locale, err = locale.Resolve(dto.Locale); err != nil {
		return settings, err
	}
	if dto.FirstDayOfWeek != "" {
		day, err := parseWeekday(dto.FirstDayOfWeek)
		if err != nil {
			return settings, err
		}
		settings.Locale = settings.Locale.WithFirstDay(day)
	}
	if dto.WeekRule != "" {
		rule, err := domain.ParseWeekRule(dto.WeekRule)
		if err != nil {
			return settings, err
		}
		settings.Locale = settings.Locale.WithWeekRule(rule)
	}
	return settings, nil
}

func buildLayout(dto *LayoutDTO) (domain.LayoutOptions, error) {
	opts := domain.DefaultLayoutOptions()
	if dto == nil {
		return opts, nil
	}

	if dto.MaxVisibleTasks != nil {
		opts.MaxVisibleTasks = *dto.MaxVisibleTasks
	}
	if dto.EnableVirtualization != nil {
		opts.EnableVirtualization = *dto.EnableVirtualization
	}
	if dto.ClampTasksToVisibleRows != nil {
		opts.ClampTasksToVisibleRows = *dto.ClampTasksToVisibleRows
	}
	if dto.RowHeight != nil {
		opts.RowHeight = *dto.RowHeight
	}
	if dto.ColumnWidth != nil {
		opts.ColumnWidth = *dto.ColumnWidth
	}
	if dto.VisibleRows != nil {
		opts.VisibleRows = *dto.VisibleRows
	}
	if dto.DebounceDelay != "" {
		d, err := parseDuration(dto.DebounceDelay, "layout.debounceDelay")
		if err != nil {
			return opts, err
		}
		opts.DebounceDelay = d
	}
	return opts, nil
}

func buildCache(dto *CacheDTO) (domain.CacheOptions, error) {
	opts := domain.CacheOptions{
		MaxEntries:      domain.DefaultCacheMaxEntries,
		CleanupInterval: domain.DefaultCacheCleanupInterval,
	}
	if dto == nil {
		return opts, nil
	}

	if dto.MaxEntries != nil {
		opts.MaxEntries = *dto.MaxEntries
	}
	if dto.CleanupInterval != "" {
		d, err := parseDuration(dto.CleanupInterval, "cache.cleanupInterval")
		if err != nil {
			return opts, err
		}
		opts.CleanupInterval = d
	}
	return opts, nil
}

func buildTasks(dtos []TaskDTO, loc *time.Location) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(dtos))
	seen := make(map[string]bool, len(dtos))

	for i, dto := range dtos {
		id := strings.TrimSpace(dto.ID)
		if id == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingTaskID, "load tasks"), "index", i)
		}
		if seen[id] {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateTaskID, "load tasks"), "task", id)
		}
		seen[id] = true

		if dto.Start == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingTaskStart, "load tasks"), "task", id)
		}
		start, err := ParseDate(dto.Start, loc)
		if err != nil {
			return nil, zerr.With(err, "task", id)
		}

		end := start
		switch {
		case dto.End != "":
			if end, err = ParseDate(dto.End, loc); err != nil {
				return nil, zerr.With(err, "task", id)
			}
		case dto.Duration != "":
			if end, err = addDuration(start, dto.Duration); err != nil {
				return nil, zerr.With(err, "task", id)
			}
		}

		row := i
		if dto.Row != nil {
			row = *dto.Row
		}
		if row < 0 {
			return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidTaskRow, "load tasks"), "task", id), "row", row)
		}

		name := dto.Name
		if name == "" {
			name = id
		}

		tasks = append(tasks, domain.Task{
			ID:       domain.NewInternedString(id),
			Name:     name,
			Start:    start,
			End:      end,
			RowIndex: row,
		})
	}
	return tasks, nil
}

// fillRange derives missing timeline bounds from the tasks.
func fillRange(settings *domain.TimelineSettings, tasks []domain.Task) error {
	if !settings.Start.IsZero() && !settings.End.IsZero() {
		return nil
	}
	if len(tasks) == 0 {
		return zerr.Wrap(domain.ErrMissingTimelineRange, "load project")
	}

	start, end := tasks[0].Start, tasks[0].End
	for _, t := range tasks[1:] {
		start = minTime(start, t.Start, t.End)
		end = maxTime(end, t.Start, t.End)
	}
	if settings.Start.IsZero() {
		settings.Start = start
	}
	if settings.End.IsZero() {
		settings.End = end
	}
	return nil
}

func minTime(first time.Time, rest ...time.Time) time.Time {
	for _, t := range rest {
		if t.Before(first) {
			first = t
		}
	}
	return first
}

func maxTime(first time.Time, rest ...time.Time) time.Time {
	for _, t := range rest {
		if t.After(first) {
			first = t
		}
	}
	return first
}

// ParseDate accepts YYYY-MM-DD, YYYY-MM-DDTHH:MM (both in loc) or RFC 3339.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, zerr.With(zerr.Wrap(domain.ErrInvalidDate, "parse date"), "value", s)
}

func parseDuration(s, field string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || d < 0 {
		return 0, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidDuration, "parse duration"), "field", field), "value", s)
	}
	return d, nil
}

// addDuration adds a Go duration or a whole number of calendar days ("3d") to t.
func addDuration(t time.Time, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err == nil && n >= 0 {
			return t.AddDate(0, 0, n), nil
		}
	}
	d, err := parseDuration(s, "tasks.duration")
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(d), nil
}

func parseWeekday(s string) (time.Weekday, error) {
	name := strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) || strings.EqualFold(d.String()[:3], name) {
			return d, nil
		}
	}
	return 0, zerr.With(zerr.Wrap(domain.ErrInvalidWeekday, "parse weekday"), "value", s)
}
