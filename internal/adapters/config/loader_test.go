package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/adapters/config"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T, globalDir string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger).WithGlobalDir(globalDir)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const yamlProject = `
version: "1"
timeline:
  start: 2024-01-01
  end: 2024-01-31
  unit: week
  locale: de-DE
  dateFormat: "02.01."
layout:
  maxVisibleTasks: 50
  enableVirtualization: true
  debounceDelay: 40ms
  clampTasksToVisibleRows: true
  rowHeight: 24
  visibleRows: 4
cache:
  maxEntries: 10
  cleanupInterval: 1m
pool:
  maxSize: 20
holidays:
  - 2024-01-15
tasks:
  - id: design
    name: Design
    start: 2024-01-02
    end: 2024-01-04T14:00
  - id: build
    start: 2024-01-05
    duration: 3d
    row: 3
  - id: review
    start: 2024-01-10T09:00
    duration: 90m
`

func TestLoader_LoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := createFile(t, dir, "gantt.yaml", yamlProject)

	p, err := newLoader(t, "").Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, path, p.Path)
	assert.Equal(t, date(2024, time.January, 1), p.Timeline.Start)
	assert.Equal(t, date(2024, time.January, 31), p.Timeline.End)
	assert.Equal(t, domain.UnitWeek, p.Timeline.Unit)
	assert.False(t, p.Timeline.AutoUnit)
	assert.Equal(t, "de-DE", p.Timeline.Locale.Name)
	assert.Equal(t, time.Monday, p.Timeline.Locale.FirstDayOfWeek)
	assert.Equal(t, domain.WeekRuleFirstFourDayWeek, p.Timeline.Locale.WeekRule)
	assert.Equal(t, "02.01.", p.Timeline.DateFormat)
	assert.Equal(t, domain.DefaultMaxColumns, p.Timeline.MaxColumns)

	assert.Equal(t, domain.LayoutOptions{
		MaxVisibleTasks:         50,
		EnableVirtualization:    true,
		DebounceDelay:           40 * time.Millisecond,
		ClampTasksToVisibleRows: true,
		RowHeight:               24,
		ColumnWidth:             domain.DefaultColumnWidth,
		VisibleRows:             4,
	}, p.Layout)
	assert.Equal(t, domain.CacheOptions{MaxEntries: 10, CleanupInterval: time.Minute}, p.Cache)
	assert.Equal(t, 20, p.Pool.MaxSize)
	assert.Equal(t, []time.Time{date(2024, time.January, 15)}, p.Holidays)

	require.Len(t, p.Tasks, 3)
	assert.Equal(t, domain.Task{
		ID:       domain.NewInternedString("design"),
		Name:     "Design",
		Start:    date(2024, time.January, 2),
		End:      time.Date(2024, time.January, 4, 14, 0, 0, 0, time.UTC),
		RowIndex: 0,
	}, p.Tasks[0])
	assert.Equal(t, "build", p.Tasks[1].Name)
	assert.Equal(t, date(2024, time.January, 8), p.Tasks[1].End)
	assert.Equal(t, 3, p.Tasks[1].RowIndex)
	assert.Equal(t, time.Date(2024, time.January, 10, 10, 30, 0, 0, time.UTC), p.Tasks[2].End)
	assert.Equal(t, 2, p.Tasks[2].RowIndex)
}

func TestLoader_LoadTOML(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "plan.toml", `
version = "1"
holidays = ["2024-03-01"]

[timeline]
start = "2024-01-01"
end = "2024-12-31"
unit = "auto"
maxColumns = 20
timezone = "Europe/Berlin"

[[tasks]]
id = "q1"
start = "2024-01-01"
end = "2024-03-31"
`)

	p, err := newLoader(t, "").Load(dir, "plan.toml")
	require.NoError(t, err)

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	assert.True(t, p.Timeline.AutoUnit)
	assert.Equal(t, 20, p.Timeline.MaxColumns)
	assert.True(t, p.Timeline.Start.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, berlin)))
	assert.Equal(t, "Europe/Berlin", p.Timeline.Start.Location().String())
	assert.Equal(t, domain.InvariantLocale, p.Timeline.Locale)
	require.Len(t, p.Tasks, 1)
	assert.Equal(t, "q1", p.Tasks[0].ID.String())
}

func TestLoader_SearchesParentDirectories(t *testing.T) {
	root := t.TempDir()
	path := createFile(t, root, "gantt.yml", "timeline: {start: 2024-01-01, end: 2024-01-02}\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	p, err := newLoader(t, "").Load(nested, "")
	require.NoError(t, err)
	assert.Equal(t, path, p.Path)
}

func TestLoader_GlobalConfigIsOverlaid(t *testing.T) {
	global := t.TempDir()
	createFile(t, global, domain.GlobalConfigFileName, `
[timeline]
locale = "en-US"
firstDayOfWeek = "mon"
dateFormat = "Jan 2"

[layout]
rowHeight = 20.0
enableVirtualization = true

[cache]
maxEntries = 5
`)

	dir := t.TempDir()
	createFile(t, dir, "gantt.yaml", `
timeline:
  start: 2024-01-01
  end: 2024-01-10
  dateFormat: "2 Jan"
layout:
  rowHeight: 30
`)

	p, err := newLoader(t, global).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "en-US", p.Timeline.Locale.Name)
	assert.Equal(t, time.Monday, p.Timeline.Locale.FirstDayOfWeek)
	assert.Equal(t, "2 Jan", p.Timeline.DateFormat)
	assert.InDelta(t, 30.0, p.Layout.RowHeight, 1e-9)
	assert.True(t, p.Layout.EnableVirtualization)
	assert.Equal(t, 5, p.Cache.MaxEntries)
}

func TestLoader_GlobalTasksAreIgnored(t *testing.T) {
	global := t.TempDir()
	createFile(t, global, domain.GlobalConfigFileName, `
[[tasks]]
id = "stray"
start = "2024-01-01"
`)
	dir := t.TempDir()
	createFile(t, dir, "gantt.yaml", "timeline: {start: 2024-01-01, end: 2024-01-02}\n")

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	p, err := config.NewLoader(mockLogger).WithGlobalDir(global).Load(dir, "")
	require.NoError(t, err)
	assert.Empty(t, p.Tasks)
}

func TestLoader_RangeDerivedFromTasks(t *testing.T) {
	dir := t.TempDir()
	createFile(t, dir, "gantt.yaml", `
tasks:
  - {id: a, start: 2024-02-03, end: 2024-02-05}
  - {id: b, start: 2024-01-20, end: 2024-02-10}
`)

	p, err := newLoader(t, "").Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 20), p.Timeline.Start)
	assert.Equal(t, date(2024, time.February, 10), p.Timeline.End)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "no range and no tasks", file: "gantt.yaml", content: "version: \"1\"\n", wantErr: domain.ErrMissingTimelineRange},
		{name: "bad unit", file: "gantt.yaml", content: "timeline: {start: 2024-01-01, end: 2024-01-02, unit: quarter}\n", wantErr: domain.ErrInvalidTimeUnit},
		{name: "bad date", file: "gantt.yaml", content: "timeline: {start: 01/02/2024, end: 2024-01-02}\n", wantErr: domain.ErrInvalidDate},
		{name: "bad locale", file: "gantt.yaml", content: "timeline: {start: 2024-01-01, end: 2024-01-02, locale: 'not a tag!'}\n", wantErr: domain.ErrInvalidLocale},
		{name: "bad weekday", file: "gantt.yaml", content: "timeline: {start: 2024-01-01, end: 2024-01-02, firstDayOfWeek: someday}\n", wantErr: domain.ErrInvalidWeekday},
		{name: "bad week rule", file: "gantt.yaml", content: "timeline: {start: 2024-01-01, end: 2024-01-02, weekRule: iso}\n", wantErr: domain.ErrInvalidWeekRule},
		{name: "bad timezone", file: "gantt.yaml", content: "timeline: {start: 2024-01-01, end: 2024-01-02, timezone: Mars/Olympus}\n", wantErr: domain.ErrInvalidTimezone},
		{name: "bad duration", file: "gantt.yaml", content: "timeline: {start: 2024-01-01, end: 2024-01-02}\nlayout: {debounceDelay: soon}\n", wantErr: domain.ErrInvalidDuration},
		{name: "missing task id", file: "gantt.yaml", content: "tasks: [{start: 2024-01-01}]\n", wantErr: domain.ErrMissingTaskID},
		{name: "missing task start", file: "gantt.yaml", content: "tasks: [{id: a}]\n", wantErr: domain.ErrMissingTaskStart},
		{name: "duplicate task", file: "gantt.yaml", content: "tasks: [{id: a, start: 2024-01-01}, {id: a, start: 2024-01-02}]\n", wantErr: domain.ErrDuplicateTaskID},
		{name: "negative row", file: "gantt.yaml", content: "tasks: [{id: a, start: 2024-01-01, row: -1}]\n", wantErr: domain.ErrInvalidTaskRow},
		{name: "invalid yaml", file: "gantt.yaml", content: "tasks: [\n", wantErr: domain.ErrConfigParseFailed},
		{name: "invalid toml", file: "gantt.toml", content: "[timeline\n", wantErr: domain.ErrConfigParseFailed},
		{name: "unsupported format", file: "gantt.json", content: "{}", wantErr: domain.ErrUnsupportedConfigFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			createFile(t, dir, tt.file, tt.content)

			_, err := newLoader(t, "").Load(dir, tt.file)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_NotFound(t *testing.T) {
	_, err := newLoader(t, "").Load(t.TempDir(), "")
	require.ErrorIs(t, err, domain.ErrConfigNotFound)

	_, err = newLoader(t, "").Load(t.TempDir(), "missing.yaml")
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
}
