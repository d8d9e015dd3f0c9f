package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/pool"
)

func TestNew_DefaultSize(t *testing.T) {
	assert.Equal(t, pool.DefaultMaxSize, pool.New(0).MaxSize())
	assert.Equal(t, pool.DefaultMaxSize, pool.New(-3).MaxSize())
	assert.Equal(t, 7, pool.New(7).MaxSize())
}

func TestPool_ReturnThenGetReusesInstance(t *testing.T) {
	p := pool.New(10)

	bar := p.Bar()
	bar.TaskID = domain.NewInternedString("deploy")
	bar.Label = "Deploy"
	bar.Row = 4
	bar.Column = 7
	bar.ColumnSpan = 3

	require.True(t, p.Return(bar))

	again := p.Bar()
	assert.Same(t, bar, again)
	assert.Equal(t, domain.TaskBar{ColumnSpan: 1}, *again)
}

func TestPool_ReturnDetachesOwner(t *testing.T) {
	p := pool.New(10)
	cell := p.Cell()

	detached := false
	cell.SetOwner(func() { detached = true })

	p.Return(cell)
	assert.True(t, detached)
}

func TestPool_DropsBeyondCapacity(t *testing.T) {
	p := pool.New(2)

	rows := []*domain.GridRow{p.Row(), p.Row(), p.Row()}
	detached := 0
	for _, r := range rows {
		r.SetOwner(func() { detached++ })
	}

	assert.True(t, p.Return(rows[0]))
	assert.True(t, p.Return(rows[1]))
	assert.False(t, p.Return(rows[2]))
	assert.Equal(t, 3, detached, "dropped elements are still detached")

	stats := p.Stats().Kinds[domain.KindGridRow]
	assert.Equal(t, kindStats(2, 3, 0, 1), stats)
}

func kindStats(idle, created, reused, dropped int) pool.KindStats {
	return pool.KindStats{Idle: idle, Created: created, Reused: reused, Dropped: dropped}
}

func TestPool_KindsAreSeparate(t *testing.T) {
	p := pool.New(5)

	header := p.HeaderCell()
	p.Return(header)

	_ = p.Cell()
	assert.Same(t, header, p.HeaderCell())
}

func TestPool_GetOrCreate(t *testing.T) {
	p := pool.New(5)

	for _, kind := range domain.ElementKinds {
		el := p.GetOrCreate(kind)
		require.NotNil(t, el)
		assert.Equal(t, kind, el.Kind())
	}
	assert.Nil(t, p.GetOrCreate(domain.ElementKind(42)))
	assert.False(t, p.Return(nil))
}

func TestPool_Stats(t *testing.T) {
	p := pool.New(10)

	bars := make([]domain.Element, 0, 5)
	for range 5 {
		bars = append(bars, p.Bar())
	}
	p.ReturnAll(bars)
	_ = p.Bar()
	_ = p.Bar()

	stats := p.Stats()
	assert.Equal(t, kindStats(3, 5, 2, 0), stats.Kinds[domain.KindTaskBar])
	assert.Equal(t, 3, stats.TotalIdle)
	assert.Equal(t, 40, stats.Capacity)
	assert.InDelta(t, 7.5, stats.Utilization, 0.001)

	p.Clear()
	stats = p.Stats()
	assert.Equal(t, 0, stats.TotalIdle)
	assert.Equal(t, 5, stats.Kinds[domain.KindTaskBar].Created)
}

func TestReset(t *testing.T) {
	header := &domain.TimeHeaderCell{Column: 9, Label: "Week 3, 2024"}
	pool.Reset(header)
	assert.Equal(t, domain.TimeHeaderCell{}, *header)
}

func TestPool_ReturnTwiceKeepsOneIdleCopy(t *testing.T) {
	p := pool.New(10)
	bar := p.Bar()

	require.True(t, p.Return(bar))
	assert.False(t, p.Return(bar))
	assert.Equal(t, 1, p.Stats().Kinds[domain.KindTaskBar].Idle)

	first, second := p.Bar(), p.Bar()
	assert.Same(t, bar, first)
	assert.NotSame(t, first, second)

	require.True(t, p.Return(first), "a reused element can be returned again")
}
