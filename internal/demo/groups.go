package demo

import (
	"harness/pkg/assert"
	"harness/pkg/harness"
)

// StackGroup tests Stack. Each test gets a fresh stack.
type StackGroup struct {
	harness.Case
	stack *Stack[int]
}

func (g *StackGroup) SetUp() {
	g.stack = &Stack[int]{}
}

func (g *StackGroup) TearDown() {
	g.stack = nil
}

func (g *StackGroup) TestStartsEmpty() {
	assert.Equal(0, g.stack.Len())
	_, ok := g.stack.Peek()
	assert.False(ok)
}

func (g *StackGroup) TestPushPop() {
	g.stack.Push(1)
	g.stack.Push(2)

	top, err := g.stack.Pop()
	assert.NoError(err)
	assert.Equal(2, top)
	assert.Equal(1, g.stack.Len())
}

func (g *StackGroup) TestPeek() {
	g.stack.Push(7)
	top, ok := g.stack.Peek()
	assert.True(ok)
	assert.Equal(7, top)
	assert.Equal(1, g.stack.Len())
}

func (g *StackGroup) TestPopEmpty() {
	assert.RaisesError[*EmptyError](func() error {
		_, err := g.stack.Pop()
		return err
	})
}

func (g *StackGroup) TestMustPopEmpty() {
	assert.Raises[*EmptyError](func() { g.stack.MustPop() })
}

// StatsGroup tests the statistics helpers.
type StatsGroup struct {
	harness.Case
}

func (g *StatsGroup) TestMean() {
	mean, err := Mean(1, 2, 4)
	assert.NoError(err)
	assert.Close(2.333, mean, 0.001)
}

func (g *StatsGroup) TestMeanOfNothing() {
	_, err := Mean()
	assert.IsNotNil(err)
}

func (g *StatsGroup) TestMedian() {
	assert.NotImplemented()
}

// Register adds the demo groups to r.
func Register(r *harness.Runner) {
	harness.Register(r,
		harness.Named("stack.starts_empty", (*StackGroup).TestStartsEmpty),
		harness.Named("stack.push_pop", (*StackGroup).TestPushPop),
		harness.Named("stack.peek", (*StackGroup).TestPeek),
		harness.Named("stack.pop_empty", (*StackGroup).TestPopEmpty),
		harness.Named("stack.must_pop_empty", (*StackGroup).TestMustPopEmpty),
	)
	harness.Register(r,
		harness.Named("stats.mean", (*StatsGroup).TestMean),
		harness.Named("stats.mean_of_nothing", (*StatsGroup).TestMeanOfNothing),
		harness.Named("stats.median", (*StatsGroup).TestMedian),
	)
}
