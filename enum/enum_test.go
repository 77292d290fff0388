package enum_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/on-the-ground/funcore/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Scores []int

func TestChunkBy(t *testing.T) {
	chunks, err := enum.ChunkBy([]int{0, 1, 2, -1, -2}, func(x int) bool { return x > 0 })
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1, 2}, {-1, -2}}, chunks)
}

func TestChunkBy_PreservesContainerType(t *testing.T) {
	chunks, err := enum.ChunkBy(Scores{1, 1, 2}, func(x int) int { return x })
	require.NoError(t, err)
	assert.Equal(t, []Scores{{1, 1}, {2}}, chunks)
}

func TestChunkBy_EmptyInput(t *testing.T) {
	_, err := enum.ChunkBy([]int{}, func(x int) int { return x })
	assert.ErrorIs(t, err, enum.ErrEmptyInput)
}

func TestDedup(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 5}, enum.Dedup([]int{1, 1, 2, 2, 3, 5, 3}))
}

func TestDedupBy(t *testing.T) {
	got := enum.DedupBy(Scores{1, 2, 3, 4}, func(x int) int { return x % 2 })
	assert.Equal(t, Scores{1, 2}, got)
}

func TestDedup_DoesNotMutateInput(t *testing.T) {
	in := []int{3, 3, 1}
	_ = enum.Dedup(in)
	assert.Equal(t, []int{3, 3, 1}, in)
}

func TestRotate(t *testing.T) {
	in := []int{1, 2, 3, 4}
	cases := []struct {
		shift int
		want  []int
	}{
		{1, []int{4, 1, 2, 3}},
		{2, []int{3, 4, 1, 2}},
		{-1, []int{2, 3, 4, 1}},
		{0, []int{1, 2, 3, 4}},
		{4, []int{1, 2, 3, 4}},
		{5, []int{4, 1, 2, 3}},
		{-5, []int{2, 3, 4, 1}},
	}
	for _, tc := range cases {
		got, err := enum.Rotate(in, tc.shift)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "shift %d", tc.shift)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, in)
}

func TestRotate_Empty(t *testing.T) {
	_, err := enum.Rotate([]int{}, 1)
	assert.ErrorIs(t, err, enum.ErrEmptyInput)

	got, err := enum.Rotate([]int(nil), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFind(t *testing.T) {
	v, err := enum.Find(slices.Values([]int{1, 3, 2, 4}), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = enum.Find(slices.Values([]int{1, 3}), 2)
	assert.ErrorIs(t, err, enum.ErrIndexOutOfRange)

	_, err = enum.Find(slices.Values([]int{1, 3}), -1)
	assert.ErrorIs(t, err, enum.ErrIndexOutOfRange)
}

func TestFind_NonSliceSequence(t *testing.T) {
	var squares iter.Seq[int] = func(yield func(int) bool) {
		for i := 0; i < 10; i++ {
			if !yield(i * i) {
				return
			}
		}
	}
	v, err := enum.Find(squares, 4)
	require.NoError(t, err)
	assert.Equal(t, 16, v)
}

func TestFlip(t *testing.T) {
	got, err := enum.Flip([]int{1, 2, 3, 4}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 4}, got)

	got, err = enum.FlipNext([]int{1, 2, 3, 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 4}, got)

	gotScores, err := enum.Flip(Scores{1, 2, 3, 4}, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, Scores{4, 2, 3, 1}, gotScores)

	got, err = enum.Flip([]int{1, 2}, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestFlip_OutOfRange(t *testing.T) {
	_, err := enum.FlipNext([]int{1, 2, 3, 4}, 3)
	assert.ErrorIs(t, err, enum.ErrIndexOutOfRange)

	_, err = enum.Flip([]int{1, 2}, -1, 0)
	assert.ErrorIs(t, err, enum.ErrIndexOutOfRange)
}

func TestTake(t *testing.T) {
	assert.Equal(t, []int{1, 2}, enum.Take([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, []int{1, 2}, enum.Take([]int{1, 2}, 10))
	assert.Empty(t, enum.Take([]int{1, 2}, 0))
	assert.Empty(t, enum.Take([]int{1, 2}, -3))
}

func TestPipe(t *testing.T) {
	n := enum.Pipe([]int{3, 1, 3}, func(s []int) int { return len(enum.Dedup(s)) })
	assert.Equal(t, 2, n)
}
