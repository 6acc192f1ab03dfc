// Copyright (c) 2025 Visvasity LLC

package vectors

import (
	"cmp"
	"math/rand"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visvasity/bytevec/bytevec"
	"github.com/visvasity/bytevec/input"
	"github.com/visvasity/bytevec/typed"
)

func randomSamples(seed int64, n int) []input.Sample {
	r := rand.New(rand.NewSource(seed))
	xs := make([]input.Sample, n)
	for i := range xs {
		randomize(r, &xs[i])
		xs[i].ID = uint64(i)
	}
	return xs
}

func TestSampleCopyRoundTrip(t *testing.T) {
	for i, s1 := range randomSamples(1, 10) {
		v := make(Sample, SampleSize)
		require.True(t, v.IsZero())
		v.CopyFrom(&s1)

		var s2 input.Sample
		v.CopyTo(&s2)
		if diff := gocmp.Diff(s1, s2); diff != "" {
			t.Fatalf("sample %d changed in a round trip (-want +got):\n%s", i, diff)
		}

		assert.Equal(t, s1.Origin.Depth, v.Origin().Depth())
		assert.Equal(t, s1.Corners[3].Y, v.CornersItemAt(3).Y())
		assert.Equal(t, s1.Tags, v.Tags())
		assert.Equal(t, s1.Digest, v.Digest())

		v.SetZero()
		assert.True(t, v.IsZero())
	}
}

func TestViewAccessors(t *testing.T) {
	v := make(Sample, SampleSize)
	v.SetFlags(input.VisibleFlag | input.PinnedFlag)
	v.SetValid(true)
	v.Origin().SetX(-5)
	v.CornersItemAt(1).SetDepth(250)
	v.SetTagsItemAt(2, 7)

	var s input.Sample
	v.CopyTo(&s)
	assert.Equal(t, input.VisibleFlag|input.PinnedFlag, s.Flags)
	assert.True(t, s.Valid)
	assert.Equal(t, int32(-5), s.Origin.X)
	assert.Equal(t, input.Meters(250), s.Corners[1].Depth)
	assert.Equal(t, [3]uint16{0, 0, 7}, s.Tags)

	assert.Panics(t, func() { v.CornersItemAt(4) })
	assert.Panics(t, func() { v.SetTagsItemAt(-1, 0) })

	p := make(Point, PointSize)
	p.SetX(1)
	p.SetY(2)
	p.SetDepth(3)
	assert.Equal(t, "X=1 Y=2 Depth=3", p.String())
}

func TestSampleVector(t *testing.T) {
	samples := randomSamples(2, 50)

	v, err := NewSampleVector(bytevec.MinCapacity)
	require.NoError(t, err)
	defer bytevec.Destroy(&v.Vector)

	for i := range samples {
		require.NoError(t, v.PushBack(&samples[i]))
	}
	assert.Equal(t, len(samples), v.Len())
	assert.Equal(t, SampleSize, v.ElemSize())
	assert.Equal(t, uint64(0), v.Front().ID())
	assert.Equal(t, uint64(49), v.Back().ID())
	assert.Nil(t, v.At(50))

	for i, e := range v.All() {
		var s input.Sample
		e.CopyTo(&s)
		assert.Equal(t, samples[i], s)
	}

	// Layout agrees byte for byte with raw memory copies of the values.
	tv, err := typed.New[input.Sample](bytevec.MinCapacity)
	require.NoError(t, err)
	defer typed.Destroy(&tv)
	for _, s := range samples {
		require.NoError(t, tv.PushBack(s))
	}
	assert.Equal(t, tv.Bytes().Begin(), v.Begin())

	assert.Equal(t, 25, v.EraseFunc(func(x Sample) bool { return x.ID()%2 == 0 }))
	assert.Equal(t, uint64(1), v.Front().ID())

	e := v.Insert(0, &samples[0])
	require.NotNil(t, e)
	assert.Equal(t, uint64(0), e.ID())
	assert.Equal(t, uint64(1), v.Erase(0).ID())
}

func TestPointVectorSortAndFind(t *testing.T) {
	v, err := NewPointVector(20)
	require.NoError(t, err)
	defer bytevec.Destroy(&v.Vector)

	for _, x := range []int32{5, -1, 9, 3, 3, 0} {
		require.NoError(t, v.PushBack(&input.Point{X: x, Y: x * 10}))
	}
	v.SortFunc(func(a, b Point) int { return cmp.Compare(a.X(), b.X()) })

	var xs []int32
	for _, p := range v.All() {
		assert.Equal(t, p.X()*10, p.Y())
		xs = append(xs, p.X())
	}
	assert.Equal(t, []int32{-1, 0, 3, 3, 5, 9}, xs)

	i, ok := v.FindFunc(func(p Point) int { return cmp.Compare(int32(3), p.X()) })
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = v.FindFunc(func(p Point) int { return cmp.Compare(int32(4), p.X()) })
	assert.False(t, ok)

	v.SwapItems(0, 5)
	assert.Equal(t, int32(9), v.Front().X())
	assert.Equal(t, int32(-1), v.Back().X())
	assert.Equal(t, int32(0), v.AtUnchecked(1).X())
}
