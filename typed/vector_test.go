// Copyright (c) 2025 Visvasity LLC

package typed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visvasity/bytevec/bytevec"
)

type record struct {
	Num, Doubled, Squared int32
}

func newRecord(i int32) record {
	return record{Num: i, Doubled: i * 2, Squared: i * i}
}

func TestNewRejectsPointers(t *testing.T) {
	_, err := New[*int](10)
	assert.ErrorIs(t, err, ErrPointerType)
	_, err = New[string](10)
	assert.ErrorIs(t, err, ErrPointerType)
	_, err = New[struct {
		A int
		B []byte
	}](10)
	assert.ErrorIs(t, err, ErrPointerType)
	_, err = New[[4]map[int]int](10)
	assert.ErrorIs(t, err, ErrPointerType)

	v, err := New[[4]record](10)
	require.NoError(t, err)
	assert.Equal(t, 48, v.Bytes().ElemSize())
	Destroy(&v)
	assert.Nil(t, v)
}

func TestPushAndRead(t *testing.T) {
	v, err := New[int32](bytevec.MinCapacity)
	require.NoError(t, err)
	defer Destroy(&v)

	for i := int32(0); i <= bytevec.MinCapacity; i++ {
		require.NoError(t, v.PushBack(i))
	}
	assert.Equal(t, bytevec.MinCapacity*bytevec.GrowthFactor, v.Cap())
	for i := 0; i <= bytevec.MinCapacity; i++ {
		x, ok := v.At(i)
		require.True(t, ok)
		assert.Equal(t, int32(i), x)
	}
	_, ok := v.At(bytevec.MinCapacity + 1)
	assert.False(t, ok)

	first, ok := v.Front()
	require.True(t, ok)
	assert.Equal(t, int32(0), first)
	last, ok := v.Back()
	require.True(t, ok)
	assert.Equal(t, int32(bytevec.MinCapacity), last)

	v.PopBack()
	assert.Equal(t, int32(bytevec.MinCapacity), v.AtUnchecked(bytevec.MinCapacity))

	v.Clear()
	assert.True(t, v.Empty())
	_, ok = v.Back()
	assert.False(t, ok)
}

func TestInsertEraseStructs(t *testing.T) {
	v, err := New[record](20)
	require.NoError(t, err)
	defer Destroy(&v)

	for i := int32(0); i < 10; i++ {
		require.True(t, v.Insert(int(i), newRecord(i)))
	}
	require.True(t, v.Insert(4, newRecord(-1)))
	assert.False(t, v.Insert(12, newRecord(-1)))

	got, ok := v.At(4)
	require.True(t, ok)
	assert.Equal(t, newRecord(-1), got)

	require.True(t, v.Erase(4))
	assert.False(t, v.Erase(10))

	want := make([]record, 10)
	for i := range want {
		want[i] = newRecord(int32(i))
	}
	if diff := cmp.Diff(want, v.Values()); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}

	require.True(t, v.Set(0, newRecord(100)))
	assert.False(t, v.Set(10, newRecord(100)))
	got, _ = v.At(0)
	assert.Equal(t, newRecord(100), got)
}

func TestEraseFuncAndEqual(t *testing.T) {
	v1, err := New[record](50)
	require.NoError(t, err)
	defer Destroy(&v1)
	v2, err := New[record](50)
	require.NoError(t, err)
	defer Destroy(&v2)

	for i := int32(0); i < 50; i++ {
		require.NoError(t, v1.PushBack(newRecord(i)))
		require.NoError(t, v2.PushBack(newRecord(i)))
	}
	assert.True(t, Equal(v1, v2))

	assert.Equal(t, 25, v1.EraseFunc(func(r record) bool { return r.Num%2 == 0 }))
	assert.Equal(t, 25, v2.EraseFunc(func(r record) bool { return r.Num%2 == 1 }))
	assert.False(t, Equal(v1, v2))

	for i, r := range v1.All() {
		assert.Equal(t, newRecord(int32(2*i+1)), r)
	}
	for i, r := range v2.All() {
		assert.Equal(t, newRecord(int32(2*i)), r)
	}

	assert.Equal(t, 1, v2.EraseValue(newRecord(48)))
	assert.Equal(t, 24, v2.Len())
}

func TestResizeAndSwap(t *testing.T) {
	a, err := New[int64](20)
	require.NoError(t, err)
	defer Destroy(&a)
	b, err := New[int64](30)
	require.NoError(t, err)
	defer Destroy(&b)

	require.NoError(t, a.Resize(5))
	require.NoError(t, b.ResizeFill(45, -99))
	assert.Equal(t, []int64{0, 0, 0, 0, 0}, a.Values())
	assert.Equal(t, 60, b.Cap())

	Swap(a, b)
	assert.Equal(t, 45, a.Len())
	assert.Equal(t, 5, b.Len())
	for _, x := range a.All() {
		assert.Equal(t, int64(-99), x)
	}

	require.NoError(t, a.ShrinkToFit())
	assert.Equal(t, 45, a.Cap())
	require.NoError(t, a.Reserve(100))
	assert.Equal(t, 100, a.Cap())
}

func TestDestroyOtherReference(t *testing.T) {
	v, err := New[int32](4)
	require.NoError(t, err)
	require.NoError(t, v.PushBack(7))

	other := v
	Destroy(&v)
	assert.Nil(t, v)
	require.NotNil(t, other)
	assert.PanicsWithValue(t, bytevec.ErrUseAfterDestroy, func() { other.Len() })
	assert.PanicsWithValue(t, bytevec.ErrUseAfterDestroy, func() { other.PushBack(1) })

	// Destroying the other reference again is harmless for the caller.
	Destroy(&other)
	assert.Nil(t, other)
}
