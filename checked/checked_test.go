package checked

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoxRoundTrip(t *testing.T) {
	value := uint(5)

	box := NewBox(&value)

	inner, err := IntoInner[uint](box)
	require.NoError(t, err)
	require.Same(t, &value, inner)
}

func TestBoxMismatch(t *testing.T) {
	value := uint(5)

	box := NewBox(&value)

	_, err := IntoInner[string](box)
	require.ErrorIs(t, err, ErrTypeMismatch)
	require.ErrorContains(t, err, "uint")

	// a failed recovery does not consume the box
	inner, err := IntoInner[uint](box)
	require.NoError(t, err)
	require.Equal(t, uint(5), *inner)
}

func TestBoxViews(t *testing.T) {
	box := NewBox(new(uint))

	ptr, err := BoxMut[uint](box)
	require.NoError(t, err)
	*ptr = 42

	ref, err := BoxRef[uint](box)
	require.NoError(t, err)
	require.Equal(t, uint(42), *ref)

	_, err = BoxMut[string](box)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestMutRoundTrip(t *testing.T) {
	value := uint(5)

	m := NewMut(&value)

	ptr, err := MutGet[uint](m)
	require.NoError(t, err)
	*ptr = 42

	ref, err := MutRef[uint](m)
	require.NoError(t, err)
	require.Equal(t, uint(42), *ref)

	require.Equal(t, uint(42), value)

	_, err = MutGet[string](m)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestRefRoundTrip(t *testing.T) {
	value := uint(5)

	ref := NewRef(&value)

	ptr, err := Get[uint](ref)
	require.NoError(t, err)
	require.Same(t, &value, ptr)
}

func TestRefHeterogeneous(t *testing.T) {
	number := uint64(5)
	text := "Hello World"

	refs := []Ref{NewRef(&number), NewRef(&text)}

	n, err := Get[uint64](refs[0])
	require.NoError(t, err)
	require.Equal(t, uint64(5), *n)

	s, err := Get[string](refs[1])
	require.NoError(t, err)
	require.Equal(t, "Hello World", *s)

	// recovering with the wrong element's type is reported, not undefined
	_, err = Get[string](refs[0])
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestTypeIDStable(t *testing.T) {
	require.Equal(t, TypeIDOf[uint](), TypeIDOf[uint]())
	require.NotEqual(t, TypeIDOf[uint](), TypeIDOf[string]())

	// a pointer type gets an id of its own
	require.NotEqual(t, TypeIDOf[uint](), TypeIDOf[*uint]())
}

func BenchmarkCheckedRefGet(b *testing.B) {
	value := uint(5)
	ref := NewRef(&value)

	b.ReportAllocs()

	var dummy uint

	for b.Loop() {
		ptr, err := Get[uint](ref)
		if err != nil {
			b.Fatal(err)
		}

		dummy += *ptr
	}

	_ = dummy
}
