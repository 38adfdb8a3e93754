package tensor

import (
	"errors"
	"testing"
)

func TestSetAliasesView(t *testing.T) {
	src := NewRaw(Float32, CPU)
	mustResize(t, src, Shape{3, 1, 4})

	dst := NewRaw(Float32, CPU)
	dst.Set(src)

	if dst.Storage() != src.Storage() {
		t.Fatal("Set must share storage")
	}
	if dst.Offset() != src.Offset() {
		t.Errorf("Set offset = %d, want %d", dst.Offset(), src.Offset())
	}
	assertShape(t, dst, Shape{3, 1, 4}, "Set")
	assertStrides(t, dst, []int{4, 4, 1}, "Set")

	// dst owns its shape arrays: mutating dst leaves src alone.
	mustResize(t, dst, Shape{12})
	assertShape(t, src, Shape{3, 1, 4}, "src after dst resize")
}

func TestSetSelfIsNoOp(t *testing.T) {
	v := NewRaw(Float32, CPU)
	mustResize(t, v, Shape{2, 2})
	storage := v.Storage()

	v.Set(v)

	if v.Storage() != storage {
		t.Error("self-Set replaced storage")
	}
	assertShape(t, v, Shape{2, 2}, "self-Set")
}

func TestSetFromEmptyView(t *testing.T) {
	src := NewRaw(Float32, CPU)

	dst := NewRaw(Float32, CPU)
	mustResize(t, dst, Shape{2, 2})
	dst.Set(src)

	if dst.Dim() != 0 {
		t.Errorf("rank = %d after Set from empty view, want 0", dst.Dim())
	}
	// src has no storage; dst gets a fresh empty one bound in its place.
	if dst.Storage() == nil {
		t.Error("Set from empty view left no storage bound")
	}
	if dst.Storage().Len() != 0 {
		t.Errorf("fresh storage holds %d elements, want 0", dst.Storage().Len())
	}
}

func TestSetReleasesPreviousStorage(t *testing.T) {
	a := NewRaw(Float32, CPU)
	mustResize(t, a, Shape{4})
	b := NewRaw(Float32, CPU)
	mustResize(t, b, Shape{8})

	old := b.Storage()
	b.Set(a)

	if b.Storage() != a.Storage() {
		t.Fatal("Set must rebind to src storage")
	}
	// b held the only reference to its old storage; the rebind released
	// and freed it.
	if old.Data() != nil {
		t.Error("previous storage was not freed on rebind")
	}
}

func TestSetStorageValidation(t *testing.T) {
	v := NewRaw(Float32, CPU)
	mustResize(t, v, Shape{2, 2})
	storage := v.Storage()

	err := v.SetStorage(storage, -1, []int{2, 2}, nil)
	if !errors.Is(err, ErrInvalidOffset) {
		t.Errorf("negative offset: got %v, want ErrInvalidOffset", err)
	}
	if err := v.SetStorage(storage, 0, nil, nil); !errors.Is(err, ErrNilSizes) {
		t.Errorf("nil sizes: got %v, want ErrNilSizes", err)
	}
	if err := v.SetStorage(storage, 0, []int{2, 2}, []int{1}); !errors.Is(err, ErrStrideLength) {
		t.Errorf("mismatched strides: got %v, want ErrStrideLength", err)
	}

	// No partial mutation on any failed validation.
	if v.Storage() != storage || v.Offset() != 0 {
		t.Error("failed SetStorage mutated the view")
	}
	assertShape(t, v, Shape{2, 2}, "after failed SetStorage")
}

func TestSetStorageWithOffset(t *testing.T) {
	base := NewRaw(Float32, CPU)
	mustResize(t, base, Shape{10})

	window := NewRaw(Float32, CPU)
	if err := window.SetStorage(base.Storage(), 4, []int{3}, nil); err != nil {
		t.Fatalf("SetStorage failed: %v", err)
	}
	if window.Offset() != 4 {
		t.Errorf("offset = %d, want 4", window.Offset())
	}
	if window.Storage() != base.Storage() {
		t.Error("window must share base storage")
	}
	// Required extent 3 + offset 4 fits the existing 10 elements.
	if got := base.Storage().Len(); got != 10 {
		t.Errorf("storage grew to %d on a fitting window", got)
	}

	// A window past the current capacity grows the shared storage.
	if err := window.SetStorage(base.Storage(), 8, []int{5}, nil); err != nil {
		t.Fatalf("SetStorage failed: %v", err)
	}
	if got := base.Storage().Len(); got != 13 {
		t.Errorf("storage holds %d elements, want 13", got)
	}
}

func TestSetStorageNilBindsEmptyStorage(t *testing.T) {
	v := NewRaw(Int16, CPU)
	mustResize(t, v, Shape{2})
	old := v.Storage()

	if err := v.SetStorage(nil, 0, []int{0}, nil); err != nil {
		t.Fatalf("SetStorage failed: %v", err)
	}
	if v.Storage() == nil || v.Storage() == old {
		t.Fatal("nil storage must bind a fresh empty storage")
	}
	if v.Storage().DType() != Int16 {
		t.Errorf("fresh storage dtype = %s, want int16", v.Storage().DType())
	}
	if v.Storage().Len() != 0 {
		t.Errorf("fresh storage holds %d elements, want 0", v.Storage().Len())
	}
	if v.Dim() != 0 {
		t.Errorf("rank = %d, want 0", v.Dim())
	}
}

func TestSqueeze1d(t *testing.T) {
	src := NewRaw(Float32, CPU)
	mustResize(t, src, Shape{3, 1, 4})

	dst := NewRaw(Float32, CPU)
	if err := dst.Squeeze1d(src, 1); err != nil {
		t.Fatalf("Squeeze1d failed: %v", err)
	}
	assertShape(t, dst, Shape{3, 4}, "squeeze dim 1")
	assertStrides(t, dst, []int{4, 1}, "squeeze dim 1")
	if dst.Storage() != src.Storage() {
		t.Error("squeeze must alias src storage")
	}
	assertShape(t, src, Shape{3, 1, 4}, "src after squeeze")
}

func TestSqueeze1dNonUnitDimIsNoOp(t *testing.T) {
	src := NewRaw(Float32, CPU)
	mustResize(t, src, Shape{3, 2, 4})

	dst := NewRaw(Float32, CPU)
	if err := dst.Squeeze1d(src, 1); err != nil {
		t.Fatalf("Squeeze1d failed: %v", err)
	}
	assertShape(t, dst, Shape{3, 2, 4}, "squeeze non-unit dim")
	assertStrides(t, dst, []int{8, 4, 1}, "squeeze non-unit dim")
}

func TestSqueeze1dSoleDimensionIsNoOp(t *testing.T) {
	src := NewRaw(Float32, CPU)
	mustResize(t, src, Shape{1})

	dst := NewRaw(Float32, CPU)
	if err := dst.Squeeze1d(src, 0); err != nil {
		t.Fatalf("Squeeze1d failed: %v", err)
	}
	// The last dimension survives even at size 1.
	assertShape(t, dst, Shape{1}, "squeeze sole dim")
}

func TestSqueeze1dInPlace(t *testing.T) {
	v := NewRaw(Float32, CPU)
	mustResize(t, v, Shape{1, 5})

	if err := v.Squeeze1d(nil, 0); err != nil {
		t.Fatalf("Squeeze1d failed: %v", err)
	}
	assertShape(t, v, Shape{5}, "in-place squeeze")
	assertStrides(t, v, []int{1}, "in-place squeeze")
}

func TestSqueeze1dDimOutOfRange(t *testing.T) {
	src := NewRaw(Float32, CPU)
	mustResize(t, src, Shape{2, 2})

	dst := NewRaw(Float32, CPU)
	if err := dst.Squeeze1d(src, 2); !errors.Is(err, ErrDimOutOfRange) {
		t.Errorf("dim 2 on rank 2: got %v, want ErrDimOutOfRange", err)
	}
	if err := dst.Squeeze1d(src, -1); !errors.Is(err, ErrDimOutOfRange) {
		t.Errorf("dim -1: got %v, want ErrDimOutOfRange", err)
	}
}

func TestUnsqueeze1d(t *testing.T) {
	tests := []struct {
		dim     int
		shape   Shape
		strides []int
	}{
		{0, Shape{1, 5}, []int{5, 1}},
		{1, Shape{5, 1}, []int{1, 1}},
	}

	for _, tt := range tests {
		src := NewRaw(Float32, CPU)
		mustResize(t, src, Shape{5})

		dst := NewRaw(Float32, CPU)
		if err := dst.Unsqueeze1d(src, tt.dim); err != nil {
			t.Fatalf("Unsqueeze1d(%d) failed: %v", tt.dim, err)
		}
		assertShape(t, dst, tt.shape, "unsqueeze")
		assertStrides(t, dst, tt.strides, "unsqueeze")
		if dst.Storage() != src.Storage() {
			t.Error("unsqueeze must alias src storage")
		}
	}
}

func TestUnsqueeze1dMiddle(t *testing.T) {
	src := NewRaw(Float32, CPU)
	mustResize(t, src, Shape{2, 3})

	dst := NewRaw(Float32, CPU)
	if err := dst.Unsqueeze1d(src, 1); err != nil {
		t.Fatalf("Unsqueeze1d failed: %v", err)
	}
	assertShape(t, dst, Shape{2, 1, 3}, "unsqueeze middle")
	assertStrides(t, dst, []int{3, 3, 1}, "unsqueeze middle")
}

func TestUnsqueeze1dErrors(t *testing.T) {
	src := NewRaw(Float32, CPU)
	mustResize(t, src, Shape{5})

	dst := NewRaw(Float32, CPU)
	if err := dst.Unsqueeze1d(src, 2); !errors.Is(err, ErrDimOutOfRange) {
		t.Errorf("dim past rank+1: got %v, want ErrDimOutOfRange", err)
	}
	if err := dst.Unsqueeze1d(src, -1); !errors.Is(err, ErrDimOutOfRange) {
		t.Errorf("negative dim: got %v, want ErrDimOutOfRange", err)
	}

	empty := NewRaw(Float32, CPU)
	if err := dst.Unsqueeze1d(empty, 0); !errors.Is(err, ErrUnsqueezeEmpty) {
		t.Errorf("rank-0 src: got %v, want ErrUnsqueezeEmpty", err)
	}
}

func TestPreserveReduceDimSemantics(t *testing.T) {
	// A reduction over dim 1 of a [2,3,4] view that dropped the dimension
	// leaves [2,4]; the helper restores [2,1,4].
	v := NewRaw(Float32, CPU)
	mustResize(t, v, Shape{2, 4})
	if err := v.PreserveReduceDimSemantics(3, 1, false); err != nil {
		t.Fatalf("PreserveReduceDimSemantics failed: %v", err)
	}
	assertShape(t, v, Shape{2, 1, 4}, "restored rank")

	// keepRank reductions already have the size-1 dimension: no change.
	kept := NewRaw(Float32, CPU)
	mustResize(t, kept, Shape{2, 1, 4})
	if err := kept.PreserveReduceDimSemantics(3, 1, true); err != nil {
		t.Fatalf("PreserveReduceDimSemantics failed: %v", err)
	}
	assertShape(t, kept, Shape{2, 1, 4}, "keepRank")

	// Rank not equal to inputRank-1: nothing to restore.
	other := NewRaw(Float32, CPU)
	mustResize(t, other, Shape{2, 4})
	if err := other.PreserveReduceDimSemantics(4, 1, false); err != nil {
		t.Fatalf("PreserveReduceDimSemantics failed: %v", err)
	}
	assertShape(t, other, Shape{2, 4}, "rank mismatch")
}
