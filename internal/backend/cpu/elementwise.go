package cpu

import "github.com/born-ml/strided/internal/layout"

// All kernels in this file iterate the shape of dst. Source layouts must
// already be broadcast to that shape, and dst must not alias a source
// unless both layouts are identical.

// Map writes f(src[i]) to dst[i].
func Map[T, U any](be Backend, dst []U, dl layout.Layout, src []T, sl layout.Layout, f func(T) U) {
	be.run(dl.Shape(), []layout.Layout{dl, sl}, func(_ int, addr []int) {
		dst[addr[0]] = f(src[addr[1]])
	})
}

// Zip writes f(a[i], b[i]) to dst[i].
func Zip[A, B, C any](be Backend, dst []C, dl layout.Layout, a []A, al layout.Layout, b []B, bl layout.Layout, f func(A, B) C) {
	be.run(dl.Shape(), []layout.Layout{dl, al, bl}, func(_ int, addr []int) {
		dst[addr[0]] = f(a[addr[1]], b[addr[2]])
	})
}

// Apply replaces dst[i] with f(dst[i]).
func Apply[T any](be Backend, dst []T, dl layout.Layout, f func(T) T) {
	be.run(dl.Shape(), []layout.Layout{dl}, func(_ int, addr []int) {
		dst[addr[0]] = f(dst[addr[0]])
	})
}

// Update replaces dst[i] with f(dst[i], src[i]).
func Update[T, U any](be Backend, dst []T, dl layout.Layout, src []U, sl layout.Layout, f func(T, U) T) {
	be.run(dl.Shape(), []layout.Layout{dl, sl}, func(_ int, addr []int) {
		dst[addr[0]] = f(dst[addr[0]], src[addr[1]])
	})
}

// Fill sets every element addressed by dl to v.
func Fill[T any](be Backend, dst []T, dl layout.Layout, v T) {
	be.run(dl.Shape(), []layout.Layout{dl}, func(_ int, addr []int) {
		dst[addr[0]] = v
	})
}

// Copy copies src into dst element by element.
func Copy[T any](be Backend, dst []T, dl layout.Layout, src []T, sl layout.Layout) {
	if dl.IsContig(be.order) && sl.IsContig(be.order) {
		n := dl.Size()
		copy(dst[dl.Offset():dl.Offset()+n], src[sl.Offset():sl.Offset()+n])
		return
	}
	Map(be, dst, dl, src, sl, func(v T) T { return v })
}

// Gather returns the elements of src addressed by sl, in traversal order.
func Gather[T any](be Backend, src []T, sl layout.Layout) []T {
	out := make([]T, sl.Size())
	Copy(be, out, layout.Contig(sl.Shape(), be.order), src, sl)
	return out
}
