// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package meshbuf

// LineListWrap pairs consecutive elements and the last with the first:
// (a, b, c) becomes (a, b, b, c, c, a).
func LineListWrap[T any](seq []T) []T {
	if len(seq) == 0 {
		return nil
	}
	out := make([]T, 0, 2*len(seq))
	for i := range seq {
		out = append(out, seq[i], seq[(i+1)%len(seq)])
	}
	return out
}

// LineList pairs consecutive elements without closing the loop:
// (a, b, c) becomes (a, b, b, c).
func LineList[T any](seq []T) []T {
	if len(seq) < 2 {
		return nil
	}
	out := make([]T, 0, 2*(len(seq)-1))
	for i := range len(seq) - 1 {
		out = append(out, seq[i], seq[i+1])
	}
	return out
}

// TriangleFan fans seq around its first element:
// (x0, x1, x2, x3) becomes (x0, x1, x2, x0, x2, x3).
func TriangleFan[T any](seq []T) []T {
	if len(seq) < 3 {
		return nil
	}
	out := make([]T, 0, 3*(len(seq)-2))
	for i := 1; i+1 < len(seq); i++ {
		out = append(out, seq[0], seq[i], seq[i+1])
	}
	return out
}
