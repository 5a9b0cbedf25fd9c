package format

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, shape []int, opts Options) string {
	t.Helper()
	strides := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		strides[k] = acc
		acc *= shape[k]
	}
	var sb strings.Builder
	err := Format(&sb, shape, func(idx []int) string {
		flat := 0
		for k, i := range idx {
			flat += i * strides[k]
		}
		return Value(flat, opts)
	}, opts)
	require.NoError(t, err)
	return sb.String()
}

func TestFormat(t *testing.T) {
	opts := DefaultOptions()
	tests := []struct {
		name  string
		shape []int
		want  string
	}{
		{"scalar", []int{}, "0"},
		{"vector", []int{3}, "[ 0 1 2]"},
		{"matrix", []int{2, 3}, "[[ 0 1 2]\n [ 3 4 5]]"},
		{"wide column", []int{3, 4}, "[[  0  1  2  3]\n [  4  5  6  7]\n [  8  9 10 11]]"},
		{"cube", []int{2, 1, 2}, "[[[ 0 1]]\n\n [[ 2 3]]]"},
		{"empty", []int{0}, "[]"},
		{"truncated", []int{10}, "[ 0 1 2 ... 7 8 9]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.shape, opts))
		})
	}
}

func TestFormat_TruncatedRows(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxPrint = 2
	assert.Equal(t, "[[  0 ... 19]\n ...\n [ 80 ... 99]]", render(t, []int{5, 20}, opts))
}

func TestFormat_Unlimited(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxPrint = 0
	assert.Equal(t, "[ 0 1 2 3 4 5 6 7]", render(t, []int{8}, opts))
}

func TestValue(t *testing.T) {
	assert.Equal(t, "1.5", Value(1.5, DefaultOptions()))
	assert.Equal(t, "1.500", Value(1.5, Options{Precision: 3, Verb: 'f'}))
	assert.Equal(t, "true", Value(true, Options{Precision: -1}))
	assert.Equal(t, fmt.Sprintf("%g", 2.0), Value(2.0, Options{Verb: 'g', Precision: -1}))
}
