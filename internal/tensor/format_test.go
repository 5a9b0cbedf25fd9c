package tensor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	dev := cpu2()
	a := Arange(6, dev).MustIntoShape(2, 3)

	assert.Equal(t, "[[ 0 1 2]\n [ 3 4 5]]", a.String())
	assert.Equal(t, "[[ 0 3]\n [ 1 4]\n [ 2 5]]", fmt.Sprint(a.T()))
	assert.Equal(t, "[[   0   1   2]\n [   3   4   5]]", fmt.Sprintf("%3d", a))

	f := FromVec([]float64{0.5, 1.25}, dev)
	assert.Equal(t, "[ 0.50 1.25]", fmt.Sprintf("%.2f", f))

	b := FromVec([]bool{true, false}, dev)
	assert.Equal(t, "[  true false]", fmt.Sprintf("%t", b))

	s, err := Arange(24, dev).MustIntoShape(4, 3, 2).I(1, 2, 1).ToScalar()
	assert.NoError(t, err)
	assert.Equal(t, 11, s)
	assert.Equal(t, "11", Arange(24, dev).MustIntoShape(4, 3, 2).I(1, 2, 1).String())
}

func TestFormat_Truncates(t *testing.T) {
	a := Arange(10, cpu2())
	assert.Equal(t, "[ 0 1 2 ... 7 8 9]", a.String())
	assert.Equal(t, "[ 0 1 2 3 4 5 6 7 8 9]", fmt.Sprintf("%#v", a))
}

func TestFormat_Debug(t *testing.T) {
	a := Arange(6, cpu2()).MustIntoShape(2, 3)
	want := "[[ 0 1 2]\n [ 3 4 5]]\n" +
		"2-Dim (dyn), contiguous: Cc\nshape: [2, 3], stride: [3, 1], offset: 0"
	assert.Equal(t, want, fmt.Sprintf("%+v", a))
}

func TestFormat_BadVerb(t *testing.T) {
	a := Arange(2, cpu2())
	assert.Equal(t, "%!s(tensor.Tensor[int])", fmt.Sprintf("%s", a))
}
