package device

import (
	"testing"

	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EnvNumThreads, "")
	cfg := DefaultConfig()
	assert.Equal(t, CPU, cfg.Kind)
	assert.Equal(t, 0, cfg.NumThreads)
	assert.Equal(t, layout.RowMajor, cfg.Order)
}

func TestDefaultConfig_Env(t *testing.T) {
	t.Setenv(EnvNumThreads, "3")
	assert.Equal(t, 3, DefaultConfig().NumThreads)

	t.Setenv(EnvNumThreads, "lots")
	assert.Equal(t, 0, DefaultConfig().NumThreads)

	t.Setenv(EnvNumThreads, "-2")
	assert.Equal(t, 0, DefaultConfig().NumThreads)
}

func TestSameDevice(t *testing.T) {
	a := NewCPU(4)
	b := NewCPU(4)
	assert.True(t, a.SameDevice(b))
	assert.NoError(t, a.Check(b))

	c := NewCPU(4)
	c.SetDefaultOrder(layout.ColMajor)
	assert.False(t, a.SameDevice(c))

	err := a.Check(b, c)
	require.ErrorIs(t, err, errs.ErrDeviceMismatch)
	assert.Contains(t, err.Error(), "order=ColMajor")

	assert.False(t, NewCPU(2).SameDevice(NewCPU(3)))
	assert.False(t, NewCPU(1).SameDevice(NewSerial()))
}

func TestCopiesAreIndependent(t *testing.T) {
	d := NewCPU(0)
	snapshot := d
	d.SetDefaultOrder(layout.ColMajor)
	d.SetNumThreads(-5)

	assert.Equal(t, layout.RowMajor, snapshot.DefaultOrder())
	assert.Equal(t, layout.ColMajor, d.DefaultOrder())
	assert.Equal(t, 0, d.NumThreads())
}

func TestParallelConfig(t *testing.T) {
	assert.True(t, NewSerial().ParallelConfig().Serial())
	assert.True(t, NewCPU(1).ParallelConfig().Serial())

	cfg := NewCPU(4).ParallelConfig()
	assert.False(t, cfg.Serial())
	assert.Equal(t, 4, cfg.NumWorkers)

	assert.Positive(t, NewCPU(0).Threads())
}

func TestString(t *testing.T) {
	d := New(Config{Kind: CPU, NumThreads: 2, Order: layout.ColMajor})
	assert.Equal(t, "CPU(threads=2, order=ColMajor)", d.String())
	assert.Equal(t, d, New(d.Config()))
}
