// Package device describes the backend a tensor is bound to: the kind of
// backend, how many threads its kernels may use and the element order used
// when a layout is not given explicitly.
package device

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"github.com/born-ml/strided/internal/errs"
	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/parallel"
)

// EnvNumThreads overrides the thread count picked by DefaultConfig.
const EnvNumThreads = "STRIDED_NUM_THREADS"

// Kind identifies a backend implementation.
type Kind int

// Supported backends.
const (
	CPU       Kind = iota // multi-threaded CPU kernels
	CPUSerial             // CPU kernels on the calling goroutine
)

// String returns a human-readable backend name.
func (k Kind) String() string {
	switch k {
	case CPU:
		return "CPU"
	case CPUSerial:
		return "CPUSerial"
	default:
		return "Unknown"
	}
}

// Config configures a Device.
type Config struct {
	Kind       Kind
	NumThreads int // 0 uses every hardware thread.
	Order      layout.Order
}

// DefaultConfig returns a parallel CPU row-major config. The thread count is
// taken from STRIDED_NUM_THREADS when it holds a non-negative integer.
func DefaultConfig() Config {
	cfg := Config{Kind: CPU, Order: layout.RowMajor}
	if v, ok := os.LookupEnv(EnvNumThreads); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			slog.Warn("ignoring invalid thread count", "env", EnvNumThreads, "value", v)
		} else {
			cfg.NumThreads = n
		}
	}
	return cfg
}

// Device is the capability token arithmetic and storage are bound to.
//
// Device is a small value. Tensors keep the copy they were created with, so
// changing a Device with SetDefaultOrder or SetNumThreads affects only
// tensors created from it afterwards.
type Device struct {
	kind       Kind
	numThreads int
	order      layout.Order
}

// New creates a device from cfg. A negative thread count is treated as 0.
func New(cfg Config) Device {
	d := Device{kind: cfg.Kind, numThreads: max(cfg.NumThreads, 0), order: cfg.Order}
	slog.Debug("device created", "device", d)
	return d
}

// NewCPU creates a parallel CPU device with the given thread count.
func NewCPU(numThreads int) Device {
	return New(Config{Kind: CPU, NumThreads: numThreads, Order: layout.RowMajor})
}

// NewSerial creates a CPU device whose kernels never spawn goroutines.
func NewSerial() Device {
	return New(Config{Kind: CPUSerial, NumThreads: 1, Order: layout.RowMajor})
}

// Default creates a device from DefaultConfig.
func Default() Device {
	return New(DefaultConfig())
}

// Kind returns the backend kind.
func (d Device) Kind() Kind { return d.kind }

// NumThreads returns the configured thread count (0 means all).
func (d Device) NumThreads() int { return d.numThreads }

// DefaultOrder returns the element order used when a layout is unspecified.
func (d Device) DefaultOrder() layout.Order { return d.order }

// SetDefaultOrder changes the default element order.
func (d *Device) SetDefaultOrder(o layout.Order) { d.order = o }

// SetNumThreads changes the thread count. A negative count is treated as 0.
func (d *Device) SetNumThreads(n int) { d.numThreads = max(n, 0) }

// Config returns the configuration the device would be rebuilt from.
func (d Device) Config() Config {
	return Config{Kind: d.kind, NumThreads: d.numThreads, Order: d.order}
}

// SameDevice reports whether both devices have equal kind and configuration.
func (d Device) SameDevice(other Device) bool {
	return d == other
}

// Check returns a DeviceMismatch error unless every device equals d.
func (d Device) Check(others ...Device) error {
	for _, o := range others {
		if !d.SameDevice(o) {
			return errs.DeviceMismatch(d, o)
		}
	}
	return nil
}

// Threads resolves the configured thread count to the number of workers.
func (d Device) Threads() int {
	if d.kind == CPUSerial {
		return 1
	}
	if d.numThreads == 0 {
		return runtime.NumCPU()
	}
	return d.numThreads
}

// ParallelConfig returns the worker configuration kernels run with.
func (d Device) ParallelConfig() parallel.Config {
	return parallel.WithWorkers(d.Threads())
}

func (d Device) String() string {
	return fmt.Sprintf("%s(threads=%d, order=%s)", d.kind, d.numThreads, d.order)
}

// LogValue implements slog.LogValuer.
func (d Device) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", d.kind.String()),
		slog.Int("threads", d.numThreads),
		slog.String("order", d.order.String()),
	)
}
