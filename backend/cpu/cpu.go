// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/born-ml/strided/internal/device"
)

// Device identifies the CPU backend and its configuration.
type Device = device.Device

// Config holds device settings.
type Config = device.Config

// Kind distinguishes the parallel and the serial CPU backends.
type Kind = device.Kind

// Backend kinds.
const (
	CPU       = device.CPU
	CPUSerial = device.CPUSerial
)

// EnvNumThreads names the environment variable read by DefaultConfig.
const EnvNumThreads = device.EnvNumThreads

// New creates a device from cfg.
func New(cfg Config) Device {
	return device.New(cfg)
}

// NewCPU creates a row-major device running kernels on n workers.
// n == 0 uses every hardware thread.
//
// Example:
//
//	dev := cpu.NewCPU(4)
//	dev.SetDefaultOrder(tensor.ColMajor)
func NewCPU(n int) Device {
	return device.NewCPU(n)
}

// NewSerial creates a row-major device that never spawns workers.
func NewSerial() Device {
	return device.NewSerial()
}

// DefaultConfig returns the configuration of Default.
func DefaultConfig() Config {
	return device.DefaultConfig()
}

// Default creates a device from DefaultConfig.
func Default() Device {
	return device.Default()
}
