// Package sysmon samples the host the benchmark runs on, for the details
// header printed before the strategies execute.
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of the host.
type Stats struct {
	CPUModel     string
	LogicalCPUs  int
	PhysicalCPUs int
	GOMAXPROCS   int
	CPUPercent   float64 // 0.0 .. 100.0
	MemPercent   float64 // 0.0 .. 100.0
	MemTotal     uint64
}

// Sample collects a single host snapshot. CPU uses interval=0 (delta since
// last call). Fields that cannot be read are left at their zero value, except
// the CPU counts which fall back to the Go runtime's view.
func Sample() Stats {
	s := Stats{GOMAXPROCS: runtime.GOMAXPROCS(0)}

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		s.CPUModel = infos[0].ModelName
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		s.LogicalCPUs = n
	} else {
		s.LogicalCPUs = runtime.NumCPU()
	}
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		s.PhysicalCPUs = n
	} else {
		s.PhysicalCPUs = s.LogicalCPUs
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
	}
	return s
}
