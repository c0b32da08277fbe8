package metrics

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/tracreed/ebina/common/log"
)

// System is a snapshot of process and host resource usage.
type System struct {
	Alloc      uint64
	Sys        uint64
	TotalAlloc uint64
	Goroutines int

	HostMemUsed    uint64
	HostMemTotal   uint64
	HostMemPercent float64
	// CPU is per-core usage since the previous call.
	CPU []float64
}

// SystemStats reads the current resource usage.
// Host statistics are left empty if they can't be read.
func SystemStats() System {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	s := System{
		Alloc:      stats.Alloc,
		Sys:        stats.Sys,
		TotalAlloc: stats.TotalAlloc,
		Goroutines: runtime.NumGoroutine(),
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Errorf("Error getting system memory: %v", err)
	} else {
		s.HostMemUsed = vm.Used
		s.HostMemTotal = vm.Total
		s.HostMemPercent = vm.UsedPercent
	}

	s.CPU, err = cpu.Percent(0, true)
	if err != nil {
		log.Errorf("Error getting cpu info: %v", err)
	}
	return s
}
