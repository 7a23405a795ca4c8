package system

import (
	"fmt"
	"os"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// InitResourceLimits raises the open file limit; the frame writer keeps one
// file open per worker.
func InitResourceLimits(logger zerolog.Logger, want uint64) {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		logger.Warn().Err(err).Msg("could not read open file limit")
		return
	}
	if rLimit.Cur >= want {
		return
	}

	rLimit.Cur = want
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		logger.Warn().Err(err).Msg("could not raise open file limit")
		return
	}
	logger.Debug().Uint64("limit", uint64(rLimit.Cur)).Msg("open file limit raised")
}

// Stats is a snapshot of this process after a render batch
type Stats struct {
	Elapsed     time.Duration
	Frames      int
	RSS         uint64
	CPUPercent  float64
	Threads     int32
	Goroutines  int
	SystemTotal uint64
	SystemUsed  float64
}

// FramesPerSecond is the render throughput of the batch
func (s Stats) FramesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// Collect samples the current process
func Collect(start time.Time, frames int) (Stats, error) {
	s := Stats{
		Elapsed:    time.Since(start),
		Frames:     frames,
		Goroutines: runtime.NumGoroutine(),
	}

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return s, fmt.Errorf("open process: %w", err)
	}
	mi, err := p.MemoryInfo()
	if err != nil {
		return s, fmt.Errorf("memory info: %w", err)
	}
	s.RSS = mi.RSS
	if cpu, err := p.CPUPercent(); err == nil {
		s.CPUPercent = cpu
	}
	if n, err := p.NumThreads(); err == nil {
		s.Threads = n
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		s.SystemTotal = vm.Total
		s.SystemUsed = vm.UsedPercent
	}
	return s, nil
}

func (s Stats) Log(logger zerolog.Logger) {
	logger.Info().
		Dur("elapsed", s.Elapsed).
		Int("frames", s.Frames).
		Str("fps", fmt.Sprintf("%.1f", s.FramesPerSecond())).
		Str("rss", FormatBytes(s.RSS)).
		Str("cpu", fmt.Sprintf("%.1f%%", s.CPUPercent)).
		Int32("threads", s.Threads).
		Int("goroutines", s.Goroutines).
		Str("system_memory", fmt.Sprintf("%s (%.0f%% used)", FormatBytes(s.SystemTotal), s.SystemUsed)).
		Msg("render stats")
}

// FormatBytes renders a byte count with a binary unit
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
