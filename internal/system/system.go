// Package system holds the host-facing helpers: resource limits,
// input discovery, hardware encoder detection and the run stats
// report.
package system

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// InitResourceLimits raises the open file limit. A render keeps the
// source video, the frame pipe, the audio artifact and log files open
// at once, the stock limit on macOS is too low for long matches.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Failed to read open file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Failed to raise open file limit: %v", err)
	} else {
		fmt.Printf("[*] Open file limit raised to %d\n", rLimit.Cur)
	}
}

var videoExtensions = []string{".mp4", ".mov", ".mkv", ".avi", ".webm"}

// FindLatestVideo returns the most recently modified video file in a
// directory, so the CLI can default to the freshest recording.
func FindLatestVideo(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExtension(f.Name(), videoExtensions) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no video files found in %s", dir)
	}
	return latestFile, nil
}

func hasExtension(name string, extensions []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// GetBestH264Encoder probes ffmpeg for the fastest available H.264
// encoder: VideoToolbox on macOS, NVENC on NVIDIA, libx264 otherwise.
func GetBestH264Encoder() string {
	encoders := []string{"h264_videotoolbox", "h264_nvenc"}

	out, err := exec.Command("ffmpeg", "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}
	for _, enc := range encoders {
		if strings.Contains(string(out), enc) {
			return enc
		}
	}
	return "libx264"
}

// Stats is a snapshot of host and process load taken after a render.
type Stats struct {
	CPUPercent    float64
	MemoryUsedMB  uint64
	MemoryTotalMB uint64
	ProcessRSSMB  uint64
	NumGoroutine  int
	Elapsed       time.Duration
}

// Snapshot collects run statistics. Sampling errors degrade to zero
// fields, a failed stats read never fails a finished render.
func Snapshot(started time.Time) Stats {
	stats := Stats{
		NumGoroutine: runtime.NumGoroutine(),
		Elapsed:      time.Since(started),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryUsedMB = vm.Used / 1024 / 1024
		stats.MemoryTotalMB = vm.Total / 1024 / 1024
	}
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := proc.MemoryInfo(); err == nil {
			stats.ProcessRSSMB = info.RSS / 1024 / 1024
		}
	}

	return stats
}

// Report prints the snapshot in the render log format.
func (s Stats) Report() {
	fmt.Printf("[*] Render finished in %s\n", s.Elapsed.Round(time.Millisecond))
	fmt.Printf("[*] CPU: %.1f%%, memory: %d/%d MB, process RSS: %d MB, goroutines: %d\n",
		s.CPUPercent, s.MemoryUsedMB, s.MemoryTotalMB, s.ProcessRSSMB, s.NumGoroutine)
}
