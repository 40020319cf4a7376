package system

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/ivlev/animcore/internal/logger"
)

// WorkerCount returns the number of logical CPUs, which is the default
// sampler parallelism.
func WorkerCount(ctx context.Context) int {
	n, err := cpu.CountsWithContext(ctx, true)
	if err != nil || n <= 0 {
		logger.Logger().Debug("cpu count unavailable, using runtime", "err", err)
		return runtime.NumCPU()
	}
	return n
}

// HostSummary describes the machine for performance reports. Missing
// information is left out rather than reported as an error.
func HostSummary(ctx context.Context) string {
	parts := []string{runtime.GOOS + "/" + runtime.GOARCH}
	if infos, err := cpu.InfoWithContext(ctx); err == nil && len(infos) > 0 && infos[0].ModelName != "" {
		parts = append(parts, strings.TrimSpace(infos[0].ModelName))
	}
	parts = append(parts, fmt.Sprintf("%d threads", WorkerCount(ctx)))
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm.Total > 0 {
		parts = append(parts, fmt.Sprintf("%.1f GiB RAM", float64(vm.Total)/(1<<30)))
	}
	return strings.Join(parts, " | ")
}

// FindLatest returns the most recently modified file in dir whose
// extension is one of exts (compared case-insensitively, with the dot).
func FindLatest(dir string, exts ...string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() || !hasExt(f.Name(), exts) {
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
		return "", fmt.Errorf("no %s files in %s", strings.Join(exts, "/"), dir)
	}

	return latestFile, nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
