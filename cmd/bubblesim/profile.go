package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"time"
)

// profiler writes a CPU profile and an execution trace for one simulation run
type profiler struct {
	dir   string
	files []*os.File
}

// startProfiler begins capturing into dir. The returned profiler must be stopped.
func startProfiler(dir string) (*profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile dir: %w", err)
	}
	p := &profiler{dir: dir}
	baseName := "bubblesim-" + time.Now().Format("20060102-150405")

	cpu, err := os.Create(filepath.Join(dir, baseName+".cpu.prof"))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	p.files = append(p.files, cpu)
	if err := pprof.StartCPUProfile(cpu); err != nil {
		p.close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}

	tr, err := os.Create(filepath.Join(dir, baseName+".trace"))
	if err != nil {
		pprof.StopCPUProfile()
		p.close()
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	p.files = append(p.files, tr)
	if err := trace.Start(tr); err != nil {
		pprof.StopCPUProfile()
		p.close()
		return nil, fmt.Errorf("failed to start trace: %w", err)
	}
	return p, nil
}

// stop ends both captures and returns the written file names
func (p *profiler) stop() []string {
	trace.Stop()
	pprof.StopCPUProfile()
	names := make([]string, 0, len(p.files))
	for _, f := range p.files {
		names = append(names, f.Name())
	}
	p.close()
	return names
}

func (p *profiler) close() {
	for _, f := range p.files {
		f.Close()
	}
}
