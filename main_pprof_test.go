//go:build !no_pprof

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfilerWritesFiles(t *testing.T) {
	dir := t.TempDir()
	p := &profiler{
		cpuFile: filepath.Join(dir, "cpu.prof"),
		memFile: filepath.Join(dir, "mem.prof"),
	}
	if ret := p.start(); ret != 0 {
		t.Fatalf("start returned %d", ret)
	}
	if ret := p.stop(); ret != 0 {
		t.Fatalf("stop returned %d", ret)
	}
	for _, f := range []string{p.cpuFile, p.memFile} {
		st, err := os.Stat(f)
		if err != nil {
			t.Fatalf("missing profile: %v", err)
		}
		if st.Size() == 0 {
			t.Errorf("profile %s is empty", f)
		}
	}
	if ret := p.stop(); ret != 0 {
		t.Errorf("second stop returned %d", ret)
	}
}

func TestProfilerDisabled(t *testing.T) {
	p := &profiler{}
	if p.start() != 0 || p.stop() != 0 {
		t.Errorf("no profile requested should be a no-op")
	}
}
