//go:build !no_pprof

package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"fortio.org/log"
)

// profiler writes the cpu and heap profiles of one risp run.
type profiler struct {
	cpuFile string
	memFile string
	cpu     *os.File
}

var prof = &profiler{}

func init() {
	flag.StringVar(&prof.cpuFile, "profile-cpu", "", "write cpu profile to `file`")
	flag.StringVar(&prof.memFile, "profile-mem", "", "write memory profile to `file`")
	startProfiling = prof.start
	stopProfiling = prof.stop
}

func (p *profiler) start() int {
	if p.cpuFile == "" {
		return 0
	}
	f, err := os.Create(p.cpuFile)
	if err != nil {
		return log.FErrf("can't open file for cpu profile: %v", err)
	}
	if err = pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return log.FErrf("can't start cpu profile: %v", err)
	}
	p.cpu = f
	log.Infof("Writing cpu profile to %s", p.cpuFile)
	return 0
}

// stop ends the cpu profile started by start, if any, and writes the heap
// profile when requested. Safe to call without start.
func (p *profiler) stop() int {
	if p.cpu != nil {
		pprof.StopCPUProfile()
		err := p.cpu.Close()
		p.cpu = nil
		if err != nil {
			return log.FErrf("can't close cpu profile %s: %v", p.cpuFile, err)
		}
	}
	if p.memFile == "" {
		return 0
	}
	f, err := os.Create(p.memFile)
	if err != nil {
		return log.FErrf("can't open file for mem profile: %v", err)
	}
	defer f.Close()
	if err = pprof.WriteHeapProfile(f); err != nil {
		return log.FErrf("can't write mem profile: %v", err)
	}
	log.Infof("Wrote memory profile to %s", p.memFile)
	return 0
}
