// main.go - CLI entry point: loads the ROM and CF images, wires the
// default pty/display/audio/timer backends to a Machine and Scheduler,
// and runs until the display backend signals quit.

package main

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	cpuTickPeriod     = 320 * time.Microsecond
	displayTickPeriod = time.Second / 60
)

type options struct {
	romPath string
	cfPath  string
	raw     bool
}

func parseArgs(args []string) (options, error) {
	var o options
	var positional []string
	for _, a := range args {
		if a == "-raw" {
			o.raw = true
			continue
		}
		positional = append(positional, a)
	}
	if len(positional) != 2 {
		return o, fmt.Errorf("usage: pac80emu [-raw] rom-file cf-image")
	}
	o.romPath, o.cfPath = positional[0], positional[1]
	return o, nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "pac80emu: "+format+"\n", args...)
	os.Exit(1)
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fatalf("%v", err)
	}

	if NewGuestCPU == nil {
		fatalf("no instruction-set interpreter linked into this build")
	}

	rom, err := os.ReadFile(opts.romPath)
	if err != nil {
		fatalf("read rom: %v", err)
	}
	if len(rom) != romSize {
		fatalf("rom %s is %d bytes, want %d", opts.romPath, len(rom), romSize)
	}

	cfFile, err := os.OpenFile(opts.cfPath, os.O_RDWR, 0)
	if err != nil {
		fatalf("open cf image: %v", err)
	}
	defer cfFile.Close()
	cfImage, err := mmapFile(cfFile)
	if err != nil {
		fatalf("mmap cf image: %v", err)
	}
	defer unmapFile(cfImage)

	psgKernel := NullPSG{}
	m := NewMachine(rom, cfImage, psgKernel)
	cpu := NewGuestCPU(m)
	sched := NewScheduler(m, cpu)

	audio, err := NewAudioHost(m.PSG)
	if err != nil {
		fatalf("open audio device: %v", err)
	}
	audio.Start()
	defer audio.Close()

	pty, err := NewPTYHost()
	if err != nil {
		fatalf("open pty: %v", err)
	}
	defer pty.Close()
	fmt.Println(pty.SlaveName())

	if opts.raw {
		if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
			prev, err := term.MakeRaw(fd)
			if err != nil {
				fatalf("set raw terminal mode: %v", err)
			}
			defer term.Restore(fd, prev)
		}
	}

	cpuTimer, err := NewTimerfdSource(cpuTickPeriod)
	if err != nil {
		fatalf("create cpu timer: %v", err)
	}
	defer cpuTimer.Close()

	displayTimer, err := NewTimerfdSource(displayTickPeriod)
	if err != nil {
		fatalf("create display timer: %v", err)
	}
	defer displayTimer.Close()

	display := NewDisplayHost("pac80emu")

	done := make(chan struct{})
	sched.Run(cpuTimer, displayTimer, pty, display, display, done)
}
