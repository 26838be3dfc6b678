package scrcpy

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"go.uber.org/zap"

	"github.com/halvard/mirrormenu/internal/logging"
)

// DefaultBinary is the mirroring executable resolved on PATH.
const DefaultBinary = "scrcpy"

// Launcher starts the mirroring process.
type Launcher struct {
	bin string
}

// NewLauncher returns a launcher for the default binary.
func NewLauncher() *Launcher {
	return &Launcher{bin: DefaultBinary}
}

// CheckInstalled verifies the mirroring executable is resolvable. A missing
// executable is a fatal startup condition for the caller.
func CheckInstalled() error {
	if _, err := exec.LookPath(DefaultBinary); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", DefaultBinary, err)
	}
	return nil
}

// Run launches the process and blocks until it exits, returning the exit
// code. In streaming mode the child's output is drained line by line into
// the log; otherwise the child inherits the terminal. Once launched, the
// process is always awaited to completion.
func (l *Launcher) Run(args []string, streaming bool) (int, error) {
	if streaming {
		return l.runStreaming(args)
	}
	return l.runPassthrough(args)
}

func (l *Launcher) runPassthrough(args []string) (int, error) {
	cmd := exec.Command(l.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	return exitCode(err)
}

func (l *Launcher) runStreaming(args []string) (int, error) {
	cmd := exec.Command(l.bin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, fmt.Errorf("failed to open stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return -1, fmt.Errorf("failed to start %s: %w", l.bin, err)
	}

	// Each pipe is drained on its own goroutine so neither can stall the
	// other; lines stay atomic even if their interleaving is not.
	var wg sync.WaitGroup
	wg.Add(2)
	go drain(&wg, stdout, "stdout")
	go drain(&wg, stderr, "stderr")
	wg.Wait()

	return exitCode(cmd.Wait())
}

func drain(wg *sync.WaitGroup, r io.Reader, stream string) {
	defer wg.Done()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logging.Info("mirror output",
			zap.String("stream", stream),
			zap.String("line", scanner.Text()),
		)
	}
}

// exitCode extracts the child's exit code. A start failure (binary missing,
// not executable) is reported as an error with code -1.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
