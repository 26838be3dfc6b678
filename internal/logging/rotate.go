package logging

import (
	"fmt"
	"os"
	"strings"
)

// Rotate trims the oldest trimPercent of lines from the file at path once its
// size exceeds maxKB kilobytes. A missing file is not an error. The trimmed
// content is written back atomically (temp file + rename).
func Rotate(path string, maxKB int, trimPercent int) error {
	if maxKB <= 0 {
		return nil
	}
	if trimPercent <= 0 || trimPercent >= 100 {
		trimPercent = 25
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() <= int64(maxKB)*1024 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	drop := len(lines) * trimPercent / 100
	if drop >= len(lines) {
		drop = len(lines) - 1
	}
	kept := strings.Join(lines[drop:], "\n")

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(kept), 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace log file: %w", err)
	}
	return nil
}
