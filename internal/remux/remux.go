// Package remux repackages a finished recording into an MP4 container. Video
// is stream-copied; audio is re-encoded to AAC because the capture codec is
// not always MP4-compatible. The original file is never touched: on failure
// it is simply left in place and the failure reported.
package remux

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/halvard/mirrormenu/internal/logging"
)

// DefaultBinary is the remux executable resolved on PATH.
const DefaultBinary = "ffmpeg"

// Remuxer converts recordings via the external tool.
type Remuxer struct {
	bin string
}

// New returns a Remuxer for the default binary.
func New() *Remuxer {
	return &Remuxer{bin: DefaultBinary}
}

// buildArgs returns the fixed conversion flag set: overwrite the target,
// copy the video stream, re-encode audio to AAC at a fixed bitrate, and
// relocate the index for streaming playback.
func buildArgs(src, dst string) []string {
	return []string{
		"-y",
		"-i", src,
		"-c:v", "copy",
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		dst,
	}
}

// OutputPath returns the MP4 path the conversion of src would produce. A
// source already named .mp4 gets a ".remux.mp4" sibling: the conversion must
// never target its own input.
func OutputPath(src string) string {
	dst := src + ".mp4"
	if i := strings.LastIndex(src, "."); i > 0 {
		dst = src[:i] + ".mp4"
	}
	if dst == src {
		dst = strings.TrimSuffix(src, ".mp4") + ".remux.mp4"
	}
	return dst
}

// Remux converts src and returns the resulting path. The source recording is
// preserved regardless of outcome; failures are not retried.
func (r *Remuxer) Remux(src string) (string, error) {
	if _, err := exec.LookPath(r.bin); err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", r.bin, err)
	}

	dst := OutputPath(src)
	out, err := exec.Command(r.bin, buildArgs(src, dst)...).CombinedOutput()
	if err != nil {
		// Drop a half-written target so only the valid original remains.
		if dst != src {
			os.Remove(dst)
		}
		logging.Warn("Remux failed",
			zap.String("source", src),
			zap.String("output", tail(string(out), 2000)),
			zap.Error(err),
		)
		return "", fmt.Errorf("remux of %s failed: %w", src, err)
	}

	logging.Info("Remux complete", zap.String("source", src), zap.String("result", dst))
	return dst, nil
}

func tail(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[len(s)-max:]
}
