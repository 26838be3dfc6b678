package scrcpy

import (
	"strconv"
	"strings"

	"github.com/halvard/mirrormenu/internal/preset"
)

// argBuilder accumulates an argv slice, omitting zero-value fields.
type argBuilder struct {
	args []string
}

// withString adds flag and val when val is non-empty after trimming.
func (b *argBuilder) withString(flag, val string) *argBuilder {
	if strings.TrimSpace(val) != "" {
		b.args = append(b.args, flag, val)
	}
	return b
}

// withPositiveInt adds flag and val when val parses to an integer > 0.
// Anything else, including unparsable text, is treated as unset.
func (b *argBuilder) withPositiveInt(flag, val string) *argBuilder {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil || n <= 0 {
		return b
	}
	b.args = append(b.args, flag, strconv.Itoa(n))
	return b
}

// BuildArgs maps a preset to the mirroring process argument list. serial is
// always emitted first; recordPath, when non-empty, is appended last.
func BuildArgs(p preset.Preset, serial, recordPath string) []string {
	b := &argBuilder{args: []string{"--serial", serial}}

	b.withString("--max-size", p.Resolution).
		withString("--video-codec", p.VideoCodec).
		withString("--video-bit-rate", p.VideoBitrate).
		withPositiveInt("--video-buffer", p.VideoBuffer).
		withString("--audio-codec", p.AudioCodec).
		withString("--audio-bit-rate", p.AudioBitrate).
		withPositiveInt("--audio-buffer", p.AudioBuffer)

	// Raw pass-through tokens keep their order and go after all
	// structured flags.
	b.args = append(b.args, strings.Fields(p.OtherOptions)...)

	if recordPath != "" {
		b.args = append(b.args, "--record", recordPath)
	}
	return b.args
}

// DescribeExit translates the mirroring process exit code for logging.
// No code changes control flow; the meaning is informational only.
func DescribeExit(code int) string {
	switch code {
	case 0:
		return "clean exit"
	case 1:
		return "start failure"
	case 2:
		return "device disconnected"
	default:
		return "unexpected exit"
	}
}
