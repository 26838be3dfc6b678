package scrcpy

import (
	"reflect"
	"testing"

	"github.com/halvard/mirrormenu/internal/preset"
)

func TestBuildArgsMinimalPreset(t *testing.T) {
	p := preset.Preset{Name: "basic", VideoCodec: "h264"}

	got := BuildArgs(p, "ABC123", "")
	want := []string{"--serial", "ABC123", "--video-codec", "h264"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildArgs() = %v, want %v", got, want)
	}
}

func TestBuildArgsFullPreset(t *testing.T) {
	p := preset.Preset{
		Name:         "full",
		Resolution:   "1920",
		VideoCodec:   "h265",
		VideoBitrate: "8M",
		VideoBuffer:  "50",
		AudioCodec:   "opus",
		AudioBitrate: "128K",
		AudioBuffer:  "120",
		OtherOptions: "--turn-screen-off --stay-awake",
	}

	got := BuildArgs(p, "XYZ", "")
	want := []string{
		"--serial", "XYZ",
		"--max-size", "1920",
		"--video-codec", "h265",
		"--video-bit-rate", "8M",
		"--video-buffer", "50",
		"--audio-codec", "opus",
		"--audio-bit-rate", "128K",
		"--audio-buffer", "120",
		"--turn-screen-off", "--stay-awake",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildArgs() = %v, want %v", got, want)
	}
}

func TestBuildArgsBufferFields(t *testing.T) {
	tests := []struct {
		name    string
		buffer  string
		emitted bool
	}{
		{"empty", "", false},
		{"zero", "0", false},
		{"negative", "-5", false},
		{"junk", "abc", false},
		{"positive", "40", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := preset.Preset{Name: "b", VideoBuffer: tt.buffer}
			got := BuildArgs(p, "S", "")
			has := false
			for _, a := range got {
				if a == "--video-buffer" {
					has = true
				}
			}
			if has != tt.emitted {
				t.Errorf("buffer %q: emitted = %v, want %v (args %v)", tt.buffer, has, tt.emitted, got)
			}
		})
	}
}

func TestBuildArgsRecordPathLast(t *testing.T) {
	p := preset.Preset{Name: "rec", VideoCodec: "h264", OtherOptions: "--no-audio"}

	got := BuildArgs(p, "S", "/tmp/out.mkv")
	n := len(got)
	if n < 2 || got[n-2] != "--record" || got[n-1] != "/tmp/out.mkv" {
		t.Errorf("record path must be the final argument pair, got %v", got)
	}
	// Extra options still precede the record flag.
	if got[n-3] != "--no-audio" {
		t.Errorf("free-form options should come just before --record, got %v", got)
	}
}

func TestDescribeExit(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "clean exit"},
		{1, "start failure"},
		{2, "device disconnected"},
		{42, "unexpected exit"},
	}
	for _, tt := range tests {
		if got := DescribeExit(tt.code); got != tt.want {
			t.Errorf("DescribeExit(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
