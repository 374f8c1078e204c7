package media

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// VideoInfo is the probed shape of an input video.
type VideoInfo struct {
	Path     string
	Width    int
	Height   int
	Duration float64
	FPS      float64
	HasAudio bool
}

// Probe reads stream and container metadata through ffprobe.
func Probe(path string) (*VideoInfo, error) {
	cmd := exec.Command("ffprobe", "-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,r_frame_rate",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed for %s: %v, output: %s", path, err, string(out))
	}

	info := &VideoInfo{Path: path}
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok {
			continue
		}
		switch key {
		case "width":
			info.Width, _ = strconv.Atoi(value)
		case "height":
			info.Height, _ = strconv.Atoi(value)
		case "r_frame_rate":
			info.FPS = parseRate(value)
		case "duration":
			info.Duration, _ = strconv.ParseFloat(value, 64)
		}
	}

	if info.Width == 0 || info.Height == 0 || info.Duration == 0 {
		return nil, fmt.Errorf("ffprobe returned incomplete metadata for %s", path)
	}
	if info.FPS == 0 {
		info.FPS = 25
	}

	info.HasAudio = probeHasAudio(path)
	return info, nil
}

func probeHasAudio(path string) bool {
	cmd := exec.Command("ffprobe", "-v", "error",
		"-select_streams", "a:0",
		"-show_entries", "stream=codec_type",
		"-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	return err == nil && strings.Contains(string(out), "audio")
}

// parseRate converts ffprobe rational rates like "30000/1001" to a
// float frame rate.
func parseRate(value string) float64 {
	num, den, ok := strings.Cut(value, "/")
	if !ok {
		f, _ := strconv.ParseFloat(value, 64)
		return f
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}
