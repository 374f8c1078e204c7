// Package clipper extracts time intervals from match footage, for
// pulling goal sequences and short test clips out of full recordings.
package clipper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orhanbalci/scorecast/internal/media"
	"github.com/orhanbalci/scorecast/internal/timeline"
)

// Interval is one requested cut. Name is optional, unnamed intervals
// get a generated file name from their times.
type Interval struct {
	Start float64
	End   float64
	Name  string
}

// Clipper cuts intervals out of a source video through an encoder.
type Clipper struct {
	Encoder     media.Encoder
	EncoderName string
	Quality     int
}

// New builds a clipper on the real ffmpeg encoder.
func New(encoderName string, quality int) *Clipper {
	return &Clipper{
		Encoder:     &media.FFmpegEncoder{},
		EncoderName: encoderName,
		Quality:     quality,
	}
}

// Clip extracts [start, end) into output, probing the source to
// validate the window. An empty output derives the clip name from the
// input path and the interval times. An end past the video duration is
// clamped with a warning, a start past it is an error.
func (c *Clipper) Clip(ctx context.Context, input string, start, end float64, output string) (string, error) {
	if start >= end {
		return "", fmt.Errorf("start time must be before end time: %s >= %s",
			timeline.FormatTime(start), timeline.FormatTime(end))
	}

	fmt.Printf("[*] Loading video: %s\n", input)
	info, err := media.Probe(input)
	if err != nil {
		return "", err
	}

	if start >= info.Duration {
		return "", fmt.Errorf("start time (%s) is beyond video duration (%s)",
			timeline.FormatTime(start), timeline.FormatTime(info.Duration))
	}
	if end > info.Duration {
		fmt.Printf("[!] End time (%s) is beyond video duration (%s), clipping to end of video\n",
			timeline.FormatTime(end), timeline.FormatTime(info.Duration))
		end = info.Duration
	}

	if output == "" {
		output = AutoClipName(input, start, end)
	}

	fmt.Printf("[>] Extracting clip %s to %s (%s)\n",
		timeline.FormatTime(start), timeline.FormatTime(end), timeline.FormatTime(end-start))

	err = c.Encoder.ClipSegment(ctx, media.ClipParams{
		Input:       input,
		Output:      output,
		Start:       start,
		End:         end,
		EncoderName: c.EncoderName,
		Quality:     c.Quality,
	})
	if err != nil {
		return "", err
	}

	fmt.Printf("[+++] Clip created: %s\n", output)
	return output, nil
}

// ClipIntervals extracts several intervals in one pass. Output files
// land in outputDir when set, otherwise next to the input.
func (c *Clipper) ClipIntervals(ctx context.Context, input string, intervals []Interval, outputDir string) ([]string, error) {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output dir: %w", err)
		}
	}

	paths := make([]string, 0, len(intervals))
	for i, iv := range intervals {
		output := IntervalName(input, outputDir, i, iv)
		fmt.Printf("[*] Clip %d/%d\n", i+1, len(intervals))
		path, err := c.Clip(ctx, input, iv.Start, iv.End, output)
		if err != nil {
			return paths, fmt.Errorf("clip %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// AutoClipName derives an output path from the input and interval:
// "<base>_clip_<start>_to_<end>.mp4" with ":" replaced by "-" so the
// name stays filesystem safe.
func AutoClipName(input string, start, end float64) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s_clip_%s_to_%s.mp4", base, safeTime(start), safeTime(end))
}

// IntervalName resolves the output path for one interval of a batch.
// Named intervals use their name, unnamed ones get an indexed
// generated name.
func IntervalName(input, outputDir string, index int, iv Interval) string {
	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	if iv.Name != "" {
		return filepath.Join(dir, iv.Name+".mp4")
	}

	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(dir, fmt.Sprintf("%s_clip_%d_%s_to_%s.mp4",
		base, index+1, safeTime(iv.Start), safeTime(iv.End)))
}

func safeTime(seconds float64) string {
	return strings.ReplaceAll(timeline.FormatTime(seconds), ":", "-")
}
