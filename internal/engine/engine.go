// Package engine orchestrates a render: probe the input, build the
// layer schedule, composite frames in parallel and stream them into
// the encoder, then mux the original audio back in.
package engine

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orhanbalci/scorecast/internal/config"
	"github.com/orhanbalci/scorecast/internal/media"
	"github.com/orhanbalci/scorecast/internal/overlay"
	"github.com/orhanbalci/scorecast/internal/system"
	"github.com/orhanbalci/scorecast/internal/timeline"
)

// Project is one overlay render run.
type Project struct {
	Config  *config.Config
	Encoder media.Encoder
	tempDir string
}

func NewProject(cfg *config.Config) *Project {
	return &Project{
		Config:  cfg,
		Encoder: &media.FFmpegEncoder{},
	}
}

// Run renders the overlay video end to end.
func (p *Project) Run(ctx context.Context) error {
	started := time.Now()

	match, err := timeline.ReadMatch(p.Config.MatchPath)
	if err != nil {
		return err
	}

	fmt.Printf("[*] Probing video: %s\n", p.Config.InputPath)
	info, err := media.Probe(p.Config.InputPath)
	if err != nil {
		return err
	}

	params, err := p.resolveWindow(info)
	if err != nil {
		return err
	}

	fmt.Println("--- [PROJECT: OVERLAY ENGINE] ---")
	fmt.Printf("[*] Input: %s | %dx%d @ %d FPS\n", p.Config.InputPath, params.Width, params.Height, params.FPS)
	fmt.Printf("[*] Window: %s to %s | %s vs %s\n",
		timeline.FormatTime(params.Start), timeline.FormatTime(params.End),
		match.Team1.Name, match.Team2.Name)
	fmt.Println("---------------------------------")

	layers, err := BuildLayers(match, p.Config, params)
	if err != nil {
		return err
	}
	fmt.Printf("[*] Scheduled %d overlay layers\n", len(layers))

	p.tempDir, err = os.MkdirTemp("", "scorecast_")
	if err != nil {
		return err
	}
	defer os.RemoveAll(p.tempDir)

	// Without audio the overlay encode writes the final file directly,
	// otherwise it goes through the temp dir and a mux pass.
	videoOut := p.Config.Output
	if info.HasAudio {
		videoOut = filepath.Join(p.tempDir, "video.mp4")
	}

	pipe, err := p.Encoder.OverlayStream(ctx, media.OverlayParams{
		Input:       p.Config.InputPath,
		Output:      videoOut,
		Start:       params.Start,
		End:         params.End,
		Width:       params.Width,
		Height:      params.Height,
		FPS:         params.FPS,
		EncoderName: p.Config.VideoEncoder,
		Quality:     p.Config.Quality,
	})
	if err != nil {
		return err
	}

	if err := p.renderFrames(ctx, pipe, layers, params); err != nil {
		pipe.Abort()
		return err
	}
	if err := pipe.Close(); err != nil {
		return err
	}

	if info.HasAudio {
		audioPath := filepath.Join(p.tempDir, "temp-audio.m4a")
		fmt.Println("[*] Extracting audio track...")
		if err := p.Encoder.ExtractAudio(ctx, p.Config.InputPath, params.Start, params.End, audioPath); err != nil {
			return err
		}
		fmt.Println("[*] Muxing audio into final video...")
		if err := p.Encoder.Mux(ctx, videoOut, audioPath, p.Config.Output); err != nil {
			return err
		}
		os.Remove(audioPath)
	}

	fmt.Printf("[+++] Done! Video saved: %s\n", p.Config.Output)

	if p.Config.ShowStats {
		stats := system.Snapshot(started)
		stats.Report()
		p.appendBenchmark(stats, params)
	}

	return nil
}

// resolveWindow validates the requested render window against the
// probed duration. An end past the video is clamped with a warning, a
// start past it is an error.
func (p *Project) resolveWindow(info *media.VideoInfo) (config.RenderParams, error) {
	start := p.Config.Start
	end := p.Config.End
	if end <= 0 {
		end = info.Duration
	}

	if start < 0 {
		return config.RenderParams{}, fmt.Errorf("start time cannot be negative")
	}
	if start >= info.Duration {
		return config.RenderParams{}, fmt.Errorf("start time (%s) is beyond video duration (%s)",
			timeline.FormatTime(start), timeline.FormatTime(info.Duration))
	}
	if end > info.Duration {
		fmt.Printf("[!] End time (%s) is beyond video duration (%s), clamping\n",
			timeline.FormatTime(end), timeline.FormatTime(info.Duration))
		end = info.Duration
	}
	if start >= end {
		return config.RenderParams{}, fmt.Errorf("start time must be before end time")
	}

	fps := int(info.FPS + 0.5)
	if fps < 1 {
		fps = 25
	}

	return config.RenderParams{
		Width:    info.Width,
		Height:   info.Height,
		FPS:      fps,
		Duration: info.Duration,
		Start:    start,
		End:      end,
	}, nil
}

// renderFrames composites overlay frames in parallel and streams them
// to the encoder in order. Worker w owns frames w, w+n, w+2n... and
// its own hand-off channel, so the writer can drain channels round
// robin without reordering.
func (p *Project) renderFrames(ctx context.Context, pipe *media.OverlayPipe, layers []overlay.Layer, params config.RenderParams) error {
	frameCount := int((params.End-params.Start)*float64(params.FPS) + 0.5)
	if frameCount <= 0 {
		return fmt.Errorf("render window contains no frames")
	}

	workers := p.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > frameCount {
		workers = frameCount
	}

	rect := image.Rect(0, 0, params.Width, params.Height)
	pool := newFramePool()

	hand := make([]chan *image.RGBA, workers)
	for i := range hand {
		hand[i] = make(chan *image.RGBA, 2)
	}

	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			defer close(hand[w])
			for i := w; i < frameCount; i += workers {
				canvas := pool.Get(rect)
				t := params.Start + float64(i)/float64(params.FPS)
				overlay.RenderFrame(canvas, layers, t)
				select {
				case hand[w] <- canvas:
				case <-ctx.Done():
					pool.Put(canvas)
					return ctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		progressStep := params.FPS * 30
		for i := 0; i < frameCount; i++ {
			canvas, ok := <-hand[i%workers]
			if !ok {
				return ctx.Err()
			}
			if err := pipe.WriteFrame(canvas); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			pool.Put(canvas)
			if (i+1)%progressStep == 0 || i+1 == frameCount {
				fmt.Printf("[>] Frames: %d/%d\n", i+1, frameCount)
			}
		}
		return nil
	})

	return g.Wait()
}

func (p *Project) appendBenchmark(stats system.Stats, params config.RenderParams) {
	entry := fmt.Sprintf("[%s] Build: %s | Input: %s | Window: %.1fs | Total: %.2fs | CPU: %.1f%% | RSS: %d MB\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(p.Config.InputPath),
		params.End-params.Start,
		stats.Elapsed.Seconds(),
		stats.CPUPercent,
		stats.ProcessRSSMB,
	)

	f, err := os.OpenFile("benchmark.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("[!] Failed to write benchmark.log: %v\n", err)
		return
	}
	f.WriteString(entry)
	f.Close()
}
