package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"os/exec"
)

// Encoder abstracts the ffmpeg invocations the pipeline needs, so the
// engine stays testable without a media toolchain installed.
type Encoder interface {
	OverlayStream(ctx context.Context, params OverlayParams) (*OverlayPipe, error)
	ExtractAudio(ctx context.Context, input string, start, end float64, outPath string) error
	Mux(ctx context.Context, videoPath, audioPath, finalPath string) error
	ClipSegment(ctx context.Context, params ClipParams) error
}

// OverlayParams configures one overlay render pass: the source window
// and the raw RGBA overlay stream that gets composited over it.
type OverlayParams struct {
	Input       string
	Output      string
	Start       float64
	End         float64
	Width       int
	Height      int
	FPS         int
	EncoderName string
	Quality     int
}

// ClipParams configures one interval extraction.
type ClipParams struct {
	Input       string
	Output      string
	Start       float64
	End         float64
	EncoderName string
	Quality     int
}

type FFmpegEncoder struct{}

// OverlayStream starts ffmpeg reading the source window on input 0 and
// raw RGBA overlay frames on stdin, blending with the overlay filter.
// The caller streams frames through the returned pipe and must Close
// it to finish the encode.
func (e *FFmpegEncoder) OverlayStream(ctx context.Context, p OverlayParams) (*OverlayPipe, error) {
	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%f", p.Start),
		"-to", fmt.Sprintf("%f", p.End),
		"-i", p.Input,
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"-framerate", fmt.Sprintf("%d", p.FPS),
		"-i", "-",
		"-filter_complex", "[0:v][1:v]overlay=0:0:format=auto:shortest=1[v]",
		"-map", "[v]",
		"-an",
		"-r", fmt.Sprintf("%d", p.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", p.EncoderName,
	}
	args = append(args, qualityArgs(p.EncoderName, p.Quality)...)
	args = append(args, p.Output)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	return &OverlayPipe{cmd: cmd, stdin: stdin, log: &out}, nil
}

// ExtractAudio copies the audio of the source window into a temporary
// AAC artifact; the caller removes it after the mux.
func (e *FFmpegEncoder) ExtractAudio(ctx context.Context, input string, start, end float64, outPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-ss", fmt.Sprintf("%f", start),
		"-to", fmt.Sprintf("%f", end),
		"-i", input,
		"-vn", "-c:a", "aac",
		outPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg audio extract error: %v, output: %s", err, string(out))
	}
	return nil
}

// Mux joins the rendered video with the extracted audio without
// re-encoding either stream.
func (e *FFmpegEncoder) Mux(ctx context.Context, videoPath, audioPath, finalPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", "-y",
		"-i", videoPath,
		"-i", audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c", "copy",
		"-shortest",
		finalPath,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg mux error: %v, output: %s", err, string(out))
	}
	return nil
}

// ClipSegment re-encodes one interval of the input as H.264/AAC.
func (e *FFmpegEncoder) ClipSegment(ctx context.Context, p ClipParams) error {
	args := []string{
		"-y",
		"-ss", fmt.Sprintf("%f", p.Start),
		"-to", fmt.Sprintf("%f", p.End),
		"-i", p.Input,
		"-c:v", p.EncoderName,
	}
	args = append(args, qualityArgs(p.EncoderName, p.Quality)...)
	args = append(args, "-c:a", "aac", p.Output)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg clip error: %v, output: %s", err, string(out))
	}
	return nil
}

func qualityArgs(encoderName string, quality int) []string {
	switch encoderName {
	case "h264_videotoolbox":
		// VideoToolbox ignores -q:v on many versions, bitrate instead.
		return []string{"-b:v", fmt.Sprintf("%dk", quality*100)}
	case "h264_nvenc":
		return []string{"-cq", fmt.Sprintf("%d", quality)}
	default: // libx264
		return []string{"-crf", fmt.Sprintf("%d", quality), "-preset", "medium"}
	}
}

// OverlayPipe is a running overlay encode accepting raw RGBA frames.
type OverlayPipe struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	log   *bytes.Buffer
}

// WriteFrame streams one RGBA frame into the encoder.
func (p *OverlayPipe) WriteFrame(img *image.RGBA) error {
	return writeRawRGBA(p.stdin, img)
}

// Close ends the frame stream and waits for ffmpeg to finish.
func (p *OverlayPipe) Close() error {
	p.stdin.Close()
	if err := p.cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg overlay error: %v, output: %s", err, p.log.String())
	}
	return nil
}

// Abort kills the encode and discards the partial output.
func (p *OverlayPipe) Abort() {
	p.stdin.Close()
	_ = p.cmd.Process.Kill()
	_ = p.cmd.Wait()
	_ = os.Remove(p.cmd.Args[len(p.cmd.Args)-1])
}

func writeRawRGBA(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || rgba.Rect.Min.X != 0 || rgba.Rect.Min.Y != 0 {
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	}
	_, err := w.Write(rgba.Pix)
	return err
}
