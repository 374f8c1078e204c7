package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/orhanbalci/scorecast/internal/clipper"
	"github.com/orhanbalci/scorecast/internal/config"
	"github.com/orhanbalci/scorecast/internal/engine"
	"github.com/orhanbalci/scorecast/internal/media"
	"github.com/orhanbalci/scorecast/internal/roster"
	"github.com/orhanbalci/scorecast/internal/system"
	"github.com/orhanbalci/scorecast/internal/timeline"
)

const buildVersion = "1.2.0"

func main() {
	system.InitResourceLimits()

	dirs := []string{"input/video", "input/rosters", "output"}
	for _, d := range dirs {
		os.MkdirAll(d, 0755)
	}

	inputPtr := flag.String("input", "", "Path to the match video (default: latest file in input/video/)")
	matchPtr := flag.String("match", "", "Path to the match YAML file (goals, notifications, lineups)")
	outputPtr := flag.String("output", "", "Output video path (default: generated in output/)")
	startPtr := flag.String("start", "", "Render window start (MM:SS, HH:MM:SS or seconds)")
	endPtr := flag.String("end", "", "Render window end (MM:SS, HH:MM:SS or seconds)")
	infoPtr := flag.Bool("info", false, "Print video information and exit")
	clipOnlyPtr := flag.Bool("clip-only", false, "Extract the window without overlays")
	scoreboardPtr := flag.Bool("scoreboard", true, "Show the scoreboard overlay")
	notificationsPtr := flag.Bool("notifications", true, "Show goal and custom notifications")
	lineupsPtr := flag.Bool("lineups", true, "Show lineup overlays")
	qrPtr := flag.String("qr", "", "URL for the QR badge shown near the end of the video")
	xMarginPtr := flag.Int("x-margin", 10, "Scoreboard distance from the left edge")
	yMarginPtr := flag.Int("y-margin", 10, "Scoreboard distance from the top edge")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Frame compositing workers")
	qualityPtr := flag.Int("quality", 0, "Video quality (0 auto, x264: CRF 1-51, VideoToolbox: bitrate = Q*100kbit/s)")
	statsPtr := flag.Bool("stats", false, "Print a performance report after the render")
	rosterPtr := flag.String("roster", "", "Import a team sheet PDF as a lineup")
	rosterTeamPtr := flag.Int("roster-team", 1, "Team side for the imported roster (1 or 2)")
	rosterTimePtr := flag.String("roster-time", "00:05", "Display time for the imported lineup")

	flag.Parse()

	if *rosterPtr != "" {
		importRoster(*rosterPtr, *rosterTeamPtr, *rosterTimePtr, *matchPtr)
		return
	}

	inputPath := *inputPtr
	if inputPath == "" {
		latest, err := system.FindLatestVideo("input/video")
		if err != nil {
			log.Fatalf("[-] Error: %v. Put a match video in input/video/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Selected video: %s\n", inputPath)
	}
	if _, err := os.Stat(inputPath); err != nil {
		log.Fatalf("[-] Error: input file not found: %s", inputPath)
	}

	start, end := parseWindow(*startPtr, *endPtr)

	if *infoPtr {
		printInfo(inputPath)
		if *startPtr == "" || *endPtr == "" {
			return
		}
	}

	encoderName := system.GetBestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Hardware acceleration detected: %s\n", encoderName)
	}

	quality := *qualityPtr
	if quality == 0 {
		switch encoderName {
		case "h264_videotoolbox":
			quality = 75
		case "h264_nvenc":
			quality = 28
		default:
			quality = 23
		}
	}

	ctx := context.Background()

	if *clipOnlyPtr {
		if *startPtr == "" || *endPtr == "" {
			log.Fatal("[-] Error: -clip-only requires both -start and -end")
		}
		c := clipper.New(encoderName, quality)
		if _, err := c.Clip(ctx, inputPath, start, end, *outputPtr); err != nil {
			log.Fatalf("[-] Clip error: %v", err)
		}
		return
	}

	if *matchPtr == "" {
		log.Fatal("[-] Error: -match is required (or use -clip-only / -info)")
	}

	output := *outputPtr
	if output == "" {
		base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
		cleanName := strings.ReplaceAll(base, " ", "_")
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		output = filepath.Join("output", fmt.Sprintf("%s_with_score_%s.mp4", cleanName, timestamp))
	}

	cfg := &config.Config{
		InputPath:         inputPath,
		MatchPath:         *matchPtr,
		Output:            output,
		Start:             start,
		End:               end,
		ShowScoreboard:    *scoreboardPtr,
		ShowNotifications: *notificationsPtr,
		ShowLineups:       *lineupsPtr,
		QRContent:         *qrPtr,
		XMargin:           *xMarginPtr,
		YMargin:           *yMarginPtr,
		Workers:           *workersPtr,
		VideoEncoder:      encoderName,
		Quality:           quality,
		ShowStats:         *statsPtr,
		BuildVersion:      buildVersion,
	}

	project := engine.NewProject(cfg)
	if err := project.Run(ctx); err != nil {
		log.Fatalf("[-] Render error: %v", err)
	}
}

// parseWindow converts the -start/-end flags, empty means unset.
func parseWindow(startStr, endStr string) (float64, float64) {
	var start, end float64
	var err error

	if startStr != "" {
		start, err = timeline.ParseTimeString(startStr)
		if err != nil {
			log.Fatalf("[-] Invalid -start: %v", err)
		}
	}
	if endStr != "" {
		end, err = timeline.ParseTimeString(endStr)
		if err != nil {
			log.Fatalf("[-] Invalid -end: %v", err)
		}
	}
	return start, end
}

func printInfo(path string) {
	info, err := media.Probe(path)
	if err != nil {
		log.Fatalf("[-] Probe error: %v", err)
	}
	fmt.Println("Video Information:")
	fmt.Printf("  Duration: %s\n", timeline.FormatTime(info.Duration))
	fmt.Printf("  FPS: %.3f\n", info.FPS)
	fmt.Printf("  Size: %dx%d\n", info.Width, info.Height)
	fmt.Printf("  Audio: %v\n", info.HasAudio)
}

// importRoster reads a PDF team sheet and either appends it to a
// match file as a lineup or prints the parsed entries.
func importRoster(pdfPath string, team int, timeStr, matchPath string) {
	if team != 1 && team != 2 {
		log.Fatalf("[-] Error: -roster-team must be 1 or 2, got %d", team)
	}
	at, err := timeline.ParseTimeString(timeStr)
	if err != nil {
		log.Fatalf("[-] Invalid -roster-time: %v", err)
	}

	sheet, err := roster.ReadSheet(pdfPath)
	if err != nil {
		log.Fatalf("[-] Roster import error: %v", err)
	}

	fmt.Printf("[*] Parsed team sheet: %s, %d players, director %s\n",
		sheet.TeamName, len(sheet.Players), sheet.Director)

	if matchPath == "" {
		for _, p := range sheet.Players {
			if p.Position != "" {
				fmt.Printf("  %2d %s (%s)\n", p.Number, p.Name, p.Position)
			} else {
				fmt.Printf("  %2d %s\n", p.Number, p.Name)
			}
		}
		return
	}

	match, err := timeline.ReadMatch(matchPath)
	if err != nil {
		log.Fatalf("[-] Error reading match file: %v", err)
	}

	match.Lineups = append(match.Lineups, sheet.Lineup(team, at))
	if err := timeline.WriteMatch(match, matchPath); err != nil {
		log.Fatalf("[-] Error writing match file: %v", err)
	}
	fmt.Printf("[+++] Lineup added to %s\n", matchPath)
}
