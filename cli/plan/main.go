// Command plan is a batch CLI over the maze motion-planning engine: it
// loads a maze file, reports reachability, plans a tour, and prints a
// playback-style summary. It has no windowed UI and no persisted state;
// every invocation is pure given its input file.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"
	"go.viam.com/utils"

	"github.com/KoalaWill/maze-motionplan/engine"
	"github.com/KoalaWill/maze-motionplan/logging"
	"github.com/KoalaWill/maze-motionplan/reachability"
	"github.com/KoalaWill/maze-motionplan/touring"
)

func main() {
	app := &cli.App{
		Name:  "plan",
		Usage: "load a maze, report reachability, and plan a fuel-minimizing tour",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "maze",
				Usage:    "path to the maze file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "planning mode: exact, approximate, or auto",
				Value: "auto",
			},
			&cli.IntFlag{
				Name:  "threshold",
				Usage: "reachable-objective count at which auto mode switches to the approximate planner",
				Value: engine.DefaultApproxThreshold,
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "optional path to also write logs to, in addition to stdout",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "report format: text or json",
				Value: "text",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger, closeLogger, err := buildLogger(c.String("log-file"))
	if err != nil {
		return err
	}
	defer closeLogger()

	mode, err := parseMode(c.String("mode"))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.String("maze"))
	if err != nil {
		return err
	}

	r, err := engine.LoadMaze(data, logger)
	if err != nil {
		return err
	}
	if threshold := c.Int("threshold"); threshold > 0 {
		r.Threshold = threshold
	}

	reachResult := r.AnalyzeReachability()

	done := make(chan struct{})
	utils.PanicCapturingGo(func() {
		reportProgress(logger, done)
	})
	planResult, err := r.Plan(reachResult, mode)
	close(done)
	if err != nil {
		return err
	}

	format := c.String("format")
	switch format {
	case "json":
		return printJSON(reachResult, planResult)
	default:
		printAccessibilityReport(reachResult)
		printPlaybackSummary(planResult)
		return nil
	}
}

// reportProgress logs an elapsed-time heartbeat at Info level while a
// planning call runs, so a long approximate-planner run on a large instance
// is visible in the log stream. It exits as soon as done is closed.
func reportProgress(logger logging.Logger, done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	start := time.Now()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if logger != nil {
				logger.Infow("planning still running", "elapsed", time.Since(start))
			}
		}
	}
}

func parseMode(s string) (engine.Mode, error) {
	switch s {
	case "exact":
		return engine.ModeExact, nil
	case "approximate":
		return engine.ModeApprox, nil
	case "auto", "":
		return engine.ModeAuto, nil
	default:
		return engine.ModeAuto, fmt.Errorf("plan: unknown mode %q", s)
	}
}

// buildLogger assembles a logging.Logger writing to stdout and, if
// filename is non-empty, also to a rotating log file, mirroring the
// teacher's appender composition.
func buildLogger(filename string) (logging.Logger, func(), error) {
	appenders := []logging.Appender{logging.NewStdoutAppender()}
	closeFn := func() {}

	if filename != "" {
		fileAppender, closer := logging.NewFileAppender(filename)
		appenders = append(appenders, fileAppender)
		closeFn = func() {
			utils.UncheckedError(closer.Close())
		}
	}

	return logging.NewLogger(zapcore.InfoLevel, appenders...), closeFn, nil
}

// printAccessibilityReport reproduces the original presentation layer's
// per-objective ACCESSIBLE/UNREACHABLE report plus a summary line.
func printAccessibilityReport(result reachability.Result) {
	for _, obj := range result.Objectives {
		status := "UNREACHABLE"
		if obj.Reachable {
			status = "ACCESSIBLE"
		}
		fmt.Printf("Objective (%d, %d): %s\n", obj.X, obj.Y, status)
	}
	fmt.Printf("SUMMARY: %d / %d objectives reachable\n", result.ReachableCount, len(result.Objectives))
}

// printPlaybackSummary reproduces the original playback overlay's step
// count and total fuel lines, without the animation itself.
func printPlaybackSummary(result touring.Result) {
	if !result.Feasible {
		fmt.Println("No plan found.")
		return
	}
	for i, step := range result.Trace {
		fmt.Printf("Step: %d / %d\n", i+1, len(result.Trace))
		_ = step
	}
	fmt.Printf("Total Fuel Cost: %d\n", result.TotalFuel)
	fmt.Println("Path Completed!")
}

type jsonObjective struct {
	X         int  `json:"x"`
	Y         int  `json:"y"`
	Reachable bool `json:"reachable"`
}

type jsonStep struct {
	X           int `json:"x"`
	Y           int `json:"y"`
	Orientation int `json:"orientation"`
}

type jsonReport struct {
	Objectives     []jsonObjective `json:"objectives"`
	ReachableCount int             `json:"reachable_count"`
	Feasible       bool            `json:"feasible"`
	TotalFuel      int             `json:"total_fuel,omitempty"`
	Trace          []jsonStep      `json:"trace,omitempty"`
}

func printJSON(reachResult reachability.Result, planResult touring.Result) error {
	report := jsonReport{
		ReachableCount: reachResult.ReachableCount,
		Feasible:       planResult.Feasible,
		TotalFuel:      planResult.TotalFuel,
	}
	for _, obj := range reachResult.Objectives {
		report.Objectives = append(report.Objectives, jsonObjective{X: obj.X, Y: obj.Y, Reachable: obj.Reachable})
	}
	for _, step := range planResult.Trace {
		report.Trace = append(report.Trace, jsonStep{X: step.X, Y: step.Y, Orientation: int(step.Orientation)})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
