package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	goeye "github.com/jdginn/go-eye-optics/eye"
	eyeConfig "github.com/jdginn/go-eye-optics/eye/config"
	eyeExperiment "github.com/jdginn/go-eye-optics/eye/experiment"
	"github.com/jdginn/go-eye-optics/interact"
)

var CLI struct {
	LogLevel string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"log verbosity"`

	Simulate SimulateCmd `cmd:"" help:"Trace rays through an eye and save the drawings"`
	Validate ValidateCmd `cmd:"" help:"Check a config file without tracing"`
	Defaults DefaultsCmd `cmd:"" help:"Write the default eye config"`
	Interact InteractCmd `cmd:"" help:"Browse traced rays in the terminal"`
}

// simulation is a loaded config with its model built and every ray traced
type simulation struct {
	config  *eyeConfig.ExperimentConfig
	model   *goeye.EyeModel
	pupil   []goeye.PupilLine
	results []goeye.TraceResult
}

func (s simulation) view() *goeye.View {
	return &goeye.View{
		Model:   s.model,
		Pupil:   s.pupil,
		ObjectX: s.config.Objects.X,
		XSize:   s.config.Render.Width,
		YSize:   s.config.Render.Height,
	}
}

func simulate(ctx context.Context, path string) (simulation, error) {
	config, err := eyeConfig.LoadFromFile(path, eyeConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	if err != nil {
		return simulation{}, err
	}

	model, pupil, err := config.Create()
	if err != nil {
		return simulation{}, fmt.Errorf("building eye model: %w", err)
	}

	results, err := model.TraceAll(ctx, config.Rays(), pupil, config.Tracing.Workers)
	if err != nil {
		return simulation{}, fmt.Errorf("tracing: %w", err)
	}

	for i, r := range results {
		end := r.Path.Last()
		attrs := []any{"ray", i, "start", r.Start.Y, "reason", r.Reason.String(), "end_x", end.X, "end_y", end.Y}
		if r.Err != nil {
			attrs = append(attrs, "error", r.Err)
		}
		slog.Debug("traced ray", attrs...)
	}
	summary := goeye.Summarize(results)
	attrs := []any{"rays", len(results)}
	for _, reason := range []goeye.TerminalReason{goeye.ReachedRetina, goeye.PupilBlocked, goeye.TotalInternalReflection, goeye.NoIntersection} {
		attrs = append(attrs, reason.String(), summary[reason])
	}
	if radius, ok := goeye.SpotRadius(results); ok {
		attrs = append(attrs, "spot_rms_mm", radius)
	}
	slog.Info("simulation complete", attrs...)

	return simulation{config: config, model: model, pupil: pupil, results: results}, nil
}

type SimulateCmd struct {
	Config string `arg:"" name:"config" help:"config file to simulate" type:"existingfile"`
	Output string `name:"output" default:"experiments" help:"directory that holds one subdirectory per run"`
}

func (c SimulateCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim, err := simulate(ctx, c.Config)
	if err != nil {
		return err
	}

	expDir, err := eyeExperiment.CreateExperimentDirectory(c.Output)
	if err != nil {
		return fmt.Errorf("creating experiment directory: %w", err)
	}
	if err := expDir.CopyConfigFile(c.Config); err != nil {
		return fmt.Errorf("copying config file: %w", err)
	}

	img, err := sim.view().PlotRays(sim.results, sim.config.Colors())
	if err != nil {
		return fmt.Errorf("drawing rays: %w", err)
	}
	if err := goeye.SaveImage(expDir.GetFilePath("rays.png"), img); err != nil {
		return fmt.Errorf("saving ray drawing: %w", err)
	}

	if err := goeye.PlotFocus(sim.config.Render.FocusWidth, sim.config.Render.FocusHeight, sim.results, expDir.GetFilePath("focus.png")); err != nil {
		slog.Warn("skipping focus plot", "error", err)
	}

	if err := goeye.SaveTracesToJSON(expDir.GetFilePath("traces.json"), sim.model, sim.pupil, sim.results, sim.config.Colors()); err != nil {
		return fmt.Errorf("saving traces: %w", err)
	}

	if err := expDir.WriteManifest(sim.results); err != nil {
		return err
	}

	slog.Info("saved experiment", "id", expDir.ID, "path", expDir.Path)
	return nil
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"config file to check" type:"existingfile"`
}

func (c ValidateCmd) Run() error {
	config, err := eyeConfig.LoadFromFile(c.Config, eyeConfig.LoadOptions{
		ResolvePaths: true,
		MergeFiles:   true,
	})
	if err != nil {
		return err
	}
	if errs := config.Validate(); len(errs) > 0 {
		fmt.Print(eyeConfig.FormatValidationErrors(errs))
		return errors.New("config is invalid")
	}
	if _, _, err := config.Create(); err != nil {
		return err
	}
	fmt.Println("config OK")
	return nil
}

type DefaultsCmd struct {
	Out string `arg:"" name:"out" help:"where to write the config"`
}

func (c DefaultsCmd) Run() error {
	if err := eyeConfig.SaveToFile(eyeConfig.Default(), c.Out); err != nil {
		return err
	}
	slog.Info("wrote default config", "path", c.Out)
	return nil
}

type InteractCmd struct {
	Config string `arg:"" name:"config" help:"config file to simulate" type:"existingfile"`
	Image  string `name:"image" default:"selected.png" help:"drawing of the selected ray, redrawn on every move"`
}

func (c InteractCmd) Run() error {
	sim, err := simulate(context.Background(), c.Config)
	if err != nil {
		return err
	}
	return interact.Interact(sim.view(), sim.results, sim.config.Colors(), c.Image)
}

func main() {
	ctx := kong.Parse(&CLI)

	var level slog.Level
	if err := level.UnmarshalText([]byte(CLI.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := ctx.Run(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
