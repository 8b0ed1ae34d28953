// Package main provides the ffnet CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/ffnet/internal/config"
	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/nn"
	"github.com/born-ml/ffnet/internal/progress"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "ffnet: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "ffnet %s\n", version)
		return nil
	case "train":
		return train(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "ffnet - feed-forward network trainer")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  train      Train a network (built-in exam-score demo unless -config is given)")
}

func train(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to a YAML run configuration")
		iterations = fs.Int("iterations", 0, "override the number of training iterations")
		seed       = fs.Uint64("seed", 0, "override the weight initialization seed")
		lr         = fs.Float64("lr", 0, "override the learning rate")
		momentum   = fs.Float64("momentum", 0, "override the SGD momentum")
		showBar    = fs.Bool("progress", false, "render a progress bar on stderr")
		verbose    = fs.Bool("v", false, "log debug events, including the loss every log_every iterations")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyOverrides(config.Overrides{
		Iterations:   *iterations,
		Seed:         *seed,
		LearningRate: *lr,
		Momentum:     *momentum,
		Progress:     *showBar,
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	xs, ys, _, err := cfg.Dataset()
	if err != nil {
		return err
	}

	var reporter progress.Reporter = progress.Nop{}
	if cfg.Progress {
		reporter = progress.NewBar(stderr, "training")
	}

	net, err := nn.New(cfg.NetworkConfig(),
		nn.WithLogger(logger),
		nn.WithLogEvery(cfg.LogEvery),
		nn.WithProgress(reporter),
	)
	if err != nil {
		return err
	}

	initial, err := net.Loss(xs, ys)
	if err != nil {
		return err
	}
	prediction, err := net.Train(xs, ys, cfg.Iterations)
	if err != nil {
		return err
	}
	final, err := matrix.MSEDiff(prediction, ys)
	if err != nil {
		return err
	}
	logger.Info("training complete", "iterations", cfg.Iterations, "initial_mse", initial, "final_mse", final)

	fmt.Fprintf(stdout, "Initial MSE: %.8f\nFinal MSE:   %.8f\n\n", initial, final)
	fmt.Fprintf(stdout, "Targets:\n%s\n\nPrediction:\n%s\n", ys, prediction)
	if *verbose {
		fmt.Fprintf(stdout, "\n%s\n", net)
	}
	return nil
}
