// Command healthnet manages a network of health centers stored in CSV
// files and answers routing questions over it through a numbered menu.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/katalvlaran/healthnet/builder"
	"github.com/katalvlaran/healthnet/cli"
	"github.com/katalvlaran/healthnet/config"
	"github.com/katalvlaran/healthnet/core"
	"github.com/katalvlaran/healthnet/logging"
	"github.com/katalvlaran/healthnet/metrics"
	"github.com/katalvlaran/healthnet/network"
	"github.com/katalvlaran/healthnet/store"
)

func main() {
	env := environment{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		lookup: os.LookupEnv,
	}
	if err := run(os.Args[1:], env); err != nil {
		fmt.Fprintln(os.Stderr, "healthnet:", err)
		os.Exit(1)
	}
}

// environment is everything run touches outside the process.
type environment struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	lookup func(string) (string, bool)
}

func run(args []string, env environment) error {
	flags := flag.NewFlagSet("healthnet", flag.ContinueOnError)
	flags.SetOutput(env.stderr)
	configPath := flags.String("config", "", "YAML configuration file")
	envFile := flags.String("env", ".env", "dotenv file loaded before the configuration")
	demo := flags.Bool("demo", false, "seed an empty network with generated centers")
	seed := flags.Int64("seed", 1, "random seed for -demo")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", *envFile, err)
		}
	}

	cfg, err := config.LoadWithEnv(env.fs, *configPath, env.lookup)
	if err != nil {
		return err
	}

	logger, err := logging.New(env.stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log := logger.WithField("run", uuid.NewString())

	reg := metrics.NewRegistry()
	st := store.New(env.fs, store.Paths{
		Centers:       cfg.CentersPath(),
		Connections:   cfg.ConnectionsPath(),
		Relationships: cfg.RelationshipsPath(),
	}, store.WithLogger(log), store.WithObserver(reg))

	var gopts []core.GraphOption
	if cfg.MaxCenterID > 0 {
		gopts = append(gopts, core.WithMaxCenterID(cfg.MaxCenterID))
	}
	g := core.NewGraph(gopts...)
	report, err := st.Load(g)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"centers":     report.Centers,
		"connections": report.Connections,
		"skipped":     len(report.Skipped),
	}).Info("network loaded")

	if *demo && g.CenterCount() == 0 {
		if err = seedDemo(g, *seed); err != nil {
			return err
		}
		if err = st.Save(g); err != nil {
			return err
		}
		log.WithField("centers", g.CenterCount()).Info("demo network generated")
	}

	net := network.New(g, st, network.WithLogger(log), network.WithMetrics(reg))
	ui := cli.New(net, env.stdin, env.stdout,
		cli.WithColor(cfg.Color && !color.NoColor),
		cli.WithLogger(log),
		cli.WithMetrics(reg),
	)

	return ui.Run()
}

// seedDemo lays out a 3x4 grid of centers with a few random shortcuts.
func seedDemo(g *core.Graph, seed int64) error {
	return builder.Apply(g,
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithIDOffset(1),
			builder.WithNameFn(func(id int) string { return fmt.Sprintf("Health Center %d", id) }),
		},
		builder.Grid(3, 4),
		builder.RandomSparse(12, 0.1),
	)
}
