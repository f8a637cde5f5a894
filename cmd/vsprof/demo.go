package main

import (
	"errors"
	"os"

	"github.com/kuberlab/vsprof/pkg/config"
	"github.com/kuberlab/vsprof/pkg/profiler"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"
	"gopkg.in/cheggaaa/pb.v1"
)

type demoCmd struct {
	workers    int
	iterations int
	// step runs one unit of work, the package-level step if nil.
	step func(i int) error
}

func NewDemoCmd() *cobra.Command {
	demo := &demoCmd{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run an instrumented workload and append its statistics to the output file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if demo.workers < 1 {
				return errors.New("--workers must be at least 1")
			}
			if demo.iterations < 0 {
				return errors.New("--iterations must not be negative")
			}
			return demo.run()
		},
	}

	f := cmd.Flags()
	f.IntVarP(&demo.workers, "workers", "w", 4, "Concurrent workers")
	f.IntVarP(&demo.iterations, "iterations", "n", 100, "Workload steps to run")

	return cmd
}

func showProgress() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (cmd *demoCmd) run() (err error) {
	undo, err := maxprocs.Set(maxprocs.Logger(logrus.Debugf))
	defer undo()
	if err != nil {
		logrus.Warningf("Failed to set GOMAXPROCS: %v", err)
	}

	if !profiler.Enabled {
		logrus.Warning("Built without the vsprof tag, nothing will be recorded.")
	}
	if err = profiler.Init(config.Config.Options()); err != nil {
		return err
	}
	// The final block is written even when a step fails.
	defer func() {
		if shutdownErr := profiler.Shutdown(); shutdownErr != nil {
			if err != nil {
				logrus.Errorf("Failed to save statistics: %v", shutdownErr)
				return
			}
			err = shutdownErr
			return
		}
		if err == nil && profiler.Enabled {
			logrus.Infof("Statistics appended to %v.", config.Config.Output)
		}
	}()

	work := cmd.step
	if work == nil {
		work = step
	}

	var bar *pb.ProgressBar
	if showProgress() {
		bar = pb.New(cmd.iterations)
		bar.SetMaxWidth(100)
		bar.Start()
	}

	logrus.Debugf("Run demo: %v steps on %v workers...", cmd.iterations, cmd.workers)
	g := errgroup.Group{}
	g.SetLimit(cmd.workers)
	for i := 0; i < cmd.iterations; i++ {
		i := i
		g.Go(func() error {
			err := work(i)
			if bar != nil {
				bar.Increment()
			}
			return err
		})
	}
	err = g.Wait()
	if bar != nil {
		bar.Finish()
	}
	return err
}
