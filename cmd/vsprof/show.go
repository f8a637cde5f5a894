package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/kuberlab/vsprof/pkg/config"
	"github.com/kuberlab/vsprof/pkg/logfile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type showCmd struct {
	all bool
}

func NewShowCmd() *cobra.Command {
	show := &showCmd{}
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print the latest statistics block from a profiler log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Config.Output
			if len(args) == 1 {
				path = args[0]
			}
			return show.run(path, os.Stdout)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&show.all, "all", "a", false, "Print every block, oldest first")

	return cmd
}

func (cmd *showCmd) run(path string, out io.Writer) error {
	blocks, err := logfile.ReadFile(path)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		logrus.Infof("No statistics in %v.", path)
		return nil
	}
	if !cmd.all {
		blocks = blocks[len(blocks)-1:]
	}
	return printBlocks(out, blocks)
}

func printBlocks(out io.Writer, blocks []logfile.Block) error {
	for i, b := range blocks {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%v\n", b.Time.Format("2006-01-02 15:04:05"))
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "NAME\tCOUNT\tMAX\tMIN\tAVG\t")
		for _, l := range b.Lines {
			fmt.Fprintf(w, "%v\t%v\t%.2f\t%.2f\t%.2f\t\n", l.Name, l.Count, l.Max, l.Min, l.Avg)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}
