package main

import (
	"fmt"
	"runtime"

	"github.com/kuberlab/vsprof/pkg/profiler"
	"github.com/kuberlab/vsprof/pkg/utils"
	"github.com/spf13/cobra"
)

type Version struct {
	version    string
	goCompiler string
	enabled    bool
}

var VersionStr = "1.0.0"

func (v Version) String() string {
	return fmt.Sprintf("%v (%v, profiling enabled: %v)", v.version, v.goCompiler, v.enabled)
}

func GetVersion() Version {
	return Version{
		version:    VersionStr,
		goCompiler: runtime.Version(),
		enabled:    profiler.Enabled,
	}
}

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.CheckVersion(VersionStr); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), GetVersion())
			return nil
		},
	}
}
