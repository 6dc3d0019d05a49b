// fgr - torus placement planner: router selection, LNET/OST layout, and
// cost-driven client placement for the fabric.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	mapPath  string
	debugLogs bool
	noColor   bool
)

var mainSigCh = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:           "fgr",
	Short:         "Torus fabric route generation and placement planning",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = initDebugLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mapPath, "map", "", "Path to the topology map file")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging to tmp/fgr-debug.log")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors in log output")

	rootCmd.AddCommand(mapinfoCmd)
	rootCmd.AddCommand(rtgenCmd)
	rootCmd.AddCommand(placementCmd)
	rootCmd.AddCommand(nidinfoCmd)
	rootCmd.AddCommand(validateCmd)

	rtgenCmd.AddCommand(rtgensCmd)
	rtgenCmd.AddCommand(rtgenpCmd)
}

func requireMap() error {
	if mapPath == "" {
		return &userError{msg: "no topology map given", hint: "pass --map <path>"}
	}
	return nil
}

func main() {
	signal.Notify(mainSigCh, os.Interrupt)
	go func() {
		<-mainSigCh
		fmt.Println("\nCancelled.")
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		const (
			red    = "\033[31m"
			yellow = "\033[33m"
			cyan   = "\033[36m"
			reset  = "\033[0m"
		)
		if ue, ok := err.(*userError); ok {
			fmt.Fprintf(os.Stderr, "%sError:%s %s\n", red, reset, ue.Error())
			if hint := ue.Hint(); hint != "" {
				fmt.Fprintf(os.Stderr, "%sHint:%s %s%s%s\n", yellow, reset, cyan, hint, reset)
			}
		} else {
			fmt.Fprintf(os.Stderr, "%sError:%s %v\n", red, reset, err)
		}
		if debugCleanup != nil {
			debugCleanup()
		}
		os.Exit(1)
	}
	if debugCleanup != nil {
		debugCleanup()
	}
}
