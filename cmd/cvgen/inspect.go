package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/jonathan/cv-generator/internal/document"
	"github.com/jonathan/cv-generator/internal/observability"
	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the section outline of the résumé",
	Long:  "Lists the top-level sections of the YAML résumé in document order with their kind and entry count. With --dump the parsed tree is printed as well.",
	RunE:  runInspect,
}

var (
	inspectFlags configFlags
	inspectDump  bool
)

func init() {
	inspectCmd.Flags().StringVar(&inspectFlags.configPath, "config", "", "Path to config.json file")
	inspectCmd.Flags().StringVarP(&inspectFlags.input, "in", "i", "", "Path to the YAML résumé (default inputs/cv.yaml, env CVGEN_INPUT)")
	inspectCmd.Flags().BoolVar(&inspectDump, "dump", false, "Dump the parsed document tree")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, _ []string) error {
	cfg, err := inspectFlags.resolve(cmd)
	if err != nil {
		return err
	}

	doc, err := document.Load(cfg.Input)
	if err != nil {
		return err
	}

	outline, err := rendering.Outline(doc)
	if err != nil {
		return err
	}
	observability.NewPrinter(os.Stdout).PrintOutline(cfg.Input, outline)

	if inspectDump {
		dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
		_, _ = fmt.Fprintln(os.Stdout)
		dumper.Fdump(os.Stdout, doc.Interface())
	}
	return nil
}
