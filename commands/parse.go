package commands

import (
	"fmt"

	"github.com/penwyp/go-datetime-bench/internal/data/parsing"
	"github.com/penwyp/go-datetime-bench/internal/presentation/formatter"
	"github.com/penwyp/go-datetime-bench/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Parse command flags
	parseStrategy string
	parseList     bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] VALUE...",
	Short: "Parse timestamp strings with one strategy",
	Long: `Parses each VALUE with the chosen strategy and prints the resulting instant,
or the error when the strategy rejects it. The explicit strategy only accepts
MM/DD/YY HH:MM; generic and inferred accept anything autodetection recognises.

Examples:
  go-datetime-bench parse "08/09/98 01:34"
  go-datetime-bench parse --strategy generic "1998-08-09T01:34:00"
  go-datetime-bench parse --list`,
	SilenceUsage: true,
	RunE:         runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseStrategy, "strategy", "s", "explicit",
		"Strategy to parse with")
	parseCmd.Flags().BoolVar(&parseList, "list", false,
		"List available strategies and exit")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	registry := parsing.DefaultRegistry(cfg.SampleSize)
	if parseList {
		fmt.Fprint(out, registry.Summary())
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("at least one value is required")
	}

	strategy, ok := registry.Get(parseStrategy)
	if !ok {
		_, err := registry.Select([]string{parseStrategy})
		return err
	}

	loc := util.GetTimeProvider().Location()
	failed := 0
	for _, value := range args {
		parsed, err := strategy.ParseColumn([]string{value}, loc)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%q -> %s\n", value, util.FormatErrorText("error: "+err.Error()))
			continue
		}
		fmt.Fprintf(out, "%q -> %s\n", value, parsed[0].Format(formatter.ParsedTimeLayout))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d values could not be parsed by %s", failed, len(args), strategy.Name())
	}
	return nil
}
