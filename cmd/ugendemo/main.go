// Command ugendemo builds the bundled generator patches and inspects them.
//
// Usage:
//
//	ugendemo list
//	ugendemo describe vibrato --blocks 4
//	ugendemo record polyrhythm --samples 100 --labels sel.out
//	ugendemo spectrum midi-note osc.wave --samples 4096
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-ugen/dsp/core"
	"github.com/cwbudde/algo-ugen/dsp/record"
	"github.com/cwbudde/algo-ugen/dsp/window"
)

type rootOptions struct {
	sampleRate float64
	blockSize  int
	seed       int64
	verbose    bool
}

func (o *rootOptions) env(cmd *cobra.Command) patchEnv {
	logger := slog.New(slog.DiscardHandler)
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	return patchEnv{
		cfg:    core.ApplyProcessorOptions(core.WithSampleRate(o.sampleRate), core.WithBlockSize(o.blockSize)),
		seed:   o.seed,
		logger: logger,
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	def := core.DefaultProcessorConfig()

	root := &cobra.Command{
		Use:           "ugendemo",
		Short:         "Build and inspect unit-generator patches",
		Long:          `ugendemo builds bundled unit-generator graphs, processes them block by block, and prints diagnostics, recorded samples, or spectra.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().Float64Var(&opts.sampleRate, "sample-rate", def.SampleRate, "sample rate in Hz")
	root.PersistentFlags().IntVar(&opts.blockSize, "block-size", def.BlockSize, "samples per block")
	root.PersistentFlags().Int64Var(&opts.seed, "seed", 42, "seed for random generators")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log graph construction to stderr")

	root.AddCommand(
		newListCmd(),
		newDescribeCmd(opts),
		newRecordCmd(opts),
		newSpectrumCmd(opts),
	)

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bundled patches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, p := range registry {
				fmt.Fprintf(tw, "%s\t%s\n", p.name, p.desc)
			}
			return tw.Flush()
		},
	}
}

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	var (
		blocks int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "describe <patch>",
		Short: "Process a patch and print per-node diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildPatch(args[0], opts.env(cmd))
			if err != nil {
				return err
			}
			g.ProcessBlocks(blocks)

			if asJSON {
				return g.WriteJSON(cmd.OutOrStdout())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), g.DescribeText())
			return err
		},
	}

	cmd.Flags().IntVar(&blocks, "blocks", 1, "blocks to process before describing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newRecordCmd(opts *rootOptions) *cobra.Command {
	var (
		samples int
		labels  []string
	)

	cmd := &cobra.Command{
		Use:   "record <patch>",
		Short: "Record patch outputs as tab-separated values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := buildPatch(args[0], opts.env(cmd))
			if err != nil {
				return err
			}

			r, err := record.FromSamples(g, labels, samples)
			if err != nil {
				return err
			}
			return r.WriteTSV(cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 64, "number of samples to record")
	cmd.Flags().StringSliceVar(&labels, "labels", nil, "output labels to record (default: all)")
	return cmd
}

func newSpectrumCmd(opts *rootOptions) *cobra.Command {
	var (
		samples    int
		top        int
		windowName string
	)

	cmd := &cobra.Command{
		Use:   "spectrum <patch> <label>",
		Short: "Print the strongest magnitude bins of a recorded output",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			win, err := window.Parse(windowName)
			if err != nil {
				return err
			}
			g, err := buildPatch(args[0], opts.env(cmd))
			if err != nil {
				return err
			}

			r, err := record.FromSamples(g, []string{args[1]}, samples)
			if err != nil {
				return err
			}
			mag, err := r.Spectrum(args[1], record.WithWindow(win))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "bin\tHz\tmagnitude\t")
			for _, k := range strongestBins(mag, top) {
				fmt.Fprintf(tw, "%d\t%.2f\t%.4f\t\n", k, r.BinFrequency(k, samples), mag[k])
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&samples, "samples", 4096, "number of samples to analyze")
	cmd.Flags().IntVar(&top, "top", 5, "number of bins to print")
	cmd.Flags().StringVar(&windowName, "window", "rect", "analysis window: rect, hann, hamming or blackman")
	return cmd
}

// strongestBins returns up to n bin indices ordered by descending magnitude.
func strongestBins(mag []float64, n int) []int {
	idx := make([]int, len(mag))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return mag[idx[a]] > mag[idx[b]] })
	if n < len(idx) {
		idx = idx[:max(n, 0)]
	}
	return idx
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
