// Command whispermel is a standalone CLI for the whispermel pipeline,
// useful for manual inspection and fixture generation without building
// the c-shared library.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	whispermel "github.com/cortexswarm/whisper-mel-go"
)

// version is set at build time via -ldflags, following the convention of
// leaving it as a plain var so `go build` without ldflags still links.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "whispermel",
		Short: "Extract Whisper log-mel features from a WAV file",
	}
	root.AddCommand(extractCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the whispermel version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func extractCmd() *cobra.Command {
	var csvPath string
	cmd := &cobra.Command{
		Use:   "extract <wav-file>",
		Short: "Extract the 80x3000 log-mel spectrogram from a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := whispermel.Extract(args[0])
			if err != nil {
				return fmt.Errorf("extract: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "mels=%d frames=%d\n", spec.NMels, spec.NFrames)
			if csvPath != "" {
				return writeCSV(csvPath, spec)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the spectrogram as CSV (one row per mel band)")
	return cmd
}

// writeCSV dumps the spectrogram mel-major, one CSV row per mel band, as
// a debug aid for manual inspection.
func writeCSV(path string, spec *whispermel.Spectrogram) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	row := make([]string, spec.NFrames)
	for m := 0; m < spec.NMels; m++ {
		for t := 0; t < spec.NFrames; t++ {
			row[t] = strconv.FormatFloat(float64(spec.Data[m*spec.NFrames+t]), 'g', -1, 32)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", m, err)
		}
	}
	return nil
}
