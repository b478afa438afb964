/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/gazelab/gazed/gaze/denoise"
	"github.com/gazelab/gazed/params"
	"github.com/gazelab/gazed/readers/iview"
	"github.com/gazelab/gazed/stream"
	"github.com/gazelab/gazed/types/gazepoint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var optMaxNoiseSamples int
var optDedupe bool
var optColumns []string

// denoiseCmd represents the denoise command
var denoiseCmd = &cobra.Command{
	Use:   "denoise [FILE]",
	Short: "Repair short dropout runs in an iView sample export",
	Long: `
Reads a raw SMI iView sample export (or stdin with "-"), drops
repeated rows, interpolates across short dropout runs, and writes the
cleaned samples as TSV to stdout.

Runs of invalid samples longer than --max-noise-samples are genuine
signal loss and pass through untouched; so do runs touching either end
of the recording. Valid samples always pass through unchanged.

Examples:

  gazed denoise session01.txt > session01_clean.tsv
  cat session01.txt | gazed denoise --max-noise-samples 3 -
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		in := os.Stdin
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				log.Fatalln(err)
			}
			defer f.Close()
			in = f
		}

		points, err := readSamples(in)
		if err != nil {
			log.Fatalln(err)
		}

		path := gazepoint.NewPath(points)
		maxNoise := viper.GetInt("max_noise_samples")
		filtered := denoise.NewFilter(maxNoise, nil).Process(path)

		if err := writeMatrix(os.Stdout, filtered, optColumns); err != nil {
			log.Fatalln(err)
		}
	},
}

// readSamples parses raw rows and optionally drops duplicates.
func readSamples(in io.Reader) ([]gazepoint.Point, error) {
	points, err := iview.ReadPoints(in, iview.SampleFields())
	if err != nil {
		return nil, err
	}
	read := len(points)

	if optDedupe {
		ctx := context.Background()
		points = stream.Collect(ctx,
			stream.Filter(ctx, gazepoint.NewDedupeLRUFunc(),
				stream.Slice(ctx, points)))
	}

	slog.Info("Read samples",
		"read", humanize.Comma(int64(read)),
		"kept", humanize.Comma(int64(len(points))))
	return points, nil
}

func writeMatrix(w io.Writer, path *gazepoint.Path, columns []string) error {
	if path.Len() == 0 {
		slog.Warn("No samples to write")
		return nil
	}
	m, err := path.AsMatrix(columns)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(columns); err != nil {
		return err
	}
	rows, cols := m.Dims()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func init() {
	rootCmd.AddCommand(denoiseCmd)

	denoiseCmd.PersistentFlags().IntVar(&optMaxNoiseSamples, "max-noise-samples",
		params.DefaultDenoiseConfig.MaxNoiseSamples, "Longest correctable dropout run")
	denoiseCmd.PersistentFlags().Float64Var(&params.DefaultSamplePeriodMS, "sample-period",
		params.DefaultSamplePeriodMS, "Fallback sample period in milliseconds")
	denoiseCmd.PersistentFlags().BoolVar(&optDedupe, "dedupe", true, "Drop repeated sample rows")
	denoiseCmd.PersistentFlags().StringSliceVar(&optColumns, "columns",
		append([]string{"time"}, gazepoint.IView.Interp...), "Output columns, in order")

	viper.BindPFlag("max_noise_samples", denoiseCmd.PersistentFlags().Lookup("max-noise-samples"))
}
