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
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gazelab/gazed/gaze/denoise"
	"github.com/gazelab/gazed/gaze/fixstats"
	"github.com/gazelab/gazed/gaze/region"
	"github.com/gazelab/gazed/params"
	"github.com/gazelab/gazed/types/gazepoint"
	"github.com/gazelab/gazed/writers/delimited"
	"github.com/spf13/cobra"
)

var optDenoise bool
var optRecenterX float64
var optRecenterY float64
var optClampToScreen bool
var optRegions []string
var optScreenWidth float64
var optScreenHeight float64

// fixstatsCmd represents the fixstats command
var fixstatsCmd = &cobra.Command{
	Use:   "fixstats [FILE]",
	Short: "Summarize a fixation recording",
	Long: `
Reads an iView export (or stdin with "-") and prints a TSV fixation
report: sample counts, strict and lax validity, and per-region
membership for any regions of interest given.

Regions are rectangles, NAME:X1,Y1,X2,Y2 in screen coordinates:

  gazed fixstats --region face:300,200,500,400 --region text:0,450,800,600 session01.txt

--recenter-x/--recenter-y translate the whole path before analysis;
--clamp-to-screen pins stray coordinates to the screen edges first.
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

		if optDenoise {
			path = denoise.NewDefaultFilter().Process(path)
		}
		if optRecenterX != 0 || optRecenterY != 0 {
			path = path.RecenterBy(optRecenterX, optRecenterY)
		}
		screen := params.ScreenConfig{
			Width:      optScreenWidth,
			Height:     optScreenHeight,
			StrictSlop: params.DefaultScreenConfig.StrictSlop,
			LaxSlop:    params.DefaultScreenConfig.LaxSlop,
		}
		if optClampToScreen {
			path = path.ConstrainTo(gazepoint.Constraint{
				MinX: gazepoint.Clamp{Threshold: 0, Replacement: 0},
				MinY: gazepoint.Clamp{Threshold: 0, Replacement: 0},
				MaxX: gazepoint.Clamp{Threshold: screen.Width, Replacement: screen.Width},
				MaxY: gazepoint.Clamp{Threshold: screen.Height, Replacement: screen.Height},
			})
		}

		regions, err := parseRegions(optRegions)
		if err != nil {
			log.Fatalln(err)
		}

		analyzer := fixstats.NewAnalyzer(path, screen)
		sw := delimited.NewStatsWriter(os.Stdout)
		if err := sw.WriteHeader(); err != nil {
			log.Fatalln(err)
		}
		if err := sw.Write([]fixstats.Stats{analyzer.GeneralStats()}); err != nil {
			log.Fatalln(err)
		}
		if len(regions) > 0 {
			if err := sw.Write(analyzer.RegionStats("screen", regions)); err != nil {
				log.Fatalln(err)
			}
		}
		if err := sw.Flush(); err != nil {
			log.Fatalln(err)
		}
	},
}

// parseRegions decodes NAME:X1,Y1,X2,Y2 region flags.
func parseRegions(specs []string) ([]fixstats.NamedRegion, error) {
	out := make([]fixstats.NamedRegion, 0, len(specs))
	for _, spec := range specs {
		name, coords, found := strings.Cut(spec, ":")
		if !found || name == "" {
			return nil, fmt.Errorf("bad region %q: want NAME:X1,Y1,X2,Y2", spec)
		}
		parts := strings.Split(coords, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("bad region %q: want 4 coordinates, got %d", spec, len(parts))
		}
		vals := make([]float64, 4)
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("bad region %q: %v", spec, err)
			}
			vals[i] = v
		}
		out = append(out, fixstats.NamedRegion{
			Name:   name,
			Region: region.NewRectangle(vals[0], vals[1], vals[2], vals[3]),
		})
	}
	return out, nil
}

func init() {
	rootCmd.AddCommand(fixstatsCmd)

	fixstatsCmd.PersistentFlags().BoolVar(&optDenoise, "denoise", true, "Repair short dropout runs before analysis")
	fixstatsCmd.PersistentFlags().BoolVar(&optDedupe, "dedupe", true, "Drop repeated sample rows")
	fixstatsCmd.PersistentFlags().IntVar(&params.DefaultDenoiseConfig.MaxNoiseSamples, "max-noise-samples",
		params.DefaultDenoiseConfig.MaxNoiseSamples, "Longest correctable dropout run")
	fixstatsCmd.PersistentFlags().Float64Var(&optRecenterX, "recenter-x", 0, "Translate the path by this x offset")
	fixstatsCmd.PersistentFlags().Float64Var(&optRecenterY, "recenter-y", 0, "Translate the path by this y offset")
	fixstatsCmd.PersistentFlags().BoolVar(&optClampToScreen, "clamp-to-screen", false, "Pin stray coordinates to the screen edges")
	fixstatsCmd.PersistentFlags().StringArrayVar(&optRegions, "region", nil, "Region of interest, NAME:X1,Y1,X2,Y2 (repeatable)")
	fixstatsCmd.PersistentFlags().Float64Var(&optScreenWidth, "screen-width", params.DefaultScreenConfig.Width, "Screen width in tracker units")
	fixstatsCmd.PersistentFlags().Float64Var(&optScreenHeight, "screen-height", params.DefaultScreenConfig.Height, "Screen height in tracker units")
}
