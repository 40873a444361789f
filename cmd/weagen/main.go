// weagen generates annual WEA irradiance files from idealized sky models.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/solarsim/wea/internal/log"
	"github.com/solarsim/wea/pkg/wea"
)

var (
	sitePath     string
	outPath      string
	snapshotPath string
	timestep     int
	leapYear     bool
	debug        bool
)

func main() {
	root := &cobra.Command{
		Use:   "weagen",
		Short: "Generate annual WEA solar irradiance files",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(debug)
		},
	}
	root.PersistentFlags().StringVar(&sitePath, "site", "site.yaml", "YAML site config")
	root.PersistentFlags().StringVar(&outPath, "out", "", "output .wea path")
	root.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "optional msgpack snapshot path")
	root.PersistentFlags().IntVar(&timestep, "timestep", 1, "samples per hour")
	root.PersistentFlags().BoolVar(&leapYear, "leap", false, "generate a leap year")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	root.AddCommand(clearSkyCmd(), tauCmd(), convertCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func clearSkyCmd() *cobra.Command {
	var clearness float64
	cmd := &cobra.Command{
		Use:   "clearsky",
		Short: "Generate from the original ASHRAE Clear Sky model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadSiteConfig(sitePath)
			if err != nil {
				return err
			}
			w, err := wea.FromASHRAEClearSky(cfg.SunpathLocation(), clearness, timestep, leapYear)
			if err != nil {
				return err
			}
			return emit(w)
		},
	}
	cmd.Flags().Float64Var(&clearness, "clearness", 1.0, "sky clearness multiplier")
	return cmd
}

func tauCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tau",
		Short: "Generate from the ASHRAE Revised Clear Sky (Tau) model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadSiteConfig(sitePath)
			if err != nil {
				return err
			}
			w, err := wea.FromASHRAERevisedClearSky(cfg.SunpathLocation(),
				cfg.TauBeam, cfg.TauDiffuse, timestep, leapYear)
			if err != nil {
				return err
			}
			return emit(w)
		},
	}
}

func convertCmd() *cobra.Command {
	var inPath string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-serialize an existing .wea file",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := wea.FromFile(inPath, timestep, leapYear)
			if err != nil {
				return err
			}
			if asJSON {
				data, err := json.MarshalIndent(w, "", "  ")
				if err != nil {
					return err
				}
				if outPath == "" {
					_, err = os.Stdout.Write(append(data, '\n'))
					return err
				}
				return os.WriteFile(outPath, data, 0o644)
			}
			return emit(w)
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input .wea path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the JSON representation")
	cmd.MarkFlagRequired("in")
	return cmd
}

func emit(w *wea.Wea) error {
	if outPath == "" && snapshotPath == "" {
		return fmt.Errorf("nothing to do: pass --out and/or --snapshot")
	}
	if outPath != "" {
		written, err := w.WriteFile(outPath, nil, false)
		if err != nil {
			return err
		}
		log.Infof("wrote %s", written)
	}
	if snapshotPath != "" {
		data, err := w.Snapshot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(snapshotPath, data, 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		log.Infof("wrote %s", snapshotPath)
	}
	return nil
}
