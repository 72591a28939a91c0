package main

import (
	"fmt"
	"strings"

	"github.com/ayn2op/gridview/internal/sheet"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "gridview"

type options struct {
	sheetPath    string
	rows, cols   int
	dividerWidth int
	dividerColor string
	watch        bool
	logFile      string
	logLevel     string
}

// config is options after validation.
type config struct {
	sheetPath    string
	rows, cols   int
	dividerWidth int
	dividerColor tcell.Color
	watch        bool
	logFile      string
	logLevel     string
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "gridview",
		Short: "Browse a spreadsheet with frozen headers and merged cells",
		Long: `Browse a spreadsheet with a frozen header row and column.

The sheet is read from a YAML file or, without --sheet, generated. Every flag
can also be set through a GRIDVIEW_<FLAG> environment variable, for example
GRIDVIEW_DIVIDER_WIDTH=2.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return checkEnvironmentVariables(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.sheetPath, "sheet", "", "YAML file describing the sheet")
	flags.IntVar(&opts.rows, "rows", sheet.DefaultRows, "number of rows of the generated sheet, including the header row")
	flags.IntVar(&opts.cols, "cols", sheet.DefaultCols, "number of columns of the generated sheet, including the header column")
	flags.IntVar(&opts.dividerWidth, "divider-width", 1, "width of the lines between cells")
	flags.StringVar(&opts.dividerColor, "divider-color", "lightgray", "color of the lines between cells, as a name or #rrggbb")
	flags.BoolVar(&opts.watch, "watch", false, "reload the sheet when its file changes")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: error, warn, info, debug or trace")
	return cmd
}

func (o options) config() (config, error) {
	cfg := config{
		sheetPath:    o.sheetPath,
		rows:         o.rows,
		cols:         o.cols,
		dividerWidth: o.dividerWidth,
		watch:        o.watch,
		logFile:      o.logFile,
		logLevel:     o.logLevel,
	}
	if o.rows < 0 || o.cols < 0 {
		return cfg, fmt.Errorf("invalid sheet size %dx%d", o.rows, o.cols)
	}
	if o.dividerWidth < 0 {
		return cfg, fmt.Errorf("invalid divider width %d", o.dividerWidth)
	}
	if o.watch && o.sheetPath == "" {
		return cfg, fmt.Errorf("--watch requires --sheet")
	}
	color, err := sheet.ParseColor(o.dividerColor)
	if err != nil {
		return cfg, fmt.Errorf("divider color: %w", err)
	}
	cfg.dividerColor = color
	return cfg, nil
}

// checkEnvironmentVariables fills flags that were not set on the command line
// from GRIDVIEW_* environment variables.
func checkEnvironmentVariables(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var errs []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		name := strings.ReplaceAll(f.Name, "-", "_")
		if f.Changed || !v.IsSet(name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(name))); err != nil {
			errs = append(errs, err.Error())
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("error mapping environment variables to flags: %s", strings.Join(errs, "; "))
	}
	return nil
}
