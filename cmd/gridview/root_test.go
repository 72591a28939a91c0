package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestOptionsConfig(t *testing.T) {
	valid := options{rows: 20, cols: 15, dividerWidth: 1, dividerColor: "lightgray", logLevel: "info"}

	tests := map[string]struct {
		modify  func(o *options)
		wantErr string
	}{
		"defaults":             {modify: func(o *options) {}},
		"hex color":            {modify: func(o *options) { o.dividerColor = "#336699" }},
		"watch with a sheet":   {modify: func(o *options) { o.watch, o.sheetPath = true, "sheet.yaml" }},
		"watch without sheet":  {modify: func(o *options) { o.watch = true }, wantErr: "--watch requires --sheet"},
		"negative rows":        {modify: func(o *options) { o.rows = -1 }, wantErr: "invalid sheet size"},
		"negative divider":     {modify: func(o *options) { o.dividerWidth = -2 }, wantErr: "invalid divider width"},
		"unknown color":        {modify: func(o *options) { o.dividerColor = "sparkly" }, wantErr: "divider color"},
		"empty sheet":          {modify: func(o *options) { o.rows, o.cols = 0, 0 }},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := valid
			tt.modify(&o)
			_, err := o.config()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Errorf("config() = %v, want no error", err)
			case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
				t.Errorf("config() = %v, want an error containing %q", err, tt.wantErr)
			}
		})
	}

	cfg, err := valid.config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.dividerColor != tcell.ColorLightGray {
		t.Errorf("dividerColor = %v, want light gray", cfg.dividerColor)
	}
}

func TestCheckEnvironmentVariables(t *testing.T) {
	t.Setenv("GRIDVIEW_DIVIDER_WIDTH", "2")
	t.Setenv("GRIDVIEW_ROWS", "99")
	t.Setenv("GRIDVIEW_WATCH", "true")

	cmd := newRootCommand()
	if err := cmd.Flags().Parse([]string{"--rows", "5"}); err != nil {
		t.Fatal(err)
	}
	if err := checkEnvironmentVariables(cmd); err != nil {
		t.Fatalf("checkEnvironmentVariables() = %v", err)
	}

	flags := cmd.Flags()
	if got, _ := flags.GetInt("divider-width"); got != 2 {
		t.Errorf("divider-width = %d, want 2 from the environment", got)
	}
	if got, _ := flags.GetInt("rows"); got != 5 {
		t.Errorf("rows = %d, want the flag value 5", got)
	}
	if got, _ := flags.GetBool("watch"); !got {
		t.Error("watch was not set from the environment")
	}
	if got, _ := flags.GetString("log-level"); got != "info" {
		t.Errorf("log-level = %q, want the default", got)
	}
}

func TestCheckEnvironmentVariablesInvalid(t *testing.T) {
	t.Setenv("GRIDVIEW_COLS", "many")

	cmd := newRootCommand()
	if err := cmd.Flags().Parse(nil); err != nil {
		t.Fatal(err)
	}
	err := checkEnvironmentVariables(cmd)
	if err == nil || !strings.Contains(err.Error(), "error mapping environment variables") {
		t.Errorf("checkEnvironmentVariables() = %v, want a mapping error", err)
	}
}
