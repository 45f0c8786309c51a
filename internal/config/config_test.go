package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/ukaji3/tablecalc-go/pkg/tablecalc"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != FormatCSV {
		t.Errorf("format = %q, want csv", cfg.Format)
	}
	if cfg.CycleCheck != string(tablecalc.CycleCheckRevisit) {
		t.Errorf("cycle-check = %q, want revisit", cfg.CycleCheck)
	}
	if level, _ := cfg.Level(); level != slog.LevelWarn {
		t.Errorf("level = %v, want warn", level)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablecalc.yaml")
	content := "format: json\npretty: true\ncycle-check: path\nstrict: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != FormatJSON || !cfg.Pretty || !cfg.Strict {
		t.Errorf("unexpected config %+v", cfg)
	}

	opts := cfg.Options()
	if opts.CycleCheck != tablecalc.CycleCheckPath || !opts.StrictFormulas {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tablecalc.yaml")
	if err := os.WriteFile(path, []byte("cycle-check: path\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TABLECALC_CYCLE_CHECK", "revisit")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CycleCheck != "revisit" {
		t.Errorf("cycle-check = %q, want env value revisit", cfg.CycleCheck)
	}
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TABLECALC_FORMAT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "csv", "")
	flags.String("output", "", "")
	if err := flags.Parse([]string{"--format", "xlsx", "--output", "out.xlsx"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Format != FormatXLSX || cfg.Output != "out.xlsx" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string // substring of the error, empty for success
	}{
		{"ok", Config{Format: "csv", CycleCheck: "revisit", LogLevel: "info"}, ""},
		{"bad format", Config{Format: "xml", CycleCheck: "revisit", LogLevel: "info"}, "invalid format"},
		{"xlsx without output", Config{Format: "xlsx", CycleCheck: "revisit", LogLevel: "info"}, "requires an output"},
		{"bad cycle check", Config{Format: "csv", CycleCheck: "dfs", LogLevel: "info"}, "invalid cycle check"},
		{"bad level", Config{Format: "csv", CycleCheck: "path", LogLevel: "loud"}, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want substring %q", err, tt.want)
			}
		})
	}
}
