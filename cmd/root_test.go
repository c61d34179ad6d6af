package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/sampledata/internal/config"
	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sampledata.config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestPureCommandWritesFiles(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	out := filepath.Join(dir, "pure_out")
	cfgPath := writeConfig(t, dir, `{"output_dir": "`+filepath.ToSlash(out)+`", "seed": 3, "counts": {"customers": 10, "fx_days": 2}}`)

	root := newRootCmd(config.Pure)
	root.SetArgs([]string{"--config", cfgPath})
	root.SetOut(io.Discard)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, file := range []string{"customer.csv", "account.csv", "transaction.csv", "daily_balance.csv", "fx_rate.csv", "manifest.yaml"} {
		if _, err := os.Stat(filepath.Join(out, file)); err != nil {
			t.Errorf("Expected %s to be written: %v", file, err)
		}
	}
}

func TestSampleCommandMissingConfigFile(t *testing.T) {
	viper.Reset()

	root := newRootCmd(config.Sample)
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.json")})
	root.SetOut(io.Discard)

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("Expected a config read error, got %v", err)
	}
}

func TestCommandRejectsArguments(t *testing.T) {
	viper.Reset()

	root := newRootCmd(config.Sample)
	root.SetArgs([]string{"extra"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("Expected positional arguments to be rejected")
	}
}

func TestVersionFlag(t *testing.T) {
	viper.Reset()

	var buf bytes.Buffer
	root := newRootCmd(config.Pure)
	root.SetArgs([]string{"--version"})
	root.SetOut(&buf)

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(buf.String(), "puredata version "+Version) {
		t.Errorf("Unexpected version output %q", buf.String())
	}
}

func TestInvalidConfigIsRejected(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	cfgPath := writeConfig(t, dir, `{"output_dir": "`+filepath.ToSlash(filepath.Join(dir, "out"))+`", "reference_date": "NOT_A_DATE"}`)

	root := newRootCmd(config.Sample)
	root.SetArgs([]string{"--config", cfgPath})
	root.SetOut(io.Discard)

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("Expected an invalid config error, got %v", err)
	}
}
