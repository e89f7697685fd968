package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cmdRoot()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPager_Arity(t *testing.T) {
	for _, args := range [][]string{{"pager"}, {"pager", "a.rs", "b.rs"}} {
		out, err := execute(t, args...)
		if err == nil {
			t.Fatalf("%v: want error", args)
		}
		if !strings.Contains(out, "Usage:") {
			t.Errorf("%v: usage not printed: %q", args, out)
		}
	}
}

func TestPager_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.rs")
	out, err := execute(t, "pager", missing)
	if err == nil || !strings.Contains(err.Error(), "open source") {
		t.Fatalf("err = %v, want open source error", err)
	}
	if !strings.Contains(out, "Usage:") {
		t.Errorf("usage not printed for an unreadable file: %q", out)
	}
}

func TestPager_BadFlags(t *testing.T) {
	src := filepath.Join(t.TempDir(), "main.rs")
	if err := os.WriteFile(src, []byte("fn main() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--backend", "curses", "pager", src}, `unknown backend "curses"`},
		{[]string{"--border", "wavy", "pager", src}, `unknown border style "wavy"`},
		{[]string{"--theme", filepath.Join(t.TempDir(), "none.toml"), "pager", src}, "no such file"},
		{[]string{"--log-with-shortfile", "pager", src}, "unknown flag: --log-with-shortfile"},
	}
	for _, tc := range tests {
		_, err := execute(t, tc.args...)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%v: err = %v, want %q", tc.args, err, tc.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cellpager.log")
	cmd := cmdRoot()
	if err := cmd.ParseFlags([]string{"--log-file", path, "--debug"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	logger, closeLog, err := newLogger(cmd)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("page break", "page", 2)
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "level=DEBUG") || !strings.Contains(string(data), "page=2") {
		t.Fatalf("log = %q", data)
	}
}
