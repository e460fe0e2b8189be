package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeInput(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestRunReportsPolynomials(t *testing.T) {
	dir := writeInput(t, map[string]string{"pairs.txt": "(0,1) text (1,2)"})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-dir", dir, "-log-level", "error"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{"=== Results ===", "File: pairs.txt", "P_x(i) = x", "P_y(i) = 1 + x"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "lagrange_polynomials_mod27.txt")); !os.IsNotExist(err) {
		t.Error("report should not be saved without -save")
	}
}

func TestRunSave(t *testing.T) {
	dir := writeInput(t, map[string]string{"pairs.txt": "(5,9)"})

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-dir", dir, "-save", "-log-level", "error"}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "lagrange_polynomials_mod27.txt"))
	if err != nil {
		t.Fatalf("saved report: %v", err)
	}
	if !strings.Contains(string(data), "P_y(i) = 9") {
		t.Errorf("saved report missing polynomial:\n%s", data)
	}
}

func TestRunInteractive(t *testing.T) {
	dir := writeInput(t, map[string]string{"pairs.txt": "(0,1)(9,9)(1,2)(9,9)(2,3)(9,9)"})
	input := strings.Join([]string{dir, "y", "3", "y"}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-interactive", "-log-level", "error"}, strings.NewReader(input), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Lagrange Polynomial Calculator for X and Y Values (mod 27)",
		"Used 3 sampled pairs for polynomial calculation",
		"P_x(i) = x",
		"Results saved to: ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunInteractiveInvalidSample(t *testing.T) {
	dir := writeInput(t, map[string]string{"pairs.txt": "(0,1)(1,2)"})
	input := strings.Join([]string{dir, "y", "many", "n"}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"-interactive"}, strings.NewReader(input), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Invalid input. Using all points.") {
		t.Errorf("expected invalid sample notice:\n%s", stdout.String())
	}
	if strings.Contains(stdout.String(), "Results saved to") {
		t.Error("answering n must not save")
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"missing dir", []string{}, 1},
		{"not a directory", []string{"-dir", filepath.Join(t.TempDir(), "nope")}, 1},
		{"invalid modulus", []string{"-dir", t.TempDir(), "-modulus", "1"}, 1},
		{"no files", []string{"-dir", t.TempDir()}, 1},
		{"bad flag", []string{"-bogus"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := run(context.Background(), tt.args, strings.NewReader(""), &stdout, &stderr); got != tt.want {
				t.Errorf("run(%v) = %d, expected %d", tt.args, got, tt.want)
			}
		})
	}
}
