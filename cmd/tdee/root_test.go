package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runTDEE(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	weight, activityLevel, bodyFat = 0, "", 0
	for _, name := range []string{"weight", "activity-level", "body-fat"} {
		flag := rootCmd.Flags().Lookup(name)
		if flag == nil {
			t.Fatalf("flag %s not registered", name)
		}
		flag.Changed = false
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestDirectMode(t *testing.T) {
	stdout, stderr, err := runTDEE(t, "--weight", "80", "--activity-level", "moderate", "--body-fat", "20")
	if err != nil {
		t.Fatalf("run tdee: %v", err)
	}
	if strings.TrimSpace(stdout) != "2716.22" {
		t.Fatalf("expected TDEE 2716.22 on stdout, got %q", stdout)
	}
	if !strings.Contains(stderr, "BMR of 1752.40") {
		t.Fatalf("expected BMR diagnostic on stderr, got %q", stderr)
	}
}

func TestDirectModeMissingOptions(t *testing.T) {
	_, _, err := runTDEE(t, "--weight", "80")
	if err == nil {
		t.Fatalf("expected error for missing options")
	}
	for _, name := range []string{"--activity-level", "--body-fat"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected error to name %s, got %v", name, err)
		}
	}
	if strings.Contains(err.Error(), "--weight") {
		t.Fatalf("error should not name the provided option: %v", err)
	}
}

func TestDirectModeInvalidActivityLevel(t *testing.T) {
	_, _, err := runTDEE(t, "--weight", "80", "--activity-level", "extreme", "--body-fat", "20")
	if err == nil || !strings.Contains(err.Error(), "extreme") {
		t.Fatalf("expected error naming the invalid level, got %v", err)
	}
}

func TestFileMode(t *testing.T) {
	var log strings.Builder
	log.WriteString("date, kcal, kg\n")
	for day := 1; day <= 15; day++ {
		fmt.Fprintf(&log, "2024-03-%02d, 2000, 80\n", day)
	}
	path := filepath.Join(t.TempDir(), "log.csv")
	if err := os.WriteFile(path, []byte(log.String()), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	stdout, stderr, err := runTDEE(t, path)
	if err != nil {
		t.Fatalf("run tdee: %v", err)
	}
	if strings.TrimSpace(stdout) != "2024-03-15,2000.00" {
		t.Fatalf("expected one date,tdee line, got %q", stdout)
	}
	if !strings.Contains(stderr, "as of 2024-03-15") {
		t.Fatalf("expected summary on stderr, got %q", stderr)
	}
}

func TestFileModeUnknownFile(t *testing.T) {
	_, _, err := runTDEE(t, filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil || !strings.Contains(err.Error(), "unknown file") {
		t.Fatalf("expected unknown file error, got %v", err)
	}
}

func TestFileModeTooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	contents := "date, kcal, kg\n2024-03-01, 2000, 80\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, _, err := runTDEE(t, path)
	if err == nil || !strings.Contains(err.Error(), "at least 15 days") {
		t.Fatalf("expected minimum-days error, got %v", err)
	}
}
