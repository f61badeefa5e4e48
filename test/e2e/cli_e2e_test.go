package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/LeeHyunWon999/multi-thread/internal/summation"
)

// buildBinary compiles cmd/multithread into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binName := "multithread"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	// go test runs with the package directory as CWD.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/multithread")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build multithread: %v", err)
	}
	return binPath
}

var timeLine = regexp.MustCompile(`^걸린시간 : \d+ms$`)

// TestCLI_E2E_DefaultRun checks the standard-output contract of a plain run.
func TestCLI_E2E_DefaultRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	binPath := buildBinary(t)

	cmd := exec.Command(binPath)
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("run failed: %v\nstderr: %s", err, stderr.String())
	}

	blocks := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n\n")
	wantLabels := []string{
		"100만부터 500만까지 싱글스레드로 덧셈합니다.",
		"100만부터 500만까지 4개의 멀티스레드로 덧셈합니다.",
		"100만부터 500만까지 8개의 멀티스레드로 덧셈합니다.",
		"100만부터 500만까지 8개의 멀티스레드와 뮤텍스로 덧셈합니다.",
	}
	if len(blocks) != len(wantLabels) {
		t.Fatalf("got %d blocks, want %d:\n%s", len(blocks), len(wantLabels), stdout.String())
	}
	for i, block := range blocks {
		lines := strings.Split(block, "\n")
		if len(lines) != 3 {
			t.Fatalf("block %d: want 3 lines, got %q", i, block)
		}
		if lines[0] != wantLabels[i] {
			t.Errorf("block %d label = %q, want %q", i, lines[0], wantLabels[i])
		}
		if lines[1] != "연산완료 : "+summation.ExpectedSum.String() {
			t.Errorf("block %d sum line = %q", i, lines[1])
		}
		if !timeLine.MatchString(lines[2]) {
			t.Errorf("block %d time line = %q", i, lines[2])
		}
	}
}

// TestCLI_E2E verifies flags and exit codes of the built binary.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		env      []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "multithread",
			wantCode: 0,
		},
		{
			name:     "Quiet Channel Variant",
			args:     []string{"-q", "-algo", "channel8"},
			wantOut:  summation.ExpectedSum.String(),
			wantCode: 0,
		},
		{
			name:     "English Labels",
			args:     []string{"-lang", "en", "-algo", "mutex8"},
			wantOut:  "Sum : " + summation.ExpectedSum.String(),
			wantCode: 0,
		},
		{
			name:     "Env Override",
			env:      []string{"MULTITHREAD_ALGO=partition8", "MULTITHREAD_QUIET=1"},
			wantOut:  summation.ExpectedSum.String(),
			wantCode: 0,
		},
		{
			name:     "Details Table",
			args:     []string{"-d", "-repeat", "2"},
			wantOut:  "Comparison Summary",
			wantCode: 0,
		},
		{
			name:     "Invalid Flag",
			args:     []string{"-n", "10"},
			wantOut:  "flag provided but not defined",
			wantCode: 4,
		},
		{
			name:     "Unknown Strategy",
			args:     []string{"-algo", "partition16"},
			wantOut:  "unknown -algo",
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(append(os.Environ(), "NO_COLOR=1"), tt.env...)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("command did not run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}
			if !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
