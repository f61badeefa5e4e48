package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"lukechampine.com/uint128"

	"github.com/LeeHyunWon999/multi-thread/internal/orchestration"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
	"github.com/LeeHyunWon999/multi-thread/internal/ui"
)

func presentRuns(p CLIResultPresenter, results []orchestration.RunResult) string {
	var buf bytes.Buffer
	for i, res := range results {
		if i > 0 {
			p.PresentSeparator(&buf)
		}
		p.PresentLabel(res.Name, &buf)
		p.PresentResult(res, &buf)
	}
	return buf.String()
}

func sampleRuns() []orchestration.RunResult {
	return []orchestration.RunResult{
		{Name: summation.NameSequential, Workers: 1, Run: 1, Sum: summation.ExpectedSum, Duration: 12*time.Millisecond + 400*time.Microsecond},
		{Name: summation.NameMutex8, Workers: 8, Run: 1, Sum: summation.ExpectedSum, Duration: 3 * time.Millisecond},
	}
}

func TestCLIResultPresenter_Korean(t *testing.T) {
	t.Parallel()
	got := presentRuns(NewCLIResultPresenter(LangKorean, false), sampleRuns())
	want := "100만부터 500만까지 싱글스레드로 덧셈합니다.\n" +
		"연산완료 : 12000003000000\n" +
		"걸린시간 : 12ms\n" +
		"\n" +
		"100만부터 500만까지 8개의 멀티스레드와 뮤텍스로 덧셈합니다.\n" +
		"연산완료 : 12000003000000\n" +
		"걸린시간 : 3ms\n"
	if got != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestCLIResultPresenter_English(t *testing.T) {
	t.Parallel()
	got := presentRuns(NewCLIResultPresenter(LangEnglish, false), sampleRuns()[:1])
	want := "Summing 1M through 5M on a single thread.\nSum : 12000003000000\nElapsed : 12ms\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCLIResultPresenter_Quiet(t *testing.T) {
	t.Parallel()
	got := presentRuns(NewCLIResultPresenter(LangKorean, true), sampleRuns())
	if want := "12000003000000\n12000003000000\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		lang, name, want string
	}{
		{LangKorean, summation.NamePartition4, "100만부터 500만까지 4개의 멀티스레드로 덧셈합니다."},
		{LangKorean, summation.NamePartition8, "100만부터 500만까지 8개의 멀티스레드로 덧셈합니다."},
		{LangKorean, summation.NameChannel8, "100만부터 500만까지 8개의 멀티스레드와 채널로 덧셈합니다."},
		{LangEnglish, summation.NameMutex8, "Summing 1M through 5M with 8 threads and a mutex."},
		{"fr", summation.NameSequential, "100만부터 500만까지 싱글스레드로 덧셈합니다."},
		{LangEnglish, "custom", "custom"},
	}
	for _, tt := range tests {
		if got := LabelsFor(tt.lang).Label(tt.name); got != tt.want {
			t.Errorf("LabelsFor(%q).Label(%q) = %q, want %q", tt.lang, tt.name, got, tt.want)
		}
	}
	if !SupportedLang("ko") || !SupportedLang("en") || SupportedLang("fr") {
		t.Error("SupportedLang mismatch")
	}
}

// TestPresentComparisonTable switches the global theme, so it is not parallel.
func TestPresentComparisonTable(t *testing.T) {
	defer ui.SetCurrentTheme(ui.GetCurrentTheme())
	ui.SetCurrentTheme(ui.NoColorTheme)

	results := append(sampleRuns(),
		orchestration.RunResult{Name: summation.NamePartition8, Workers: 8, Run: 1, Sum: uint128.From64(7), Duration: time.Millisecond},
		orchestration.RunResult{Name: summation.NameChannel8, Workers: 8, Run: 1, Err: errors.New("worker 2 panicked")},
	)

	var buf bytes.Buffer
	NewCLIResultPresenter(LangKorean, false).PresentComparisonTable(results, summation.ExpectedSum, &buf)
	out := buf.String()

	for _, want := range []string{
		"--- Comparison Summary ---",
		"Strategy", "Speedup", "Status",
		"mutex8", "4.13x", "OK",
		"MISMATCH (7)",
		"FAILED (worker 2 panicked)",
		"Expected: 12000003000000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table should contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("table should be plain without colors")
	}
}
