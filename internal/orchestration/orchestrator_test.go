package orchestration

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"lukechampine.com/uint128"

	apperrors "github.com/LeeHyunWon999/multi-thread/internal/errors"
	"github.com/LeeHyunWon999/multi-thread/internal/metrics"
	"github.com/LeeHyunWon999/multi-thread/internal/progress"
	"github.com/LeeHyunWon999/multi-thread/internal/summation"
	"github.com/LeeHyunWon999/multi-thread/internal/summation/mocks"
)

// recordingPresenter records every presentation call in order.
type recordingPresenter struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPresenter) record(event string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPresenter) PresentSeparator(io.Writer) { p.record("sep") }
func (p *recordingPresenter) PresentLabel(name string, _ io.Writer) { p.record("label:" + name) }
func (p *recordingPresenter) PresentResult(r RunResult, _ io.Writer) {
	p.record(fmt.Sprintf("result:%s#%d", r.Name, r.Run))
}
func (p *recordingPresenter) PresentComparisonTable([]RunResult, uint128.Uint128, io.Writer) {
	p.record("table")
}

func newMockStrategy(ctrl *gomock.Controller, name string, workers int) *mocks.MockStrategy {
	m := mocks.NewMockStrategy(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().Workers().Return(workers).AnyTimes()
	return m
}

func TestExecuteStrategies_SequentialOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	a := newMockStrategy(ctrl, "a", 1)
	b := newMockStrategy(ctrl, "b", 4)
	a.EXPECT().Sum(gomock.Any(), gomock.Any()).Return(uint128.From64(10), nil).Times(2)
	b.EXPECT().Sum(gomock.Any(), gomock.Any()).Return(uint128.From64(20), nil).Times(2)

	presenter := &recordingPresenter{}
	results, err := ExecuteStrategies(context.Background(), []summation.Strategy{a, b},
		Options{Repeat: 2}, NullProgressReporter{}, presenter, io.Discard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"label:a", "result:a#1", "sep",
		"label:a", "result:a#2", "sep",
		"label:b", "result:b#1", "sep",
		"label:b", "result:b#2",
	}
	if !reflect.DeepEqual(presenter.events, want) {
		t.Errorf("events = %v, want %v", presenter.events, want)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	if results[3].Name != "b" || results[3].Workers != 4 || results[3].Run != 2 {
		t.Errorf("unexpected last result: %+v", results[3])
	}
	if !results[2].Sum.Equals64(20) {
		t.Errorf("sum = %s, want 20", results[2].Sum)
	}
}

func TestExecuteStrategies_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	failing := newMockStrategy(ctrl, "failing", 8)
	never := newMockStrategy(ctrl, "never", 1)
	failing.EXPECT().Sum(gomock.Any(), gomock.Any()).
		Return(uint128.From64(99), apperrors.WorkerError{Strategy: "failing", Worker: 3, Panic: "boom"})
	never.EXPECT().Sum(gomock.Any(), gomock.Any()).Times(0)

	presenter := &recordingPresenter{}
	results, err := ExecuteStrategies(context.Background(), []summation.Strategy{failing, never},
		Options{}, NullProgressReporter{}, presenter, io.Discard)

	if got := apperrors.ExitCodeFor(err); got != apperrors.ExitErrorWorker {
		t.Fatalf("exit code = %d, want %d (err %v)", got, apperrors.ExitErrorWorker, err)
	}
	if !strings.Contains(err.Error(), "failing (run 1)") {
		t.Errorf("error should name the run, got %v", err)
	}
	if len(results) != 1 || results[0].Err == nil || !results[0].Sum.IsZero() {
		t.Errorf("unexpected results: %+v", results)
	}
	if want := []string{"label:failing"}; !reflect.DeepEqual(presenter.events, want) {
		t.Errorf("events = %v, want %v", presenter.events, want)
	}
}

func TestExecuteStrategies_ForwardsProgress(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	s := newMockStrategy(ctrl, "reporting", 2)
	s.EXPECT().Sum(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, report progress.ProgressCallback) (uint128.Uint128, error) {
			report(0, 1)
			report(1, 1)
			return uint128.From64(1), nil
		})

	var (
		gotWorkers int
		updates    int
	)
	reporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan progress.ProgressUpdate, n int, _ io.Writer) {
		defer wg.Done()
		gotWorkers = n
		for range ch {
			updates++
		}
	})

	if _, err := ExecuteStrategies(context.Background(), []summation.Strategy{s},
		Options{}, reporter, &recordingPresenter{}, io.Discard); err != nil {
		t.Fatal(err)
	}
	if gotWorkers != 2 {
		t.Errorf("reporter saw %d workers, want 2", gotWorkers)
	}
	if updates != 2 {
		t.Errorf("reporter received %d updates, want 2", updates)
	}
}

func TestExecuteStrategies_DefaultOrder(t *testing.T) {
	t.Parallel()
	registry := summation.NewDefaultRegistry()
	strategies, err := GetStrategiesToRun(AlgoAll, registry)
	if err != nil {
		t.Fatal(err)
	}

	recorder := metrics.NewRecorder()
	presenter := &recordingPresenter{}
	results, err := ExecuteStrategies(context.Background(), strategies,
		Options{Metrics: recorder}, NullProgressReporter{}, presenter, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	for i, res := range results {
		if res.Name != summation.DefaultOrder[i] {
			t.Errorf("result %d is %s, want %s", i, res.Name, summation.DefaultOrder[i])
		}
		if !res.Sum.Equals(summation.ExpectedSum) {
			t.Errorf("%s = %s, want %s", res.Name, res.Sum, summation.ExpectedSum)
		}
		if res.Duration <= 0 {
			t.Errorf("%s: non-positive duration %v", res.Name, res.Duration)
		}
	}

	var errOut bytes.Buffer
	if code := AnalyzeComparisonResults(results, summation.ExpectedSum, Options{}, presenter, io.Discard, &errOut); code != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want 0 (%s)", code, errOut.String())
	}

	families, err := recorder.Gatherer().Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "multithread_runs_total" {
			found = true
			if n := len(mf.GetMetric()); n != len(summation.DefaultOrder) {
				t.Errorf("runs_total has %d series, want %d", n, len(summation.DefaultOrder))
			}
		}
	}
	if !found {
		t.Error("multithread_runs_total not gathered")
	}
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	expected := summation.ExpectedSum
	ok := func(name string) RunResult {
		return RunResult{Name: name, Run: 1, Sum: expected, Duration: time.Millisecond}
	}

	tests := []struct {
		name       string
		results    []RunResult
		details    bool
		wantCode   int
		wantErrOut string
		wantEvents []string
	}{
		{
			name:     "all match",
			results:  []RunResult{ok("sequential"), ok("partition4")},
			wantCode: apperrors.ExitSuccess,
		},
		{
			name:       "details prints table",
			results:    []RunResult{ok("sequential")},
			details:    true,
			wantCode:   apperrors.ExitSuccess,
			wantEvents: []string{"table"},
		},
		{
			name: "mismatch",
			results: []RunResult{
				ok("sequential"),
				{Name: "partition8", Run: 1, Sum: expected.Sub64(5_000_000)},
			},
			wantCode:   apperrors.ExitErrorMismatch,
			wantErrOut: "partition8 (run 1) returned " + expected.Sub64(5_000_000).String(),
		},
		{
			name: "poisoned run",
			results: []RunResult{
				{Name: "mutex8", Err: apperrors.PoisonedLockError{Resource: "acc", Cause: summation.ErrPoisoned}},
			},
			wantCode: apperrors.ExitErrorPoisoned,
		},
		{
			name:     "generic failure",
			results:  []RunResult{{Name: "x", Err: errors.New("fail")}},
			wantCode: apperrors.ExitErrorGeneric,
		},
		{
			name:       "no runs",
			wantCode:   apperrors.ExitErrorGeneric,
			wantErrOut: "no strategy was executed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			presenter := &recordingPresenter{}
			var errOut bytes.Buffer
			code := AnalyzeComparisonResults(tt.results, expected, Options{Details: tt.details}, presenter, io.Discard, &errOut)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantErrOut != "" && !strings.Contains(errOut.String(), tt.wantErrOut) {
				t.Errorf("errOut = %q, want it to contain %q", errOut.String(), tt.wantErrOut)
			}
			if !reflect.DeepEqual(presenter.events, tt.wantEvents) {
				t.Errorf("events = %v, want %v", presenter.events, tt.wantEvents)
			}
		})
	}
}
