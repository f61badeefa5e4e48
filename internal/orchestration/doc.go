// Package orchestration runs summation strategies one after another, measures
// each run and checks the results against the closed-form sum. It decouples
// the runs from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
