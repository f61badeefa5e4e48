// Package ui provides theme and color support for the benchmark's terminal
// output. It defines the ANSI color scheme used for labels and diagnostics and
// the lipgloss styles of the details table.
//
// Colors never reach the standard-output contract lines (labels, sums,
// elapsed times) unless a theme with colors is active, and InitTheme honors
// NO_COLOR.
package ui
