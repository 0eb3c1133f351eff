// Package tui is the interactive terminal version of the bedtime form:
// a wake-time picker, a sleep stepper and a coffee picker above the
// recommended bedtime, which is recalculated on every keypress that
// changes a value.
package tui
