// Package currencyfield is a Bubble Tea currency input. It renders a single
// amount field whose buffer is reformatted on every keystroke through the
// binding controller, so the on-screen text always carries thousand grouping
// and a fixed decimal length while the form-state provider holds the parsed
// number. Enter validates and, when a submit action is configured, runs it
// with a spinner until the action reports back.
package currencyfield
