// Package amount implements the currency text formatting and parsing pair
// behind the currency input widget.
//
// Format turns an arbitrary raw keystroke buffer, or a numeric value, into a
// canonical display string: integer digits grouped in threes by the thousand
// separator, followed by the decimal separator and a fixed number of
// fractional digits. Parse strips the grouping back out and yields a numeric
// string suitable for strconv.ParseFloat. Both functions are pure; malformed
// input degrades to the formatted zero value instead of raising an error,
// while ParseNumber exposes the invalid path as a typed Result for callers
// that need to distinguish it.
package amount
