// Package naming provides shared string case conversion utilities.
package naming
