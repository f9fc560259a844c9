// Package format names the output formats of the snail command and
// marshals reports into the structured ones.
package format
