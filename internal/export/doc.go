// Package export renders a titled summary to a document on disk.
//
// Every renderer writes a file named "summary.<ext>" in its output directory,
// replacing any earlier export.
package export
