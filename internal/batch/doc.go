// Package batch reads batch files listing videos to summarize, one per line,
// each optionally followed by " = <language>".
package batch
