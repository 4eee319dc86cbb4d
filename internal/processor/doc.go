// Package processor drives vidrecall without the window. It runs the
// orchestration controller for single videos and batch files, prints the
// results, writes summary documents and Anki decks, and assembles the
// summarization service for `vidrecall serve`.
package processor
