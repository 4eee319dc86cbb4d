// Package controller sequences summary and translation requests for one
// video at a time and keeps the derived state (summary, translation,
// flashcards, embed URL) consistent while responses arrive out of order.
//
// Every outbound request is tagged with a generation token. A response whose
// token is no longer current is dropped, so a newer submit or language change
// always wins regardless of network completion order.
package controller
