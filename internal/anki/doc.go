// Package anki exports flashcard decks as Anki CSV import files or as
// ready-to-import .apkg packages.
package anki
