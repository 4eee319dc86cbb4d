// Package language defines the fixed set of summary languages, their display
// names and the localized text blocks shown to the user.
package language
