// Package videoid extracts YouTube video identifiers from loosely formatted
// links and builds the canonical watch and embed URLs for them.
package videoid
