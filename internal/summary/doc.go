// Package summary implements the summarization side of the backend: a video
// is transcribed, the transcript is cut into fixed-size chunks, and every
// chunk is summarized by a language model. The chunk summaries joined in
// order form the final summary.
package summary
