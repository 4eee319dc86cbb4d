// Package translation turns source-language summaries into the supported
// target languages. LLM translation goes through the OpenAI API, or any
// completion model such as Gemini; Braille is transliterated locally. A concurrency-safe cache sits in front of both
// for the summarization service.
package translation
