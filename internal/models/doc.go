// Package models lists the OpenAI chat models that can back summarization
// and translation, so users can pick values for summary.openai_model and
// translation.openai_model.
package models
