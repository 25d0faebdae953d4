// Package uigen turns a natural-language component description into
// component source text via a single chat call to an OpenAI-compatible
// or Ollama backend.
//
// A Generator is resolved once from Options and is immutable afterwards;
// concurrent dispatches from the same Generator are safe. Every dispatch
// sends exactly two messages: the fixed Preamble as the system message,
// then the flattened user prompt. The returned text is passed through
// unchanged, and backend failures propagate wrapped in *BackendError
// without retry, fallback, or logging.
package uigen
