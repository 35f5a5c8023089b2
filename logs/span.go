package logs

type Span string

type spanKey struct{}

// SpanKey is the context key holding the current Span.
var SpanKey = spanKey{}
