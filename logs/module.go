package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one unit of work in the logs. The interpreter opens
// one span per program run.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
