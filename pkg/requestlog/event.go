package requestlog

import "time"

// EventKind discriminates the variants of a CompletionEvent.
type EventKind int8

const (
	// KindSuccess is a request that completed successfully.
	KindSuccess EventKind = iota
	// KindError is a request that completed with an error.
	KindError
	// KindNodeSuccess is a successful attempt against a single node.
	KindNodeSuccess
	// KindNodeError is a failed attempt against a single node.
	KindNodeError
)

// String returns the name of the event kind.
func (k EventKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindNodeSuccess:
		return "node_success"
	case KindNodeError:
		return "node_error"
	default:
		return "unknown"
	}
}

// Request exposes the textual description of a completed request.
type Request interface {
	// Query returns the query text.
	Query() string

	// Values returns the rendered bound parameter values, in order.
	Values() []string
}

// Node exposes the identity of the node a request was routed to.
type Node interface {
	// Address returns a renderable node address.
	Address() string
}

// CompletionEvent is the notification that a single request finished.
// Kind selects the variant; Err is set only for the error kinds, and Node
// may be nil when the request never reached a node.
type CompletionEvent struct {
	Kind    EventKind
	Request Request
	Node    Node
	Latency time.Duration
	Err     error
}

// Success builds a completion event for a successful request.
func Success(request Request, node Node, latency time.Duration) CompletionEvent {
	return CompletionEvent{Kind: KindSuccess, Request: request, Node: node, Latency: latency}
}

// Error builds a completion event for a failed request.
func Error(request Request, node Node, latency time.Duration, err error) CompletionEvent {
	return CompletionEvent{Kind: KindError, Request: request, Node: node, Latency: latency, Err: err}
}

// NodeSuccess builds a completion event for a successful per-node attempt.
func NodeSuccess(request Request, node Node, latency time.Duration) CompletionEvent {
	return CompletionEvent{Kind: KindNodeSuccess, Request: request, Node: node, Latency: latency}
}

// NodeError builds a completion event for a failed per-node attempt.
func NodeError(request Request, node Node, latency time.Duration, err error) CompletionEvent {
	return CompletionEvent{Kind: KindNodeError, Request: request, Node: node, Latency: latency, Err: err}
}
