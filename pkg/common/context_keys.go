package common

type contextKey string

const (
	TraceIdKey     contextKey = "trace_id"
	OperatorKey    contextKey = "operator"
	ClientAgentKey contextKey = "client_agent"
)
