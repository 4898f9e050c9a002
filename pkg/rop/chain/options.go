package chain

import "context"

type OptionKey string

const (
	CodeOptionKey  OptionKey = "code_options"
	TraceOptionKey OptionKey = "trace_options"
)

// CodePolicy decides what code a failure keeps when a step skips it.
type CodePolicy int

const (
	// ResetCode carries the hint only and resets the code to rop.CodeDefault,
	// the same as package solo.
	ResetCode CodePolicy = iota
	// PreserveCode carries both hint and code.
	PreserveCode
)

type CodeOptions struct {
	Policy CodePolicy
}

type TraceOptions struct {
	Enabled bool
}

func WithCodePolicy(ctx context.Context, policy CodePolicy) context.Context {
	return context.WithValue(ctx, CodeOptionKey, CodeOptions{Policy: policy})
}

func WithTrace(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, TraceOptionKey, TraceOptions{Enabled: enabled})
}

func GetCodePolicy(ctx context.Context, defaultPolicy CodePolicy) CodePolicy {
	options, ok := ctx.Value(CodeOptionKey).(CodeOptions)
	if ok {
		return options.Policy
	}
	return defaultPolicy
}

func IsTraceEnabled(ctx context.Context, defaultEnabled bool) bool {
	options, ok := ctx.Value(TraceOptionKey).(TraceOptions)
	if ok {
		return options.Enabled
	}
	return defaultEnabled
}
