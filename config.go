package splithash

import (
	"fmt"

	"github.com/casbin/govaluate"
)

// Default values for the two canonicalization knobs, used whenever an
// Options value doesn't override them.
const (
	DefaultMaxChunkHeight  = 5
	DefaultFringeScanWidth = 5
)

// Sentinel errors for config resolution, in the teacher's sszutils style:
// a package-level var per failure shape, wrapped with %w at the call site
// so callers can errors.Is against the shape without parsing message text.
var (
	ErrInvalidConfigExpression    = fmt.Errorf("invalid config expression")
	ErrConfigExpressionEval       = fmt.Errorf("config expression evaluation failed")
	ErrConfigExpressionNotNumeric = fmt.Errorf("config expression did not evaluate to a number")
	ErrUnsupportedConfigValue     = fmt.Errorf("unsupported config value type")
)

// LogFunc is an optional diagnostic sink. It is never called unless an
// Options value supplies one.
type LogFunc func(format string, args ...any)

// Options configures a single Engine's canonicalization thresholds and
// diagnostics. The zero value uses the package defaults.
type Options struct {
	// MaxChunkHeight and FringeScanWidth may each be given as a literal int
	// or as a string expression evaluated against Vars (mirrors the
	// teacher's spec-value resolution for SSZ preset constants).
	MaxChunkHeight  any
	FringeScanWidth any
	Vars            map[string]any
	LogCb           LogFunc
}

// Engine is a configured SplitHash instance. A nil *Engine and the Engine
// returned by NewEngine(nil) use the package-level defaults; the zero Engine
// value does not (both of its thresholds are 0). Options only need to be
// supplied when an embedder wants different thresholds.
type Engine struct {
	maxChunkHeight  int
	fringeScanWidth int
	logCb           LogFunc
}

// NewEngine resolves opts (or the package defaults when opts is nil) into a
// ready-to-use Engine.
func NewEngine(opts *Options) (*Engine, error) {
	e := &Engine{
		maxChunkHeight:  DefaultMaxChunkHeight,
		fringeScanWidth: DefaultFringeScanWidth,
	}
	if opts == nil {
		return e, nil
	}
	e.logCb = opts.LogCb
	if opts.MaxChunkHeight != nil {
		v, err := resolveConfigValue(opts.MaxChunkHeight, opts.Vars)
		if err != nil {
			return nil, fmt.Errorf("splithash: resolving MaxChunkHeight: %w", err)
		}
		e.maxChunkHeight = v
	}
	if opts.FringeScanWidth != nil {
		v, err := resolveConfigValue(opts.FringeScanWidth, opts.Vars)
		if err != nil {
			return nil, fmt.Errorf("splithash: resolving FringeScanWidth: %w", err)
		}
		e.fringeScanWidth = v
	}
	return e, nil
}

// resolveConfigValue accepts either an int-like literal or a govaluate
// expression string evaluated against vars, rounding fractional results up —
// the same contract as the teacher's specvals.ResolveSpecValue.
func resolveConfigValue(raw any, vars map[string]any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		expr, err := govaluate.NewEvaluableExpression(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidConfigExpression, v, err)
		}
		params := vars
		if params == nil {
			params = map[string]any{}
		}
		result, err := expr.Evaluate(params)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrConfigExpressionEval, v, err)
		}
		switch n := result.(type) {
		case float64:
			i := int(n)
			if float64(i) < n {
				i++
			}
			return i, nil
		default:
			return 0, fmt.Errorf("%w: %q evaluated to %T", ErrConfigExpressionNotNumeric, v, result)
		}
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedConfigValue, raw)
	}
}

func (e *Engine) logf(format string, args ...any) {
	if e != nil && e.logCb != nil {
		e.logCb(format, args...)
	}
}

// maxChunk and scanWidth let internal helpers treat a nil *Engine (the
// common case for the package-level Concat/Split/Chunk functions) as
// "use the defaults" without a nil check at every call site.
func (e *Engine) maxChunk() int {
	if e == nil {
		return DefaultMaxChunkHeight
	}
	return e.maxChunkHeight
}

func (e *Engine) scanWidth() int {
	if e == nil {
		return DefaultFringeScanWidth
	}
	return e.fringeScanWidth
}
