package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements Filter using the expr language
type exprFilter struct {
	expression  string
	program     *vm.Program
	helperFuncs map[string]any
}

// Option configures the expression compiler
type Option func(*compiler)

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) Option {
	return func(c *compiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

type compiler struct {
	helperFuncs map[string]any
}

// Compile compiles an expression into an executable filter
func Compile(expression string, opts ...Option) (Filter, error) {
	c := &compiler{helperFuncs: createHelperFunctions()}
	for _, opt := range opts {
		opt(c)
	}

	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	// Item fields are resolved at run time
	program, err := expr.Compile(expression,
		expr.Env(c.helperFuncs),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &exprFilter{
		expression:  expression,
		program:     program,
		helperFuncs: c.helperFuncs,
	}, nil
}

// Evaluate runs the compiled program against an item
func (f *exprFilter) Evaluate(item Item) (bool, error) {
	result, err := expr.Run(f.program, f.environment(item))
	if err != nil {
		return false, err
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

func (f *exprFilter) environment(item Item) map[string]any {
	env := make(map[string]any, len(f.helperFuncs)+24)
	maps.Copy(env, f.helperFuncs)

	env["Item"] = item
	env["Kind"] = item.Kind
	env["Title"] = item.Title
	env["Year"] = item.Year
	env["Slug"] = item.Slug
	env["IMDB"] = item.IMDB
	env["TMDB"] = item.TMDB
	env["Trakt"] = item.Trakt
	env["Watchers"] = item.Watchers
	env["UserCount"] = item.UserCount
	env["PlayCount"] = item.PlayCount
	env["WatcherCount"] = item.WatcherCount
	env["CollectedCount"] = item.CollectedCount
	env["CollectorCount"] = item.CollectorCount
	env["ListCount"] = item.ListCount
	env["Revenue"] = item.Revenue
	env["Plays"] = item.Plays
	env["UpdatedAt"] = item.UpdatedAt
	env["LastWatchedAt"] = item.LastWatchedAt

	env["isShow"] = func() bool { return item.Kind == KindShow }
	env["isMovie"] = func() bool { return item.Kind == KindMovie }

	return env
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)

	// Date helpers
	funcs["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	funcs["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	funcs["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	funcs["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	funcs["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}

	// Case-insensitive string helpers. contains, startsWith and endsWith are
	// operators in expr and lower, upper and now are builtins.
	funcs["containsFold"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	funcs["hasPrefixFold"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	funcs["hasSuffixFold"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}

	// Kind checks, rebound per item in environment
	funcs["isShow"] = func() bool { return false }
	funcs["isMovie"] = func() bool { return false }

	return funcs
}
