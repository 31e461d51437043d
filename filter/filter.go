package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/reconcilarr/reconcilarr/overseerr"
)

// Filter is a compiled request filter expression.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter. The expression
// must evaluate to a boolean; helper functions and request properties are
// validated at compile time where possible.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(createHelperFunctions()),
		expr.AllowUndefinedVariables(), // Allow request properties
		expr.AsBool(),                  // Ensure boolean result
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Evaluate evaluates the filter against a request. A request whose
// evaluation errors is excluded.
func (f *Filter) Evaluate(req overseerr.Request) bool {
	env := createRuntimeEnvironment(req)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() option during compilation
	return result.(bool)
}

// Func adapts the filter to a plain predicate.
func (f *Filter) Func() func(overseerr.Request) bool {
	return f.Evaluate
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

func createRuntimeEnvironment(req overseerr.Request) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Request"] = req

	env["requestedBy"] = func(username string) bool {
		return strings.EqualFold(req.RequestedBy, username)
	}
	env["isMovie"] = func() bool { return req.MediaType.IsMovie() }
	env["isSeries"] = func() bool { return req.MediaType == overseerr.MediaTypeTV }
	env["hasTVDBID"] = func() bool { return req.HasTVDBID() }
	env["requestedAfter"] = func(date time.Time) bool {
		created := parseRequestDate(req.CreatedAt)
		return !created.IsZero() && created.After(date)
	}
	env["requestedBefore"] = func(date time.Time) bool {
		created := parseRequestDate(req.CreatedAt)
		return !created.IsZero() && created.Before(date)
	}

	// Direct request properties for convenience
	env["ID"] = req.ID
	env["Title"] = req.Title
	env["MediaType"] = string(req.MediaType)
	env["TmdbID"] = req.TmdbID
	env["TvdbID"] = req.TvdbID
	env["Status"] = req.Status.String()
	env["RequestedBy"] = req.RequestedBy
	env["CreatedAt"] = req.CreatedAt

	return env
}

func parseRequestDate(createdAt string) time.Time {
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		return t
	}
	if len(createdAt) >= 10 {
		if t, err := time.Parse("2006-01-02", createdAt[:10]); err == nil {
			return t
		}
	}
	return time.Time{}
}
