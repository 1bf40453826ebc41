// Package gssfunc folds GSS's arithmetic and color functions at compile
// time (spec.md's "compile-time function evaluation" module). It is a
// thin ast.Value <-> string bridge around the teacher's functions
// package, which already implements LESS's color math (functions/colors.go)
// and numeric helpers (functions/math.go) as plain string-in/string-out
// code; rather than reimplement that arithmetic, gssfunc adapts it to
// operate on folded AST values instead of raw LESS source strings.
package gssfunc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gssc/gss/ast"
	"github.com/gssc/gss/functions"
)

// Registry maps a function name to its folding implementation.
type Registry struct {
	fns map[string]func(args []ast.Value) (ast.Value, error)
}

// Default returns the built-in GSS function registry: color manipulation,
// color channel extraction, and numeric helpers.
func Default() *Registry {
	r := &Registry{fns: make(map[string]func(args []ast.Value) (ast.Value, error))}
	r.registerColor()
	r.registerMath()
	return r
}

// Register adds or overrides a function, for embedders that extend GSS
// with their own compile-time helpers.
func (r *Registry) Register(name string, fn func(args []ast.Value) (ast.Value, error)) {
	r.fns[name] = fn
}

// Has reports whether name is a known function.
func (r *Registry) Has(name string) bool {
	_, ok := r.fns[strings.ToLower(name)]
	return ok
}

// Fold evaluates a CustomFunction (or a plain Function whose tag names a
// registered helper) once all its arguments are themselves folded
// values, per invariant 7 (the cache is the caller's concern; Fold itself
// is a pure computation over args).
func (r *Registry) Fold(name string, args []ast.Value) (ast.Value, error) {
	fn, ok := r.fns[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown function %q", name)
	}
	return fn(args)
}

func (r *Registry) registerColor() {
	color1 := func(op func(*functions.Color) *functions.Color) func([]ast.Value) (ast.Value, error) {
		return func(args []ast.Value) (ast.Value, error) {
			if len(args) < 1 {
				return nil, fmt.Errorf("expected a color argument")
			}
			c, err := parseColorArg(args[0])
			if err != nil {
				return nil, err
			}
			return colorToValue(op(c)), nil
		}
	}
	colorAmount := func(op func(*functions.Color, float64) *functions.Color) func([]ast.Value) (ast.Value, error) {
		return func(args []ast.Value) (ast.Value, error) {
			if len(args) < 2 {
				return nil, fmt.Errorf("expected color and amount arguments")
			}
			c, err := parseColorArg(args[0])
			if err != nil {
				return nil, err
			}
			amount, err := numberOf(args[1])
			if err != nil {
				return nil, err
			}
			return colorToValue(op(c, amount)), nil
		}
	}

	r.fns["lighten"] = colorAmount(func(c *functions.Color, a float64) *functions.Color { return c.Lighten(a) })
	r.fns["darken"] = colorAmount(func(c *functions.Color, a float64) *functions.Color { return c.Darken(a) })
	r.fns["saturate"] = colorAmount(func(c *functions.Color, a float64) *functions.Color { return c.Saturate(a) })
	r.fns["desaturate"] = colorAmount(func(c *functions.Color, a float64) *functions.Color { return c.Desaturate(a) })
	r.fns["spin"] = colorAmount(func(c *functions.Color, a float64) *functions.Color { return c.Spin(a) })
	r.fns["greyscale"] = color1(func(c *functions.Color) *functions.Color { return c.Greyscale() })

	r.fns["mix"] = func(args []ast.Value) (ast.Value, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("mix() expects two colors and an optional weight")
		}
		a, err := parseColorArg(args[0])
		if err != nil {
			return nil, err
		}
		b, err := parseColorArg(args[1])
		if err != nil {
			return nil, err
		}
		weight := 50.0
		if len(args) > 2 {
			weight, err = numberOf(args[2])
			if err != nil {
				return nil, err
			}
		}
		return colorToValue(a.Mix(b, weight/100)), nil
	}

	channel := func(idx int, alpha bool) func([]ast.Value) (ast.Value, error) {
		return func(args []ast.Value) (ast.Value, error) {
			if len(args) < 1 {
				return nil, fmt.Errorf("expected a color argument")
			}
			c, err := parseColorArg(args[0])
			if err != nil {
				return nil, err
			}
			if alpha {
				return ast.NewNumeric(c.A, ""), nil
			}
			v := []float64{c.R, c.G, c.B}[idx]
			return ast.NewNumeric(v, ""), nil
		}
	}
	r.fns["red"] = channel(0, false)
	r.fns["green"] = channel(1, false)
	r.fns["blue"] = channel(2, false)
	r.fns["alpha"] = channel(0, true)

	r.fns["hue"] = func(args []ast.Value) (ast.Value, error) {
		c, err := parseColorArg(args[0])
		if err != nil {
			return nil, err
		}
		h, _, _ := c.ToHSL()
		return ast.NewNumeric(h, ""), nil
	}
	r.fns["rgb"] = colorFromChannels(false)
	r.fns["rgba"] = colorFromChannels(true)
	r.fns["hsl"] = colorFromHSL(false)
	r.fns["hsla"] = colorFromHSL(true)

	r.fns["saturation"] = func(args []ast.Value) (ast.Value, error) {
		c, err := parseColorArg(args[0])
		if err != nil {
			return nil, err
		}
		_, s, _ := c.ToHSL()
		return ast.NewNumeric(s*100, "%"), nil
	}
	r.fns["lightness"] = func(args []ast.Value) (ast.Value, error) {
		c, err := parseColorArg(args[0])
		if err != nil {
			return nil, err
		}
		_, _, l := c.ToHSL()
		return ast.NewNumeric(l*100, "%"), nil
	}
}

// colorFromChannels builds rgb()/rgba()'s folding function: three 0-255
// channel values plus, when withAlpha, a trailing 0-1 alpha.
func colorFromChannels(withAlpha bool) func([]ast.Value) (ast.Value, error) {
	return func(args []ast.Value) (ast.Value, error) {
		need := 3
		if withAlpha {
			need = 4
		}
		if len(args) < need {
			return nil, fmt.Errorf("expected %d arguments, got %d", need, len(args))
		}
		r, err := numberOf(args[0])
		if err != nil {
			return nil, err
		}
		g, err := numberOf(args[1])
		if err != nil {
			return nil, err
		}
		b, err := numberOf(args[2])
		if err != nil {
			return nil, err
		}
		a := 1.0
		if withAlpha {
			a, err = numberOf(args[3])
			if err != nil {
				return nil, err
			}
		}
		return colorToValue(&functions.Color{R: r, G: g, B: b, A: a}), nil
	}
}

// colorFromHSL builds hsl()/hsla()'s folding function: hue in degrees,
// saturation/lightness as 0-1 fractions or 0-100 percentages (a value
// above 1 is divided by 100 here before HSLToColor sees it), plus, when
// withAlpha, a trailing 0-1 alpha.
func colorFromHSL(withAlpha bool) func([]ast.Value) (ast.Value, error) {
	return func(args []ast.Value) (ast.Value, error) {
		need := 3
		if withAlpha {
			need = 4
		}
		if len(args) < need {
			return nil, fmt.Errorf("expected %d arguments, got %d", need, len(args))
		}
		h, err := numberOf(args[0])
		if err != nil {
			return nil, err
		}
		s, err := numberOf(args[1])
		if err != nil {
			return nil, err
		}
		l, err := numberOf(args[2])
		if err != nil {
			return nil, err
		}
		if s > 1 {
			s /= 100
		}
		if l > 1 {
			l /= 100
		}
		a := 1.0
		if withAlpha {
			a, err = numberOf(args[3])
			if err != nil {
				return nil, err
			}
		}
		return colorToValue(functions.HSLToColor(h, s, l, a)), nil
	}
}

func (r *Registry) registerMath() {
	unary := func(op func(string) string) func([]ast.Value) (ast.Value, error) {
		return func(args []ast.Value) (ast.Value, error) {
			if len(args) < 1 {
				return nil, fmt.Errorf("expected one numeric argument")
			}
			return parseNumericResult(op(renderNumeric(args[0])))
		}
	}
	r.fns["ceil"] = unary(functions.Ceil)
	r.fns["floor"] = unary(functions.Floor)
	r.fns["round"] = unary(functions.Round)
	r.fns["abs"] = unary(functions.Abs)
	r.fns["sqrt"] = unary(functions.Sqrt)
	r.fns["percentage"] = unary(functions.Percentage)

	r.fns["pow"] = func(args []ast.Value) (ast.Value, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("pow() expects base and exponent")
		}
		return parseNumericResult(functions.Pow(renderNumeric(args[0]), renderNumeric(args[1])))
	}
	r.fns["mod"] = func(args []ast.Value) (ast.Value, error) {
		if len(args) < 2 {
			return nil, fmt.Errorf("mod() expects two numbers")
		}
		return parseNumericResult(functions.Mod(renderNumeric(args[0]), renderNumeric(args[1])))
	}
	r.fns["min"] = func(args []ast.Value) (ast.Value, error) {
		return parseNumericResult(functions.Min(renderAll(args)...))
	}
	r.fns["max"] = func(args []ast.Value) (ast.Value, error) {
		return parseNumericResult(functions.Max(renderAll(args)...))
	}

	// add/sub are Closure Stylesheets' variadic arithmetic functions,
	// equivalent to chaining `+`/`-` in a Math expression but usable
	// anywhere a function call is (e.g. as a mixin argument).
	r.fns["add"] = variadicSum(1)
	r.fns["sub"] = variadicSum(-1)
}

// variadicSum sums numeric arguments, negating every argument after the
// first when sign is -1 (sub(a,b,c) = a-b-c); the first unit encountered
// is propagated to the result.
func variadicSum(sign float64) func([]ast.Value) (ast.Value, error) {
	return func(args []ast.Value) (ast.Value, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("expected at least one numeric argument")
		}
		var total float64
		unit := ""
		for i, a := range args {
			n, ok := a.(*ast.Numeric)
			if !ok {
				return nil, fmt.Errorf("expected a numeric argument, got %T", a)
			}
			if unit == "" {
				unit = n.Unit
			}
			if i == 0 {
				total = n.Number
				continue
			}
			total += sign * n.Number
		}
		return ast.NewNumeric(total, unit), nil
	}
}

func renderAll(args []ast.Value) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = renderNumeric(a)
	}
	return out
}

// renderNumeric renders a folded numeric Value back to the "12px"-shaped
// string functions' string-based helpers expect.
func renderNumeric(v ast.Value) string {
	if n, ok := v.(*ast.Numeric); ok {
		return strconv.FormatFloat(n.Number, 'g', -1, 64) + n.Unit
	}
	if l, ok := v.(*ast.Literal); ok {
		return l.Text
	}
	return ""
}

func parseNumericResult(s string) (ast.Value, error) {
	i := 0
	for i < len(s) && (s[i] == '-' || s[i] == '+' || s[i] == '.' || (s[i] >= '0' && s[i] <= '9')) {
		i++
	}
	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return nil, fmt.Errorf("gssfunc: malformed numeric result %q", s)
	}
	return ast.NewNumeric(n, s[i:]), nil
}

func parseColorArg(v ast.Value) (*functions.Color, error) {
	switch t := v.(type) {
	case *ast.HexColor:
		return functions.ParseColor("#" + t.Hex)
	case *ast.Literal:
		return functions.ParseColor(t.Text)
	default:
		return nil, fmt.Errorf("gssfunc: %T is not a color", v)
	}
}

func colorToValue(c *functions.Color) ast.Value {
	return ast.NewHexColor(strings.TrimPrefix(c.ToHex(), "#"))
}

func numberOf(v ast.Value) (float64, error) {
	n, ok := v.(*ast.Numeric)
	if !ok {
		return 0, fmt.Errorf("gssfunc: expected a number, got %T", v)
	}
	return n.Number, nil
}
