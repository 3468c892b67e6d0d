package easing

import (
	"fmt"
	"strconv"
	"strings"
)

var byName = func() map[string]Easing {
	m := make(map[string]Easing, len(All))
	for _, e := range All {
		m[e.name] = e
	}
	return m
}()

// Parse decodes an easing from its canonical name: one of the named
// families ("in-out-quad"), "steps(N[, jump-type])" or
// "cubic-bezier(x1, y1, x2, y2)".
func Parse(s string) (Easing, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Linear, nil
	}
	if e, ok := byName[s]; ok {
		return e, nil
	}

	if args, ok := callArgs(s, "steps"); ok {
		return parseSteps(s, args)
	}
	if args, ok := callArgs(s, "cubic-bezier"); ok {
		return parseCubicBezier(s, args)
	}
	return Easing{}, fmt.Errorf("%w: %q", ErrUnknownEasing, s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Easing {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

// callArgs splits "fn(a, b)" into its trimmed arguments.
func callArgs(s, fn string) ([]string, bool) {
	if !strings.HasPrefix(s, fn+"(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(s, fn+"("), ")")
	parts := strings.Split(inner, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, true
}

func parseSteps(s string, args []string) (Easing, error) {
	if len(args) < 1 || len(args) > 2 {
		return Easing{}, fmt.Errorf("%w: %q", ErrUnknownEasing, s)
	}
	count, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return Easing{}, fmt.Errorf("%w: %q: %v", ErrUnknownEasing, s, err)
	}
	jump := JumpEnd
	if len(args) == 2 {
		if jump, err = ParseJumpType(args[1]); err != nil {
			return Easing{}, err
		}
	}
	return Steps(uint(count), jump)
}

func parseCubicBezier(s string, args []string) (Easing, error) {
	if len(args) != 4 {
		return Easing{}, fmt.Errorf("%w: %q", ErrUnknownEasing, s)
	}
	var v [4]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return Easing{}, fmt.Errorf("%w: %q: %v", ErrUnknownEasing, s, err)
		}
		v[i] = f
	}
	return CubicBezier(Point{v[0], v[1]}, Point{v[2], v[3]}), nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Easing) MarshalText() ([]byte, error) {
	if e.kind == kindCustom {
		return nil, fmt.Errorf("easing %q: %w", e.name, ErrEncodingCustom)
	}
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalYAML encodes the easing as its canonical name.
func (e Easing) MarshalYAML() (interface{}, error) {
	text, err := e.MarshalText()
	if err != nil {
		return nil, err
	}
	return string(text), nil
}

// UnmarshalYAML decodes the easing from a YAML scalar.
func (e *Easing) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return e.UnmarshalText([]byte(s))
}
