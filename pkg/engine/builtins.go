package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/carve/pkg/kernel"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Carve script source before passing it to
// zygomys. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: half-turn -> half_turn
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
//  3. ; line comments become // comments, which is what zygomys parses.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters (not a
		// minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpSolid wraps a kernel.Solid so script expressions can hand solids to
// each other. name is non-empty when the solid came from (defsolid ...) or
// (solid ...).
type sexpSolid struct {
	s    kernel.Solid
	name string
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	if s.name != "" {
		return fmt.Sprintf("#<solid %q>", s.name)
	}
	return "#<solid>"
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a 3-vector built by (vec3 x y z).
type sexpVec3 struct {
	x, y, z float64
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %v %v %v)", v.x, v.y, v.z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Argument parsing helpers
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW reports whether s is a preprocessed keyword literal, returning the
// keyword's name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument
// list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments. A
// keyword consumes the value that follows it.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		if name, ok := isKW(args[i]); ok && i+1 < len(args) {
			result.kw[name] = args[i+1]
			i += 2
			continue
		}
		result.positional = append(result.positional, args[i])
		i++
	}
	return result
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", s)
	}
}

func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		return int(v.Val), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", s)
	}
}

func toString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", s)
	}
	return str.S, nil
}

func toSolid(s zygo.Sexp) (kernel.Solid, error) {
	ss, ok := s.(*sexpSolid)
	if !ok {
		return nil, fmt.Errorf("expected a solid expression, got %T", s)
	}
	return ss.s, nil
}

func toVec3(s zygo.Sexp) (x, y, z float64, err error) {
	v, ok := s.(*sexpVec3)
	if !ok {
		return 0, 0, 0, fmt.Errorf("expected (vec3 x y z), got %T", s)
	}
	return v.x, v.y, v.z, nil
}

// positiveDim fetches a required positive-valued keyword argument.
func positiveDim(pa kwArgs, fn, name string) (float64, error) {
	v, ok := pa.kw[name]
	if !ok {
		return 0, fmt.Errorf("%s: missing :%s", fn, name)
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s: :%s must be positive, got %v", fn, name, f)
	}
	return f, nil
}

// optionalSegments fetches an optional :segments argument.
func optionalSegments(pa kwArgs, fn string, def int) (int, error) {
	v, ok := pa.kw["segments"]
	if !ok {
		return def, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%s: segments: %w", fn, err)
	}
	if n < 3 {
		return 0, fmt.Errorf("%s: :segments must be at least 3, got %d", fn, n)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the Carve solid-modeling builtins into a
// zygomys environment. Primitive and boolean builtins evaluate against k
// immediately; (defsolid ...) registers results into scene.
//
// Source code must be preprocessed with preprocessSource() before
// evaluation so that :keyword tokens are converted to recognizable string
// literals.
func registerBuiltins(env *zygo.Zlisp, k kernel.Kernel, scene *Scene) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}
		return &sexpVec3{x: x, y: y, z: z}, nil
	})

	// -----------------------------------------------------------------------
	// (box :x 60 :y 40 :z 8)
	// -----------------------------------------------------------------------
	env.AddFunction("box", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		x, err := positiveDim(pa, "box", "x")
		if err != nil {
			return zygo.SexpNull, err
		}
		y, err := positiveDim(pa, "box", "y")
		if err != nil {
			return zygo.SexpNull, err
		}
		z, err := positiveDim(pa, "box", "z")
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{s: k.Box(x, y, z)}, nil
	})

	// -----------------------------------------------------------------------
	// (cylinder :height 20 :radius 8 :segments 32)
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		h, err := positiveDim(pa, "cylinder", "height")
		if err != nil {
			return zygo.SexpNull, err
		}
		r, err := positiveDim(pa, "cylinder", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		segments, err := optionalSegments(pa, "cylinder", 32)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{s: k.Cylinder(h, r, segments)}, nil
	})

	// -----------------------------------------------------------------------
	// (sphere :radius 8 :segments 16)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		r, err := positiveDim(pa, "sphere", "radius")
		if err != nil {
			return zygo.SexpNull, err
		}
		segments, err := optionalSegments(pa, "sphere", 16)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpSolid{s: k.Sphere(r, segments)}, nil
	})

	// -----------------------------------------------------------------------
	// (union a b ...) / (difference a b ...) / (intersection a b ...)
	//
	// All three fold left over two or more solids: (difference a b c) is
	// ((a - b) - c).
	// -----------------------------------------------------------------------
	boolean := func(fn string, combine func(a, b kernel.Solid) kernel.Solid) {
		env.AddFunction(fn, func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) < 2 {
				return zygo.SexpNull, fmt.Errorf("%s requires at least 2 solids, got %d", fn, len(args))
			}
			acc, err := toSolid(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: argument 1: %w", fn, err)
			}
			for i := 1; i < len(args); i++ {
				next, err := toSolid(args[i])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("%s: argument %d: %w", fn, i+1, err)
				}
				acc = combine(acc, next)
			}
			return &sexpSolid{s: acc}, nil
		})
	}
	boolean("union", k.Union)
	boolean("difference", k.Difference)
	boolean("intersection", k.Intersection)

	// -----------------------------------------------------------------------
	// (inverse a)
	// -----------------------------------------------------------------------
	env.AddFunction("inverse", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("inverse requires exactly 1 solid, got %d", len(args))
		}
		s, err := toSolid(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("inverse: %w", err)
		}
		inv, ok := k.(kernel.Inverter)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("inverse: the %T kernel cannot represent a complement", k)
		}
		return &sexpSolid{s: inv.Inverse(s)}, nil
	})

	// -----------------------------------------------------------------------
	// (translate s :by (vec3 10 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("translate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("translate requires a solid as its first argument")
		}
		s, err := toSolid(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: %w", err)
		}
		by, ok := pa.kw["by"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("translate: missing :by (vec3 x y z)")
		}
		x, y, z, err := toVec3(by)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("translate: by: %w", err)
		}
		return &sexpSolid{s: k.Translate(s, x, y, z)}, nil
	})

	// -----------------------------------------------------------------------
	// (rotate s :by (vec3 0 0 90))   — Euler angles in degrees
	// -----------------------------------------------------------------------
	env.AddFunction("rotate", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("rotate requires a solid as its first argument")
		}
		s, err := toSolid(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
		}
		by, ok := pa.kw["by"]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("rotate: missing :by (vec3 x y z)")
		}
		x, y, z, err := toVec3(by)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("rotate: by: %w", err)
		}
		return &sexpSolid{s: k.Rotate(s, x, y, z)}, nil
	})

	// -----------------------------------------------------------------------
	// (defsolid "name" expr)
	// -----------------------------------------------------------------------
	env.AddFunction("defsolid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defsolid requires a name and a solid expression")
		}
		solidName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: name: %w", err)
		}
		if solidName == "" {
			return zygo.SexpNull, fmt.Errorf("defsolid: name must not be empty")
		}
		s, err := toSolid(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid %q: %w", solidName, err)
		}
		scene.Add(solidName, s)
		return &sexpSolid{s: s, name: solidName}, nil
	})

	// -----------------------------------------------------------------------
	// (solid "name")   — reference a previously defined solid
	// -----------------------------------------------------------------------
	env.AddFunction("solid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("solid requires a name argument")
		}
		solidName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("solid: name: %w", err)
		}
		s := scene.Lookup(solidName)
		if s == nil {
			return zygo.SexpNull, fmt.Errorf("solid: no solid named %q", solidName)
		}
		return &sexpSolid{s: s, name: solidName}, nil
	})
}
