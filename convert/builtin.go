package convert

import (
	"fmt"
	"math"
	"math/big"
	"reflect"

	"github.com/OpenMath/go-openmath/om"
)

// Set is the unordered container of the built-in rules. It encodes as
// an application of set1.set (set1.emptyset when empty) in an
// unspecified element order, and set1.set decodes back to a Set.
type Set map[any]struct{}

// Interval is an inclusive integer interval, converted through
// interval1.integer_interval.
type Interval struct {
	Low  int64
	High int64
}

// content dictionaries of the built-in rules
const (
	cdLogic    = "logic1"
	cdNums     = "nums1"
	cdSet      = "set1"
	cdList     = "list1"
	cdComplex  = "complex1"
	cdInterval = "interval1"
)

// mustSymbol builds a fresh standard symbol. Fresh because children
// are exclusively owned: a shared node would be reparented.
func mustSymbol(cd, name string) *om.Node {
	s, err := om.NewSymbol(cd, name)
	if err != nil {
		panic(err)
	}
	return s.WithCDBase(om.DefaultCDBase)
}

func (c *Converter) registerBuiltins() {
	c.RegisterSymbol(cdLogic, "true", func(*Converter, []any) (any, error) {
		return true, nil
	})
	c.RegisterSymbol(cdLogic, "false", func(*Converter, []any) (any, error) {
		return false, nil
	})
	c.RegisterSymbol(cdNums, "infinity", func(*Converter, []any) (any, error) {
		return math.Inf(1), nil
	})
	c.RegisterSymbol(cdList, "list", func(_ *Converter, args []any) (any, error) {
		return append([]any{}, args...), nil
	})
	c.RegisterSymbol(cdSet, "emptyset", func(*Converter, []any) (any, error) {
		return Set{}, nil
	})
	c.RegisterSymbol(cdSet, "set", setHandler)
	c.RegisterSymbol(cdComplex, "complex_cartesian", complexHandler)
	c.RegisterSymbol(cdInterval, "integer_interval", intervalHandler)
}

func setHandler(_ *Converter, args []any) (any, error) {
	s := Set{}
	for _, a := range args {
		if rt := reflect.TypeOf(a); rt != nil && !rt.Comparable() {
			return nil, fmt.Errorf("%w: unhashable set element of type %T", ErrNoConversion, a)
		}
		s[a] = struct{}{}
	}
	return s, nil
}

func complexHandler(_ *Converter, args []any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: complex_cartesian needs 2 arguments, got %d", ErrNoConversion, len(args))
	}
	re, ok := asFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: complex_cartesian real part is not numeric", ErrNoConversion)
	}
	im, ok := asFloat(args[1])
	if !ok {
		return nil, fmt.Errorf("%w: complex_cartesian imaginary part is not numeric", ErrNoConversion)
	}
	return complex(re, im), nil
}

func intervalHandler(_ *Converter, args []any) (any, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: integer_interval needs 2 arguments, got %d", ErrNoConversion, len(args))
	}
	lo, ok := asInt64(args[0])
	if !ok {
		return nil, fmt.Errorf("%w: integer_interval bounds must be integers", ErrNoConversion)
	}
	hi, ok := asInt64(args[1])
	if !ok {
		return nil, fmt.Errorf("%w: integer_interval bounds must be integers", ErrNoConversion)
	}
	return Interval{Low: lo, High: hi}, nil
}

func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case *big.Int:
		f, _ := new(big.Float).SetInt(x).Float64()
		return f, true
	}
	return 0, false
}

func asInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case *big.Int:
		if x.IsInt64() {
			return x.Int64(), true
		}
	}
	return 0, false
}

func (c *Converter) builtinToOpenMath(val reflect.Value) (*om.Node, error) {
	switch x := val.Interface().(type) {
	case *big.Int:
		return om.FromBigInt(x)
	case big.Int:
		return om.FromBigInt(&x)
	case Interval:
		return c.intervalToOpenMath(x)
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil, fmt.Errorf("%w: nil value", ErrNoConversion)
		}
		return c.ToOpenMath(val.Elem().Interface())
	case reflect.Bool:
		if val.Bool() {
			return mustSymbol(cdLogic, "true"), nil
		}
		return mustSymbol(cdLogic, "false"), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return om.FromInt(val.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := val.Uint()
		if u > math.MaxInt64 {
			return om.FromBigInt(new(big.Int).SetUint64(u))
		}
		return om.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		f := val.Float()
		if math.IsInf(f, 1) {
			return mustSymbol(cdNums, "infinity"), nil
		}
		return om.FromFloat(f), nil
	case reflect.Complex64, reflect.Complex128:
		return c.complexToOpenMath(val.Complex())
	case reflect.String:
		return om.FromString(val.String()), nil
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return om.FromBytes(val.Bytes()), nil
		}
		return c.sequenceToOpenMath(val)
	case reflect.Array:
		return c.sequenceToOpenMath(val)
	case reflect.Map:
		if isSetType(val.Type()) {
			return c.setToOpenMath(val)
		}
	}
	return nil, fmt.Errorf("%w: unsupported type %s", ErrNoConversion, val.Type())
}

// isSetType reports whether t is an unordered container, a map with
// empty-struct values.
func isSetType(t reflect.Type) bool {
	return t.Elem() == reflect.TypeOf(struct{}{})
}

func (c *Converter) sequenceToOpenMath(val reflect.Value) (*om.Node, error) {
	args := make([]*om.Node, val.Len())
	for i := range args {
		n, err := c.ToOpenMath(val.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		args[i] = n
	}
	return om.NewApplication(mustSymbol(cdList, "list"), args...)
}

func (c *Converter) setToOpenMath(val reflect.Value) (*om.Node, error) {
	if val.Len() == 0 {
		return mustSymbol(cdSet, "emptyset"), nil
	}
	args := make([]*om.Node, 0, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		n, err := c.ToOpenMath(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		args = append(args, n)
	}
	return om.NewApplication(mustSymbol(cdSet, "set"), args...)
}

func (c *Converter) complexToOpenMath(x complex128) (*om.Node, error) {
	re, err := c.ToOpenMath(real(x))
	if err != nil {
		return nil, err
	}
	im, err := c.ToOpenMath(imag(x))
	if err != nil {
		return nil, err
	}
	return om.NewApplication(mustSymbol(cdComplex, "complex_cartesian"), re, im)
}

func (c *Converter) intervalToOpenMath(iv Interval) (*om.Node, error) {
	return om.NewApplication(mustSymbol(cdInterval, "integer_interval"),
		om.FromInt(iv.Low), om.FromInt(iv.High))
}
