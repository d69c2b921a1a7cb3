package convert

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"sync"

	"github.com/OpenMath/go-openmath/om"
)

// ToOpenMathFunc converts a Go value to a node. It may return
// ErrCannotConvert to fall through to the built-in rules.
type ToOpenMathFunc func(c *Converter, v any) (*om.Node, error)

// SymbolHandler converts a symbol application back to a Go value. For
// a bare symbol it is invoked with no arguments; for an application
// the arguments are converted recursively before the handler runs.
type SymbolHandler func(c *Converter, args []any) (any, error)

// Convertible is the self-describing conversion capability. A type
// implementing it converts itself; the capability takes precedence
// over any registered rule.
type Convertible interface {
	ToOpenMath(c *Converter) (*om.Node, error)
}

type symKey struct {
	cd   string
	name string
}

// Converter maps Go values to and from om.Node trees. Registrations
// are serialized; conversions may run concurrently.
type Converter struct {
	mu       sync.RWMutex
	toOM     map[reflect.Type]ToOpenMathFunc
	bySymbol map[symKey]SymbolHandler
}

// Default is the shared converter. Registrations on it are visible
// process-wide; callers needing isolation use New.
var Default = New()

// New returns a converter preloaded with the built-in rules.
func New() *Converter {
	c := &Converter{
		toOM:     map[reflect.Type]ToOpenMathFunc{},
		bySymbol: map[symKey]SymbolHandler{},
	}
	c.registerBuiltins()
	return c
}

// ToOpenMath converts v using the shared converter.
func ToOpenMath(v any) (*om.Node, error) { return Default.ToOpenMath(v) }

// ToGo converts node using the shared converter.
func ToGo(node *om.Node) (any, error) { return Default.ToGo(node) }

// Register adds a bidirectional rule to the shared converter.
func Register(v any, toOM ToOpenMathFunc, cd, name string, toGo SymbolHandler) {
	Default.Register(v, toOM, cd, name, toGo)
}

// Register adds a rule converting values of v's type to OpenMath and
// applications of the (cd, name) symbol back to Go. Either direction
// may be nil. The last registration for a type or symbol wins.
func (c *Converter) Register(v any, toOM ToOpenMathFunc, cd, name string, toGo SymbolHandler) {
	c.RegisterType(v, toOM)
	c.RegisterSymbol(cd, name, toGo)
}

// RegisterType adds or replaces the forward rule for v's dynamic type.
func (c *Converter) RegisterType(v any, fn ToOpenMathFunc) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toOM[reflect.TypeOf(v)] = fn
}

// RegisterSymbol adds or replaces the reverse rule for (cd, name).
func (c *Converter) RegisterSymbol(cd, name string, fn SymbolHandler) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bySymbol[symKey{cd: cd, name: name}] = fn
}

func (c *Converter) handler(cd, name string) SymbolHandler {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bySymbol[symKey{cd: cd, name: name}]
}

// ToOpenMath converts a Go value to a node. The Convertible capability
// is checked first, then the registered rule for the value's exact
// type, then the built-in rules.
func (c *Converter) ToOpenMath(v any) (*om.Node, error) {
	if cv, ok := v.(Convertible); ok {
		return cv.ToOpenMath(c)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrNoConversion)
	}
	c.mu.RLock()
	fn := c.toOM[reflect.TypeOf(v)]
	c.mu.RUnlock()
	if fn != nil {
		node, err := fn(c, v)
		if err == nil {
			return node, nil
		}
		if !errors.Is(err, ErrCannotConvert) {
			return nil, err
		}
	}
	return c.builtinToOpenMath(reflect.ValueOf(v))
}

// ToGo converts a node back to a Go value. Primitive variants convert
// directly; symbols and symbol applications go through the registered
// (cd, name) handlers. Arguments are converted recursively before the
// handler runs, and never when no handler exists.
func (c *Converter) ToGo(node *om.Node) (any, error) {
	if node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrNoConversion)
	}
	switch node.Type {
	case om.IntegerType:
		if node.Int.IsInt64() {
			return node.Int.Int64(), nil
		}
		return new(big.Int).Set(node.Int), nil
	case om.FloatType:
		return *node.Float, nil
	case om.StringType:
		return node.String, nil
	case om.BytesType:
		return append([]byte(nil), node.Bytes...), nil
	case om.SymbolType:
		h := c.handler(node.CD, node.Name)
		if h == nil {
			return nil, noSymbolRule(node.CD, node.Name)
		}
		return h(c, nil)
	case om.ApplicationType:
		head := node.Head
		if head == nil || head.Type != om.SymbolType {
			return nil, fmt.Errorf("%w: application head is not a symbol", ErrNoConversion)
		}
		h := c.handler(head.CD, head.Name)
		if h == nil {
			return nil, noSymbolRule(head.CD, head.Name)
		}
		args := make([]any, len(node.Values))
		for i, a := range node.Values {
			converted, err := c.ToGo(a)
			if err != nil {
				return nil, err
			}
			args[i] = converted
		}
		return h(c, args)
	}
	return nil, fmt.Errorf("%w: cannot convert %s node", ErrNoConversion, node.Type)
}

func noSymbolRule(cd, name string) error {
	return fmt.Errorf("%w: no rule for symbol %s#%s", ErrNoConversion, cd, name)
}
