package convert

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OpenMath/go-openmath/om"
)

func mustNode(t *testing.T) func(*om.Node, error) *om.Node {
	t.Helper()
	return func(n *om.Node, err error) *om.Node {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		return n
	}
}

func stdSymbol(t *testing.T, cd, name string) *om.Node {
	t.Helper()
	s, err := om.NewSymbol(cd, name)
	if err != nil {
		t.Fatal(err)
	}
	return s.WithCDBase(om.DefaultCDBase)
}

func TestToOpenMathBuiltins(t *testing.T) {
	c := New()
	tcs := []struct {
		name string
		in   any
		want *om.Node
	}{
		{"bool-true", true, stdSymbol(t, "logic1", "true")},
		{"bool-false", false, stdSymbol(t, "logic1", "false")},
		{"int", 5, om.FromInt(5)},
		{"int8", int8(-3), om.FromInt(-3)},
		{"uint16", uint16(9), om.FromInt(9)},
		{"uint64-overflow", uint64(math.MaxUint64),
			mustNode(t)(om.FromBigInt(new(big.Int).SetUint64(math.MaxUint64)))},
		{"big-int", big.NewInt(7), om.FromInt(7)},
		{"float64", 2.5, om.FromFloat(2.5)},
		{"float32", float32(0.5), om.FromFloat(0.5)},
		{"infinity", math.Inf(1), stdSymbol(t, "nums1", "infinity")},
		{"string", "hello", om.FromString("hello")},
		{"bytes", []byte{0x13}, om.FromBytes([]byte{0x13})},
		{
			"complex", complex(1, 2),
			mustNode(t)(om.NewApplication(stdSymbol(t, "complex1", "complex_cartesian"),
				om.FromFloat(1), om.FromFloat(2))),
		},
		{
			"slice", []any{int64(1), "a"},
			mustNode(t)(om.NewApplication(stdSymbol(t, "list1", "list"),
				om.FromInt(1), om.FromString("a"))),
		},
		{
			"array", [2]int{1, 2},
			mustNode(t)(om.NewApplication(stdSymbol(t, "list1", "list"),
				om.FromInt(1), om.FromInt(2))),
		},
		{
			"nested-slice", []any{[]any{int64(1)}},
			mustNode(t)(om.NewApplication(stdSymbol(t, "list1", "list"),
				mustNode(t)(om.NewApplication(stdSymbol(t, "list1", "list"), om.FromInt(1))))),
		},
		{"empty-set", Set{}, stdSymbol(t, "set1", "emptyset")},
		{
			"set", Set{int64(1): {}},
			mustNode(t)(om.NewApplication(stdSymbol(t, "set1", "set"), om.FromInt(1))),
		},
		{
			"interval", Interval{Low: 1, High: 10},
			mustNode(t)(om.NewApplication(stdSymbol(t, "interval1", "integer_interval"),
				om.FromInt(1), om.FromInt(10))),
		},
		{"pointer", ptr(42), om.FromInt(42)},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.ToOpenMath(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if !om.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestRoundTripValues(t *testing.T) {
	c := New()
	tcs := []struct {
		name string
		in   any
		want any
	}{
		{"bool", true, true},
		{"int", 5, int64(5)},
		{"float", 2.5, 2.5},
		{"infinity", math.Inf(1), math.Inf(1)},
		{"string", "hello", "hello"},
		{"bytes", []byte{1, 2}, []byte{1, 2}},
		{"complex", complex(1, 2), complex(1, 2)},
		{"list", []any{int64(1), "a", false}, []any{int64(1), "a", false}},
		{"set", Set{int64(3): {}}, Set{int64(3): {}}},
		{"empty-set", Set{}, Set{}},
		{"interval", Interval{Low: 1, High: 10}, Interval{Low: 1, High: 10}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			node, err := c.ToOpenMath(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			got, err := c.ToGo(node)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToGoBigInteger(t *testing.T) {
	c := New()
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	node := mustNode(t)(om.FromBigInt(huge))
	got, err := c.ToGo(node)
	if err != nil {
		t.Fatal(err)
	}
	b, ok := got.(*big.Int)
	if !ok {
		t.Fatalf("got %T, want *big.Int", got)
	}
	if b.Cmp(huge) != 0 {
		t.Errorf("got %v", b)
	}

	got, err = c.ToGo(om.FromInt(5))
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(5) {
		t.Errorf("small integer converted to %T %v, want int64", got, got)
	}
}

func TestToOpenMathErrors(t *testing.T) {
	c := New()
	tcs := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"map", map[string]int{"a": 1}},
		{"func", func() {}},
		{"struct", struct{ X int }{1}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.ToOpenMath(tc.in); !errors.Is(err, ErrNoConversion) {
				t.Errorf("got %v, want ErrNoConversion", err)
			}
		})
	}
}

func TestToGoErrors(t *testing.T) {
	c := New()
	unknown := mustNode(t)(om.NewSymbol("mystery1", "thing"))
	tcs := []struct {
		name string
		node *om.Node
	}{
		{"nil", nil},
		{"unknown-symbol", unknown},
		{"unknown-application", mustNode(t)(om.NewApplication(unknown.Clone(), om.FromInt(1)))},
		{"variable", mustNode(t)(om.NewVariable("x"))},
		{"non-symbol-head", mustNode(t)(om.NewApplication(om.FromInt(1), om.FromInt(2)))},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.ToGo(tc.node); !errors.Is(err, ErrNoConversion) {
				t.Errorf("got %v, want ErrNoConversion", err)
			}
		})
	}
}

func TestRegisterRational(t *testing.T) {
	c := New()
	c.Register(&big.Rat{},
		func(c *Converter, v any) (*om.Node, error) {
			r := v.(*big.Rat)
			num, err := c.ToOpenMath(r.Num())
			if err != nil {
				return nil, err
			}
			den, err := c.ToOpenMath(r.Denom())
			if err != nil {
				return nil, err
			}
			head, err := om.NewSymbol("nums1", "rational")
			if err != nil {
				return nil, err
			}
			return om.NewApplication(head, num, den)
		},
		"nums1", "rational",
		func(_ *Converter, args []any) (any, error) {
			if len(args) != 2 {
				return nil, fmt.Errorf("%w: rational needs 2 arguments", ErrNoConversion)
			}
			num, ok := args[0].(int64)
			if !ok {
				return nil, fmt.Errorf("%w: rational numerator", ErrNoConversion)
			}
			den, ok := args[1].(int64)
			if !ok {
				return nil, fmt.Errorf("%w: rational denominator", ErrNoConversion)
			}
			return big.NewRat(num, den), nil
		},
	)

	in := big.NewRat(3, 4)
	node, err := c.ToOpenMath(in)
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.ToGo(node)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := got.(*big.Rat)
	if !ok {
		t.Fatalf("got %T", got)
	}
	if r.Cmp(in) != 0 {
		t.Errorf("got %v, want %v", r, in)
	}
}

func TestRegisterLastWins(t *testing.T) {
	c := New()
	c.RegisterSymbol("x1", "v", func(*Converter, []any) (any, error) { return "first", nil })
	c.RegisterSymbol("x1", "v", func(*Converter, []any) (any, error) { return "second", nil })

	got, err := c.ToGo(mustNode(t)(om.NewSymbol("x1", "v")))
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("got %v", got)
	}
}

type celsius float64

func (v celsius) ToOpenMath(c *Converter) (*om.Node, error) {
	head, err := om.NewSymbol("units1", "celsius")
	if err != nil {
		return nil, err
	}
	return om.NewApplication(head, om.FromFloat(float64(v)))
}

func TestConvertibleWins(t *testing.T) {
	c := New()
	// a registered rule loses to the value's own capability
	c.RegisterType(celsius(0), func(*Converter, any) (*om.Node, error) {
		return om.FromString("wrong"), nil
	})

	node, err := c.ToOpenMath(celsius(21.5))
	if err != nil {
		t.Fatal(err)
	}
	want := mustNode(t)(om.NewApplication(
		mustNode(t)(om.NewSymbol("units1", "celsius")), om.FromFloat(21.5)))
	if !om.Equal(node, want) {
		t.Errorf("got %v, want %v", node, want)
	}
}

type sku string

func TestCannotConvertFallsThrough(t *testing.T) {
	c := New()
	c.RegisterType(sku(""), func(_ *Converter, v any) (*om.Node, error) {
		return nil, fmt.Errorf("%w: opaque sku", ErrCannotConvert)
	})

	node, err := c.ToOpenMath(sku("A-17"))
	if err != nil {
		t.Fatal(err)
	}
	if !om.Equal(node, om.FromString("A-17")) {
		t.Errorf("declined rule did not fall through: %v", node)
	}
}

func TestDefaultIsolation(t *testing.T) {
	Register(nil, nil, "iso1", "only_default",
		func(*Converter, []any) (any, error) { return "shared", nil })

	node := mustNode(t)(om.NewSymbol("iso1", "only_default"))
	got, err := ToGo(node)
	if err != nil {
		t.Fatal(err)
	}
	if got != "shared" {
		t.Errorf("got %v", got)
	}

	// fresh instances carry only the built-ins
	if _, err := New().ToGo(node); !errors.Is(err, ErrNoConversion) {
		t.Errorf("got %v, want ErrNoConversion", err)
	}
}

func TestSetRejectsUnhashable(t *testing.T) {
	c := New()
	node := mustNode(t)(om.NewApplication(stdSymbol(t, "set1", "set"),
		mustNode(t)(om.NewApplication(stdSymbol(t, "list1", "list"), om.FromInt(1)))))
	if _, err := c.ToGo(node); !errors.Is(err, ErrNoConversion) {
		t.Errorf("got %v, want ErrNoConversion", err)
	}
}
