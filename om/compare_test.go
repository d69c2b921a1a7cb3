package om

import (
	"math/big"
	"testing"
)

func TestEqual(t *testing.T) {
	app := func(t *testing.T) *Node {
		return mustNode(t)(NewApplication(sym(t, "transc1", "sin"), FromInt(1)))
	}
	tcs := []struct {
		name string
		a, b *Node
		eq   bool
	}{
		{"int", FromInt(5), FromInt(5), true},
		{"int-neq", FromInt(5), FromInt(6), false},
		{"big-int", mustBig(t, "123456789012345678901234567890"), mustBig(t, "123456789012345678901234567890"), true},
		{"float", FromFloat(1.5), FromFloat(1.5), true},
		{"float-neq", FromFloat(1.5), FromFloat(2.5), false},
		{"string", FromString("x"), FromString("x"), true},
		{"bytes", FromBytes([]byte{1, 2}), FromBytes([]byte{1, 2}), true},
		{"bytes-neq", FromBytes([]byte{1, 2}), FromBytes([]byte{1, 3}), false},
		{"cross-type", FromInt(1), FromFloat(1), false},
		{"symbol", sym(t, "arith1", "plus"), sym(t, "arith1", "plus"), true},
		{"symbol-cd-neq", sym(t, "arith1", "plus"), sym(t, "arith2", "plus"), false},
		{"application", app(t), app(t), true},
		{"id-neq", FromInt(1).WithID("a"), FromInt(1).WithID("b"), false},
		{"cdbase-neq", sym(t, "c", "n").WithCDBase("http://a"), sym(t, "c", "n").WithCDBase("http://b"), false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.a, tc.b); got != tc.eq {
				t.Errorf("Equal = %v, want %v", got, tc.eq)
			}
			// equality must agree with the total order
			if got := Compare(tc.a, tc.b) == 0; got != tc.eq {
				t.Errorf("Compare = %d, Equal = %v", Compare(tc.a, tc.b), tc.eq)
			}
		})
	}
}

func mustBig(t *testing.T, s string) *Node {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad integer literal %q", s)
	}
	return mustNode(t)(FromBigInt(v))
}

func TestEqualIgnoreMeta(t *testing.T) {
	a := mustNode(t)(NewApplication(sym(t, "transc1", "sin"), FromInt(1).WithID("arg")))
	b := mustNode(t)(NewApplication(sym(t, "transc1", "sin"), FromInt(1)))
	b.WithCDBase("http://example.org/cd")

	if Equal(a, b) {
		t.Errorf("Equal ignored metadata")
	}
	if !EqualIgnoreMeta(a, b) {
		t.Errorf("EqualIgnoreMeta = false, want true")
	}
	// payload differences still count
	c := mustNode(t)(NewApplication(sym(t, "transc1", "cos"), FromInt(1)))
	if EqualIgnoreMeta(a, c) {
		t.Errorf("EqualIgnoreMeta = true for different symbols")
	}
}

func TestCompareOrder(t *testing.T) {
	if Compare(FromInt(1), FromInt(2)) >= 0 {
		t.Errorf("1 not below 2")
	}
	if Compare(FromInt(2), FromInt(1)) <= 0 {
		t.Errorf("2 not above 1")
	}
	// nodes order by type rank before payload
	if Compare(FromInt(99), FromFloat(0)) >= 0 {
		t.Errorf("integer not below float")
	}
	v := mustNode(t)(NewVariable("z"))
	s := sym(t, "zz", "zz")
	if Compare(s, v) >= 0 {
		t.Errorf("symbol not below variable")
	}
}

func TestCompareNil(t *testing.T) {
	if Compare(nil, nil) != 0 {
		t.Errorf("nil not equal to nil")
	}
	if Compare(nil, FromInt(1)) >= 0 {
		t.Errorf("nil not below a node")
	}
	if Compare(FromInt(1), nil) <= 0 {
		t.Errorf("node not above nil")
	}
}

func TestHash(t *testing.T) {
	a := mustNode(t)(NewApplication(sym(t, "arith1", "plus"), FromInt(1), FromInt(2)))
	b := mustNode(t)(NewApplication(sym(t, "arith1", "plus"), FromInt(1), FromInt(2)))
	if a.Hash() != b.Hash() {
		t.Errorf("equal trees hash differently")
	}
	if a.Hash() != a.Hash() {
		t.Errorf("hash unstable across calls")
	}
	c := mustNode(t)(NewApplication(sym(t, "arith1", "plus"), FromInt(1), FromInt(3)))
	if a.Hash() == c.Hash() {
		t.Errorf("distinct trees collide")
	}
	if a.Hash() == a.WithID("x").Hash() {
		t.Errorf("id not hashed")
	}
}
