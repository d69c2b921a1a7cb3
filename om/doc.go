// Package om provides the object model for OpenMath 2.0 mathematical
// objects.
//
// # Overview
//
// An OpenMath object is a finite tree of nodes. All objects (whether
// decoded from the XML encoding, produced by the convert package, or
// built programmatically) are represented as om.Node trees.
//
// The model works as a recursive tagged union: the Type field selects
// the variant and determines which payload fields are populated.
//
// # Node Types
//
//   - IntegerType: arbitrary-precision integer (Int)
//   - FloatType: IEEE double (Float)
//   - StringType: Unicode text (String)
//   - BytesType: raw byte sequence (Bytes)
//   - SymbolType: content-dictionary reference (CD, Name)
//   - VariableType: named variable (Name)
//   - ApplicationType: head applied to arguments (Head, Values)
//   - AttributionType: subject with key-value pairs (Body, Pairs)
//   - BindingType: binder, bound variables, body (Head, Values, Body)
//   - ErrorType: error symbol with arguments (Head, Values)
//   - ReferenceType: reference to another object by URI (Href)
//   - ForeignType: non-OpenMath payload (Encoding, Foreign)
//
// # Creating Nodes
//
// Use constructor functions to create nodes; they validate their
// payloads and report ErrInvalidNode on structural violations:
//
//	x, err := om.NewVariable("x")
//	sin, err := om.NewSymbol("transc1", "sin")
//	app, err := om.NewApplication(sin, x)
//	one := om.FromInt(1)
//
// Attribution pairs always key on symbols; duplicate keys are legal
// and their interpretation is left to the consumer. Binding variables
// must be variables or attributed variables.
//
// # Metadata
//
// Every node carries an optional id and, where the XML encoding allows
// it, an optional explicit cdbase. cdbase is inherited top-down:
//
//	base := node.EffectiveCDBase()
//
// resolves against the nearest ancestor's explicit cdbase and falls
// back to DefaultCDBase. Nodes maintain Parent back-links for this
// resolution; ParentIndex is the index within the parent's Values (or
// Pairs) and is -1 for heads, binders, bodies and subjects.
//
// # Comparison and Hashing
//
// Equality is structural and includes id and explicit cdbase placement:
//
//	equal := om.Equal(a, b)
//	loose := om.EqualIgnoreMeta(a, b)
//	order := om.Compare(a, b)
//
// Nodes can be hashed for caching and deduplication:
//
//	h := node.Hash()
//
// # Thread Safety
//
// Node trees hold no shared mutable state. Distinct trees may be used
// concurrently without synchronization; a single tree must not be
// mutated while another goroutine reads it.
//
// # Related Packages
//
//   - github.com/OpenMath/go-openmath/encode - Encodes nodes to the XML encoding
//   - github.com/OpenMath/go-openmath/parse - Decodes the XML encoding into nodes
//   - github.com/OpenMath/go-openmath/convert - Maps Go values to and from nodes
package om
