package encode

import "github.com/OpenMath/go-openmath/om"

func MustString(node *om.Node) string {
	d, err := Bytes(node)
	if err != nil {
		panic(err)
	}
	return string(d)
}
