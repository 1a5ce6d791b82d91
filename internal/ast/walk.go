package ast

import (
	"reflect"
	"sync"
)

// VisitFunc handles one node. Returning false skips the node's children.
type VisitFunc func(n Node) bool

// Visitor maps node kinds to handlers. Kinds without a handler are
// traversed without a callback.
type Visitor map[Kind]VisitFunc

// Walk traverses the tree rooted at n in source order, calling the handler
// registered for each node's kind before its children.
func Walk(n Node, v Visitor) {
	if isNil(n) {
		return
	}
	if fn, ok := v[n.Kind()]; ok && !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, v)
	}
}

// Inspect traverses the tree rooted at n calling f for every node. When f
// returns false the children of that node are skipped.
func Inspect(n Node, f func(Node) bool) {
	if isNil(n) || !f(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, f)
	}
}

// Children returns the direct child nodes of n in field order, which
// follows source order. Nil children and array holes are omitted.
func Children(n Node) []Node {
	if isNil(n) {
		return nil
	}

	v := reflect.ValueOf(n).Elem()
	var out []Node
	for _, f := range childFields(v.Type()) {
		fv := v.FieldByIndex(f.index)
		if f.slice {
			for i := 0; i < fv.Len(); i++ {
				if c, ok := nodeOf(fv.Index(i)); ok {
					out = append(out, c)
				}
			}
			continue
		}
		if c, ok := nodeOf(fv); ok {
			out = append(out, c)
		}
	}

	return out
}

var nodeType = reflect.TypeOf((*Node)(nil)).Elem()

type childField struct {
	index []int
	slice bool
}

var fieldCache sync.Map // reflect.Type -> []childField

func childFields(t reflect.Type) []childField {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]childField)
	}

	var fields []childField
	var collect func(t reflect.Type, prefix []int)
	collect = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			index := append(append([]int(nil), prefix...), i)
			switch {
			case sf.Anonymous && sf.Type.Kind() == reflect.Struct:
				collect(sf.Type, index)
			case sf.Type.Implements(nodeType):
				fields = append(fields, childField{index: index})
			case sf.Type.Kind() == reflect.Slice && sf.Type.Elem().Implements(nodeType):
				fields = append(fields, childField{index: index, slice: true})
			}
		}
	}
	collect(t, nil)

	fieldCache.Store(t, fields)

	return fields
}

func nodeOf(v reflect.Value) (Node, bool) {
	if (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) && v.IsNil() {
		return nil, false
	}
	n, ok := v.Interface().(Node)

	return n, ok
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)

	return v.Kind() == reflect.Ptr && v.IsNil()
}

// IsNil reports whether n is nil or a typed nil pointer.
func IsNil(n Node) bool { return isNil(n) }
