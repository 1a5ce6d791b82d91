package ast

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/orizon-lang/ecmaparse/internal/position"
)

var spanType = reflect.TypeOf(position.Span{})

// Dump converts n into nested maps and slices suitable for JSON encoding.
// Each node becomes a map whose "type" entry is its kind name. When spans
// is set, "start" and "end" hold byte offsets.
func Dump(n Node, spans bool) interface{} {
	if isNil(n) {
		return nil
	}

	out := map[string]interface{}{"type": n.Kind().String()}
	dumpStruct(out, reflect.ValueOf(n).Elem(), spans)

	return out
}

func dumpStruct(out map[string]interface{}, v reflect.Value, spans bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := v.Field(i)

		switch {
		case sf.Type == spanType:
			if spans {
				span := fv.Interface().(position.Span)
				out["start"] = span.Start.Offset
				out["end"] = span.End.Offset
			}
		case sf.Anonymous && sf.Type.Kind() == reflect.Struct:
			dumpStruct(out, fv, spans)
		case sf.Name == "Parens":
			if fv.Bool() {
				out["parenthesized"] = true
			}
		default:
			out[jsonName(sf.Name)] = dumpValue(fv, spans)
		}
	}
}

func dumpValue(v reflect.Value, spans bool) interface{} {
	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if n, ok := v.Interface().(Node); ok {
			return Dump(n, spans)
		}
		return dumpValue(v.Elem(), spans)
	case reflect.Slice:
		if v.IsNil() {
			return []interface{}{}
		}
		items := make([]interface{}, v.Len())
		for i := range items {
			items[i] = dumpValue(v.Index(i), spans)
		}
		return items
	case reflect.Int:
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		return v.Int()
	}

	return v.Interface()
}

func jsonName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if name == "ID" {
		return "id"
	}

	return string(unicode.ToLower(r)) + name[size:]
}
