// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// schemaTag represents a discovered field used when emitting schema
// information (--schema flag).
type schemaTag struct {
	Name string
	Type string
}

// print renders the tag into its display form.
func (t schemaTag) print() string {
	return fmt.Sprintf("%-40s %s", t.Name, t.Type)
}

// maxSchemaDepth limits the depth of schema walking to prevent infinite
// recursion.
const maxSchemaDepth = 1

var timeType = reflect.TypeOf(time.Time{})

// DumpSchema writes a sorted list of the attributes of typ to w. If w is nil,
// os.Stdout is used.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}

	fmt.Fprintf(w,
		`Attributes of %s that are available to the --attrs, --filter and --sort
flags. Nested attributes use . notation, e.g. --attrs EndpointConfiguration.Types.
`, typ.Name())
	fmt.Fprintln(w, "")

	if typ.Kind() != reflect.Struct {
		log.Debugf("not a struct: %s", typ)
		return
	}

	tags := dumpSchemaWalker("", typ, 0)
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})

	for _, tag := range tags {
		fmt.Fprintln(w, strings.TrimRight(tag.print(), " "))
	}
}

// dumpSchemaWalker recursively walks a struct type discovering exported
// fields.
func dumpSchemaWalker(holder string, typ reflect.Type, depth int) []schemaTag {
	tags := make([]schemaTag, 0)

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)

		if !field.IsExported() || field.Name == "ResultMetadata" {
			continue
		}

		name := field.Name
		if holder != "" {
			name = holder + "." + name
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		tags = append(tags, schemaTag{Name: name, Type: typeName(ft)})

		if depth < maxSchemaDepth && ft.Kind() == reflect.Struct && ft != timeType {
			tags = append(tags, dumpSchemaWalker(name, ft, depth+1)...)
		}
	}

	return tags
}

// typeName renders a short JSON-ish type name.
func typeName(t reflect.Type) string {
	if t == timeType {
		return "time"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return "bytes"
		}
		return "list"
	case reflect.Map:
		return "map"
	case reflect.Struct:
		return "object"
	default:
		return t.Kind().String()
	}
}
