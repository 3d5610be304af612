// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/apigwctl/internal/log"
)

// Attr is one output column of a response item, e.g. the Name or CreatedDate
// of a RestApi.
type Attr struct {
	// Key is the gjson path of the value, relative to each item.
	Key string `yaml:"key" json:"Key"`
	// Include is false for attrs used only for filtering and sorting.
	Include bool `yaml:"include" json:"Include"`
	// OutputKey names the value in the output and titles its text column.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// TransformSpec holds the case, length and time transforms.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

var lengthSpec = regexp.MustCompile(`-?\d+`)

// Transform applies the attr's transform spec to one value.
//
// Case and length transforms work on strings. SDK maps such as Tags and
// string lists such as BinaryMediaTypes are first flattened to "k=v,k=v" and
// "a,b" so they can be cased and cut like any other column. A time-only spec
// leaves them alone.
func (a *Attr) Transform(value interface{}) interface{} {
	spec := a.TransformSpec
	if spec == "" {
		return value
	}

	reshape := strings.ContainsAny(spec, "lLuU") || lengthSpec.MatchString(spec)

	result, ok := value.(string)
	if !ok {
		if !reshape {
			log.Tracef("non-string value: value=%v", value)
			return value
		}
		if result, ok = flatten(value); !ok {
			log.Tracef("value not flattened: value=%v", value)
			return value
		}
	}

	if strings.ContainsAny(spec, "tT") {
		result = transformTime(result, strings.Contains(spec, "T"))
	}
	result = transformCase(result, spec)
	result = transformLength(result, spec)

	return result
}

// flatten renders a map or list of scalars as one string. Map keys are sorted.
func flatten(value interface{}) (string, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			s, ok := scalar(v[k])
			if !ok {
				return "", false
			}
			parts = append(parts, k+"="+s)
		}
		return strings.Join(parts, ","), true
	case []interface{}:
		parts := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := scalar(e)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ","), true
	}
	return "", false
}

func scalar(v interface{}) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case bool, float64, int, int64:
		return fmt.Sprint(s), true
	case nil:
		return "", true
	}
	return "", false
}

// transformTime converts an RFC3339 timestamp to local time, or to a relative
// "3 days ago" form. Anything else is returned as is.
func transformTime(s string, relative bool) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	local := t.In(time.Local)
	if relative {
		log.Tracef("time ago: value=%s", s)
		return humanize.Time(local)
	}
	log.Tracef("time local: value=%s", s)
	return local.Format("2006-01-02T15:04:05MST")
}

// transformCase applies the last case letter of spec. A global "*::U" is
// prepended to the attr's own spec, so the attr's letter wins.
func transformCase(s string, spec string) string {
	lastL := strings.LastIndexAny(spec, "lL")
	lastU := strings.LastIndexAny(spec, "uU")
	switch {
	case lastL > lastU:
		return strings.ToLower(s)
	case lastU > lastL:
		return strings.ToUpper(s)
	}
	return s
}

// transformLength applies the last length of spec. A positive length keeps
// the head, a negative one keeps both ends around "..".
func transformLength(s string, spec string) string {
	match := lengthSpec.FindAllString(spec, -1)
	if len(match) == 0 {
		return s
	}

	l, _ := strconv.Atoi(match[len(match)-1])
	abs := l
	if abs < 0 {
		abs = -abs
	}
	if len(s) <= abs {
		return s
	}

	if l < 0 {
		keep := max(abs/2-1, 0)
		log.Tracef("length middle: len=%d", abs)
		return s[:keep] + ".." + s[len(s)-keep:]
	}
	log.Tracef("length trunc: len=%d", abs)
	return s[:l]
}

// AttrList is the ordered set of output columns.
type AttrList []Attr

// Set parses a comma separated --attrs value. Each spec is
// [!]key[:outputKey[:transform]]. A key already in the list, matched by key or
// output key in any case, is updated in place so users can rename, hide or
// transform the default columns of a cmdlet.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("early return: value=%s", value)
		return nil
	}

	for _, spec := range strings.Split(value, ",") {
		attr := parseSpec(spec)

		if i := a.index(attr.Key); i >= 0 {
			(*a)[i].Include = attr.Include
			(*a)[i].OutputKey = attr.OutputKey
			(*a)[i].TransformSpec = attr.TransformSpec
			log.Tracef("existing updated: i=%d", i)
			continue
		}

		attr.Key = strings.TrimPrefix(attr.Key, ".")
		*a = append(*a, attr)
		log.Tracef("attr appended: key=%s", attr.Key)
	}

	return nil
}

func parseSpec(spec string) Attr {
	fields := strings.Split(spec, ":")

	attr := Attr{Include: true, Key: strings.TrimSpace(fields[0])}
	if strings.HasPrefix(attr.Key, "!") {
		attr.Include = false
		attr.Key = attr.Key[1:]
	}
	if attr.Key == "*" {
		attr.Include = false
	}

	switch {
	case len(fields) == 1:
		segments := strings.Split(attr.Key, ".")
		attr.OutputKey = segments[len(segments)-1]
	case strings.TrimSpace(fields[1]) != "":
		attr.OutputKey = strings.TrimSpace(fields[1])
	default:
		attr.OutputKey = attr.Key
	}

	if len(fields) > 2 {
		attr.TransformSpec = strings.TrimSpace(fields[2])
	}

	log.Tracef("spec parsed: key=%s, outputKey=%s, transform=%s", attr.Key, attr.OutputKey, attr.TransformSpec)
	return attr
}

func (a *AttrList) index(key string) int {
	for i := range *a {
		if strings.EqualFold((*a)[i].Key, key) || strings.EqualFold((*a)[i].OutputKey, key) {
			return i
		}
	}
	return -1
}

// SetGlobalTransformSpec prepends the spec of the first "*" attr to the spec
// of every attr.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for _, attr := range *a {
		if attr.Key == "*" {
			spec = attr.TransformSpec
			break
		}
	}
	if spec == "" {
		return nil
	}

	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	log.Debugf("global spec prepended: spec=%s", spec)

	return nil
}

// String renders the list in the --attrs syntax.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
