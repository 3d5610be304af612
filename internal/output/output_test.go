// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/attrs"
)

// newCmd builds an unexecuted command carrying the output flags. Flag values
// are read from their defaults.
func newCmd(output, filter, sort string, titles bool) *cli.Command {
	return &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: output},
			&cli.StringFlag{Name: "filter", Value: filter},
			&cli.StringFlag{Name: "sort", Value: sort},
			&cli.BoolFlag{Name: "titles", Value: titles},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "local"},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
		Metadata: map[string]interface{}{},
	}
}

const restApis = `[
	{"Id":"b2","Name":"orders-api","CreatedDate":"2024-03-01T00:00:00Z","MinimumCompressionSize":512},
	{"Id":"a1","Name":"pets-api","CreatedDate":"2024-01-01T00:00:00Z","MinimumCompressionSize":1024},
	{"Id":"c3","Name":"admin","CreatedDate":"2024-02-01T00:00:00Z"}
]`

func defaultAttrs() attrs.AttrList {
	return attrs.AttrList{
		{Key: "Id", OutputKey: "Id", Include: true},
		{Key: "Name", OutputKey: "Name", Include: true},
	}
}

func TestSortDataset(t *testing.T) {
	testData := func() []map[string]interface{} {
		return []map[string]interface{}{
			{"Name": "zebra", "Size": 3.0, "Enabled": true},
			{"Name": "Alpha", "Size": 1.5, "Enabled": false},
			{"Name": "beta", "Size": 2.0, "Enabled": true},
		}
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{name: "empty spec keeps order", spec: "", wantOrder: []string{"zebra", "Alpha", "beta"}},
		{name: "ascending by name", spec: "Name", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "descending by name", spec: "-Name", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "key is case insensitive", spec: "name", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "case sensitive", spec: "!Name", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "numeric with fractions", spec: "Size", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "descending numeric", spec: "-Size", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "bool then name", spec: "Enabled,Name", wantOrder: []string{"Alpha", "beta", "zebra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := testData()
			SortDataset(data, tt.spec)

			got := make([]string, 0, len(data))
			for _, row := range data {
				got = append(got, row["Name"].(string))
			}
			assert.Equal(t, tt.wantOrder, got)
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		empty []string
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "nil custom empty", value: nil, empty: []string{"-"}, want: "-"},
		{name: "zero string", value: "", empty: []string{"-"}, want: "-"},
		{name: "string", value: "pets", want: "pets"},
		{name: "int", value: 7, want: "7"},
		{name: "integral float", value: 1024.0, want: "1024"},
		{name: "fractional float", value: 10.5, want: "10.5"},
		{name: "bool", value: true, want: "true"},
		{name: "list", value: []interface{}{"REGIONAL"}, want: `["REGIONAL"]`},
		{name: "map", value: map[string]interface{}{"env": "prod"}, want: `{"env":"prod"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterfaceToString(tt.value, tt.empty...))
		})
	}
}

func TestAttrsFromData(t *testing.T) {
	al := AttrsFromData([]byte(`[{"Id":"a","Name":"n","Tags":{"x":"y"}},{"Other":1}]`))
	require.Len(t, al, 3)
	assert.Equal(t, "Id", al[0].Key)
	assert.Equal(t, "Name", al[1].OutputKey)
	assert.Equal(t, "Tags", al[2].Key)
	assert.True(t, al[2].Include)

	al = AttrsFromData([]byte(`{"Id":"a","ResultMetadata":{}}`))
	require.Len(t, al, 1)
	assert.Equal(t, "Id", al[0].Key)

	assert.Nil(t, AttrsFromData([]byte(`[]`)))
	assert.Nil(t, AttrsFromData([]byte(`["a","b"]`)))
	assert.Nil(t, AttrsFromData([]byte(`"scalar"`)))
}

func TestIsTabular(t *testing.T) {
	assert.True(t, IsTabular([]byte(`{"Id":"a"}`)))
	assert.True(t, IsTabular([]byte(`[{"Id":"a"}]`)))
	assert.False(t, IsTabular([]byte(`[]`)))
	assert.False(t, IsTabular([]byte(`["a"]`)))
	assert.False(t, IsTabular([]byte(`"a"`)))
	assert.False(t, IsTabular([]byte(`42`)))
}

func TestSliceDiceSpit_Raw(t *testing.T) {
	var out bytes.Buffer

	err := SliceDiceSpit([]byte(`{"Id":"a"}`), defaultAttrs(), newCmd("raw", "", "", false), &out, nil)

	require.NoError(t, err)
	assert.Equal(t, "{\"Id\":\"a\"}\n", out.String())
}

func TestSliceDiceSpit_JSON(t *testing.T) {
	var out bytes.Buffer
	al := defaultAttrs()
	al = append(al, attrs.Attr{Key: "MinimumCompressionSize", OutputKey: "size", Include: false})

	err := SliceDiceSpit([]byte(restApis), al, newCmd("json", "size>600", "", false), &out, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"Id":"a1","Name":"pets-api"}]`, out.String())
}

func TestSliceDiceSpit_YAML(t *testing.T) {
	var out bytes.Buffer

	err := SliceDiceSpit([]byte(restApis), defaultAttrs(), newCmd("yaml", "", "Name", false), &out, nil)

	require.NoError(t, err)
	assert.Equal(t, "- Id: c3\n  Name: admin\n- Id: b2\n  Name: orders-api\n- Id: a1\n  Name: pets-api\n", out.String())
}

func TestSliceDiceSpit_TextTable(t *testing.T) {
	var out bytes.Buffer

	err := SliceDiceSpit([]byte(restApis), defaultAttrs(), newCmd("text", "name^p", "", true), &out, nil)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Id")
	assert.Contains(t, lines[0], "Name")
	assert.Contains(t, lines[1], "a1")
	assert.Contains(t, lines[1], "pets-api")
}

func TestSliceDiceSpit_SingleObject(t *testing.T) {
	var out bytes.Buffer

	err := SliceDiceSpit([]byte(`{"Id":"a1","Name":"pets-api"}`), defaultAttrs(), newCmd("json", "", "", false), &out, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `[{"Id":"a1","Name":"pets-api"}]`, out.String())
}

func TestSliceDiceSpit_PostProcess(t *testing.T) {
	var out bytes.Buffer
	called := false

	err := SliceDiceSpit([]byte(restApis), defaultAttrs(), newCmd("text", "", "", false), &out, func(rows []map[string]interface{}) error {
		called = true
		for _, row := range rows {
			row["Name"] = strings.ToUpper(row["Name"].(string))
		}
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, out.String(), "PETS-API")
}

func TestSliceDiceSpit_Scalars(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		output string
		want   string
	}{
		{name: "string list text", raw: `["a1","b2"]`, output: "text", want: "a1\nb2\n"},
		{name: "single string text", raw: `"a1"`, output: "text", want: "a1\n"},
		{name: "number text", raw: `42`, output: "text", want: "42\n"},
		{name: "string list json", raw: `["a1","b2"]`, output: "json", want: "[\"a1\",\"b2\"]\n"},
		{name: "string list yaml", raw: `["a1","b2"]`, output: "yaml", want: "- a1\n- b2\n"},
		{name: "empty list text", raw: `[]`, output: "text", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := SliceDiceSpit([]byte(tt.raw), nil, newCmd(tt.output, "", "", false), &out, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestTableWriter(t *testing.T) {
	t.Run("empty result set writes nothing", func(t *testing.T) {
		var out bytes.Buffer
		TableWriter(nil, defaultAttrs(), newCmd("text", "", "", true), &out)
		assert.Empty(t, out.String())
	})

	t.Run("hidden attrs and missing values", func(t *testing.T) {
		var out bytes.Buffer
		al := attrs.AttrList{
			{OutputKey: "Name", Include: true},
			{OutputKey: "Secret", Include: false},
			{OutputKey: "Description", Include: true},
		}
		rows := []map[string]interface{}{{"Name": "pets", "Secret": "hunter2"}}

		TableWriter(rows, al, newCmd("text", "", "", false), &out)

		assert.Contains(t, out.String(), "pets")
		assert.Contains(t, out.String(), "-")
		assert.NotContains(t, out.String(), "hunter2")
	})

	t.Run("header and footer metadata", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newCmd("text", "", "", false)
		cmd.Metadata["header"] = "REST APIs"
		cmd.Metadata["footer"] = "3 items"

		TableWriter([]map[string]interface{}{{"Id": "a"}}, attrs.AttrList{{OutputKey: "Id", Include: true}}, cmd, &out)

		assert.Contains(t, out.String(), "REST APIs")
		assert.Contains(t, out.String(), "3 items")
	})
}

type schemaFixture struct {
	Id                    *string
	CreatedDate           *time.Time
	Tags                  map[string]string
	Types                 []string
	Body                  []byte
	Enabled               bool
	Limit                 *int32
	EndpointConfiguration *endpointFixture
	ResultMetadata        struct{ X int }
	noCopy                int //nolint:unused
}

type endpointFixture struct {
	Types          []string
	VpcEndpointIds []string
	inner          *endpointFixture //nolint:unused
}

func TestDumpSchema(t *testing.T) {
	var out bytes.Buffer

	DumpSchema(reflect.TypeOf(&schemaFixture{}), &out)

	text := out.String()
	assert.Contains(t, text, "Attributes of schemaFixture")

	for _, want := range []string{
		"Body", "CreatedDate", "Enabled", "EndpointConfiguration",
		"EndpointConfiguration.Types", "EndpointConfiguration.VpcEndpointIds",
		"Id", "Limit", "Tags", "Types",
	} {
		assert.Contains(t, text, "\n"+want+" ", "missing %s", want)
	}
	assert.NotContains(t, text, "ResultMetadata")
	assert.NotContains(t, text, "noCopy")
	assert.NotContains(t, text, "inner")
	assert.NotContains(t, text, "CreatedDate.")
}

func TestDumpSchemaWalker_Types(t *testing.T) {
	tags := dumpSchemaWalker("", reflect.TypeOf(schemaFixture{}), 0)

	types := map[string]string{}
	for _, tag := range tags {
		types[tag.Name] = tag.Type
	}

	assert.Equal(t, "string", types["Id"])
	assert.Equal(t, "time", types["CreatedDate"])
	assert.Equal(t, "map", types["Tags"])
	assert.Equal(t, "list", types["Types"])
	assert.Equal(t, "bytes", types["Body"])
	assert.Equal(t, "bool", types["Enabled"])
	assert.Equal(t, "number", types["Limit"])
	assert.Equal(t, "object", types["EndpointConfiguration"])
}

func BenchmarkSortDataset(b *testing.B) {
	data := make([]map[string]interface{}, 1000)
	for i := range data {
		data[i] = map[string]interface{}{"Name": strings.Repeat("x", i%17), "Size": float64(i % 31)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SortDataset(data, "Size,-Name")
	}
}
