// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tfctl/apigwctl/internal/confirm"
)

func getRestApiEcho(in *apigateway.GetRestApiInput) (*apigateway.GetRestApiOutput, error) {
	id := awsv2.ToString(in.RestApiId)
	return &apigateway.GetRestApiOutput{Id: in.RestApiId, Name: awsv2.String("api-" + id)}, nil
}

func TestRestApiListWalksPages(t *testing.T) {
	h := newHarness(t)
	h.api.getRestApis = restApiPages(
		map[string][]string{"": {"a", "b"}, "p2": {"c"}},
		map[string]string{"": "p2"},
	)

	require.NoError(t, h.run("restapi", "list", "--output", "raw"))

	assert.Equal(t, []string{"GetRestApis", "GetRestApis"}, h.api.calls)
	assert.Equal(t, "p2", awsv2.ToString(h.api.inputs[1].(*apigateway.GetRestApisInput).Position))

	doc := gjson.Parse(h.stdout.String())
	assert.Equal(t, int64(3), doc.Get("#").Int())
	assert.Equal(t, []any{"a", "b", "c"}, toStrings(doc.Get("#.Id").Array()))
	assert.Empty(t, h.stderr.String())
}

func TestRestApiListSelectAllShape(t *testing.T) {
	tests := []struct {
		name      string
		pages     map[string][]string
		next      map[string]string
		wantPages int64
	}{
		{
			name:      "one page",
			pages:     map[string][]string{"": {"a"}},
			wantPages: 1,
		},
		{
			name:      "two pages",
			pages:     map[string][]string{"": {"a"}, "p2": {"b"}},
			next:      map[string]string{"": "p2"},
			wantPages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.api.getRestApis = restApiPages(tt.pages, tt.next)

			require.NoError(t, h.run("restapi", "list", "--select", "*", "--output", "raw"))

			doc := gjson.Parse(h.stdout.String())
			require.True(t, doc.IsArray())
			assert.Equal(t, tt.wantPages, doc.Get("#").Int())
			assert.Equal(t, "a", doc.Get("0.Items.0.Id").String())
		})
	}
}

func TestRestApiGetSelectAllIsObject(t *testing.T) {
	h := newHarness(t)
	h.api.getRestApi = getRestApiEcho

	require.NoError(t, h.run("restapi", "get", "a1", "--select", "*", "--output", "raw"))

	doc := gjson.Parse(h.stdout.String())
	assert.True(t, doc.IsObject())
	assert.Equal(t, "a1", doc.Get("Id").String())
}

func TestRestApiListSinglePage(t *testing.T) {
	pages := map[string][]string{"": {"a", "b"}, "p2": {"c"}, "p3": {"d"}}
	next := map[string]string{"": "p2", "p2": "p3"}

	tests := []struct {
		name      string
		args      []string
		wantIDs   []any
		wantHint  string
		wantLimit int32
	}{
		{
			name:     "no auto iteration",
			args:     []string{"--no-auto-iteration"},
			wantIDs:  []any{"a", "b"},
			wantHint: "Next position: p2",
		},
		{
			name:     "from a position",
			args:     []string{"--position", "p2"},
			wantIDs:  []any{"c"},
			wantHint: "Next position: p3",
		},
		{
			name:      "page size passed through",
			args:      []string{"--position", "p3", "--limit", "7"},
			wantIDs:   []any{"d"},
			wantLimit: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.api.getRestApis = restApiPages(pages, next)

			require.NoError(t, h.run(append([]string{"restapi", "list", "--output", "raw"}, tt.args...)...))

			require.Len(t, h.api.calls, 1)
			assert.Equal(t, tt.wantLimit, awsv2.ToInt32(h.api.inputs[0].(*apigateway.GetRestApisInput).Limit))
			assert.Equal(t, tt.wantIDs, toStrings(gjson.Get(h.stdout.String(), "#.Id").Array()))
			if tt.wantHint != "" {
				assert.Contains(t, h.stderr.String(), tt.wantHint)
			} else {
				assert.NotContains(t, h.stderr.String(), "Next position")
			}
		})
	}
}

func TestListLimitRange(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		wantErr string
	}{
		{"past int32", "2147483648", "2147483648 is out of range"},
		{"negative", "-1", "must not be negative"},
		{"largest int32", "2147483647", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.api.getRestApis = restApiPages(map[string][]string{"": {"a"}}, nil)

			err := h.run("restapi", "list", "--limit="+tt.limit, "--output", "raw")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, h.api.calls)
				return
			}
			require.NoError(t, err)
			require.Len(t, h.api.inputs, 1)
			assert.Equal(t, int32(2147483647), awsv2.ToInt32(h.api.inputs[0].(*apigateway.GetRestApisInput).Limit))
		})
	}
}

func TestRestApiGet(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantCalls int
		wantOut   string
		wantWarn  bool
	}{
		{
			name:      "positional id",
			args:      []string{"a1", "--select", "Name"},
			wantCalls: 1,
			wantOut:   "\"api-a1\"\n",
		},
		{
			name:      "id flag alias",
			args:      []string{"--api", "a1", "--select", "Id"},
			wantCalls: 1,
			wantOut:   "\"a1\"\n",
		},
		{
			name:      "several ids",
			args:      []string{"a1", "b2", "--select", "Id"},
			wantCalls: 2,
			wantOut:   "\"a1\"\n\"b2\"\n",
		},
		{
			name:      "ids from stdin",
			stdin:     "a1\n\nb2\n",
			args:      []string{"--select", "Id", "-"},
			wantCalls: 2,
			wantOut:   "\"a1\"\n\"b2\"\n",
		},
		{
			name:      "parameter select makes no call",
			args:      []string{"a1", "--select", "^RestApiId"},
			wantCalls: 0,
			wantOut:   "\"a1\"\n",
		},
		{
			name:      "missing required parameter warns and calls",
			args:      []string{"--select", "Name"},
			wantCalls: 1,
			wantOut:   "\"api-\"\n",
			wantWarn:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.stdin = tt.stdin
			h.api.getRestApi = getRestApiEcho

			require.NoError(t, h.run(append([]string{"restapi", "get", "--output", "raw"}, tt.args...)...))

			assert.Len(t, h.api.calls, tt.wantCalls)
			assert.Equal(t, tt.wantOut, h.stdout.String())
			if tt.wantWarn {
				assert.Contains(t, h.stderr.String(), "WARNING: required parameter --rest-api-id is not set")
			} else {
				assert.NotContains(t, h.stderr.String(), "WARNING")
			}
		})
	}
}

func TestRestApiGetErrors(t *testing.T) {
	t.Run("missing property", func(t *testing.T) {
		h := newHarness(t)
		h.api.getRestApi = getRestApiEcho

		err := h.run("restapi", "get", "a1", "--select", "Nope", "--output", "raw")
		require.EqualError(t, err, `property "Nope" not found in the response`)
	})

	t.Run("unknown parameter select", func(t *testing.T) {
		h := newHarness(t)

		err := h.run("restapi", "get", "a1", "--select", "^Nope")
		require.EqualError(t, err, `unknown parameter "Nope"`)
		assert.Empty(t, h.api.calls)
	})

	t.Run("positional on a list", func(t *testing.T) {
		h := newHarness(t)

		err := h.run("restapi", "list", "extra")
		require.EqualError(t, err, `unexpected argument "extra"`)
		assert.Empty(t, h.api.calls)
	})
}

func TestRestApiRemoveConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		answer      bool
		confirmErr  error
		wantCalls   []string
		wantPrompts int
		wantStderr  string
	}{
		{
			name:        "declined",
			args:        []string{"a1"},
			wantPrompts: 1,
			wantStderr:  "DeleteRestApi not performed: declined",
		},
		{
			name:        "approved",
			args:        []string{"a1"},
			answer:      true,
			wantCalls:   []string{"DeleteRestApi"},
			wantPrompts: 1,
		},
		{
			name:       "force skips the prompt",
			args:       []string{"a1", "--force"},
			wantCalls:  []string{"DeleteRestApi"},
			wantStderr: "",
		},
		{
			name:       "what if",
			args:       []string{"a1", "--what-if"},
			wantStderr: `What if: Performing the operation "DeleteRestApi" on target "restapi=a1".`,
		},
		{
			name:        "cannot prompt",
			args:        []string{"a1"},
			confirmErr:  confirm.ErrNotInteractive,
			wantPrompts: 1,
			wantStderr:  "DeleteRestApi not performed: confirmation required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.confirmer.answer = tt.answer
			h.confirmer.err = tt.confirmErr

			require.NoError(t, h.run(append([]string{"restapi", "remove"}, tt.args...)...))

			assert.Equal(t, tt.wantCalls, h.api.calls)
			assert.Len(t, h.confirmer.prompts, tt.wantPrompts)
			assert.Empty(t, h.stdout.String())
			if tt.wantStderr != "" {
				assert.Contains(t, h.stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestConfirmPreference(t *testing.T) {
	tests := []struct {
		name        string
		preference  string
		wantPrompts int
	}{
		{name: "high skips medium", preference: "high", wantPrompts: 0},
		{name: "medium prompts medium", preference: "medium", wantPrompts: 1},
		{name: "none never prompts", preference: "none", wantPrompts: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			t.Setenv("APIGWCTL_CONFIRM", tt.preference)
			h.confirmer.answer = true

			require.NoError(t, h.run("restapi", "new", "pets", "--output", "raw"))

			assert.Len(t, h.confirmer.prompts, tt.wantPrompts)
			assert.Equal(t, []string{"CreateRestApi"}, h.api.calls)
		})
	}
}

func TestMutualExclusionOfForceAndWhatIf(t *testing.T) {
	h := newHarness(t)
	err := h.run("restapi", "remove", "a1", "--force", "--what-if")
	require.EqualError(t, err, "--force and --what-if are mutually exclusive")
	assert.Empty(t, h.api.calls)
}

func TestRestApiNewBuildsRequest(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("restapi", "new", "pets",
		"--description", "pet store",
		"--endpoint-types", "REGIONAL",
		"--tags", "env=dev",
		"--minimum-compression-size", "1024",
		"--output", "raw"))

	require.Len(t, h.api.inputs, 1)
	in := h.api.inputs[0].(*apigateway.CreateRestApiInput)
	assert.Equal(t, "pets", awsv2.ToString(in.Name))
	assert.Equal(t, "pet store", awsv2.ToString(in.Description))
	assert.Equal(t, map[string]string{"env": "dev"}, in.Tags)
	assert.Equal(t, int32(1024), awsv2.ToInt32(in.MinimumCompressionSize))
	require.NotNil(t, in.EndpointConfiguration)
	assert.Len(t, in.EndpointConfiguration.Types, 1)
	assert.Nil(t, in.Policy)
	assert.Nil(t, in.CloneFrom)

	assert.Equal(t, "new1", gjson.Get(h.stdout.String(), "Id").String())
}

func TestRestApiNewWithoutEndpointConfiguration(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("restapi", "new", "pets", "--output", "raw"))

	in := h.api.inputs[0].(*apigateway.CreateRestApiInput)
	assert.Nil(t, in.EndpointConfiguration)
	assert.Nil(t, in.Description)
	assert.Nil(t, in.Tags)
}

func TestRestApiImportReadsBody(t *testing.T) {
	h := newHarness(t)
	def := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, os.WriteFile(def, []byte(`{"openapi":"3.0.1"}`), 0o600))

	require.NoError(t, h.run("restapi", "import", "--body", def, "--parameters", "endpointConfigurationTypes=REGIONAL", "--output", "raw"))

	require.Equal(t, []string{"ImportRestApi"}, h.api.calls)
	in := h.api.inputs[0].(*apigateway.ImportRestApiInput)
	assert.Equal(t, `{"openapi":"3.0.1"}`, string(in.Body))
	assert.Equal(t, map[string]string{"endpointConfigurationTypes": "REGIONAL"}, in.Parameters)
	assert.Equal(t, "imp1", gjson.Get(h.stdout.String(), "Id").String())
}

func TestRestApiImportMissingBodyFile(t *testing.T) {
	h := newHarness(t)

	err := h.run("restapi", "import", "--body", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--body: failed to open body file")
	assert.Empty(t, h.api.calls)
}

func TestStageNewCanarySettings(t *testing.T) {
	t.Run("no canary flags", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.run("stage", "new", "prod", "--api", "a1", "--deployment-id", "d1", "--output", "raw"))

		in := h.api.inputs[0].(*apigateway.CreateStageInput)
		assert.Equal(t, "prod", awsv2.ToString(in.StageName))
		assert.Equal(t, "a1", awsv2.ToString(in.RestApiId))
		assert.Nil(t, in.CanarySettings)
	})

	t.Run("canary flags", func(t *testing.T) {
		h := newHarness(t)
		require.NoError(t, h.run("stage", "new", "prod", "--api", "a1", "--deployment-id", "d1",
			"--canary-percent-traffic", "10", "--output", "raw"))

		in := h.api.inputs[0].(*apigateway.CreateStageInput)
		require.NotNil(t, in.CanarySettings)
		assert.InDelta(t, 10.0, in.CanarySettings.PercentTraffic, 0.0001)
		assert.Nil(t, in.CanarySettings.DeploymentId)
	})
}

func TestStageListSelectsItem(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("stage", "list", "a1", "--output", "raw"))

	assert.Equal(t, []any{"prod", "dev"}, toStrings(gjson.Get(h.stdout.String(), "#.StageName").Array()))
}

func TestApiKeyListMaxItems(t *testing.T) {
	h := newHarness(t)
	svc := &keyService{total: 100}
	h.api.getApiKeys = func(in *apigateway.GetApiKeysInput) (*apigateway.GetApiKeysOutput, error) {
		return svc.fetch(context.Background(), in)
	}

	require.NoError(t, h.run("apikey", "list", "--max-items", "30", "--include-values", "--output", "raw"))

	assert.Equal(t, int64(30), gjson.Get(h.stdout.String(), "#").Int())
	in := h.api.inputs[0].(*apigateway.GetApiKeysInput)
	require.NotNil(t, in.IncludeValues)
	assert.True(t, *in.IncludeValues)
}

func TestApiKeyListPartialResults(t *testing.T) {
	h := newHarness(t)
	svc := &keyService{total: 100, failAt: "25"}
	h.api.getApiKeys = func(in *apigateway.GetApiKeysInput) (*apigateway.GetApiKeysOutput, error) {
		return svc.fetch(context.Background(), in)
	}

	err := h.run("apikey", "list", "--output", "raw")

	var partial *PartialResultsError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 25, partial.Retrieved)
	assert.Equal(t, int64(25), gjson.Get(h.stdout.String(), "#").Int())
}

func TestExportGetWritesOutFile(t *testing.T) {
	h := newHarness(t)
	h.api.getExport = func(*apigateway.GetExportInput) (*apigateway.GetExportOutput, error) {
		return &apigateway.GetExportOutput{
			Body:        []byte("openapi: 3.0.1\n"),
			ContentType: awsv2.String("application/yaml"),
		}, nil
	}
	out := filepath.Join(t.TempDir(), "pets.yaml")

	require.NoError(t, h.run("export", "get", "a1", "--stage", "prod", "--export-type", "oas30",
		"--accepts", "application/yaml", "--out-file", out, "--output", "raw"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.1\n", string(data))

	in := h.api.inputs[0].(*apigateway.GetExportInput)
	assert.Equal(t, "prod", awsv2.ToString(in.StageName))
	assert.Equal(t, "oas30", awsv2.ToString(in.ExportType))

	doc := gjson.Parse(h.stdout.String())
	assert.Equal(t, "application/yaml", doc.Get("ContentType").String())
	assert.Equal(t, gjson.Null, doc.Get("Body").Type)
}

func TestUsagePlanNewRejectsBadStages(t *testing.T) {
	h := newHarness(t)

	err := h.run("usageplan", "new", "gold", "--api-stages", "a1:prod", "--api-stages", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `--api-stages: "bad" is not api-id:stage`)
	assert.Empty(t, h.api.calls)
}

func TestUsagePlanNewBuildsStages(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("usageplan", "new", "gold", "--api-stages", "a1:prod", "--output", "raw"))

	in := h.api.inputs[0].(*apigateway.CreateUsagePlanInput)
	require.Len(t, in.ApiStages, 1)
	assert.Equal(t, "a1", awsv2.ToString(in.ApiStages[0].ApiId))
	assert.Equal(t, "prod", awsv2.ToString(in.ApiStages[0].Stage))
	assert.Nil(t, in.Quota)
	assert.Nil(t, in.Throttle)
}

func TestSchemaMakesNoCall(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("restapi", "list", "--schema"))

	assert.Empty(t, h.api.calls)
	assert.Contains(t, h.stdout.String(), "Name")
}

func toStrings(results []gjson.Result) []any {
	out := make([]any, 0, len(results))
	for _, r := range results {
		out = append(out, r.String())
	}
	return out
}
