// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/smithy-go/middleware"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/aws"
	"github.com/tfctl/apigwctl/internal/meta"
)

// fakeAPI records every call. Operations without a stub go through a real
// client whose transport answers 200 with an empty JSON object, so the
// recorded input is the request as the cmdlet built it.
type fakeAPI struct {
	aws.APIGatewayAPI

	calls  []string
	inputs []any

	getRestApis   func(*apigateway.GetRestApisInput) (*apigateway.GetRestApisOutput, error)
	getRestApi    func(*apigateway.GetRestApiInput) (*apigateway.GetRestApiOutput, error)
	createRestApi func(*apigateway.CreateRestApiInput) (*apigateway.CreateRestApiOutput, error)
	importRestApi func(*apigateway.ImportRestApiInput) (*apigateway.ImportRestApiOutput, error)
	getApiKeys    func(*apigateway.GetApiKeysInput) (*apigateway.GetApiKeysOutput, error)
	getExport     func(*apigateway.GetExportInput) (*apigateway.GetExportOutput, error)
}

func newFakeAPI() *fakeAPI {
	f := &fakeAPI{}
	f.APIGatewayAPI = apigateway.New(apigateway.Options{
		Region:      "us-east-1",
		Credentials: awsv2.AnonymousCredentials{},
		Retryer:     awsv2.NopRetryer{},
		HTTPClient:  emptyJSON{},
		APIOptions: []func(*middleware.Stack) error{
			func(stack *middleware.Stack) error {
				// Required members are left to the cmdlet warning.
				_, _ = stack.Initialize.Remove("OperationInputValidation")
				return stack.Initialize.Add(middleware.InitializeMiddlewareFunc("fakeRecord",
					func(ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler) (middleware.InitializeOutput, middleware.Metadata, error) {
						f.record(middleware.GetOperationName(ctx), in.Parameters)
						return next.HandleInitialize(ctx, in)
					}), middleware.Before)
			},
		},
	})
	return f
}

// emptyJSON answers every request with 200 and {}.
type emptyJSON struct{}

func (emptyJSON) Do(r *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode:    http.StatusOK,
		ContentLength: 2,
		Header:        http.Header{"Content-Type": []string{"application/json"}},
		Body:          io.NopCloser(strings.NewReader("{}")),
		Request:       r,
	}, nil
}

// input returns the recorded input of the last call to op.
func (f *fakeAPI) input(op string) any {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i] == op {
			return f.inputs[i]
		}
	}
	return nil
}

func (f *fakeAPI) record(op string, in any) {
	f.calls = append(f.calls, op)
	f.inputs = append(f.inputs, in)
}

func (f *fakeAPI) GetRestApis(_ context.Context, in *apigateway.GetRestApisInput, _ ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
	// Copy so later cursor updates do not rewrite the recorded input.
	cp := *in
	f.record("GetRestApis", &cp)
	return f.getRestApis(in)
}

func (f *fakeAPI) GetRestApi(_ context.Context, in *apigateway.GetRestApiInput, _ ...func(*apigateway.Options)) (*apigateway.GetRestApiOutput, error) {
	f.record("GetRestApi", in)
	return f.getRestApi(in)
}

func (f *fakeAPI) CreateRestApi(_ context.Context, in *apigateway.CreateRestApiInput, _ ...func(*apigateway.Options)) (*apigateway.CreateRestApiOutput, error) {
	f.record("CreateRestApi", in)
	if f.createRestApi == nil {
		return &apigateway.CreateRestApiOutput{Id: awsv2.String("new1"), Name: in.Name}, nil
	}
	return f.createRestApi(in)
}

func (f *fakeAPI) UpdateRestApi(_ context.Context, in *apigateway.UpdateRestApiInput, _ ...func(*apigateway.Options)) (*apigateway.UpdateRestApiOutput, error) {
	f.record("UpdateRestApi", in)
	return &apigateway.UpdateRestApiOutput{Id: in.RestApiId}, nil
}

func (f *fakeAPI) DeleteRestApi(_ context.Context, in *apigateway.DeleteRestApiInput, _ ...func(*apigateway.Options)) (*apigateway.DeleteRestApiOutput, error) {
	f.record("DeleteRestApi", in)
	return &apigateway.DeleteRestApiOutput{}, nil
}

func (f *fakeAPI) ImportRestApi(_ context.Context, in *apigateway.ImportRestApiInput, _ ...func(*apigateway.Options)) (*apigateway.ImportRestApiOutput, error) {
	f.record("ImportRestApi", in)
	if f.importRestApi == nil {
		return &apigateway.ImportRestApiOutput{Id: awsv2.String("imp1")}, nil
	}
	return f.importRestApi(in)
}

func (f *fakeAPI) CreateStage(_ context.Context, in *apigateway.CreateStageInput, _ ...func(*apigateway.Options)) (*apigateway.CreateStageOutput, error) {
	f.record("CreateStage", in)
	return &apigateway.CreateStageOutput{StageName: in.StageName, DeploymentId: in.DeploymentId}, nil
}

func (f *fakeAPI) GetStages(_ context.Context, in *apigateway.GetStagesInput, _ ...func(*apigateway.Options)) (*apigateway.GetStagesOutput, error) {
	f.record("GetStages", in)
	return &apigateway.GetStagesOutput{Item: []types.Stage{
		{StageName: awsv2.String("prod")},
		{StageName: awsv2.String("dev")},
	}}, nil
}

func (f *fakeAPI) GetApiKeys(_ context.Context, in *apigateway.GetApiKeysInput, _ ...func(*apigateway.Options)) (*apigateway.GetApiKeysOutput, error) {
	cp := *in
	f.record("GetApiKeys", &cp)
	return f.getApiKeys(in)
}

func (f *fakeAPI) GetExport(_ context.Context, in *apigateway.GetExportInput, _ ...func(*apigateway.Options)) (*apigateway.GetExportOutput, error) {
	f.record("GetExport", in)
	return f.getExport(in)
}

func (f *fakeAPI) CreateUsagePlan(_ context.Context, in *apigateway.CreateUsagePlanInput, _ ...func(*apigateway.Options)) (*apigateway.CreateUsagePlanOutput, error) {
	f.record("CreateUsagePlan", in)
	return &apigateway.CreateUsagePlanOutput{Id: awsv2.String("plan1"), Name: in.Name}, nil
}

// scriptedConfirmer answers every prompt with answer.
type scriptedConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (s *scriptedConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	return s.answer, s.err
}

// harness runs the root command against a fakeAPI.
type harness struct {
	api       *fakeAPI
	confirmer *scriptedConfirmer
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	stdin     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("APIGWCTL_CACHE_DIR", t.TempDir())
	t.Setenv("APIGWCTL_CONFIRM", "high")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("APIGWCTL_ENDPOINT_URL", "")
	return &harness{api: newFakeAPI(), confirmer: &scriptedConfirmer{}}
}

func (h *harness) meta() meta.Meta {
	return meta.Meta{
		NewClient: func(context.Context, *cli.Command) (aws.APIGatewayAPI, error) { return h.api, nil },
		Confirmer: h.confirmer,
		Stdin:     strings.NewReader(h.stdin),
		Stdout:    &h.stdout,
		Stderr:    &h.stderr,
	}
}

func (h *harness) run(args ...string) error {
	h.stdout.Reset()
	h.stderr.Reset()
	root := NewRoot(h.meta())
	return root.Run(context.Background(), append([]string{"apigwctl"}, args...))
}

// restApiPages serves GetRestApis from pages keyed by the requested position.
func restApiPages(pages map[string][]string, next map[string]string) func(*apigateway.GetRestApisInput) (*apigateway.GetRestApisOutput, error) {
	return func(in *apigateway.GetRestApisInput) (*apigateway.GetRestApisOutput, error) {
		pos := awsv2.ToString(in.Position)
		out := &apigateway.GetRestApisOutput{}
		for _, id := range pages[pos] {
			out.Items = append(out.Items, types.RestApi{Id: awsv2.String(id), Name: awsv2.String("api-" + id)})
		}
		if n := next[pos]; n != "" {
			out.Position = awsv2.String(n)
		}
		return out, nil
	}
}
