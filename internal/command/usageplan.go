// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/aws"
	"github.com/tfctl/apigwctl/internal/confirm"
	"github.com/tfctl/apigwctl/internal/meta"
)

var (
	usageplanDefaultAttrs    = []string{"Id", "Name", "Description", "ProductCode"}
	usageplankeyDefaultAttrs = []string{"Id", "Name", "Type"}
	apikeyDefaultAttrs       = []string{"Id", "Name", "Enabled", "CreatedDate", "CustomerId"}
)

var (
	usagePlanIDParam = Param{Name: "usage-plan-id", Aliases: []string{"plan"}, Usage: "identifier of the usage plan", Required: true}
	apiKeyParam      = Param{Name: "api-key", Aliases: []string{"key"}, Usage: "identifier of the API key", Required: true}
)

var usagePlanLimitParams = []Param{
	{Name: "quota-limit", Usage: "maximum requests per quota period", Kind: KindInt},
	{Name: "quota-offset", Usage: "days to offset the quota period", Kind: KindInt},
	{Name: "quota-period", Usage: "DAY, WEEK or MONTH"},
	{Name: "throttle-burst-limit", Usage: "request burst limit", Kind: KindInt},
	{Name: "throttle-rate-limit", Usage: "steady-state requests per second", Kind: KindFloat},
}

func quotaSettings(b *Binder) *types.QuotaSettings {
	if !b.AnySet("quota-limit", "quota-offset", "quota-period") {
		return nil
	}
	return &types.QuotaSettings{
		Limit:  b.Int32Value("quota-limit"),
		Offset: b.Int32Value("quota-offset"),
		Period: Enum[types.QuotaPeriodType](b, "quota-period"),
	}
}

func throttleSettings(b *Binder) *types.ThrottleSettings {
	if !b.AnySet("throttle-burst-limit", "throttle-rate-limit") {
		return nil
	}
	return &types.ThrottleSettings{
		BurstLimit: b.Int32Value("throttle-burst-limit"),
		RateLimit:  b.Float64("throttle-rate-limit"),
	}
}

// apiStages parses api-id:stage pairs.
func apiStages(b *Binder, name string) []types.ApiStage {
	var stages []types.ApiStage
	for _, s := range b.Strings(name) {
		api, stage, ok := strings.Cut(s, ":")
		if !ok || api == "" || stage == "" {
			b.Fail(name, fmt.Errorf("%q is not api-id:stage", s))
			continue
		}
		stages = append(stages, types.ApiStage{ApiId: &api, Stage: &stage})
	}
	return stages
}

// stageKeys parses rest-api-id/stage pairs.
func stageKeys(b *Binder, name string) []types.StageKey {
	var keys []types.StageKey
	for _, s := range b.Strings(name) {
		api, stage, ok := strings.Cut(s, "/")
		if !ok || api == "" || stage == "" {
			b.Fail(name, fmt.Errorf("%q is not rest-api-id/stage", s))
			continue
		}
		keys = append(keys, types.StageKey{RestApiId: &api, StageName: &stage})
	}
	return keys
}

func usageplanCommandBuilder(m meta.Meta) *cli.Command {
	planTarget := func(id *string) string { return target("usageplan", id) }

	return group("usageplan", "usage plans",
		(&Cmdlet[apigateway.GetUsagePlansInput, apigateway.GetUsagePlansOutput]{
			Group:     "usageplan",
			Verb:      "list",
			Operation: "GetUsagePlans",
			Usage:     "list usage plans",
			Params: []Param{
				{Name: "key-id", Usage: "only plans associated with this API key"},
			},
			Call: aws.APIGatewayAPI.GetUsagePlans,
			Build: func(b *Binder) *apigateway.GetUsagePlansInput {
				return &apigateway.GetUsagePlansInput{KeyId: b.String("key-id")}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  usageplanDefaultAttrs,
			Schema: reflect.TypeOf(types.UsagePlan{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetUsagePlanInput, apigateway.GetUsagePlanOutput]{
			Group:     "usageplan",
			Verb:      "get",
			Operation: "GetUsagePlan",
			Usage:     "get a usage plan",
			Params:    []Param{positional(usagePlanIDParam)},
			Call:      aws.APIGatewayAPI.GetUsagePlan,
			Build: func(b *Binder) *apigateway.GetUsagePlanInput {
				return &apigateway.GetUsagePlanInput{UsagePlanId: b.String("usage-plan-id")}
			},
			Attrs: usageplanDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateUsagePlanInput, apigateway.CreateUsagePlanOutput]{
			Group:     "usageplan",
			Verb:      "new",
			Operation: "CreateUsagePlan",
			Usage:     "create a usage plan",
			Params: append([]Param{
				positional(nameParam),
				descriptionParam,
				{Name: "api-stages", Usage: "api-id:stage associated with the plan, repeatable", Kind: KindStrings},
				tagsParam,
			}, usagePlanLimitParams...),
			Call: aws.APIGatewayAPI.CreateUsagePlan,
			Build: func(b *Binder) *apigateway.CreateUsagePlanInput {
				return &apigateway.CreateUsagePlanInput{
					Name:        b.String("name"),
					Description: b.String("description"),
					ApiStages:   apiStages(b, "api-stages"),
					Quota:       quotaSettings(b),
					Throttle:    throttleSettings(b),
					Tags:        b.Map("tags"),
				}
			},
			Attrs:  usageplanDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateUsagePlanInput) string { return target("name", in.Name) },
		}).Command(m),

		(&Cmdlet[apigateway.UpdateUsagePlanInput, apigateway.UpdateUsagePlanOutput]{
			Group:     "usageplan",
			Verb:      "update",
			Operation: "UpdateUsagePlan",
			Usage:     "patch a usage plan",
			Params:    []Param{positional(usagePlanIDParam), patchParam},
			Call:      aws.APIGatewayAPI.UpdateUsagePlan,
			Build: func(b *Binder) *apigateway.UpdateUsagePlanInput {
				return &apigateway.UpdateUsagePlanInput{
					UsagePlanId:     b.String("usage-plan-id"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  usageplanDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateUsagePlanInput) string { return planTarget(in.UsagePlanId) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteUsagePlanInput, apigateway.DeleteUsagePlanOutput]{
			Group:     "usageplan",
			Verb:      "remove",
			Operation: "DeleteUsagePlan",
			Usage:     "delete a usage plan",
			Params:    []Param{positional(usagePlanIDParam)},
			Call:      aws.APIGatewayAPI.DeleteUsagePlan,
			Build: func(b *Binder) *apigateway.DeleteUsagePlanInput {
				return &apigateway.DeleteUsagePlanInput{UsagePlanId: b.String("usage-plan-id")}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteUsagePlanInput) string { return planTarget(in.UsagePlanId) },
		}).Command(m),
	)
}

func usageplankeyCommandBuilder(m meta.Meta) *cli.Command {
	keyTarget := func(plan, key *string) string { return target("usageplan", plan, "key", key) }

	return group("usageplankey", "API keys attached to usage plans",
		(&Cmdlet[apigateway.GetUsagePlanKeysInput, apigateway.GetUsagePlanKeysOutput]{
			Group:     "usageplankey",
			Verb:      "list",
			Operation: "GetUsagePlanKeys",
			Usage:     "list the keys of a usage plan",
			Params: []Param{
				positional(usagePlanIDParam),
				{Name: "name-query", Usage: "only keys whose name starts with this value"},
			},
			Call: aws.APIGatewayAPI.GetUsagePlanKeys,
			Build: func(b *Binder) *apigateway.GetUsagePlanKeysInput {
				return &apigateway.GetUsagePlanKeysInput{
					UsagePlanId: b.String("usage-plan-id"),
					NameQuery:   b.String("name-query"),
				}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  usageplankeyDefaultAttrs,
			Schema: reflect.TypeOf(types.UsagePlanKey{}),
		}).Command(m),

		(&Cmdlet[apigateway.CreateUsagePlanKeyInput, apigateway.CreateUsagePlanKeyOutput]{
			Group:     "usageplankey",
			Verb:      "new",
			Operation: "CreateUsagePlanKey",
			Usage:     "attach an API key to a usage plan",
			Params: []Param{
				positional(usagePlanIDParam),
				{Name: "key-id", Usage: "identifier of the key", Required: true},
				{Name: "key-type", Usage: "type of the key, API_KEY", Required: true},
			},
			Call: aws.APIGatewayAPI.CreateUsagePlanKey,
			Build: func(b *Binder) *apigateway.CreateUsagePlanKeyInput {
				return &apigateway.CreateUsagePlanKeyInput{
					UsagePlanId: b.String("usage-plan-id"),
					KeyId:       b.String("key-id"),
					KeyType:     b.String("key-type"),
				}
			},
			Attrs:  usageplankeyDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateUsagePlanKeyInput) string { return keyTarget(in.UsagePlanId, in.KeyId) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteUsagePlanKeyInput, apigateway.DeleteUsagePlanKeyOutput]{
			Group:     "usageplankey",
			Verb:      "remove",
			Operation: "DeleteUsagePlanKey",
			Usage:     "detach an API key from a usage plan",
			Params: []Param{
				positional(usagePlanIDParam),
				{Name: "key-id", Usage: "identifier of the key", Required: true},
			},
			Call: aws.APIGatewayAPI.DeleteUsagePlanKey,
			Build: func(b *Binder) *apigateway.DeleteUsagePlanKeyInput {
				return &apigateway.DeleteUsagePlanKeyInput{
					UsagePlanId: b.String("usage-plan-id"),
					KeyId:       b.String("key-id"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteUsagePlanKeyInput) string { return keyTarget(in.UsagePlanId, in.KeyId) },
		}).Command(m),
	)
}

func usageCommandBuilder(m meta.Meta) *cli.Command {
	return group("usage", "usage data of usage plans",
		(&Cmdlet[apigateway.GetUsageInput, apigateway.GetUsageOutput]{
			Group:     "usage",
			Verb:      "get",
			Operation: "GetUsage",
			Usage:     "get the usage data of a usage plan in a date range",
			Params: []Param{
				positional(usagePlanIDParam),
				{Name: "start-date", Usage: "first day, yyyy-MM-dd", Required: true},
				{Name: "end-date", Usage: "last day, yyyy-MM-dd", Required: true},
				{Name: "key-id", Usage: "only usage of this API key"},
			},
			Call: aws.APIGatewayAPI.GetUsage,
			Build: func(b *Binder) *apigateway.GetUsageInput {
				return &apigateway.GetUsageInput{
					UsagePlanId: b.String("usage-plan-id"),
					StartDate:   b.String("start-date"),
					EndDate:     b.String("end-date"),
					KeyId:       b.String("key-id"),
				}
			},
			Paging: Legacy,
		}).Command(m),
	)
}

func apikeyCommandBuilder(m meta.Meta) *cli.Command {
	keyTarget := func(key *string) string { return target("apikey", key) }

	return group("apikey", "API keys",
		(&Cmdlet[apigateway.GetApiKeysInput, apigateway.GetApiKeysOutput]{
			Group:     "apikey",
			Verb:      "list",
			Operation: "GetApiKeys",
			Usage:     "list API keys",
			Params: []Param{
				{Name: "include-values", Usage: "include the key values", Kind: KindBool},
				{Name: "name-query", Usage: "only keys whose name starts with this value"},
				{Name: "customer-id", Usage: "only keys of this AWS Marketplace customer"},
			},
			Call: aws.APIGatewayAPI.GetApiKeys,
			Build: func(b *Binder) *apigateway.GetApiKeysInput {
				return &apigateway.GetApiKeysInput{
					IncludeValues: b.BoolPtr("include-values"),
					NameQuery:     b.String("name-query"),
					CustomerId:    b.String("customer-id"),
				}
			},
			Paging: Legacy,
			Select: "Items",
			Attrs:  apikeyDefaultAttrs,
			Schema: reflect.TypeOf(types.ApiKey{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetApiKeyInput, apigateway.GetApiKeyOutput]{
			Group:     "apikey",
			Verb:      "get",
			Operation: "GetApiKey",
			Usage:     "get an API key",
			Params: []Param{
				positional(apiKeyParam),
				{Name: "include-value", Usage: "include the key value", Kind: KindBool},
			},
			Call: aws.APIGatewayAPI.GetApiKey,
			Build: func(b *Binder) *apigateway.GetApiKeyInput {
				return &apigateway.GetApiKeyInput{
					ApiKey:       b.String("api-key"),
					IncludeValue: b.BoolPtr("include-value"),
				}
			},
			Attrs: apikeyDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateApiKeyInput, apigateway.CreateApiKeyOutput]{
			Group:     "apikey",
			Verb:      "new",
			Operation: "CreateApiKey",
			Usage:     "create an API key",
			Params: []Param{
				positional(optional(nameParam)),
				descriptionParam,
				{Name: "enabled", Usage: "the key can be used by callers", Kind: KindBool},
				{Name: "generate-distinct-id", Usage: "make the identifier distinct from the value", Kind: KindBool},
				{Name: "value", Usage: "key value, generated when omitted"},
				{Name: "customer-id", Usage: "AWS Marketplace customer identifier"},
				{Name: "stage-keys", Usage: "rest-api-id/stage associated with the key, repeatable", Kind: KindStrings},
				tagsParam,
			},
			Call: aws.APIGatewayAPI.CreateApiKey,
			Build: func(b *Binder) *apigateway.CreateApiKeyInput {
				return &apigateway.CreateApiKeyInput{
					Name:               b.String("name"),
					Description:        b.String("description"),
					Enabled:            b.Bool("enabled"),
					GenerateDistinctId: b.Bool("generate-distinct-id"),
					Value:              b.String("value"),
					CustomerId:         b.String("customer-id"),
					StageKeys:          stageKeys(b, "stage-keys"),
					Tags:               b.Map("tags"),
				}
			},
			Attrs:  apikeyDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateApiKeyInput) string { return target("name", in.Name) },
		}).Command(m),

		(&Cmdlet[apigateway.UpdateApiKeyInput, apigateway.UpdateApiKeyOutput]{
			Group:     "apikey",
			Verb:      "update",
			Operation: "UpdateApiKey",
			Usage:     "patch an API key",
			Params:    []Param{positional(apiKeyParam), patchParam},
			Call:      aws.APIGatewayAPI.UpdateApiKey,
			Build: func(b *Binder) *apigateway.UpdateApiKeyInput {
				return &apigateway.UpdateApiKeyInput{
					ApiKey:          b.String("api-key"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  apikeyDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateApiKeyInput) string { return keyTarget(in.ApiKey) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteApiKeyInput, apigateway.DeleteApiKeyOutput]{
			Group:     "apikey",
			Verb:      "remove",
			Operation: "DeleteApiKey",
			Usage:     "delete an API key",
			Params:    []Param{positional(apiKeyParam)},
			Call:      aws.APIGatewayAPI.DeleteApiKey,
			Build: func(b *Binder) *apigateway.DeleteApiKeyInput {
				return &apigateway.DeleteApiKeyInput{ApiKey: b.String("api-key")}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteApiKeyInput) string { return keyTarget(in.ApiKey) },
		}).Command(m),

		(&Cmdlet[apigateway.ImportApiKeysInput, apigateway.ImportApiKeysOutput]{
			Group:     "apikey",
			Verb:      "import",
			Operation: "ImportApiKeys",
			Usage:     "import API keys from a CSV file",
			Params: []Param{
				{Name: "body", Usage: "CSV: path, - for stdin, or s3://bucket/key", Kind: KindBody, Required: true},
				{Name: "format", Usage: "format of the keys, csv", Required: true},
				{Name: "fail-on-warnings", Usage: "roll back on warnings", Kind: KindBool},
			},
			Call: aws.APIGatewayAPI.ImportApiKeys,
			Build: func(b *Binder) *apigateway.ImportApiKeysInput {
				return &apigateway.ImportApiKeysInput{
					Body:           b.Body("body"),
					Format:         Enum[types.ApiKeysFormat](b, "format"),
					FailOnWarnings: b.Bool("fail-on-warnings"),
				}
			},
			Select: "Ids",
			Impact: confirm.Medium,
			Target: func(*apigateway.ImportApiKeysInput) string { return "apikey=<new>" },
		}).Command(m),
	)
}
