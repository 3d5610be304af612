// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"reflect"

	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/aws"
	"github.com/tfctl/apigwctl/internal/confirm"
	"github.com/tfctl/apigwctl/internal/meta"
)

// restapiDefaultAttrs specifies the default attributes displayed for REST
// APIs.
var restapiDefaultAttrs = []string{"Id", "Name", "CreatedDate", "Description"}

// endpointConfigurationParams feed the EndpointConfiguration member of create
// requests.
var endpointConfigurationParams = []Param{
	{Name: "endpoint-types", Usage: "endpoint types: EDGE, REGIONAL or PRIVATE", Kind: KindStrings},
	{Name: "vpc-endpoint-ids", Usage: "VPC endpoint identifiers of a PRIVATE API", Kind: KindStrings},
	{Name: "ip-address-type", Usage: "ipv4 or dualstack"},
}

// endpointConfiguration returns nil unless one of its parameters was bound.
func endpointConfiguration(b *Binder) *types.EndpointConfiguration {
	if !b.AnySet("endpoint-types", "vpc-endpoint-ids", "ip-address-type") {
		return nil
	}

	ec := &types.EndpointConfiguration{
		VpcEndpointIds: b.Strings("vpc-endpoint-ids"),
		IpAddressType:  Enum[types.IpAddressType](b, "ip-address-type"),
	}
	for _, t := range b.Strings("endpoint-types") {
		ec.Types = append(ec.Types, types.EndpointType(t))
	}
	return ec
}

func restapiCommandBuilder(m meta.Meta) *cli.Command {
	return group("restapi", "REST APIs",
		(&Cmdlet[apigateway.GetRestApisInput, apigateway.GetRestApisOutput]{
			Group:     "restapi",
			Verb:      "list",
			Operation: "GetRestApis",
			Usage:     "list REST APIs",
			Call:      aws.APIGatewayAPI.GetRestApis,
			Paging:    Modular,
			Select:    "Items",
			Attrs:     restapiDefaultAttrs,
			Schema:    reflect.TypeOf(types.RestApi{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetRestApiInput, apigateway.GetRestApiOutput]{
			Group:     "restapi",
			Verb:      "get",
			Operation: "GetRestApi",
			Usage:     "get a REST API",
			Params:    []Param{positional(restAPIIDParam)},
			Call:      aws.APIGatewayAPI.GetRestApi,
			Build: func(b *Binder) *apigateway.GetRestApiInput {
				return &apigateway.GetRestApiInput{RestApiId: b.String("rest-api-id")}
			},
			Attrs: restapiDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateRestApiInput, apigateway.CreateRestApiOutput]{
			Group:     "restapi",
			Verb:      "new",
			Operation: "CreateRestApi",
			Usage:     "create a REST API",
			Params: append([]Param{
				positional(nameParam),
				descriptionParam,
				{Name: "api-key-source", Usage: "HEADER or AUTHORIZER"},
				{Name: "binary-media-types", Usage: "binary media types", Kind: KindStrings},
				{Name: "clone-from", Usage: "identifier of a REST API to clone"},
				{Name: "disable-execute-api-endpoint", Usage: "disable the default execute-api endpoint", Kind: KindBool},
				{Name: "minimum-compression-size", Usage: "payload size in bytes above which responses are compressed", Kind: KindInt},
				{Name: "policy", Usage: "resource policy document"},
				{Name: "api-version", Usage: "version identifier"},
				tagsParam,
			}, endpointConfigurationParams...),
			Call: aws.APIGatewayAPI.CreateRestApi,
			Build: func(b *Binder) *apigateway.CreateRestApiInput {
				return &apigateway.CreateRestApiInput{
					Name:                      b.String("name"),
					Description:               b.String("description"),
					ApiKeySource:              Enum[types.ApiKeySourceType](b, "api-key-source"),
					BinaryMediaTypes:          b.Strings("binary-media-types"),
					CloneFrom:                 b.String("clone-from"),
					DisableExecuteApiEndpoint: b.Bool("disable-execute-api-endpoint"),
					MinimumCompressionSize:    b.Int32("minimum-compression-size"),
					Policy:                    b.String("policy"),
					Version:                   b.String("api-version"),
					Tags:                      b.Map("tags"),
					EndpointConfiguration:     endpointConfiguration(b),
				}
			},
			Attrs:  restapiDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateRestApiInput) string { return target("name", in.Name) },
		}).Command(m),

		(&Cmdlet[apigateway.UpdateRestApiInput, apigateway.UpdateRestApiOutput]{
			Group:     "restapi",
			Verb:      "update",
			Operation: "UpdateRestApi",
			Usage:     "patch a REST API",
			Params:    []Param{positional(restAPIIDParam), patchParam},
			Call:      aws.APIGatewayAPI.UpdateRestApi,
			Build: func(b *Binder) *apigateway.UpdateRestApiInput {
				return &apigateway.UpdateRestApiInput{
					RestApiId:       b.String("rest-api-id"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  restapiDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateRestApiInput) string { return target("restapi", in.RestApiId) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteRestApiInput, apigateway.DeleteRestApiOutput]{
			Group:     "restapi",
			Verb:      "remove",
			Operation: "DeleteRestApi",
			Usage:     "delete a REST API",
			Params:    []Param{positional(restAPIIDParam)},
			Call:      aws.APIGatewayAPI.DeleteRestApi,
			Build: func(b *Binder) *apigateway.DeleteRestApiInput {
				return &apigateway.DeleteRestApiInput{RestApiId: b.String("rest-api-id")}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteRestApiInput) string { return target("restapi", in.RestApiId) },
		}).Command(m),

		(&Cmdlet[apigateway.ImportRestApiInput, apigateway.ImportRestApiOutput]{
			Group:     "restapi",
			Verb:      "import",
			Operation: "ImportRestApi",
			Usage:     "create a REST API from an OpenAPI definition",
			Params: []Param{
				{Name: "body", Usage: "definition: path, - for stdin, or s3://bucket/key", Kind: KindBody, Required: true},
				{Name: "fail-on-warnings", Usage: "roll back on warnings", Kind: KindBool},
				{Name: "parameters", Usage: "import parameter key=value, repeatable", Kind: KindMap},
			},
			Call: aws.APIGatewayAPI.ImportRestApi,
			Build: func(b *Binder) *apigateway.ImportRestApiInput {
				return &apigateway.ImportRestApiInput{
					Body:           b.Body("body"),
					FailOnWarnings: b.Bool("fail-on-warnings"),
					Parameters:     b.Map("parameters"),
				}
			},
			Attrs:  restapiDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(*apigateway.ImportRestApiInput) string { return "restapi=<new>" },
		}).Command(m),

		(&Cmdlet[apigateway.PutRestApiInput, apigateway.PutRestApiOutput]{
			Group:     "restapi",
			Verb:      "put",
			Operation: "PutRestApi",
			Usage:     "merge or overwrite a REST API with an OpenAPI definition",
			Params: []Param{
				positional(restAPIIDParam),
				{Name: "body", Usage: "definition: path, - for stdin, or s3://bucket/key", Kind: KindBody, Required: true},
				{Name: "mode", Usage: "merge or overwrite"},
				{Name: "fail-on-warnings", Usage: "roll back on warnings", Kind: KindBool},
				{Name: "parameters", Usage: "import parameter key=value, repeatable", Kind: KindMap},
			},
			Call: aws.APIGatewayAPI.PutRestApi,
			Build: func(b *Binder) *apigateway.PutRestApiInput {
				return &apigateway.PutRestApiInput{
					RestApiId:      b.String("rest-api-id"),
					Body:           b.Body("body"),
					Mode:           Enum[types.PutMode](b, "mode"),
					FailOnWarnings: b.Bool("fail-on-warnings"),
					Parameters:     b.Map("parameters"),
				}
			},
			Attrs:  restapiDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.PutRestApiInput) string { return target("restapi", in.RestApiId) },
		}).Command(m),
	)
}
