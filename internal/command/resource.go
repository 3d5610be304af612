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

var (
	resourceDefaultAttrs    = []string{"Id", "Path", "PathPart", "ParentId"}
	methodDefaultAttrs      = []string{"HttpMethod", "AuthorizationType", "AuthorizerId", "ApiKeyRequired", "OperationName"}
	integrationDefaultAttrs = []string{"Type", "HttpMethod", "Uri", "ConnectionType", "TimeoutInMillis"}
)

func resourceCommandBuilder(m meta.Meta) *cli.Command {
	return group("resource", "resources of a REST API",
		(&Cmdlet[apigateway.GetResourcesInput, apigateway.GetResourcesOutput]{
			Group:     "resource",
			Verb:      "list",
			Operation: "GetResources",
			Usage:     "list the resources of a REST API",
			Params:    []Param{positional(restAPIIDParam), embedParam},
			Call:      aws.APIGatewayAPI.GetResources,
			Build: func(b *Binder) *apigateway.GetResourcesInput {
				return &apigateway.GetResourcesInput{
					RestApiId: b.String("rest-api-id"),
					Embed:     b.Strings("embed"),
				}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  resourceDefaultAttrs,
			Schema: reflect.TypeOf(types.Resource{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetResourceInput, apigateway.GetResourceOutput]{
			Group:     "resource",
			Verb:      "get",
			Operation: "GetResource",
			Usage:     "get a resource",
			Params:    []Param{positional(resourceIDParam), restAPIIDParam, embedParam},
			Call:      aws.APIGatewayAPI.GetResource,
			Build: func(b *Binder) *apigateway.GetResourceInput {
				return &apigateway.GetResourceInput{
					RestApiId:  b.String("rest-api-id"),
					ResourceId: b.String("resource-id"),
					Embed:      b.Strings("embed"),
				}
			},
			Attrs: resourceDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateResourceInput, apigateway.CreateResourceOutput]{
			Group:     "resource",
			Verb:      "new",
			Operation: "CreateResource",
			Usage:     "create a child resource",
			Params: []Param{
				restAPIIDParam,
				{Name: "parent-id", Usage: "identifier of the parent resource", Required: true},
				{Name: "path-part", Usage: "last path segment of the new resource", Required: true},
			},
			Call: aws.APIGatewayAPI.CreateResource,
			Build: func(b *Binder) *apigateway.CreateResourceInput {
				return &apigateway.CreateResourceInput{
					RestApiId: b.String("rest-api-id"),
					ParentId:  b.String("parent-id"),
					PathPart:  b.String("path-part"),
				}
			},
			Attrs:  resourceDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateResourceInput) string {
				return target("restapi", in.RestApiId, "parent", in.ParentId, "path", in.PathPart)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteResourceInput, apigateway.DeleteResourceOutput]{
			Group:     "resource",
			Verb:      "remove",
			Operation: "DeleteResource",
			Usage:     "delete a resource and its children",
			Params:    []Param{positional(resourceIDParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.DeleteResource,
			Build: func(b *Binder) *apigateway.DeleteResourceInput {
				return &apigateway.DeleteResourceInput{
					RestApiId:  b.String("rest-api-id"),
					ResourceId: b.String("resource-id"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteResourceInput) string {
				return target("restapi", in.RestApiId, "resource", in.ResourceId)
			},
		}).Command(m),
	)
}

// methodTarget describes the method addressed by a request.
func methodTarget(api, resource, method *string) string {
	return target("restapi", api, "resource", resource, "method", method)
}

func methodCommandBuilder(m meta.Meta) *cli.Command {
	return group("method", "methods of a resource",
		(&Cmdlet[apigateway.GetMethodInput, apigateway.GetMethodOutput]{
			Group:     "method",
			Verb:      "get",
			Operation: "GetMethod",
			Usage:     "get a method",
			Params:    []Param{positional(httpMethodParam), restAPIIDParam, resourceIDParam},
			Call:      aws.APIGatewayAPI.GetMethod,
			Build: func(b *Binder) *apigateway.GetMethodInput {
				return &apigateway.GetMethodInput{
					RestApiId:  b.String("rest-api-id"),
					ResourceId: b.String("resource-id"),
					HttpMethod: b.String("http-method"),
				}
			},
			Attrs: methodDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.PutMethodInput, apigateway.PutMethodOutput]{
			Group:     "method",
			Verb:      "put",
			Operation: "PutMethod",
			Usage:     "add a method to a resource",
			Params: []Param{
				positional(httpMethodParam),
				restAPIIDParam,
				resourceIDParam,
				{Name: "authorization-type", Usage: "NONE, AWS_IAM, CUSTOM or COGNITO_USER_POOLS", Required: true},
				{Name: "api-key-required", Usage: "require an API key", Kind: KindBool},
				{Name: "authorization-scopes", Usage: "authorization scopes", Kind: KindStrings},
				{Name: "authorizer-id", Usage: "identifier of the authorizer"},
				{Name: "operation-name", Usage: "human-friendly operation identifier"},
				{Name: "request-models", Usage: "content-type=model, repeatable", Kind: KindMap},
				{Name: "request-parameters", Usage: "parameter=required, repeatable", Kind: KindBoolMap},
				{Name: "request-validator-id", Usage: "identifier of the request validator"},
			},
			Call: aws.APIGatewayAPI.PutMethod,
			Build: func(b *Binder) *apigateway.PutMethodInput {
				return &apigateway.PutMethodInput{
					RestApiId:           b.String("rest-api-id"),
					ResourceId:          b.String("resource-id"),
					HttpMethod:          b.String("http-method"),
					AuthorizationType:   b.String("authorization-type"),
					ApiKeyRequired:      b.Bool("api-key-required"),
					AuthorizationScopes: b.Strings("authorization-scopes"),
					AuthorizerId:        b.String("authorizer-id"),
					OperationName:       b.String("operation-name"),
					RequestModels:       b.Map("request-models"),
					RequestParameters:   b.BoolMap("request-parameters"),
					RequestValidatorId:  b.String("request-validator-id"),
				}
			},
			Attrs:  methodDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.PutMethodInput) string {
				return methodTarget(in.RestApiId, in.ResourceId, in.HttpMethod)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteMethodInput, apigateway.DeleteMethodOutput]{
			Group:     "method",
			Verb:      "remove",
			Operation: "DeleteMethod",
			Usage:     "delete a method",
			Params:    []Param{positional(httpMethodParam), restAPIIDParam, resourceIDParam},
			Call:      aws.APIGatewayAPI.DeleteMethod,
			Build: func(b *Binder) *apigateway.DeleteMethodInput {
				return &apigateway.DeleteMethodInput{
					RestApiId:  b.String("rest-api-id"),
					ResourceId: b.String("resource-id"),
					HttpMethod: b.String("http-method"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteMethodInput) string {
				return methodTarget(in.RestApiId, in.ResourceId, in.HttpMethod)
			},
		}).Command(m),
	)
}

func integrationCommandBuilder(m meta.Meta) *cli.Command {
	return group("integration", "integrations of a method",
		(&Cmdlet[apigateway.GetIntegrationInput, apigateway.GetIntegrationOutput]{
			Group:     "integration",
			Verb:      "get",
			Operation: "GetIntegration",
			Usage:     "get the integration of a method",
			Params:    []Param{positional(httpMethodParam), restAPIIDParam, resourceIDParam},
			Call:      aws.APIGatewayAPI.GetIntegration,
			Build: func(b *Binder) *apigateway.GetIntegrationInput {
				return &apigateway.GetIntegrationInput{
					RestApiId:  b.String("rest-api-id"),
					ResourceId: b.String("resource-id"),
					HttpMethod: b.String("http-method"),
				}
			},
			Attrs: integrationDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.PutIntegrationInput, apigateway.PutIntegrationOutput]{
			Group:     "integration",
			Verb:      "put",
			Operation: "PutIntegration",
			Usage:     "set up the integration of a method",
			Params: []Param{
				positional(httpMethodParam),
				restAPIIDParam,
				resourceIDParam,
				{Name: "type", Usage: "HTTP, HTTP_PROXY, AWS, AWS_PROXY or MOCK", Required: true},
				{Name: "integration-http-method", Usage: "HTTP verb used to call the backend"},
				{Name: "uri", Usage: "backend endpoint"},
				{Name: "connection-type", Usage: "INTERNET or VPC_LINK"},
				{Name: "connection-id", Usage: "VPC link identifier"},
				{Name: "credentials", Usage: "execution role ARN"},
				{Name: "content-handling", Usage: "CONVERT_TO_BINARY or CONVERT_TO_TEXT"},
				{Name: "passthrough-behavior", Usage: "WHEN_NO_MATCH, WHEN_NO_TEMPLATES or NEVER"},
				{Name: "cache-namespace", Usage: "cache namespace"},
				{Name: "cache-key-parameters", Usage: "cache key parameters", Kind: KindStrings},
				{Name: "request-parameters", Usage: "destination=source, repeatable", Kind: KindMap},
				{Name: "request-templates", Usage: "content-type=template, repeatable", Kind: KindMap},
				{Name: "timeout-in-millis", Usage: "integration timeout", Kind: KindInt},
				{Name: "tls-insecure-skip-verification", Usage: "skip backend certificate verification", Kind: KindBool},
			},
			Call: aws.APIGatewayAPI.PutIntegration,
			Build: func(b *Binder) *apigateway.PutIntegrationInput {
				in := &apigateway.PutIntegrationInput{
					RestApiId:             b.String("rest-api-id"),
					ResourceId:            b.String("resource-id"),
					HttpMethod:            b.String("http-method"),
					Type:                  Enum[types.IntegrationType](b, "type"),
					IntegrationHttpMethod: b.String("integration-http-method"),
					Uri:                   b.String("uri"),
					ConnectionType:        Enum[types.ConnectionType](b, "connection-type"),
					ConnectionId:          b.String("connection-id"),
					Credentials:           b.String("credentials"),
					ContentHandling:       Enum[types.ContentHandlingStrategy](b, "content-handling"),
					PassthroughBehavior:   b.String("passthrough-behavior"),
					CacheNamespace:        b.String("cache-namespace"),
					CacheKeyParameters:    b.Strings("cache-key-parameters"),
					RequestParameters:     b.Map("request-parameters"),
					RequestTemplates:      b.Map("request-templates"),
					TimeoutInMillis:       b.Int32("timeout-in-millis"),
				}
				if b.AnySet("tls-insecure-skip-verification") {
					in.TlsConfig = &types.TlsConfig{
						InsecureSkipVerification: b.Bool("tls-insecure-skip-verification"),
					}
				}
				return in
			},
			Attrs:  integrationDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.PutIntegrationInput) string {
				return methodTarget(in.RestApiId, in.ResourceId, in.HttpMethod) + ",type=" + string(in.Type)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteIntegrationInput, apigateway.DeleteIntegrationOutput]{
			Group:     "integration",
			Verb:      "remove",
			Operation: "DeleteIntegration",
			Usage:     "delete the integration of a method",
			Params:    []Param{positional(httpMethodParam), restAPIIDParam, resourceIDParam},
			Call:      aws.APIGatewayAPI.DeleteIntegration,
			Build: func(b *Binder) *apigateway.DeleteIntegrationInput {
				return &apigateway.DeleteIntegrationInput{
					RestApiId:  b.String("rest-api-id"),
					ResourceId: b.String("resource-id"),
					HttpMethod: b.String("http-method"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteIntegrationInput) string {
				return methodTarget(in.RestApiId, in.ResourceId, in.HttpMethod)
			},
		}).Command(m),
	)
}
