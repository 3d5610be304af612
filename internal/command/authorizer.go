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
	authorizerDefaultAttrs = []string{"Id", "Name", "Type", "IdentitySource", "AuthorizerResultTtlInSeconds"}
	modelDefaultAttrs      = []string{"Id", "Name", "ContentType", "Description"}
	validatorDefaultAttrs  = []string{"Id", "Name", "ValidateRequestBody", "ValidateRequestParameters"}
)

func authorizerCommandBuilder(m meta.Meta) *cli.Command {
	authorizerIDParam := Param{Name: "authorizer-id", Usage: "identifier of the authorizer", Required: true}
	authorizerTarget := func(api, id *string) string { return target("restapi", api, "authorizer", id) }

	return group("authorizer", "authorizers of a REST API",
		(&Cmdlet[apigateway.GetAuthorizersInput, apigateway.GetAuthorizersOutput]{
			Group:     "authorizer",
			Verb:      "list",
			Operation: "GetAuthorizers",
			Usage:     "list the authorizers of a REST API",
			Params:    []Param{positional(restAPIIDParam)},
			Call:      aws.APIGatewayAPI.GetAuthorizers,
			Build: func(b *Binder) *apigateway.GetAuthorizersInput {
				return &apigateway.GetAuthorizersInput{RestApiId: b.String("rest-api-id")}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  authorizerDefaultAttrs,
			Schema: reflect.TypeOf(types.Authorizer{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetAuthorizerInput, apigateway.GetAuthorizerOutput]{
			Group:     "authorizer",
			Verb:      "get",
			Operation: "GetAuthorizer",
			Usage:     "get an authorizer",
			Params:    []Param{positional(authorizerIDParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.GetAuthorizer,
			Build: func(b *Binder) *apigateway.GetAuthorizerInput {
				return &apigateway.GetAuthorizerInput{
					RestApiId:    b.String("rest-api-id"),
					AuthorizerId: b.String("authorizer-id"),
				}
			},
			Attrs: authorizerDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateAuthorizerInput, apigateway.CreateAuthorizerOutput]{
			Group:     "authorizer",
			Verb:      "new",
			Operation: "CreateAuthorizer",
			Usage:     "create an authorizer",
			Params: []Param{
				positional(nameParam),
				restAPIIDParam,
				{Name: "type", Usage: "TOKEN, REQUEST or COGNITO_USER_POOLS", Required: true},
				{Name: "auth-type", Usage: "optional customer-defined field"},
				{Name: "authorizer-credentials", Usage: "role ARN used to invoke the authorizer"},
				{Name: "authorizer-result-ttl-in-seconds", Usage: "TTL of cached results", Kind: KindInt},
				{Name: "authorizer-uri", Usage: "Lambda invocation URI"},
				{Name: "identity-source", Usage: "identity source, e.g. method.request.header.Authorization"},
				{Name: "identity-validation-expression", Usage: "regular expression validating the token"},
				{Name: "provider-arns", Usage: "Cognito user pool ARNs", Kind: KindStrings},
			},
			Call: aws.APIGatewayAPI.CreateAuthorizer,
			Build: func(b *Binder) *apigateway.CreateAuthorizerInput {
				return &apigateway.CreateAuthorizerInput{
					RestApiId:                    b.String("rest-api-id"),
					Name:                         b.String("name"),
					Type:                         Enum[types.AuthorizerType](b, "type"),
					AuthType:                     b.String("auth-type"),
					AuthorizerCredentials:        b.String("authorizer-credentials"),
					AuthorizerResultTtlInSeconds: b.Int32("authorizer-result-ttl-in-seconds"),
					AuthorizerUri:                b.String("authorizer-uri"),
					IdentitySource:               b.String("identity-source"),
					IdentityValidationExpression: b.String("identity-validation-expression"),
					ProviderARNs:                 b.Strings("provider-arns"),
				}
			},
			Attrs:  authorizerDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateAuthorizerInput) string {
				return target("restapi", in.RestApiId, "name", in.Name)
			},
		}).Command(m),

		(&Cmdlet[apigateway.UpdateAuthorizerInput, apigateway.UpdateAuthorizerOutput]{
			Group:     "authorizer",
			Verb:      "update",
			Operation: "UpdateAuthorizer",
			Usage:     "patch an authorizer",
			Params:    []Param{positional(authorizerIDParam), restAPIIDParam, patchParam},
			Call:      aws.APIGatewayAPI.UpdateAuthorizer,
			Build: func(b *Binder) *apigateway.UpdateAuthorizerInput {
				return &apigateway.UpdateAuthorizerInput{
					RestApiId:       b.String("rest-api-id"),
					AuthorizerId:    b.String("authorizer-id"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  authorizerDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateAuthorizerInput) string {
				return authorizerTarget(in.RestApiId, in.AuthorizerId)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteAuthorizerInput, apigateway.DeleteAuthorizerOutput]{
			Group:     "authorizer",
			Verb:      "remove",
			Operation: "DeleteAuthorizer",
			Usage:     "delete an authorizer",
			Params:    []Param{positional(authorizerIDParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.DeleteAuthorizer,
			Build: func(b *Binder) *apigateway.DeleteAuthorizerInput {
				return &apigateway.DeleteAuthorizerInput{
					RestApiId:    b.String("rest-api-id"),
					AuthorizerId: b.String("authorizer-id"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteAuthorizerInput) string {
				return authorizerTarget(in.RestApiId, in.AuthorizerId)
			},
		}).Command(m),

		(&Cmdlet[apigateway.TestInvokeAuthorizerInput, apigateway.TestInvokeAuthorizerOutput]{
			Group:     "authorizer",
			Verb:      "test",
			Operation: "TestInvokeAuthorizer",
			Usage:     "simulate an authorizer invocation",
			Params: []Param{
				positional(authorizerIDParam),
				restAPIIDParam,
				{Name: "headers", Usage: "name=value request header, repeatable", Kind: KindMap},
				{Name: "path-with-query-string", Usage: "URI path including the query string"},
				{Name: "body", Usage: "request body: path, - for stdin, or s3://bucket/key", Kind: KindBody},
				{Name: "stage-variables", Usage: "name=value stage variable, repeatable", Kind: KindMap},
				{Name: "additional-context", Usage: "name=value context variable, repeatable", Kind: KindMap},
			},
			Call: aws.APIGatewayAPI.TestInvokeAuthorizer,
			Build: func(b *Binder) *apigateway.TestInvokeAuthorizerInput {
				in := &apigateway.TestInvokeAuthorizerInput{
					RestApiId:           b.String("rest-api-id"),
					AuthorizerId:        b.String("authorizer-id"),
					Headers:             b.Map("headers"),
					PathWithQueryString: b.String("path-with-query-string"),
					StageVariables:      b.Map("stage-variables"),
					AdditionalContext:   b.Map("additional-context"),
				}
				if b.IsSet("body") {
					s := string(b.Body("body"))
					in.Body = &s
				}
				return in
			},
			Attrs: []string{"ClientStatus", "PrincipalId", "Latency", "Log"},
		}).Command(m),
	)
}

func modelCommandBuilder(m meta.Meta) *cli.Command {
	modelNameParam := Param{Name: "model-name", Usage: "name of the model", Required: true}
	modelTarget := func(api, name *string) string { return target("restapi", api, "model", name) }

	return group("model", "models of a REST API",
		(&Cmdlet[apigateway.GetModelsInput, apigateway.GetModelsOutput]{
			Group:     "model",
			Verb:      "list",
			Operation: "GetModels",
			Usage:     "list the models of a REST API",
			Params:    []Param{positional(restAPIIDParam)},
			Call:      aws.APIGatewayAPI.GetModels,
			Build: func(b *Binder) *apigateway.GetModelsInput {
				return &apigateway.GetModelsInput{RestApiId: b.String("rest-api-id")}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  modelDefaultAttrs,
			Schema: reflect.TypeOf(types.Model{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetModelInput, apigateway.GetModelOutput]{
			Group:     "model",
			Verb:      "get",
			Operation: "GetModel",
			Usage:     "get a model",
			Params: []Param{
				positional(modelNameParam),
				restAPIIDParam,
				{Name: "flatten", Usage: "resolve referenced models into the schema", Kind: KindBool},
			},
			Call: aws.APIGatewayAPI.GetModel,
			Build: func(b *Binder) *apigateway.GetModelInput {
				return &apigateway.GetModelInput{
					RestApiId: b.String("rest-api-id"),
					ModelName: b.String("model-name"),
					Flatten:   b.Bool("flatten"),
				}
			},
			Attrs: modelDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateModelInput, apigateway.CreateModelOutput]{
			Group:     "model",
			Verb:      "new",
			Operation: "CreateModel",
			Usage:     "create a model",
			Params: []Param{
				positional(nameParam),
				restAPIIDParam,
				{Name: "content-type", Usage: "content type of the model, e.g. application/json", Required: true},
				descriptionParam,
				{Name: "schema-file", Usage: "JSON schema: path, - for stdin, or s3://bucket/key", Kind: KindBody},
			},
			Call: aws.APIGatewayAPI.CreateModel,
			Build: func(b *Binder) *apigateway.CreateModelInput {
				in := &apigateway.CreateModelInput{
					RestApiId:   b.String("rest-api-id"),
					Name:        b.String("name"),
					ContentType: b.String("content-type"),
					Description: b.String("description"),
				}
				if b.IsSet("schema-file") {
					s := string(b.Body("schema-file"))
					in.Schema = &s
				}
				return in
			},
			Attrs:  modelDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateModelInput) string { return modelTarget(in.RestApiId, in.Name) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteModelInput, apigateway.DeleteModelOutput]{
			Group:     "model",
			Verb:      "remove",
			Operation: "DeleteModel",
			Usage:     "delete a model",
			Params:    []Param{positional(modelNameParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.DeleteModel,
			Build: func(b *Binder) *apigateway.DeleteModelInput {
				return &apigateway.DeleteModelInput{
					RestApiId: b.String("rest-api-id"),
					ModelName: b.String("model-name"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteModelInput) string { return modelTarget(in.RestApiId, in.ModelName) },
		}).Command(m),
	)
}

func validatorCommandBuilder(m meta.Meta) *cli.Command {
	return group("validator", "request validators of a REST API",
		(&Cmdlet[apigateway.GetRequestValidatorsInput, apigateway.GetRequestValidatorsOutput]{
			Group:     "validator",
			Verb:      "list",
			Operation: "GetRequestValidators",
			Usage:     "list the request validators of a REST API",
			Params:    []Param{positional(restAPIIDParam)},
			Call:      aws.APIGatewayAPI.GetRequestValidators,
			Build: func(b *Binder) *apigateway.GetRequestValidatorsInput {
				return &apigateway.GetRequestValidatorsInput{RestApiId: b.String("rest-api-id")}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  validatorDefaultAttrs,
			Schema: reflect.TypeOf(types.RequestValidator{}),
		}).Command(m),

		(&Cmdlet[apigateway.CreateRequestValidatorInput, apigateway.CreateRequestValidatorOutput]{
			Group:     "validator",
			Verb:      "new",
			Operation: "CreateRequestValidator",
			Usage:     "create a request validator",
			Params: []Param{
				positional(optional(nameParam)),
				restAPIIDParam,
				{Name: "validate-request-body", Usage: "validate the request body", Kind: KindBool},
				{Name: "validate-request-parameters", Usage: "validate request parameters", Kind: KindBool},
			},
			Call: aws.APIGatewayAPI.CreateRequestValidator,
			Build: func(b *Binder) *apigateway.CreateRequestValidatorInput {
				return &apigateway.CreateRequestValidatorInput{
					RestApiId:                 b.String("rest-api-id"),
					Name:                      b.String("name"),
					ValidateRequestBody:       b.Bool("validate-request-body"),
					ValidateRequestParameters: b.Bool("validate-request-parameters"),
				}
			},
			Attrs:  validatorDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateRequestValidatorInput) string {
				return target("restapi", in.RestApiId, "name", in.Name)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteRequestValidatorInput, apigateway.DeleteRequestValidatorOutput]{
			Group:     "validator",
			Verb:      "remove",
			Operation: "DeleteRequestValidator",
			Usage:     "delete a request validator",
			Params: []Param{
				positional(Param{Name: "request-validator-id", Usage: "identifier of the validator", Required: true}),
				restAPIIDParam,
			},
			Call: aws.APIGatewayAPI.DeleteRequestValidator,
			Build: func(b *Binder) *apigateway.DeleteRequestValidatorInput {
				return &apigateway.DeleteRequestValidatorInput{
					RestApiId:          b.String("rest-api-id"),
					RequestValidatorId: b.String("request-validator-id"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteRequestValidatorInput) string {
				return target("restapi", in.RestApiId, "validator", in.RequestValidatorId)
			},
		}).Command(m),
	)
}
