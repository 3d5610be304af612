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
	docpartDefaultAttrs    = []string{"Id", "Location.Type", "Location.Path", "Location.Method", "Location.Name"}
	docversionDefaultAttrs = []string{"Version", "CreatedDate", "Description"}
)

var docPartIDParam = Param{Name: "documentation-part-id", Aliases: []string{"part"}, Usage: "identifier of the documentation part", Required: true}

// documentationPartLocation returns nil unless a location parameter was bound.
func documentationPartLocation(b *Binder) *types.DocumentationPartLocation {
	if !b.AnySet("location-type", "location-path", "location-method", "location-name", "location-status-code") {
		return nil
	}
	return &types.DocumentationPartLocation{
		Type:       Enum[types.DocumentationPartType](b, "location-type"),
		Path:       b.String("location-path"),
		Method:     b.String("location-method"),
		Name:       b.String("location-name"),
		StatusCode: b.String("location-status-code"),
	}
}

func docpartCommandBuilder(m meta.Meta) *cli.Command {
	partTarget := func(api, id *string) string { return target("restapi", api, "docpart", id) }

	return group("docpart", "documentation parts of a REST API",
		(&Cmdlet[apigateway.GetDocumentationPartsInput, apigateway.GetDocumentationPartsOutput]{
			Group:     "docpart",
			Verb:      "list",
			Operation: "GetDocumentationParts",
			Usage:     "list the documentation parts of a REST API",
			Params: []Param{
				positional(restAPIIDParam),
				{Name: "type", Usage: "only parts of this target type, e.g. METHOD"},
				{Name: "name-query", Usage: "only parts whose name matches"},
				{Name: "path", Usage: "only parts at this resource path"},
				{Name: "location-status", Usage: "DOCUMENTED or UNDOCUMENTED"},
			},
			Call: aws.APIGatewayAPI.GetDocumentationParts,
			Build: func(b *Binder) *apigateway.GetDocumentationPartsInput {
				return &apigateway.GetDocumentationPartsInput{
					RestApiId:      b.String("rest-api-id"),
					Type:           Enum[types.DocumentationPartType](b, "type"),
					NameQuery:      b.String("name-query"),
					Path:           b.String("path"),
					LocationStatus: Enum[types.LocationStatusType](b, "location-status"),
				}
			},
			Paging: Legacy,
			Select: "Items",
			Attrs:  docpartDefaultAttrs,
			Schema: reflect.TypeOf(types.DocumentationPart{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetDocumentationPartInput, apigateway.GetDocumentationPartOutput]{
			Group:     "docpart",
			Verb:      "get",
			Operation: "GetDocumentationPart",
			Usage:     "get a documentation part",
			Params:    []Param{positional(docPartIDParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.GetDocumentationPart,
			Build: func(b *Binder) *apigateway.GetDocumentationPartInput {
				return &apigateway.GetDocumentationPartInput{
					RestApiId:           b.String("rest-api-id"),
					DocumentationPartId: b.String("documentation-part-id"),
				}
			},
			Attrs: docpartDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateDocumentationPartInput, apigateway.CreateDocumentationPartOutput]{
			Group:     "docpart",
			Verb:      "new",
			Operation: "CreateDocumentationPart",
			Usage:     "create a documentation part",
			Params: []Param{
				positional(restAPIIDParam),
				{Name: "location-type", Usage: "target type, e.g. API, RESOURCE or METHOD", Required: true},
				{Name: "location-path", Usage: "resource path of the target"},
				{Name: "location-method", Usage: "HTTP verb of the target"},
				{Name: "location-name", Usage: "name of the target"},
				{Name: "location-status-code", Usage: "response status code of the target"},
				{Name: "properties", Usage: "documentation content as a JSON string", Required: true},
			},
			Call: aws.APIGatewayAPI.CreateDocumentationPart,
			Build: func(b *Binder) *apigateway.CreateDocumentationPartInput {
				return &apigateway.CreateDocumentationPartInput{
					RestApiId:  b.String("rest-api-id"),
					Location:   documentationPartLocation(b),
					Properties: b.String("properties"),
				}
			},
			Attrs:  docpartDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateDocumentationPartInput) string {
				var kind string
				if in.Location != nil {
					kind = string(in.Location.Type)
				}
				return target("restapi", in.RestApiId, "type", kind)
			},
		}).Command(m),

		(&Cmdlet[apigateway.UpdateDocumentationPartInput, apigateway.UpdateDocumentationPartOutput]{
			Group:     "docpart",
			Verb:      "update",
			Operation: "UpdateDocumentationPart",
			Usage:     "patch a documentation part",
			Params:    []Param{positional(docPartIDParam), restAPIIDParam, patchParam},
			Call:      aws.APIGatewayAPI.UpdateDocumentationPart,
			Build: func(b *Binder) *apigateway.UpdateDocumentationPartInput {
				return &apigateway.UpdateDocumentationPartInput{
					RestApiId:           b.String("rest-api-id"),
					DocumentationPartId: b.String("documentation-part-id"),
					PatchOperations:     b.Patch("patch"),
				}
			},
			Attrs:  docpartDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateDocumentationPartInput) string {
				return partTarget(in.RestApiId, in.DocumentationPartId)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteDocumentationPartInput, apigateway.DeleteDocumentationPartOutput]{
			Group:     "docpart",
			Verb:      "remove",
			Operation: "DeleteDocumentationPart",
			Usage:     "delete a documentation part",
			Params:    []Param{positional(docPartIDParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.DeleteDocumentationPart,
			Build: func(b *Binder) *apigateway.DeleteDocumentationPartInput {
				return &apigateway.DeleteDocumentationPartInput{
					RestApiId:           b.String("rest-api-id"),
					DocumentationPartId: b.String("documentation-part-id"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteDocumentationPartInput) string {
				return partTarget(in.RestApiId, in.DocumentationPartId)
			},
		}).Command(m),
	)
}

func docversionCommandBuilder(m meta.Meta) *cli.Command {
	versionParam := Param{Name: "documentation-version", Aliases: []string{"doc-version"}, Usage: "version identifier of the snapshot", Required: true}
	versionTarget := func(api, v *string) string { return target("restapi", api, "docversion", v) }

	return group("docversion", "documentation snapshots of a REST API",
		(&Cmdlet[apigateway.GetDocumentationVersionsInput, apigateway.GetDocumentationVersionsOutput]{
			Group:     "docversion",
			Verb:      "list",
			Operation: "GetDocumentationVersions",
			Usage:     "list the documentation versions of a REST API",
			Params:    []Param{positional(restAPIIDParam)},
			Call:      aws.APIGatewayAPI.GetDocumentationVersions,
			Build: func(b *Binder) *apigateway.GetDocumentationVersionsInput {
				return &apigateway.GetDocumentationVersionsInput{RestApiId: b.String("rest-api-id")}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  docversionDefaultAttrs,
			Schema: reflect.TypeOf(types.DocumentationVersion{}),
		}).Command(m),

		(&Cmdlet[apigateway.CreateDocumentationVersionInput, apigateway.CreateDocumentationVersionOutput]{
			Group:     "docversion",
			Verb:      "new",
			Operation: "CreateDocumentationVersion",
			Usage:     "snapshot the documentation of a REST API",
			Params: []Param{
				positional(versionParam),
				restAPIIDParam,
				descriptionParam,
				optional(stageNameParam),
			},
			Call: aws.APIGatewayAPI.CreateDocumentationVersion,
			Build: func(b *Binder) *apigateway.CreateDocumentationVersionInput {
				return &apigateway.CreateDocumentationVersionInput{
					RestApiId:            b.String("rest-api-id"),
					DocumentationVersion: b.String("documentation-version"),
					Description:          b.String("description"),
					StageName:            b.String("stage-name"),
				}
			},
			Attrs:  docversionDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateDocumentationVersionInput) string {
				return versionTarget(in.RestApiId, in.DocumentationVersion)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteDocumentationVersionInput, apigateway.DeleteDocumentationVersionOutput]{
			Group:     "docversion",
			Verb:      "remove",
			Operation: "DeleteDocumentationVersion",
			Usage:     "delete a documentation snapshot",
			Params:    []Param{positional(versionParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.DeleteDocumentationVersion,
			Build: func(b *Binder) *apigateway.DeleteDocumentationVersionInput {
				return &apigateway.DeleteDocumentationVersionInput{
					RestApiId:            b.String("rest-api-id"),
					DocumentationVersion: b.String("documentation-version"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteDocumentationVersionInput) string {
				return versionTarget(in.RestApiId, in.DocumentationVersion)
			},
		}).Command(m),
	)
}
