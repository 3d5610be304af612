// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/apigwctl/internal/aws"
	"github.com/tfctl/apigwctl/internal/body"
	"github.com/tfctl/apigwctl/internal/log"
	"github.com/tfctl/apigwctl/internal/meta"
)

var exportDefaultAttrs = []string{"ContentType", "ContentDisposition"}

var (
	outFileParam = Param{Name: "out-file", Usage: "file the returned body is written to", Required: true}
	exportParams = Param{Name: "parameters", Usage: "export parameter key=value, repeatable", Kind: KindMap}
)

// saveBody writes data to --out-file. The body is only dropped from the
// response once it has been written.
func saveBody(b *Binder, data *[]byte) error {
	path := b.StringValue("out-file")
	if path == "" {
		log.Warnf("no --out-file, body kept in the response")
		return nil
	}
	if err := body.WriteFile(path, *data); err != nil {
		return err
	}
	*data = nil
	return nil
}

func exportCommandBuilder(m meta.Meta) *cli.Command {
	return group("export", "exported API definitions",
		(&Cmdlet[apigateway.GetExportInput, apigateway.GetExportOutput]{
			Group:     "export",
			Verb:      "get",
			Operation: "GetExport",
			Usage:     "export a deployed stage as an OpenAPI or Swagger definition",
			Params: []Param{
				positional(restAPIIDParam),
				stageNameParam,
				{Name: "export-type", Usage: "oas30 or swagger", Required: true},
				{Name: "accepts", Usage: "content type of the export, application/json or application/yaml"},
				exportParams,
				outFileParam,
			},
			Call: aws.APIGatewayAPI.GetExport,
			Build: func(b *Binder) *apigateway.GetExportInput {
				return &apigateway.GetExportInput{
					RestApiId:  b.String("rest-api-id"),
					StageName:  b.String("stage-name"),
					ExportType: b.String("export-type"),
					Accepts:    b.String("accepts"),
					Parameters: b.Map("parameters"),
				}
			},
			Post: func(b *Binder, out *apigateway.GetExportOutput) error {
				return saveBody(b, &out.Body)
			},
			Attrs: exportDefaultAttrs,
		}).Command(m),
	)
}

func sdkCommandBuilder(m meta.Meta) *cli.Command {
	return group("sdk", "generated client SDKs",
		(&Cmdlet[apigateway.GetSdkInput, apigateway.GetSdkOutput]{
			Group:     "sdk",
			Verb:      "get",
			Operation: "GetSdk",
			Usage:     "generate a client SDK for a deployed stage",
			Params: []Param{
				positional(restAPIIDParam),
				stageNameParam,
				{Name: "sdk-type", Usage: "javascript, android, objectivec, swift or ruby", Required: true},
				exportParams,
				outFileParam,
			},
			Call: aws.APIGatewayAPI.GetSdk,
			Build: func(b *Binder) *apigateway.GetSdkInput {
				return &apigateway.GetSdkInput{
					RestApiId:  b.String("rest-api-id"),
					StageName:  b.String("stage-name"),
					SdkType:    b.String("sdk-type"),
					Parameters: b.Map("parameters"),
				}
			},
			Post: func(b *Binder, out *apigateway.GetSdkOutput) error {
				return saveBody(b, &out.Body)
			},
			Attrs: exportDefaultAttrs,
		}).Command(m),
	)
}
