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
	vpclinkDefaultAttrs    = []string{"Id", "Name", "Status", "Description"}
	clientcertDefaultAttrs = []string{"ClientCertificateId", "Description", "CreatedDate", "ExpirationDate"}
)

func vpclinkCommandBuilder(m meta.Meta) *cli.Command {
	vpcLinkIDParam := Param{Name: "vpc-link-id", Aliases: []string{"link"}, Usage: "identifier of the VPC link", Required: true}
	linkTarget := func(id *string) string { return target("vpclink", id) }

	return group("vpclink", "VPC links",
		(&Cmdlet[apigateway.GetVpcLinksInput, apigateway.GetVpcLinksOutput]{
			Group:     "vpclink",
			Verb:      "list",
			Operation: "GetVpcLinks",
			Usage:     "list VPC links",
			Call:      aws.APIGatewayAPI.GetVpcLinks,
			Paging:    Modular,
			Select:    "Items",
			Attrs:     vpclinkDefaultAttrs,
			Schema:    reflect.TypeOf(types.VpcLink{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetVpcLinkInput, apigateway.GetVpcLinkOutput]{
			Group:     "vpclink",
			Verb:      "get",
			Operation: "GetVpcLink",
			Usage:     "get a VPC link",
			Params:    []Param{positional(vpcLinkIDParam)},
			Call:      aws.APIGatewayAPI.GetVpcLink,
			Build: func(b *Binder) *apigateway.GetVpcLinkInput {
				return &apigateway.GetVpcLinkInput{VpcLinkId: b.String("vpc-link-id")}
			},
			Attrs: vpclinkDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateVpcLinkInput, apigateway.CreateVpcLinkOutput]{
			Group:     "vpclink",
			Verb:      "new",
			Operation: "CreateVpcLink",
			Usage:     "create a VPC link",
			Params: []Param{
				positional(nameParam),
				{Name: "target-arns", Usage: "network load balancer ARN, repeatable", Kind: KindStrings, Required: true},
				descriptionParam,
				tagsParam,
			},
			Call: aws.APIGatewayAPI.CreateVpcLink,
			Build: func(b *Binder) *apigateway.CreateVpcLinkInput {
				return &apigateway.CreateVpcLinkInput{
					Name:        b.String("name"),
					TargetArns:  b.Strings("target-arns"),
					Description: b.String("description"),
					Tags:        b.Map("tags"),
				}
			},
			Attrs:  vpclinkDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateVpcLinkInput) string { return target("name", in.Name) },
		}).Command(m),

		(&Cmdlet[apigateway.UpdateVpcLinkInput, apigateway.UpdateVpcLinkOutput]{
			Group:     "vpclink",
			Verb:      "update",
			Operation: "UpdateVpcLink",
			Usage:     "patch a VPC link",
			Params:    []Param{positional(vpcLinkIDParam), patchParam},
			Call:      aws.APIGatewayAPI.UpdateVpcLink,
			Build: func(b *Binder) *apigateway.UpdateVpcLinkInput {
				return &apigateway.UpdateVpcLinkInput{
					VpcLinkId:       b.String("vpc-link-id"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  vpclinkDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateVpcLinkInput) string { return linkTarget(in.VpcLinkId) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteVpcLinkInput, apigateway.DeleteVpcLinkOutput]{
			Group:     "vpclink",
			Verb:      "remove",
			Operation: "DeleteVpcLink",
			Usage:     "delete a VPC link",
			Params:    []Param{positional(vpcLinkIDParam)},
			Call:      aws.APIGatewayAPI.DeleteVpcLink,
			Build: func(b *Binder) *apigateway.DeleteVpcLinkInput {
				return &apigateway.DeleteVpcLinkInput{VpcLinkId: b.String("vpc-link-id")}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteVpcLinkInput) string { return linkTarget(in.VpcLinkId) },
		}).Command(m),
	)
}

func clientcertCommandBuilder(m meta.Meta) *cli.Command {
	certIDParam := Param{Name: "client-certificate-id", Aliases: []string{"cert"}, Usage: "identifier of the client certificate", Required: true}

	return group("clientcert", "client certificates",
		(&Cmdlet[apigateway.GetClientCertificatesInput, apigateway.GetClientCertificatesOutput]{
			Group:     "clientcert",
			Verb:      "list",
			Operation: "GetClientCertificates",
			Usage:     "list client certificates",
			Call:      aws.APIGatewayAPI.GetClientCertificates,
			Paging:    Modular,
			Select:    "Items",
			Attrs:     clientcertDefaultAttrs,
			Schema:    reflect.TypeOf(types.ClientCertificate{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetClientCertificateInput, apigateway.GetClientCertificateOutput]{
			Group:     "clientcert",
			Verb:      "get",
			Operation: "GetClientCertificate",
			Usage:     "get a client certificate",
			Params:    []Param{positional(certIDParam)},
			Call:      aws.APIGatewayAPI.GetClientCertificate,
			Build: func(b *Binder) *apigateway.GetClientCertificateInput {
				return &apigateway.GetClientCertificateInput{ClientCertificateId: b.String("client-certificate-id")}
			},
			Attrs: clientcertDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.GenerateClientCertificateInput, apigateway.GenerateClientCertificateOutput]{
			Group:     "clientcert",
			Verb:      "new",
			Operation: "GenerateClientCertificate",
			Usage:     "generate a client certificate",
			Params:    []Param{descriptionParam, tagsParam},
			Call:      aws.APIGatewayAPI.GenerateClientCertificate,
			Build: func(b *Binder) *apigateway.GenerateClientCertificateInput {
				return &apigateway.GenerateClientCertificateInput{
					Description: b.String("description"),
					Tags:        b.Map("tags"),
				}
			},
			Attrs:  clientcertDefaultAttrs,
			Impact: confirm.Low,
			Target: func(*apigateway.GenerateClientCertificateInput) string { return "clientcert=<new>" },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteClientCertificateInput, apigateway.DeleteClientCertificateOutput]{
			Group:     "clientcert",
			Verb:      "remove",
			Operation: "DeleteClientCertificate",
			Usage:     "delete a client certificate",
			Params:    []Param{positional(certIDParam)},
			Call:      aws.APIGatewayAPI.DeleteClientCertificate,
			Build: func(b *Binder) *apigateway.DeleteClientCertificateInput {
				return &apigateway.DeleteClientCertificateInput{ClientCertificateId: b.String("client-certificate-id")}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteClientCertificateInput) string {
				return target("clientcert", in.ClientCertificateId)
			},
		}).Command(m),
	)
}

func accountCommandBuilder(m meta.Meta) *cli.Command {
	accountAttrs := []string{"CloudwatchRoleArn", "ApiKeyVersion", "Features"}

	return group("account", "API Gateway settings of the account",
		(&Cmdlet[apigateway.GetAccountInput, apigateway.GetAccountOutput]{
			Group:     "account",
			Verb:      "get",
			Operation: "GetAccount",
			Usage:     "get the account settings",
			Call:      aws.APIGatewayAPI.GetAccount,
			Attrs:     accountAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.UpdateAccountInput, apigateway.UpdateAccountOutput]{
			Group:     "account",
			Verb:      "update",
			Operation: "UpdateAccount",
			Usage:     "patch the account settings",
			Params:    []Param{patchParam},
			Call:      aws.APIGatewayAPI.UpdateAccount,
			Build: func(b *Binder) *apigateway.UpdateAccountInput {
				return &apigateway.UpdateAccountInput{PatchOperations: b.Patch("patch")}
			},
			Attrs:  accountAttrs,
			Impact: confirm.High,
			Target: func(*apigateway.UpdateAccountInput) string { return "account" },
		}).Command(m),
	)
}

func tagCommandBuilder(m meta.Meta) *cli.Command {
	resourceARNParam := Param{Name: "resource-arn", Aliases: []string{"arn"}, Usage: "ARN of the tagged resource", Required: true}

	return group("tag", "tags of API Gateway resources",
		(&Cmdlet[apigateway.GetTagsInput, apigateway.GetTagsOutput]{
			Group:     "tag",
			Verb:      "list",
			Operation: "GetTags",
			Usage:     "list the tags of a resource",
			Params:    []Param{positional(resourceARNParam)},
			Call:      aws.APIGatewayAPI.GetTags,
			Build: func(b *Binder) *apigateway.GetTagsInput {
				return &apigateway.GetTagsInput{ResourceArn: b.String("resource-arn")}
			},
			Select: "Tags",
		}).Command(m),

		(&Cmdlet[apigateway.TagResourceInput, apigateway.TagResourceOutput]{
			Group:     "tag",
			Verb:      "add",
			Operation: "TagResource",
			Usage:     "add or overwrite tags of a resource",
			Params: []Param{
				positional(resourceARNParam),
				func() Param { p := tagsParam; p.Required = true; return p }(),
			},
			Call: aws.APIGatewayAPI.TagResource,
			Build: func(b *Binder) *apigateway.TagResourceInput {
				return &apigateway.TagResourceInput{
					ResourceArn: b.String("resource-arn"),
					Tags:        b.Map("tags"),
				}
			},
			Impact: confirm.Low,
			Target: func(in *apigateway.TagResourceInput) string { return target("arn", in.ResourceArn) },
		}).Command(m),

		(&Cmdlet[apigateway.UntagResourceInput, apigateway.UntagResourceOutput]{
			Group:     "tag",
			Verb:      "remove",
			Operation: "UntagResource",
			Usage:     "remove tags from a resource",
			Params: []Param{
				positional(resourceARNParam),
				{Name: "tag-keys", Usage: "tag key to remove, repeatable", Kind: KindStrings, Required: true},
			},
			Call: aws.APIGatewayAPI.UntagResource,
			Build: func(b *Binder) *apigateway.UntagResourceInput {
				return &apigateway.UntagResourceInput{
					ResourceArn: b.String("resource-arn"),
					TagKeys:     b.Strings("tag-keys"),
				}
			},
			Impact: confirm.Medium,
			Target: func(in *apigateway.UntagResourceInput) string { return target("arn", in.ResourceArn) },
		}).Command(m),
	)
}
