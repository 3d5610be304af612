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
	domainDefaultAttrs   = []string{"DomainName", "DomainNameStatus", "RegionalDomainName", "DistributionDomainName", "SecurityPolicy"}
	basepathDefaultAttrs = []string{"BasePath", "RestApiId", "Stage"}
)

var (
	domainNameParam = Param{
		Name:     "domain-name",
		Aliases:  []string{"domain"},
		Usage:    "custom domain name",
		Required: true,
	}
	domainNameIDParam = Param{
		Name:  "domain-name-id",
		Usage: "identifier of a private custom domain name",
	}
)

// mutualTLSAuthentication returns nil unless a truststore parameter was bound.
func mutualTLSAuthentication(b *Binder) *types.MutualTlsAuthenticationInput {
	if !b.AnySet("truststore-uri", "truststore-version") {
		return nil
	}
	return &types.MutualTlsAuthenticationInput{
		TruststoreUri:     b.String("truststore-uri"),
		TruststoreVersion: b.String("truststore-version"),
	}
}

func domainCommandBuilder(m meta.Meta) *cli.Command {
	domainTarget := func(name *string) string { return target("domain", name) }

	return group("domain", "custom domain names",
		(&Cmdlet[apigateway.GetDomainNamesInput, apigateway.GetDomainNamesOutput]{
			Group:     "domain",
			Verb:      "list",
			Operation: "GetDomainNames",
			Usage:     "list custom domain names",
			Params: []Param{
				{Name: "resource-owner", Usage: "SELF or OTHER_ACCOUNTS"},
			},
			Call: aws.APIGatewayAPI.GetDomainNames,
			Build: func(b *Binder) *apigateway.GetDomainNamesInput {
				return &apigateway.GetDomainNamesInput{
					ResourceOwner: Enum[types.ResourceOwner](b, "resource-owner"),
				}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  domainDefaultAttrs,
			Schema: reflect.TypeOf(types.DomainName{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetDomainNameInput, apigateway.GetDomainNameOutput]{
			Group:     "domain",
			Verb:      "get",
			Operation: "GetDomainName",
			Usage:     "get a custom domain name",
			Params:    []Param{positional(domainNameParam), domainNameIDParam},
			Call:      aws.APIGatewayAPI.GetDomainName,
			Build: func(b *Binder) *apigateway.GetDomainNameInput {
				return &apigateway.GetDomainNameInput{
					DomainName:   b.String("domain-name"),
					DomainNameId: b.String("domain-name-id"),
				}
			},
			Attrs: domainDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateDomainNameInput, apigateway.CreateDomainNameOutput]{
			Group:     "domain",
			Verb:      "new",
			Operation: "CreateDomainName",
			Usage:     "create a custom domain name",
			Params: append([]Param{
				positional(domainNameParam),
				{Name: "certificate-arn", Usage: "ACM certificate ARN of an edge-optimized name"},
				{Name: "certificate-name", Usage: "user-friendly certificate name"},
				{Name: "regional-certificate-arn", Usage: "ACM certificate ARN of a regional name"},
				{Name: "regional-certificate-name", Usage: "user-friendly regional certificate name"},
				{Name: "ownership-verification-certificate-arn", Usage: "ARN of the ownership verification certificate"},
				{Name: "security-policy", Usage: "TLS_1_0 or TLS_1_2"},
				{Name: "policy", Usage: "resource policy of a private custom domain name"},
				{Name: "truststore-uri", Usage: "s3:// URI of the mutual TLS truststore"},
				{Name: "truststore-version", Usage: "object version of the truststore"},
				tagsParam,
			}, endpointConfigurationParams...),
			Call: aws.APIGatewayAPI.CreateDomainName,
			Build: func(b *Binder) *apigateway.CreateDomainNameInput {
				return &apigateway.CreateDomainNameInput{
					DomainName:                          b.String("domain-name"),
					CertificateArn:                      b.String("certificate-arn"),
					CertificateName:                     b.String("certificate-name"),
					RegionalCertificateArn:              b.String("regional-certificate-arn"),
					RegionalCertificateName:             b.String("regional-certificate-name"),
					OwnershipVerificationCertificateArn: b.String("ownership-verification-certificate-arn"),
					SecurityPolicy:                      Enum[types.SecurityPolicy](b, "security-policy"),
					Policy:                              b.String("policy"),
					Tags:                                b.Map("tags"),
					EndpointConfiguration:               endpointConfiguration(b),
					MutualTlsAuthentication:             mutualTLSAuthentication(b),
				}
			},
			Attrs:  domainDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateDomainNameInput) string { return domainTarget(in.DomainName) },
		}).Command(m),

		(&Cmdlet[apigateway.UpdateDomainNameInput, apigateway.UpdateDomainNameOutput]{
			Group:     "domain",
			Verb:      "update",
			Operation: "UpdateDomainName",
			Usage:     "patch a custom domain name",
			Params:    []Param{positional(domainNameParam), domainNameIDParam, patchParam},
			Call:      aws.APIGatewayAPI.UpdateDomainName,
			Build: func(b *Binder) *apigateway.UpdateDomainNameInput {
				return &apigateway.UpdateDomainNameInput{
					DomainName:      b.String("domain-name"),
					DomainNameId:    b.String("domain-name-id"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  domainDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateDomainNameInput) string { return domainTarget(in.DomainName) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteDomainNameInput, apigateway.DeleteDomainNameOutput]{
			Group:     "domain",
			Verb:      "remove",
			Operation: "DeleteDomainName",
			Usage:     "delete a custom domain name",
			Params:    []Param{positional(domainNameParam), domainNameIDParam},
			Call:      aws.APIGatewayAPI.DeleteDomainName,
			Build: func(b *Binder) *apigateway.DeleteDomainNameInput {
				return &apigateway.DeleteDomainNameInput{
					DomainName:   b.String("domain-name"),
					DomainNameId: b.String("domain-name-id"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteDomainNameInput) string { return domainTarget(in.DomainName) },
		}).Command(m),
	)
}

func basepathCommandBuilder(m meta.Meta) *cli.Command {
	basePathParam := Param{Name: "base-path", Usage: "base path after the domain name, (none) for the root"}

	return group("basepath", "base path mappings of a custom domain name",
		(&Cmdlet[apigateway.GetBasePathMappingsInput, apigateway.GetBasePathMappingsOutput]{
			Group:     "basepath",
			Verb:      "list",
			Operation: "GetBasePathMappings",
			Usage:     "list the base path mappings of a domain name",
			Params:    []Param{positional(domainNameParam), domainNameIDParam},
			Call:      aws.APIGatewayAPI.GetBasePathMappings,
			Build: func(b *Binder) *apigateway.GetBasePathMappingsInput {
				return &apigateway.GetBasePathMappingsInput{
					DomainName:   b.String("domain-name"),
					DomainNameId: b.String("domain-name-id"),
				}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  basepathDefaultAttrs,
			Schema: reflect.TypeOf(types.BasePathMapping{}),
		}).Command(m),

		(&Cmdlet[apigateway.CreateBasePathMappingInput, apigateway.CreateBasePathMappingOutput]{
			Group:     "basepath",
			Verb:      "new",
			Operation: "CreateBasePathMapping",
			Usage:     "map a base path of a domain name to a REST API stage",
			Params: []Param{
				positional(domainNameParam),
				domainNameIDParam,
				restAPIIDParam,
				basePathParam,
				optional(stageNameParam),
			},
			Call: aws.APIGatewayAPI.CreateBasePathMapping,
			Build: func(b *Binder) *apigateway.CreateBasePathMappingInput {
				return &apigateway.CreateBasePathMappingInput{
					DomainName:   b.String("domain-name"),
					DomainNameId: b.String("domain-name-id"),
					RestApiId:    b.String("rest-api-id"),
					BasePath:     b.String("base-path"),
					Stage:        b.String("stage-name"),
				}
			},
			Attrs:  basepathDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateBasePathMappingInput) string {
				return target("domain", in.DomainName, "basepath", in.BasePath, "restapi", in.RestApiId)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteBasePathMappingInput, apigateway.DeleteBasePathMappingOutput]{
			Group:     "basepath",
			Verb:      "remove",
			Operation: "DeleteBasePathMapping",
			Usage:     "delete a base path mapping",
			Params: []Param{
				positional(domainNameParam),
				domainNameIDParam,
				func() Param { p := basePathParam; p.Required = true; return p }(),
			},
			Call: aws.APIGatewayAPI.DeleteBasePathMapping,
			Build: func(b *Binder) *apigateway.DeleteBasePathMappingInput {
				return &apigateway.DeleteBasePathMappingInput{
					DomainName:   b.String("domain-name"),
					DomainNameId: b.String("domain-name-id"),
					BasePath:     b.String("base-path"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteBasePathMappingInput) string {
				return target("domain", in.DomainName, "basepath", in.BasePath)
			},
		}).Command(m),
	)
}
