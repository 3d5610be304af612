// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/apigateway"
)

// APIGatewayAPI is the subset of *apigateway.Client used by the cmdlets. It
// mirrors the client's method signatures so that the real client satisfies it
// and tests can substitute a fake.
type APIGatewayAPI interface {
	// REST APIs
	GetRestApis(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error)
	GetRestApi(ctx context.Context, params *apigateway.GetRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApiOutput, error)
	CreateRestApi(ctx context.Context, params *apigateway.CreateRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateRestApiOutput, error)
	UpdateRestApi(ctx context.Context, params *apigateway.UpdateRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateRestApiOutput, error)
	DeleteRestApi(ctx context.Context, params *apigateway.DeleteRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteRestApiOutput, error)
	ImportRestApi(ctx context.Context, params *apigateway.ImportRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.ImportRestApiOutput, error)
	PutRestApi(ctx context.Context, params *apigateway.PutRestApiInput, optFns ...func(*apigateway.Options)) (*apigateway.PutRestApiOutput, error)

	// Resources, methods and integrations
	GetResources(ctx context.Context, params *apigateway.GetResourcesInput, optFns ...func(*apigateway.Options)) (*apigateway.GetResourcesOutput, error)
	GetResource(ctx context.Context, params *apigateway.GetResourceInput, optFns ...func(*apigateway.Options)) (*apigateway.GetResourceOutput, error)
	CreateResource(ctx context.Context, params *apigateway.CreateResourceInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateResourceOutput, error)
	DeleteResource(ctx context.Context, params *apigateway.DeleteResourceInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteResourceOutput, error)
	GetMethod(ctx context.Context, params *apigateway.GetMethodInput, optFns ...func(*apigateway.Options)) (*apigateway.GetMethodOutput, error)
	PutMethod(ctx context.Context, params *apigateway.PutMethodInput, optFns ...func(*apigateway.Options)) (*apigateway.PutMethodOutput, error)
	DeleteMethod(ctx context.Context, params *apigateway.DeleteMethodInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteMethodOutput, error)
	GetIntegration(ctx context.Context, params *apigateway.GetIntegrationInput, optFns ...func(*apigateway.Options)) (*apigateway.GetIntegrationOutput, error)
	PutIntegration(ctx context.Context, params *apigateway.PutIntegrationInput, optFns ...func(*apigateway.Options)) (*apigateway.PutIntegrationOutput, error)
	DeleteIntegration(ctx context.Context, params *apigateway.DeleteIntegrationInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteIntegrationOutput, error)

	// Stages and deployments
	GetStages(ctx context.Context, params *apigateway.GetStagesInput, optFns ...func(*apigateway.Options)) (*apigateway.GetStagesOutput, error)
	GetStage(ctx context.Context, params *apigateway.GetStageInput, optFns ...func(*apigateway.Options)) (*apigateway.GetStageOutput, error)
	CreateStage(ctx context.Context, params *apigateway.CreateStageInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateStageOutput, error)
	UpdateStage(ctx context.Context, params *apigateway.UpdateStageInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateStageOutput, error)
	DeleteStage(ctx context.Context, params *apigateway.DeleteStageInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteStageOutput, error)
	FlushStageCache(ctx context.Context, params *apigateway.FlushStageCacheInput, optFns ...func(*apigateway.Options)) (*apigateway.FlushStageCacheOutput, error)
	FlushStageAuthorizersCache(ctx context.Context, params *apigateway.FlushStageAuthorizersCacheInput, optFns ...func(*apigateway.Options)) (*apigateway.FlushStageAuthorizersCacheOutput, error)
	GetDeployments(ctx context.Context, params *apigateway.GetDeploymentsInput, optFns ...func(*apigateway.Options)) (*apigateway.GetDeploymentsOutput, error)
	GetDeployment(ctx context.Context, params *apigateway.GetDeploymentInput, optFns ...func(*apigateway.Options)) (*apigateway.GetDeploymentOutput, error)
	CreateDeployment(ctx context.Context, params *apigateway.CreateDeploymentInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateDeploymentOutput, error)
	UpdateDeployment(ctx context.Context, params *apigateway.UpdateDeploymentInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateDeploymentOutput, error)
	DeleteDeployment(ctx context.Context, params *apigateway.DeleteDeploymentInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteDeploymentOutput, error)

	// Authorizers, models and request validators
	GetAuthorizers(ctx context.Context, params *apigateway.GetAuthorizersInput, optFns ...func(*apigateway.Options)) (*apigateway.GetAuthorizersOutput, error)
	GetAuthorizer(ctx context.Context, params *apigateway.GetAuthorizerInput, optFns ...func(*apigateway.Options)) (*apigateway.GetAuthorizerOutput, error)
	CreateAuthorizer(ctx context.Context, params *apigateway.CreateAuthorizerInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateAuthorizerOutput, error)
	UpdateAuthorizer(ctx context.Context, params *apigateway.UpdateAuthorizerInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateAuthorizerOutput, error)
	DeleteAuthorizer(ctx context.Context, params *apigateway.DeleteAuthorizerInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteAuthorizerOutput, error)
	TestInvokeAuthorizer(ctx context.Context, params *apigateway.TestInvokeAuthorizerInput, optFns ...func(*apigateway.Options)) (*apigateway.TestInvokeAuthorizerOutput, error)
	GetModels(ctx context.Context, params *apigateway.GetModelsInput, optFns ...func(*apigateway.Options)) (*apigateway.GetModelsOutput, error)
	GetModel(ctx context.Context, params *apigateway.GetModelInput, optFns ...func(*apigateway.Options)) (*apigateway.GetModelOutput, error)
	CreateModel(ctx context.Context, params *apigateway.CreateModelInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateModelOutput, error)
	DeleteModel(ctx context.Context, params *apigateway.DeleteModelInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteModelOutput, error)
	GetRequestValidators(ctx context.Context, params *apigateway.GetRequestValidatorsInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRequestValidatorsOutput, error)
	CreateRequestValidator(ctx context.Context, params *apigateway.CreateRequestValidatorInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateRequestValidatorOutput, error)
	DeleteRequestValidator(ctx context.Context, params *apigateway.DeleteRequestValidatorInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteRequestValidatorOutput, error)

	// Custom domains
	GetDomainNames(ctx context.Context, params *apigateway.GetDomainNamesInput, optFns ...func(*apigateway.Options)) (*apigateway.GetDomainNamesOutput, error)
	GetDomainName(ctx context.Context, params *apigateway.GetDomainNameInput, optFns ...func(*apigateway.Options)) (*apigateway.GetDomainNameOutput, error)
	CreateDomainName(ctx context.Context, params *apigateway.CreateDomainNameInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateDomainNameOutput, error)
	UpdateDomainName(ctx context.Context, params *apigateway.UpdateDomainNameInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateDomainNameOutput, error)
	DeleteDomainName(ctx context.Context, params *apigateway.DeleteDomainNameInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteDomainNameOutput, error)
	GetBasePathMappings(ctx context.Context, params *apigateway.GetBasePathMappingsInput, optFns ...func(*apigateway.Options)) (*apigateway.GetBasePathMappingsOutput, error)
	CreateBasePathMapping(ctx context.Context, params *apigateway.CreateBasePathMappingInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateBasePathMappingOutput, error)
	DeleteBasePathMapping(ctx context.Context, params *apigateway.DeleteBasePathMappingInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteBasePathMappingOutput, error)

	// Usage plans and API keys
	GetUsagePlans(ctx context.Context, params *apigateway.GetUsagePlansInput, optFns ...func(*apigateway.Options)) (*apigateway.GetUsagePlansOutput, error)
	GetUsagePlan(ctx context.Context, params *apigateway.GetUsagePlanInput, optFns ...func(*apigateway.Options)) (*apigateway.GetUsagePlanOutput, error)
	CreateUsagePlan(ctx context.Context, params *apigateway.CreateUsagePlanInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateUsagePlanOutput, error)
	UpdateUsagePlan(ctx context.Context, params *apigateway.UpdateUsagePlanInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateUsagePlanOutput, error)
	DeleteUsagePlan(ctx context.Context, params *apigateway.DeleteUsagePlanInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteUsagePlanOutput, error)
	GetUsagePlanKeys(ctx context.Context, params *apigateway.GetUsagePlanKeysInput, optFns ...func(*apigateway.Options)) (*apigateway.GetUsagePlanKeysOutput, error)
	CreateUsagePlanKey(ctx context.Context, params *apigateway.CreateUsagePlanKeyInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateUsagePlanKeyOutput, error)
	DeleteUsagePlanKey(ctx context.Context, params *apigateway.DeleteUsagePlanKeyInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteUsagePlanKeyOutput, error)
	GetUsage(ctx context.Context, params *apigateway.GetUsageInput, optFns ...func(*apigateway.Options)) (*apigateway.GetUsageOutput, error)
	GetApiKeys(ctx context.Context, params *apigateway.GetApiKeysInput, optFns ...func(*apigateway.Options)) (*apigateway.GetApiKeysOutput, error)
	GetApiKey(ctx context.Context, params *apigateway.GetApiKeyInput, optFns ...func(*apigateway.Options)) (*apigateway.GetApiKeyOutput, error)
	CreateApiKey(ctx context.Context, params *apigateway.CreateApiKeyInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateApiKeyOutput, error)
	UpdateApiKey(ctx context.Context, params *apigateway.UpdateApiKeyInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateApiKeyOutput, error)
	DeleteApiKey(ctx context.Context, params *apigateway.DeleteApiKeyInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteApiKeyOutput, error)
	ImportApiKeys(ctx context.Context, params *apigateway.ImportApiKeysInput, optFns ...func(*apigateway.Options)) (*apigateway.ImportApiKeysOutput, error)

	// Documentation
	GetDocumentationParts(ctx context.Context, params *apigateway.GetDocumentationPartsInput, optFns ...func(*apigateway.Options)) (*apigateway.GetDocumentationPartsOutput, error)
	GetDocumentationPart(ctx context.Context, params *apigateway.GetDocumentationPartInput, optFns ...func(*apigateway.Options)) (*apigateway.GetDocumentationPartOutput, error)
	CreateDocumentationPart(ctx context.Context, params *apigateway.CreateDocumentationPartInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateDocumentationPartOutput, error)
	UpdateDocumentationPart(ctx context.Context, params *apigateway.UpdateDocumentationPartInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateDocumentationPartOutput, error)
	DeleteDocumentationPart(ctx context.Context, params *apigateway.DeleteDocumentationPartInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteDocumentationPartOutput, error)
	GetDocumentationVersions(ctx context.Context, params *apigateway.GetDocumentationVersionsInput, optFns ...func(*apigateway.Options)) (*apigateway.GetDocumentationVersionsOutput, error)
	CreateDocumentationVersion(ctx context.Context, params *apigateway.CreateDocumentationVersionInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateDocumentationVersionOutput, error)
	DeleteDocumentationVersion(ctx context.Context, params *apigateway.DeleteDocumentationVersionInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteDocumentationVersionOutput, error)

	// VPC links, client certificates, account and tags
	GetVpcLinks(ctx context.Context, params *apigateway.GetVpcLinksInput, optFns ...func(*apigateway.Options)) (*apigateway.GetVpcLinksOutput, error)
	GetVpcLink(ctx context.Context, params *apigateway.GetVpcLinkInput, optFns ...func(*apigateway.Options)) (*apigateway.GetVpcLinkOutput, error)
	CreateVpcLink(ctx context.Context, params *apigateway.CreateVpcLinkInput, optFns ...func(*apigateway.Options)) (*apigateway.CreateVpcLinkOutput, error)
	UpdateVpcLink(ctx context.Context, params *apigateway.UpdateVpcLinkInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateVpcLinkOutput, error)
	DeleteVpcLink(ctx context.Context, params *apigateway.DeleteVpcLinkInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteVpcLinkOutput, error)
	GetClientCertificates(ctx context.Context, params *apigateway.GetClientCertificatesInput, optFns ...func(*apigateway.Options)) (*apigateway.GetClientCertificatesOutput, error)
	GetClientCertificate(ctx context.Context, params *apigateway.GetClientCertificateInput, optFns ...func(*apigateway.Options)) (*apigateway.GetClientCertificateOutput, error)
	GenerateClientCertificate(ctx context.Context, params *apigateway.GenerateClientCertificateInput, optFns ...func(*apigateway.Options)) (*apigateway.GenerateClientCertificateOutput, error)
	DeleteClientCertificate(ctx context.Context, params *apigateway.DeleteClientCertificateInput, optFns ...func(*apigateway.Options)) (*apigateway.DeleteClientCertificateOutput, error)
	GetAccount(ctx context.Context, params *apigateway.GetAccountInput, optFns ...func(*apigateway.Options)) (*apigateway.GetAccountOutput, error)
	UpdateAccount(ctx context.Context, params *apigateway.UpdateAccountInput, optFns ...func(*apigateway.Options)) (*apigateway.UpdateAccountOutput, error)
	GetTags(ctx context.Context, params *apigateway.GetTagsInput, optFns ...func(*apigateway.Options)) (*apigateway.GetTagsOutput, error)
	TagResource(ctx context.Context, params *apigateway.TagResourceInput, optFns ...func(*apigateway.Options)) (*apigateway.TagResourceOutput, error)
	UntagResource(ctx context.Context, params *apigateway.UntagResourceInput, optFns ...func(*apigateway.Options)) (*apigateway.UntagResourceOutput, error)

	// Exports
	GetExport(ctx context.Context, params *apigateway.GetExportInput, optFns ...func(*apigateway.Options)) (*apigateway.GetExportOutput, error)
	GetSdk(ctx context.Context, params *apigateway.GetSdkInput, optFns ...func(*apigateway.Options)) (*apigateway.GetSdkOutput, error)
}

var _ APIGatewayAPI = (*apigateway.Client)(nil)
