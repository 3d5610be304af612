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
	stageDefaultAttrs      = []string{"StageName", "DeploymentId", "CacheClusterEnabled", "TracingEnabled", "LastUpdatedDate"}
	deploymentDefaultAttrs = []string{"Id", "CreatedDate", "Description"}
)

// canaryParams feed the CanarySettings member of stage and deployment
// requests.
var canaryParams = []Param{
	{Name: "canary-deployment-id", Usage: "deployment the canary points to"},
	{Name: "canary-percent-traffic", Usage: "percentage of traffic sent to the canary", Kind: KindFloat},
	{Name: "canary-stage-variable-overrides", Usage: "name=value stage variable override, repeatable", Kind: KindMap},
	{Name: "canary-use-stage-cache", Usage: "let the canary use the stage cache", Kind: KindBool},
}

// canarySettings returns nil unless a canary parameter was bound.
func canarySettings(b *Binder) *types.CanarySettings {
	if !b.AnySet("canary-deployment-id", "canary-percent-traffic", "canary-stage-variable-overrides", "canary-use-stage-cache") {
		return nil
	}
	return &types.CanarySettings{
		DeploymentId:           b.String("canary-deployment-id"),
		PercentTraffic:         b.Float64("canary-percent-traffic"),
		StageVariableOverrides: b.Map("canary-stage-variable-overrides"),
		UseStageCache:          b.Bool("canary-use-stage-cache"),
	}
}

// deploymentCanarySettings is canarySettings for new deployments, which
// have no deployment id of their own yet.
func deploymentCanarySettings(b *Binder) *types.DeploymentCanarySettings {
	if !b.AnySet("canary-percent-traffic", "canary-stage-variable-overrides", "canary-use-stage-cache") {
		return nil
	}
	return &types.DeploymentCanarySettings{
		PercentTraffic:         b.Float64("canary-percent-traffic"),
		StageVariableOverrides: b.Map("canary-stage-variable-overrides"),
		UseStageCache:          b.Bool("canary-use-stage-cache"),
	}
}

func stageTarget(api, stage *string) string {
	return target("restapi", api, "stage", stage)
}

func stageCommandBuilder(m meta.Meta) *cli.Command {
	return group("stage", "stages of a REST API",
		(&Cmdlet[apigateway.GetStagesInput, apigateway.GetStagesOutput]{
			Group:     "stage",
			Verb:      "list",
			Operation: "GetStages",
			Usage:     "list the stages of a REST API",
			Params: []Param{
				positional(restAPIIDParam),
				{Name: "deployment-id", Usage: "only stages of this deployment"},
			},
			Call: aws.APIGatewayAPI.GetStages,
			Build: func(b *Binder) *apigateway.GetStagesInput {
				return &apigateway.GetStagesInput{
					RestApiId:    b.String("rest-api-id"),
					DeploymentId: b.String("deployment-id"),
				}
			},
			Select: "Item",
			Attrs:  stageDefaultAttrs,
			Schema: reflect.TypeOf(types.Stage{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetStageInput, apigateway.GetStageOutput]{
			Group:     "stage",
			Verb:      "get",
			Operation: "GetStage",
			Usage:     "get a stage",
			Params:    []Param{positional(stageNameParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.GetStage,
			Build: func(b *Binder) *apigateway.GetStageInput {
				return &apigateway.GetStageInput{
					RestApiId: b.String("rest-api-id"),
					StageName: b.String("stage-name"),
				}
			},
			Attrs: stageDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateStageInput, apigateway.CreateStageOutput]{
			Group:     "stage",
			Verb:      "new",
			Operation: "CreateStage",
			Usage:     "create a stage for a deployment",
			Params: append([]Param{
				positional(stageNameParam),
				restAPIIDParam,
				{Name: "deployment-id", Usage: "deployment the stage points to", Required: true},
				descriptionParam,
				{Name: "cache-cluster-enabled", Usage: "enable the stage cache cluster", Kind: KindBool},
				{Name: "cache-cluster-size", Usage: "cache cluster size in GB, e.g. 0.5"},
				{Name: "documentation-version", Usage: "documentation version to associate"},
				{Name: "tracing-enabled", Usage: "enable X-Ray tracing", Kind: KindBool},
				{Name: "variables", Usage: "name=value stage variable, repeatable", Kind: KindMap},
				tagsParam,
			}, canaryParams...),
			Call: aws.APIGatewayAPI.CreateStage,
			Build: func(b *Binder) *apigateway.CreateStageInput {
				return &apigateway.CreateStageInput{
					RestApiId:            b.String("rest-api-id"),
					StageName:            b.String("stage-name"),
					DeploymentId:         b.String("deployment-id"),
					Description:          b.String("description"),
					CacheClusterEnabled:  b.Bool("cache-cluster-enabled"),
					CacheClusterSize:     Enum[types.CacheClusterSize](b, "cache-cluster-size"),
					DocumentationVersion: b.String("documentation-version"),
					TracingEnabled:       b.Bool("tracing-enabled"),
					Variables:            b.Map("variables"),
					Tags:                 b.Map("tags"),
					CanarySettings:       canarySettings(b),
				}
			},
			Attrs:  stageDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateStageInput) string { return stageTarget(in.RestApiId, in.StageName) },
		}).Command(m),

		(&Cmdlet[apigateway.UpdateStageInput, apigateway.UpdateStageOutput]{
			Group:     "stage",
			Verb:      "update",
			Operation: "UpdateStage",
			Usage:     "patch a stage",
			Params:    []Param{positional(stageNameParam), restAPIIDParam, patchParam},
			Call:      aws.APIGatewayAPI.UpdateStage,
			Build: func(b *Binder) *apigateway.UpdateStageInput {
				return &apigateway.UpdateStageInput{
					RestApiId:       b.String("rest-api-id"),
					StageName:       b.String("stage-name"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  stageDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateStageInput) string { return stageTarget(in.RestApiId, in.StageName) },
		}).Command(m),

		(&Cmdlet[apigateway.DeleteStageInput, apigateway.DeleteStageOutput]{
			Group:     "stage",
			Verb:      "remove",
			Operation: "DeleteStage",
			Usage:     "delete a stage",
			Params:    []Param{positional(stageNameParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.DeleteStage,
			Build: func(b *Binder) *apigateway.DeleteStageInput {
				return &apigateway.DeleteStageInput{
					RestApiId: b.String("rest-api-id"),
					StageName: b.String("stage-name"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteStageInput) string { return stageTarget(in.RestApiId, in.StageName) },
		}).Command(m),

		(&Cmdlet[apigateway.FlushStageCacheInput, apigateway.FlushStageCacheOutput]{
			Group:     "stage",
			Verb:      "flush-cache",
			Operation: "FlushStageCache",
			Usage:     "flush the cache of a stage",
			Params:    []Param{positional(stageNameParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.FlushStageCache,
			Build: func(b *Binder) *apigateway.FlushStageCacheInput {
				return &apigateway.FlushStageCacheInput{
					RestApiId: b.String("rest-api-id"),
					StageName: b.String("stage-name"),
				}
			},
			Impact: confirm.Medium,
			Target: func(in *apigateway.FlushStageCacheInput) string { return stageTarget(in.RestApiId, in.StageName) },
		}).Command(m),

		(&Cmdlet[apigateway.FlushStageAuthorizersCacheInput, apigateway.FlushStageAuthorizersCacheOutput]{
			Group:     "stage",
			Verb:      "flush-authorizers-cache",
			Operation: "FlushStageAuthorizersCache",
			Usage:     "flush the authorizer cache of a stage",
			Params:    []Param{positional(stageNameParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.FlushStageAuthorizersCache,
			Build: func(b *Binder) *apigateway.FlushStageAuthorizersCacheInput {
				return &apigateway.FlushStageAuthorizersCacheInput{
					RestApiId: b.String("rest-api-id"),
					StageName: b.String("stage-name"),
				}
			},
			Impact: confirm.Medium,
			Target: func(in *apigateway.FlushStageAuthorizersCacheInput) string {
				return stageTarget(in.RestApiId, in.StageName)
			},
		}).Command(m),
	)
}

func deploymentCommandBuilder(m meta.Meta) *cli.Command {
	deploymentIDParam := Param{Name: "deployment-id", Usage: "identifier of the deployment", Required: true}

	return group("deployment", "deployments of a REST API",
		(&Cmdlet[apigateway.GetDeploymentsInput, apigateway.GetDeploymentsOutput]{
			Group:     "deployment",
			Verb:      "list",
			Operation: "GetDeployments",
			Usage:     "list the deployments of a REST API",
			Params:    []Param{positional(restAPIIDParam)},
			Call:      aws.APIGatewayAPI.GetDeployments,
			Build: func(b *Binder) *apigateway.GetDeploymentsInput {
				return &apigateway.GetDeploymentsInput{RestApiId: b.String("rest-api-id")}
			},
			Paging: Modular,
			Select: "Items",
			Attrs:  deploymentDefaultAttrs,
			Schema: reflect.TypeOf(types.Deployment{}),
		}).Command(m),

		(&Cmdlet[apigateway.GetDeploymentInput, apigateway.GetDeploymentOutput]{
			Group:     "deployment",
			Verb:      "get",
			Operation: "GetDeployment",
			Usage:     "get a deployment",
			Params:    []Param{positional(deploymentIDParam), restAPIIDParam, embedParam},
			Call:      aws.APIGatewayAPI.GetDeployment,
			Build: func(b *Binder) *apigateway.GetDeploymentInput {
				return &apigateway.GetDeploymentInput{
					RestApiId:    b.String("rest-api-id"),
					DeploymentId: b.String("deployment-id"),
					Embed:        b.Strings("embed"),
				}
			},
			Attrs: deploymentDefaultAttrs,
		}).Command(m),

		(&Cmdlet[apigateway.CreateDeploymentInput, apigateway.CreateDeploymentOutput]{
			Group:     "deployment",
			Verb:      "new",
			Operation: "CreateDeployment",
			Usage:     "deploy a REST API, optionally to a stage",
			Params: append([]Param{
				positional(restAPIIDParam),
				optional(stageNameParam),
				descriptionParam,
				{Name: "stage-description", Usage: "description of the stage created with the deployment"},
				{Name: "cache-cluster-enabled", Usage: "enable the stage cache cluster", Kind: KindBool},
				{Name: "cache-cluster-size", Usage: "cache cluster size in GB, e.g. 0.5"},
				{Name: "tracing-enabled", Usage: "enable X-Ray tracing", Kind: KindBool},
				{Name: "variables", Usage: "name=value stage variable, repeatable", Kind: KindMap},
			}, canaryParams[1:]...),
			Call: aws.APIGatewayAPI.CreateDeployment,
			Build: func(b *Binder) *apigateway.CreateDeploymentInput {
				return &apigateway.CreateDeploymentInput{
					RestApiId:           b.String("rest-api-id"),
					StageName:           b.String("stage-name"),
					Description:         b.String("description"),
					StageDescription:    b.String("stage-description"),
					CacheClusterEnabled: b.BoolPtr("cache-cluster-enabled"),
					CacheClusterSize:    Enum[types.CacheClusterSize](b, "cache-cluster-size"),
					TracingEnabled:      b.BoolPtr("tracing-enabled"),
					Variables:           b.Map("variables"),
					CanarySettings:      deploymentCanarySettings(b),
				}
			},
			Attrs:  deploymentDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.CreateDeploymentInput) string { return stageTarget(in.RestApiId, in.StageName) },
		}).Command(m),

		(&Cmdlet[apigateway.UpdateDeploymentInput, apigateway.UpdateDeploymentOutput]{
			Group:     "deployment",
			Verb:      "update",
			Operation: "UpdateDeployment",
			Usage:     "patch a deployment",
			Params:    []Param{positional(deploymentIDParam), restAPIIDParam, patchParam},
			Call:      aws.APIGatewayAPI.UpdateDeployment,
			Build: func(b *Binder) *apigateway.UpdateDeploymentInput {
				return &apigateway.UpdateDeploymentInput{
					RestApiId:       b.String("rest-api-id"),
					DeploymentId:    b.String("deployment-id"),
					PatchOperations: b.Patch("patch"),
				}
			},
			Attrs:  deploymentDefaultAttrs,
			Impact: confirm.Medium,
			Target: func(in *apigateway.UpdateDeploymentInput) string {
				return target("restapi", in.RestApiId, "deployment", in.DeploymentId)
			},
		}).Command(m),

		(&Cmdlet[apigateway.DeleteDeploymentInput, apigateway.DeleteDeploymentOutput]{
			Group:     "deployment",
			Verb:      "remove",
			Operation: "DeleteDeployment",
			Usage:     "delete a deployment",
			Params:    []Param{positional(deploymentIDParam), restAPIIDParam},
			Call:      aws.APIGatewayAPI.DeleteDeployment,
			Build: func(b *Binder) *apigateway.DeleteDeploymentInput {
				return &apigateway.DeleteDeploymentInput{
					RestApiId:    b.String("rest-api-id"),
					DeploymentId: b.String("deployment-id"),
				}
			},
			Impact: confirm.High,
			Target: func(in *apigateway.DeleteDeploymentInput) string {
				return target("restapi", in.RestApiId, "deployment", in.DeploymentId)
			},
		}).Command(m),
	)
}
