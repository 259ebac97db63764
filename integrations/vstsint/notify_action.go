// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vstsint

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/integrations/commonint"
	"github.com/l3montree-dev/alertflow/shared"
)

const (
	CreateTicketActionID = "integrations.vsts.create_ticket"
	labelTemplate        = "Create an Azure DevOps work item in {integration} with these "
)

type WorkItemType string

const (
	WorkItemTypeIssue              WorkItemType = "Microsoft.VSTS.WorkItemTypes.Issue"
	WorkItemTypeEpic               WorkItemType = "Microsoft.VSTS.WorkItemTypes.Epic"
	WorkItemTypeTask               WorkItemType = "Microsoft.VSTS.WorkItemTypes.Task"
	WorkItemTypeBug                WorkItemType = "Microsoft.VSTS.WorkItemTypes.Bug"
	WorkItemTypeUserStory          WorkItemType = "Microsoft.VSTS.WorkItemTypes.UserStory"
	WorkItemTypeFeature            WorkItemType = "Microsoft.VSTS.WorkItemTypes.Feature"
	WorkItemTypeTestCase           WorkItemType = "Microsoft.VSTS.WorkItemTypes.TestCase"
	WorkItemTypeSharedStep         WorkItemType = "Microsoft.VSTS.WorkItemTypes.SharedStep"
	WorkItemTypeSharedParameter    WorkItemType = "Microsoft.VSTS.WorkItemTypes.SharedParameter"
	WorkItemTypeCodeReviewRequest  WorkItemType = "Microsoft.VSTS.WorkItemTypes.CodeReviewRequest"
	WorkItemTypeCodeReviewResponse WorkItemType = "Microsoft.VSTS.WorkItemTypes.CodeReviewResponse"
	WorkItemTypeFeedbackRequest    WorkItemType = "Microsoft.VSTS.WorkItemTypes.FeedbackRequest"
	WorkItemTypeFeedbackResponse   WorkItemType = "Microsoft.VSTS.WorkItemTypes.FeedbackResponse"
	WorkItemTypeTestPlan           WorkItemType = "Microsoft.VSTS.WorkItemTypes.TestPlan"
	WorkItemTypeTestSuite          WorkItemType = "Microsoft.VSTS.WorkItemTypes.TestSuite"
)

var workItemTypes = []struct {
	Type  WorkItemType
	Label string
}{
	{WorkItemTypeIssue, "Issue"},
	{WorkItemTypeEpic, "Epic"},
	{WorkItemTypeTask, "Task"},
	{WorkItemTypeBug, "Bug"},
	{WorkItemTypeUserStory, "User Story"},
	{WorkItemTypeFeature, "Feature"},
	{WorkItemTypeTestCase, "Test Case"},
	{WorkItemTypeSharedStep, "Shared Steps"},
	{WorkItemTypeSharedParameter, "Shared Parameter"},
	{WorkItemTypeCodeReviewRequest, "Code Review Request"},
	{WorkItemTypeCodeReviewResponse, "Code Review Response"},
	{WorkItemTypeFeedbackRequest, "Feedback Request"},
	{WorkItemTypeFeedbackResponse, "Feedback Response"},
	{WorkItemTypeTestPlan, "Test Plan"},
	{WorkItemTypeTestSuite, "Test Suite"},
}

func (t WorkItemType) Valid() bool {
	for _, w := range workItemTypes {
		if w.Type == t {
			return true
		}
	}
	return false
}

func workItemTypeChoices() []dtos.FormFieldChoice {
	choices := make([]dtos.FormFieldChoice, 0, len(workItemTypes))
	for _, w := range workItemTypes {
		choices = append(choices, dtos.FormFieldChoice{Value: string(w.Type), Label: w.Label})
	}
	return choices
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("work_item_type", func(fl validator.FieldLevel) bool {
		return WorkItemType(fl.Field().String()).Valid()
	}); err != nil {
		panic(err)
	}
	return v
}

// CreateTicketConfig is the action data stored on a rule.
// A rule listing only the integration can still render its label, project and type are checked before execution.
type CreateTicketConfig struct {
	Integration  string       `mapstructure:"integration" validate:"required,uuid"`
	Project      string       `mapstructure:"project"`
	WorkItemType WorkItemType `mapstructure:"work_item_type" validate:"omitempty,work_item_type"`
	Title        string       `mapstructure:"title"`
	Description  string       `mapstructure:"description"`
	// additional work item fields by reference name, e.g. System.AreaPath
	Fields map[string]any `mapstructure:"fields"`
	// only used by the form, ignored at execution
	DynamicFormFields map[string]any `mapstructure:"dynamic_form_fields"`
}

type executableConfig struct {
	Project      string       `validate:"required"`
	WorkItemType WorkItemType `validate:"required,work_item_type"`
}

// stored rules might carry the integration id as uuid instead of string
func uuidToStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	if id, ok := data.(uuid.UUID); ok {
		return id.String(), nil
	}
	return data, nil
}

func DecodeCreateTicketConfig(data map[string]any) (CreateTicketConfig, error) {
	var config CreateTicketConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       uuidToStringHook,
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return config, err
	}
	if err := decoder.Decode(data); err != nil {
		return config, fmt.Errorf("could not decode %s action: %w", CreateTicketActionID, err)
	}
	if err := validate.Struct(config); err != nil {
		return config, fmt.Errorf("invalid %s action: %w", CreateTicketActionID, err)
	}
	return config, nil
}

// AzureDevopsCreateTicketAction creates an azure devops work item for every group a rule fires for.
type AzureDevopsCreateTicketAction struct {
	*commonint.TicketEventAction
	config CreateTicketConfig
}

var _ shared.RuleAction = (*AzureDevopsCreateTicketAction)(nil)

func NewAzureDevopsCreateTicketAction(rule models.Rule, data map[string]any, deps commonint.TicketActionDependencies) (*AzureDevopsCreateTicketAction, error) {
	config, err := DecodeCreateTicketConfig(data)
	if err != nil {
		return nil, err
	}

	ticketConfig := commonint.TicketActionConfig{
		IntegrationID: uuid.MustParse(config.Integration),
		Project:       config.Project,
		IssueType:     string(config.WorkItemType),
		Title:         config.Title,
		Description:   config.Description,
		Fields:        config.Fields,
	}

	return &AzureDevopsCreateTicketAction{
		TicketEventAction: commonint.NewTicketEventAction(CreateTicketActionID, Provider, labelTemplate, rule, ticketConfig, deps),
		config:            config,
	}, nil
}

// NewCreateTicketActionFactory is registered under CreateTicketActionID.
func NewCreateTicketActionFactory(deps commonint.TicketActionDependencies) shared.RuleActionFactory {
	return func(rule models.Rule, data map[string]any) (shared.RuleAction, error) {
		action, err := NewAzureDevopsCreateTicketAction(rule, data, deps)
		if err != nil {
			return nil, err
		}
		return action, nil
	}
}

func (a *AzureDevopsCreateTicketAction) CreateTicketConfig() CreateTicketConfig {
	return a.config
}

func (a *AzureDevopsCreateTicketAction) After(ctx context.Context, event dtos.Event, state shared.EventState) ([]shared.CallbackFuture, error) {
	if err := validate.Struct(executableConfig{Project: a.config.Project, WorkItemType: a.config.WorkItemType}); err != nil {
		return nil, fmt.Errorf("%s action of rule %s is incomplete: %w", CreateTicketActionID, a.Rule().ID, err)
	}
	return a.TicketEventAction.After(ctx, event, state)
}
