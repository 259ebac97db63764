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

package controllers

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/dtos"
	"github.com/l3montree-dev/alertflow/rules"
	"github.com/l3montree-dev/alertflow/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type RuleController struct {
	ruleRepository  shared.RuleRepository
	groupRepository shared.GroupRepository
	processor       *rules.Processor
}

func NewRuleController(ruleRepository shared.RuleRepository, groupRepository shared.GroupRepository, processor *rules.Processor) *RuleController {
	return &RuleController{
		ruleRepository:  ruleRepository,
		groupRepository: groupRepository,
		processor:       processor,
	}
}

func (c *RuleController) readRule(ctx shared.Context) (models.Rule, error) {
	org := shared.GetOrg(ctx)
	ruleID, err := shared.GetUUIDParam(ctx, "ruleID")
	if err != nil {
		return models.Rule{}, echo.NewHTTPError(400, "invalid rule id").WithInternal(err)
	}

	rule, err := c.ruleRepository.ReadInOrg(org.ID, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Rule{}, echo.NewHTTPError(404, "rule not found").WithInternal(err)
		}
		return models.Rule{}, echo.NewHTTPError(500, "could not read rule").WithInternal(err)
	}
	return rule, nil
}

// @Summary Render the labels of all actions of a rule
// @Tags Rules
// @Param organization path string true "Organization slug"
// @Param ruleID path string true "Rule ID"
// @Success 200 {object} dtos.RuleLabelsDTO
// @Router /organizations/{organization}/rules/{ruleID}/labels [get]
func (c *RuleController) Labels(ctx shared.Context) error {
	rule, err := c.readRule(ctx)
	if err != nil {
		return err
	}

	labels, err := c.processor.RenderLabels(rule)
	if err != nil {
		return echo.NewHTTPError(500, "could not render rule labels").WithInternal(err)
	}

	return ctx.JSON(200, dtos.RuleLabelsDTO{
		RuleID: rule.ID.String(),
		Labels: labels,
	})
}

// @Summary Run the actions of a rule for an event of a group
// @Tags Rules
// @Param organization path string true "Organization slug"
// @Param ruleID path string true "Rule ID"
// @Param body body dtos.FireRuleRequest true "Event"
// @Success 202
// @Router /organizations/{organization}/rules/{ruleID}/fire [post]
func (c *RuleController) Fire(ctx shared.Context) error {
	var req dtos.FireRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not parse request body").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	rule, err := c.readRule(ctx)
	if err != nil {
		return err
	}

	group, err := c.groupRepository.ReadWithProject(uuid.MustParse(req.GroupID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(404, "group not found").WithInternal(err)
		}
		return echo.NewHTTPError(500, "could not read group").WithInternal(err)
	}
	if group.ProjectID != rule.ProjectID {
		return echo.NewHTTPError(400, "group does not belong to the project of the rule")
	}

	event := dtos.Event{
		ID:        req.EventID,
		Title:     req.Title,
		Message:   req.Message,
		Level:     req.Level,
		Culprit:   req.Culprit,
		Tags:      req.Tags,
		Timestamp: time.Now(),
		Group:     group,
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	state := shared.EventState{
		IsNew:                 req.IsNew,
		IsRegression:          req.IsRegression,
		IsNewGroupEnvironment: req.IsNewGroupEnvironment,
		HasReappeared:         req.HasReappeared,
	}

	if err := c.processor.Apply(ctx.Request().Context(), rule, event, state); err != nil {
		if errors.Is(err, rules.ErrUnknownAction) {
			return echo.NewHTTPError(500, "rule contains an unknown action").WithInternal(err)
		}
		return echo.NewHTTPError(502, "could not run rule actions").WithInternal(err)
	}

	return ctx.JSON(202, map[string]string{"eventId": event.ID})
}
