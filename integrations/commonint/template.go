// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commonint

import (
	"strings"

	"github.com/l3montree-dev/alertflow/dtos"
)

// RenderTemplate replaces the event placeholders in s.
// Unknown placeholders are left untouched.
func RenderTemplate(s string, event dtos.Event) string {
	if !strings.Contains(s, "{{") {
		return s
	}

	return strings.NewReplacer(
		"{{event.title}}", event.Title,
		"{{event.message}}", event.Message,
		"{{event.level}}", event.Level,
		"{{event.culprit}}", event.Culprit,
		"{{event.id}}", event.ID,
		"{{group.id}}", event.Group.ID.String(),
		"{{group.title}}", event.Group.Title,
		"{{project.slug}}", event.Group.Project.Slug,
	).Replace(s)
}
