package integrationtestutil

import (
	"testing"
	"time"

	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"gorm.io/datatypes"
)

type VstsFixture struct {
	Org                     models.Org
	Project                 models.Project
	Group                   models.Group
	Integration             models.Integration
	Identity                models.Identity
	OrganizationIntegration models.OrganizationIntegration
}

// CreateOrgProjectAndGroup creates the minimal tree an event lives in.
// The returned group has its project and organization loaded.
func CreateOrgProjectAndGroup(t *testing.T, db shared.DB) (models.Org, models.Project, models.Group) {
	t.Helper()

	org := models.Org{Name: "Baz Corp"}
	if err := db.Create(&org).Error; err != nil {
		t.Fatalf("could not create org: %s", err)
	}

	project, group := CreateProjectAndGroup(t, db, org, "Bar")
	return org, project, group
}

func CreateProjectAndGroup(t *testing.T, db shared.DB, org models.Org, projectName string) (models.Project, models.Group) {
	t.Helper()

	project := models.Project{Name: projectName, OrganizationID: org.ID}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("could not create project: %s", err)
	}

	group := models.Group{ProjectID: project.ID, Title: "TypeError: foo is undefined", Culprit: "app/main.js", Level: "error"}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("could not create group: %s", err)
	}

	project.Organization = org
	group.Project = project
	return project, group
}

// CreateVstsIntegration installs an azure devops integration into a new organization,
// authenticated by an identity which expires far in the future.
func CreateVstsIntegration(t *testing.T, db shared.DB, domainName string) VstsFixture {
	t.Helper()

	org, project, group := CreateOrgProjectAndGroup(t, db)

	integration := models.Integration{
		Provider:   "vsts",
		ExternalID: "vsts_external_id",
		Name:       "fabrikam-fiber-inc",
		Metadata: datatypes.NewJSONType(models.IntegrationMetadata{
			DomainName:     domainName,
			DefaultProject: "0987654321",
		}),
		Status: models.IntegrationStatusActive,
	}
	if err := db.Create(&integration).Error; err != nil {
		t.Fatalf("could not create integration: %s", err)
	}

	idp := models.IdentityProvider{Type: "vsts", Config: datatypes.JSONMap{}}
	if err := db.Create(&idp).Error; err != nil {
		t.Fatalf("could not create identity provider: %s", err)
	}

	identity := models.Identity{
		IdpID:       idp.ID,
		UserID:      "user-1",
		ExternalID:  "vsts",
		AccessToken: "123456789",
		ExpiresAt:   time.Now().Add(1234567 * time.Second),
	}
	if err := db.Create(&identity).Error; err != nil {
		t.Fatalf("could not create identity: %s", err)
	}

	orgIntegration := models.OrganizationIntegration{
		OrgID:         org.ID,
		IntegrationID: integration.ID,
		DefaultAuthID: &identity.ID,
		Status:        models.IntegrationStatusActive,
	}
	if err := db.Create(&orgIntegration).Error; err != nil {
		t.Fatalf("could not install integration: %s", err)
	}

	return VstsFixture{
		Org:                     org,
		Project:                 project,
		Group:                   group,
		Integration:             integration,
		Identity:                identity,
		OrganizationIntegration: orgIntegration,
	}
}
