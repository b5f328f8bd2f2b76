package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/repository"
	"crm-builder-backend/internal/service"
	"crm-builder-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ModuleServiceTestSuite struct {
	suite.Suite
	db            *gorm.DB
	repos         *repository.Repositories
	moduleService *service.ModuleService
	appID         string
}

func (suite *ModuleServiceTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repos = repository.NewRepositories(suite.db)
	suite.moduleService = service.NewModuleService(suite.repos, repository.NewTransactor(suite.db), validator.New())

	tenant := testutils.NewTenantFactory().Create()
	suite.Require().NoError(suite.repos.Tenants.Create(tenant))
	app := testutils.NewCrmAppFactory().Create(tenant.ID)
	suite.Require().NoError(suite.repos.Apps.Create(app))
	suite.appID = app.ID

	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repos.Modules.Create(testutils.NewModuleFactory().Create(app.ID, i)))
	}
}

func (suite *ModuleServiceTestSuite) projectsRequest() *service.CreateModuleRequest {
	return &service.CreateModuleRequest{
		SystemName:  "projects",
		DisplayName: "Projects",
		Color:       "#10b981",
		Fields: []service.CreateFieldRequest{
			{Name: "title", Label: "Title", Type: models.FieldTypeText, Required: true},
			{
				Name: "phase", Label: "Phase", Type: models.FieldTypeSelect,
				Options: &models.FieldOptions{Choices: []models.Choice{{Value: "plan", Label: "Plan"}, {Value: "build", Label: "Build"}}},
			},
		},
	}
}

func (suite *ModuleServiceTestSuite) TestCreateModule_AppendsCustomModule() {
	detail, err := suite.moduleService.CreateModule(context.Background(), suite.appID, suite.projectsRequest())
	suite.Require().NoError(err)

	suite.Equal(3, detail.Module.SortOrder)
	suite.Equal(models.PillarCustom, detail.Module.PillarID)
	suite.True(detail.Module.Enabled)
	suite.Require().Len(detail.Fields, 2)
	suite.Equal(0, detail.Fields[0].SortOrder)
	suite.Equal(1, detail.Fields[1].SortOrder)

	suite.Require().Len(detail.Views, 1)
	suite.True(detail.Views[0].IsDefault)
	suite.Equal(models.ViewTypeTable, detail.Views[0].Type)
	suite.Equal([]string{"title", "phase"}, detail.Views[0].Columns)

	modules, err := suite.moduleService.ListByApp(suite.appID)
	suite.Require().NoError(err)
	suite.Require().Len(modules, 4)
	suite.Equal("projects", modules[3].SystemName)
}

func (suite *ModuleServiceTestSuite) TestCreateModule_FirstModuleOfEmptyApp() {
	app := testutils.NewCrmAppFactory().Create(suite.mustTenantID())
	suite.Require().NoError(suite.repos.Apps.Create(app))

	detail, err := suite.moduleService.CreateModule(context.Background(), app.ID, &service.CreateModuleRequest{
		SystemName:  "notes",
		DisplayName: "Notes",
	})
	suite.Require().NoError(err)
	suite.Equal(0, detail.Module.SortOrder)
	suite.Empty(detail.Fields)
	suite.Require().Len(detail.Views, 1)
	suite.Empty(detail.Views[0].Columns)
}

func (suite *ModuleServiceTestSuite) mustTenantID() string {
	app, err := suite.repos.Apps.GetByID(suite.appID)
	suite.Require().NoError(err)
	return app.TenantID
}

func (suite *ModuleServiceTestSuite) TestCreateModule_DuplicateSystemName() {
	_, err := suite.moduleService.CreateModule(context.Background(), suite.appID, &service.CreateModuleRequest{
		SystemName:  "module_1",
		DisplayName: "Again",
	})
	suite.ErrorIs(err, apperrors.ErrModuleExists)
}

func (suite *ModuleServiceTestSuite) TestCreateModule_AppNotFound() {
	_, err := suite.moduleService.CreateModule(context.Background(), "missing", suite.projectsRequest())
	suite.ErrorIs(err, apperrors.ErrCrmAppNotFound)
}

func (suite *ModuleServiceTestSuite) TestCreateModule_InvalidInput() {
	tests := []struct {
		name   string
		mutate func(req *service.CreateModuleRequest)
	}{
		{name: "system name with spaces", mutate: func(req *service.CreateModuleRequest) { req.SystemName = "my projects" }},
		{name: "system name uppercase", mutate: func(req *service.CreateModuleRequest) { req.SystemName = "Projects" }},
		{name: "bad colour", mutate: func(req *service.CreateModuleRequest) { req.Color = "green" }},
		{name: "duplicate field names", mutate: func(req *service.CreateModuleRequest) { req.Fields[1].Name = "title" }},
		{name: "select without choices", mutate: func(req *service.CreateModuleRequest) { req.Fields[1].Options = nil }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			req := suite.projectsRequest()
			tt.mutate(req)
			_, err := suite.moduleService.CreateModule(context.Background(), suite.appID, req)
			suite.True(apperrors.IsValidation(err), "got %v", err)
		})
	}

	var n int64
	suite.Require().NoError(suite.db.Model(&models.Module{}).Count(&n).Error)
	suite.Equal(int64(3), n)
}

func (suite *ModuleServiceTestSuite) TestUpdateModule() {
	modules, err := suite.repos.Modules.GetByAppID(suite.appID)
	suite.Require().NoError(err)
	target := modules[0]

	name := "People"
	enabled := false
	order := 7
	resp, err := suite.moduleService.UpdateModule(target.ID, &service.UpdateModuleRequest{
		DisplayName: &name,
		Enabled:     &enabled,
		SortOrder:   &order,
	})
	suite.Require().NoError(err)
	suite.Equal("People", resp.DisplayName)
	suite.False(resp.Enabled)
	suite.Equal(7, resp.SortOrder)
	suite.Equal(target.SystemName, resp.SystemName)

	_, err = suite.moduleService.UpdateModule("missing", &service.UpdateModuleRequest{DisplayName: &name})
	suite.ErrorIs(err, apperrors.ErrModuleNotFound)
}

func (suite *ModuleServiceTestSuite) TestDeleteModule() {
	detail, err := suite.moduleService.CreateModule(context.Background(), suite.appID, suite.projectsRequest())
	suite.Require().NoError(err)
	record := testutils.NewRecordFactory().Create(suite.appID, detail.Module.ID, map[string]interface{}{"title": "Launch"})
	suite.Require().NoError(suite.repos.Records.Create(record))

	suite.Require().NoError(suite.moduleService.DeleteModule(detail.Module.ID))

	_, err = suite.moduleService.GetModule(detail.Module.ID)
	suite.ErrorIs(err, apperrors.ErrModuleNotFound)
	fields, err := suite.repos.Fields.GetByModuleID(detail.Module.ID)
	suite.Require().NoError(err)
	suite.Empty(fields)
	_, err = suite.repos.Records.GetByID(record.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.moduleService.DeleteModule(detail.Module.ID), apperrors.ErrModuleNotFound)
}

func (suite *ModuleServiceTestSuite) TestGetRecordSchema() {
	detail, err := suite.moduleService.CreateModule(context.Background(), suite.appID, suite.projectsRequest())
	suite.Require().NoError(err)

	schema, err := suite.moduleService.GetRecordSchema(detail.Module.ID)
	suite.Require().NoError(err)
	suite.Equal("Projects", schema.Title)
	suite.Equal([]string{"title"}, schema.Required)

	raw, err := json.Marshal(schema)
	suite.Require().NoError(err)
	suite.Contains(string(raw), `"enum":["plan","build"]`)

	_, err = suite.moduleService.GetRecordSchema("missing")
	suite.ErrorIs(err, apperrors.ErrModuleNotFound)
}

func TestModuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ModuleServiceTestSuite))
}
