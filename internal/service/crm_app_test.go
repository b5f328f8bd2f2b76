package service_test

import (
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

// CrmAppServiceTestSuite covers app reads and the cascading deletes of apps
// and tenants against a real store
type CrmAppServiceTestSuite struct {
	suite.Suite
	db            *gorm.DB
	repos         *repository.Repositories
	appService    *service.CrmAppService
	tenantService *service.TenantService
	tenant        *models.Tenant
	app           *models.CrmApp
	modules       []*models.Module
}

func (suite *CrmAppServiceTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repos = repository.NewRepositories(suite.db)
	transactor := repository.NewTransactor(suite.db)
	suite.appService = service.NewCrmAppService(suite.repos, transactor, validator.New())
	suite.tenantService = service.NewTenantService(suite.repos.Tenants, transactor, validator.New())

	suite.tenant = testutils.NewTenantFactory().Create()
	suite.Require().NoError(suite.repos.Tenants.Create(suite.tenant))
	suite.app = suite.seedApp(suite.tenant.ID)

	suite.modules = nil
	for i := 0; i < 2; i++ {
		module := testutils.NewModuleFactory().Create(suite.app.ID, i)
		suite.Require().NoError(suite.repos.Modules.Create(module))
		suite.modules = append(suite.modules, module)
		suite.seedModuleContents(suite.app.ID, module.ID, i+1)
	}
}

func (suite *CrmAppServiceTestSuite) seedApp(tenantID string) *models.CrmApp {
	app := testutils.NewCrmAppFactory().Create(tenantID)
	suite.Require().NoError(suite.repos.Apps.Create(app))
	return app
}

// seedModuleContents creates a field, a view and n records with one activity each
func (suite *CrmAppServiceTestSuite) seedModuleContents(appID, moduleID string, n int) {
	suite.Require().NoError(suite.repos.Fields.Create(testutils.NewFieldFactory().Create(moduleID, "name", 0)))
	suite.Require().NoError(suite.repos.Views.Create(testutils.NewViewFactory().Table(moduleID, "All", true, "name")))
	for i := 0; i < n; i++ {
		record := testutils.NewRecordFactory().Create(appID, moduleID, map[string]interface{}{"name": "r"})
		suite.Require().NoError(suite.repos.Records.Create(record))
		suite.Require().NoError(suite.repos.Activities.Create(&models.Activity{
			RecordID: record.ID,
			Type:     models.ActivityTypeCreated,
			Content:  "Record created",
		}))
	}
}

func (suite *CrmAppServiceTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Count(&n).Error)
	return n
}

func (suite *CrmAppServiceTestSuite) TestGetApp() {
	detail, err := suite.appService.GetApp(suite.app.ID)
	suite.Require().NoError(err)
	suite.Equal(suite.app.Name, detail.App.Name)
	suite.Require().Len(detail.Modules, 2)
	suite.Equal("module_0", detail.Modules[0].SystemName)
	suite.Equal("module_1", detail.Modules[1].SystemName)

	_, err = suite.appService.GetApp("missing")
	suite.ErrorIs(err, apperrors.ErrCrmAppNotFound)
}

func (suite *CrmAppServiceTestSuite) TestListByTenant() {
	suite.seedApp(suite.tenant.ID)

	apps, err := suite.appService.ListByTenant(suite.tenant.ID)
	suite.Require().NoError(err)
	suite.Len(apps, 2)

	_, err = suite.appService.ListByTenant("missing")
	suite.ErrorIs(err, apperrors.ErrTenantNotFound)
}

func (suite *CrmAppServiceTestSuite) TestUpdateApp() {
	name := "Renamed"
	active := false
	resp, err := suite.appService.UpdateApp(suite.app.ID, &service.UpdateCrmAppRequest{
		Name:     &name,
		IsActive: &active,
		Config:   &models.AppConfig{},
	})
	suite.Require().NoError(err)
	suite.Equal("Renamed", resp.Name)
	suite.False(resp.IsActive)
	suite.NotNil(resp.Config.ModuleRenames)

	_, err = suite.appService.UpdateApp("missing", &service.UpdateCrmAppRequest{Name: &name})
	suite.ErrorIs(err, apperrors.ErrCrmAppNotFound)
}

func (suite *CrmAppServiceTestSuite) TestGetStats() {
	stats, err := suite.appService.GetStats(suite.app.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), stats.Modules)
	suite.Equal(int64(3), stats.Records)
	suite.Equal(map[string]int64{"module_0": 1, "module_1": 2}, stats.RecordsByModule)

	_, err = suite.appService.GetStats("missing")
	suite.ErrorIs(err, apperrors.ErrCrmAppNotFound)
}

func (suite *CrmAppServiceTestSuite) TestDeleteApp_Cascades() {
	other := suite.seedApp(suite.tenant.ID)
	otherModule := testutils.NewModuleFactory().Create(other.ID, 0)
	suite.Require().NoError(suite.repos.Modules.Create(otherModule))
	suite.seedModuleContents(other.ID, otherModule.ID, 1)

	suite.Require().NoError(suite.appService.DeleteApp(suite.app.ID))

	suite.Equal(int64(1), suite.count(&models.CrmApp{}))
	suite.Equal(int64(1), suite.count(&models.Module{}))
	suite.Equal(int64(1), suite.count(&models.Field{}))
	suite.Equal(int64(1), suite.count(&models.View{}))
	suite.Equal(int64(1), suite.count(&models.Record{}))
	suite.Equal(int64(1), suite.count(&models.Activity{}))

	suite.ErrorIs(suite.appService.DeleteApp(suite.app.ID), apperrors.ErrCrmAppNotFound)
}

func (suite *CrmAppServiceTestSuite) TestDeleteTenant_Cascades() {
	suite.seedApp(suite.tenant.ID)

	suite.Require().NoError(suite.tenantService.DeleteTenant(suite.tenant.ID))

	suite.Equal(int64(0), suite.count(&models.Tenant{}))
	suite.Equal(int64(0), suite.count(&models.CrmApp{}))
	suite.Equal(int64(0), suite.count(&models.Module{}))
	suite.Equal(int64(0), suite.count(&models.Record{}))
	suite.Equal(int64(0), suite.count(&models.Activity{}))

	suite.ErrorIs(suite.tenantService.DeleteTenant(suite.tenant.ID), apperrors.ErrTenantNotFound)
}

func (suite *CrmAppServiceTestSuite) TestCorruptConfigIsStorageError() {
	suite.Require().NoError(suite.db.Exec("UPDATE crm_apps SET config = ? WHERE id = ?", "{broken", suite.app.ID).Error)

	_, err := suite.appService.GetApp(suite.app.ID)
	suite.True(apperrors.IsStorage(err), "got %v", err)

	_, err = suite.appService.ListByTenant(suite.tenant.ID)
	suite.True(apperrors.IsStorage(err), "got %v", err)
}

func TestCrmAppServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrmAppServiceTestSuite))
}
