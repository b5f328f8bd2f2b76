package service_test

import (
	"context"
	"fmt"
	"testing"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"
	"crm-builder-backend/internal/repository"
	"crm-builder-backend/internal/service"
	"crm-builder-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RecordServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repos     *repository.Repositories
	records   *service.RecordService
	factories *testutils.FactorySet

	app    *models.CrmApp
	module *models.Module
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repos = repository.NewRepositories(suite.db)
	suite.factories = testutils.NewFactorySet()
	suite.records = suite.newRecordService(false)

	tenant := suite.factories.Tenant.Create()
	suite.Require().NoError(suite.repos.Tenants.Create(tenant))
	suite.app = suite.factories.CrmApp.Create(tenant.ID)
	suite.Require().NoError(suite.repos.Apps.Create(suite.app))
	suite.module = suite.factories.Module.Create(suite.app.ID, 0)
	suite.Require().NoError(suite.repos.Modules.Create(suite.module))

	name := suite.factories.Field.Create(suite.module.ID, "name", 0)
	name.Required = true
	status := suite.factories.Field.Select(suite.module.ID, "status", 1,
		models.Choice{Value: "open", Label: "Open"},
		models.Choice{Value: "closed", Label: "Closed"},
	)
	suite.Require().NoError(suite.repos.Fields.Create(name))
	suite.Require().NoError(suite.repos.Fields.Create(status))
}

func (suite *RecordServiceTestSuite) newRecordService(enforce bool) *service.RecordService {
	return service.NewRecordService(suite.repos, repository.NewTransactor(suite.db), validator.New(), service.RecordOptions{
		Pagination:        service.Pagination{DefaultLimit: 10, MaxLimit: 50},
		SearchLimit:       5,
		EnforceValidation: enforce,
	})
}

func (suite *RecordServiceTestSuite) create(data map[string]interface{}) *service.RecordResponse {
	record, err := suite.records.CreateRecord(context.Background(), suite.module.ID, &service.CreateRecordRequest{Data: data})
	suite.Require().NoError(err)
	return record
}

func (suite *RecordServiceTestSuite) TestCreateRecord_StoresDataAndLogsActivity() {
	ctx := context.WithValue(context.Background(), logger.ContextKeyEmail, "ada@example.com")
	record, err := suite.records.CreateRecord(ctx, suite.module.ID, &service.CreateRecordRequest{
		Data: map[string]interface{}{"name": "Ada", "status": "open", "extra": "kept"},
	})
	suite.Require().NoError(err)
	suite.Equal(suite.app.ID, record.AppID)
	suite.Equal("ada@example.com", record.CreatedBy)

	stored, err := suite.records.GetRecord(record.ID)
	suite.Require().NoError(err)
	suite.Equal("kept", stored.Data["extra"])

	activities, err := suite.records.ListActivities(record.ID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(activities, 1)
	suite.Equal(models.ActivityTypeCreated, activities[0].Type)
	suite.Equal([]interface{}{"extra", "name", "status"}, activities[0].Metadata["fields"])
	suite.Equal("ada@example.com", activities[0].CreatedBy)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_Errors() {
	_, err := suite.records.CreateRecord(context.Background(), suite.module.ID, &service.CreateRecordRequest{})
	suite.ErrorIs(err, apperrors.ErrRecordDataRequired)

	_, err = suite.records.CreateRecord(context.Background(), "missing", &service.CreateRecordRequest{Data: map[string]interface{}{}})
	suite.ErrorIs(err, apperrors.ErrModuleNotFound)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_ValidationIsOptIn() {
	invalid := map[string]interface{}{"status": "bogus"}

	_, err := suite.records.CreateRecord(context.Background(), suite.module.ID, &service.CreateRecordRequest{Data: invalid})
	suite.NoError(err, "unenforced mode stores data verbatim")

	strict := suite.newRecordService(true)
	_, err = strict.CreateRecord(context.Background(), suite.module.ID, &service.CreateRecordRequest{Data: invalid})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
	var rve *service.RecordValidationError
	suite.Require().ErrorAs(err, &rve)
	suite.Len(rve.Errors, 2)

	_, err = strict.CreateRecord(context.Background(), suite.module.ID, &service.CreateRecordRequest{
		Data: map[string]interface{}{"name": "Valid", "status": "closed"},
	})
	suite.NoError(err)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_MergesData() {
	record := suite.create(map[string]interface{}{"a": 1, "b": 2})

	updated, err := suite.records.UpdateRecord(context.Background(), record.ID, &service.UpdateRecordRequest{
		Data:      map[string]interface{}{"b": 3},
		UpdatedBy: "editor",
	})
	suite.Require().NoError(err)
	suite.Equal(map[string]interface{}{"a": float64(1), "b": float64(3)}, updated.Data)
	suite.Equal("editor", updated.UpdatedBy)

	activities, err := suite.records.ListActivities(record.ID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(activities, 2)
	suite.Equal(models.ActivityTypeUpdated, activities[0].Type)
	suite.Equal([]interface{}{"b"}, activities[0].Metadata["fields"])
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_EnforcedValidationChecksMergedData() {
	strict := suite.newRecordService(true)
	record, err := strict.CreateRecord(context.Background(), suite.module.ID, &service.CreateRecordRequest{
		Data: map[string]interface{}{"name": "Ada", "status": "open"},
	})
	suite.Require().NoError(err)

	_, err = strict.UpdateRecord(context.Background(), record.ID, &service.UpdateRecordRequest{
		Data: map[string]interface{}{"status": "closed"},
	})
	suite.NoError(err, "required name survives the merge")

	_, err = strict.UpdateRecord(context.Background(), record.ID, &service.UpdateRecordRequest{
		Data: map[string]interface{}{"name": ""},
	})
	suite.True(apperrors.IsValidation(err))

	stored, err := strict.GetRecord(record.ID)
	suite.Require().NoError(err)
	suite.Equal("Ada", stored.Data["name"])
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_NotFound() {
	_, err := suite.records.UpdateRecord(context.Background(), "missing", &service.UpdateRecordRequest{Data: map[string]interface{}{}})
	suite.ErrorIs(err, apperrors.ErrRecordNotFound)
}

func (suite *RecordServiceTestSuite) TestListByModule_PagesAreDisjoint() {
	const n = 23
	for i := 0; i < n; i++ {
		suite.create(map[string]interface{}{"name": fmt.Sprintf("record %d", i)})
	}

	first, err := suite.records.ListByModule(suite.module.ID, 10, 0)
	suite.Require().NoError(err)
	second, err := suite.records.ListByModule(suite.module.ID, 10, 10)
	suite.Require().NoError(err)

	suite.Equal(int64(n), first.Total)
	suite.Equal(int64(n), second.Total)
	seen := map[string]struct{}{}
	for _, r := range append(first.Records, second.Records...) {
		seen[r.ID] = struct{}{}
	}
	suite.Len(seen, 20)

	count, err := suite.repos.Records.CountByModuleID(suite.module.ID)
	suite.Require().NoError(err)
	suite.Equal(int64(n), count)
}

func (suite *RecordServiceTestSuite) TestListByModule_ClampsLimit() {
	page, err := suite.records.ListByModule(suite.module.ID, 0, 0)
	suite.Require().NoError(err)
	suite.Equal(10, page.Limit)

	page, err = suite.records.ListByModule(suite.module.ID, 500, 0)
	suite.Require().NoError(err)
	suite.Equal(50, page.Limit)

	_, err = suite.records.ListByModule(suite.module.ID, -1, 0)
	suite.True(apperrors.IsValidation(err))

	_, err = suite.records.ListByModule("missing", 10, 0)
	suite.ErrorIs(err, apperrors.ErrModuleNotFound)
}

func (suite *RecordServiceTestSuite) TestListByApp() {
	suite.create(map[string]interface{}{"name": "one"})
	suite.create(map[string]interface{}{"name": "two"})

	records, err := suite.records.ListByApp(suite.app.ID, 1)
	suite.Require().NoError(err)
	suite.Len(records, 1)

	_, err = suite.records.ListByApp("missing", 10)
	suite.ErrorIs(err, apperrors.ErrCrmAppNotFound)
}

func (suite *RecordServiceTestSuite) TestSearch() {
	suite.create(map[string]interface{}{"name": "Grace Hopper"})
	suite.create(map[string]interface{}{"name": "Alan Turing"})
	suite.create(map[string]interface{}{"name": "100% cotton"})

	found, err := suite.records.Search(suite.module.ID, " hopper", 0)
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal("Grace Hopper", found[0].Data["name"])

	found, err = suite.records.Search(suite.module.ID, "e h", 0)
	suite.Require().NoError(err)
	suite.Len(found, 1, "inner whitespace is part of the term")

	found, err = suite.records.Search(suite.module.ID, "hopper ", 0)
	suite.Require().NoError(err)
	suite.Empty(found, "trailing whitespace is part of the term")

	found, err = suite.records.Search(suite.module.ID, "%", 0)
	suite.Require().NoError(err)
	suite.Len(found, 1, "wildcards are matched literally")

	_, err = suite.records.Search(suite.module.ID, "   ", 0)
	suite.ErrorIs(err, apperrors.ErrEmptySearchTerm)

	_, err = suite.records.Search(suite.module.ID, "x", -1)
	suite.ErrorIs(err, apperrors.ErrInvalidPagination)
}

func (suite *RecordServiceTestSuite) TestCorruptDataIsStorageError() {
	record := suite.create(map[string]interface{}{"name": "Grace Hopper"})
	suite.Require().NoError(suite.db.Exec("UPDATE crm_records SET data = ? WHERE id = ?", "{broken", record.ID).Error)

	_, err := suite.records.GetRecord(record.ID)
	suite.True(apperrors.IsStorage(err), "got %v", err)

	_, err = suite.records.ListByModule(suite.module.ID, 10, 0)
	suite.True(apperrors.IsStorage(err), "got %v", err)

	_, err = suite.records.ListByApp(suite.app.ID, 10)
	suite.True(apperrors.IsStorage(err), "got %v", err)

	_, err = suite.records.UpdateRecord(context.Background(), record.ID, &service.UpdateRecordRequest{
		Data: map[string]interface{}{"name": "Ada"},
	})
	suite.True(apperrors.IsStorage(err), "got %v", err)
}

func (suite *RecordServiceTestSuite) TestSearch_CapsLimit() {
	for i := 0; i < 8; i++ {
		suite.create(map[string]interface{}{"name": fmt.Sprintf("match %d", i)})
	}
	found, err := suite.records.Search(suite.module.ID, "match", 100)
	suite.Require().NoError(err)
	suite.Len(found, 5)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_RemovesActivities() {
	record := suite.create(map[string]interface{}{"name": "gone"})
	_, err := suite.records.AddActivity(context.Background(), record.ID, &service.CreateActivityRequest{Type: models.ActivityTypeNote, Content: "hi"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.records.DeleteRecord(record.ID))

	_, err = suite.records.GetRecord(record.ID)
	suite.ErrorIs(err, apperrors.ErrRecordNotFound)
	var count int64
	suite.Require().NoError(suite.db.Model(&models.Activity{}).Where("record_id = ?", record.ID).Count(&count).Error)
	suite.Zero(count)

	suite.ErrorIs(suite.records.DeleteRecord(record.ID), apperrors.ErrRecordNotFound)
}

func (suite *RecordServiceTestSuite) TestValidateData() {
	report, err := suite.records.ValidateData(suite.module.ID, map[string]interface{}{"status": "open"})
	suite.Require().NoError(err)
	suite.False(report.Valid)
	suite.Require().Len(report.Errors, 1)
	suite.Equal(service.CodeRequired, report.Errors[0].Code)

	report, err = suite.records.ValidateData(suite.module.ID, map[string]interface{}{"name": "ok"})
	suite.Require().NoError(err)
	suite.True(report.Valid)

	_, err = suite.records.ValidateData(suite.module.ID, nil)
	suite.ErrorIs(err, apperrors.ErrRecordDataRequired)
}

func (suite *RecordServiceTestSuite) TestActivities() {
	record := suite.create(map[string]interface{}{"name": "Ada"})

	note, err := suite.records.AddActivity(context.Background(), record.ID, &service.CreateActivityRequest{
		Type:     models.ActivityTypeCall,
		Content:  "Called about renewal",
		Metadata: map[string]interface{}{"durationMinutes": 5},
	})
	suite.Require().NoError(err)
	suite.Equal(models.ActivityTypeCall, note.Type)

	_, err = suite.records.AddActivity(context.Background(), record.ID, &service.CreateActivityRequest{Type: models.ActivityTypeCreated})
	suite.True(apperrors.IsValidation(err), "system activity types are not accepted")

	_, err = suite.records.AddActivity(context.Background(), record.ID, &service.CreateActivityRequest{Type: "fax"})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.records.AddActivity(context.Background(), "missing", &service.CreateActivityRequest{Type: models.ActivityTypeNote})
	suite.ErrorIs(err, apperrors.ErrRecordNotFound)

	activities, err := suite.records.ListActivities(record.ID, 0)
	suite.Require().NoError(err)
	suite.Require().Len(activities, 2)
	suite.Equal(note.ID, activities[0].ID)

	suite.Require().NoError(suite.records.DeleteActivity(note.ID))
	suite.ErrorIs(suite.records.DeleteActivity(note.ID), apperrors.ErrActivityNotFound)
}

func (suite *RecordServiceTestSuite) TestMergeData() {
	current := map[string]interface{}{"a": 1, "b": 2}
	merged := service.MergeData(current, map[string]interface{}{"b": 3, "c": nil})

	suite.Equal(map[string]interface{}{"a": 1, "b": 3, "c": nil}, merged)
	suite.Equal(map[string]interface{}{"a": 1, "b": 2}, current)
	suite.Equal(map[string]interface{}{}, service.MergeData(nil, nil))
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
