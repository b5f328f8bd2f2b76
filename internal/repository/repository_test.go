package repository

import (
	"testing"
	"time"

	"crm-builder-backend/internal/database/models"
	"crm-builder-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SchemaRepositoryTestSuite exercises the schema repositories against an
// in-memory sqlite database
type SchemaRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repos     *Repositories
	factories *testutils.FactorySet

	tenant *models.Tenant
	app    *models.CrmApp
}

// SetupTest runs before each test with a fresh database
func (suite *SchemaRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repos = NewRepositories(suite.db)
	suite.factories = testutils.NewFactorySet()

	suite.tenant = suite.factories.Tenant.Create()
	suite.Require().NoError(suite.repos.Tenants.Create(suite.tenant))
	suite.app = suite.factories.CrmApp.Create(suite.tenant.ID)
	suite.Require().NoError(suite.repos.Apps.Create(suite.app))
}

func (suite *SchemaRepositoryTestSuite) createModule(sortOrder int) *models.Module {
	module := suite.factories.Module.Create(suite.app.ID, sortOrder)
	suite.Require().NoError(suite.repos.Modules.Create(module))
	return module
}

// TestTenantLookups tests slug and owner lookups
func (suite *SchemaRepositoryTestSuite) TestTenantLookups() {
	bySlug, err := suite.repos.Tenants.GetBySlug(suite.tenant.Slug)
	suite.NoError(err)
	suite.Equal(suite.tenant.ID, bySlug.ID)

	byOwner, err := suite.repos.Tenants.GetByOwnerID(suite.tenant.OwnerID)
	suite.NoError(err)
	suite.Equal(suite.tenant.ID, byOwner.ID)

	_, err = suite.repos.Tenants.GetBySlug("missing")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTenantDuplicateSlug tests the tenant slug unique index
func (suite *SchemaRepositoryTestSuite) TestTenantDuplicateSlug() {
	dup := suite.factories.Tenant.WithSlug(suite.tenant.Slug)
	err := suite.repos.Tenants.Create(dup)
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestTenantGetAll tests listing with a total
func (suite *SchemaRepositoryTestSuite) TestTenantGetAll() {
	suite.Require().NoError(suite.repos.Tenants.Create(suite.factories.Tenant.Create()))

	tenants, total, err := suite.repos.Tenants.GetAll(1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(tenants, 1)
}

// TestAppSlugUniquePerTenant tests that app slugs collide only within a tenant
func (suite *SchemaRepositoryTestSuite) TestAppSlugUniquePerTenant() {
	dup := suite.factories.CrmApp.Create(suite.tenant.ID)
	dup.Slug = suite.app.Slug
	suite.ErrorIs(suite.repos.Apps.Create(dup), gorm.ErrDuplicatedKey)

	other := suite.factories.Tenant.Create()
	suite.Require().NoError(suite.repos.Tenants.Create(other))
	elsewhere := suite.factories.CrmApp.Create(other.ID)
	elsewhere.Slug = suite.app.Slug
	suite.NoError(suite.repos.Apps.Create(elsewhere))

	found, err := suite.repos.Apps.GetBySlug(other.ID, suite.app.Slug)
	suite.NoError(err)
	suite.Equal(elsewhere.ID, found.ID)
}

// TestAppJSONColumnsRoundTrip tests that typed JSON columns decode back
func (suite *SchemaRepositoryTestSuite) TestAppJSONColumnsRoundTrip() {
	suite.app.Config = datatypes.NewJSONType(models.AppConfig{ModuleRenames: map[string]string{"contacts": "Patients"}})
	ok, err := suite.repos.Apps.Update(suite.app.ID, map[string]interface{}{"config": suite.app.Config})
	suite.NoError(err)
	suite.True(ok)

	found, err := suite.repos.Apps.GetByID(suite.app.ID)
	suite.NoError(err)
	suite.Equal("Patients", found.Config.Data().ModuleRenames["contacts"])
	suite.Equal([]string{"people"}, found.EnabledPillars.Data())
	suite.Equal("#6366f1", found.Branding["primaryColor"])
}

// TestModulesOrderedBySortOrder tests listing order and the max sort order helper
func (suite *SchemaRepositoryTestSuite) TestModulesOrderedBySortOrder() {
	maxOrder, err := suite.repos.Modules.MaxSortOrder(suite.app.ID)
	suite.NoError(err)
	suite.Equal(-1, maxOrder)

	suite.createModule(2)
	suite.createModule(0)
	suite.createModule(1)

	modules, err := suite.repos.Modules.GetByAppID(suite.app.ID)
	suite.NoError(err)
	suite.Require().Len(modules, 3)
	for i, m := range modules {
		suite.Equal(i, m.SortOrder)
	}

	maxOrder, err = suite.repos.Modules.MaxSortOrder(suite.app.ID)
	suite.NoError(err)
	suite.Equal(2, maxOrder)

	count, err := suite.repos.Modules.CountByAppID(suite.app.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)
}

// TestModuleSystemNameUniquePerApp tests the module unique index
func (suite *SchemaRepositoryTestSuite) TestModuleSystemNameUniquePerApp() {
	suite.createModule(0)
	dup := suite.factories.Module.Create(suite.app.ID, 0)
	suite.ErrorIs(suite.repos.Modules.Create(dup), gorm.ErrDuplicatedKey)

	found, err := suite.repos.Modules.GetBySystemName(suite.app.ID, "module_0")
	suite.NoError(err)
	suite.Equal("Module 0", found.DisplayName)
}

// TestSparseUpdate tests that only provided columns change and that a missing
// row reports false
func (suite *SchemaRepositoryTestSuite) TestSparseUpdate() {
	module := suite.createModule(0)

	ok, err := suite.repos.Modules.Update(module.ID, map[string]interface{}{"display_name": "Renamed"})
	suite.NoError(err)
	suite.True(ok)

	found, err := suite.repos.Modules.GetByID(module.ID)
	suite.NoError(err)
	suite.Equal("Renamed", found.DisplayName)
	suite.Equal(module.Icon, found.Icon)
	suite.True(found.Config.Data().AllowDelete)

	ok, err = suite.repos.Modules.Update(module.ID, map[string]interface{}{})
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.repos.Modules.Update("missing", map[string]interface{}{"display_name": "x"})
	suite.NoError(err)
	suite.False(ok)

	ok, err = suite.repos.Modules.Update("missing", map[string]interface{}{})
	suite.NoError(err)
	suite.False(ok)
}

// TestDeleteReportsExistence tests the boolean result of Delete
func (suite *SchemaRepositoryTestSuite) TestDeleteReportsExistence() {
	module := suite.createModule(0)

	ok, err := suite.repos.Modules.Delete(module.ID)
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.repos.Modules.Delete(module.ID)
	suite.NoError(err)
	suite.False(ok)
}

// TestFields tests field ordering, lookup and the name unique index
func (suite *SchemaRepositoryTestSuite) TestFields() {
	module := suite.createModule(0)
	suite.Require().NoError(suite.repos.Fields.Create(suite.factories.Field.Create(module.ID, "b", 1)))
	suite.Require().NoError(suite.repos.Fields.Create(suite.factories.Field.Select(module.ID, "a", 0,
		models.Choice{Value: "new", Label: "New"})))

	fields, err := suite.repos.Fields.GetByModuleID(module.ID)
	suite.NoError(err)
	suite.Require().Len(fields, 2)
	suite.Equal("a", fields[0].Name)
	suite.Equal("New", fields[0].Options.Data().Choices[0].Label)

	maxOrder, err := suite.repos.Fields.MaxSortOrder(module.ID)
	suite.NoError(err)
	suite.Equal(1, maxOrder)

	byName, err := suite.repos.Fields.GetByName(module.ID, "b")
	suite.NoError(err)
	suite.Equal(models.FieldTypeText, byName.Type)

	err = suite.repos.Fields.Create(suite.factories.Field.Create(module.ID, "b", 2))
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestViewDefaults tests default-first listing and ClearDefault
func (suite *SchemaRepositoryTestSuite) TestViewDefaults() {
	module := suite.createModule(0)
	first := suite.factories.View.Table(module.ID, "First", false)
	second := suite.factories.View.Table(module.ID, "Second", true, "a", "b")
	suite.Require().NoError(suite.repos.Views.Create(first))
	suite.Require().NoError(suite.repos.Views.Create(second))

	views, err := suite.repos.Views.GetByModuleID(module.ID)
	suite.NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(second.ID, views[0].ID)
	suite.Equal([]string{"a", "b"}, views[0].Columns.Data())

	def, err := suite.repos.Views.GetDefault(module.ID)
	suite.NoError(err)
	suite.Equal(second.ID, def.ID)

	ok, err := suite.repos.Views.Update(first.ID, map[string]interface{}{"is_default": true})
	suite.NoError(err)
	suite.True(ok)
	cleared, err := suite.repos.Views.ClearDefault(module.ID, first.ID)
	suite.NoError(err)
	suite.Equal(int64(1), cleared)

	def, err = suite.repos.Views.GetDefault(module.ID)
	suite.NoError(err)
	suite.Equal(first.ID, def.ID)

	cleared, err = suite.repos.Views.ClearDefault(module.ID, "")
	suite.NoError(err)
	suite.Equal(int64(1), cleared)
	_, err = suite.repos.Views.GetDefault(module.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestCascadeHelpers tests the bulk deletes used when a module or app goes away
func (suite *SchemaRepositoryTestSuite) TestCascadeHelpers() {
	keep := suite.createModule(0)
	drop := suite.createModule(1)
	for _, m := range []*models.Module{keep, drop} {
		suite.Require().NoError(suite.repos.Fields.Create(suite.factories.Field.Create(m.ID, "name", 0)))
		suite.Require().NoError(suite.repos.Views.Create(suite.factories.View.Table(m.ID, "All", true)))
		record := suite.factories.Record.Create(suite.app.ID, m.ID, map[string]interface{}{"name": m.SystemName})
		suite.Require().NoError(suite.repos.Records.Create(record))
		suite.Require().NoError(suite.repos.Activities.Create(&models.Activity{RecordID: record.ID, Type: models.ActivityTypeCreated}))
	}

	ids := []string{drop.ID}
	n, err := suite.repos.Activities.DeleteByModuleIDs(ids)
	suite.NoError(err)
	suite.Equal(int64(1), n)
	n, err = suite.repos.Records.DeleteByModuleIDs(ids)
	suite.NoError(err)
	suite.Equal(int64(1), n)
	n, err = suite.repos.Views.DeleteByModuleIDs(ids)
	suite.NoError(err)
	suite.Equal(int64(1), n)
	n, err = suite.repos.Fields.DeleteByModuleIDs(ids)
	suite.NoError(err)
	suite.Equal(int64(1), n)

	n, err = suite.repos.Fields.DeleteByModuleIDs(nil)
	suite.NoError(err)
	suite.Zero(n)

	remaining, err := suite.repos.Records.CountByAppID(suite.app.ID)
	suite.NoError(err)
	suite.Equal(int64(1), remaining)

	n, err = suite.repos.Modules.DeleteByAppID(suite.app.ID)
	suite.NoError(err)
	suite.Equal(int64(2), n)
}

// TestTransactionRollsBack tests that a failing unit of work leaves nothing behind
func (suite *SchemaRepositoryTestSuite) TestTransactionRollsBack() {
	transactor := NewTransactor(suite.db)
	err := transactor.WithinTransaction(func(repos *Repositories) error {
		if err := repos.Modules.Create(suite.factories.Module.Create(suite.app.ID, 0)); err != nil {
			return err
		}
		return repos.Modules.Create(suite.factories.Module.Create(suite.app.ID, 0))
	})
	suite.ErrorIs(err, gorm.ErrDuplicatedKey)

	count, err := suite.repos.Modules.CountByAppID(suite.app.ID)
	suite.NoError(err)
	suite.Zero(count)

	err = transactor.WithinTransaction(func(repos *Repositories) error {
		return repos.Modules.Create(suite.factories.Module.Create(suite.app.ID, 0))
	})
	suite.NoError(err)
	count, err = suite.repos.Modules.CountByAppID(suite.app.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// RecordRepositoryTestSuite tests record paging, search and activities
type RecordRepositoryTestSuite struct {
	suite.Suite
	repos    *Repositories
	appID    string
	moduleID string
}

// SetupTest runs before each test with a fresh database
func (suite *RecordRepositoryTestSuite) SetupTest() {
	db := testutils.NewSQLiteDB(suite.T())
	suite.repos = NewRepositories(db)
	factories := testutils.NewFactorySet()

	tenant := factories.Tenant.Create()
	suite.Require().NoError(suite.repos.Tenants.Create(tenant))
	app := factories.CrmApp.Create(tenant.ID)
	suite.Require().NoError(suite.repos.Apps.Create(app))
	module := factories.Module.Create(app.ID, 0)
	suite.Require().NoError(suite.repos.Modules.Create(module))
	suite.appID = app.ID
	suite.moduleID = module.ID
}

func (suite *RecordRepositoryTestSuite) createRecord(data map[string]interface{}, createdAt time.Time) *models.Record {
	record := &models.Record{AppID: suite.appID, ModuleID: suite.moduleID, Data: data}
	record.CreatedAt = createdAt
	suite.Require().NoError(suite.repos.Records.Create(record))
	return record
}

// TestPaginationIsDisjointAndNewestFirst tests that consecutive pages never overlap
func (suite *RecordRepositoryTestSuite) TestPaginationIsDisjointAndNewestFirst() {
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		// two records share each timestamp to exercise the id tie-breaker
		suite.createRecord(map[string]interface{}{"n": i}, base.Add(time.Duration(i/2)*time.Minute))
	}

	seen := map[string]bool{}
	var previous time.Time
	for offset := 0; offset < 7; offset += 3 {
		page, err := suite.repos.Records.GetByModuleID(suite.moduleID, 3, offset)
		suite.Require().NoError(err)
		for _, r := range page {
			suite.False(seen[r.ID], "record %s returned twice", r.ID)
			seen[r.ID] = true
			if !previous.IsZero() {
				suite.False(r.CreatedAt.After(previous))
			}
			previous = r.CreatedAt
		}
	}
	suite.Len(seen, 7)

	page, err := suite.repos.Records.GetByModuleID(suite.moduleID, 3, 7)
	suite.NoError(err)
	suite.Empty(page)

	total, err := suite.repos.Records.CountByModuleID(suite.moduleID)
	suite.NoError(err)
	suite.Equal(int64(7), total)
}

// TestGetByAppID tests the app-wide listing limit
func (suite *RecordRepositoryTestSuite) TestGetByAppID() {
	now := time.Now()
	suite.createRecord(map[string]interface{}{"n": 1}, now.Add(-time.Minute))
	newest := suite.createRecord(map[string]interface{}{"n": 2}, now)

	records, err := suite.repos.Records.GetByAppID(suite.appID, 1)
	suite.NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(newest.ID, records[0].ID)
}

// TestSearch tests case-insensitive substring search over record data
func (suite *RecordRepositoryTestSuite) TestSearch() {
	now := time.Now()
	alice := suite.createRecord(map[string]interface{}{"first_name": "Alice", "email": "alice@example.com"}, now)
	suite.createRecord(map[string]interface{}{"first_name": "Bob", "note": "100% sure"}, now.Add(-time.Minute))

	found, err := suite.repos.Records.Search(suite.moduleID, "ALI", 10)
	suite.NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(alice.ID, found[0].ID)

	found, err = suite.repos.Records.Search(suite.moduleID, "100%", 10)
	suite.NoError(err)
	suite.Len(found, 1)

	found, err = suite.repos.Records.Search(suite.moduleID, "%", 10)
	suite.NoError(err)
	suite.Len(found, 1)

	found, err = suite.repos.Records.Search(suite.moduleID, "nobody", 10)
	suite.NoError(err)
	suite.Empty(found)
}

// TestSearchMatchesMarkupCharacters tests that &, < and > are stored and matched literally
func (suite *RecordRepositoryTestSuite) TestSearchMatchesMarkupCharacters() {
	smith := suite.createRecord(map[string]interface{}{"name": "Smith & Sons <Ltd>"}, time.Now())

	for _, term := range []string{"& Sons", "<Ltd>", "Sons <", "ltd>", "smith"} {
		found, err := suite.repos.Records.Search(suite.moduleID, term, 10)
		suite.NoError(err)
		if suite.Len(found, 1, "term %q", term) {
			suite.Equal(smith.ID, found[0].ID)
		}
	}

	found, err := suite.repos.Records.GetByID(smith.ID)
	suite.NoError(err)
	suite.Equal("Smith & Sons <Ltd>", found.Data["name"])
}

// TestUpdateReplacesData tests that Update writes the given map as the whole data column
func (suite *RecordRepositoryTestSuite) TestUpdateReplacesData() {
	record := suite.createRecord(map[string]interface{}{"a": "1", "b": "2"}, time.Now())

	ok, err := suite.repos.Records.Update(record.ID, map[string]interface{}{"a": "x"}, "editor")
	suite.NoError(err)
	suite.True(ok)

	found, err := suite.repos.Records.GetByID(record.ID)
	suite.NoError(err)
	suite.Equal("x", found.Data["a"])
	suite.NotContains(found.Data, "b")
	suite.Equal("editor", found.UpdatedBy)

	ok, err = suite.repos.Records.Update("missing", map[string]interface{}{}, "editor")
	suite.NoError(err)
	suite.False(ok)
}

// TestActivitiesNewestFirst tests activity ordering and per-record deletes
func (suite *RecordRepositoryTestSuite) TestActivitiesNewestFirst() {
	record := suite.createRecord(map[string]interface{}{}, time.Now())
	for _, t := range []models.ActivityType{models.ActivityTypeCreated, models.ActivityTypeNote, models.ActivityTypeCall} {
		suite.Require().NoError(suite.repos.Activities.Create(&models.Activity{RecordID: record.ID, Type: t}))
	}

	activities, err := suite.repos.Activities.GetByRecordID(record.ID, 10)
	suite.NoError(err)
	suite.Require().Len(activities, 3)
	suite.Equal(models.ActivityTypeCall, activities[0].Type)
	suite.Equal(models.ActivityTypeCreated, activities[2].Type)
	suite.Len(activities[0].ID, 26)

	limited, err := suite.repos.Activities.GetByRecordID(record.ID, 2)
	suite.NoError(err)
	suite.Len(limited, 2)

	ok, err := suite.repos.Activities.Delete(activities[0].ID)
	suite.NoError(err)
	suite.True(ok)

	n, err := suite.repos.Activities.DeleteByRecordID(record.ID)
	suite.NoError(err)
	suite.Equal(int64(2), n)
}

func TestSchemaRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaRepositoryTestSuite))
}

func TestRecordRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RecordRepositoryTestSuite))
}
