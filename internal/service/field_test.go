package service_test

import (
	"context"
	"testing"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/mocks"
	"crm-builder-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FieldServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockFieldRepo  *mocks.MockFieldRepositoryInterface
	mockModuleRepo *mocks.MockModuleRepositoryInterface
	fieldService   *service.FieldService
}

func (suite *FieldServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFieldRepo = mocks.NewMockFieldRepositoryInterface(suite.ctrl)
	suite.mockModuleRepo = mocks.NewMockModuleRepositoryInterface(suite.ctrl)
	suite.fieldService = service.NewFieldService(suite.mockFieldRepo, suite.mockModuleRepo, validator.New())
}

func (suite *FieldServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FieldServiceTestSuite) TestCreateField_AppendsAfterLastField() {
	req := &service.CreateFieldRequest{Name: "budget", Label: "Budget", Type: models.FieldTypeCurrency}

	suite.mockModuleRepo.EXPECT().GetByID("m-1").Return(&models.Module{}, nil)
	suite.mockFieldRepo.EXPECT().GetByName("m-1", "budget").Return(nil, gorm.ErrRecordNotFound)
	suite.mockFieldRepo.EXPECT().MaxSortOrder("m-1").Return(4, nil)
	suite.mockFieldRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.fieldService.CreateField("m-1", req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, resp.SortOrder)
	assert.True(suite.T(), resp.ShowInList)
	assert.True(suite.T(), resp.ShowInForm)
	assert.False(suite.T(), resp.IsSystem)
}

func (suite *FieldServiceTestSuite) TestCreateField_FirstFieldStartsAtZero() {
	hidden := false
	req := &service.CreateFieldRequest{Name: "title", Label: "Title", Type: models.FieldTypeText, ShowInList: &hidden}

	suite.mockModuleRepo.EXPECT().GetByID("m-1").Return(&models.Module{}, nil)
	suite.mockFieldRepo.EXPECT().GetByName("m-1", "title").Return(nil, gorm.ErrRecordNotFound)
	suite.mockFieldRepo.EXPECT().MaxSortOrder("m-1").Return(-1, nil)
	suite.mockFieldRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(field *models.Field) error {
		assert.Equal(suite.T(), "m-1", field.ModuleID)
		assert.False(suite.T(), field.ShowInList)
		return nil
	})

	resp, err := suite.fieldService.CreateField("m-1", req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.SortOrder)
}

func (suite *FieldServiceTestSuite) TestCreateField_InvalidDefinitions() {
	lo, hi := 10.0, 1.0
	tests := []struct {
		name string
		req  *service.CreateFieldRequest
	}{
		{name: "missing label", req: &service.CreateFieldRequest{Name: "title", Type: models.FieldTypeText}},
		{name: "name with uppercase", req: &service.CreateFieldRequest{Name: "Title", Label: "Title", Type: models.FieldTypeText}},
		{name: "name starting with digit", req: &service.CreateFieldRequest{Name: "1st", Label: "First", Type: models.FieldTypeText}},
		{name: "unknown type", req: &service.CreateFieldRequest{Name: "x", Label: "X", Type: "money"}},
		{name: "select without choices", req: &service.CreateFieldRequest{Name: "stage", Label: "Stage", Type: models.FieldTypeSelect}},
		{
			name: "duplicate choices",
			req: &service.CreateFieldRequest{
				Name: "stage", Label: "Stage", Type: models.FieldTypeSelect,
				Options: &models.FieldOptions{Choices: []models.Choice{{Value: "a", Label: "A"}, {Value: "a", Label: "Again"}}},
			},
		},
		{
			name: "min above max",
			req: &service.CreateFieldRequest{
				Name: "score", Label: "Score", Type: models.FieldTypeNumber,
				Options: &models.FieldOptions{Min: &lo, Max: &hi},
			},
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.fieldService.CreateField("m-1", tt.req)
			assert.True(suite.T(), apperrors.IsValidation(err), "got %v", err)
		})
	}
}

func (suite *FieldServiceTestSuite) TestCreateField_ModuleNotFound() {
	suite.mockModuleRepo.EXPECT().GetByID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.fieldService.CreateField("missing", &service.CreateFieldRequest{Name: "title", Label: "Title", Type: models.FieldTypeText})

	assert.ErrorIs(suite.T(), err, apperrors.ErrModuleNotFound)
}

func (suite *FieldServiceTestSuite) TestCreateField_NameTaken() {
	suite.mockModuleRepo.EXPECT().GetByID("m-1").Return(&models.Module{}, nil)
	suite.mockFieldRepo.EXPECT().GetByName("m-1", "title").Return(&models.Field{Name: "title"}, nil)

	_, err := suite.fieldService.CreateField("m-1", &service.CreateFieldRequest{Name: "title", Label: "Title", Type: models.FieldTypeText})

	assert.ErrorIs(suite.T(), err, apperrors.ErrFieldExists)
}

func (suite *FieldServiceTestSuite) TestListByModule_ModuleNotFound() {
	suite.mockModuleRepo.EXPECT().GetByID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.fieldService.ListByModule("missing")

	assert.ErrorIs(suite.T(), err, apperrors.ErrModuleNotFound)
}

func (suite *FieldServiceTestSuite) TestUpdateField_RenameConflict() {
	existing := &models.Field{ModuleID: "m-1", Name: "title", Type: models.FieldTypeText}
	rename := "subject"

	suite.mockFieldRepo.EXPECT().GetByID("f-1").Return(existing, nil)
	suite.mockFieldRepo.EXPECT().GetByName("m-1", "subject").Return(&models.Field{Name: "subject"}, nil)

	_, err := suite.fieldService.UpdateField(context.Background(), "f-1", &service.UpdateFieldRequest{Name: &rename})

	assert.ErrorIs(suite.T(), err, apperrors.ErrFieldExists)
}

func (suite *FieldServiceTestSuite) TestUpdateField_ChangesLabelAndRequired() {
	existing := &models.Field{ModuleID: "m-1", Name: "title", Label: "Title", Type: models.FieldTypeText}
	label := "Subject"
	required := true

	suite.mockFieldRepo.EXPECT().GetByID("f-1").Return(existing, nil)
	suite.mockFieldRepo.EXPECT().Update("f-1", map[string]interface{}{"label": "Subject", "required": true}).Return(true, nil)
	suite.mockFieldRepo.EXPECT().GetByID("f-1").Return(&models.Field{ModuleID: "m-1", Name: "title", Label: "Subject", Required: true, Type: models.FieldTypeText}, nil)

	resp, err := suite.fieldService.UpdateField(context.Background(), "f-1", &service.UpdateFieldRequest{Label: &label, Required: &required})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Subject", resp.Label)
	assert.True(suite.T(), resp.Required)
}

func (suite *FieldServiceTestSuite) TestUpdateField_TypeChangeChecksExistingOptions() {
	existing := &models.Field{
		ModuleID: "m-1",
		Name:     "stage",
		Type:     models.FieldTypeText,
		Options:  datatypes.NewJSONType(models.FieldOptions{}),
	}
	toSelect := models.FieldTypeSelect

	suite.mockFieldRepo.EXPECT().GetByID("f-1").Return(existing, nil)

	_, err := suite.fieldService.UpdateField(context.Background(), "f-1", &service.UpdateFieldRequest{Type: &toSelect})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *FieldServiceTestSuite) TestUpdateField_NotFound() {
	suite.mockFieldRepo.EXPECT().GetByID("missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.fieldService.UpdateField(context.Background(), "missing", &service.UpdateFieldRequest{})

	assert.ErrorIs(suite.T(), err, apperrors.ErrFieldNotFound)
}

func (suite *FieldServiceTestSuite) TestDeleteField() {
	suite.Run("system field is protected", func() {
		suite.mockFieldRepo.EXPECT().GetByID("sys").Return(&models.Field{IsSystem: true}, nil)
		err := suite.fieldService.DeleteField("sys")
		assert.ErrorIs(suite.T(), err, apperrors.ErrSystemFieldDelete)
	})

	suite.Run("custom field", func() {
		suite.mockFieldRepo.EXPECT().GetByID("f-1").Return(&models.Field{}, nil)
		suite.mockFieldRepo.EXPECT().Delete("f-1").Return(true, nil)
		assert.NoError(suite.T(), suite.fieldService.DeleteField("f-1"))
	})

	suite.Run("missing field", func() {
		suite.mockFieldRepo.EXPECT().GetByID("missing").Return(nil, gorm.ErrRecordNotFound)
		err := suite.fieldService.DeleteField("missing")
		assert.ErrorIs(suite.T(), err, apperrors.ErrFieldNotFound)
	})
}

func TestFieldServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FieldServiceTestSuite))
}
