package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"crm-builder-backend/internal/api/handlers"
	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/mocks"
	"crm-builder-backend/internal/render"
	"crm-builder-backend/internal/service"
	"crm-builder-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecordHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRecords *mocks.MockRecordServiceInterface
	mockApps    *mocks.MockCrmAppServiceInterface
	mockModules *mocks.MockModuleServiceInterface
	mockFields  *mocks.MockFieldServiceInterface
	mockViews   *mocks.MockViewServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *RecordHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRecords = mocks.NewMockRecordServiceInterface(suite.ctrl)
	suite.mockApps = mocks.NewMockCrmAppServiceInterface(suite.ctrl)
	suite.mockModules = mocks.NewMockModuleServiceInterface(suite.ctrl)
	suite.mockFields = mocks.NewMockFieldServiceInterface(suite.ctrl)
	suite.mockViews = mocks.NewMockViewServiceInterface(suite.ctrl)

	records := handlers.NewRecordHandler(suite.mockRecords)
	apps := handlers.NewAppHandler(suite.mockApps, suite.mockModules, suite.mockRecords)
	fields := handlers.NewFieldHandler(suite.mockFields)
	views := handlers.NewViewHandler(suite.mockViews)

	suite.http = testutils.SetupHTTPTest()
	r := suite.http.Router
	r.GET("/records/:id", records.GetRecord)
	r.PATCH("/records/:id", records.UpdateRecord)
	r.DELETE("/records/:id", records.DeleteRecord)
	r.GET("/records/:id/activities", records.ListActivities)
	r.POST("/records/:id/activities", records.AddActivity)
	r.DELETE("/activities/:id", records.DeleteActivity)
	r.GET("/apps/:id", apps.GetApp)
	r.GET("/apps/:id/records", apps.ListRecentRecords)
	r.GET("/apps/:id/stats", apps.GetStats)
	r.DELETE("/fields/:id", fields.DeleteField)
	r.GET("/views/:id/data", views.GetViewData)
}

func (suite *RecordHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecordHandlerTestSuite) TestUpdateRecord_ForwardsPatch() {
	suite.mockRecords.EXPECT().
		UpdateRecord(gomock.Any(), "r1", &service.UpdateRecordRequest{Data: map[string]interface{}{"b": float64(3)}}).
		Return(&service.RecordResponse{ID: "r1", Data: map[string]interface{}{"a": 1, "b": 3}}, nil)

	w := suite.http.MakeRequest(http.MethodPatch, "/records/r1", map[string]interface{}{
		"data": map[string]interface{}{"b": 3},
	})

	var got service.RecordResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), float64(1), got.Data["a"])
	assert.Equal(suite.T(), float64(3), got.Data["b"])
}

func (suite *RecordHandlerTestSuite) TestGetRecord_NotFound() {
	suite.mockRecords.EXPECT().GetRecord("ghost").Return(nil, apperrors.ErrRecordNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/records/ghost", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "record not found")
}

func (suite *RecordHandlerTestSuite) TestCorruptStoredDataIsInternalError() {
	decodeErr := fmt.Errorf("decode JSON document: invalid character 'b'")
	suite.mockRecords.EXPECT().GetRecord("r1").Return(nil, apperrors.NewStorageError("get record", decodeErr))
	suite.mockApps.EXPECT().GetApp("a1").Return(nil, apperrors.NewStorageError("get app", decodeErr))

	w := suite.http.MakeRequest(http.MethodGet, "/records/r1", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "internal server error")
	assert.NotContains(suite.T(), w.Body.String(), "decode")

	w = suite.http.MakeRequest(http.MethodGet, "/apps/a1", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "internal server error")
}

func (suite *RecordHandlerTestSuite) TestDeleteRecord() {
	suite.mockRecords.EXPECT().DeleteRecord("r1").Return(nil)

	w := suite.http.MakeRequest(http.MethodDelete, "/records/r1", nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *RecordHandlerTestSuite) TestActivities() {
	suite.mockRecords.EXPECT().ListActivities("r1", 5).Return([]service.ActivityResponse{
		{ID: "01J0000000000000000000000B", Type: models.ActivityTypeNote},
		{ID: "01J0000000000000000000000A", Type: models.ActivityTypeCreated},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/records/r1/activities?limit=5", nil)

	var got []service.ActivityResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	require.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), models.ActivityTypeNote, got[0].Type)
}

func (suite *RecordHandlerTestSuite) TestAddActivity() {
	suite.mockRecords.EXPECT().
		AddActivity(gomock.Any(), "r1", &service.CreateActivityRequest{Type: models.ActivityTypeCall, Content: "Left a voicemail"}).
		Return(&service.ActivityResponse{ID: "a1", Type: models.ActivityTypeCall}, nil)

	w := suite.http.MakeRequest(http.MethodPost, "/records/r1/activities", map[string]string{
		"type": "call", "content": "Left a voicemail",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *RecordHandlerTestSuite) TestDeleteActivity_NotFound() {
	suite.mockRecords.EXPECT().DeleteActivity("nope").Return(apperrors.ErrActivityNotFound)

	w := suite.http.MakeRequest(http.MethodDelete, "/activities/nope", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "activity not found")
}

func (suite *RecordHandlerTestSuite) TestAppEndpoints() {
	suite.mockApps.EXPECT().GetApp("a1").Return(&service.AppDetailResponse{
		App:     service.CrmAppResponse{ID: "a1"},
		Modules: []service.ModuleResponse{{SystemName: "contacts"}, {SystemName: "deals"}},
	}, nil)
	suite.mockRecords.EXPECT().ListByApp("a1", 20).Return([]service.RecordResponse{}, nil)
	suite.mockApps.EXPECT().GetStats("a1").Return(&service.AppStatsResponse{AppID: "a1", Modules: 2, Records: 7}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/apps/a1", nil)
	var detail service.AppDetailResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &detail)
	assert.Len(suite.T(), detail.Modules, 2)

	w = suite.http.MakeRequest(http.MethodGet, "/apps/a1/records?limit=20", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[]`, w.Body.String())

	w = suite.http.MakeRequest(http.MethodGet, "/apps/a1/stats", nil)
	var stats service.AppStatsResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &stats)
	assert.Equal(suite.T(), int64(7), stats.Records)
}

func (suite *RecordHandlerTestSuite) TestDeleteSystemField() {
	suite.mockFields.EXPECT().DeleteField("f1").Return(apperrors.ErrSystemFieldDelete)

	w := suite.http.MakeRequest(http.MethodDelete, "/fields/f1", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "system fields cannot be deleted")
}

func (suite *RecordHandlerTestSuite) TestGetViewData_Kanban() {
	suite.mockViews.EXPECT().GetViewData("v1", 0, 0).Return(&service.ViewDataResponse{
		View:    service.ViewResponse{ID: "v1", Type: models.ViewTypeKanban},
		Columns: []string{"name", "status"},
		Total:   1,
		Limit:   100,
		Lanes: []service.KanbanLane{
			{Value: "new", Label: "New", Color: "#3b82f6", Cards: []service.ViewRow{{
				RecordID: "r1",
				Cells:    []render.Cell{{Field: "status", Kind: render.KindChoice, Label: "New", Color: "#3b82f6"}},
			}}},
			{Value: service.UncategorizedLane, Label: "Uncategorized", Cards: []service.ViewRow{}},
		},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/views/v1/data", nil)

	var got service.ViewDataResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	require.Len(suite.T(), got.Lanes, 2)
	assert.Equal(suite.T(), "New", got.Lanes[0].Cards[0].Cells[0].Label)
	assert.Empty(suite.T(), got.Rows)
}

func TestRecordHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RecordHandlerTestSuite))
}
