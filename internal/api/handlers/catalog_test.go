package handlers_test

import (
	"net/http"
	"testing"

	"crm-builder-backend/internal/api/handlers"
	"crm-builder-backend/internal/catalog"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/mocks"
	"crm-builder-backend/internal/service"
	"crm-builder-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockCatalog      *mocks.MockCatalogServiceInterface
	mockProvisioning *mocks.MockProvisioningServiceInterface
	http             *testutils.HTTPTestSuite
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCatalog = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	suite.mockProvisioning = mocks.NewMockProvisioningServiceInterface(suite.ctrl)
	handler := handlers.NewCatalogHandler(suite.mockCatalog, suite.mockProvisioning)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/catalog/pillars", handler.ListPillars)
	suite.http.Router.GET("/catalog/pillars/:id", handler.GetPillar)
	suite.http.Router.GET("/catalog/presets/:id", handler.GetPreset)
	suite.http.Router.GET("/catalog/preview", handler.Preview)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestListPillars() {
	suite.mockCatalog.EXPECT().ListPillars().Return(&service.PillarListResponse{
		Version:  "1",
		Defaults: []string{"people"},
		Pillars:  []catalog.Pillar{{ID: "people", Name: "People"}},
	})

	w := suite.http.MakeRequest(http.MethodGet, "/catalog/pillars", nil)

	var got service.PillarListResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "people", got.Pillars[0].ID)
}

func (suite *CatalogHandlerTestSuite) TestGetPillar_NotFound() {
	suite.mockCatalog.EXPECT().GetPillar("spaceships").Return(nil, apperrors.ErrPillarNotFound)

	w := suite.http.MakeRequest(http.MethodGet, "/catalog/pillars/spaceships", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "pillar not found")
}

func (suite *CatalogHandlerTestSuite) TestGetPreset() {
	suite.mockCatalog.EXPECT().GetPreset("clinic").Return(&catalog.BusinessPreset{ID: "clinic", Name: "Clinic"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/catalog/presets/clinic", nil)

	var got catalog.BusinessPreset
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "Clinic", got.Name)
}

func (suite *CatalogHandlerTestSuite) TestPreview_SplitsCustomPillars() {
	suite.mockProvisioning.EXPECT().
		PreviewCrmStructure("retail", []string{"money", "people"}).
		Return(&service.PreviewResponse{BusinessType: "retail"}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/catalog/preview?businessType=retail&customPillars=money,%20people,", nil)

	var got service.PreviewResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), "retail", got.BusinessType)
}

func (suite *CatalogHandlerTestSuite) TestPreview_UnknownPillar() {
	suite.mockProvisioning.EXPECT().
		PreviewCrmStructure("", []string{"spaceships"}).
		Return(nil, apperrors.NewValidationError("customPillars", "unknown pillar \"spaceships\""))

	w := suite.http.MakeRequest(http.MethodGet, "/catalog/preview?customPillars=spaceships", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "spaceships")
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
