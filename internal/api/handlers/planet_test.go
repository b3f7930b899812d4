package handlers

import (
	"errors"
	"net/http"
	"testing"

	apperrors "space-missions-api/internal/errors"
	"space-missions-api/internal/mocks"
	"space-missions-api/internal/service"
	"space-missions-api/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlanetHandlerTestSuite defines the test suite for PlanetHandler
type PlanetHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPlanetService *mocks.MockPlanetServiceInterface
	httpSuite         *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PlanetHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPlanetService = mocks.NewMockPlanetServiceInterface(suite.ctrl)
	handler := NewPlanetHandler(suite.mockPlanetService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/planets", handler.ListPlanets)
	suite.httpSuite.Router.GET("/planets/:id", handler.GetPlanet)
	suite.httpSuite.Router.DELETE("/planets/:id", handler.DeletePlanet)
}

// TearDownTest cleans up after each test
func (suite *PlanetHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlanetHandlerTestSuite) TestListPlanets() {
	suite.mockPlanetService.EXPECT().List(gomock.Any()).Return([]service.PlanetSummary{
		{ID: 1, Name: "TauCeti F", DistanceFromEarth: 11, NearestStar: "TauCeti"},
	}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/planets", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(),
		`[{"id":1,"name":"TauCeti F","distance_from_earth":11,"nearest_star":"TauCeti"}]`,
		recorder.Body.String())
}

func (suite *PlanetHandlerTestSuite) TestGetPlanetNotFound() {
	suite.mockPlanetService.EXPECT().GetByID(gomock.Any(), 2).Return(nil, apperrors.ErrPlanetNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/planets/2", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Planet not found")
}

func (suite *PlanetHandlerTestSuite) TestGetPlanetInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/planets/mars", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Planet not found")
}

func (suite *PlanetHandlerTestSuite) TestDeletePlanet() {
	suite.mockPlanetService.EXPECT().Delete(gomock.Any(), 4).Return(nil)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/planets/4", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
}

func (suite *PlanetHandlerTestSuite) TestDeletePlanetFailure() {
	suite.mockPlanetService.EXPECT().Delete(gomock.Any(), 4).Return(errors.New("failed to delete planet: locked"))

	recorder := suite.httpSuite.MakeRequest("DELETE", "/planets/4", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "failed to delete planet: locked")
}

func TestPlanetHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlanetHandlerTestSuite))
}
