package handlers

import (
	"context"
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

// MissionHandlerTestSuite defines the test suite for MissionHandler
type MissionHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockMissionService *mocks.MockMissionServiceInterface
	httpSuite          *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *MissionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMissionService = mocks.NewMockMissionServiceInterface(suite.ctrl)
	handler := NewMissionHandler(suite.mockMissionService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/missions", handler.CreateMission)
	suite.httpSuite.Router.GET("/missions/:id", handler.GetMission)
}

// TearDownTest cleans up after each test
func (suite *MissionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MissionHandlerTestSuite) TestCreateMission() {
	suite.mockMissionService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *service.CreateMissionRequest) (*service.MissionResponse, error) {
			suite.Require().NotNil(req.ScientistID)
			suite.Require().NotNil(req.PlanetID)
			return &service.MissionResponse{
				ID: 1, Name: req.Name, ScientistID: *req.ScientistID, PlanetID: *req.PlanetID,
				Scientist: &service.ScientistSummary{ID: *req.ScientistID, Name: "A", FieldOfStudy: "B"},
				Planet:    &service.PlanetSummary{ID: *req.PlanetID, Name: "C", DistanceFromEarth: 1, NearestStar: "D"},
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", "/missions", map[string]interface{}{
		"name":         "Explore",
		"scientist_id": 2,
		"planet_id":    3,
	})

	var response service.MissionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), 2, response.ScientistID)
	assert.Equal(suite.T(), 3, response.Planet.ID)
}

func (suite *MissionHandlerTestSuite) TestCreateMissionRejected() {
	suite.mockMissionService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationError("scientist_id", "scientist does not exist"))

	recorder := suite.httpSuite.MakeRequest("POST", "/missions", map[string]interface{}{
		"name":         "Explore",
		"scientist_id": 0,
		"planet_id":    3,
	})

	testutils.AssertValidationErrorsResponse(suite.T(), recorder)
}

func (suite *MissionHandlerTestSuite) TestCreateMissionMalformedBody() {
	recorder := suite.httpSuite.MakeRawRequest("POST", "/missions", `{"name":"x","scientist_id":"one"}`)

	testutils.AssertValidationErrorsResponse(suite.T(), recorder)
}

func (suite *MissionHandlerTestSuite) TestGetMissionNotFound() {
	suite.mockMissionService.EXPECT().GetByID(gomock.Any(), 9).Return(nil, apperrors.ErrMissionNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", "/missions/9", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "Mission not found")
}

func TestMissionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MissionHandlerTestSuite))
}
