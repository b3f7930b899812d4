package service_test

import (
	"context"
	"errors"
	"testing"

	"space-missions-api/internal/database/models"
	apperrors "space-missions-api/internal/errors"
	"space-missions-api/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MissionServiceTestSuite defines the test suite for MissionService
type MissionServiceTestSuite struct {
	suite.Suite
	mocks          *serviceMocks
	missionService *service.MissionService
	ctx            context.Context
}

// SetupTest sets up the test suite
func (suite *MissionServiceTestSuite) SetupTest() {
	suite.mocks = newServiceMocks(suite.T())
	suite.missionService = service.NewMissionService(suite.mocks.transactor)
	suite.ctx = context.Background()
}

func (suite *MissionServiceTestSuite) validRequest() *service.CreateMissionRequest {
	return &service.CreateMissionRequest{
		Name:        "Project Hail Mary",
		ScientistID: intPtr(1),
		PlanetID:    intPtr(2),
	}
}

func (suite *MissionServiceTestSuite) TestCreate() {
	suite.mocks.expectTransaction()
	suite.mocks.scientists.EXPECT().GetByID(1).Return(&models.Scientist{ID: 1}, nil)
	suite.mocks.planets.EXPECT().GetByID(2).Return(&models.Planet{ID: 2}, nil)
	suite.mocks.missions.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.Mission) error {
			m.ID = 10
			return nil
		})
	suite.mocks.missions.EXPECT().GetWithRelations(10).Return(&models.Mission{
		ID: 10, Name: "Project Hail Mary", ScientistID: intPtr(1), PlanetID: intPtr(2),
		Scientist: &models.Scientist{ID: 1, Name: "Ryland Grace", FieldOfStudy: "Molecular Biology"},
		Planet:    &models.Planet{ID: 2, Name: "Adrian", DistanceFromEarth: 12, NearestStar: "40 Eridani"},
	}, nil)

	resp, err := suite.missionService.Create(suite.ctx, suite.validRequest())

	suite.Require().NoError(err)
	suite.Equal(10, resp.ID)
	suite.Equal(1, resp.ScientistID)
	suite.Equal(2, resp.PlanetID)
	suite.Equal("Ryland Grace", resp.Scientist.Name)
	suite.Equal("Adrian", resp.Planet.Name)
}

func (suite *MissionServiceTestSuite) TestCreateMissingFields() {
	testCases := []struct {
		name   string
		mutate func(*service.CreateMissionRequest)
		field  string
	}{
		{"missing name", func(r *service.CreateMissionRequest) { r.Name = "" }, "name"},
		{"missing scientist", func(r *service.CreateMissionRequest) { r.ScientistID = nil }, "scientist_id"},
		{"missing planet", func(r *service.CreateMissionRequest) { r.PlanetID = nil }, "planet_id"},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			req := suite.validRequest()
			tc.mutate(req)

			resp, err := suite.missionService.Create(suite.ctx, req)

			suite.Nil(resp)
			var verrs apperrors.ValidationErrors
			suite.Require().ErrorAs(err, &verrs)
			suite.Equal([]string{tc.field}, verrs.Fields())
		})
	}
}

func (suite *MissionServiceTestSuite) TestCreateUnknownScientist() {
	req := suite.validRequest()
	req.ScientistID = intPtr(0)

	suite.mocks.expectTransaction()
	suite.mocks.scientists.EXPECT().GetByID(0).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.missionService.Create(suite.ctx, req)

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "scientist_id")
}

func (suite *MissionServiceTestSuite) TestCreateUnknownPlanet() {
	suite.mocks.expectTransaction()
	suite.mocks.scientists.EXPECT().GetByID(1).Return(&models.Scientist{ID: 1}, nil)
	suite.mocks.planets.EXPECT().GetByID(2).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.missionService.Create(suite.ctx, suite.validRequest())

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "planet_id")
}

func (suite *MissionServiceTestSuite) TestCreateRepositoryError() {
	suite.mocks.expectTransaction()
	suite.mocks.scientists.EXPECT().GetByID(1).Return(&models.Scientist{ID: 1}, nil)
	suite.mocks.planets.EXPECT().GetByID(2).Return(&models.Planet{ID: 2}, nil)
	suite.mocks.missions.EXPECT().Create(gomock.Any()).Return(errors.New("FOREIGN KEY constraint failed"))

	resp, err := suite.missionService.Create(suite.ctx, suite.validRequest())

	suite.Nil(resp)
	suite.False(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "failed to create mission")
}

func (suite *MissionServiceTestSuite) TestGetByIDNotFound() {
	suite.mocks.expectTransaction()
	suite.mocks.missions.EXPECT().GetWithRelations(4).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.missionService.GetByID(suite.ctx, 4)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMissionNotFound)
}

func TestMissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MissionServiceTestSuite))
}
