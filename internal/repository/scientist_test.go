package repository

import (
	"testing"

	"space-missions-api/internal/database/models"
	"space-missions-api/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScientistRepositoryTestSuite tests the ScientistRepository
type ScientistRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScientistRepository
	factory       *testutils.ScientistFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ScientistRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScientistRepository(suite.baseTestSuite.DB)
	suite.factory = testutils.NewScientistFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScientistRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ScientistRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ScientistRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ScientistRepositoryTestSuite) createMission(name string, scientistID int) *models.Mission {
	planet := testutils.NewPlanetFactory().Create()
	suite.Require().NoError(suite.baseTestSuite.DB.Create(planet).Error)
	mission := testutils.NewMissionFactory().WithName(name, scientistID, planet.ID)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(mission).Error)
	return mission
}

// TestCreate tests creating a scientist
func (suite *ScientistRepositoryTestSuite) TestCreate() {
	scientist := suite.factory.Create()

	err := suite.repo.Create(scientist)

	suite.NoError(err)
	suite.NotZero(scientist.ID)
}

// TestCreateRejectsEmptyName tests that the save hook blocks invalid rows
func (suite *ScientistRepositoryTestSuite) TestCreateRejectsEmptyName() {
	scientist := suite.factory.WithName("")

	err := suite.repo.Create(scientist)

	suite.Error(err)
	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(all, 0)
}

// TestGetByID tests retrieving a scientist by ID
func (suite *ScientistRepositoryTestSuite) TestGetByID() {
	scientist := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(scientist))

	retrieved, err := suite.repo.GetByID(scientist.ID)

	suite.NoError(err)
	suite.Equal(scientist.ID, retrieved.ID)
	suite.Equal("Mel T. Valent", retrieved.Name)
	suite.Equal("Xenobiology", retrieved.FieldOfStudy)
}

// TestGetByIDNotFound tests retrieving a non-existent scientist
func (suite *ScientistRepositoryTestSuite) TestGetByIDNotFound() {
	scientist, err := suite.repo.GetByID(999999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(scientist)
}

// TestGetByName tests retrieving a scientist by name
func (suite *ScientistRepositoryTestSuite) TestGetByName() {
	suite.Require().NoError(suite.repo.Create(suite.factory.WithName("Hubert Farnsworth")))

	retrieved, err := suite.repo.GetByName("Hubert Farnsworth")

	suite.NoError(err)
	suite.Equal("Hubert Farnsworth", retrieved.Name)
}

// TestGetWithMissions tests preloading missions and their planets
func (suite *ScientistRepositoryTestSuite) TestGetWithMissions() {
	scientist := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(scientist))
	suite.createMission("First", scientist.ID)
	suite.createMission("Second", scientist.ID)

	retrieved, err := suite.repo.GetWithMissions(scientist.ID)

	suite.NoError(err)
	suite.Len(retrieved.Missions, 2)
	suite.Equal("First", retrieved.Missions[0].Name)
	suite.Equal("Second", retrieved.Missions[1].Name)
	suite.NotNil(retrieved.Missions[0].Planet)
	suite.Nil(retrieved.Missions[0].Scientist)
}

// TestGetAll tests listing scientists in id order
func (suite *ScientistRepositoryTestSuite) TestGetAll() {
	suite.Require().NoError(suite.repo.Create(suite.factory.WithName("A")))
	suite.Require().NoError(suite.repo.Create(suite.factory.WithName("B")))

	all, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(all, 2)
	suite.Equal("A", all[0].Name)
	suite.Equal("B", all[1].Name)
}

// TestUpdate tests saving changed fields
func (suite *ScientistRepositoryTestSuite) TestUpdate() {
	scientist := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(scientist))

	scientist.FieldOfStudy = "Astrophysics"
	suite.NoError(suite.repo.Update(scientist))

	retrieved, err := suite.repo.GetByID(scientist.ID)
	suite.NoError(err)
	suite.Equal("Astrophysics", retrieved.FieldOfStudy)
	suite.Equal("Mel T. Valent", retrieved.Name)
}

// TestUpdateRejectsEmptyField tests that the save hook blocks invalid updates
func (suite *ScientistRepositoryTestSuite) TestUpdateRejectsEmptyField() {
	scientist := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(scientist))

	scientist.FieldOfStudy = ""
	suite.Error(suite.repo.Update(scientist))

	retrieved, err := suite.repo.GetByID(scientist.ID)
	suite.NoError(err)
	suite.Equal("Xenobiology", retrieved.FieldOfStudy)
}

// TestDeleteCascadesMissions tests that missions are removed with their scientist
func (suite *ScientistRepositoryTestSuite) TestDeleteCascadesMissions() {
	scientist := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(scientist))
	m1 := suite.createMission("First", scientist.ID)
	m2 := suite.createMission("Second", scientist.ID)

	suite.NoError(suite.repo.Delete(scientist.ID))

	_, err := suite.repo.GetByID(scientist.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Mission{}).
		Where("id IN ?", []int{m1.ID, m2.ID}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestDeleteNotFound tests deleting a non-existent scientist
func (suite *ScientistRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(999999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteZeroID tests that the zero id is treated as a missing row
func (suite *ScientistRepositoryTestSuite) TestDeleteZeroID() {
	scientist := suite.factory.Create()
	suite.Require().NoError(suite.repo.Create(scientist))

	suite.ErrorIs(suite.repo.Delete(0), gorm.ErrRecordNotFound)

	_, err := suite.repo.GetByID(scientist.ID)
	suite.NoError(err)
}

// TestDeleteAll tests clearing the table
func (suite *ScientistRepositoryTestSuite) TestDeleteAll() {
	suite.Require().NoError(suite.repo.Create(suite.factory.Create()))

	suite.NoError(suite.repo.DeleteAll())

	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Empty(all)
}

func TestScientistRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScientistRepositoryTestSuite))
}
