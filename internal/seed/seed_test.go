package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"space-missions-api/internal/database/models"
	"space-missions-api/internal/repository"
	"space-missions-api/internal/testutils"

	"github.com/stretchr/testify/suite"
)

const fixture = `
scientists:
  - name: Mel T. Valent
    field_of_study: Xenobiology
planets:
  - name: TauCeti F
    distance_from_earth: 11
    nearest_star: TauCeti
missions:
  - name: Explore Planet X
    scientist: Mel T. Valent
    planet: TauCeti F
`

// SeedTestSuite applies fixtures against a real database
type SeedTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	transactor    *repository.Transactor
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *SeedTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.transactor = repository.NewTransactor(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *SeedTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SeedTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SeedTestSuite) writeFixture(dir, name, content string) {
	suite.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func (suite *SeedTestSuite) count(model interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(model).Count(&n).Error)
	return n
}

func (suite *SeedTestSuite) TestLoadMergesFiles() {
	dir := suite.T().TempDir()
	suite.writeFixture(dir, "a.yaml", "scientists:\n  - name: A\n    field_of_study: B\n")
	suite.writeFixture(dir, "b.yml", "planets:\n  - name: C\n    distance_from_earth: 3\n    nearest_star: D\n")
	suite.writeFixture(dir, "notes.txt", "ignored")

	data, err := Load(dir)

	suite.Require().NoError(err)
	suite.Equal([]ScientistData{{Name: "A", FieldOfStudy: "B"}}, data.Scientists)
	suite.Equal([]PlanetData{{Name: "C", DistanceFromEarth: 3, NearestStar: "D"}}, data.Planets)
	suite.Empty(data.Missions)
}

func (suite *SeedTestSuite) TestLoadInvalidYAML() {
	dir := suite.T().TempDir()
	suite.writeFixture(dir, "bad.yaml", "scientists: [")

	_, err := Load(dir)

	suite.Error(err)
	suite.Contains(err.Error(), "bad.yaml")
}

func (suite *SeedTestSuite) TestLoadMissingDir() {
	_, err := Load(filepath.Join(suite.T().TempDir(), "nope"))

	suite.Error(err)
}

func (suite *SeedTestSuite) TestApplyIsIdempotent() {
	dir := suite.T().TempDir()
	suite.writeFixture(dir, "seed.yaml", fixture)
	data, err := Load(dir)
	suite.Require().NoError(err)

	first, err := Apply(suite.ctx, suite.transactor, data, false)
	suite.Require().NoError(err)
	suite.Equal(&Result{ScientistsCreated: 1, PlanetsCreated: 1, MissionsCreated: 1}, first)

	second, err := Apply(suite.ctx, suite.transactor, data, false)
	suite.Require().NoError(err)
	suite.Equal(&Result{}, second)

	suite.Equal(int64(1), suite.count(&models.Mission{}))
}

func (suite *SeedTestSuite) TestApplyReset() {
	extra := testutils.NewScientistFactory().WithName("Leftover")
	suite.Require().NoError(suite.baseTestSuite.DB.Create(extra).Error)

	dir := suite.T().TempDir()
	suite.writeFixture(dir, "seed.yaml", fixture)
	data, err := Load(dir)
	suite.Require().NoError(err)

	_, err = Apply(suite.ctx, suite.transactor, data, true)
	suite.Require().NoError(err)

	suite.Equal(int64(1), suite.count(&models.Scientist{}))
	var names []string
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.Scientist{}).Pluck("name", &names).Error)
	suite.Equal([]string{"Mel T. Valent"}, names)
}

func (suite *SeedTestSuite) TestApplyUnknownReferenceRollsBack() {
	data := &Data{
		Scientists: []ScientistData{{Name: "A", FieldOfStudy: "B"}},
		Missions:   []MissionData{{Name: "Lost", Scientist: "A", Planet: "Nowhere"}},
	}

	_, err := Apply(suite.ctx, suite.transactor, data, false)

	suite.Error(err)
	suite.Contains(err.Error(), `planet "Nowhere"`)
	suite.Equal(int64(0), suite.count(&models.Scientist{}))
}

func (suite *SeedTestSuite) TestApplyInvalidEntryRollsBack() {
	data := &Data{
		Scientists: []ScientistData{{Name: "A", FieldOfStudy: "B"}, {Name: "No Field"}},
	}

	_, err := Apply(suite.ctx, suite.transactor, data, false)

	suite.Error(err)
	suite.Contains(err.Error(), `scientist "No Field"`)
	suite.Equal(int64(0), suite.count(&models.Scientist{}))
}

func (suite *SeedTestSuite) TestBundledFixture() {
	data, err := Load(filepath.Join("..", "..", "scripts", "data"))
	suite.Require().NoError(err)

	result, err := Apply(suite.ctx, suite.transactor, data, false)

	suite.Require().NoError(err)
	suite.Equal(len(data.Scientists), result.ScientistsCreated)
	suite.Equal(len(data.Planets), result.PlanetsCreated)
	suite.Equal(len(data.Missions), result.MissionsCreated)
}

func TestSeedTestSuite(t *testing.T) {
	suite.Run(t, new(SeedTestSuite))
}
