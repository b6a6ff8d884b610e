package repositories

import (
	"testing"

	"finance-tracker/internal/database"
	"finance-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TemplateRepositorySuite defines the test suite for templateRepository
type TemplateRepositorySuite struct {
	suite.Suite
	db           *database.DB
	repo         TemplateRepositoryInterface
	testUser     *models.User
	testCategory *models.Category
}

func (s *TemplateRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTemplateRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "Test User")
	s.testCategory = database.CreateTestCategory(s.T(), s.db, s.testUser.ID, "Groceries", models.CategoryTypeExpense)
}

func (s *TemplateRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTemplateRepositorySuite(t *testing.T) {
	suite.Run(t, new(TemplateRepositorySuite))
}

func (s *TemplateRepositorySuite) TestCreate() {
	template := &models.Template{
		Name:       "Weekly shop",
		Amount:     decimal.NewFromInt(60),
		IsPositive: false,
		CategoryID: s.testCategory.ID,
		UserID:     s.testUser.ID,
	}

	err := s.repo.Create(template)
	s.NoError(err)
	s.NotZero(template.ID)
}

func (s *TemplateRepositorySuite) TestCreate_RejectsEmptyName() {
	template := &models.Template{
		Name:       "",
		Amount:     decimal.NewFromInt(60),
		CategoryID: s.testCategory.ID,
		UserID:     s.testUser.ID,
	}

	err := s.repo.Create(template)
	s.Error(err)
}

func (s *TemplateRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(999)
	s.ErrorIs(err, ErrTemplateNotFound)
}

func (s *TemplateRepositorySuite) TestListByUser_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, "Other User")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other.ID, "Rent", models.CategoryTypeExpense)

	s.NoError(s.repo.Create(&models.Template{
		Name: "Weekly shop", Amount: decimal.NewFromInt(60),
		CategoryID: s.testCategory.ID, UserID: s.testUser.ID,
	}))
	s.NoError(s.repo.Create(&models.Template{
		Name: "Rent", Amount: decimal.NewFromInt(900),
		CategoryID: otherCategory.ID, UserID: other.ID,
	}))

	templates, err := s.repo.ListByUser(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(templates, 1)
	s.Equal("Weekly shop", templates[0].Name)
}

func (s *TemplateRepositorySuite) TestUpdate() {
	template := &models.Template{
		Name: "Weekly shop", Amount: decimal.NewFromInt(60),
		CategoryID: s.testCategory.ID, UserID: s.testUser.ID,
	}
	s.NoError(s.repo.Create(template))

	template.Amount = decimal.NewFromInt(75)
	err := s.repo.Update(template)
	s.NoError(err)

	found, err := s.repo.GetByID(template.ID)
	s.NoError(err)
	s.True(decimal.NewFromInt(75).Equal(found.Amount))
}

func (s *TemplateRepositorySuite) TestDelete() {
	template := &models.Template{
		Name: "Weekly shop", Amount: decimal.NewFromInt(60),
		CategoryID: s.testCategory.ID, UserID: s.testUser.ID,
	}
	s.NoError(s.repo.Create(template))

	s.NoError(s.repo.Delete(template.ID))

	_, err := s.repo.GetByID(template.ID)
	s.ErrorIs(err, ErrTemplateNotFound)
}

func (s *TemplateRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(999)
	s.ErrorIs(err, ErrTemplateNotFound)
}
