package services

import (
	"fmt"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// SampleDataSeeder fills an empty development database with plausible
// profiles, categories and transaction history.
type SampleDataSeeder struct {
	users        repositories.UserRepositoryInterface
	categories   repositories.CategoryRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	log          *logrus.Logger
	faker        *gofakeit.Faker
}

type seedCategory struct {
	name         string
	categoryType string
	limit        float64 // negative means no limit
}

var seedCategories = []seedCategory{
	{"Salary", models.CategoryTypeIncome, -1},
	{"Side Income", models.CategoryTypeIncome, -1},
	{"Groceries", models.CategoryTypeExpense, 400},
	{"Dining", models.CategoryTypeExpense, 150},
	{"Transport", models.CategoryTypeExpense, 120},
	{"Entertainment", models.CategoryTypeExpense, 80},
	{"Utilities", models.CategoryTypeExpense, -1},
	{"Health", models.CategoryTypeExpense, -1},
}

func NewSampleDataSeeder(
	users repositories.UserRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
	transactions repositories.TransactionRepositoryInterface,
	log *logrus.Logger,
) *SampleDataSeeder {
	return &SampleDataSeeder{
		users:        users,
		categories:   categories,
		transactions: transactions,
		log:          log,
		faker:        gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// Seed creates userCount profiles with daysBack days of transaction history
// each.
func (s *SampleDataSeeder) Seed(userCount, daysBack int) error {
	for i := 0; i < userCount; i++ {
		user := &models.User{
			Name:              s.faker.Name(),
			PreferredCurrency: s.randomCurrency(),
		}
		if err := s.users.Create(user); err != nil {
			return fmt.Errorf("seed: failed to create user: %w", err)
		}

		if err := s.seedUser(user.ID, daysBack); err != nil {
			return err
		}
		s.log.WithField("user_id", user.ID).Info("seeded sample user")
	}
	return nil
}

func (s *SampleDataSeeder) seedUser(userID uint, daysBack int) error {
	created := make([]models.Category, 0, len(seedCategories))
	for _, sc := range seedCategories {
		category := models.Category{
			Name:          sc.name,
			Type:          sc.categoryType,
			SpendingLimit: decimal.NewFromFloat(sc.limit),
			UserID:        userID,
		}
		if err := s.categories.Create(&category); err != nil {
			return fmt.Errorf("seed: failed to create category: %w", err)
		}
		created = append(created, category)
	}

	now := time.Now()
	for day := daysBack; day >= 0; day-- {
		// Not every day has activity.
		if s.faker.Number(0, 2) == 0 {
			continue
		}

		for i := 0; i < s.faker.Number(1, 3); i++ {
			category := created[s.faker.Number(0, len(created)-1)]
			instant := now.AddDate(0, 0, -day).
				Add(-time.Duration(s.faker.Number(0, 12)) * time.Hour)

			amount := s.faker.Price(2, 250)
			if category.IsIncome() {
				amount = s.faker.Price(500, 3500)
			}

			txn := models.Transaction{
				Amount:     decimal.NewFromFloat(amount),
				IsPositive: category.IsIncome(),
				Timestamp:  instant.UnixMilli(),
				CategoryID: category.ID,
				UserID:     userID,
			}
			if err := s.transactions.Create(&txn); err != nil {
				return fmt.Errorf("seed: failed to create transaction: %w", err)
			}
		}
	}

	return nil
}

func (s *SampleDataSeeder) randomCurrency() models.Currency {
	all := models.AllCurrencies()
	return all[s.faker.Number(0, len(all)-1)]
}
