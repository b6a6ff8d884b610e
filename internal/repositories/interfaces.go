package repositories

import (
	"finance-tracker/internal/models"
)

// UserRepositoryInterface defines the contract for user repository operations.
// List is ordered by name ascending, the order the profile picker shows.
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	List() ([]models.User, error)
	Count() (int64, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	ListByUser(userID uint) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
}

// TransactionRepositoryInterface defines the contract for transaction repository
// operations. ListByUser is ordered by id descending, newest insert first.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uint) (*models.Transaction, error)
	ListByUser(userID uint) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uint) error
}

// TemplateRepositoryInterface defines the contract for template repository operations
type TemplateRepositoryInterface interface {
	Create(template *models.Template) error
	GetByID(id uint) (*models.Template, error)
	ListByUser(userID uint) ([]models.Template, error)
	Update(template *models.Template) error
	Delete(id uint) error
}
