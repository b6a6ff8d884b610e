package tracker

import (
	"sync"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/preferences"
	"finance-tracker/internal/repositories"

	"github.com/sirupsen/logrus"
)

// MetricsRecorder receives operation outcomes. The zero-dependency default is
// a no-op; the server wires a Prometheus-backed implementation.
type MetricsRecorder interface {
	RecordMutation(entity, operation string, err error)
	RecordDerivation(resultSize int)
}

type noopMetrics struct{}

func (noopMetrics) RecordMutation(string, string, error) {}
func (noopMetrics) RecordDerivation(int)                 {}

// Tracker owns the in-memory view state (active user + filter) and mediates
// every mutation between the presentation layer and the entity store. All
// mutations and filter changes re-derive the filtered transaction list and
// push it to subscribers.
type Tracker struct {
	users        repositories.UserRepositoryInterface
	categories   repositories.CategoryRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	templates    repositories.TemplateRepositoryInterface
	prefs        *preferences.Store
	log          *logrus.Logger
	metrics      MetricsRecorder
	location     func() *time.Location

	mu           sync.RWMutex
	activeUserID *uint
	filter       Filter

	subMu       sync.Mutex
	nextSubID   int
	subscribers map[int]chan []models.Transaction
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLocation overrides the zone used to turn stored instants into calendar
// dates. The function is consulted on every derivation, so a zone change on
// the device is picked up at the next read.
func WithLocation(loc func() *time.Location) Option {
	return func(t *Tracker) {
		t.location = loc
	}
}

// WithMetrics wires an operation metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

func New(
	users repositories.UserRepositoryInterface,
	categories repositories.CategoryRepositoryInterface,
	transactions repositories.TransactionRepositoryInterface,
	templates repositories.TemplateRepositoryInterface,
	prefs *preferences.Store,
	log *logrus.Logger,
	opts ...Option,
) *Tracker {
	t := &Tracker{
		users:        users,
		categories:   categories,
		transactions: transactions,
		templates:    templates,
		prefs:        prefs,
		log:          log,
		metrics:      noopMetrics{},
		location:     func() *time.Location { return time.Local },
		filter:       DefaultFilter(),
		subscribers:  make(map[int]chan []models.Transaction),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Bootstrap establishes the active user on application start. With an empty
// store a default profile is synthesized, persisted and activated. Otherwise
// the last active user is restored from the preference store when the id is
// still valid; a stale or absent preference leaves no active user.
func (t *Tracker) Bootstrap() error {
	count, err := t.users.Count()
	if err != nil {
		t.log.WithError(err).Error("bootstrap: failed to count users")
		return err
	}

	if count == 0 {
		user := &models.User{Name: models.DefaultUserName}
		if err := t.users.Create(user); err != nil {
			t.log.WithError(err).Error("bootstrap: failed to create default user")
			return err
		}
		t.log.WithField("user_id", user.ID).Info("bootstrap: created default user")
		return t.SetActiveUser(user.ID)
	}

	id, found, err := t.prefs.UserID()
	if err != nil {
		t.log.WithError(err).Error("bootstrap: failed to read preferences")
		return err
	}
	if !found {
		t.log.Info("bootstrap: no persisted active user")
		return nil
	}

	if _, err := t.users.GetByID(id); err != nil {
		// The preferred user was deleted since the last run.
		t.log.WithField("user_id", id).Warn("bootstrap: persisted active user no longer exists")
		return nil
	}

	t.mu.Lock()
	t.activeUserID = &id
	t.mu.Unlock()
	t.log.WithField("user_id", id).Info("bootstrap: restored active user")
	t.publish()
	return nil
}

// ActiveUserID returns the active user id, if any.
func (t *Tracker) ActiveUserID() (uint, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.activeUserID == nil {
		return 0, false
	}
	return *t.activeUserID, true
}

// SetActiveUser switches the displayed profile and durably persists the
// choice so it survives restarts.
func (t *Tracker) SetActiveUser(id uint) error {
	if _, err := t.users.GetByID(id); err != nil {
		t.log.WithError(err).WithField("user_id", id).Error("set active user failed")
		return err
	}

	if err := t.prefs.SaveUserID(id); err != nil {
		t.log.WithError(err).Error("failed to persist active user")
		return err
	}

	t.mu.Lock()
	t.activeUserID = &id
	t.mu.Unlock()

	t.log.WithField("user_id", id).Info("active user changed")
	t.publish()
	return nil
}

// Filter returns a copy of the current filter state.
func (t *Tracker) Filter() Filter {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.filter
}

// SetTypeFilter sets the direction filter.
func (t *Tracker) SetTypeFilter(f TypeFilter) error {
	if !IsValidTypeFilter(f) {
		return ErrInvalidTypeFilter
	}
	t.mu.Lock()
	t.filter.Type = f
	t.mu.Unlock()
	t.publish()
	return nil
}

// SetStartDate sets or clears the inclusive lower date bound.
func (t *Tracker) SetStartDate(d *Date) {
	t.mu.Lock()
	t.filter.StartDate = d
	t.mu.Unlock()
	t.publish()
}

// SetEndDate sets or clears the inclusive upper date bound.
func (t *Tracker) SetEndDate(d *Date) {
	t.mu.Lock()
	t.filter.EndDate = d
	t.mu.Unlock()
	t.publish()
}

// SetSelectedCategory sets or clears the category filter.
func (t *Tracker) SetSelectedCategory(id *uint) {
	t.mu.Lock()
	t.filter.CategoryID = id
	t.mu.Unlock()
	t.publish()
}

// AllUsers lists every profile, ordered by name.
func (t *Tracker) AllUsers() ([]models.User, error) {
	return t.users.List()
}

// UserCategories lists the active user's categories. Without an active user
// the projection is empty.
func (t *Tracker) UserCategories() ([]models.Category, error) {
	id, ok := t.ActiveUserID()
	if !ok {
		return []models.Category{}, nil
	}
	return t.categories.ListByUser(id)
}

// UserTransactions lists the active user's transactions, newest first.
func (t *Tracker) UserTransactions() ([]models.Transaction, error) {
	id, ok := t.ActiveUserID()
	if !ok {
		return []models.Transaction{}, nil
	}
	return t.transactions.ListByUser(id)
}

// UserTemplates lists the active user's templates.
func (t *Tracker) UserTemplates() ([]models.Template, error) {
	id, ok := t.ActiveUserID()
	if !ok {
		return []models.Template{}, nil
	}
	return t.templates.ListByUser(id)
}

// FilteredTransactions derives the displayed list from the active user's
// transactions and the current filter. The whole list is re-derived on each
// call; the expected volumes make that cheap.
func (t *Tracker) FilteredTransactions() ([]models.Transaction, error) {
	all, err := t.UserTransactions()
	if err != nil {
		return nil, err
	}

	derived := Derive(all, t.Filter(), t.location())
	t.metrics.RecordDerivation(len(derived))
	return derived, nil
}

// CategorySummaries aggregates the active user's transactions per category,
// including spending-limit status.
func (t *Tracker) CategorySummaries() ([]models.CategorySummary, error) {
	categories, err := t.UserCategories()
	if err != nil {
		return nil, err
	}
	transactions, err := t.UserTransactions()
	if err != nil {
		return nil, err
	}
	return models.SummarizeByCategory(categories, transactions), nil
}
