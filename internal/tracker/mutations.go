package tracker

import (
	"finance-tracker/internal/models"
)

// Mutation operations. Each submits the change to the entity store; on
// success the projections refresh through publish, on failure the effect is
// simply not applied. Failures are logged at the boundary and also returned
// to the caller so the presentation layer can surface them.

// InsertUser creates a profile and returns the store-assigned id so the
// caller can immediately activate it.
func (t *Tracker) InsertUser(user *models.User) (uint, error) {
	if err := t.users.Create(user); err != nil {
		t.log.WithError(err).Error("insert of user failed")
		t.metrics.RecordMutation("user", "insert", err)
		return 0, err
	}
	t.log.WithField("user_id", user.ID).Info("insert of user succeeded")
	t.metrics.RecordMutation("user", "insert", nil)
	t.publish()
	return user.ID, nil
}

func (t *Tracker) UpdateUser(user *models.User) error {
	err := t.users.Update(user)
	t.logMutation("user", "update", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

// DeleteUser removes a profile; the store cascades to its categories,
// transactions and templates. Deleting the active user leaves no active user.
func (t *Tracker) DeleteUser(id uint) error {
	err := t.users.Delete(id)
	t.logMutation("user", "delete", err)
	if err != nil {
		return err
	}

	t.mu.Lock()
	wasActive := t.activeUserID != nil && *t.activeUserID == id
	if wasActive {
		t.activeUserID = nil
	}
	t.mu.Unlock()

	if wasActive {
		if err := t.prefs.ClearUserID(); err != nil {
			t.log.WithError(err).Error("failed to clear persisted active user")
		}
	}

	t.publish()
	return nil
}

func (t *Tracker) InsertCategory(category *models.Category) error {
	err := t.categories.Create(category)
	t.logMutation("category", "insert", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) UpdateCategory(category *models.Category) error {
	err := t.categories.Update(category)
	t.logMutation("category", "update", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

// DeleteCategory removes a category; the store cascades to its transactions.
func (t *Tracker) DeleteCategory(id uint) error {
	err := t.categories.Delete(id)
	t.logMutation("category", "delete", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) InsertTransaction(transaction *models.Transaction) error {
	err := t.transactions.Create(transaction)
	t.logMutation("transaction", "insert", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) UpdateTransaction(transaction *models.Transaction) error {
	err := t.transactions.Update(transaction)
	t.logMutation("transaction", "update", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) DeleteTransaction(id uint) error {
	err := t.transactions.Delete(id)
	t.logMutation("transaction", "delete", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) InsertTemplate(template *models.Template) error {
	err := t.templates.Create(template)
	t.logMutation("template", "insert", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) UpdateTemplate(template *models.Template) error {
	err := t.templates.Update(template)
	t.logMutation("template", "update", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) DeleteTemplate(id uint) error {
	err := t.templates.Delete(id)
	t.logMutation("template", "delete", err)
	if err != nil {
		return err
	}
	t.publish()
	return nil
}

func (t *Tracker) logMutation(entity, operation string, err error) {
	t.metrics.RecordMutation(entity, operation, err)
	if err != nil {
		t.log.WithError(err).Errorf("%s of %s failed", operation, entity)
		return
	}
	t.log.Infof("%s of %s succeeded", operation, entity)
}
