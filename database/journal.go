package database

import (
	"proxyctl/core"
	"proxyctl/logger"
	"proxyctl/models"
)

// ChangeRecorder is the journal side of DB, split out so the decorator can be
// tested against a fake.
type ChangeRecorder interface {
	RecordChange(change models.SettingChange) (models.SettingChange, error)
}

// JournaledStore wraps a SettingsStore and records every successful Set and
// Delete together with the value it replaced. Journal failures are logged and
// never fail the write, which has already happened.
type JournaledStore struct {
	inner    core.SettingsStore
	recorder ChangeRecorder
	backend  string
}

func NewJournaledStore(inner core.SettingsStore, recorder ChangeRecorder, backend string) *JournaledStore {
	return &JournaledStore{inner: inner, recorder: recorder, backend: backend}
}

func (s *JournaledStore) Get(field core.Field) (string, bool, error) {
	return s.inner.Get(field)
}

func (s *JournaledStore) Set(field core.Field, value string) error {
	old, hadOld := s.previous(field)
	if err := s.inner.Set(field, value); err != nil {
		return err
	}
	s.record(models.SettingChange{
		Field:    string(field),
		Action:   models.ChangeActionSet,
		OldValue: models.OptionalString(old, hadOld),
		NewValue: models.OptionalString(value, true),
	})
	return nil
}

func (s *JournaledStore) Delete(field core.Field) error {
	old, hadOld := s.previous(field)
	if err := s.inner.Delete(field); err != nil {
		return err
	}
	s.record(models.SettingChange{
		Field:    string(field),
		Action:   models.ChangeActionDelete,
		OldValue: models.OptionalString(old, hadOld),
	})
	return nil
}

func (s *JournaledStore) previous(field core.Field) (string, bool) {
	old, ok, err := s.inner.Get(field)
	if err != nil {
		logger.Debug("Journal: could not read previous value of %s: %v", field, err)
		return "", false
	}
	return old, ok
}

func (s *JournaledStore) record(change models.SettingChange) {
	change.Backend = s.backend
	if _, err := s.recorder.RecordChange(change); err != nil {
		logger.Warn("Journal: failed to record %s of %s: %v", change.Action, change.Field, err)
	}
}
