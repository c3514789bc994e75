package siteconfig

import (
	"log/slog"
	"time"

	errors "github.com/homeledger/homeledger/internal"
)

// Repository defines the data access methods for config entries.
type Repository interface {
	GetAll() ([]*Entry, error)
	GetByKey(key string) (*Entry, error)
	Update(entry *Entry) error
	Seed(entries []*Entry) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListConfig() ([]*Entry, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list config entries", "error", err)
		return nil, err
	}
	return entries, nil
}

func (s *Service) GetConfig(key string) (*Entry, error) {
	entry, err := s.repo.GetByKey(key)
	if err != nil {
		s.logger.Error("failed to get config entry", "error", err, "key", key)
		return nil, err
	}
	return entry, nil
}

// UpdateConfig applies a batch of key→value updates. The batch is all or
// nothing: one unknown key rejects the whole request before any write.
func (s *Service) UpdateConfig(dto UpdateConfigDTO) ([]*Entry, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("config update validation failed", "error", err)
		return nil, err
	}

	type pending struct {
		entry *Entry
		value string
	}

	// Resolve every key before touching anything, so an unknown key rejects
	// the batch with no partial writes.
	updates := make([]pending, 0, len(dto.Values))
	for key, value := range dto.Values {
		entry, err := s.repo.GetByKey(key)
		if err != nil {
			s.logger.Error("config key not found", "error", err, "key", key)
			return nil, errors.ErrConfigKeyNotFound
		}
		updates = append(updates, pending{entry: entry, value: value})
	}

	entries := make([]*Entry, 0, len(updates))
	for _, u := range updates {
		entry := u.entry
		entry.Value = u.value
		entry.UpdatedAt = time.Now()
		entries = append(entries, entry)
		if err := s.repo.Update(entry); err != nil {
			s.logger.Error("failed to update config entry", "error", err, "key", entry.Key)
			return nil, err
		}
	}

	s.logger.Info("config updated", "keys", len(entries))
	return entries, nil
}

// SeedDefaults inserts the default labels, skipping keys that already exist.
func (s *Service) SeedDefaults() error {
	if err := s.repo.Seed(Defaults()); err != nil {
		s.logger.Error("failed to seed config defaults", "error", err)
		return err
	}
	s.logger.Info("config defaults seeded")
	return nil
}
