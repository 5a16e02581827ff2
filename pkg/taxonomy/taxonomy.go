// Package taxonomy serves the selectable filter options of every category. The repository is the only
// source of truth; the key-value store keeps a snapshot of the last good read for when it is unreachable.
package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"droscher.com/BeerFinder/pkg/filter"
	"droscher.com/BeerFinder/pkg/kv"
	"droscher.com/BeerFinder/pkg/model"
	"droscher.com/BeerFinder/pkg/repository"
	"droscher.com/BeerFinder/pkg/seed"
)

const (
	snapshotKey  = "filters_cache"
	migrationKey = "filters_migration_version"

	// MigrationVersion is bumped whenever the embedded defaults gain a category.
	MigrationVersion = "1.1.0"
)

var (
	ErrDegraded      = errors.New("filter options are read-only until the database is reachable")
	ErrInvalidOption = errors.New("invalid filter option")
)

// Taxonomy is a read-only view of the options of every category.
type Taxonomy struct {
	options map[filter.Category][]model.FilterOption
}

func New(options []model.FilterOption) *Taxonomy {
	taxonomy := &Taxonomy{options: make(map[filter.Category][]model.FilterOption)}

	for _, option := range options {
		category, err := filter.ParseCategory(option.Category)
		if err != nil {
			continue
		}

		taxonomy.options[category] = append(taxonomy.options[category], option)
	}

	return taxonomy
}

func (t *Taxonomy) Options(category filter.Category) []model.FilterOption {
	return t.options[category]
}

func (t *Taxonomy) Lookup(category filter.Category, optionID string) (model.FilterOption, bool) {
	for _, option := range t.options[category] {
		if option.ID == optionID {
			return option, true
		}
	}

	return model.FilterOption{}, false
}

func (t *Taxonomy) All() []model.FilterOption {
	var options []model.FilterOption
	for _, category := range filter.Categories() {
		options = append(options, t.options[category]...)
	}

	return options
}

type Service struct {
	repository repository.TaxonomyRepository
	store      kv.Store
	defaults   *seed.Defaults
	logger     *zap.Logger
	degraded   atomic.Bool
}

func NewService(repo repository.TaxonomyRepository, store kv.Store, defaults *seed.Defaults, logger *zap.Logger) *Service {
	return &Service{repository: repo, store: store, defaults: defaults, logger: logger}
}

// Degraded reports whether the last repository call failed and reads are served from the snapshot.
func (s *Service) Degraded() bool {
	return s.degraded.Load()
}

// Load reads the taxonomy. When the repository fails it falls back to the snapshot, then to the embedded
// defaults, and never returns an empty taxonomy.
func (s *Service) Load(ctx context.Context) *Taxonomy {
	options, err := s.repository.GetFilterOptions(ctx)
	if err == nil {
		s.degraded.Store(false)

		loaded := make([]model.FilterOption, 0, len(options))
		for _, option := range options {
			loaded = append(loaded, *option)
		}

		if err := kv.SetJSON(ctx, s.store, snapshotKey, loaded); err != nil {
			s.logger.Warn("Could not store filter snapshot", zap.Error(err))
		}

		return New(loaded)
	}

	s.logger.Error("Could not load filter options", zap.Error(err))
	s.degraded.Store(true)

	var snapshot []model.FilterOption
	if err := kv.GetJSON(ctx, s.store, snapshotKey, &snapshot); err == nil {
		s.logger.Warn("Serving filter options from snapshot", zap.Int("options", len(snapshot)))

		return New(snapshot)
	}

	s.logger.Warn("Serving default filter options")

	return New(s.defaults.AllFilterOptions())
}

func (s *Service) Add(ctx context.Context, category filter.Category, option model.FilterOption) (*model.FilterOption, error) {
	option, err := normalize(category, option)
	if err != nil {
		return nil, err
	}

	added, err := s.repository.AddFilterOption(ctx, option)
	if err != nil {
		return nil, s.writeFailed(err, zap.String("option", option.ID))
	}

	s.degraded.Store(false)

	return added, nil
}

func (s *Service) Update(ctx context.Context, category filter.Category, option model.FilterOption) (*model.FilterOption, error) {
	option, err := normalize(category, option)
	if err != nil {
		return nil, err
	}

	updated, err := s.repository.UpdateFilterOption(ctx, option)
	if err != nil {
		return nil, s.writeFailed(err, zap.String("option", option.ID))
	}

	s.degraded.Store(false)

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, category filter.Category, optionID string) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidOption, filter.ErrUnknownCategory)
	}

	if err := s.repository.DeleteFilterOption(ctx, category.String(), optionID); err != nil {
		return s.writeFailed(err, zap.String("option", optionID))
	}

	s.degraded.Store(false)

	return nil
}

// EnsureDefaults gives every category without options its embedded defaults, once per MigrationVersion.
// The version marker lives next to the options, so a category emptied on purpose stays empty across restarts.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	marker, err := s.repository.GetSetting(ctx, migrationKey)
	switch {
	case err == nil && marker == MigrationVersion:
		return nil
	case err != nil && !errors.Is(err, repository.ErrSettingNotFound):
		return err
	}

	options, err := s.repository.GetFilterOptions(ctx)
	if err != nil {
		return err
	}

	populated := make(map[string]bool)
	for _, option := range options {
		populated[option.Category] = true
	}

	var missing []model.FilterOption

	for _, category := range filter.Categories() {
		if !populated[category.String()] {
			s.logger.Info("Adding default filter options", zap.Stringer("category", category))
			missing = append(missing, s.defaults.FilterOptions(category)...)
		}
	}

	if err := s.repository.UpsertFilterOptions(ctx, missing); err != nil {
		return err
	}

	return s.repository.PutSetting(ctx, migrationKey, MigrationVersion)
}

// not-found and duplicate answers come from a reachable repository; anything else means it is not.
func (s *Service) writeFailed(err error, fields ...zap.Field) error {
	if errors.Is(err, repository.ErrFilterOptionNotFound) || errors.Is(err, repository.ErrDuplicateFilterOption) {
		return err
	}

	s.logger.Error("Could not write filter option", append(fields, zap.Error(err))...)
	s.degraded.Store(true)

	return fmt.Errorf("%w: %w", ErrDegraded, err)
}

func normalize(category filter.Category, option model.FilterOption) (model.FilterOption, error) {
	if !category.Valid() {
		return option, fmt.Errorf("%w: %w", ErrInvalidOption, filter.ErrUnknownCategory)
	}

	option.Category = category.String()
	option.ID = strings.TrimSpace(option.ID)
	option.Label = strings.TrimSpace(option.Label)
	option.Icon = strings.TrimSpace(option.Icon)

	if option.ID == "" {
		return option, fmt.Errorf("%w: id is required", ErrInvalidOption)
	}

	if buckets := category.Buckets(); buckets != nil && !slices.Contains(buckets, filter.Bucket(option.ID)) {
		return option, fmt.Errorf("%w: %s only accepts %v", ErrInvalidOption, category, buckets)
	}

	if option.Label == "" {
		option.Label = option.ID
	}

	return option, nil
}
