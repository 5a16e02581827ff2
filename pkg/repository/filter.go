package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerFinder/pkg/model"
)

var (
	ErrFilterOptionNotFound  = errors.New("filter option not found")
	ErrDuplicateFilterOption = errors.New("filter option already exists")
)

type TaxonomyRepository interface {
	AddFilterOption(ctx context.Context, option model.FilterOption) (*model.FilterOption, error)
	DeleteFilterOption(ctx context.Context, category string, optionID string) error
	GetFilterOptions(ctx context.Context) ([]*model.FilterOption, error)
	GetSetting(ctx context.Context, key string) (string, error)
	PutSetting(ctx context.Context, key string, value string) error
	UpdateFilterOption(ctx context.Context, option model.FilterOption) (*model.FilterOption, error)
	UpsertFilterOptions(ctx context.Context, options []model.FilterOption) error
}

type UsageRepository interface {
	AddFilterUsage(ctx context.Context, key string, delta int64) error
	GetFilterStats(ctx context.Context) (map[string]int64, error)
}

// GetFilterOptions returns every option of every category in insertion order.
func (r *Repository) GetFilterOptions(ctx context.Context) ([]*model.FilterOption, error) {
	var options []*model.FilterOption

	if result := r.DB.WithContext(ctx).Order("category, created_at, id").Find(&options); result.Error != nil {
		return nil, result.Error
	}

	return options, nil
}

func (r *Repository) AddFilterOption(ctx context.Context, option model.FilterOption) (*model.FilterOption, error) {
	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&option)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrDuplicateFilterOption
	}

	return &option, nil
}

// UpdateFilterOption changes the label and icon of an option. Ids are immutable since usage counters and
// selections refer to them.
func (r *Repository) UpdateFilterOption(ctx context.Context, option model.FilterOption) (*model.FilterOption, error) {
	result := r.DB.WithContext(ctx).Model(&model.FilterOption{}).
		Where("category = ? AND id = ?", option.Category, option.ID).
		Updates(map[string]any{"label": option.Label, "icon": option.Icon})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrFilterOptionNotFound
	}

	updated := &model.FilterOption{}
	if result := r.DB.WithContext(ctx).Where("category = ? AND id = ?", option.Category, option.ID).First(updated); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrFilterOptionNotFound
		}

		return nil, result.Error
	}

	return updated, nil
}

func (r *Repository) DeleteFilterOption(ctx context.Context, category string, optionID string) error {
	result := r.DB.WithContext(ctx).Where("category = ? AND id = ?", category, optionID).Delete(&model.FilterOption{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrFilterOptionNotFound
	}

	return nil
}

// UpsertFilterOptions inserts the options that do not exist yet and leaves existing ones untouched.
func (r *Repository) UpsertFilterOptions(ctx context.Context, options []model.FilterOption) error {
	if len(options) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&options).Error
}

// AddFilterUsage adds delta to a usage counter in a single statement, creating it when needed.
func (r *Repository) AddFilterUsage(ctx context.Context, key string, delta int64) error {
	stat := model.FilterStat{FilterValue: key, UsageCount: delta}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "filter_value"}},
		DoUpdates: clause.Assignments(map[string]any{
			"usage_count": gorm.Expr("filter_stats.usage_count + excluded.usage_count"),
			"updated_at":  time.Now(),
		}),
	}).Create(&stat).Error
}

func (r *Repository) GetFilterStats(ctx context.Context) (map[string]int64, error) {
	var stats []*model.FilterStat

	if result := r.DB.WithContext(ctx).Find(&stats); result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[string]int64, len(stats))
	for _, stat := range stats {
		counts[stat.FilterValue] = stat.UsageCount
	}

	return counts, nil
}
