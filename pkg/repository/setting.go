package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/BeerFinder/pkg/model"
)

var ErrSettingNotFound = errors.New("setting not found")

func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	setting := &model.Setting{}

	if result := r.DB.WithContext(ctx).Where("key = ?", key).First(setting); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", ErrSettingNotFound
		}

		return "", result.Error
	}

	return setting.Value, nil
}

func (r *Repository) PutSetting(ctx context.Context, key string, value string) error {
	setting := model.Setting{Key: key, Value: value}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
