package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/BeerFinder/pkg/model"
)

var ErrBeerNotFound = errors.New("beer not found")

type CatalogRepository interface {
	AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	DeleteBeer(ctx context.Context, beerID uuid.UUID) (*model.Beer, error)
	GetBeer(ctx context.Context, beerID uuid.UUID) (*model.Beer, error)
	ListBeers(ctx context.Context, status *model.BeerStatus) ([]*model.Beer, error)
	SetBeerStatus(ctx context.Context, beerID uuid.UUID, status model.BeerStatus) (*model.Beer, error)
	UpdateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
}

// ListBeers returns the catalog newest first, optionally restricted to one status.
func (r *Repository) ListBeers(ctx context.Context, status *model.BeerStatus) ([]*model.Beer, error) {
	var beers []*model.Beer

	query := r.DB.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	if result := query.Find(&beers); result.Error != nil {
		return nil, result.Error
	}

	return beers, nil
}

func (r *Repository) GetBeer(ctx context.Context, beerID uuid.UUID) (*model.Beer, error) {
	beer := &model.Beer{}

	if result := r.DB.WithContext(ctx).Where("id = ?", beerID).First(beer); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBeerNotFound
		}

		return nil, result.Error
	}

	return beer, nil
}

func (r *Repository) AddBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	if beer.ID == uuid.Nil {
		beer.ID = uuid.New()
	}

	if result := r.DB.WithContext(ctx).Create(&beer); result.Error != nil {
		return nil, result.Error
	}

	return &beer, nil
}

// UpdateBeer overwrites every editable column of an existing beer.
func (r *Repository) UpdateBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	result := r.DB.WithContext(ctx).Model(&model.Beer{ID: beer.ID}).
		Select("*").Omit("id", "created_at").
		Updates(&beer)

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrBeerNotFound
	}

	return r.GetBeer(ctx, beer.ID)
}

// DeleteBeer removes a beer and returns what was deleted, so that its image can be cleaned up.
func (r *Repository) DeleteBeer(ctx context.Context, beerID uuid.UUID) (*model.Beer, error) {
	beer, err := r.GetBeer(ctx, beerID)
	if err != nil {
		return nil, err
	}

	result := r.DB.WithContext(ctx).Where("id = ?", beerID).Delete(&model.Beer{})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrBeerNotFound
	}

	return beer, nil
}

func (r *Repository) SetBeerStatus(ctx context.Context, beerID uuid.UUID, status model.BeerStatus) (*model.Beer, error) {
	result := r.DB.WithContext(ctx).Model(&model.Beer{}).Where("id = ?", beerID).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrBeerNotFound
	}

	return r.GetBeer(ctx, beerID)
}
