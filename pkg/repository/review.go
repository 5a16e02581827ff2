package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"droscher.com/BeerFinder/pkg/model"
)

var ErrReviewNotFound = errors.New("review not found")

type ReviewRepository interface {
	AddReview(ctx context.Context, review model.Review) (*model.Review, error)
	ApproveReview(ctx context.Context, reviewID uuid.UUID) (*model.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	GetApprovedRatings(ctx context.Context, beerIDs []uuid.UUID) ([]model.BeerRating, error)
	GetApprovedReviews(ctx context.Context, beerID uuid.UUID) ([]*model.Review, error)
	GetPendingReviews(ctx context.Context) ([]*model.PendingReview, error)
}

// AddReview stores a new review awaiting moderation.
func (r *Repository) AddReview(ctx context.Context, review model.Review) (*model.Review, error) {
	review.ID = uuid.New()
	review.Approved = false

	if result := r.DB.WithContext(ctx).Create(&review); result.Error != nil {
		return nil, result.Error
	}

	return &review, nil
}

// ApproveReview marks a review visible. Approving an approved review changes nothing.
func (r *Repository) ApproveReview(ctx context.Context, reviewID uuid.UUID) (*model.Review, error) {
	result := r.DB.WithContext(ctx).Model(&model.Review{}).Where("id = ?", reviewID).Update("approved", true)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrReviewNotFound
	}

	review := &model.Review{}
	if result := r.DB.WithContext(ctx).Where("id = ?", reviewID).First(review); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}

		return nil, result.Error
	}

	return review, nil
}

func (r *Repository) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	result := r.DB.WithContext(ctx).Where("id = ?", reviewID).Delete(&model.Review{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

func (r *Repository) GetApprovedReviews(ctx context.Context, beerID uuid.UUID) ([]*model.Review, error) {
	var reviews []*model.Review

	result := r.DB.WithContext(ctx).
		Where("beer_id = ? AND approved = ?", beerID, true).
		Order("created_at DESC").
		Find(&reviews)
	if result.Error != nil {
		return nil, result.Error
	}

	return reviews, nil
}

// GetPendingReviews returns the moderation queue newest first. Reviews of deleted beers are kept.
func (r *Repository) GetPendingReviews(ctx context.Context) ([]*model.PendingReview, error) {
	var pending []*model.PendingReview

	result := r.DB.WithContext(ctx).Table("reviews").
		Select("reviews.*, beers.name AS beer_name, beers.image AS beer_image").
		Joins("LEFT JOIN beers ON beers.id = reviews.beer_id").
		Where("reviews.approved = ?", false).
		Order("reviews.created_at DESC").
		Scan(&pending)
	if result.Error != nil {
		return nil, result.Error
	}

	return pending, nil
}

// GetApprovedRatings returns the approved ratings of the given beers, or of every beer when none are given.
func (r *Repository) GetApprovedRatings(ctx context.Context, beerIDs []uuid.UUID) ([]model.BeerRating, error) {
	var ratings []model.BeerRating

	query := r.DB.WithContext(ctx).Model(&model.Review{}).Select("beer_id, rating").Where("approved = ?", true)
	if len(beerIDs) > 0 {
		query = query.Where("beer_id IN ?", beerIDs)
	}

	if result := query.Scan(&ratings); result.Error != nil {
		return nil, result.Error
	}

	return ratings, nil
}
