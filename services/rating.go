package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/store"
)

// RatingService maintains the directed rating edges and keeps each user's
// overall rating equal to the arithmetic mean of their current incoming
// rating values.
type RatingService struct {
	store store.Store
}

func NewRatingService(s store.Store) *RatingService {
	return &RatingService{store: s}
}

// Submit upserts the (rater, ratee) rating edge and recomputes the ratee's
// overall rating from the full post-upsert set of incoming values, all in
// one transaction so concurrent submissions cannot drop a contribution.
func (s *RatingService) Submit(ctx context.Context, raterID, rateeID string, value int) (float64, error) {
	if value < models.MinRatingValue || value > models.MaxRatingValue {
		return 0, fmt.Errorf("%w: rating value must be between %d and %d",
			ErrValidation, models.MinRatingValue, models.MaxRatingValue)
	}
	if rateeID == "" {
		return 0, fmt.Errorf("%w: no user id provided", ErrValidation)
	}
	if raterID == rateeID {
		return 0, fmt.Errorf("%w: cannot rate yourself", ErrValidation)
	}

	var overall float64
	err := s.store.RunInTx(ctx, func(tx store.Store) error {
		// Locking read: concurrent submissions for the same ratee queue up
		// here, so the recompute below always sees every committed edge.
		exists, err := tx.UserExistsForUpdate(ctx, rateeID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: no user found", ErrNotFound)
		}

		if err := tx.UpsertRating(ctx, raterID, rateeID, value); err != nil {
			return err
		}

		values, err := tx.IncomingRatingValues(ctx, rateeID)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			// Unreachable after a successful upsert.
			return errors.New("no incoming ratings after upsert")
		}

		overall = meanRating(values)
		return tx.SetOverallRating(ctx, rateeID, &overall)
	})
	if err != nil {
		return 0, err
	}
	return overall, nil
}

func meanRating(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
