package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZachMcM/purdue-hoops/store"
)

// AccountService handles account deletion: the cascade over ratings,
// friendships, sessions and search history, plus repair of the overall
// ratings the deleted user had contributed to.
type AccountService struct {
	store store.Store
}

func NewAccountService(s store.Store) *AccountService {
	return &AccountService{store: s}
}

// Delete removes the user and all their edges in one transaction. Every
// user the deleted account had rated gets their overall rating re-derived
// from the surviving incoming values, or cleared when none remain.
func (s *AccountService) Delete(ctx context.Context, userID string) error {
	return s.store.RunInTx(ctx, func(tx store.Store) error {
		exists, err := tx.UserExistsForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: no user found", ErrNotFound)
		}

		ratees, err := tx.RatedUserIDs(ctx, userID)
		if err != nil {
			return err
		}
		// Deterministic lock order across concurrent deletions.
		sort.Strings(ratees)

		if err := tx.DeleteUserData(ctx, userID); err != nil {
			return err
		}

		for _, rateeID := range ratees {
			// Serialize with in-flight submissions for this ratee before
			// re-deriving their aggregate.
			locked, err := tx.UserExistsForUpdate(ctx, rateeID)
			if err != nil {
				return err
			}
			if !locked {
				continue
			}
			values, err := tx.IncomingRatingValues(ctx, rateeID)
			if err != nil {
				return err
			}
			if len(values) == 0 {
				if err := tx.SetOverallRating(ctx, rateeID, nil); err != nil {
					return err
				}
				continue
			}
			overall := meanRating(values)
			if err := tx.SetOverallRating(ctx, rateeID, &overall); err != nil {
				return err
			}
		}
		return nil
	})
}
