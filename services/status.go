package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ZachMcM/purdue-hoops/models"
	"github.com/ZachMcM/purdue-hoops/store"
	"github.com/ZachMcM/purdue-hoops/utils"
)

// StatusService owns the hooping status. A gym status and its hoop session
// commit together, so a failed session write never leaves a status change
// behind.
type StatusService struct {
	store store.Store
}

func NewStatusService(s store.Store) *StatusService {
	return &StatusService{store: s}
}

func (s *StatusService) Get(ctx context.Context, userID string) (string, error) {
	status, err := s.store.GetHoopingStatus(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("%w: no user found", ErrNotFound)
	}
	return status, err
}

// Update sets the user's status and, for gym statuses, records a hoop
// session in the same transaction. It returns the user's name for the
// presence feed.
func (s *StatusService) Update(ctx context.Context, userID, status string) (string, error) {
	if !models.ValidHoopingStatus(status) {
		return "", fmt.Errorf("%w: invalid hooping status", ErrValidation)
	}

	var name string
	err := s.store.RunInTx(ctx, func(tx store.Store) error {
		n, err := tx.GetUserName(ctx, userID)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: no user found", ErrNotFound)
		}
		if err != nil {
			return err
		}
		name = n

		if err := tx.SetHoopingStatus(ctx, userID, status); err != nil {
			return err
		}

		if models.ValidGym(status) {
			return tx.AddHoopSession(ctx, &models.HoopSession{
				ID:        utils.GenerateUUID(),
				UserID:    userID,
				Gym:       status,
				CreatedAt: time.Now(),
			})
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}
