package gorm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/folioboard/folioboard/pkg/model"
	"github.com/folioboard/folioboard/pkg/server/store"
	"github.com/folioboard/folioboard/pkg/utils"
)

// Ensure SubscriptionsStore implements store.SubscriptionsStore
var _ store.SubscriptionsStore = (*SubscriptionsStore)(nil)

// SubscriptionsStore implements store.SubscriptionsStore using GORM
type SubscriptionsStore struct {
	db *gorm.DB
}

// NewSubscriptionsStore creates a new SubscriptionsStore
func NewSubscriptionsStore(db *gorm.DB) *SubscriptionsStore {
	return &SubscriptionsStore{db: db}
}

// ActiveSubscription returns the user's active subscription.
func (s *SubscriptionsStore) ActiveSubscription(userID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := s.db.First(&sub, "user_id = ? AND status = ?", userID, model.SubscriptionActive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Subscribe creates an active subscription and sets the user's premium flag
// in the same transaction.
func (s *SubscriptionsStore) Subscribe(userID, plan string) (*model.Subscription, error) {
	sub := &model.Subscription{
		ID:     utils.NewID(),
		UserID: userID,
		Plan:   plan,
		Status: model.SubscriptionActive,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Subscription{}).
			Where("user_id = ? AND status = ?", userID, model.SubscriptionActive).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return store.ErrAlreadySubscribed
		}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).Where("id = ?", userID).Update("premium", true).Error
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Cancel marks the active subscription canceled and clears the user's
// premium flag.
func (s *SubscriptionsStore) Cancel(userID string) (*model.Subscription, error) {
	var sub *model.Subscription
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var active model.Subscription
		err := tx.First(&active, "user_id = ? AND status = ?", userID, model.SubscriptionActive).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return store.ErrSubscriptionNotFound
		}
		if err != nil {
			return err
		}

		now := time.Now()
		active.Status = model.SubscriptionCanceled
		active.CanceledAt = &now
		if err := tx.Model(&model.Subscription{}).Where("id = ?", active.ID).
			Updates(map[string]interface{}{"status": active.Status, "canceled_at": now}).Error; err != nil {
			return err
		}

		sub = &active
		return tx.Model(&model.User{}).Where("id = ?", userID).Update("premium", false).Error
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}
