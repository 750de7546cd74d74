package store

import (
	"errors"

	"github.com/folioboard/folioboard/pkg/model"
)

// ErrSubscriptionNotFound is returned when a user has no active subscription
var ErrSubscriptionNotFound = errors.New("subscription not found")

// ErrAlreadySubscribed is returned when a user already has an active
// subscription
var ErrAlreadySubscribed = errors.New("already subscribed")

// SubscriptionsStore abstracts premium tier storage operations
type SubscriptionsStore interface {
	// ActiveSubscription returns the user's active subscription. Returns
	// ErrSubscriptionNotFound when there is none.
	ActiveSubscription(userID string) (*model.Subscription, error)

	// Subscribe creates an active subscription and sets the user's premium
	// flag in the same transaction. Returns ErrAlreadySubscribed.
	Subscribe(userID, plan string) (*model.Subscription, error)

	// Cancel marks the active subscription canceled and clears the user's
	// premium flag. Returns ErrSubscriptionNotFound.
	Cancel(userID string) (*model.Subscription, error)
}
