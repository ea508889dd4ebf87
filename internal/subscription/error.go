package subscription

import "errors"

var (
	ErrNoSubscription = errors.New("no subscription")
)
