// Package router resolves which logical destination the UI should show. The
// gate is a pure function of (user present, onboarding complete); it holds no
// state of its own.
package router

import (
	"chronotask/internal/models"
	"chronotask/internal/onboarding"
)

type Destination string

const (
	DestinationLanding    Destination = "landing"
	DestinationLogin      Destination = "login"
	DestinationSignup     Destination = "signup"
	DestinationDashboard  Destination = "dashboard"
	DestinationOnboarding Destination = "onboarding"
)

// Resolve returns the destination for the current store state: signed-out
// sessions land on the landing page, signed-in ones go to onboarding until
// the questionnaire is complete, then to the dashboard.
func Resolve(user *models.User, responses []models.UserResponse) Destination {
	if user == nil {
		return DestinationLanding
	}
	if !onboarding.Complete(responses) {
		return DestinationOnboarding
	}
	return DestinationDashboard
}

// Gate reports whether a signed-out destination may be shown. Login and
// signup redirect to the dashboard once a user is present.
func Gate(dest Destination, user *models.User, responses []models.UserResponse) Destination {
	switch dest {
	case DestinationLogin, DestinationSignup:
		if user != nil {
			return Resolve(user, responses)
		}
		return dest
	case DestinationLanding:
		return dest
	default:
		return Resolve(user, responses)
	}
}
