package client

import "context"

// IdentityClient resolves users against the external identity service
type IdentityClient interface {
	// VerifyUser checks that the user exists
	//
	// Possible errors:
	// - ErrUserNotFound: if the identity service doesn't know the user
	// - ErrIdentityUnreachable: on transport failure or identity server error
	VerifyUser(ctx context.Context, userID uint64) error
}
