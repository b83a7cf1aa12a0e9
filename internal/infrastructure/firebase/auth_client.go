package firebase

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/auth"

	"bazaartrack/internal/domain/service"
)

var ErrMissingEmail = errors.New("firebase: token carries no email claim")

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// Verify checks the ID token signature, expiry and audience with Firebase and maps its claims.
func (f *FirebaseAuthClient) Verify(ctx context.Context, token string) (*service.Identity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	email, _ := result.Claims["email"].(string)
	if email == "" {
		return nil, ErrMissingEmail
	}
	name, _ := result.Claims["name"].(string)

	return &service.Identity{
		UID:   result.UID,
		Email: email,
		Name:  name,
	}, nil
}
