package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = r.client.Collection(usersCollection).NewDoc().ID
	}

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Upstream("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return getDoc[entity.User](ctx, r.client.Collection(usersCollection).Doc(id), "User")
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	iter := r.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", nil)
	}
	if err != nil {
		return nil, errors.Upstream("Failed to query users", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Upstream("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	query := r.client.Collection(usersCollection).OrderBy("createdAt", firestore.Desc)
	return queryDocs[entity.User](ctx, query, usersCollection)
}

// Search filters in memory; Firestore has no substring match.
func (r *firestoreUserRepository) Search(ctx context.Context, query string, role entity.Role) ([]*entity.User, error) {
	base := r.client.Collection(usersCollection).Query
	if role != "" {
		base = base.Where("role", "==", role)
	}

	users, err := queryDocs[entity.User](ctx, base, usersCollection)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(query)
	matched := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if query == "" ||
			strings.Contains(strings.ToLower(user.Name), query) ||
			strings.Contains(strings.ToLower(user.Email), query) {
			matched = append(matched, user)
		}
	}
	newestFirst(matched, func(u *entity.User) time.Time { return u.CreatedAt })
	return matched, nil
}

func (r *firestoreUserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	return updateDoc(ctx, r.client.Collection(usersCollection).Doc(id), "User", []firestore.Update{
		{Path: "role", Value: role},
	})
}

func (r *firestoreUserRepository) TouchLastLogin(ctx context.Context, email string, at time.Time) error {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	return updateDoc(ctx, r.client.Collection(usersCollection).Doc(user.ID), "User", []firestore.Update{
		{Path: "lastLogin", Value: at},
	})
}

func (r *firestoreUserRepository) Count(ctx context.Context) (int64, error) {
	return countDocs(ctx, r.client.Collection(usersCollection).Query, usersCollection)
}
