package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bazaartrack/internal/domain/entity"
	"bazaartrack/internal/domain/repository"
	"bazaartrack/pkg/errors"
)

type mongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		col: db.Collection(usersCollection),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = newObjectID()
	}

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		return errors.Upstream("Failed to create user", err)
	}
	return nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.col, bson.M{"_id": id}, "User")
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return findOne[entity.User](ctx, r.col, bson.M{"email": email}, "User")
}

func (r *mongoUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.Search(ctx, "", "")
}

func (r *mongoUserRepository) Search(ctx context.Context, query string, role entity.Role) ([]*entity.User, error) {
	filter := bson.M{}
	if query != "" {
		filter["$or"] = bson.A{
			bson.M{"name": containsPattern(query)},
			bson.M{"email": containsPattern(query)},
		}
	}
	if role != "" {
		filter["role"] = role
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[entity.User](ctx, r.col, filter, opts)
}

func (r *mongoUserRepository) UpdateRole(ctx context.Context, id string, role entity.Role) error {
	result, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return errors.Upstream("Failed to update user role", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("User", nil)
	}
	return nil
}

func (r *mongoUserRepository) TouchLastLogin(ctx context.Context, email string, at time.Time) error {
	result, err := r.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"lastLogin": at}})
	if err != nil {
		return errors.Upstream("Failed to update last login", err)
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("User", nil)
	}
	return nil
}

func (r *mongoUserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Upstream("Failed to count users", err)
	}
	return count, nil
}
