package services

import (
	"context"
	"errors"
	"fmt"

	"stepup-tasks/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

type UserService interface {
	RegisterUser(ctx context.Context, db *mongo.Database, email, password string) (models.User, error)
	LoginUser(ctx context.Context, db *mongo.Database, email, password string) (models.User, error)
}

type UserServiceImpl struct{}

func NewUserService() *UserServiceImpl {
	return &UserServiceImpl{}
}

// RegisterUser persists a new user with the hashed password. Email lookup
// is an exact string match; no normalization is applied.
func (s *UserServiceImpl) RegisterUser(ctx context.Context, db *mongo.Database, email, password string) (models.User, error) {
	users := db.Collection(usersCollection)

	err := users.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return models.User{}, models.ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	user := models.User{
		Email:    email,
		Password: HashPassword(password),
	}
	res, err := users.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)

	return user, nil
}

// LoginUser resolves the email and compares digests. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *UserServiceImpl) LoginUser(ctx context.Context, db *mongo.Database, email, password string) (models.User, error) {
	users := db.Collection(usersCollection)

	var user models.User
	err := users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if user.Password != HashPassword(password) {
		return models.User{}, models.ErrInvalidCredentials
	}

	return user, nil
}
