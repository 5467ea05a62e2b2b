package handlers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"time"

	"stepup-tasks/internal/models"
	"stepup-tasks/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errStoreDown = errors.New("store unreachable")

// FakeUserService keeps users in memory, keyed by exact email, mirroring
// the store's uniqueness and digest-comparison behavior.
type FakeUserService struct {
	users             map[string]models.User
	shouldReturnError bool
}

func NewFakeUserService() *FakeUserService {
	return &FakeUserService{users: make(map[string]models.User)}
}

func (f *FakeUserService) RegisterUser(ctx context.Context, db *mongo.Database, email, password string) (models.User, error) {
	if f.shouldReturnError {
		return models.User{}, errStoreDown
	}
	if _, exists := f.users[email]; exists {
		return models.User{}, models.ErrUserExists
	}
	user := models.User{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: services.HashPassword(password),
	}
	f.users[email] = user
	return user, nil
}

func (f *FakeUserService) LoginUser(ctx context.Context, db *mongo.Database, email, password string) (models.User, error) {
	if f.shouldReturnError {
		return models.User{}, errStoreDown
	}
	user, exists := f.users[email]
	if !exists || user.Password != services.HashPassword(password) {
		return models.User{}, models.ErrInvalidCredentials
	}
	return user, nil
}

// FakeTaskService keeps tasks in memory and enforces the same
// id-plus-owner filtering as the real store.
type FakeTaskService struct {
	tasks             []models.Task
	clock             time.Time
	shouldReturnError bool
}

func NewFakeTaskService() *FakeTaskService {
	return &FakeTaskService{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *FakeTaskService) CreateTask(ctx context.Context, db *mongo.Database, task models.Task) (models.Task, error) {
	if f.shouldReturnError {
		return models.Task{}, errStoreDown
	}
	f.clock = f.clock.Add(time.Second)
	task.ID = primitive.NewObjectID()
	task.CreatedAt = f.clock
	f.tasks = append(f.tasks, task)
	return task, nil
}

func (f *FakeTaskService) GetTasksByUser(ctx context.Context, db *mongo.Database, userID string) ([]models.Task, error) {
	if f.shouldReturnError {
		return nil, errStoreDown
	}
	owned := []models.Task{}
	for _, task := range f.tasks {
		if task.UserID == userID {
			owned = append(owned, task)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.Before(owned[j].CreatedAt)
	})
	return owned, nil
}

func (f *FakeTaskService) UpdateTask(ctx context.Context, db *mongo.Database, id primitive.ObjectID, userID string, fields bson.M) error {
	if f.shouldReturnError {
		return errStoreDown
	}
	for i, task := range f.tasks {
		if task.ID != id || task.UserID != userID {
			continue
		}
		if title, ok := fields["title"].(string); ok {
			f.tasks[i].Title = title
		}
		if description, ok := fields["description"].(string); ok {
			f.tasks[i].Description = description
		}
		if status, ok := fields["status"].(string); ok {
			f.tasks[i].Status = status
		}
		return nil
	}
	return models.ErrTaskNotFound
}

func (f *FakeTaskService) DeleteTask(ctx context.Context, db *mongo.Database, id primitive.ObjectID, userID string) error {
	if f.shouldReturnError {
		return errStoreDown
	}
	for i, task := range f.tasks {
		if task.ID == id && task.UserID == userID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return models.ErrTaskNotFound
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
