package services

import (
	"context"
	"fmt"
	"time"

	"stepup-tasks/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tasksCollection = "tasks"

// TaskService persists tasks scoped to their owning user. Every read,
// update and delete filters on both the task id and the caller's user id,
// so a task is never visible to anyone but its creator.
type TaskService interface {
	CreateTask(ctx context.Context, db *mongo.Database, task models.Task) (models.Task, error)
	GetTasksByUser(ctx context.Context, db *mongo.Database, userID string) ([]models.Task, error)
	UpdateTask(ctx context.Context, db *mongo.Database, id primitive.ObjectID, userID string, fields bson.M) error
	DeleteTask(ctx context.Context, db *mongo.Database, id primitive.ObjectID, userID string) error
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, db *mongo.Database, task models.Task) (models.Task, error) {
	task.CreatedAt = time.Now().UTC()

	res, err := db.Collection(tasksCollection).InsertOne(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to insert task: %w", err)
	}
	task.ID = res.InsertedID.(primitive.ObjectID)

	return task, nil
}

func (s *TaskServiceImpl) GetTasksByUser(ctx context.Context, db *mongo.Database, userID string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := db.Collection(tasksCollection).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer cursor.Close(ctx)

	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies the given fields to the task matching both id and
// owner. An empty field set degrades to an owner-scoped existence check.
// Returns models.ErrTaskNotFound when nothing matched, whether the task
// does not exist or belongs to someone else.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, db *mongo.Database, id primitive.ObjectID, userID string, fields bson.M) error {
	filter := bson.M{"_id": id, "user_id": userID}
	tasks := db.Collection(tasksCollection)

	if len(fields) == 0 {
		count, err := tasks.CountDocuments(ctx, filter)
		if err != nil {
			return fmt.Errorf("failed to look up task: %w", err)
		}
		if count == 0 {
			return models.ErrTaskNotFound
		}
		return nil
	}

	res, err := tasks.UpdateOne(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.ErrTaskNotFound
	}

	return nil
}

// DeleteTask removes the task matching both id and owner. The record is
// gone for good; there is no soft delete.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, db *mongo.Database, id primitive.ObjectID, userID string) error {
	res, err := db.Collection(tasksCollection).DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return models.ErrTaskNotFound
	}

	return nil
}
