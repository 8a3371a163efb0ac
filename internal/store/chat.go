package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medisage/medisage_backend/internal/model"
)

type ChatStore struct {
	col *mongo.Collection
}

func NewChatStore(db *mongo.Database) *ChatStore {
	return &ChatStore{col: db.Collection(chatsCollection)}
}

func (s *ChatStore) Insert(ctx context.Context, c *model.Chat) (*model.Chat, error) {
	res, err := s.col.InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert chat: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

func (s *ChatStore) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Chat, error) {
	var c model.Chat
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find chat by id: %w", err)
	}
	return &c, nil
}

// ListByUser returns all of a user's chats in question order.
func (s *ChatStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*model.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timeOfQuestionAsked", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list chats by user: %w", err)
	}
	return decodeChats(ctx, cur)
}

// ListBySpecialization returns all chats whose AI-assigned label exactly
// equals the given specialization string.
func (s *ChatStore) ListBySpecialization(ctx context.Context, specialization string) ([]*model.Chat, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timeOfQuestionAsked", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{"specialization": specialization}, opts)
	if err != nil {
		return nil, fmt.Errorf("list chats by specialization: %w", err)
	}
	return decodeChats(ctx, cur)
}

// ReviewUpdate carries the review fields written onto a chat. Every review
// overwrites the previous one wholesale.
type ReviewUpdate struct {
	Verification  model.VerificationType
	CorrectedText string
	ReviewedAt    time.Time
	Snapshot      model.ClinicSnapshot
}

// ApplyReview overwrites the chat's review fields in one update and returns
// the updated document. The corrected text is cleared when empty so a
// "correct" review erases a prior correction.
func (s *ChatStore) ApplyReview(ctx context.Context, chatID primitive.ObjectID, upd ReviewUpdate) (*model.Chat, error) {
	set := bson.M{
		"verificationType": upd.Verification,
		"timeOfReview":     upd.ReviewedAt,
		"verifiedByClinic": upd.Snapshot,
	}

	update := bson.M{"$set": set}
	if upd.CorrectedText != "" {
		set["correctedResponseByClinic"] = upd.CorrectedText
	} else {
		update["$unset"] = bson.M{"correctedResponseByClinic": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var c model.Chat
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": chatID}, update, opts).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("apply chat review: %w", err)
	}
	return &c, nil
}

func decodeChats(ctx context.Context, cur *mongo.Cursor) ([]*model.Chat, error) {
	defer cur.Close(ctx)

	chats := []*model.Chat{}
	for cur.Next(ctx) {
		var c model.Chat
		if err := cur.Decode(&c); err != nil {
			return nil, fmt.Errorf("decode chat: %w", err)
		}
		chats = append(chats, &c)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}
	return chats, nil
}
