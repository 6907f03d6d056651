package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"sprout/internal/domain/entity"
	domainerrors "sprout/internal/domain/errors"
	"sprout/internal/domain/repository"
	"sprout/internal/errors"
	"sprout/internal/infra/persistence/model"
)

// userRepository implements the repository.UserRepository interface using the
// Mongo driver. Every write is a single-document operation; the document is
// the whole User aggregate with its embedded plant list.
type userRepository struct {
	users *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		users: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// ensureIndexes creates the unique email index backing the duplicate-email
// invariant. Safe to call repeatedly; Mongo treats it as a no-op when the
// index already exists.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(model.UserModel{}.CollectionName()).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})

	return errors.WithStack(err)
}

// Create persists a new user document. The unique index on email turns a
// duplicate registration into a domain error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)
	if userM.CreatedAt.IsZero() {
		userM.CreatedAt = time.Now().UTC()
	}
	if userM.Plants == nil {
		userM.Plants = []model.PlantModel{}
	}

	if _, err := repo.users.InsertOne(ctx, userM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByEmail retrieves a single user document by its email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.users.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return model.ToUserDomain(&userM), nil
}

// UpdateFullName sets a new display name and returns the updated user.
func (repo *userRepository) UpdateFullName(ctx context.Context, email, fullName string) (*entity.User, error) {
	return repo.findOneAndSet(ctx, email, bson.M{"fullName": fullName}, "failed to update full name")
}

// UpdatePassword stores a new password hash for the user.
func (repo *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) (*entity.User, error) {
	return repo.findOneAndSet(ctx, email, bson.M{"password": passwordHash}, "failed to update password")
}

// ReplacePlants persists the full plant list, replacing whatever was stored.
func (repo *userRepository) ReplacePlants(ctx context.Context, email string, plants []entity.Plant) (*entity.User, error) {
	return repo.findOneAndSet(ctx, email, bson.M{"plants": model.FromPlantsDomain(plants)}, "failed to replace plants")
}

// findOneAndSet applies a $set to the user document keyed by email and
// returns the post-update state, as one atomic document operation.
func (repo *userRepository) findOneAndSet(ctx context.Context, email string, fields bson.M, failMsg string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.users.FindOneAndUpdate(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&userM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, failMsg)
	}

	return model.ToUserDomain(&userM), nil
}
