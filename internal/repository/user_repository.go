package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
)

// emailIndexName is the GSI on the users table keyed by email.
const emailIndexName = "EmailIndex"

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.UserSummary, error)
	UpdateLastLogin(ctx context.Context, userID string, t time.Time) error
	Delete(ctx context.Context, userID string) error
}

type dynamoUserRepository struct {
	db    DynamoAPI
	table string
}

func NewDynamoUserRepository(db DynamoAPI, table string) UserRepository {
	return &dynamoUserRepository{db: db, table: table}
}

// emailGuardID derives the key of the uniqueness-guard item for an
// email. Writing the guard conditionally alongside the user record
// makes email uniqueness hold even when two creates race.
func emailGuardID(email string) string {
	return "EMAIL#" + strings.ToLower(strings.TrimSpace(email))
}

func (r *dynamoUserRepository) Create(ctx context.Context, user *model.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return err
	}

	guard := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: emailGuardID(user.Email)},
		"owner":  &types.AttributeValueMemberS{Value: user.UserID},
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.table),
					Item:                guard,
					ConditionExpression: aws.String("attribute_not_exists(userId)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.table),
					Item:      item,
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return ErrEmailExists
				}
			}
		}
		return err
	}
	return nil
}

func (r *dynamoUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(emailIndexName),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, ErrNotFound
	}

	var user model.User
	if err := attributevalue.UnmarshalMap(out.Items[0], &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List scans the table with a projection that leaves the password
// attribute out entirely; guard items carry no email and are filtered.
func (r *dynamoUserRepository) List(ctx context.Context) ([]model.UserSummary, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName:            aws.String(r.table),
		ProjectionExpression: aws.String("userId, email, #n, #r, #s, lastLogin"),
		FilterExpression:     aws.String("attribute_exists(email)"),
		ExpressionAttributeNames: map[string]string{
			"#n": "name",
			"#r": "role",
			"#s": "status",
		},
	})
	if err != nil {
		return nil, err
	}

	users := make([]model.UserSummary, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *dynamoUserRepository) UpdateLastLogin(ctx context.Context, userID string, t time.Time) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression: aws.String("set lastLogin = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: t.UTC().Format(time.RFC3339Nano)},
		},
	})
	return err
}

// Delete removes the user item and its email guard. Deleting an absent
// user is not an error.
func (r *dynamoUserRepository) Delete(ctx context.Context, userID string) error {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"userId": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return err
	}
	if out.Item == nil {
		return nil
	}

	var user model.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return err
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.table),
					Key: map[string]types.AttributeValue{
						"userId": &types.AttributeValueMemberS{Value: userID},
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.table),
					Key: map[string]types.AttributeValue{
						"userId": &types.AttributeValueMemberS{Value: emailGuardID(user.Email)},
					},
				},
			},
		},
	})
	return err
}
