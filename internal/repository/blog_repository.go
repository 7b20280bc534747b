package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
)

type BlogRepository interface {
	Put(ctx context.Context, blog *model.Blog) error
	GetByID(ctx context.Context, blogID string) (*model.Blog, error)
	List(ctx context.Context) ([]model.Blog, error)
	SetEnabled(ctx context.Context, blogID string, enabled bool) error
}

type dynamoBlogRepository struct {
	db    DynamoAPI
	table string
}

func NewDynamoBlogRepository(db DynamoAPI, table string) BlogRepository {
	return &dynamoBlogRepository{db: db, table: table}
}

func (r *dynamoBlogRepository) Put(ctx context.Context, blog *model.Blog) error {
	item, err := attributevalue.MarshalMap(blog)
	if err != nil {
		return err
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return err
}

func (r *dynamoBlogRepository) GetByID(ctx context.Context, blogID string) (*model.Blog, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"blogId": &types.AttributeValueMemberS{Value: blogID},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var blog model.Blog
	if err := attributevalue.UnmarshalMap(out.Item, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (r *dynamoBlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}

	blogs := make([]model.Blog, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *dynamoBlogRepository) SetEnabled(ctx context.Context, blogID string, enabled bool) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"blogId": &types.AttributeValueMemberS{Value: blogID},
		},
		UpdateExpression: aws.String("set enabled = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberBOOL{Value: enabled},
		},
	})
	return err
}
