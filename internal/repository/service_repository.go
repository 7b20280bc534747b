package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/TharunBejawada/Dr-Sarath-Chandra/internal/model"
)

type ServiceRepository interface {
	Put(ctx context.Context, svc *model.Service) error
	GetByID(ctx context.Context, serviceID string) (*model.Service, error)
	List(ctx context.Context) ([]model.Service, error)
	SetEnabled(ctx context.Context, serviceID string, enabled bool) error
}

type dynamoServiceRepository struct {
	db    DynamoAPI
	table string
}

func NewDynamoServiceRepository(db DynamoAPI, table string) ServiceRepository {
	return &dynamoServiceRepository{db: db, table: table}
}

func (r *dynamoServiceRepository) Put(ctx context.Context, svc *model.Service) error {
	item, err := attributevalue.MarshalMap(svc)
	if err != nil {
		return err
	}
	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	return err
}

func (r *dynamoServiceRepository) GetByID(ctx context.Context, serviceID string) (*model.Service, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"serviceId": &types.AttributeValueMemberS{Value: serviceID},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var svc model.Service
	if err := attributevalue.UnmarshalMap(out.Item, &svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *dynamoServiceRepository) List(ctx context.Context) ([]model.Service, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, err
	}

	services := make([]model.Service, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &services); err != nil {
		return nil, err
	}
	return services, nil
}

func (r *dynamoServiceRepository) SetEnabled(ctx context.Context, serviceID string, enabled bool) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"serviceId": &types.AttributeValueMemberS{Value: serviceID},
		},
		UpdateExpression: aws.String("set enabled = :e"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":e": &types.AttributeValueMemberBOOL{Value: enabled},
		},
	})
	return err
}
