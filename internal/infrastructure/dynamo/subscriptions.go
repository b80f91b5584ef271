package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gcn-portal/internal/domain"
)

// SubscriptionRepo provides typed DynamoDB operations for the
// email_notification_subscription table, the topic-keyed view of
// email_notification.
type SubscriptionRepo struct {
	client    API
	tableName string
}

func NewSubscriptionRepo(client API, tableName string) *SubscriptionRepo {
	return &SubscriptionRepo{client: client, tableName: tableName}
}

func (r *SubscriptionRepo) Put(ctx context.Context, row *domain.SubscriptionRow) error {
	item, err := attributevalue.MarshalMap(row)
	if err != nil {
		return fmt.Errorf("marshal subscription: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByUUID returns all view rows derived from one notification. Reads are
// strongly consistent so rows written moments ago are not missed.
func (r *SubscriptionRepo) ListByUUID(ctx context.Context, uuid string) ([]domain.SubscriptionRow, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	}, fieldUUID, uuid)
}

// ListByTopic queries the topic-index GSI: every recipient of one topic.
func (r *SubscriptionRepo) ListByTopic(ctx context.Context, topic string) ([]domain.SubscriptionRow, error) {
	return r.query(ctx, &dynamodb.QueryInput{
		TableName: aws.String(r.tableName),
		IndexName: aws.String(indexTopic),
	}, fieldTopic, topic)
}

func (r *SubscriptionRepo) Delete(ctx context.Context, uuid, topic string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       compositeKey(fieldUUID, uuid, fieldTopic, topic),
	})
	return err
}

func (r *SubscriptionRepo) query(ctx context.Context, in *dynamodb.QueryInput, attr, value string) ([]domain.SubscriptionRow, error) {
	cond, names, values := partitionQuery(attr, value)
	in.KeyConditionExpression = aws.String(cond)
	in.ExpressionAttributeNames = names
	in.ExpressionAttributeValues = values

	var rows []domain.SubscriptionRow
	p := dynamodb.NewQueryPaginator(r.client, in)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.SubscriptionRow
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		rows = append(rows, page...)
	}
	return rows, nil
}
