package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDecisionsTableName = "decisions"

type decisionItem struct {
	OrderID    string   `dynamodbav:"order_id"`
	Status     string   `dynamodbav:"status"`
	Reasons    []string `dynamodbav:"reasons"`
	Origin     string   `dynamodbav:"origin"`
	Rationale  string   `dynamodbav:"rationale,omitempty"`
	Assessment string   `dynamodbav:"assessment"`
	DecidedAt  string   `dynamodbav:"decided_at"`
}

// DecisionDynamoRepository persists terminal decisions in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string)
//
// The conditional put is what makes the workflow idempotent at the
// storage level: a second decision for an order is rejected by the
// table, never merged or overwritten.

type DecisionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDecisionRepository = (*DecisionDynamoRepository)(nil)

func NewDecisionDynamoRepository(ddb *dynamodb.Client) *DecisionDynamoRepository {
	return &DecisionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DECISIONS_TABLE", defaultDecisionsTableName),
	}
}

func (r *DecisionDynamoRepository) Create(ctx context.Context, d entities.Decision) (entities.Decision, error) {
	it, err := toDecisionItem(d)
	if err != nil {
		return entities.Decision{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Decision{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Decision{}, nil
		}
		return entities.Decision{}, err
	}
	return d, nil
}

func (r *DecisionDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.Decision, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Decision{}, err
	}
	if len(out.Item) == 0 {
		return entities.Decision{}, nil
	}

	var it decisionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Decision{}, err
	}
	return fromDecisionItem(it)
}

func toDecisionItem(d entities.Decision) (decisionItem, error) {
	assessment, err := json.Marshal(d.Assessment)
	if err != nil {
		return decisionItem{}, err
	}
	return decisionItem{
		OrderID:    d.OrderID,
		Status:     string(d.Status),
		Reasons:    d.Reasons,
		Origin:     string(d.Origin),
		Rationale:  d.Rationale,
		Assessment: string(assessment),
		DecidedAt:  d.DecidedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDecisionItem(it decisionItem) (entities.Decision, error) {
	var assessment entities.CreditAssessment
	if it.Assessment != "" {
		if err := json.Unmarshal([]byte(it.Assessment), &assessment); err != nil {
			return entities.Decision{}, err
		}
	}
	decidedAt, _ := time.Parse(time.RFC3339Nano, it.DecidedAt)
	return entities.Decision{
		OrderID:    it.OrderID,
		Status:     entities.DecisionStatus(it.Status),
		Reasons:    it.Reasons,
		Origin:     entities.DecisionOrigin(it.Origin),
		Rationale:  it.Rationale,
		Assessment: assessment,
		DecidedAt:  decidedAt,
	}, nil
}
