package repository

import (
	"context"
	"strconv"
	"time"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/domain/workflow"
	"ar_credit_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditLogTableName = "audit_log"

type auditItem struct {
	OrderID   string `dynamodbav:"order_id"`
	Seq       int    `dynamodbav:"seq"`
	FromState string `dynamodbav:"from_state"`
	ToState   string `dynamodbav:"to_state"`
	Details   string `dynamodbav:"details,omitempty"`
	Timestamp string `dynamodbav:"timestamp"`
}

// AuditLogDynamoRepository is the append-only decision trail.
//
// Table requirements:
//   - PK: order_id (string)
//   - SK: seq (number)
//
// Sequence numbers come from a per-order counter item at seq 0,
// bumped atomically with ADD. Records are put with a not-exists
// condition, so an entry can never be rewritten once stored.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditLogTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, rec entities.AuditRecord) error {
	seq, err := r.nextSeq(ctx, rec.OrderID)
	if err != nil {
		return err
	}
	rec.Seq = seq

	av, err := attributevalue.MarshalMap(auditItem{
		OrderID:   rec.OrderID,
		Seq:       rec.Seq,
		FromState: string(rec.FromState),
		ToState:   string(rec.ToState),
		Details:   rec.Details,
		Timestamp: rec.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#order_id) AND attribute_not_exists(#seq)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
			"#seq":      "seq",
		},
	})
	return err
}

func (r *AuditLogDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.AuditRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#order_id = :order_id AND #seq >= :first"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
			"#seq":      "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":order_id": &types.AttributeValueMemberS{Value: orderID},
			":first":    &types.AttributeValueMemberN{Value: "1"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.AuditRecord, 0, len(out.Items))
	for _, item := range out.Items {
		var it auditItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		timestamp, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
		records = append(records, entities.AuditRecord{
			OrderID:   it.OrderID,
			Seq:       it.Seq,
			FromState: workflow.State(it.FromState),
			ToState:   workflow.State(it.ToState),
			Details:   it.Details,
			Timestamp: timestamp,
		})
	}
	return records, nil
}

// nextSeq bumps the per-order counter item (seq 0) and returns the
// next record sequence number.
func (r *AuditLogDynamoRepository) nextSeq(ctx context.Context, orderID string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
			"seq":      &types.AttributeValueMemberN{Value: "0"},
		},
		UpdateExpression: aws.String("ADD #next :one"),
		ExpressionAttributeNames: map[string]string{
			"#next": "next",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	next, ok := out.Attributes["next"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingAuditCounter
	}
	return strconv.Atoi(next.Value)
}
