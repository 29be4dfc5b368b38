package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/domain/workflow"
	"ar_credit_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultWorkflowRunsTableName = "workflow_runs"
	workflowRunStateIndex        = "state-index"
)

type workflowRunItem struct {
	OrderID           string `dynamodbav:"order_id"`
	RunID             string `dynamodbav:"run_id"`
	CustomerID        string `dynamodbav:"customer_id"`
	Amount            string `dynamodbav:"amount"`
	State             string `dynamodbav:"state"`
	Assessment        string `dynamodbav:"assessment,omitempty"`
	History           string `dynamodbav:"history"`
	PendingHumanInput bool   `dynamodbav:"pending_human_input"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// WorkflowRunDynamoRepository persists WorkflowRun state in DynamoDB.
//
// Table requirements:
//   - PK: order_id (string); one run per order, enforced on create
//   - GSI (state-index): state, for the awaiting-review listing
//
// The assessment and the step history ride along as JSON documents:
// they are read and written as a whole with the run, never queried by
// field.

type WorkflowRunDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkflowRunRepository = (*WorkflowRunDynamoRepository)(nil)

func NewWorkflowRunDynamoRepository(ddb *dynamodb.Client) *WorkflowRunDynamoRepository {
	return &WorkflowRunDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKFLOW_RUNS_TABLE", defaultWorkflowRunsTableName),
	}
}

func (r *WorkflowRunDynamoRepository) Create(ctx context.Context, run entities.WorkflowRun) (entities.WorkflowRun, error) {
	it, err := toWorkflowRunItem(run)
	if err != nil {
		return entities.WorkflowRun{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkflowRun{}, err
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
			return entities.WorkflowRun{}, nil
		}
		return entities.WorkflowRun{}, err
	}
	return run, nil
}

func (r *WorkflowRunDynamoRepository) Save(ctx context.Context, run entities.WorkflowRun) (entities.WorkflowRun, error) {
	it, err := toWorkflowRunItem(run)
	if err != nil {
		return entities.WorkflowRun{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.WorkflowRun{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#order_id)"),
		ExpressionAttributeNames: map[string]string{
			"#order_id": "order_id",
		},
	})
	if err != nil {
		return entities.WorkflowRun{}, err
	}
	return run, nil
}

func (r *WorkflowRunDynamoRepository) GetByOrderID(ctx context.Context, orderID string) (entities.WorkflowRun, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkflowRun{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkflowRun{}, nil
	}

	var it workflowRunItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkflowRun{}, err
	}
	return fromWorkflowRunItem(it)
}

func (r *WorkflowRunDynamoRepository) ListAwaitingHumanInput(ctx context.Context) ([]entities.WorkflowRun, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workflowRunStateIndex),
		KeyConditionExpression: aws.String("#state = :state"),
		ExpressionAttributeNames: map[string]string{
			"#state": "state",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":state": &types.AttributeValueMemberS{Value: string(workflow.StateAwaitingHumanInput)},
		},
	})
	if err != nil {
		return nil, err
	}

	runs := make([]entities.WorkflowRun, 0, len(out.Items))
	for _, item := range out.Items {
		var it workflowRunItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		run, err := fromWorkflowRunItem(it)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func toWorkflowRunItem(run entities.WorkflowRun) (workflowRunItem, error) {
	history, err := json.Marshal(run.History)
	if err != nil {
		return workflowRunItem{}, err
	}
	assessment := ""
	if run.Assessment != nil {
		raw, err := json.Marshal(run.Assessment)
		if err != nil {
			return workflowRunItem{}, err
		}
		assessment = string(raw)
	}
	return workflowRunItem{
		OrderID:           run.OrderID,
		RunID:             run.ID,
		CustomerID:        run.CustomerID,
		Amount:            run.Amount.String(),
		State:             string(run.State),
		Assessment:        assessment,
		History:           string(history),
		PendingHumanInput: run.PendingHumanInput,
		CreatedAt:         run.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         run.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromWorkflowRunItem(it workflowRunItem) (entities.WorkflowRun, error) {
	amount, err := decimal.NewFromString(it.Amount)
	if err != nil {
		return entities.WorkflowRun{}, err
	}
	var history []entities.StepLog
	if it.History != "" {
		if err := json.Unmarshal([]byte(it.History), &history); err != nil {
			return entities.WorkflowRun{}, err
		}
	}
	var assessment *entities.CreditAssessment
	if it.Assessment != "" {
		assessment = &entities.CreditAssessment{}
		if err := json.Unmarshal([]byte(it.Assessment), assessment); err != nil {
			return entities.WorkflowRun{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.WorkflowRun{
		ID:                it.RunID,
		OrderID:           it.OrderID,
		CustomerID:        it.CustomerID,
		Amount:            amount,
		State:             workflow.State(it.State),
		Assessment:        assessment,
		History:           history,
		PendingHumanInput: it.PendingHumanInput,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}, nil
}
