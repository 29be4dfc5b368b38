package repository

import (
	"context"

	"ar_credit_service/internal/domain/entities"
	"ar_credit_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultCustomersTableName = "customers"

type customerItem struct {
	ID                    string `dynamodbav:"id"`
	CreditLimit           string `dynamodbav:"credit_limit"`
	OutstandingBalance    string `dynamodbav:"outstanding_balance"`
	CreditScore           int    `dynamodbav:"credit_score"`
	Status                string `dynamodbav:"status"`
	HasLatePaymentHistory bool   `dynamodbav:"has_late_payment_history"`
	IsNew                 bool   `dynamodbav:"is_new"`
}

// CustomerDynamoRepository reads customer-master snapshots from
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The table is fed by the upstream customer-master sync; this service
// only ever reads from it.

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerProvider = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, customerID string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: customerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it)
}

func fromCustomerItem(it customerItem) (entities.Customer, error) {
	limit, err := decimal.NewFromString(it.CreditLimit)
	if err != nil {
		return entities.Customer{}, err
	}
	outstanding, err := decimal.NewFromString(it.OutstandingBalance)
	if err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer{
		ID:                    it.ID,
		CreditLimit:           limit,
		OutstandingBalance:    outstanding,
		CreditScore:           it.CreditScore,
		Status:                entities.CustomerStatus(it.Status),
		HasLatePaymentHistory: it.HasLatePaymentHistory,
		IsNew:                 it.IsNew,
	}, nil
}
