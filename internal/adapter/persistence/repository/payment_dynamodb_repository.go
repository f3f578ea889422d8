package repository

import (
	"context"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentRecord struct {
	ID            string `dynamodbav:"id"`
	WorkOrderID   string `dynamodbav:"work_order_id"`
	CompanyID     string `dynamodbav:"company_id"`
	Metodo        string `dynamodbav:"metodo"`
	Valor         string `dynamodbav:"valor"`
	DataPagamento string `dynamodbav:"data_pagamento"`
	NumeroParcela *int   `dynamodbav:"numero_parcela,omitempty"`
	TotalParcelas *int   `dynamodbav:"total_parcelas,omitempty"`
}

// PaymentDynamoRepository reads payment facts from DynamoDB. Writes happen
// only inside the work-order transaction, so this repository has no Create.
//
// Table requirements:
//   - payments: PK id (string); GSI work_order_id-index;
//     GSI company_id-data_pagamento-index (PK company_id, SK data_pagamento)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(workOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) ListByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyPaymentDateIndex),
		KeyConditionExpression: aws.String("company_id = :cid AND data_pagamento BETWEEN :start AND :end"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":   &types.AttributeValueMemberS{Value: companyID},
			":start": &types.AttributeValueMemberS{Value: formatTimeKey(start)},
			":end":   &types.AttributeValueMemberS{Value: formatTimeKey(end)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0, len(raw))
	for _, item := range raw {
		var rec paymentRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentRecord(rec))
	}
	return payments, nil
}

func toPaymentRecord(p entities.Payment) paymentRecord {
	return paymentRecord{
		ID:            p.ID,
		WorkOrderID:   p.WorkOrderID,
		CompanyID:     p.CompanyID,
		Metodo:        string(p.Metodo),
		Valor:         decimalToRecord(p.Valor),
		DataPagamento: formatTimeKey(p.DataPagamento),
		NumeroParcela: p.NumeroParcela,
		TotalParcelas: p.TotalParcelas,
	}
}

func fromPaymentRecord(rec paymentRecord) entities.Payment {
	return entities.Payment{
		ID:            rec.ID,
		WorkOrderID:   rec.WorkOrderID,
		CompanyID:     rec.CompanyID,
		Metodo:        entities.PaymentMethod(rec.Metodo),
		Valor:         decimalFromRecord(rec.Valor),
		DataPagamento: parseTimeKey(rec.DataPagamento),
		NumeroParcela: rec.NumeroParcela,
		TotalParcelas: rec.TotalParcelas,
	}
}
