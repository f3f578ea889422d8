package repository

import (
	"context"
	"errors"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultReceivablesTableName = "receivables"

type receivableRecord struct {
	ID            string `dynamodbav:"id"`
	CompanyID     string `dynamodbav:"company_id"`
	ClientID      string `dynamodbav:"client_id"`
	WorkOrderID   string `dynamodbav:"work_order_id"`
	ValorPrevisto string `dynamodbav:"valor_previsto"`
	DataPrevista  string `dynamodbav:"data_prevista"`
	Status        string `dynamodbav:"status"`
	ValorPago     string `dynamodbav:"valor_pago,omitempty"`
	DataPagamento string `dynamodbav:"data_pagamento,omitempty"`
}

// ReceivableDynamoRepository reads and settles receivables. Creation happens
// inside the work-order transaction.
//
// Table requirements:
//   - receivables: PK id (string); GSI work_order_id-index;
//     GSI company_id-index (PK company_id, SK data_prevista);
//     GSI company_id-data_pagamento-index (PK company_id, SK data_pagamento)
//
// data_pagamento is omitted until the receivable is settled, so the payment
// date index is sparse: it only ever holds settled rows, which is exactly the
// set ListPaidInPeriod wants.

type ReceivableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb *dynamodb.Client) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
	}
}

func (r *ReceivableDynamoRepository) ListByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.Receivable, error) {
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
	return unmarshalReceivables(out.Items)
}

func (r *ReceivableDynamoRepository) ListByCompany(ctx context.Context, companyID string, status *entities.ReceivableStatus) ([]entities.Receivable, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	}
	if status != nil {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(*status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalReceivables(out.Items)
}

func (r *ReceivableDynamoRepository) ListPaidInPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entities.Receivable, error) {
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
	return unmarshalReceivables(out.Items)
}

func (r *ReceivableDynamoRepository) Settle(ctx context.Context, companyID, id string, valorPago decimal.Decimal, dataPagamento time.Time) (entities.Receivable, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND company_id = :cid AND #status = :aberto"),
		UpdateExpression:    aws.String("SET #status = :pago, valor_pago = :vp, data_pagamento = :dp"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: companyID},
			":aberto": &types.AttributeValueMemberS{Value: string(entities.ReceivableStatusAberto)},
			":pago":   &types.AttributeValueMemberS{Value: string(entities.ReceivableStatusPago)},
			":vp":     &types.AttributeValueMemberS{Value: decimalToRecord(valorPago)},
			":dp":     &types.AttributeValueMemberS{Value: formatTimeKey(dataPagamento)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Receivable{}, nil
		}
		return entities.Receivable{}, err
	}

	var rec receivableRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Receivable{}, err
	}
	return fromReceivableRecord(rec), nil
}

func unmarshalReceivables(raw []map[string]types.AttributeValue) ([]entities.Receivable, error) {
	receivables := make([]entities.Receivable, 0, len(raw))
	for _, item := range raw {
		var rec receivableRecord
		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			return nil, err
		}
		receivables = append(receivables, fromReceivableRecord(rec))
	}
	return receivables, nil
}

func toReceivableRecord(rc entities.Receivable) receivableRecord {
	rec := receivableRecord{
		ID:            rc.ID,
		CompanyID:     rc.CompanyID,
		ClientID:      rc.ClientID,
		WorkOrderID:   rc.WorkOrderID,
		ValorPrevisto: decimalToRecord(rc.ValorPrevisto),
		DataPrevista:  formatTimeKey(rc.DataPrevista),
		Status:        string(rc.Status),
		DataPagamento: formatOptionalTimeKey(rc.DataPagamento),
	}
	if rc.ValorPago != nil {
		rec.ValorPago = decimalToRecord(*rc.ValorPago)
	}
	return rec
}

func fromReceivableRecord(rec receivableRecord) entities.Receivable {
	return entities.Receivable{
		ID:            rec.ID,
		CompanyID:     rec.CompanyID,
		ClientID:      rec.ClientID,
		WorkOrderID:   rec.WorkOrderID,
		ValorPrevisto: decimalFromRecord(rec.ValorPrevisto),
		DataPrevista:  parseTimeKey(rec.DataPrevista),
		Status:        entities.ReceivableStatus(rec.Status),
		ValorPago:     optionalDecimalFromRecord(rec.ValorPago),
		DataPagamento: parseOptionalTimeKey(rec.DataPagamento),
	}
}
