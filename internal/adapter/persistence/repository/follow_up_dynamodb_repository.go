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
)

const defaultFollowUpsTableName = "follow_ups"

type followUpRecord struct {
	ID          string `dynamodbav:"id"`
	CompanyID   string `dynamodbav:"company_id"`
	WorkOrderID string `dynamodbav:"work_order_id"`
	ClientID    string `dynamodbav:"client_id"`
	ServiceID   string `dynamodbav:"service_id"`
	DataContato string `dynamodbav:"data_contato"`
	Status      string `dynamodbav:"status"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// FollowUpDynamoRepository lists, counts and closes scheduled post-sale
// contacts. Creation rides the work-order transaction.
//
// Table requirements:
//   - follow_ups: PK id (string); GSI company_id-index (PK company_id,
//     SK data_contato)
//
// The dashboard counters are Select COUNT queries so pending/done tallies do
// not pay for item transfer.

type FollowUpDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IFollowUpRepository = (*FollowUpDynamoRepository)(nil)

func NewFollowUpDynamoRepository(ddb *dynamodb.Client) *FollowUpDynamoRepository {
	return &FollowUpDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("FOLLOW_UPS_TABLE", defaultFollowUpsTableName),
	}
}

func (r *FollowUpDynamoRepository) ListByCompany(ctx context.Context, companyID string, status *entities.FollowUpStatus) ([]entities.FollowUp, error) {
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

	followUps := make([]entities.FollowUp, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec followUpRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		followUps = append(followUps, fromFollowUpRecord(rec))
	}
	return followUps, nil
}

func (r *FollowUpDynamoRepository) CountPendingByContactPeriod(ctx context.Context, companyID string, start, end time.Time) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid AND data_contato BETWEEN :start AND :end"),
		FilterExpression:       aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: companyID},
			":start":  &types.AttributeValueMemberS{Value: formatTimeKey(start)},
			":end":    &types.AttributeValueMemberS{Value: formatTimeKey(end)},
			":status": &types.AttributeValueMemberS{Value: string(entities.FollowUpStatusPendente)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *FollowUpDynamoRepository) CountDoneByUpdatedPeriod(ctx context.Context, companyID string, start, end time.Time) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		FilterExpression:       aws.String("#status = :status AND updated_at BETWEEN :start AND :end"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: companyID},
			":start":  &types.AttributeValueMemberS{Value: formatTimeKey(start)},
			":end":    &types.AttributeValueMemberS{Value: formatTimeKey(end)},
			":status": &types.AttributeValueMemberS{Value: string(entities.FollowUpStatusConcluido)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *FollowUpDynamoRepository) MarkDone(ctx context.Context, companyID, id string, when time.Time) (entities.FollowUp, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND company_id = :cid"),
		UpdateExpression:    aws.String("SET #status = :status, updated_at = :ua"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":    &types.AttributeValueMemberS{Value: companyID},
			":status": &types.AttributeValueMemberS{Value: string(entities.FollowUpStatusConcluido)},
			":ua":     &types.AttributeValueMemberS{Value: formatTimeKey(when)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FollowUp{}, nil
		}
		return entities.FollowUp{}, err
	}

	var rec followUpRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.FollowUp{}, err
	}
	return fromFollowUpRecord(rec), nil
}

func toFollowUpRecord(f entities.FollowUp) followUpRecord {
	return followUpRecord{
		ID:          f.ID,
		CompanyID:   f.CompanyID,
		WorkOrderID: f.WorkOrderID,
		ClientID:    f.ClientID,
		ServiceID:   f.ServiceID,
		DataContato: formatTimeKey(f.DataContato),
		Status:      string(f.Status),
		UpdatedAt:   formatTimeKey(f.UpdatedAt),
	}
}

func fromFollowUpRecord(rec followUpRecord) entities.FollowUp {
	return entities.FollowUp{
		ID:          rec.ID,
		CompanyID:   rec.CompanyID,
		WorkOrderID: rec.WorkOrderID,
		ClientID:    rec.ClientID,
		ServiceID:   rec.ServiceID,
		DataContato: parseTimeKey(rec.DataContato),
		Status:      entities.FollowUpStatus(rec.Status),
		UpdatedAt:   parseTimeKey(rec.UpdatedAt),
	}
}
