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

const (
	defaultSpacesTableName           = "spaces"
	defaultSpaceAllocationsTableName = "space_allocations"
)

type spaceRecord struct {
	ID        string `dynamodbav:"id"`
	CompanyID string `dynamodbav:"company_id"`
	Nome      string `dynamodbav:"nome"`
	CreatedAt string `dynamodbav:"created_at"`
}

type spaceAllocationRecord struct {
	ID          string `dynamodbav:"id"`
	SpaceID     string `dynamodbav:"space_id"`
	CompanyID   string `dynamodbav:"company_id"`
	WorkOrderID string `dynamodbav:"work_order_id,omitempty"`
	Inicio      string `dynamodbav:"inicio"`
	Fim         string `dynamodbav:"fim"`
}

// SpaceDynamoRepository persists the shop's physical bays.
//
// Table requirements:
//   - spaces: PK id (string); GSI company_id-index (PK company_id)

type SpaceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISpaceRepository = (*SpaceDynamoRepository)(nil)

func NewSpaceDynamoRepository(ddb *dynamodb.Client) *SpaceDynamoRepository {
	return &SpaceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SPACES_TABLE", defaultSpacesTableName),
	}
}

func (r *SpaceDynamoRepository) Create(ctx context.Context, s entities.Space) (entities.Space, error) {
	av, err := attributevalue.MarshalMap(spaceRecord{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Nome:      s.Nome,
		CreatedAt: formatTimeKey(s.CreatedAt),
	})
	if err != nil {
		return entities.Space{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Space{}, err
	}
	return s, nil
}

func (r *SpaceDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Space, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Space{}, err
	}
	if len(out.Item) == 0 {
		return entities.Space{}, nil
	}

	var rec spaceRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Space{}, err
	}
	if rec.CompanyID != companyID {
		return entities.Space{}, nil
	}
	return entities.Space{
		ID:        rec.ID,
		CompanyID: rec.CompanyID,
		Nome:      rec.Nome,
		CreatedAt: parseTimeKey(rec.CreatedAt),
	}, nil
}

func (r *SpaceDynamoRepository) CountByCompany(ctx context.Context, companyID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

// SpaceAllocationDynamoRepository persists allocation intervals.
//
// Table requirements:
//   - space_allocations: PK id (string); GSI company_id-index (PK company_id,
//     SK fim)
//
// Occupancy at an instant queries fim >= at on the index and filters
// inicio <= at, so only allocations still open at that instant are scanned.

type SpaceAllocationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISpaceAllocationRepository = (*SpaceAllocationDynamoRepository)(nil)

func NewSpaceAllocationDynamoRepository(ddb *dynamodb.Client) *SpaceAllocationDynamoRepository {
	return &SpaceAllocationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SPACE_ALLOCATIONS_TABLE", defaultSpaceAllocationsTableName),
	}
}

func (r *SpaceAllocationDynamoRepository) Create(ctx context.Context, a entities.SpaceAllocation) (entities.SpaceAllocation, error) {
	av, err := attributevalue.MarshalMap(spaceAllocationRecord{
		ID:          a.ID,
		SpaceID:     a.SpaceID,
		CompanyID:   a.CompanyID,
		WorkOrderID: a.WorkOrderID,
		Inicio:      formatTimeKey(a.Inicio),
		Fim:         formatTimeKey(a.Fim),
	})
	if err != nil {
		return entities.SpaceAllocation{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.SpaceAllocation{}, err
	}
	return a, nil
}

func (r *SpaceAllocationDynamoRepository) CountOccupiedAt(ctx context.Context, companyID string, at time.Time) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid AND fim >= :at"),
		FilterExpression:       aws.String("inicio <= :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
			":at":  &types.AttributeValueMemberS{Value: formatTimeKey(at)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}

func (r *SpaceAllocationDynamoRepository) CountEndingBetween(ctx context.Context, companyID string, start, end time.Time) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid AND fim BETWEEN :start AND :end"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":   &types.AttributeValueMemberS{Value: companyID},
			":start": &types.AttributeValueMemberS{Value: formatTimeKey(start)},
			":end":   &types.AttributeValueMemberS{Value: formatTimeKey(end)},
		},
		Select: types.SelectCount,
	})
	if err != nil {
		return 0, err
	}
	return int(out.Count), nil
}
