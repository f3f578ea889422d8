package repository

import (
	"context"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultVehiclesTableName = "vehicles"

type vehicleRecord struct {
	ID        string `dynamodbav:"id"`
	CompanyID string `dynamodbav:"company_id"`
	ClientID  string `dynamodbav:"client_id"`
	Placa     string `dynamodbav:"placa"`
	Modelo    string `dynamodbav:"modelo,omitempty"`
	Cor       string `dynamodbav:"cor,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// VehicleDynamoRepository persists vehicles.
//
// Table requirements:
//   - vehicles: PK id (string); GSI company_id-index (PK company_id, SK placa)

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	av, err := attributevalue.MarshalMap(toVehicleRecord(v))
	if err != nil {
		return entities.Vehicle{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var rec vehicleRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Vehicle{}, err
	}
	if rec.CompanyID != companyID {
		return entities.Vehicle{}, nil
	}
	return fromVehicleRecord(rec), nil
}

func (r *VehicleDynamoRepository) ListByCompany(ctx context.Context, companyID string) ([]entities.Vehicle, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
	})
	if err != nil {
		return nil, err
	}

	vehicles := make([]entities.Vehicle, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec vehicleRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, fromVehicleRecord(rec))
	}
	return vehicles, nil
}

func toVehicleRecord(v entities.Vehicle) vehicleRecord {
	return vehicleRecord{
		ID:        v.ID,
		CompanyID: v.CompanyID,
		ClientID:  v.ClientID,
		Placa:     v.Placa,
		Modelo:    v.Modelo,
		Cor:       v.Cor,
		CreatedAt: formatTimeKey(v.CreatedAt),
	}
}

func fromVehicleRecord(rec vehicleRecord) entities.Vehicle {
	return entities.Vehicle{
		ID:        rec.ID,
		CompanyID: rec.CompanyID,
		ClientID:  rec.ClientID,
		Placa:     rec.Placa,
		Modelo:    rec.Modelo,
		Cor:       rec.Cor,
		CreatedAt: parseTimeKey(rec.CreatedAt),
	}
}
