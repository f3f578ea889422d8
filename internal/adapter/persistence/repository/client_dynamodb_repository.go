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

const defaultClientsTableName = "clients"

type clientRecord struct {
	ID           string `dynamodbav:"id"`
	CompanyID    string `dynamodbav:"company_id"`
	NomeCompleto string `dynamodbav:"nome_completo"`
	Telefone     string `dynamodbav:"telefone,omitempty"`
	Email        string `dynamodbav:"email,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists clients.
//
// Table requirements:
//   - clients: PK id (string); GSI company_id-index (PK company_id,
//     SK nome_completo)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientRecord(c))
	if err != nil {
		return entities.Client{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var rec clientRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Client{}, err
	}
	if rec.CompanyID != companyID {
		return entities.Client{}, nil
	}
	return fromClientRecord(rec), nil
}

func (r *ClientDynamoRepository) ListByCompany(ctx context.Context, companyID string) ([]entities.Client, error) {
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

	clients := make([]entities.Client, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec clientRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientRecord(rec))
	}
	return clients, nil
}

func (r *ClientDynamoRepository) ListByIDs(ctx context.Context, companyID string, ids []string) ([]entities.Client, error) {
	clients := make([]entities.Client, 0, len(ids))
	for offset := 0; offset < len(ids); offset += batchGetLimit {
		limit := offset + batchGetLimit
		if limit > len(ids) {
			limit = len(ids)
		}
		keys := make([]map[string]types.AttributeValue, 0, limit-offset)
		for _, id := range ids[offset:limit] {
			keys = append(keys, map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			})
		}

		in := &dynamodb.BatchGetItemInput{
			RequestItems: map[string]types.KeysAndAttributes{
				r.tableName: {Keys: keys},
			},
		}
		for len(in.RequestItems) > 0 {
			out, err := r.ddb.BatchGetItem(ctx, in)
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var rec clientRecord
				if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
					return nil, err
				}
				if rec.CompanyID != companyID {
					continue
				}
				clients = append(clients, fromClientRecord(rec))
			}
			if len(out.UnprocessedKeys) == 0 {
				break
			}
			in.RequestItems = out.UnprocessedKeys
		}
	}
	return clients, nil
}

func toClientRecord(c entities.Client) clientRecord {
	return clientRecord{
		ID:           c.ID,
		CompanyID:    c.CompanyID,
		NomeCompleto: c.NomeCompleto,
		Telefone:     c.Telefone,
		Email:        c.Email,
		CreatedAt:    formatTimeKey(c.CreatedAt),
	}
}

func fromClientRecord(rec clientRecord) entities.Client {
	return entities.Client{
		ID:           rec.ID,
		CompanyID:    rec.CompanyID,
		NomeCompleto: rec.NomeCompleto,
		Telefone:     rec.Telefone,
		Email:        rec.Email,
		CreatedAt:    parseTimeKey(rec.CreatedAt),
	}
}
