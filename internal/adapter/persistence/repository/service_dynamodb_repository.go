package repository

import (
	"context"
	"strings"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceRecord struct {
	ID             string `dynamodbav:"id"`
	CompanyID      string `dynamodbav:"company_id"`
	Nome           string `dynamodbav:"nome"`
	Descricao      string `dynamodbav:"descricao,omitempty"`
	Categoria      string `dynamodbav:"categoria,omitempty"`
	DuracaoMinutos *int   `dynamodbav:"duracao_minutos,omitempty"`
	PrecoBase      string `dynamodbav:"preco_base"`
	Ativo          bool   `dynamodbav:"ativo"`
	GeraPosVenda   bool   `dynamodbav:"gera_pos_venda"`
	DiasFollowUp   *int   `dynamodbav:"dias_follow_up,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository persists the service catalog.
//
// Table requirements:
//   - services: PK id (string); GSI company_id-index (PK company_id, SK nome)
//
// The search filter is applied in memory after the company query; catalogs
// are small enough that a contains() filter expression would not save much
// and would complicate case-insensitive matching.

type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceRecord(s))
	if err != nil {
		return entities.Service{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var rec serviceRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Service{}, err
	}
	if rec.CompanyID != companyID {
		return entities.Service{}, nil
	}
	return fromServiceRecord(rec), nil
}

func (r *ServiceDynamoRepository) ListByCompany(ctx context.Context, companyID, search string) ([]entities.Service, error) {
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

	search = strings.ToLower(strings.TrimSpace(search))
	services := make([]entities.Service, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec serviceRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		if search != "" && !strings.Contains(strings.ToLower(rec.Nome), search) {
			continue
		}
		services = append(services, fromServiceRecord(rec))
	}
	return services, nil
}

func (r *ServiceDynamoRepository) ListByIDs(ctx context.Context, companyID string, ids []string) ([]entities.Service, error) {
	services := make([]entities.Service, 0, len(ids))
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
				var rec serviceRecord
				if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
					return nil, err
				}
				if rec.CompanyID != companyID {
					continue
				}
				services = append(services, fromServiceRecord(rec))
			}
			if len(out.UnprocessedKeys) == 0 {
				break
			}
			in.RequestItems = out.UnprocessedKeys
		}
	}
	return services, nil
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceRecord(s))
	if err != nil {
		return entities.Service{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND company_id = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: s.CompanyID},
		},
	})
	if err != nil {
		return entities.Service{}, err
	}
	return s, nil
}

func toServiceRecord(s entities.Service) serviceRecord {
	return serviceRecord{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		Nome:           s.Nome,
		Descricao:      s.Descricao,
		Categoria:      s.Categoria,
		DuracaoMinutos: s.DuracaoMinutos,
		PrecoBase:      decimalToRecord(s.PrecoBase),
		Ativo:          s.Ativo,
		GeraPosVenda:   s.GeraPosVenda,
		DiasFollowUp:   s.DiasFollowUp,
		CreatedAt:      formatTimeKey(s.CreatedAt),
		UpdatedAt:      formatTimeKey(s.UpdatedAt),
	}
}

func fromServiceRecord(rec serviceRecord) entities.Service {
	return entities.Service{
		ID:             rec.ID,
		CompanyID:      rec.CompanyID,
		Nome:           rec.Nome,
		Descricao:      rec.Descricao,
		Categoria:      rec.Categoria,
		DuracaoMinutos: rec.DuracaoMinutos,
		PrecoBase:      decimalFromRecord(rec.PrecoBase),
		Ativo:          rec.Ativo,
		GeraPosVenda:   rec.GeraPosVenda,
		DiasFollowUp:   rec.DiasFollowUp,
		CreatedAt:      parseTimeKey(rec.CreatedAt),
		UpdatedAt:      parseTimeKey(rec.UpdatedAt),
	}
}
