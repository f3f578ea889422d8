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

const defaultCompaniesTableName = "companies"

type companyRecord struct {
	ID           string  `dynamodbav:"id"`
	NomeFantasia string  `dynamodbav:"nome_fantasia"`
	Plano        *string `dynamodbav:"plano,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
}

// CompanyDynamoRepository reads tenants. Provisioning writes happen in
// another service, so this repository is read-only.

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Company, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Company{}, err
	}
	if len(out.Item) == 0 {
		return entities.Company{}, nil
	}

	var rec companyRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Company{}, err
	}
	return entities.Company{
		ID:           rec.ID,
		NomeFantasia: rec.NomeFantasia,
		Plano:        rec.Plano,
		CreatedAt:    parseTimeKey(rec.CreatedAt),
	}, nil
}
