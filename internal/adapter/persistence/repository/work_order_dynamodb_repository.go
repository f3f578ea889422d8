package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultWorkOrdersTableName     = "work_orders"
	defaultWorkOrderItemsTableName = "work_order_items"
	defaultSequencesTableName      = "work_order_sequences"

	batchGetLimit = 100
)

type workOrderRecord struct {
	ID               string `dynamodbav:"id"`
	CompanyID        string `dynamodbav:"company_id"`
	NumeroSequencial int64  `dynamodbav:"numero_sequencial"`
	ClientID         string `dynamodbav:"client_id"`
	VehicleID        string `dynamodbav:"vehicle_id"`
	Status           string `dynamodbav:"status"`
	TotalBruto       string `dynamodbav:"total_bruto"`
	DescontoTotal    string `dynamodbav:"desconto_total"`
	AcrescimoTotal   string `dynamodbav:"acrescimo_total"`
	TotalLiquido     string `dynamodbav:"total_liquido"`
	FormaRecebimento string `dynamodbav:"forma_recebimento,omitempty"`
	AgendamentoID    string `dynamodbav:"agendamento_id,omitempty"`
	DataAbertura     string `dynamodbav:"data_abertura"`
	DataConclusao    string `dynamodbav:"data_conclusao,omitempty"`
}

type orderItemRecord struct {
	ID            string `dynamodbav:"id"`
	WorkOrderID   string `dynamodbav:"work_order_id"`
	ServiceID     string `dynamodbav:"service_id"`
	Quantidade    int    `dynamodbav:"quantidade"`
	PrecoUnitario string `dynamodbav:"preco_unitario"`
	Desconto      string `dynamodbav:"desconto"`
	Acrescimo     string `dynamodbav:"acrescimo"`
}

type sequenceRecord struct {
	CompanyID string `dynamodbav:"company_id"`
	LastValue int64  `dynamodbav:"last_value"`
}

// WorkOrderDynamoRepository persists work orders, their line items and the
// per-company sequence in DynamoDB.
//
// Table requirements:
//   - work_orders: PK id (string); GSI company_id-index (PK company_id,
//     SK data_abertura)
//   - work_order_items: PK id (string); GSI work_order_id-index
//   - work_order_sequences: PK company_id (string)
//
// CreateAtomic also writes into the payments/receivables/follow_ups tables so
// the whole bundle commits or cancels as one TransactWriteItems call. The
// transaction's first element advances the company sequence under a condition
// on the previously observed value; that conditional failure is how two
// concurrent creations for the same company are kept from sharing a number.

type WorkOrderDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	itemsTableName  string
	seqTableName    string
	paymentsTable   string
	receivablesTbl  string
	followUpsTable  string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb *dynamodb.Client) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("WORK_ORDERS_TABLE", defaultWorkOrdersTableName),
		itemsTableName: getenvDefault("WORK_ORDER_ITEMS_TABLE", defaultWorkOrderItemsTableName),
		seqTableName:   getenvDefault("WORK_ORDER_SEQUENCES_TABLE", defaultSequencesTableName),
		paymentsTable:  getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		receivablesTbl: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
		followUpsTable: getenvDefault("FOLLOW_UPS_TABLE", defaultFollowUpsTableName),
	}
}

func (r *WorkOrderDynamoRepository) LastSequence(ctx context.Context, companyID string) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.seqTableName),
		Key: map[string]types.AttributeValue{
			"company_id": &types.AttributeValueMemberS{Value: companyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}

	var rec sequenceRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return 0, err
	}
	return rec.LastValue, nil
}

func (r *WorkOrderDynamoRepository) CreateAtomic(ctx context.Context, bundle entities.WorkOrderBundle) error {
	items := make([]types.TransactWriteItem, 0, 2+len(bundle.Items)+len(bundle.Payments)+len(bundle.FollowUps)+1)

	// The conditional sequence advance is what makes (company, sequence)
	// unique: a writer that observed a stale last_value cancels here.
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(r.seqTableName),
			Key: map[string]types.AttributeValue{
				"company_id": &types.AttributeValueMemberS{Value: bundle.Order.CompanyID},
			},
			UpdateExpression:    aws.String("SET #lv = :next"),
			ConditionExpression: aws.String("attribute_not_exists(#lv) OR #lv = :prev"),
			ExpressionAttributeNames: map[string]string{
				"#lv": "last_value",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":next": &types.AttributeValueMemberN{Value: strconv.FormatInt(bundle.Order.NumeroSequencial, 10)},
				":prev": &types.AttributeValueMemberN{Value: strconv.FormatInt(bundle.PrevSequence, 10)},
			},
		},
	})

	orderPut, err := transactPut(r.tableName, toWorkOrderRecord(bundle.Order))
	if err != nil {
		return err
	}
	items = append(items, orderPut)

	for _, it := range bundle.Items {
		put, err := transactPut(r.itemsTableName, toOrderItemRecord(it))
		if err != nil {
			return err
		}
		items = append(items, put)
	}
	for _, p := range bundle.Payments {
		put, err := transactPut(r.paymentsTable, toPaymentRecord(p))
		if err != nil {
			return err
		}
		items = append(items, put)
	}
	if bundle.Receivable != nil {
		put, err := transactPut(r.receivablesTbl, toReceivableRecord(*bundle.Receivable))
		if err != nil {
			return err
		}
		items = append(items, put)
	}
	for _, f := range bundle.FollowUps {
		put, err := transactPut(r.followUpsTable, toFollowUpRecord(f))
		if err != nil {
			return err
		}
		items = append(items, put)
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return interfaces.ErrSequenceConflict
				}
			}
		}
		return err
	}
	return nil
}

func transactPut(tableName string, record any) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(record)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, companyID, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var rec workOrderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.WorkOrder{}, err
	}
	if rec.CompanyID != companyID {
		return entities.WorkOrder{}, nil
	}
	return fromWorkOrderRecord(rec), nil
}

func (r *WorkOrderDynamoRepository) ListByCompany(ctx context.Context, companyID string, status *entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: companyID},
		},
		// Newest opened first.
		ScanIndexForward: aws.Bool(false),
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

	orders := make([]entities.WorkOrder, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec workOrderRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		orders = append(orders, fromWorkOrderRecord(rec))
	}
	return orders, nil
}

func (r *WorkOrderDynamoRepository) ListItemsByWorkOrderID(ctx context.Context, workOrderID string) ([]entities.WorkOrderItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTableName),
		IndexName:              aws.String(workOrderIDIndex),
		KeyConditionExpression: aws.String("work_order_id = :wid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":wid": &types.AttributeValueMemberS{Value: workOrderID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.WorkOrderItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec orderItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		items = append(items, fromOrderItemRecord(rec))
	}
	return items, nil
}

func (r *WorkOrderDynamoRepository) UpdateMutable(ctx context.Context, companyID, id string, status *entities.WorkOrderStatus, formaRecebimento *string, dataConclusao *time.Time) (entities.WorkOrder, error) {
	expr := ""
	values := map[string]types.AttributeValue{
		":cid": &types.AttributeValueMemberS{Value: companyID},
	}
	names := map[string]string{}

	appendSet := func(clause string) {
		if expr == "" {
			expr = "SET " + clause
			return
		}
		expr += ", " + clause
	}
	if status != nil {
		appendSet("#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*status)}
	}
	if formaRecebimento != nil {
		appendSet("#fr = :fr")
		names["#fr"] = "forma_recebimento"
		values[":fr"] = &types.AttributeValueMemberS{Value: *formaRecebimento}
	}
	if dataConclusao != nil {
		appendSet("#dc = :dc")
		names["#dc"] = "data_conclusao"
		values[":dc"] = &types.AttributeValueMemberS{Value: formatTimeKey(*dataConclusao)}
	}
	if expr == "" {
		// Nothing to change; behave as a tenant-checked read.
		return r.GetByID(ctx, companyID, id)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND company_id = :cid"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}

	var rec workOrderRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderRecord(rec), nil
}

func (r *WorkOrderDynamoRepository) ListRefsByPeriod(ctx context.Context, companyID string, start, end time.Time) ([]entities.WorkOrderRef, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(companyIDIndex),
		KeyConditionExpression: aws.String("company_id = :cid AND data_abertura BETWEEN :start AND :end"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid":   &types.AttributeValueMemberS{Value: companyID},
			":start": &types.AttributeValueMemberS{Value: formatTimeKey(start)},
			":end":   &types.AttributeValueMemberS{Value: formatTimeKey(end)},
		},
	})
	if err != nil {
		return nil, err
	}

	refs := make([]entities.WorkOrderRef, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec workOrderRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		refs = append(refs, toWorkOrderRef(rec))
	}
	return refs, nil
}

func (r *WorkOrderDynamoRepository) ListRefsByIDs(ctx context.Context, companyID string, ids []string) ([]entities.WorkOrderRef, error) {
	refs := make([]entities.WorkOrderRef, 0, len(ids))
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
				var rec workOrderRecord
				if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
					return nil, err
				}
				if rec.CompanyID != companyID {
					continue
				}
				refs = append(refs, toWorkOrderRef(rec))
			}
			if len(out.UnprocessedKeys) == 0 {
				break
			}
			in.RequestItems = out.UnprocessedKeys
		}
	}
	return refs, nil
}

func toWorkOrderRecord(o entities.WorkOrder) workOrderRecord {
	return workOrderRecord{
		ID:               o.ID,
		CompanyID:        o.CompanyID,
		NumeroSequencial: o.NumeroSequencial,
		ClientID:         o.ClientID,
		VehicleID:        o.VehicleID,
		Status:           string(o.Status),
		TotalBruto:       decimalToRecord(o.TotalBruto),
		DescontoTotal:    decimalToRecord(o.DescontoTotal),
		AcrescimoTotal:   decimalToRecord(o.AcrescimoTotal),
		TotalLiquido:     decimalToRecord(o.TotalLiquido),
		FormaRecebimento: o.FormaRecebimento,
		AgendamentoID:    o.AgendamentoID,
		DataAbertura:     formatTimeKey(o.DataAbertura),
		DataConclusao:    formatOptionalTimeKey(o.DataConclusao),
	}
}

func fromWorkOrderRecord(rec workOrderRecord) entities.WorkOrder {
	return entities.WorkOrder{
		ID:               rec.ID,
		CompanyID:        rec.CompanyID,
		NumeroSequencial: rec.NumeroSequencial,
		ClientID:         rec.ClientID,
		VehicleID:        rec.VehicleID,
		Status:           entities.WorkOrderStatus(rec.Status),
		TotalBruto:       decimalFromRecord(rec.TotalBruto),
		DescontoTotal:    decimalFromRecord(rec.DescontoTotal),
		AcrescimoTotal:   decimalFromRecord(rec.AcrescimoTotal),
		TotalLiquido:     decimalFromRecord(rec.TotalLiquido),
		FormaRecebimento: rec.FormaRecebimento,
		AgendamentoID:    rec.AgendamentoID,
		DataAbertura:     parseTimeKey(rec.DataAbertura),
		DataConclusao:    parseOptionalTimeKey(rec.DataConclusao),
	}
}

func toWorkOrderRef(rec workOrderRecord) entities.WorkOrderRef {
	return entities.WorkOrderRef{
		ID:           rec.ID,
		ClientID:     rec.ClientID,
		Status:       entities.WorkOrderStatus(rec.Status),
		DataAbertura: parseTimeKey(rec.DataAbertura),
	}
}

func toOrderItemRecord(it entities.WorkOrderItem) orderItemRecord {
	return orderItemRecord{
		ID:            it.ID,
		WorkOrderID:   it.WorkOrderID,
		ServiceID:     it.ServiceID,
		Quantidade:    it.Quantidade,
		PrecoUnitario: decimalToRecord(it.PrecoUnitario),
		Desconto:      decimalToRecord(it.Desconto),
		Acrescimo:     decimalToRecord(it.Acrescimo),
	}
}

func fromOrderItemRecord(rec orderItemRecord) entities.WorkOrderItem {
	return entities.WorkOrderItem{
		ID:            rec.ID,
		WorkOrderID:   rec.WorkOrderID,
		ServiceID:     rec.ServiceID,
		Quantidade:    rec.Quantidade,
		PrecoUnitario: decimalFromRecord(rec.PrecoUnitario),
		Desconto:      decimalFromRecord(rec.Desconto),
		Acrescimo:     decimalFromRecord(rec.Acrescimo),
	}
}
