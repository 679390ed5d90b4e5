package repository

import (
	"context"
	"fmt"
	"time"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const DefaultBudgetsTableName = "budgets"

type lineItemAttr struct {
	CatalogItemID string  `dynamodbav:"catalog_item_id" json:"catalog_item_id"`
	Name          string  `dynamodbav:"name" json:"name"`
	UnitPrice     float64 `dynamodbav:"unit_price" json:"unit_price"`
	Unit          string  `dynamodbav:"unit" json:"unit"`
	Quantity      float64 `dynamodbav:"quantity" json:"quantity"`
	LineTotal     float64 `dynamodbav:"line_total" json:"line_total"`
}

type materialAttr struct {
	Name      string  `dynamodbav:"name" json:"name"`
	Quantity  float64 `dynamodbav:"quantity" json:"quantity"`
	Unit      string  `dynamodbav:"unit" json:"unit"`
	UnitPrice float64 `dynamodbav:"unit_price" json:"unit_price"`
	LineTotal float64 `dynamodbav:"line_total" json:"line_total"`
}

type clientAttr struct {
	Name         string `dynamodbav:"name"`
	Phone        string `dynamodbav:"phone"`
	Observations string `dynamodbav:"observations"`
}

type budgetItem struct {
	ID                      string         `dynamodbav:"id"`
	IssueDate               string         `dynamodbav:"issue_date"`
	ValidUntil              string         `dynamodbav:"valid_until"`
	Client                  clientAttr     `dynamodbav:"client"`
	LaborItems              []lineItemAttr `dynamodbav:"labor_items"`
	Materials               []materialAttr `dynamodbav:"materials"`
	MaterialsIncluded       bool           `dynamodbav:"materials_included"`
	ClientSuppliesMaterials bool           `dynamodbav:"client_supplies_materials"`
	TaxRate                 float64        `dynamodbav:"tax_rate"`
	DiscountPercent         float64        `dynamodbav:"discount_percent"`
	ManualAdjustment        float64        `dynamodbav:"manual_adjustment"`
	LaborSubtotal           float64        `dynamodbav:"labor_subtotal"`
	MaterialsSubtotal       float64        `dynamodbav:"materials_subtotal"`
	Total                   float64        `dynamodbav:"total"`
	Status                  string         `dynamodbav:"status"`
}

// BudgetDynamoRepository persists budgets in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Status has its own UpdateItem path so that accepting or rejecting a budget
// never rewrites its lines or totals.
type BudgetDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb DynamoDBAPI, tableName string, log *zap.Logger) *BudgetDynamoRepository {
	if tableName == "" {
		tableName = DefaultBudgetsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName, log: log.Named("budget.dynamodb")}
}

// List scans the table. Ordering is left to the caller.
func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	out := []entities.Budget{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		var items []budgetItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromBudgetItem(it))
		}
	}
	return out, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// Upsert writes the whole budget.
func (r *BudgetDynamoRepository) Upsert(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.log.Error("put item failed", zap.String("id", b.ID), zap.Error(err))
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

// UpdateStatus sets only the status attribute. A missing budget yields the
// zero value and no error.
func (r *BudgetDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BudgetStatus) (entities.Budget, error) {
	return r.update(ctx, id, func() (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status"
		vals := map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *BudgetDynamoRepository) update(
	ctx context.Context,
	id string,
	build func() (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Budget, error) {
	updateExpr, values, names := build()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Budget{}, nil
	}
	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

func toBudgetItem(b entities.Budget) budgetItem {
	return budgetItem{
		ID:                      b.ID,
		IssueDate:               formatTime(b.IssueDate),
		ValidUntil:              formatTime(b.ValidUntil),
		Client:                  clientAttr(b.Client),
		LaborItems:              toLineAttrs(b.LaborItems),
		Materials:               toMaterialAttrs(b.Materials),
		MaterialsIncluded:       b.MaterialsIncluded,
		ClientSuppliesMaterials: b.ClientSuppliesMaterials,
		TaxRate:                 b.TaxRatePercent,
		DiscountPercent:         b.DiscountPercent,
		ManualAdjustment:        b.ManualAdjustment,
		LaborSubtotal:           b.LaborSubtotal,
		MaterialsSubtotal:       b.MaterialsSubtotal,
		Total:                   b.Total,
		Status:                  string(b.Status),
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	return entities.Budget{
		ID:                      it.ID,
		IssueDate:               parseTime(it.IssueDate),
		ValidUntil:              parseTime(it.ValidUntil),
		Client:                  entities.ClientInfo(it.Client),
		LaborItems:              fromLineAttrs(it.LaborItems),
		Materials:               fromMaterialAttrs(it.Materials),
		MaterialsIncluded:       it.MaterialsIncluded,
		ClientSuppliesMaterials: it.ClientSuppliesMaterials,
		TaxRatePercent:          it.TaxRate,
		DiscountPercent:         it.DiscountPercent,
		ManualAdjustment:        it.ManualAdjustment,
		LaborSubtotal:           it.LaborSubtotal,
		MaterialsSubtotal:       it.MaterialsSubtotal,
		Total:                   it.Total,
		Status:                  entities.BudgetStatus(it.Status),
	}
}

func toLineAttrs(lines []entities.LineItem) []lineItemAttr {
	out := make([]lineItemAttr, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineItemAttr{
			CatalogItemID: l.CatalogItemID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			Unit:          string(l.Unit),
			Quantity:      l.Quantity,
			LineTotal:     l.LineTotal,
		})
	}
	return out
}

func fromLineAttrs(attrs []lineItemAttr) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(attrs))
	for _, l := range attrs {
		out = append(out, entities.LineItem{
			CatalogItemID: l.CatalogItemID,
			Name:          l.Name,
			UnitPrice:     l.UnitPrice,
			Unit:          entities.UnitType(l.Unit),
			Quantity:      l.Quantity,
			LineTotal:     l.LineTotal,
		})
	}
	return out
}

func toMaterialAttrs(materials []entities.RequiredMaterial) []materialAttr {
	out := make([]materialAttr, 0, len(materials))
	for _, m := range materials {
		out = append(out, materialAttr(m))
	}
	return out
}

func fromMaterialAttrs(attrs []materialAttr) []entities.RequiredMaterial {
	out := make([]entities.RequiredMaterial, 0, len(attrs))
	for _, m := range attrs {
		out = append(out, entities.RequiredMaterial(m))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
