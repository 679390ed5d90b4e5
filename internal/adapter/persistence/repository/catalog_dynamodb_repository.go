package repository

import (
	"context"
	"fmt"
	"sort"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const DefaultProductsTableName = "products"

type catalogItemRecord struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	UnitPrice float64 `dynamodbav:"unit_price"`
	Unit      string  `dynamodbav:"unit"`
	Category  string  `dynamodbav:"category"`
}

// CatalogDynamoRepository persists catalog items in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoDBAPI, tableName string, log *zap.Logger) *CatalogDynamoRepository {
	if tableName == "" {
		tableName = DefaultProductsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName, log: log.Named("catalog.dynamodb")}
}

// List returns every item sorted by category and name.
func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	out := []entities.CatalogItem{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}
		var recs []catalogItemRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, err
		}
		for _, rec := range recs {
			out = append(out, fromCatalogRecord(rec))
		}
	}
	sortCatalog(out)
	return out, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var rec catalogItemRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogRecord(rec), nil
}

func (r *CatalogDynamoRepository) Upsert(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogRecord(item))
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.log.Error("put item failed", zap.String("id", item.ID), zap.Error(err))
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	return err
}

func toCatalogRecord(it entities.CatalogItem) catalogItemRecord {
	return catalogItemRecord{
		ID:        it.ID,
		Name:      it.Name,
		UnitPrice: it.UnitPrice,
		Unit:      string(it.Unit),
		Category:  it.Category,
	}
}

func fromCatalogRecord(rec catalogItemRecord) entities.CatalogItem {
	return entities.CatalogItem{
		ID:        rec.ID,
		Name:      rec.Name,
		UnitPrice: rec.UnitPrice,
		Unit:      entities.UnitType(rec.Unit),
		Category:  rec.Category,
	}
}

func sortCatalog(items []entities.CatalogItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
}
