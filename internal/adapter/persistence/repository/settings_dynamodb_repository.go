package repository

import (
	"context"

	"presubuild/internal/domain/entities"
	"presubuild/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

const DefaultSettingsTableName = "settings"

type settingsData struct {
	BusinessName      string  `dynamodbav:"business_name" json:"business_name"`
	OwnerName         string  `dynamodbav:"owner_name" json:"owner_name"`
	Email             string  `dynamodbav:"email" json:"email"`
	Phone             string  `dynamodbav:"phone" json:"phone"`
	Address           string  `dynamodbav:"address" json:"address"`
	LogoImage         string  `dynamodbav:"logo_image,omitempty" json:"logo_image,omitempty"`
	CurrencySymbol    string  `dynamodbav:"currency_symbol" json:"currency_symbol"`
	DefaultTaxPercent float64 `dynamodbav:"default_tax_percent" json:"default_tax_percent"`
}

type settingsItem struct {
	ID   string       `dynamodbav:"id"`
	Data settingsData `dynamodbav:"data"`
}

// SettingsDynamoRepository keeps the single settings item under id "main".
type SettingsDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	log       *zap.Logger
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb DynamoDBAPI, tableName string, log *zap.Logger) *SettingsDynamoRepository {
	if tableName == "" {
		tableName = DefaultSettingsTableName
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsDynamoRepository{ddb: ddb, tableName: tableName, log: log.Named("settings.dynamodb")}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context) (entities.BusinessSettings, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(entities.SettingsID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BusinessSettings{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.BusinessSettings{}, false, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BusinessSettings{}, false, err
	}
	return entities.BusinessSettings(it.Data), true, nil
}

func (r *SettingsDynamoRepository) Set(ctx context.Context, s entities.BusinessSettings) error {
	av, err := attributevalue.MarshalMap(settingsItem{ID: entities.SettingsID, Data: settingsData(s)})
	if err != nil {
		return err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		r.log.Error("put settings failed", zap.Error(err))
		return err
	}
	return nil
}
