package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoAPI is the subset of the DynamoDB client the store uses.
// *dynamodb.Client satisfies it.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store provides DynamoDB operations over the configuration and user
// tables.
type Store struct {
	client DynamoAPI
	config Config
}

// New creates a new Store instance.
func New(client DynamoAPI, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
	}
}

// Config returns the store's table configuration.
func (s *Store) Config() Config {
	return s.config
}

// configKey builds the primary key of a configuration table item.
func configKey(projectKey, pageKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"ProjectKey": &types.AttributeValueMemberS{Value: projectKey},
		"PageKey":    &types.AttributeValueMemberS{Value: pageKey},
	}
}

// userKey builds the primary key of a users table item.
func (s *Store) userKey(userID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		s.config.UserIDAttr: &types.AttributeValueMemberS{Value: userID},
	}
}

// GetBrand fetches the brand record.
func (s *Store) GetBrand(ctx context.Context) (*Brand, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.ConfigTable),
		Key:       configKey(BrandKey, ConfigKey),
	})
	if err != nil {
		return nil, fmt.Errorf("get brand config: %w", err)
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	var brand Brand
	if err := attributevalue.UnmarshalMap(result.Item, &brand); err != nil {
		return nil, fmt.Errorf("unmarshal brand config: %w", err)
	}
	return &brand, nil
}

// GetProject fetches one project's configuration record.
func (s *Store) GetProject(ctx context.Context, projectKey string) (*Project, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.ConfigTable),
		Key:       configKey(projectKey, ConfigKey),
	})
	if err != nil {
		return nil, fmt.Errorf("get project config: %w", err)
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	var project Project
	if err := attributevalue.UnmarshalMap(result.Item, &project); err != nil {
		return nil, fmt.Errorf("unmarshal project config: %w", err)
	}
	return &project, nil
}

// GetPage fetches one page record.
func (s *Store) GetPage(ctx context.Context, projectKey, pageKey string) (*Page, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.ConfigTable),
		Key:       configKey(projectKey, pageKey),
	})
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	var page Page
	if err := attributevalue.UnmarshalMap(result.Item, &page); err != nil {
		return nil, fmt.Errorf("unmarshal page: %w", err)
	}
	return &page, nil
}

// ListProjects scans the configuration table for project records,
// excluding the brand sentinel. Listing is a full scan with a filter
// expression; the table is small and no index exists for it.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(s.config.ConfigTable),
		FilterExpression: aws.String("PageKey = :config AND ProjectKey <> :brand"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":config": &types.AttributeValueMemberS{Value: ConfigKey},
			":brand":  &types.AttributeValueMemberS{Value: BrandKey},
		},
	}

	projects := []Project{}
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan projects: %w", err)
		}
		for _, raw := range page.Items {
			var project Project
			if err := attributevalue.UnmarshalMap(raw, &project); err != nil {
				return nil, fmt.Errorf("unmarshal project config: %w", err)
			}
			projects = append(projects, project)
		}
	}

	return projects, nil
}

// ListPages queries all page records under a project key. The Config
// sub-record is excluded client-side: primary key attributes cannot be
// filtered out in the key condition.
func (s *Store) ListPages(ctx context.Context, projectKey string) ([]Page, error) {
	pages := []Page{}
	paginator := dynamodb.NewQueryPaginator(s.client, s.projectQuery(projectKey))
	for paginator.HasMorePages() {
		result, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query pages: %w", err)
		}
		for _, raw := range result.Items {
			if keyOf(raw, "PageKey") == ConfigKey {
				continue
			}
			var page Page
			if err := attributevalue.UnmarshalMap(raw, &page); err != nil {
				return nil, fmt.Errorf("unmarshal page: %w", err)
			}
			pages = append(pages, page)
		}
	}

	return pages, nil
}

// ListPageKeys returns the key of every record under a project key,
// the Config record included. Cascade delete enumerates with this.
func (s *Store) ListPageKeys(ctx context.Context, projectKey string) ([]RecordKey, error) {
	keys := []RecordKey{}
	paginator := dynamodb.NewQueryPaginator(s.client, s.projectQuery(projectKey))
	for paginator.HasMorePages() {
		result, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query project records: %w", err)
		}
		for _, raw := range result.Items {
			keys = append(keys, RecordKey{
				ProjectKey: keyOf(raw, "ProjectKey"),
				PageKey:    keyOf(raw, "PageKey"),
			})
		}
	}

	return keys, nil
}

func (s *Store) projectQuery(projectKey string) *dynamodb.QueryInput {
	return &dynamodb.QueryInput{
		TableName:              aws.String(s.config.ConfigTable),
		KeyConditionExpression: aws.String("ProjectKey = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: projectKey},
		},
	}
}

// PutProject writes a project record, replacing any existing item.
// The sort key is forced to ConfigKey.
func (s *Store) PutProject(ctx context.Context, project *Project) error {
	project.PageKey = ConfigKey
	item, err := attributevalue.MarshalMap(project)
	if err != nil {
		return fmt.Errorf("marshal project config: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.ConfigTable),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put project config: %w", err)
	}
	return nil
}

// PutPage writes a page record, replacing any existing item.
func (s *Store) PutPage(ctx context.Context, page *Page) error {
	item, err := attributevalue.MarshalMap(page)
	if err != nil {
		return fmt.Errorf("marshal page: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.ConfigTable),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put page: %w", err)
	}
	return nil
}

// DeleteRecord removes one configuration table item by key.
func (s *Store) DeleteRecord(ctx context.Context, projectKey, pageKey string) error {
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.ConfigTable),
		Key:       configKey(projectKey, pageKey),
	}); err != nil {
		return fmt.Errorf("delete record %s/%s: %w", projectKey, pageKey, err)
	}
	return nil
}

// GetUser fetches a user settings record by subject identifier.
func (s *Store) GetUser(ctx context.Context, userID string) (*UserSettings, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.config.UsersTable),
		Key:       s.userKey(userID),
	})
	if err != nil {
		return nil, fmt.Errorf("get user settings: %w", err)
	}
	if result.Item == nil {
		return nil, ErrNotFound
	}

	user, err := s.unmarshalUser(result.Item)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// PutUser writes a user settings record, replacing any existing item.
func (s *Store) PutUser(ctx context.Context, user *UserSettings) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("marshal user settings: %w", err)
	}
	// The deployed partition key attribute name is configurable and
	// may differ from the struct tag.
	if s.config.UserIDAttr != "UserID" {
		item[s.config.UserIDAttr] = &types.AttributeValueMemberS{Value: user.UserID}
		delete(item, "UserID")
	}
	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.UsersTable),
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put user settings: %w", err)
	}
	return nil
}

// FindUserByDisplayName queries the display-name GSI. A miss returns
// ErrNotFound; a failing index query returns an error wrapping
// ErrIndexUnavailable so callers can distinguish "taken" from "could
// not check".
func (s *Store) FindUserByDisplayName(ctx context.Context, displayName string) (*UserSettings, error) {
	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.config.UsersTable),
		IndexName:              aws.String(s.config.DisplayNameIndex),
		KeyConditionExpression: aws.String("DisplayName = :name"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name": &types.AttributeValueMemberS{Value: displayName},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIndexUnavailable, err)
	}
	if len(result.Items) == 0 {
		return nil, ErrNotFound
	}

	return s.unmarshalUser(result.Items[0])
}

func (s *Store) unmarshalUser(raw map[string]types.AttributeValue) (*UserSettings, error) {
	var user UserSettings
	if err := attributevalue.UnmarshalMap(raw, &user); err != nil {
		return nil, fmt.Errorf("unmarshal user settings: %w", err)
	}
	if user.UserID == "" {
		user.UserID = keyOf(raw, s.config.UserIDAttr)
	}
	return &user, nil
}

// keyOf reads a string attribute from a raw item.
func keyOf(item map[string]types.AttributeValue, attr string) string {
	if v, ok := item[attr].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}
