package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"commercial_agent/internal/domain/entities"
	"commercial_agent/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID         string  `dynamodbav:"id"`
	Source     string  `dynamodbav:"source"`
	Details    string  `dynamodbav:"details,omitempty"`
	ICP        float64 `dynamodbav:"icp"`
	Intent     float64 `dynamodbav:"intent"`
	Engagement float64 `dynamodbav:"engagement"`
	Score      string  `dynamodbav:"score"`
	Status     string  `dynamodbav:"status"`
	CreatedAt  string  `dynamodbav:"created_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB, for deployments
// where the lead book must outlive the process. Quote saga state stays
// in-memory regardless.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	it, err := toLeadItem(l)
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) UpdateScore(ctx context.Context, id string, score float64, status entities.LeadStatus) (entities.Lead, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #score = :score, #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":score":  &types.AttributeValueMemberN{Value: floatToString(score)},
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#score":  "score",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) ListAll(ctx context.Context) ([]entities.Lead, error) {
	leads := make([]entities.Lead, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it leadItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			leads = append(leads, fromLeadItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return leads, nil
}

func toLeadItem(l entities.Lead) (leadItem, error) {
	details := ""
	if len(l.Details) > 0 {
		b, err := json.Marshal(l.Details)
		if err != nil {
			return leadItem{}, err
		}
		details = string(b)
	}
	return leadItem{
		ID:         l.ID,
		Source:     l.Source,
		Details:    details,
		ICP:        l.Criteria.ICP,
		Intent:     l.Criteria.Intent,
		Engagement: l.Criteria.Engagement,
		Score:      floatToString(l.Score),
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	score, _ := strconv.ParseFloat(it.Score, 64)
	var details map[string]interface{}
	if it.Details != "" {
		_ = json.Unmarshal([]byte(it.Details), &details)
	}
	return entities.Lead{
		ID:      it.ID,
		Source:  it.Source,
		Details: details,
		Criteria: entities.LeadCriteria{
			ICP:        it.ICP,
			Intent:     it.Intent,
			Engagement: it.Engagement,
		},
		Score:     score,
		Status:    entities.LeadStatus(it.Status),
		CreatedAt: createdAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
