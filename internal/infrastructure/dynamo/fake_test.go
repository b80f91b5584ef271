package dynamo

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeDynamo is an in-memory stand-in for the handful of DynamoDB calls the
// repos make. It understands the expressions built by this package only.
type fakeDynamo struct {
	mu        sync.Mutex
	keys      map[string][2]string // table -> (hash, range)
	items     map[string]map[string]item
	lastQuery *dynamodb.QueryInput
	failWith  error
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{keys: map[string][2]string{}, items: map[string]map[string]item{}}
}

func (f *fakeDynamo) table(name, hash, rng string) *fakeDynamo {
	f.keys[name] = [2]string{hash, rng}
	f.items[name] = map[string]item{}
	return f
}

func strOf(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) keyOf(table string, it item) string {
	k := f.keys[table]
	return strOf(it[k[0]]) + "\x00" + strOf(it[k[1]])
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &dynamodb.GetItemOutput{Item: f.items[*in.TableName][f.keyOf(*in.TableName, in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.items[*in.TableName][f.keyOf(*in.TableName, in.Item)] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	delete(f.items[*in.TableName], f.keyOf(*in.TableName, in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	table := *in.TableName
	key := f.keyOf(table, in.Key)
	existing, ok := f.items[table][key]
	if !ok {
		if in.ConditionExpression != nil {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
		}
		existing = item{}
		for k, v := range in.Key {
			existing[k] = v
		}
	}
	updated := item{}
	for k, v := range existing {
		updated[k] = v
	}
	for _, assign := range strings.Split(strings.TrimPrefix(*in.UpdateExpression, "SET "), ", ") {
		parts := strings.SplitN(assign, " = ", 2)
		if len(parts) != 2 {
			return nil, errors.New("fake: unsupported update expression")
		}
		updated[in.ExpressionAttributeNames[parts[0]]] = in.ExpressionAttributeValues[parts[1]]
	}
	f.items[table][key] = updated
	return &dynamodb.UpdateItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastQuery = in
	attr := in.ExpressionAttributeNames["#pk"]
	want := strOf(in.ExpressionAttributeValues[":pk"])

	var keys []string
	for k, it := range f.items[*in.TableName] {
		if strOf(it[attr]) == want {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := &dynamodb.QueryOutput{}
	for _, k := range keys {
		out.Items = append(out.Items, f.items[*in.TableName][k])
	}
	out.Count = int32(len(out.Items))
	return out, nil
}

func (f *fakeDynamo) count(table string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items[table])
}
