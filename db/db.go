package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/google/uuid"
	"github.com/jsphweid/eabc2acep/model"
	"github.com/pkg/errors"
)

var (
	ErrNotFound  = errors.New("envelope not found")
	ErrMalformed = errors.New("malformed envelope record")
)

// Archive keeps encoded envelopes in a DynamoDB table keyed by PK.
type Archive struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewArchive(endpoint string, table string) (*Archive, error) {
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return NewArchiveWithClient(dynamodb.New(session), table), nil
}

func NewArchiveWithClient(client dynamodbiface.DynamoDBAPI, table string) *Archive {
	return &Archive{client: client, table: table}
}

// Put stores env alongside the source it was encoded from and returns the new
// record's key.
func (a *Archive) Put(env *model.Envelope, source string) (string, error) {
	id := uuid.New().String()
	item := map[string]*dynamodb.AttributeValue{
		"PK":             {S: aws.String(id)},
		"CompressMethod": {S: aws.String(env.CompressMethod)},
		"Content":        {S: aws.String(env.Content)},
		"Salt":           {S: aws.String(env.Salt)},
		"Version":        {N: aws.String(strconv.Itoa(env.Version))},
	}
	if env.Timestamp != 0 {
		item["Timestamp"] = &dynamodb.AttributeValue{N: aws.String(strconv.FormatInt(env.Timestamp, 10))}
	}
	if title := env.Metadata["title"]; title != "" {
		item["Title"] = &dynamodb.AttributeValue{S: aws.String(title)}
	}
	if source != "" {
		item["Source"] = &dynamodb.AttributeValue{S: aws.String(source)}
	}

	_, err := a.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item:      item,
	})
	if err != nil {
		return "", errors.Wrap(err, "error from DynamoDB")
	}
	return id, nil
}

func (a *Archive) Get(id string) (*model.Envelope, error) {
	res, err := a.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(a.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}
	if len(res.Item) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "%v", id)
	}

	return envelopeFromItem(id, res.Item)
}

func stringAttr(item map[string]*dynamodb.AttributeValue, name string) (string, bool) {
	if a := item[name]; a != nil && a.S != nil {
		return *a.S, true
	}
	return "", false
}

func envelopeFromItem(id string, item map[string]*dynamodb.AttributeValue) (*model.Envelope, error) {
	var env model.Envelope
	for name, dst := range map[string]*string{
		"CompressMethod": &env.CompressMethod,
		"Content":        &env.Content,
		"Salt":           &env.Salt,
	} {
		v, ok := stringAttr(item, name)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "%v: missing %v", id, name)
		}
		*dst = v
	}

	a := item["Version"]
	if a == nil || a.N == nil {
		return nil, errors.Wrapf(ErrMalformed, "%v: missing Version", id)
	}
	version, err := strconv.Atoi(*a.N)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "%v: bad Version %q", id, *a.N)
	}
	env.Version = version

	if a := item["Timestamp"]; a != nil && a.N != nil {
		ts, err := strconv.ParseInt(*a.N, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "%v: bad Timestamp %q", id, *a.N)
		}
		env.Timestamp = ts
	}
	if title, ok := stringAttr(item, "Title"); ok {
		env.Metadata = map[string]string{"title": title}
	}
	return &env, nil
}
