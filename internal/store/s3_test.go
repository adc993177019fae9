package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	objects map[string][]byte
	getErr  error
	putErr  error

	lastContentType string
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeObjects) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	f.lastContentType = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_MissingObjectIsEmpty(t *testing.T) {
	s := NewS3Store(newFakeObjects(), "vault", "users.json", nil)

	creds, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestS3Store_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	api := newFakeObjects()
	s := NewS3Store(api, "vault", "users.json", nil)

	want := Credentials{"alice": "Aa1!aaaa"}
	require.NoError(t, s.Save(ctx, want))
	assert.Equal(t, "application/json", api.lastContentType)
	assert.Contains(t, api.objects, "vault/users.json")

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	require.NoError(t, s.Close())
}

func TestS3Store_CorruptObjectIsEmpty(t *testing.T) {
	api := newFakeObjects()
	api.objects["vault/users.json"] = []byte("{{{")
	s := NewS3Store(api, "vault", "users.json", nil)

	creds, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creds)
}

func TestS3Store_TransportErrors(t *testing.T) {
	api := newFakeObjects()
	api.getErr = errors.New("connection refused")
	api.putErr = errors.New("access denied")
	s := NewS3Store(api, "vault", "users.json", nil)

	_, err := s.Load(context.Background())
	require.ErrorContains(t, err, "connection refused")

	err = s.Save(context.Background(), Credentials{"a": "b"})
	require.ErrorContains(t, err, "access denied")
}

func TestOpenS3Store_BuildsClient(t *testing.T) {
	s, err := OpenS3Store(context.Background(), S3Options{
		Bucket:    "vault",
		Key:       "users.json",
		Region:    "us-east-1",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "admin",
		SecretKey: "secretpassword",
	}, nil)
	require.NoError(t, err)
	assert.IsType(t, &s3.Client{}, s.api)
}
