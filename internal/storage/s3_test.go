package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockS3 is a mock implementation of S3API.
type MockS3 struct {
	mock.Mock
}

func (m *MockS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(in)
	return &s3.PutObjectOutput{}, args.Error(0)
}

func (m *MockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(in)
	return &s3.DeleteObjectOutput{}, args.Error(0)
}

func (m *MockS3) CopyObject(ctx context.Context, in *s3.CopyObjectInput, _ ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	args := m.Called(in)
	return &s3.CopyObjectOutput{}, args.Error(0)
}

func TestS3UploadUsesStructuredKey(t *testing.T) {
	client := new(MockS3)
	client.On("PutObject", mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "media" &&
			aws.ToString(in.Key) == "products/7/red_shoe.png" &&
			aws.ToString(in.ContentType) == "image/png" &&
			aws.ToInt64(in.ContentLength) == 3 &&
			in.ACL == types.ObjectCannedACLPublicRead
	})).Return(nil).Once()

	g := NewS3GatewayWithClient(client, "media", true)
	key, err := g.Upload(context.Background(), File{
		Name:        "red shoe.png",
		ContentType: "image/png",
		Size:        3,
		Body:        strings.NewReader("png"),
	}, 7, "products")

	require.NoError(t, err)
	assert.Equal(t, "products/7/red_shoe.png", key)
	client.AssertExpectations(t)
}

func TestS3RenameCopiesThenDeletes(t *testing.T) {
	client := new(MockS3)
	copyCall := client.On("CopyObject", mock.MatchedBy(func(in *s3.CopyObjectInput) bool {
		return aws.ToString(in.CopySource) == "media/products/2/shoe%20v2.png" &&
			aws.ToString(in.Key) == "products/9/shoe v2.png" &&
			in.ACL == types.ObjectCannedACLPrivate
	})).Return(nil).Once()
	deleteCall := client.On("DeleteObject", mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "products/2/shoe v2.png"
	})).Return(nil).Once()
	mock.InOrder(copyCall, deleteCall)

	g := NewS3GatewayWithClient(client, "media", false)
	key, err := g.Rename(context.Background(), "products", 2, 9, "shoe v2.png")

	require.NoError(t, err)
	assert.Equal(t, "products/9/shoe v2.png", key)
	client.AssertExpectations(t)
}

func TestS3RenameKeepsOriginalWhenCopyFails(t *testing.T) {
	client := new(MockS3)
	client.On("CopyObject", mock.Anything).Return(errors.New("access denied")).Once()

	g := NewS3GatewayWithClient(client, "media", false)
	_, err := g.Rename(context.Background(), "products", 2, 9, "shoe.png")

	assert.ErrorContains(t, err, "access denied")
	client.AssertNotCalled(t, "DeleteObject", mock.Anything)
}

func TestS3RenameDropsCopyWhenDeleteFails(t *testing.T) {
	client := new(MockS3)
	copyCall := client.On("CopyObject", mock.Anything).Return(nil).Once()
	deleteOld := client.On("DeleteObject", mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "products/2/shoe.png"
	})).Return(errors.New("throttled")).Once()
	deleteNew := client.On("DeleteObject", mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "products/9/shoe.png"
	})).Return(nil).Once()
	mock.InOrder(copyCall, deleteOld, deleteNew)

	g := NewS3GatewayWithClient(client, "media", false)
	key, err := g.Rename(context.Background(), "products", 2, 9, "shoe.png")

	assert.ErrorContains(t, err, "throttled")
	assert.Empty(t, key)
	client.AssertExpectations(t)
}

func TestS3DeleteWrapsError(t *testing.T) {
	client := new(MockS3)
	client.On("DeleteObject", mock.Anything).Return(errors.New("timeout")).Once()

	err := NewS3GatewayWithClient(client, "media", false).Delete(context.Background(), "products/1/a.png")
	assert.ErrorContains(t, err, "delete object products/1/a.png")
}
