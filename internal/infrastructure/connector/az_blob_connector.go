package connector

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type azureBlobConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobConnector creates an accounts.AvatarConnector backed by Azure
// Blob Storage and makes sure the container exists
func NewAzureBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (accounts.AvatarConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blob connector settings: %w", err)
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	if _, err := client.CreateContainer(ctx, settings.ContainerName, nil); err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &azureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

func (c *azureBlobConnector) Upload(ctx context.Context, blobName string, content []byte, contentType string) error {
	_, err := c.client.UploadBuffer(ctx, c.containerName, blobName, content, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", blobName, err)
	}

	c.logger.Info(fmt.Sprintf("Uploaded blob %s (%d bytes)", blobName, len(content)))
	return nil
}

func (c *azureBlobConnector) Download(ctx context.Context, blobName string) ([]byte, error) {
	resp, err := c.client.DownloadStream(ctx, c.containerName, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil, fmt.Errorf("blob %s: %w", blobName, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", blobName, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", blobName, err)
	}
	return buf.Bytes(), nil
}

func (c *azureBlobConnector) Delete(ctx context.Context, blobName string) error {
	if _, err := c.client.DeleteBlob(ctx, c.containerName, blobName, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return fmt.Errorf("blob %s: %w", blobName, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to delete blob %s: %w", blobName, err)
	}

	c.logger.Info("Deleted blob ", blobName)
	return nil
}
