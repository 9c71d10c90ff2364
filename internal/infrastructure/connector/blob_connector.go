package connector

import (
	"context"
	"fmt"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

// NewAvatarConnector picks the blob storage implementation named by
// settings.CloudProvider
func NewAvatarConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (accounts.AvatarConnector, error) {
	switch settings.CloudProvider {
	case config.AzureCloudProvider:
		return NewAzureBlobConnector(ctx, settings, logger)
	case config.LocalStorageProvider:
		return NewLocalBlobConnector(settings, logger)
	default:
		return nil, fmt.Errorf("unsupported cloud provider: %s", settings.CloudProvider)
	}
}
