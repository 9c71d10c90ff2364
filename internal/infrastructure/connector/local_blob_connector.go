package connector

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/domain/accounts"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/config"
	"github.com/Montakatonix/trifasicko-conecta-sub000/internal/pkg/logger"
)

type localBlobConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalBlobConnector creates an accounts.AvatarConnector storing blobs as
// files under <local_path>/<container_name>
func NewLocalBlobConnector(settings *config.BlobConnectorSettings, logger logger.Logger) (accounts.AvatarConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid blob connector settings: %w", err)
	}

	root := filepath.Join(settings.LocalPath, settings.ContainerName)
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create blob directory %s: %w", root, err)
	}

	return &localBlobConnector{root: root, logger: logger}, nil
}

func (c *localBlobConnector) path(blobName string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(blobName))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: invalid blob name %q", domain.ErrInvalidInput, blobName)
	}
	return filepath.Join(c.root, clean), nil
}

func (c *localBlobConnector) Upload(_ context.Context, blobName string, content []byte, _ string) error {
	path, err := c.path(blobName)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o640); err != nil {
		return fmt.Errorf("failed to upload blob %s: %w", blobName, err)
	}

	c.logger.Info(fmt.Sprintf("Uploaded blob %s (%d bytes)", blobName, len(content)))
	return nil
}

func (c *localBlobConnector) Download(_ context.Context, blobName string) ([]byte, error) {
	path, err := c.path(blobName)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("blob %s: %w", blobName, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download blob %s: %w", blobName, err)
	}
	return content, nil
}

func (c *localBlobConnector) Delete(_ context.Context, blobName string) error {
	path, err := c.path(blobName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("blob %s: %w", blobName, domain.ErrNotFound)
		}
		return fmt.Errorf("failed to delete blob %s: %w", blobName, err)
	}

	c.logger.Info("Deleted blob ", blobName)
	return nil
}
