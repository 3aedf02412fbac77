package importer

import (
	"context"

	"lokarni/pkg/assets"
	"lokarni/pkg/catalog"
	"lokarni/pkg/credentials"
)

// ImportService turns one pasted URL into exactly one backend import call.
type ImportService interface {
	Import(ctx context.Context, rawURL, apiKey string, extra ...credentials.Sink) (assets.Asset, error)
	StoredCredential(ctx context.Context) (string, error)
}

type importService struct {
	client catalog.Client
	creds  *credentials.Store
}

func NewImportService(client catalog.Client, creds *credentials.Store) ImportService {
	return &importService{client: client, creds: creds}
}

// Import classifies the URL, fires the matching backend workflow once, and
// on success persists the credential to the configured sinks plus any
// request-scoped extras. No retry: the user re-triggers explicitly.
func (s *importService) Import(ctx context.Context, rawURL, apiKey string, extra ...credentials.Sink) (assets.Asset, error) {
	var (
		created assets.Asset
		err     error
	)

	switch Classify(rawURL) {
	case KindImage:
		var imageID string
		imageID, err = ImageID(rawURL)
		if err != nil {
			return assets.Asset{}, err
		}
		created, err = s.client.ImportImage(ctx, imageID, apiKey)
	default:
		created, err = s.client.CreateFromModelURL(ctx, rawURL, apiKey)
	}
	if err != nil {
		return assets.Asset{}, err
	}

	// Persist only a key the backend just accepted. Best effort: the import
	// itself already succeeded, so a sink failure does not undo it.
	if apiKey != "" {
		_ = s.creds.With(extra...).Save(ctx, apiKey)
	}

	return created, nil
}

func (s *importService) StoredCredential(ctx context.Context) (string, error) {
	return s.creds.Load(ctx)
}
