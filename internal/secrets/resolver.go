package secrets

import (
	"context"
	"fmt"
	"strings"

	"amozeshgah/internal/config"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

type accessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

// Resolver reads secret payloads from Google Secret Manager.
type Resolver struct {
	client    accessor
	projectID string
}

func NewResolver(ctx context.Context, cfg *config.Config) (*Resolver, error) {
	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	return &Resolver{client: client, projectID: cfg.GCPProjectID}, nil
}

// ResourceName expands a short secret name ("db-password") to the latest
// version of that secret in the configured project. Full resource names are
// returned unchanged.
func (r *Resolver) ResourceName(secret string) (string, error) {
	if strings.HasPrefix(secret, "projects/") {
		if !strings.Contains(secret, "/versions/") {
			return secret + "/versions/latest", nil
		}
		return secret, nil
	}
	if r.projectID == "" {
		return "", fmt.Errorf("secret %q is not a full resource name and GCP_PROJECT_ID is not set", secret)
	}
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", r.projectID, secret), nil
}

// Resolve returns the payload of the given secret version as a string.
func (r *Resolver) Resolve(ctx context.Context, secret string) (string, error) {
	name, err := r.ResourceName(secret)
	if err != nil {
		return "", err
	}
	result, err := r.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to access secret version: %w", err)
	}
	return string(result.GetPayload().GetData()), nil
}

func (r *Resolver) Close() error {
	return r.client.Close()
}
