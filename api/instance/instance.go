// Package instance reads public information about the server.
package instance

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/version"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// AtLeast reports whether the server runs Mastodon minVersion or newer. Build metadata and
// compatibility suffixes in the reported version are ignored.
func AtLeast(instance *models.Instance, minVersion string) (bool, error) {
	return version.IsVersionGreaterOrEqual(instance.Version, minVersion)
}

// GetInstanceResponse holds the parsed body of GET /api/v2/instance.
type GetInstanceResponse struct {
	Instance *models.Instance
}

func getInstanceOperation() *client.Operation[GetInstanceResponse] {
	return &client.Operation[GetInstanceResponse]{
		ID:      "getInstance",
		Request: client.NewRequest(http.MethodGet, "/api/v2/instance"),
		Responses: client.Responses[GetInstanceResponse]{
			http.StatusOK: client.JSON(func(r *GetInstanceResponse) **models.Instance { return &r.Instance }),
		},
	}
}

// GetInstanceDetailed returns the server's configuration, limits and contact information.
func GetInstanceDetailed(ctx context.Context, c client.Caller) (*client.Response[GetInstanceResponse], error) {
	return client.Do(ctx, c, getInstanceOperation())
}

// GetInstance is GetInstanceDetailed without the response envelope.
func GetInstance(ctx context.Context, c client.Caller) (*GetInstanceResponse, error) {
	resp, err := GetInstanceDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetInstanceDetailedAsync runs GetInstanceDetailed in the background.
func GetInstanceDetailedAsync(ctx context.Context, c client.Caller) *client.Future[*client.Response[GetInstanceResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetInstanceResponse], error) {
		return GetInstanceDetailed(ctx, c)
	})
}

// GetInstanceAsync runs GetInstance in the background.
func GetInstanceAsync(ctx context.Context, c client.Caller) *client.Future[*GetInstanceResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetInstanceResponse, error) {
		return GetInstance(ctx, c)
	})
}

// GetInstancePeersResponse holds the parsed body of GET /api/v1/instance/peers.
type GetInstancePeersResponse struct {
	Domains []string
	Error   *models.Error
}

func getInstancePeersOperation() *client.Operation[GetInstancePeersResponse] {
	return &client.Operation[GetInstancePeersResponse]{
		ID:      "getInstancePeers",
		Request: client.NewRequest(http.MethodGet, "/api/v1/instance/peers"),
		Responses: client.Responses[GetInstancePeersResponse]{
			http.StatusOK:           client.JSON(func(r *GetInstancePeersResponse) *[]string { return &r.Domains }),
			http.StatusUnauthorized: client.JSON(func(r *GetInstancePeersResponse) **models.Error { return &r.Error }),
		},
	}
}

// GetInstancePeersDetailed lists the domains the server is aware of. Servers in limited
// federation mode answer 401.
func GetInstancePeersDetailed(ctx context.Context, c client.Caller) (*client.Response[GetInstancePeersResponse], error) {
	return client.Do(ctx, c, getInstancePeersOperation())
}

// GetInstancePeers is GetInstancePeersDetailed without the response envelope.
func GetInstancePeers(ctx context.Context, c client.Caller) (*GetInstancePeersResponse, error) {
	resp, err := GetInstancePeersDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetInstancePeersDetailedAsync runs GetInstancePeersDetailed in the background.
func GetInstancePeersDetailedAsync(ctx context.Context, c client.Caller) *client.Future[*client.Response[GetInstancePeersResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetInstancePeersResponse], error) {
		return GetInstancePeersDetailed(ctx, c)
	})
}

// GetInstancePeersAsync runs GetInstancePeers in the background.
func GetInstancePeersAsync(ctx context.Context, c client.Caller) *client.Future[*GetInstancePeersResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetInstancePeersResponse, error) {
		return GetInstancePeers(ctx, c)
	})
}

// GetInstanceRulesResponse holds the parsed body of GET /api/v1/instance/rules.
type GetInstanceRulesResponse struct {
	Rules []models.Rule
}

func getInstanceRulesOperation() *client.Operation[GetInstanceRulesResponse] {
	return &client.Operation[GetInstanceRulesResponse]{
		ID:      "getInstanceRules",
		Request: client.NewRequest(http.MethodGet, "/api/v1/instance/rules"),
		Responses: client.Responses[GetInstanceRulesResponse]{
			http.StatusOK: client.JSON(func(r *GetInstanceRulesResponse) *[]models.Rule { return &r.Rules }),
		},
	}
}

// GetInstanceRulesDetailed lists the rules users agree to when signing up.
func GetInstanceRulesDetailed(ctx context.Context, c client.Caller) (*client.Response[GetInstanceRulesResponse], error) {
	return client.Do(ctx, c, getInstanceRulesOperation())
}

// GetInstanceRules is GetInstanceRulesDetailed without the response envelope.
func GetInstanceRules(ctx context.Context, c client.Caller) (*GetInstanceRulesResponse, error) {
	resp, err := GetInstanceRulesDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetInstanceRulesDetailedAsync runs GetInstanceRulesDetailed in the background.
func GetInstanceRulesDetailedAsync(ctx context.Context, c client.Caller) *client.Future[*client.Response[GetInstanceRulesResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetInstanceRulesResponse], error) {
		return GetInstanceRulesDetailed(ctx, c)
	})
}

// GetInstanceRulesAsync runs GetInstanceRules in the background.
func GetInstanceRulesAsync(ctx context.Context, c client.Caller) *client.Future[*GetInstanceRulesResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetInstanceRulesResponse, error) {
		return GetInstanceRules(ctx, c)
	})
}
