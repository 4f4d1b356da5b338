// Package notifications reads and dismisses the authenticated user's notifications.
package notifications

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/api"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// GetNotificationsParams filters GET /api/v1/notifications.
type GetNotificationsParams struct {
	api.Pagination
	// Types only returns notifications of these types. Sent as repeated types[] parameters.
	Types []models.NotificationType
	// ExcludeTypes leaves out notifications of these types.
	ExcludeTypes []models.NotificationType
	// AccountID only returns notifications from this account.
	AccountID *string
}

func (p GetNotificationsParams) apply(req *client.Request) error {
	if err := p.Pagination.Apply(req.Query); err != nil {
		return err
	}
	if err := client.AddListParam(req.Query, "types[]", p.Types); err != nil {
		return err
	}
	if err := client.AddListParam(req.Query, "exclude_types[]", p.ExcludeTypes); err != nil {
		return err
	}
	return client.AddParam(req.Query, "account_id", p.AccountID)
}

// GetNotificationsResponse holds the parsed body of GET /api/v1/notifications.
type GetNotificationsResponse struct {
	Notifications []models.Notification
	Error         *models.Error
}

func getNotificationsOperation(params GetNotificationsParams) (*client.Operation[GetNotificationsResponse], error) {
	req := client.NewRequest(http.MethodGet, "/api/v1/notifications")
	if err := params.apply(req); err != nil {
		return nil, err
	}

	return &client.Operation[GetNotificationsResponse]{
		ID:      "getNotifications",
		Request: req,
		Responses: client.Responses[GetNotificationsResponse]{
			http.StatusOK: client.JSON(func(r *GetNotificationsResponse) *[]models.Notification {
				return &r.Notifications
			}),
			http.StatusUnauthorized: client.JSON(func(r *GetNotificationsResponse) **models.Error { return &r.Error }),
		},
	}, nil
}

// GetNotificationsDetailed lists notifications, newest first.
func GetNotificationsDetailed(ctx context.Context, c *client.AuthenticatedClient, params GetNotificationsParams) (*client.Response[GetNotificationsResponse], error) {
	op, err := getNotificationsOperation(params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetNotifications is GetNotificationsDetailed without the response envelope.
func GetNotifications(ctx context.Context, c *client.AuthenticatedClient, params GetNotificationsParams) (*GetNotificationsResponse, error) {
	resp, err := GetNotificationsDetailed(ctx, c, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetNotificationsDetailedAsync runs GetNotificationsDetailed in the background.
func GetNotificationsDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, params GetNotificationsParams) *client.Future[*client.Response[GetNotificationsResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetNotificationsResponse], error) {
		return GetNotificationsDetailed(ctx, c, params)
	})
}

// GetNotificationsAsync runs GetNotifications in the background.
func GetNotificationsAsync(ctx context.Context, c *client.AuthenticatedClient, params GetNotificationsParams) *client.Future[*GetNotificationsResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetNotificationsResponse, error) {
		return GetNotifications(ctx, c, params)
	})
}

// GetNotificationResponse holds the parsed body of GET /api/v1/notifications/{id}.
type GetNotificationResponse struct {
	Notification *models.Notification
	Error        *models.Error
}

func getNotificationOperation(id string) (*client.Operation[GetNotificationResponse], error) {
	path, err := client.FormatPath("/api/v1/notifications/{id}", id)
	if err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *GetNotificationResponse) **models.Error { return &r.Error })
	return &client.Operation[GetNotificationResponse]{
		ID:      "getNotification",
		Request: client.NewRequest(http.MethodGet, path),
		Responses: client.Responses[GetNotificationResponse]{
			http.StatusOK: client.JSON(func(r *GetNotificationResponse) **models.Notification {
				return &r.Notification
			}),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
		},
	}, nil
}

// GetNotificationDetailed fetches one notification by id.
func GetNotificationDetailed(ctx context.Context, c *client.AuthenticatedClient, id string) (*client.Response[GetNotificationResponse], error) {
	op, err := getNotificationOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetNotification is GetNotificationDetailed without the response envelope.
func GetNotification(ctx context.Context, c *client.AuthenticatedClient, id string) (*GetNotificationResponse, error) {
	resp, err := GetNotificationDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetNotificationDetailedAsync runs GetNotificationDetailed in the background.
func GetNotificationDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*client.Response[GetNotificationResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetNotificationResponse], error) {
		return GetNotificationDetailed(ctx, c, id)
	})
}

// GetNotificationAsync runs GetNotification in the background.
func GetNotificationAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*GetNotificationResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetNotificationResponse, error) {
		return GetNotification(ctx, c, id)
	})
}

// DismissNotificationResponse holds the parsed body of POST /api/v1/notifications/{id}/dismiss.
// A dismissed notification sets no field.
type DismissNotificationResponse struct {
	Error *models.Error
}

func dismissNotificationOperation(id string) (*client.Operation[DismissNotificationResponse], error) {
	path, err := client.FormatPath("/api/v1/notifications/{id}/dismiss", id)
	if err != nil {
		return nil, err
	}

	return &client.Operation[DismissNotificationResponse]{
		ID:      "dismissNotification",
		Request: client.NewRequest(http.MethodPost, path),
		Responses: client.Responses[DismissNotificationResponse]{
			http.StatusOK:           client.Empty[DismissNotificationResponse](),
			http.StatusUnauthorized: client.JSON(func(r *DismissNotificationResponse) **models.Error { return &r.Error }),
		},
	}, nil
}

// DismissNotificationDetailed clears one notification from the inbox.
func DismissNotificationDetailed(ctx context.Context, c *client.AuthenticatedClient, id string) (*client.Response[DismissNotificationResponse], error) {
	op, err := dismissNotificationOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// DismissNotification is DismissNotificationDetailed without the response envelope.
func DismissNotification(ctx context.Context, c *client.AuthenticatedClient, id string) (*DismissNotificationResponse, error) {
	resp, err := DismissNotificationDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// DismissNotificationDetailedAsync runs DismissNotificationDetailed in the background.
func DismissNotificationDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*client.Response[DismissNotificationResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[DismissNotificationResponse], error) {
		return DismissNotificationDetailed(ctx, c, id)
	})
}

// DismissNotificationAsync runs DismissNotification in the background.
func DismissNotificationAsync(ctx context.Context, c *client.AuthenticatedClient, id string) *client.Future[*DismissNotificationResponse] {
	return client.Go(ctx, func(ctx context.Context) (*DismissNotificationResponse, error) {
		return DismissNotification(ctx, c, id)
	})
}

// GetGroupedNotificationsParams filters GET /api/v2/notifications.
type GetGroupedNotificationsParams struct {
	api.Pagination
	Types        []models.NotificationType
	ExcludeTypes []models.NotificationType
	AccountID    *string
	// ExpandAccounts selects whether sample accounts are returned in full or as partial
	// accounts with only what is needed to render avatars.
	ExpandAccounts *models.GroupedNotificationsExpand
	// GroupedTypes restricts which notification types may be grouped together.
	GroupedTypes []models.NotificationType
	// IncludeFiltered includes notifications that match the user's filters.
	IncludeFiltered *bool
}

func (p GetGroupedNotificationsParams) apply(req *client.Request) error {
	if err := p.Pagination.Apply(req.Query); err != nil {
		return err
	}
	if err := client.AddListParam(req.Query, "types[]", p.Types); err != nil {
		return err
	}
	if err := client.AddListParam(req.Query, "exclude_types[]", p.ExcludeTypes); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "account_id", p.AccountID); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "expand_accounts", p.ExpandAccounts); err != nil {
		return err
	}
	if err := client.AddListParam(req.Query, "grouped_types[]", p.GroupedTypes); err != nil {
		return err
	}
	return client.AddParam(req.Query, "include_filtered", p.IncludeFiltered)
}

// GetGroupedNotificationsResponse holds the parsed body of GET /api/v2/notifications.
type GetGroupedNotificationsResponse struct {
	GroupedNotificationsResults *models.GroupedNotificationsResults
	Error                       *models.Error
}

func getGroupedNotificationsOperation(params GetGroupedNotificationsParams) (*client.Operation[GetGroupedNotificationsResponse], error) {
	req := client.NewRequest(http.MethodGet, "/api/v2/notifications")
	if err := params.apply(req); err != nil {
		return nil, err
	}

	return &client.Operation[GetGroupedNotificationsResponse]{
		ID:      "getGroupedNotifications",
		Request: req,
		Responses: client.Responses[GetGroupedNotificationsResponse]{
			http.StatusOK: client.JSON(func(r *GetGroupedNotificationsResponse) **models.GroupedNotificationsResults {
				return &r.GroupedNotificationsResults
			}),
			http.StatusUnauthorized: client.JSON(func(r *GetGroupedNotificationsResponse) **models.Error { return &r.Error }),
		},
	}, nil
}

// GetGroupedNotificationsDetailed lists notifications grouped by group key. The accounts and
// statuses the groups refer to are returned once, next to the groups.
func GetGroupedNotificationsDetailed(ctx context.Context, c *client.AuthenticatedClient, params GetGroupedNotificationsParams) (*client.Response[GetGroupedNotificationsResponse], error) {
	op, err := getGroupedNotificationsOperation(params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetGroupedNotifications is GetGroupedNotificationsDetailed without the response envelope.
func GetGroupedNotifications(ctx context.Context, c *client.AuthenticatedClient, params GetGroupedNotificationsParams) (*GetGroupedNotificationsResponse, error) {
	resp, err := GetGroupedNotificationsDetailed(ctx, c, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetGroupedNotificationsDetailedAsync runs GetGroupedNotificationsDetailed in the background.
func GetGroupedNotificationsDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, params GetGroupedNotificationsParams) *client.Future[*client.Response[GetGroupedNotificationsResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetGroupedNotificationsResponse], error) {
		return GetGroupedNotificationsDetailed(ctx, c, params)
	})
}

// GetGroupedNotificationsAsync runs GetGroupedNotifications in the background.
func GetGroupedNotificationsAsync(ctx context.Context, c *client.AuthenticatedClient, params GetGroupedNotificationsParams) *client.Future[*GetGroupedNotificationsResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetGroupedNotificationsResponse, error) {
		return GetGroupedNotifications(ctx, c, params)
	})
}
