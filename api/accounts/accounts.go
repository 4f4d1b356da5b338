// Package accounts reads and manages accounts and the authenticated user's profile.
package accounts

import (
	"context"
	"net/http"

	"github.com/theepicsaxguy/Mastowatch-sub001/api"
	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/models"
)

// GetAccountResponse holds the parsed body of GET /api/v1/accounts/{id}. A suspended account
// answers 410 and sets no field.
type GetAccountResponse struct {
	Account *models.Account
	Error   *models.Error
}

func getAccountOperation(id string) (*client.Operation[GetAccountResponse], error) {
	path, err := client.FormatPath("/api/v1/accounts/{id}", id)
	if err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *GetAccountResponse) **models.Error { return &r.Error })
	return &client.Operation[GetAccountResponse]{
		ID:      "getAccount",
		Request: client.NewRequest(http.MethodGet, path),
		Responses: client.Responses[GetAccountResponse]{
			http.StatusOK:           client.JSON(func(r *GetAccountResponse) **models.Account { return &r.Account }),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
			http.StatusGone:         client.Empty[GetAccountResponse](),
		},
	}, nil
}

// GetAccountDetailed views information about a profile.
func GetAccountDetailed(ctx context.Context, c client.Caller, id string) (*client.Response[GetAccountResponse], error) {
	op, err := getAccountOperation(id)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetAccount is GetAccountDetailed without the response envelope.
func GetAccount(ctx context.Context, c client.Caller, id string) (*GetAccountResponse, error) {
	resp, err := GetAccountDetailed(ctx, c, id)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetAccountDetailedAsync runs GetAccountDetailed in the background.
func GetAccountDetailedAsync(ctx context.Context, c client.Caller, id string) *client.Future[*client.Response[GetAccountResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetAccountResponse], error) {
		return GetAccountDetailed(ctx, c, id)
	})
}

// GetAccountAsync runs GetAccount in the background.
func GetAccountAsync(ctx context.Context, c client.Caller, id string) *client.Future[*GetAccountResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetAccountResponse, error) {
		return GetAccount(ctx, c, id)
	})
}

// VerifyCredentialsResponse holds the parsed body of GET /api/v1/accounts/verify_credentials.
type VerifyCredentialsResponse struct {
	CredentialAccount *models.CredentialAccount
	Error             *models.Error
	ValidationError   *models.ValidationError
}

func verifyCredentialsOperation() *client.Operation[VerifyCredentialsResponse] {
	errorBody := client.JSON(func(r *VerifyCredentialsResponse) **models.Error { return &r.Error })
	return &client.Operation[VerifyCredentialsResponse]{
		ID:      "verifyAccountCredentials",
		Request: client.NewRequest(http.MethodGet, "/api/v1/accounts/verify_credentials"),
		Responses: client.Responses[VerifyCredentialsResponse]{
			http.StatusOK: client.JSON(func(r *VerifyCredentialsResponse) **models.CredentialAccount {
				return &r.CredentialAccount
			}),
			http.StatusUnauthorized: errorBody,
			http.StatusForbidden:    errorBody,
			http.StatusUnprocessableEntity: client.JSON(func(r *VerifyCredentialsResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}
}

// VerifyCredentialsDetailed returns the account the client's token belongs to, with its source
// settings.
func VerifyCredentialsDetailed(ctx context.Context, c *client.AuthenticatedClient) (*client.Response[VerifyCredentialsResponse], error) {
	return client.Do(ctx, c, verifyCredentialsOperation())
}

// VerifyCredentials is VerifyCredentialsDetailed without the response envelope.
func VerifyCredentials(ctx context.Context, c *client.AuthenticatedClient) (*VerifyCredentialsResponse, error) {
	resp, err := VerifyCredentialsDetailed(ctx, c)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// VerifyCredentialsDetailedAsync runs VerifyCredentialsDetailed in the background.
func VerifyCredentialsDetailedAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*client.Response[VerifyCredentialsResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[VerifyCredentialsResponse], error) {
		return VerifyCredentialsDetailed(ctx, c)
	})
}

// VerifyCredentialsAsync runs VerifyCredentials in the background.
func VerifyCredentialsAsync(ctx context.Context, c *client.AuthenticatedClient) *client.Future[*VerifyCredentialsResponse] {
	return client.Go(ctx, func(ctx context.Context) (*VerifyCredentialsResponse, error) {
		return VerifyCredentials(ctx, c)
	})
}

// UpdateCredentialsResponse holds the parsed body of PATCH /api/v1/accounts/update_credentials.
type UpdateCredentialsResponse struct {
	CredentialAccount *models.CredentialAccount
	Error             *models.Error
	ValidationError   *models.ValidationError
}

func updateCredentialsOperation(body models.UpdateCredentialsBody) (*client.Operation[UpdateCredentialsResponse], error) {
	parts, err := body.Parts()
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodPatch, "/api/v1/accounts/update_credentials")
	req.Body = client.MultipartBody(parts)

	return &client.Operation[UpdateCredentialsResponse]{
		ID:      "updateAccountCredentials",
		Request: req,
		Responses: client.Responses[UpdateCredentialsResponse]{
			http.StatusOK: client.JSON(func(r *UpdateCredentialsResponse) **models.CredentialAccount {
				return &r.CredentialAccount
			}),
			http.StatusUnauthorized: client.JSON(func(r *UpdateCredentialsResponse) **models.Error { return &r.Error }),
			http.StatusUnprocessableEntity: client.JSON(func(r *UpdateCredentialsResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}, nil
}

// UpdateCredentialsDetailed updates the authenticated user's profile. Avatar and header images
// are uploaded in the same multipart request.
func UpdateCredentialsDetailed(ctx context.Context, c *client.AuthenticatedClient, body models.UpdateCredentialsBody) (*client.Response[UpdateCredentialsResponse], error) {
	op, err := updateCredentialsOperation(body)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// UpdateCredentials is UpdateCredentialsDetailed without the response envelope.
func UpdateCredentials(ctx context.Context, c *client.AuthenticatedClient, body models.UpdateCredentialsBody) (*UpdateCredentialsResponse, error) {
	resp, err := UpdateCredentialsDetailed(ctx, c, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// UpdateCredentialsDetailedAsync runs UpdateCredentialsDetailed in the background.
func UpdateCredentialsDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, body models.UpdateCredentialsBody) *client.Future[*client.Response[UpdateCredentialsResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[UpdateCredentialsResponse], error) {
		return UpdateCredentialsDetailed(ctx, c, body)
	})
}

// UpdateCredentialsAsync runs UpdateCredentials in the background.
func UpdateCredentialsAsync(ctx context.Context, c *client.AuthenticatedClient, body models.UpdateCredentialsBody) *client.Future[*UpdateCredentialsResponse] {
	return client.Go(ctx, func(ctx context.Context) (*UpdateCredentialsResponse, error) {
		return UpdateCredentials(ctx, c, body)
	})
}

// GetFamiliarFollowersResponse holds the parsed body of GET /api/v1/accounts/familiar_followers.
type GetFamiliarFollowersResponse struct {
	FamiliarFollowers []models.FamiliarFollowers
	Error             *models.Error
}

func getFamiliarFollowersOperation(ids []string) (*client.Operation[GetFamiliarFollowersResponse], error) {
	req := client.NewRequest(http.MethodGet, "/api/v1/accounts/familiar_followers")
	if err := client.AddListParam(req.Query, "id", ids); err != nil {
		return nil, err
	}

	return &client.Operation[GetFamiliarFollowersResponse]{
		ID:      "getFamiliarFollowers",
		Request: req,
		Responses: client.Responses[GetFamiliarFollowersResponse]{
			http.StatusOK: client.JSON(func(r *GetFamiliarFollowersResponse) *[]models.FamiliarFollowers {
				return &r.FamiliarFollowers
			}),
			http.StatusUnauthorized: client.JSON(func(r *GetFamiliarFollowersResponse) **models.Error { return &r.Error }),
		},
	}, nil
}

// GetFamiliarFollowersDetailed lists, for each of ids, the accounts the user follows that also
// follow that account. The ids are sent as repeated id parameters.
func GetFamiliarFollowersDetailed(ctx context.Context, c *client.AuthenticatedClient, ids []string) (*client.Response[GetFamiliarFollowersResponse], error) {
	op, err := getFamiliarFollowersOperation(ids)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetFamiliarFollowers is GetFamiliarFollowersDetailed without the response envelope.
func GetFamiliarFollowers(ctx context.Context, c *client.AuthenticatedClient, ids []string) (*GetFamiliarFollowersResponse, error) {
	resp, err := GetFamiliarFollowersDetailed(ctx, c, ids)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetFamiliarFollowersDetailedAsync runs GetFamiliarFollowersDetailed in the background.
func GetFamiliarFollowersDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, ids []string) *client.Future[*client.Response[GetFamiliarFollowersResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetFamiliarFollowersResponse], error) {
		return GetFamiliarFollowersDetailed(ctx, c, ids)
	})
}

// GetFamiliarFollowersAsync runs GetFamiliarFollowers in the background.
func GetFamiliarFollowersAsync(ctx context.Context, c *client.AuthenticatedClient, ids []string) *client.Future[*GetFamiliarFollowersResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetFamiliarFollowersResponse, error) {
		return GetFamiliarFollowers(ctx, c, ids)
	})
}

// GetAccountStatusesParams filters the statuses of an account.
type GetAccountStatusesParams struct {
	api.Pagination
	OnlyMedia      *bool
	ExcludeReplies *bool
	ExcludeReblogs *bool
	Pinned         *bool
	// Tagged only returns statuses using this hashtag.
	Tagged *string
}

func (p GetAccountStatusesParams) apply(req *client.Request) error {
	if err := p.Pagination.Apply(req.Query); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "only_media", p.OnlyMedia); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "exclude_replies", p.ExcludeReplies); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "exclude_reblogs", p.ExcludeReblogs); err != nil {
		return err
	}
	if err := client.AddParam(req.Query, "pinned", p.Pinned); err != nil {
		return err
	}
	return client.AddParam(req.Query, "tagged", p.Tagged)
}

// GetAccountStatusesResponse holds the parsed body of GET /api/v1/accounts/{id}/statuses.
type GetAccountStatusesResponse struct {
	Statuses []models.Status
	Error    *models.Error
}

func getAccountStatusesOperation(id string, params GetAccountStatusesParams) (*client.Operation[GetAccountStatusesResponse], error) {
	path, err := client.FormatPath("/api/v1/accounts/{id}/statuses", id)
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodGet, path)
	if err := params.apply(req); err != nil {
		return nil, err
	}

	errorBody := client.JSON(func(r *GetAccountStatusesResponse) **models.Error { return &r.Error })
	return &client.Operation[GetAccountStatusesResponse]{
		ID:      "getAccountStatuses",
		Request: req,
		Responses: client.Responses[GetAccountStatusesResponse]{
			http.StatusOK:           client.JSON(func(r *GetAccountStatusesResponse) *[]models.Status { return &r.Statuses }),
			http.StatusUnauthorized: errorBody,
			http.StatusNotFound:     errorBody,
			http.StatusGone:         client.Empty[GetAccountStatusesResponse](),
		},
	}, nil
}

// GetAccountStatusesDetailed lists the statuses posted by an account, newest first.
func GetAccountStatusesDetailed(ctx context.Context, c client.Caller, id string, params GetAccountStatusesParams) (*client.Response[GetAccountStatusesResponse], error) {
	op, err := getAccountStatusesOperation(id, params)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// GetAccountStatuses is GetAccountStatusesDetailed without the response envelope.
func GetAccountStatuses(ctx context.Context, c client.Caller, id string, params GetAccountStatusesParams) (*GetAccountStatusesResponse, error) {
	resp, err := GetAccountStatusesDetailed(ctx, c, id, params)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// GetAccountStatusesDetailedAsync runs GetAccountStatusesDetailed in the background.
func GetAccountStatusesDetailedAsync(ctx context.Context, c client.Caller, id string, params GetAccountStatusesParams) *client.Future[*client.Response[GetAccountStatusesResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[GetAccountStatusesResponse], error) {
		return GetAccountStatusesDetailed(ctx, c, id, params)
	})
}

// GetAccountStatusesAsync runs GetAccountStatuses in the background.
func GetAccountStatusesAsync(ctx context.Context, c client.Caller, id string, params GetAccountStatusesParams) *client.Future[*GetAccountStatusesResponse] {
	return client.Go(ctx, func(ctx context.Context) (*GetAccountStatusesResponse, error) {
		return GetAccountStatuses(ctx, c, id, params)
	})
}

// FollowAccountResponse holds the parsed body of POST /api/v1/accounts/{id}/follow.
type FollowAccountResponse struct {
	Relationship    *models.Relationship
	Error           *models.Error
	ValidationError *models.ValidationError
}

func followAccountOperation(id string, body models.FollowAccountBody) (*client.Operation[FollowAccountResponse], error) {
	path, err := client.FormatPath("/api/v1/accounts/{id}/follow", id)
	if err != nil {
		return nil, err
	}

	req := client.NewRequest(http.MethodPost, path)
	req.Body = client.JSONBody(body)

	errorBody := client.JSON(func(r *FollowAccountResponse) **models.Error { return &r.Error })
	return &client.Operation[FollowAccountResponse]{
		ID:      "followAccount",
		Request: req,
		Responses: client.Responses[FollowAccountResponse]{
			http.StatusOK:           client.JSON(func(r *FollowAccountResponse) **models.Relationship { return &r.Relationship }),
			http.StatusUnauthorized: errorBody,
			http.StatusForbidden:    errorBody,
			http.StatusNotFound:     errorBody,
			http.StatusUnprocessableEntity: client.JSON(func(r *FollowAccountResponse) **models.ValidationError {
				return &r.ValidationError
			}),
		},
	}, nil
}

// FollowAccountDetailed follows an account, or updates the options of an existing follow.
func FollowAccountDetailed(ctx context.Context, c *client.AuthenticatedClient, id string, body models.FollowAccountBody) (*client.Response[FollowAccountResponse], error) {
	op, err := followAccountOperation(id, body)
	if err != nil {
		return nil, err
	}
	return client.Do(ctx, c, op)
}

// FollowAccount is FollowAccountDetailed without the response envelope.
func FollowAccount(ctx context.Context, c *client.AuthenticatedClient, id string, body models.FollowAccountBody) (*FollowAccountResponse, error) {
	resp, err := FollowAccountDetailed(ctx, c, id, body)
	if err != nil {
		return nil, err
	}
	return resp.Parsed, nil
}

// FollowAccountDetailedAsync runs FollowAccountDetailed in the background.
func FollowAccountDetailedAsync(ctx context.Context, c *client.AuthenticatedClient, id string, body models.FollowAccountBody) *client.Future[*client.Response[FollowAccountResponse]] {
	return client.Go(ctx, func(ctx context.Context) (*client.Response[FollowAccountResponse], error) {
		return FollowAccountDetailed(ctx, c, id, body)
	})
}

// FollowAccountAsync runs FollowAccount in the background.
func FollowAccountAsync(ctx context.Context, c *client.AuthenticatedClient, id string, body models.FollowAccountBody) *client.Future[*FollowAccountResponse] {
	return client.Go(ctx, func(ctx context.Context) (*FollowAccountResponse, error) {
		return FollowAccount(ctx, c, id, body)
	})
}
