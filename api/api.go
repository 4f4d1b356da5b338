// Package api describes the Mastodon endpoints this module implements and holds the query
// parameter types they share. The endpoint functions live in one subpackage per OpenAPI tag:
//
//	resp, err := statuses.CreateStatusDetailed(ctx, c, body, statuses.CreateStatusParams{})
//
// Every endpoint comes in the four forms described in the client package.
package api

import (
	"net/url"
	"slices"

	"github.com/theepicsaxguy/Mastowatch-sub001/client"
	"github.com/theepicsaxguy/Mastowatch-sub001/internal/sliceutil"
)

// OperationInfo describes one endpoint: its operation id, the OpenAPI tag it is grouped under,
// its method and path template, and the status codes it documents.
type OperationInfo struct {
	ID           string
	Tag          string
	Method       string
	PathTemplate string
	Statuses     []int
}

var operations = []OperationInfo{
	{ID: "createApp", Tag: "apps", Method: "POST", PathTemplate: "/api/v1/apps", Statuses: []int{200, 422, 429}},
	{ID: "verifyAppCredentials", Tag: "apps", Method: "GET", PathTemplate: "/api/v1/apps/verify_credentials", Statuses: []int{200, 401}},

	{ID: "obtainToken", Tag: "oauth", Method: "POST", PathTemplate: "/oauth/token", Statuses: []int{200, 400, 401}},
	{ID: "revokeToken", Tag: "oauth", Method: "POST", PathTemplate: "/oauth/revoke", Statuses: []int{200, 403}},

	{ID: "getAccount", Tag: "accounts", Method: "GET", PathTemplate: "/api/v1/accounts/{id}", Statuses: []int{200, 401, 404, 410}},
	{ID: "verifyAccountCredentials", Tag: "accounts", Method: "GET", PathTemplate: "/api/v1/accounts/verify_credentials", Statuses: []int{200, 401, 403, 422}},
	{ID: "updateAccountCredentials", Tag: "accounts", Method: "PATCH", PathTemplate: "/api/v1/accounts/update_credentials", Statuses: []int{200, 401, 422}},
	{ID: "getFamiliarFollowers", Tag: "accounts", Method: "GET", PathTemplate: "/api/v1/accounts/familiar_followers", Statuses: []int{200, 401}},
	{ID: "getAccountStatuses", Tag: "accounts", Method: "GET", PathTemplate: "/api/v1/accounts/{id}/statuses", Statuses: []int{200, 401, 404, 410}},
	{ID: "followAccount", Tag: "accounts", Method: "POST", PathTemplate: "/api/v1/accounts/{id}/follow", Statuses: []int{200, 401, 403, 404, 422}},

	{ID: "createStatus", Tag: "statuses", Method: "POST", PathTemplate: "/api/v1/statuses", Statuses: []int{200, 401, 422, 429}},
	{ID: "getStatus", Tag: "statuses", Method: "GET", PathTemplate: "/api/v1/statuses/{id}", Statuses: []int{200, 401, 404, 410}},
	{ID: "deleteStatus", Tag: "statuses", Method: "DELETE", PathTemplate: "/api/v1/statuses/{id}", Statuses: []int{200, 401, 404}},
	{ID: "getStatusContext", Tag: "statuses", Method: "GET", PathTemplate: "/api/v1/statuses/{id}/context", Statuses: []int{200, 401, 404}},

	{ID: "createMedia", Tag: "media", Method: "POST", PathTemplate: "/api/v2/media", Statuses: []int{200, 202, 401, 422}},
	{ID: "createMediaV1", Tag: "media", Method: "POST", PathTemplate: "/api/v1/media", Statuses: []int{200, 401, 422}},
	{ID: "getMedia", Tag: "media", Method: "GET", PathTemplate: "/api/v1/media/{id}", Statuses: []int{200, 206, 401, 404}},
	{ID: "updateMedia", Tag: "media", Method: "PUT", PathTemplate: "/api/v1/media/{id}", Statuses: []int{200, 401, 404, 422}},

	{ID: "getNotifications", Tag: "notifications", Method: "GET", PathTemplate: "/api/v1/notifications", Statuses: []int{200, 401}},
	{ID: "getNotification", Tag: "notifications", Method: "GET", PathTemplate: "/api/v1/notifications/{id}", Statuses: []int{200, 401, 404}},
	{ID: "dismissNotification", Tag: "notifications", Method: "POST", PathTemplate: "/api/v1/notifications/{id}/dismiss", Statuses: []int{200, 401}},
	{ID: "getGroupedNotifications", Tag: "notifications", Method: "GET", PathTemplate: "/api/v2/notifications", Statuses: []int{200, 401}},

	{ID: "getFilters", Tag: "filters", Method: "GET", PathTemplate: "/api/v2/filters", Statuses: []int{200, 401}},
	{ID: "createFilter", Tag: "filters", Method: "POST", PathTemplate: "/api/v2/filters", Statuses: []int{200, 401, 422}},
	{ID: "deleteFilter", Tag: "filters", Method: "DELETE", PathTemplate: "/api/v2/filters/{id}", Statuses: []int{200, 401, 404}},

	{ID: "getInstance", Tag: "instance", Method: "GET", PathTemplate: "/api/v2/instance", Statuses: []int{200}},
	{ID: "getInstancePeers", Tag: "instance", Method: "GET", PathTemplate: "/api/v1/instance/peers", Statuses: []int{200, 401}},
	{ID: "getInstanceRules", Tag: "instance", Method: "GET", PathTemplate: "/api/v1/instance/rules", Statuses: []int{200}},

	{ID: "getHomeTimeline", Tag: "timelines", Method: "GET", PathTemplate: "/api/v1/timelines/home", Statuses: []int{200, 206, 401}},
	{ID: "getPublicTimeline", Tag: "timelines", Method: "GET", PathTemplate: "/api/v1/timelines/public", Statuses: []int{200, 401, 422}},

	{ID: "createReport", Tag: "reports", Method: "POST", PathTemplate: "/api/v1/reports", Statuses: []int{200, 401, 404, 422}},

	{ID: "getDomainBlocks", Tag: "admin", Method: "GET", PathTemplate: "/api/v1/admin/domain_blocks", Statuses: []int{200, 401, 403}},
	{ID: "createDomainBlock", Tag: "admin", Method: "POST", PathTemplate: "/api/v1/admin/domain_blocks", Statuses: []int{200, 401, 403, 422}},
	{ID: "deleteDomainBlock", Tag: "admin", Method: "DELETE", PathTemplate: "/api/v1/admin/domain_blocks/{id}", Statuses: []int{200, 401, 403, 404}},

	{ID: "getStreamingHealth", Tag: "streaming", Method: "GET", PathTemplate: "/api/v1/streaming/health", Statuses: []int{200}},
	{ID: "getUserStream", Tag: "streaming", Method: "GET", PathTemplate: "/api/v1/streaming/user", Statuses: []int{200, 401}},
	{ID: "getPublicStream", Tag: "streaming", Method: "GET", PathTemplate: "/api/v1/streaming/public", Statuses: []int{200, 401}},
}

// Operations returns every implemented endpoint, grouped by tag.
func Operations() []OperationInfo {
	return sliceutil.Map(operations, cloneOperation)
}

// Lookup returns the endpoint with the given operation id.
func Lookup(id string) (OperationInfo, bool) {
	i := slices.IndexFunc(operations, func(op OperationInfo) bool { return op.ID == id })
	if i < 0 {
		return OperationInfo{}, false
	}

	return cloneOperation(operations[i]), true
}

func cloneOperation(op OperationInfo) OperationInfo {
	op.Statuses = slices.Clone(op.Statuses)
	return op
}

// Pagination selects a page of a list endpoint. The Link header of the response carries the
// URLs of the neighbouring pages.
type Pagination struct {
	// MaxID returns results older than this id.
	MaxID *string
	// SinceID returns results newer than this id.
	SinceID *string
	// MinID returns results immediately newer than this id.
	MinID *string
	Limit *int
}

// Apply adds the set pagination parameters to q.
func (p Pagination) Apply(q url.Values) error {
	if err := client.AddParam(q, "max_id", p.MaxID); err != nil {
		return err
	}
	if err := client.AddParam(q, "since_id", p.SinceID); err != nil {
		return err
	}
	if err := client.AddParam(q, "min_id", p.MinID); err != nil {
		return err
	}
	return client.AddParam(q, "limit", p.Limit)
}
