package testutils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"
)

// Response bodies shared by endpoint tests. Each decodes as the named model.
const (
	AccountJSON = `{"id":"5","username":"carol","acct":"carol","url":"https://mastodon.example/@carol",` +
		`"display_name":"Carol","note":"","avatar":"https://mastodon.example/a.png","avatar_static":"https://mastodon.example/a.png",` +
		`"header":"https://mastodon.example/h.png","header_static":"https://mastodon.example/h.png",` +
		`"locked":false,"fields":[],"emojis":[],"bot":false,"group":false,"discoverable":true,` +
		`"created_at":"2023-01-01T00:00:00Z","last_status_at":"2024-05-01","statuses_count":3,"followers_count":1,"following_count":2}`

	CredentialAccountJSON = `{"id":"5","username":"carol","acct":"carol","url":"https://mastodon.example/@carol",` +
		`"display_name":"Carol","note":"","avatar":"https://mastodon.example/a.png","avatar_static":"https://mastodon.example/a.png",` +
		`"header":"https://mastodon.example/h.png","header_static":"https://mastodon.example/h.png",` +
		`"locked":false,"fields":[],"emojis":[],"bot":false,"group":false,"discoverable":true,` +
		`"created_at":"2023-01-01T00:00:00Z","last_status_at":null,"statuses_count":3,"followers_count":1,"following_count":2,` +
		`"source":{"note":"","fields":[],"privacy":"unlisted","sensitive":false,"language":null,"follow_requests_count":0}}`

	MediaAttachmentJSON = `{"id":"22","type":"image","url":"https://files.mastodon.example/22.png",` +
		`"preview_url":"https://files.mastodon.example/22_small.png","remote_url":null,` +
		`"meta":{"original":{"width":3,"height":1}},"description":"alt","blurhash":null}`

	RelationshipJSON = `{"id":"5","following":true,"showing_reblogs":true,"notifying":false,"languages":null,` +
		`"followed_by":false,"blocking":false,"blocked_by":false,"muting":false,"muting_notifications":false,` +
		`"requested":false,"requested_by":false,"domain_blocking":false,"endorsed":false,"note":""}`

	FilterJSON = `{"id":"7","title":"spoilers","context":["home","public"],"expires_at":null,"filter_action":"hide",` +
		`"keywords":[{"id":"1","keyword":"finale","whole_word":true}],"statuses":[]}`

	DomainBlockJSON = `{"id":"3","domain":"spam.example","digest":"abc","created_at":"2024-01-01T00:00:00Z",` +
		`"severity":"suspend","reject_media":true,"reject_reports":true,"private_comment":null,"public_comment":"spam","obfuscate":false}`

	ErrorJSON = `{"error":"Record not found"}`

	ValidationErrorJSON = `{"error":"Validation failed: Text can't be blank",` +
		`"details":{"text":[{"error":"ERR_BLANK","description":"can't be blank"}]}}`
)

// StatusJSON returns a status with the given id, authored by the AccountJSON account.
func StatusJSON(id string) string {
	return strings.NewReplacer("{id}", id, "{account}", AccountJSON).Replace(
		`{"id":"{id}","uri":"https://mastodon.example/users/carol/statuses/{id}","url":null,` +
			`"created_at":"2024-05-01T12:00:00Z","account":{account},"content":"<p>hi</p>","visibility":"public",` +
			`"sensitive":false,"spoiler_text":"","media_attachments":[],"mentions":[],"tags":[],"emojis":[],` +
			`"reblogs_count":0,"favourites_count":0,"replies_count":0,"reblog":null,"poll":null,"card":null,"language":"en"}`)
}

// NotificationJSON returns a mention notification with the given id.
func NotificationJSON(id string) string {
	return `{"id":"` + id + `","type":"mention","created_at":"2024-05-01T12:00:00Z","account":` + AccountJSON +
		`,"status":` + StatusJSON("1"+id) + `}`
}

// ReportJSON is a report against the AccountJSON account.
func ReportJSON() string {
	return `{"id":"48914","action_taken":false,"action_taken_at":null,"category":"spam","comment":"",` +
		`"forwarded":false,"created_at":"2024-05-01T12:00:00Z","status_ids":["1"],"rule_ids":null,"target_account":` +
		AccountJSON + `}`
}

// With returns doc with the value at path replaced, using sjson path syntax. A nil value deletes
// the field.
func With(t *testing.T, doc, path string, value any) string {
	t.Helper()

	var (
		out string
		err error
	)
	if value == nil {
		out, err = sjson.Delete(doc, path)
	} else {
		out, err = sjson.Set(doc, path, value)
	}
	require.NoError(t, err)
	return out
}

// WithRaw returns doc with the value at path replaced by the raw JSON raw.
func WithRaw(t *testing.T, doc, path, raw string) string {
	t.Helper()

	out, err := sjson.SetRaw(doc, path, raw)
	require.NoError(t, err)
	return out
}
