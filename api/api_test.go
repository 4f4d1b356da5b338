package api_test

import (
	"net/url"
	"slices"
	"strconv"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theepicsaxguy/Mastowatch-sub001/api"
	"github.com/theepicsaxguy/Mastowatch-sub001/pointer"
)

func loadDocument(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("testdata/mastodon.openapi.yaml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(t.Context()))
	return doc
}

func TestOperations_MatchDocument_Success(t *testing.T) {
	t.Parallel()

	doc := loadDocument(t)

	seen := map[string]bool{}
	for _, info := range api.Operations() {
		t.Run(info.ID, func(t *testing.T) {
			t.Parallel()

			item := doc.Paths.Find(info.PathTemplate)
			require.NotNil(t, item, "path %s should be documented", info.PathTemplate)

			op := item.GetOperation(info.Method)
			require.NotNil(t, op, "%s %s should be documented", info.Method, info.PathTemplate)
			assert.Equal(t, info.ID, op.OperationID)
			assert.Contains(t, op.Tags, info.Tag)

			documented := make([]int, 0, op.Responses.Len())
			for code := range op.Responses.Map() {
				status, err := strconv.Atoi(code)
				require.NoError(t, err, "response %q should be a status code", code)
				documented = append(documented, status)
			}
			slices.Sort(documented)
			assert.Equal(t, documented, info.Statuses)
		})

		assert.False(t, seen[info.ID], "operation id %s should be unique", info.ID)
		seen[info.ID] = true
	}

	documented := 0
	for _, item := range doc.Paths.Map() {
		documented += len(item.Operations())
	}
	assert.Equal(t, documented, len(seen), "every documented operation should be implemented")
}

func TestOperations_Sorted_Success(t *testing.T) {
	t.Parallel()

	for _, info := range api.Operations() {
		assert.True(t, slices.IsSorted(info.Statuses), "statuses of %s should be sorted", info.ID)
		assert.Contains(t, info.Statuses, 200, "%s should document a success", info.ID)
	}
}

func TestOperations_ReturnsCopy_Success(t *testing.T) {
	t.Parallel()

	ops := api.Operations()
	require.NotEmpty(t, ops)
	ops[0].ID = "changed"
	ops[0].Statuses[0] = 599

	again := api.Operations()
	assert.Equal(t, "createApp", again[0].ID)
	assert.Equal(t, 200, again[0].Statuses[0])
}

func TestLookup_Success(t *testing.T) {
	t.Parallel()

	info, ok := api.Lookup("createStatus")
	require.True(t, ok)
	assert.Equal(t, "statuses", info.Tag)
	assert.Equal(t, "POST", info.Method)
	assert.Equal(t, "/api/v1/statuses", info.PathTemplate)
	assert.Equal(t, []int{200, 401, 422, 429}, info.Statuses)

	info.Statuses[0] = 0
	again, _ := api.Lookup("createStatus")
	assert.Equal(t, 200, again.Statuses[0])

	_, ok = api.Lookup("getTrends")
	assert.False(t, ok)
}

func TestPagination_Apply_Success(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		page     api.Pagination
		expected string
	}{
		{name: "unset", page: api.Pagination{}, expected: ""},
		{
			name:     "all",
			page:     api.Pagination{MaxID: pointer.From("9"), SinceID: pointer.From("1"), MinID: pointer.From("2"), Limit: pointer.From(40)},
			expected: "limit=40&max_id=9&min_id=2&since_id=1",
		},
		{name: "limit only", page: api.Pagination{Limit: pointer.From(0)}, expected: "limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			q := url.Values{}
			require.NoError(t, tt.page.Apply(q))
			assert.Equal(t, tt.expected, q.Encode())
		})
	}
}
