package openapiv3

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestReferenceOr_Constructors(t *testing.T) {
	item := NewItem(Schema{Title: "pet"})
	require.NotNil(t, item.Value)
	assert.Equal(t, "pet", item.Value.Title)
	assert.False(t, item.IsRef())

	ref := NewRef[Schema]("#/components/schemas/Pet")
	assert.Equal(t, "#/components/schemas/Pet", ref.Ref)
	assert.Nil(t, ref.Value)
	assert.True(t, ref.IsRef())

	var nilNode *ReferenceOr[Schema]
	assert.False(t, nilNode.IsRef())
}

func TestReferenceOr_UnmarshalYAML(t *testing.T) {
	t.Run("pointer form", func(t *testing.T) {
		var node ReferenceOr[Schema]
		err := yaml.Unmarshal([]byte(`$ref: "#/components/schemas/Pet"`), &node)
		require.NoError(t, err)
		assert.True(t, node.IsRef())
		assert.Equal(t, "#/components/schemas/Pet", node.Ref)
		assert.Nil(t, node.Value)
	})

	t.Run("inline form", func(t *testing.T) {
		var node ReferenceOr[Schema]
		err := yaml.Unmarshal([]byte("type: string\ntitle: pet name"), &node)
		require.NoError(t, err)
		assert.False(t, node.IsRef())
		require.NotNil(t, node.Value)
		assert.Equal(t, "string", node.Value.Type)
		assert.Equal(t, "pet name", node.Value.Title)
	})

	t.Run("empty $ref decodes as inline", func(t *testing.T) {
		var node ReferenceOr[Schema]
		err := yaml.Unmarshal([]byte(`$ref: ""`), &node)
		require.NoError(t, err)
		assert.False(t, node.IsRef())
	})
}

func TestReferenceOr_MarshalYAML(t *testing.T) {
	t.Run("pointer form round-trips", func(t *testing.T) {
		in := NewRef[Response]("#/components/responses/NotFound")
		data, err := yaml.Marshal(in)
		require.NoError(t, err)

		var out ReferenceOr[Response]
		require.NoError(t, yaml.Unmarshal(data, &out))
		assert.Equal(t, in.Ref, out.Ref)
		assert.Nil(t, out.Value)
	})

	t.Run("inline form round-trips", func(t *testing.T) {
		in := NewItem(Response{Description: "not found"})
		data, err := yaml.Marshal(in)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "$ref")

		var out ReferenceOr[Response]
		require.NoError(t, yaml.Unmarshal(data, &out))
		require.NotNil(t, out.Value)
		assert.Equal(t, "not found", out.Value.Description)
	})
}

func TestReferenceOr_JSON(t *testing.T) {
	t.Run("pointer form", func(t *testing.T) {
		var node ReferenceOr[Parameter]
		err := json.Unmarshal([]byte(`{"$ref": "#/components/parameters/limit"}`), &node)
		require.NoError(t, err)
		assert.True(t, node.IsRef())
		assert.Equal(t, "#/components/parameters/limit", node.Ref)

		data, err := json.Marshal(node)
		require.NoError(t, err)
		assert.JSONEq(t, `{"$ref": "#/components/parameters/limit"}`, string(data))
	})

	t.Run("inline form", func(t *testing.T) {
		var node ReferenceOr[Parameter]
		err := json.Unmarshal([]byte(`{"name": "limit", "in": "query"}`), &node)
		require.NoError(t, err)
		assert.False(t, node.IsRef())
		require.NotNil(t, node.Value)
		assert.Equal(t, "limit", node.Value.Name)
		assert.Equal(t, ParamInQuery, node.Value.In)
	})
}

func TestResponses_UnmarshalYAML(t *testing.T) {
	src := `
default:
  description: unexpected error
"200":
  $ref: "#/components/responses/ok"
"404":
  description: not found
`
	var responses Responses
	require.NoError(t, yaml.Unmarshal([]byte(src), &responses))

	require.NotNil(t, responses.Default)
	require.NotNil(t, responses.Default.Value)
	assert.Equal(t, "unexpected error", responses.Default.Value.Description)

	require.Contains(t, responses.Codes, "200")
	assert.Equal(t, "#/components/responses/ok", responses.Codes["200"].Ref)

	require.Contains(t, responses.Codes, "404")
	require.NotNil(t, responses.Codes["404"].Value)
	assert.Equal(t, "not found", responses.Codes["404"].Value.Description)
}

func TestResponses_MarshalRoundTrip(t *testing.T) {
	in := Responses{
		Default: NewItem(Response{Description: "unexpected error"}),
		Codes: map[string]*ReferenceOr[Response]{
			"200": NewRef[Response]("#/components/responses/ok"),
			"404": NewItem(Response{Description: "not found"}),
		},
	}

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(in)
		require.NoError(t, err)
		assert.Contains(t, string(data), "default:", "Default folds back under the default key")

		var out Responses
		require.NoError(t, yaml.Unmarshal(data, &out))
		require.NotNil(t, out.Default)
		require.NotNil(t, out.Default.Value)
		assert.Equal(t, "unexpected error", out.Default.Value.Description)
		assert.Equal(t, "#/components/responses/ok", out.Codes["200"].Ref)
		require.NotNil(t, out.Codes["404"].Value)
		assert.Equal(t, "not found", out.Codes["404"].Value.Description)
		assert.NotContains(t, out.Codes, "default", "default is not a status code")
	})

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out Responses
		require.NoError(t, json.Unmarshal(data, &out))
		require.NotNil(t, out.Default)
		require.NotNil(t, out.Default.Value)
		assert.Equal(t, "unexpected error", out.Default.Value.Description)
		assert.Equal(t, "#/components/responses/ok", out.Codes["200"].Ref)
		assert.NotContains(t, out.Codes, "default")
	})
}
