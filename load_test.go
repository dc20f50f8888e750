package openapiv3

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeroenvervaeke/openapiv3/oaserrors"
)

const petstoreYAML = `
openapi: "3.0.3"
info:
  title: Petstore
  version: "1.0.0"
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - $ref: "#/components/parameters/limit"
      responses:
        "200":
          $ref: "#/components/responses/PetList"
        default:
          description: unexpected error
components:
  parameters:
    limit:
      name: limit
      in: query
      schema:
        type: integer
  responses:
    PetList:
      description: a paged list of pets
      content:
        application/json:
          schema:
            $ref: "#/components/schemas/Pets"
  schemas:
    Pets:
      type: array
      items:
        $ref: "#/components/schemas/Pet"
    Pet:
      type: object
      title: Pet
      required: [id, name]
      properties:
        id:
          type: integer
        name:
          type: string
`

func TestLoad_YAML(t *testing.T) {
	doc, err := Load([]byte(petstoreYAML))
	require.NoError(t, err)

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Petstore", doc.Info.Title)
	require.Contains(t, doc.Paths, "/pets")
	require.NotNil(t, doc.Components)
	assert.Len(t, doc.Components.Schemas, 2)
}

func TestLoad_JSON(t *testing.T) {
	src := `{
		"openapi": "3.0.0",
		"info": {"title": "minimal", "version": "0.1.0"},
		"paths": {},
		"components": {
			"schemas": {
				"Empty": {"type": "object"}
			}
		}
	}`

	doc, err := Load([]byte(src))
	require.NoError(t, err, "the YAML parser should accept JSON input")
	assert.Equal(t, "3.0.0", doc.OpenAPI)
	require.NotNil(t, doc.Components)
	assert.Contains(t, doc.Components.Schemas, "Empty")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"invalid yaml", ":\n  - ]["},
		{"missing openapi field", "info:\n  title: no version\n  version: \"1.0\""},
		{"swagger 2.0 document", "openapi: \"2.0\"\ninfo:\n  title: old\n  version: \"1.0\""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Load([]byte(tc.src))
			assert.Nil(t, doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrParse)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("loads a document from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "petstore.yaml")
		require.NoError(t, os.WriteFile(path, []byte(petstoreYAML), 0o644))

		doc, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Petstore", doc.Info.Title)
	})

	t.Run("file over the size limit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "huge.yaml")
		require.NoError(t, os.WriteFile(path, make([]byte, MaxFileSize+1), 0o644))

		doc, err := LoadFile(path)
		assert.Nil(t, doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)

		var limitErr *oaserrors.ResourceLimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, "file_size", limitErr.ResourceType)
		assert.Equal(t, int64(MaxFileSize), limitErr.Limit)
		assert.Equal(t, int64(MaxFileSize+1), limitErr.Actual)
	})

	t.Run("missing file", func(t *testing.T) {
		doc, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Nil(t, doc)
		require.Error(t, err)
		assert.ErrorIs(t, err, oaserrors.ErrParse)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("parse errors carry the file path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("openapi: \"2.0\""), 0o644))

		_, err := LoadFile(path)
		require.Error(t, err)

		var parseErr *oaserrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, path, parseErr.Path)
	})
}

// TestLoad_ResolveLoadedDocument covers the whole pipeline: decode a
// document with reference chains, then resolve them.
func TestLoad_ResolveLoadedDocument(t *testing.T) {
	doc, err := Load([]byte(petstoreYAML))
	require.NoError(t, err)

	pets := doc.Paths["/pets"]
	require.NotNil(t, pets)
	require.NotNil(t, pets.Value)

	get := pets.Value.Get
	require.NotNil(t, get)

	param := doc.ResolveParameter(get.Parameters[0])
	require.NotNil(t, param)
	assert.Equal(t, "limit", param.Name)

	resp := doc.ResolveResponse(get.Responses.Codes["200"])
	require.NotNil(t, resp)
	assert.Equal(t, "a paged list of pets", resp.Description)

	listSchema := doc.ResolveSchema(resp.Content["application/json"].Schema)
	require.NotNil(t, listSchema)
	assert.Equal(t, "array", listSchema.Type)

	petSchema := doc.ResolveSchema(listSchema.Items)
	require.NotNil(t, petSchema)
	assert.Equal(t, "Pet", petSchema.Title)
	require.Contains(t, petSchema.Properties, "name")
	name := doc.ResolveSchema(petSchema.Properties["name"])
	require.NotNil(t, name)
	assert.Equal(t, "string", name.Type)
}
