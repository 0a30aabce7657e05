package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
)

const sampleContent = `
menu:
  upper:
    - {label: Home, route: /}
  lower:
    - {label: Coffee shop model, route: /coffee-shop-model}
endpoints:
  coffee-shop-documentation:
    - method: get
      uri: /api/v1/cafes
      summary: List
      description: Lists shops.
      example_payload: ""
    - method: POST
      uri: /api/v1/cafes
      summary: Create
      description: Creates a shop.
      example_payload: '{"name": "x"}'
      required_permission: staff
models:
  coffee-shop-model:
    - {field: id, description: Id, type: int}
    - {field: name, description: Name, type: string, max_length: 100}
    - {field: address, description: Address, type: string, nullable: false, max_length: "50"}
    - {field: rating, description: Rating, type: Float, max_length: ""}
`

func TestParse_Valid(t *testing.T) {
	reg, err := Parse([]byte(sampleContent))
	require.NoError(t, err)

	eps := reg.Endpoints(PageCoffeeShopDocs)
	require.Len(t, eps, 2)
	require.Equal(t, MethodGet, eps[0].Method)
	require.Nil(t, eps[0].ExamplePayload, "blank payload should normalize to absent")
	require.Equal(t, "staff", *eps[1].RequiredPermission)

	fields := reg.Fields(PageCoffeeShopModel)
	require.Equal(t, Limit("100"), *fields[1].MaxLength)
	require.Equal(t, Limit("50"), *fields[2].MaxLength)
	require.NotNil(t, fields[2].Nullable)
	require.False(t, *fields[2].Nullable)
	require.Nil(t, fields[3].MaxLength)

	require.Len(t, reg.Menu().Upper, 1)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad method":      "endpoints:\n  users-documentation:\n    - {method: PATCH, uri: /x, summary: s}\n",
		"relative uri":    "endpoints:\n  users-documentation:\n    - {method: GET, uri: x, summary: s}\n",
		"missing summary": "endpoints:\n  users-documentation:\n    - {method: GET, uri: /x}\n",
		"duplicate":       "endpoints:\n  users-documentation:\n    - {method: GET, uri: /x, summary: a}\n    - {method: get, uri: /x, summary: b}\n",
		"wrong page kind": "endpoints:\n  user-model:\n    - {method: GET, uri: /x, summary: s}\n",
		"fields on docs":  "models:\n  users-documentation:\n    - {field: id, type: int}\n",
		"dup field":       "models:\n  user-model:\n    - {field: id, type: int}\n    - {field: id, type: int}\n",
		"empty field":     "models:\n  user-model:\n    - {field: '', type: int}\n",
		"menu route":      "menu:\n  upper:\n    - {label: Home, route: home}\n",
		"unknown key":     "pages: []\n",
		"list max length": "models:\n  user-model:\n    - {field: id, type: int, max_length: [1]}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			require.True(t, errors.HasCategory(err, errors.CategoryContent), "got %v", err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleContent), 0o600))

	reg, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, reg.Endpoints(PageCoffeeShopDocs), 2)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.HasCategory(err, errors.CategoryFileSystem))

	require.NoError(t, os.WriteFile(path, []byte("endpoints: {user-model: [{method: GET, uri: /x, summary: s}]}"), 0o600))
	_, err = LoadFile(path)
	c, ok := errors.AsClassified(err)
	require.True(t, ok)
	file, _ := c.Context().Get("file")
	require.Equal(t, path, file)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	reg, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, Default().Endpoints(PageCoffeeShopDocs), reg.Endpoints(PageCoffeeShopDocs))
	require.Equal(t, Default().Fields(PageCoffeeShopModel), reg.Fields(PageCoffeeShopModel))
	require.Equal(t, Default().Menu(), reg.Menu())
}
