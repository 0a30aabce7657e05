package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault_CoffeeShopEndpointOrder(t *testing.T) {
	eps := Default().Endpoints(PageCoffeeShopDocs)
	require.Len(t, eps, 7)

	keys := make([]string, len(eps))
	for i, e := range eps {
		keys[i] = e.Key()
	}
	require.Equal(t, []string{
		"POST /api/v1/cafes/nearest",
		"GET /api/v1/cafes/search/{searchTerm}",
		"GET /api/v1/cafes",
		"POST /api/v1/cafes",
		"GET /api/v1/cafes/{id}",
		"PUT /api/v1/cafes/{id}",
		"DELETE /api/v1/cafes/{id}",
	}, keys)
}

func TestDefault_StaffOnlyEndpoints(t *testing.T) {
	for _, e := range Default().Endpoints(PageCoffeeShopDocs) {
		switch e.Method {
		case MethodPost, MethodPut, MethodDelete:
			if e.URI == "/api/v1/cafes/nearest" {
				require.Nil(t, e.RequiredPermission)
				continue
			}
			require.NotNil(t, e.RequiredPermission, e.Key())
			require.Equal(t, "staff", *e.RequiredPermission)
		default:
			require.Nil(t, e.RequiredPermission, e.Key())
		}
	}
}

func TestDefault_UserEndpoints(t *testing.T) {
	eps := Default().Endpoints(PageUsersDocs)
	require.Len(t, eps, 2)
	for _, e := range eps {
		require.Equal(t, MethodPost, e.Method)
		require.Nil(t, e.RequiredPermission)
		require.NotNil(t, e.ExamplePayload)
	}
}

func TestDefault_Models(t *testing.T) {
	reg := Default()

	shop := reg.Fields(PageCoffeeShopModel)
	require.Len(t, shop, 7)
	require.Equal(t, "id", shop[0].FieldName)
	require.Equal(t, "name", shop[1].FieldName)
	require.Equal(t, Limit("100"), *shop[1].MaxLength)
	require.Equal(t, Limit("50"), *shop[3].MaxLength)
	require.True(t, *shop[3].Nullable)

	user := reg.Fields(PageUserModel)
	require.Len(t, user, 4)
	for _, f := range user {
		require.Nil(t, f.Nullable)
		require.Nil(t, f.Blankable)
		require.Nil(t, f.MaxLength)
	}
}

func TestDefault_Menu(t *testing.T) {
	m := Default().Menu()
	require.Len(t, m.Upper, 3)
	require.Len(t, m.Lower, 2)
	require.Equal(t, "/", m.Upper[0].RoutePath)
	require.Equal(t, "/user-model", m.Lower[1].RoutePath)
}

func TestRegistry_AccessorsReturnCopies(t *testing.T) {
	reg := Default()

	eps := reg.Endpoints(PageCoffeeShopDocs)
	eps[0].Summary = "changed"
	*eps[0].ExamplePayload = "changed"
	again := reg.Endpoints(PageCoffeeShopDocs)
	require.Equal(t, "Get a list of the ten nearest coffee shops", again[0].Summary)
	require.NotEqual(t, "changed", *again[0].ExamplePayload)

	fields := reg.Fields(PageCoffeeShopModel)
	*fields[3].Nullable = false
	require.True(t, *reg.Fields(PageCoffeeShopModel)[3].Nullable)

	menu := reg.Menu()
	menu.Upper[0].Label = "changed"
	require.Equal(t, "Home", reg.Menu().Upper[0].Label)
}

func TestRegistry_Counts(t *testing.T) {
	endpoints, fields, menu := Default().Counts()
	require.Equal(t, 9, endpoints)
	require.Equal(t, 11, fields)
	require.Equal(t, 5, menu)
}

func TestRegistry_UnknownPageIsEmpty(t *testing.T) {
	reg := Default()
	require.Empty(t, reg.Endpoints(PageHome))
	require.Empty(t, reg.Fields(PageCoffeeShopDocs))
}

func TestStore_Replace(t *testing.T) {
	first := Default()
	s := NewStore(first)
	require.Same(t, first, s.Load())

	second := Default()
	s.Replace(second)
	require.Same(t, second, s.Load())
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod(" delete ")
	require.NoError(t, err)
	require.Equal(t, MethodDelete, m)

	_, err = ParseMethod("PATCH")
	require.Error(t, err)
}

func TestPageKind(t *testing.T) {
	require.Equal(t, KindEndpoints, PageCoffeeShopDocs.Kind())
	require.Equal(t, KindEndpoints, PageUsersDocs.Kind())
	require.Equal(t, KindFields, PageCoffeeShopModel.Kind())
	require.Equal(t, KindFields, PageUserModel.Kind())
	require.Equal(t, KindLanding, PageHome.Kind())
}

func TestDefaultsCorrectedCopy(t *testing.T) {
	reg := Default()
	var put *EndpointDescriptor
	for _, e := range reg.Endpoints(PageCoffeeShopDocs) {
		if e.Key() == "PUT /api/v1/cafes/{id}" {
			e := e
			put = &e
		}
	}
	require.NotNil(t, put)
	require.Equal(t, "Update a coffee shop object.", put.Description)

	fields := reg.Fields(PageCoffeeShopModel)
	require.NotEmpty(t, fields)
	require.Equal(t, "id", fields[0].FieldName)
	require.Equal(t, "Coffee shop's unique Id consist of an integer, autoincremental", fields[0].Description)
}
