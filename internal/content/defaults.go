package content

const (
	coffeeShopPayload = `{"name": "coffee shop", "location": [-123.123, 123.123], "address": "False st. 123", "rating": 5.0}`
	coffeeShopUpdate  = `{"name": "coffee shop", "location": [-123.123, 123.123], "address": "False st. 123"}`
	credentials       = `{ "email": "email@emailprovider.com", "password": "hyper-secure-password" }`
	staff             = "staff"
)

// Default returns the compiled-in registry.
func Default() *Registry {
	return &Registry{
		endpoints: map[PageID][]EndpointDescriptor{
			PageCoffeeShopDocs: coffeeShopEndpoints(),
			PageUsersDocs:      userEndpoints(),
		},
		fields: map[PageID][]ModelFieldDescriptor{
			PageCoffeeShopModel: coffeeShopFields(),
			PageUserModel:       userFields(),
		},
		menu: defaultMenu(),
	}
}

// Search endpoints come before CRUD, matching how the API groups them.
func coffeeShopEndpoints() []EndpointDescriptor {
	return []EndpointDescriptor{
		{
			Method:         MethodPost,
			URI:            "/api/v1/cafes/nearest",
			Summary:        "Get a list of the ten nearest coffee shops",
			Description:    "Get a list of the user ten nearest coffee shops in Guadalajara, ordered by distance. It needs user's latitude and longitude as float numbers",
			ExamplePayload: Text(`{"latitude": -103.3668161, "longitude": 20.6708447}`),
		},
		{
			Method:      MethodGet,
			URI:         "/api/v1/cafes/search/{searchTerm}",
			Summary:     "Search coffee shops by name or address",
			Description: "Get a list of all coffee shops whose address or name match the search term.",
		},
		{
			Method:      MethodGet,
			URI:         "/api/v1/cafes",
			Summary:     "Get a list of coffee shops",
			Description: "Get a list of all coffee shop in Guadalajara. Use page and size GET arguments to regulate the number of objects returned.",
		},
		{
			Method:             MethodPost,
			URI:                "/api/v1/cafes",
			Summary:            "Create a new coffee shop",
			Description:        "Create a coffee shop object.",
			ExamplePayload:     Text(coffeeShopPayload),
			RequiredPermission: Text(staff),
		},
		{
			Method:      MethodGet,
			URI:         "/api/v1/cafes/{id}",
			Summary:     "Get a new coffee shop by its id",
			Description: "Get a specific coffee shop object. Id parameter must be an integer.",
		},
		{
			Method:             MethodPut,
			URI:                "/api/v1/cafes/{id}",
			Summary:            "Update a coffee shop",
			Description:        "Update a coffee shop object.",
			ExamplePayload:     Text(coffeeShopUpdate),
			RequiredPermission: Text(staff),
		},
		{
			Method:             MethodDelete,
			URI:                "/api/v1/cafes/{id}",
			Summary:            "Delete a coffee shop",
			Description:        "Delete a coffee shop object.",
			RequiredPermission: Text(staff),
		},
	}
}

func userEndpoints() []EndpointDescriptor {
	return []EndpointDescriptor{
		{
			Method:         MethodPost,
			URI:            "/api/v1/login",
			Summary:        "Login to an account",
			Description:    "Login to user account, requires an email and a password. When login is successful server returns a JWT authorization token.",
			ExamplePayload: Text(credentials),
		},
		{
			Method:         MethodPost,
			URI:            "/api/v1/signup",
			Summary:        "Create a new account",
			Description:    "Register a new user in the system, requires an email and a password. Registrations are closed.",
			ExamplePayload: Text(credentials),
		},
	}
}

func coffeeShopFields() []ModelFieldDescriptor {
	return []ModelFieldDescriptor{
		{FieldName: "id", Description: "Coffee shop's unique Id consist of an integer, autoincremental", DataType: "int"},
		{FieldName: "name", Description: "Coffee shop's name", DataType: "string", MaxLength: Max(100)},
		{FieldName: "location", Description: "The coordinates of the coffee shop in the form of tuple: [-123.123456, 123.123456]", DataType: "Point"},
		{FieldName: "address", Description: "Coffee shop's address, number included", DataType: "string", Nullable: Flag(true), Blankable: Flag(true), MaxLength: MaxText("50")},
		{FieldName: "rating", Description: "Our main barista rating for that coffee shop. Min 0, Max 5", DataType: "Float", Nullable: Flag(true), Blankable: Flag(true)},
		{FieldName: "created_date", Description: "Date when coffee shop was registered", DataType: "Datetime"},
		{FieldName: "modified_date", Description: "Date when coffee shop was last updated", DataType: "Datetime"},
	}
}

func userFields() []ModelFieldDescriptor {
	return []ModelFieldDescriptor{
		{FieldName: "id", Description: "User's unique Id consist of an integer, autoincremental", DataType: "int"},
		{FieldName: "email", Description: "User's email in the form user@provider.com", DataType: "string"},
		{FieldName: "password", Description: "User's password, must be longer than 8 characters", DataType: "string"},
		{FieldName: "username", Description: "User's username, optional. Currently not used", DataType: "string"},
	}
}

func defaultMenu() Menu {
	return Menu{
		Upper: []MenuEntry{
			{Label: "Home", RoutePath: "/"},
			{Label: "Coffee shop documentation", RoutePath: "/coffee-shop-documentation"},
			{Label: "User documentation", RoutePath: "/users-documentation"},
		},
		Lower: []MenuEntry{
			{Label: "Coffee shop model", RoutePath: "/coffee-shop-model"},
			{Label: "User model", RoutePath: "/user-model"},
		},
	}
}
