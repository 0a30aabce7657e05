package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/coffeedocs/internal/content"
)

func TestEndpoint_AllDefaults(t *testing.T) {
	r := New(nil)
	reg := content.Default()
	for _, id := range []content.PageID{content.PageCoffeeShopDocs, content.PageUsersDocs} {
		for _, d := range reg.Endpoints(id) {
			b, err := r.Endpoint(d)
			require.NoError(t, err)
			require.Equal(t, d.Summary, b.Title)
			require.Equal(t, string(d.Method)+" "+d.URI, b.Marker)

			if d.ExamplePayload == nil {
				require.Nil(t, b.Payload, d.Key())
			} else {
				require.NotNil(t, b.Payload, d.Key())
				require.Equal(t, "Payload example:", b.Payload.Label)
				require.Equal(t, *d.ExamplePayload, b.Payload.Code)
			}

			if d.RequiredPermission == nil {
				require.Nil(t, b.Permission, d.Key())
			} else {
				require.Equal(t, "Only staff members allowed", b.Permission.Text)
				require.Equal(t, SeverityWarning, b.Permission.Severity)
			}
		}
	}
}

func TestEndpoint_EmptyOptionalsSuppressed(t *testing.T) {
	b, err := New(nil).Endpoint(content.EndpointDescriptor{
		Method:             content.MethodGet,
		URI:                "/api/v1/cafes",
		Summary:            "List",
		ExamplePayload:     content.Text(""),
		RequiredPermission: content.Text(""),
	})
	require.NoError(t, err)
	require.Nil(t, b.Payload)
	require.Nil(t, b.Permission)
	require.Empty(t, b.Body)
}

func TestEndpoint_BodyIsRenderedDescription(t *testing.T) {
	b, err := New(nil).Endpoint(content.EndpointDescriptor{
		Method:      content.MethodDelete,
		URI:         "/api/v1/cafes/{id}",
		Summary:     "Delete a coffee shop",
		Description: "Delete a coffee shop object.",
	})
	require.NoError(t, err)
	require.Equal(t, "<p>Delete a coffee shop object.</p>\n", string(b.Body))
	require.Equal(t, "delete-api-v1-cafes-id", b.Anchor)
}

func TestPermissionText(t *testing.T) {
	require.Equal(t, "Only admin members allowed", PermissionText("admin"))
}

func TestField_Lines(t *testing.T) {
	r := New(nil)
	tests := []struct {
		name  string
		field content.ModelFieldDescriptor
		want  []string
	}{
		{
			name:  "only type",
			field: content.ModelFieldDescriptor{FieldName: "id", DataType: "int"},
			want:  []string{"type: int"},
		},
		{
			name:  "numeric max length",
			field: content.ModelFieldDescriptor{FieldName: "name", DataType: "string", MaxLength: content.Max(100)},
			want:  []string{"type: string", "max length: 100"},
		},
		{
			name: "all attributes",
			field: content.ModelFieldDescriptor{
				FieldName: "address", DataType: "string",
				Nullable: content.Flag(true), Blankable: content.Flag(true), MaxLength: content.MaxText("50"),
			},
			want: []string{"type: string", "null: true", "blank: true", "max length: 50"},
		},
		{
			name:  "zero max length still shown",
			field: content.ModelFieldDescriptor{FieldName: "rating", DataType: "Float", MaxLength: content.Max(0)},
			want:  []string{"type: Float", "max length: 0"},
		},
		{
			name:  "present false flag is shown",
			field: content.ModelFieldDescriptor{FieldName: "email", DataType: "string", Nullable: content.Flag(false)},
			want:  []string{"type: string", "null: false"},
		},
		{
			name:  "empty max length suppressed",
			field: content.ModelFieldDescriptor{FieldName: "password", DataType: "string", MaxLength: content.MaxText("")},
			want:  []string{"type: string"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := r.Field(tt.field)
			require.NoError(t, err)
			require.Equal(t, tt.field.FieldName, b.Title)
			got := make([]string, len(b.Lines))
			for i, l := range b.Lines {
				got[i] = l.String()
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"POST /api/v1/cafes/nearest":            "post-api-v1-cafes-nearest",
		"GET /api/v1/cafes/search/{searchTerm}": "get-api-v1-cafes-search-searchterm",
		"created_date":                          "created_date",
		"  Leading":                             "leading",
		"":                                      "",
	}
	for in, want := range cases {
		require.Equal(t, want, Slug(in), in)
	}
}
