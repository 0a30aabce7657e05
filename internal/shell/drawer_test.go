package shell

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawerInitiallyClosed(t *testing.T) {
	var d Drawer
	require.False(t, d.IsOpen())
}

func TestDrawerTransitions(t *testing.T) {
	var d Drawer

	require.False(t, d.Close(), "close on a closed drawer is a no-op")
	require.False(t, d.IsOpen())

	require.True(t, d.Open())
	require.True(t, d.IsOpen())

	require.False(t, d.Open(), "open on an open drawer is a no-op")
	require.True(t, d.IsOpen())

	require.True(t, d.Close())
	require.False(t, d.IsOpen())
}

func TestParseDrawer(t *testing.T) {
	cases := []struct {
		query string
		open  bool
	}{
		{"", false},
		{"drawer=open", true},
		{"drawer=closed", false},
		{"drawer=OPEN", false},
		{"other=1&drawer=open", true},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			q, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			require.Equal(t, tc.open, ParseDrawer(q).IsOpen())
		})
	}
}

func TestDrawerHref(t *testing.T) {
	var d Drawer
	require.Equal(t, "/user-model", d.Href("/user-model"))
	d.Open()
	require.Equal(t, "/user-model?drawer=open", d.Href("/user-model"))
}

func TestLayoutClosed(t *testing.T) {
	l := NewLayout(Drawer{}, 0, "/coffee-shop-model")
	require.False(t, l.DrawerOpen)
	require.Equal(t, DefaultDrawerWidth, l.DrawerWidth)
	require.Equal(t, "100%", l.AppBarWidth)
	require.Equal(t, "0", l.AppBarMargin)
	require.True(t, l.ShowOpenButton)
	require.False(t, l.ShowCloseButton)
	require.Equal(t, "/coffee-shop-model?drawer=open", l.OpenHref)
	require.Empty(t, l.CloseHref)
}

func TestLayoutOpen(t *testing.T) {
	var d Drawer
	d.Open()
	l := NewLayout(d, 300, "/")
	require.True(t, l.DrawerOpen)
	require.Equal(t, "calc(100% - 300px)", l.AppBarWidth)
	require.Equal(t, "300px", l.AppBarMargin)
	require.False(t, l.ShowOpenButton, "open button is hidden while open")
	require.True(t, l.ShowCloseButton)
	require.Equal(t, "/", l.CloseHref)
	require.True(t, d.IsOpen(), "layout must not change the drawer")
}

func TestLayoutExactlyOneButton(t *testing.T) {
	for _, open := range []bool{false, true} {
		l := NewLayout(Drawer{open: open}, DefaultDrawerWidth, "/")
		require.NotEqual(t, l.ShowOpenButton, l.ShowCloseButton)
	}
}
