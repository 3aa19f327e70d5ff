package mailx_test

import (
	"testing"

	"github.com/intlakaa/backoffice/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func TestRenderInvite(t *testing.T) {
	t.Parallel()

	html, err := mailx.RenderInvite("Ali", "https://app.example/accept-invite?token=abc123")
	require.NoError(t, err)
	require.Contains(t, html, "Ali")
	require.Contains(t, html, "https://app.example/accept-invite?token=abc123")
	require.Contains(t, html, "expires in 1 hour")
}

func TestRenderInviteEscapesHostileInput(t *testing.T) {
	t.Parallel()

	html, err := mailx.RenderInvite("<script>alert(1)</script>", "https://app.example/x")
	require.NoError(t, err)
	require.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderRequestNotification(t *testing.T) {
	t.Parallel()

	html, err := mailx.RenderRequestNotification(mailx.RequestNotification{
		Name:         "Ali",
		Phone:        "0555555555",
		StoreURL:     "https://store.example",
		MonthlySales: "5000",
	})
	require.NoError(t, err)
	require.Contains(t, html, "0555555555")
	require.Contains(t, html, "https://store.example")
}

func TestDisabledMailer(t *testing.T) {
	t.Parallel()

	var m mailx.Mailer = mailx.Disabled{}
	require.False(t, m.Configured())
	require.ErrorIs(t, m.Send(t.Context(), "a@b.com", "s", "<p>hi</p>"), mailx.ErrNotConfigured)
}

func TestConfigComplete(t *testing.T) {
	t.Parallel()

	require.False(t, mailx.Config{}.Complete())
	require.False(t, mailx.Config{Host: "smtp.example"}.Complete())
	require.True(t, mailx.Config{Host: "smtp.example", Username: "u", Password: "p"}.Complete())
}
