package email

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeSender) SendWithContext(_ context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func TestSendContactNotification(t *testing.T) {
	sender := &fakeSender{}
	logger := zerolog.Nop()
	client := NewClientWithSender(sender, "Portfolio <site@example.com>", &logger)

	err := client.SendContactNotification(context.Background(), "me@example.com", "A", "a@x.com", "hi <b>there</b>")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	req := sender.sent[0]
	require.Equal(t, "Portfolio <site@example.com>", req.From)
	require.Equal(t, []string{"me@example.com"}, req.To)
	require.Equal(t, "a@x.com", req.ReplyTo)
	require.Equal(t, "New message from A", req.Subject)
	require.Contains(t, req.Html, "a@x.com")
	require.Contains(t, req.Html, "hi &lt;b&gt;there&lt;/b&gt;")
}

func TestSendEmailProviderFailure(t *testing.T) {
	logger := zerolog.Nop()
	client := NewClientWithSender(&fakeSender{err: errors.New("rate limited")}, "x@example.com", &logger)

	err := client.SendContactNotification(context.Background(), "me@example.com", "A", "a@x.com", "hi")
	require.ErrorContains(t, err, "rate limited")
}

func TestRenderPreviewData(t *testing.T) {
	for name, data := range PreviewData {
		body, err := Render(name, data)
		require.NoError(t, err, name)
		require.Contains(t, body, data["Name"])
	}

	_, err := Render(Template("missing"), nil)
	require.Error(t, err)
}
