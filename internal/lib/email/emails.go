package email

import "context"

// SendContactNotification tells the site owner about a new contact form
// message. Replies go straight to the visitor.
func (c *Client) SendContactNotification(ctx context.Context, to, name, fromEmail, message string) error {
	data := map[string]string{
		"Name":    name,
		"Email":   fromEmail,
		"Message": message,
	}

	return c.SendEmail(
		ctx,
		to,
		fromEmail,
		"New message from "+name,
		TemplateContactNotification,
		data,
	)
}
