package email

// PreviewData contains sample template data for local preview/testing,
// keyed by template name.
var PreviewData = map[Template]map[string]string{
	TemplateContactNotification: {
		"Name":    "Jane Visitor",
		"Email":   "jane@example.com",
		"Message": "Hi! I enjoyed your projects page.\nAre you open to a chat?",
	},
}
