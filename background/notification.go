package background

// NotificationCenter abstracts push notification delivery so workers
// can be tested without a live onesignal application.
type NotificationCenter interface {
	NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyAccountsByTemplate(accountIDs []string, templateID string, data map[string]interface{}) error
	NotifySubscribersByTemplate(templateID string, data map[string]interface{}) error
}
