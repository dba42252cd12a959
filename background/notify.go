package background

import (
	"context"

	"github.com/spf13/viper"

	"github.com/opencampus/assist-api/external/onesignal"
)

// NotifyAccountByText will send message to an account by raw headings, contents and data
func (b *Background) NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "account_id",
			"relation": "=",
			"value":    accountID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}

// NotifyAccountsByTemplate will consolidate account ids and submit notification requests
func (b *Background) NotifyAccountsByTemplate(accountIDs []string, templateID string, data map[string]interface{}) error {
	filters := []map[string]string{}
	for i, a := range accountIDs {
		if i%100 == 0 {
			filters = append(filters, map[string]string{
				"field":    "tag",
				"key":      "account_id",
				"relation": "=",
				"value":    a,
			})
		} else {
			filters = append(filters,
				map[string]string{"operator": "OR"},
				map[string]string{
					"field":    "tag",
					"key":      "account_id",
					"relation": "=",
					"value":    a,
				})
		}
		if i%100 == 99 {
			req := &onesignal.NotificationRequest{
				AppID:          viper.GetString("onesignal.appid"),
				TemplateID:     templateID,
				Filters:        filters,
				Data:           data,
				LocalChannelID: "important_alert",
			}
			if err := b.Onesignal.SendNotification(context.Background(), req); err != nil {
				return err
			}
			filters = []map[string]string{}
		}
	}
	// send rest of notification. an empty filter list would deliver to
	// every device, so the tail is skipped when the batch came out even
	if len(filters) == 0 {
		return nil
	}
	req := &onesignal.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		TemplateID:     templateID,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}

// NotifySubscribersByTemplate delivers a template notification to every
// subscribed device. The requester of a broadcasted request is carried
// in the data payload so clients do not surface a user's own
// submission.
func (b *Background) NotifySubscribersByTemplate(templateID string, data map[string]interface{}) error {
	req := &onesignal.NotificationRequest{
		AppID:            viper.GetString("onesignal.appid"),
		TemplateID:       templateID,
		IncludedSegments: []string{"Subscribed Users"},
		Data:             data,
		LocalChannelID:   "important_alert",
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}
