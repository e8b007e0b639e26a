package settings

// DefaultNotificationEnable returns the default per-event toggles: every
// event type enabled.
func DefaultNotificationEnable() *NotificationEnable {
	return &NotificationEnable{
		Admin:             true,
		Core:              true,
		Group:             true,
		Host:              true,
		Login:             true,
		Node:              true,
		User:              true,
		UserTemplate:      true,
		DaysLeft:          true,
		PercentageReached: true,
	}
}

// DefaultManualSubRequest returns the default per-format toggles: every
// format may be requested explicitly.
func DefaultManualSubRequest() *ManualSubRequest {
	return &ManualSubRequest{
		Links:       true,
		LinksBase64: true,
		Xray:        true,
		SingBox:     true,
		Clash:       true,
		ClashMeta:   true,
		Outline:     true,
	}
}

// DefaultDocument returns the document used before anything has been
// persisted. Channel sections stay absent; sections with declared defaults
// are populated.
func DefaultDocument() *Document {
	return &Document{
		NotificationEnable: DefaultNotificationEnable(),
	}
}

// Canonicalize fills defaulted sections and normalizes list fields in place,
// producing the shape returned to callers and handed to validation.
func (d *Document) Canonicalize() {
	if d.NotificationEnable == nil {
		d.NotificationEnable = DefaultNotificationEnable()
	}
	if d.Subscription != nil && d.Subscription.ManualSubRequest == nil {
		d.Subscription.ManualSubRequest = DefaultManualSubRequest()
	}
	if d.Subscription != nil && d.Subscription.Rules == nil {
		d.Subscription.Rules = []SubscriptionRule{}
	}
	if d.Webhook != nil {
		d.Webhook.Endpoints = normalizeEndpointList(d.Webhook.Endpoints)
		d.Webhook.DaysLeft = NormalizeIntList(d.Webhook.DaysLeft)
		d.Webhook.UsagePercent = NormalizeIntList(d.Webhook.UsagePercent)
	}
}

// NormalizeIntList coerces a null list to an empty one. Order of a non-null
// list is preserved untouched.
func NormalizeIntList(v []int) []int {
	if v == nil {
		return []int{}
	}
	return v
}

func normalizeEndpointList(v []WebhookEndpoint) []WebhookEndpoint {
	if v == nil {
		return []WebhookEndpoint{}
	}
	return v
}
