// Package settings holds the platform configuration document: notification
// channel credentials, per-event notification toggles, and subscription
// rendering rules. The document is a singleton record mutated only through
// the merge-validate-persist cycle in the application layer.
package settings

// ClientFormat identifies a subscription output format understood by client
// applications.
type ClientFormat string

const (
	FormatLinks       ClientFormat = "links"
	FormatLinksBase64 ClientFormat = "links_base64"
	FormatXray        ClientFormat = "xray"
	FormatSingBox     ClientFormat = "sing_box"
	FormatClash       ClientFormat = "clash"
	FormatClashMeta   ClientFormat = "clash_meta"
	FormatOutline     ClientFormat = "outline"
)

// ClientFormats lists every supported subscription format.
var ClientFormats = []ClientFormat{
	FormatLinks,
	FormatLinksBase64,
	FormatXray,
	FormatSingBox,
	FormatClash,
	FormatClashMeta,
	FormatOutline,
}

// IsValidClientFormat reports whether f names a supported format.
func IsValidClientFormat(f ClientFormat) bool {
	for _, known := range ClientFormats {
		if f == known {
			return true
		}
	}
	return false
}

// TelegramConfig configures the Telegram notification channel.
type TelegramConfig struct {
	Enable        bool    `json:"enable"`
	Token         *string `json:"token"`
	WebhookURL    *string `json:"webhook_url"`
	WebhookSecret *string `json:"webhook_secret"`
	ProxyURL      *string `json:"proxy_url"`
}

// DiscordConfig configures the Discord notification channel.
type DiscordConfig struct {
	Enable   bool    `json:"enable"`
	Token    *string `json:"token"`
	ProxyURL *string `json:"proxy_url"`
}

// WebhookEndpoint is one generic webhook target.
type WebhookEndpoint struct {
	URL    string  `json:"url"`
	Secret *string `json:"secret"`
}

// WebhookConfig configures the generic webhook notification channel.
// DaysLeft and UsagePercent are ordered threshold lists; they are stored as
// empty slices, never null.
type WebhookConfig struct {
	Enable       bool              `json:"enable"`
	Endpoints    []WebhookEndpoint `json:"endpoints"`
	DaysLeft     []int             `json:"days_left"`
	UsagePercent []int             `json:"usage_percent"`
	Timeout      int               `json:"timeout"`
	Recurrent    int               `json:"recurrent"`
	ProxyURL     *string           `json:"proxy_url"`
}

// NotificationSettings holds cross-channel notification options.
type NotificationSettings struct {
	NotifyTelegram    bool    `json:"notify_telegram"`
	NotifyDiscord     bool    `json:"notify_discord"`
	TelegramAPIToken  *string `json:"telegram_api_token"`
	TelegramAdminID   *int64  `json:"telegram_admin_id"`
	TelegramChannelID *int64  `json:"telegram_channel_id"`
	TelegramTopicID   *int64  `json:"telegram_topic_id"`
	DiscordWebhookURL *string `json:"discord_webhook_url"`
	ProxyURL          *string `json:"proxy_url"`
	MaxRetries        int     `json:"max_retries"`
}

// NotificationEnable toggles notification dispatch per event type.
type NotificationEnable struct {
	Admin             bool `json:"admin"`
	Core              bool `json:"core"`
	Group             bool `json:"group"`
	Host              bool `json:"host"`
	Login             bool `json:"login"`
	Node              bool `json:"node"`
	User              bool `json:"user"`
	UserTemplate      bool `json:"user_template"`
	DaysLeft          bool `json:"days_left"`
	PercentageReached bool `json:"percentage_reached"`
}

// SubscriptionRule routes a client to a target format. Rules are evaluated
// in list order, first match wins.
type SubscriptionRule struct {
	Pattern string       `json:"pattern"`
	Target  ClientFormat `json:"target"`
}

// ManualSubRequest toggles explicit per-format subscription paths.
type ManualSubRequest struct {
	Links       bool `json:"links"`
	LinksBase64 bool `json:"links_base64"`
	Xray        bool `json:"xray"`
	SingBox     bool `json:"sing_box"`
	Clash       bool `json:"clash"`
	ClashMeta   bool `json:"clash_meta"`
	Outline     bool `json:"outline"`
}

// Allows reports whether manual requests for the given format are enabled.
func (m *ManualSubRequest) Allows(f ClientFormat) bool {
	switch f {
	case FormatLinks:
		return m.Links
	case FormatLinksBase64:
		return m.LinksBase64
	case FormatXray:
		return m.Xray
	case FormatSingBox:
		return m.SingBox
	case FormatClash:
		return m.Clash
	case FormatClashMeta:
		return m.ClashMeta
	case FormatOutline:
		return m.Outline
	default:
		return false
	}
}

// SubscriptionConfig configures subscription link rendering.
type SubscriptionConfig struct {
	URLPrefix        *string            `json:"url_prefix"`
	UpdateInterval   int                `json:"update_interval"`
	SupportURL       string             `json:"support_url"`
	ProfileTitle     string             `json:"profile_title"`
	HostStatusFilter bool               `json:"host_status_filter"`
	Rules            []SubscriptionRule `json:"rules"`
	ManualSubRequest *ManualSubRequest  `json:"manual_sub_request"`
}

// Document is the full settings record. Top-level sections are optional and
// serialize as null when absent; a present section must pass every field
// validation before it is persisted.
type Document struct {
	Telegram             *TelegramConfig       `json:"telegram"`
	Discord              *DiscordConfig        `json:"discord"`
	Webhook              *WebhookConfig        `json:"webhook"`
	NotificationSettings *NotificationSettings `json:"notification_settings"`
	NotificationEnable   *NotificationEnable   `json:"notification_enable"`
	Subscription         *SubscriptionConfig   `json:"subscription"`
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := &Document{}
	if d.Telegram != nil {
		tg := *d.Telegram
		tg.Token = cloneStringPtr(d.Telegram.Token)
		tg.WebhookURL = cloneStringPtr(d.Telegram.WebhookURL)
		tg.WebhookSecret = cloneStringPtr(d.Telegram.WebhookSecret)
		tg.ProxyURL = cloneStringPtr(d.Telegram.ProxyURL)
		out.Telegram = &tg
	}
	if d.Discord != nil {
		dc := *d.Discord
		dc.Token = cloneStringPtr(d.Discord.Token)
		dc.ProxyURL = cloneStringPtr(d.Discord.ProxyURL)
		out.Discord = &dc
	}
	if d.Webhook != nil {
		wh := *d.Webhook
		wh.Endpoints = make([]WebhookEndpoint, len(d.Webhook.Endpoints))
		for i, ep := range d.Webhook.Endpoints {
			wh.Endpoints[i] = WebhookEndpoint{URL: ep.URL, Secret: cloneStringPtr(ep.Secret)}
		}
		wh.DaysLeft = append([]int(nil), d.Webhook.DaysLeft...)
		wh.UsagePercent = append([]int(nil), d.Webhook.UsagePercent...)
		wh.ProxyURL = cloneStringPtr(d.Webhook.ProxyURL)
		out.Webhook = &wh
	}
	if d.NotificationSettings != nil {
		ns := *d.NotificationSettings
		ns.TelegramAPIToken = cloneStringPtr(d.NotificationSettings.TelegramAPIToken)
		ns.TelegramAdminID = cloneInt64Ptr(d.NotificationSettings.TelegramAdminID)
		ns.TelegramChannelID = cloneInt64Ptr(d.NotificationSettings.TelegramChannelID)
		ns.TelegramTopicID = cloneInt64Ptr(d.NotificationSettings.TelegramTopicID)
		ns.DiscordWebhookURL = cloneStringPtr(d.NotificationSettings.DiscordWebhookURL)
		ns.ProxyURL = cloneStringPtr(d.NotificationSettings.ProxyURL)
		out.NotificationSettings = &ns
	}
	if d.NotificationEnable != nil {
		ne := *d.NotificationEnable
		out.NotificationEnable = &ne
	}
	if d.Subscription != nil {
		sub := *d.Subscription
		sub.URLPrefix = cloneStringPtr(d.Subscription.URLPrefix)
		sub.Rules = append([]SubscriptionRule(nil), d.Subscription.Rules...)
		if d.Subscription.ManualSubRequest != nil {
			msr := *d.Subscription.ManualSubRequest
			sub.ManualSubRequest = &msr
		}
		out.Subscription = &sub
	}
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt64Ptr(i *int64) *int64 {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
