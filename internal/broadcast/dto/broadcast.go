package dto

import "time"

// Targeting modes accepted by the send endpoint.
const (
	TargetTokens  = "tokens"
	TargetSellers = "sellers"
	TargetAll     = "all"
)

// Sender is the authenticated identity recorded with each live send.
type Sender struct {
	ID    string
	Email string
}

// SendRequest is the broadcast request body. Exactly one targeting
// mode is honored, selected by TargetType.
type SendRequest struct {
	Title         string   `json:"title"`
	Message       string   `json:"message"`
	TargetType    string   `json:"targetType"`
	TargetTokens  []string `json:"targetTokens,omitempty"`
	TargetSellers []string `json:"targetSellers,omitempty"`
}

// NotificationBody mirrors the notification block of the FCM payload.
type NotificationBody struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PayloadPreview is the exact payload a dry-run would have sent.
type PayloadPreview struct {
	Notification NotificationBody  `json:"notification"`
	Data         map[string]string `json:"data"`
}

// SendResponse is the success shape for both live and dry-run sends.
// Live-only and dry-run-only fields are omitted on the other path.
type SendResponse struct {
	Success            bool   `json:"success"`
	Mode               string `json:"mode"`
	Message            string `json:"message"`
	TargetTokenCount   int    `json:"targetTokenCount"`
	OriginalTokenCount int    `json:"originalTokenCount"`
	CappedByLimit      bool   `json:"cappedByLimit"`
	TargetType         string `json:"targetType"`

	// Dry-run only
	Payload     *PayloadPreview `json:"payload,omitempty"`
	WouldSendTo []string        `json:"wouldSendTo,omitempty"`

	// Live only
	Sent           *int           `json:"sent,omitempty"`
	Failed         *int           `json:"failed,omitempty"`
	FailureReasons map[string]int `json:"failureReasons,omitempty"`
	MaxTokensLimit int            `json:"maxTokensLimit,omitempty"`
	Timestamp      string         `json:"timestamp,omitempty"`
}

// HistoryQuery carries the pagination and filter parameters of the
// history endpoint.
type HistoryQuery struct {
	Page      int
	Limit     int
	Targeting string
	Status    string
}

type SenderRef struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type HistoryItemStats struct {
	Intended int `json:"intended"`
	Sent     int `json:"sent"`
	Success  int `json:"success"`
	Failed   int `json:"failed"`
}

type HistoryItem struct {
	ID          string           `json:"id"`
	SentBy      SenderRef        `json:"sentBy"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Targeting   string           `json:"targeting"`
	Status      string           `json:"status"`
	Mode        string           `json:"mode"`
	Stats       HistoryItemStats `json:"stats"`
	SentAt      time.Time        `json:"sentAt"`
	CompletedAt time.Time        `json:"completedAt"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type HistoryResponse struct {
	Success       bool          `json:"success"`
	Count         int           `json:"count"`
	TotalCount    int64         `json:"totalCount"`
	Page          int           `json:"page"`
	Limit         int           `json:"limit"`
	TotalPages    int           `json:"totalPages"`
	HasMore       bool          `json:"hasMore"`
	Notifications []HistoryItem `json:"notifications"`
}

type SystemStats struct {
	FCMLiveMode  bool   `json:"fcmLiveMode"`
	FCMMaxTokens int    `json:"fcmMaxTokens"`
	Mode         string `json:"mode"`
}

type OverviewStats struct {
	TotalSellers           int64  `json:"totalSellers"`
	TotalTokens            int64  `json:"totalTokens"`
	TotalNotificationsSent int64  `json:"totalNotificationsSent"`
	SuccessRate            string `json:"successRate"`
}

type PlatformStats struct {
	Android int64 `json:"android"`
	IOS     int64 `json:"ios"`
	Unknown int64 `json:"unknown"`
}

type TokenStats struct {
	Total                  int64         `json:"total"`
	SellersWithTokens      int64         `json:"sellersWithTokens"`
	Platforms              PlatformStats `json:"platforms"`
	AverageTokensPerSeller string        `json:"averageTokensPerSeller"`
}

type StatusDistribution struct {
	Success int64 `json:"success"`
	Failed  int64 `json:"failed"`
	Partial int64 `json:"partial"`
}

type NotificationStats struct {
	Total              int64              `json:"total"`
	Last24Hours        int64              `json:"last24Hours"`
	Last7Days          int64              `json:"last7Days"`
	Last30Days         int64              `json:"last30Days"`
	StatusDistribution StatusDistribution `json:"statusDistribution"`
}

type RecentActivityItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Targeting string    `json:"targeting"`
	Sent      int       `json:"sent"`
	Status    string    `json:"status"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"createdAt"`
}

type Stats struct {
	System         SystemStats          `json:"system"`
	Overview       OverviewStats        `json:"overview"`
	Tokens         TokenStats           `json:"tokens"`
	Notifications  NotificationStats    `json:"notifications"`
	RecentActivity []RecentActivityItem `json:"recentActivity"`
	GeneratedAt    time.Time            `json:"generatedAt"`
}

type StatsResponse struct {
	Success bool   `json:"success"`
	Stats   *Stats `json:"stats"`
}

type TokenInfo struct {
	SellerID    string    `json:"sellerId"`
	SellerEmail string    `json:"sellerEmail"`
	Token       string    `json:"token"`
	Platform    string    `json:"platform"`
	DeviceInfo  string    `json:"deviceInfo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type TokenListResponse struct {
	Success      bool        `json:"success"`
	Count        int         `json:"count"`
	TotalSellers int         `json:"totalSellers"`
	Tokens       []TokenInfo `json:"tokens"`
}
