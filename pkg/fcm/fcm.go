package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Client wraps Firebase Cloud Messaging functionality
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// Notification contains the payload to send in a push notification.
// The same title/body/data is reused for every token in a batch.
type Notification struct {
	Title string
	Body  string
	Data  map[string]string // Custom data payload
}

// SendResult is the outcome for a single token within a batch send.
type SendResult struct {
	Success   bool
	MessageID string
	ErrorCode string // Classified FCM error code, empty on success
}

// SendReport aggregates the per-token results of one batch call.
type SendReport struct {
	SuccessCount int
	FailureCount int
	Responses    []SendResult
}

// SendEach sends the notification to every token in one batched call.
// Each token is an independent delivery unit: a per-token failure does
// not fail the batch. An error return means the batch call itself
// failed and no token was attempted.
func (c *Client) SendEach(ctx context.Context, tokens []string, notification Notification) (*SendReport, error) {
	if len(tokens) == 0 {
		return &SendReport{}, nil
	}

	messages := make([]*messaging.Message, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: notification.Title,
				Body:  notification.Body,
			},
			Data: notification.Data,
		})
	}

	response, err := c.messagingClient.SendEach(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to send FCM batch: %w", err)
	}

	log.Printf("[FCM] Batch sent: %d success, %d failures", response.SuccessCount, response.FailureCount)

	report := &SendReport{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]SendResult, 0, len(response.Responses)),
	}
	for _, resp := range response.Responses {
		result := SendResult{
			Success:   resp.Success,
			MessageID: resp.MessageID,
		}
		if resp.Error != nil {
			result.ErrorCode = classifyError(resp.Error)
		}
		report.Responses = append(report.Responses, result)
	}

	return report, nil
}

// classifyError maps an FCM delivery error to a stable code for the
// failure-reason histogram.
func classifyError(err error) string {
	switch {
	case messaging.IsUnregistered(err):
		return "unregistered"
	case messaging.IsInvalidArgument(err):
		return "invalid-argument"
	case messaging.IsSenderIDMismatch(err):
		return "sender-id-mismatch"
	case messaging.IsQuotaExceeded(err):
		return "quota-exceeded"
	case messaging.IsThirdPartyAuthError(err):
		return "third-party-auth-error"
	case messaging.IsUnavailable(err):
		return "unavailable"
	case messaging.IsInternal(err):
		return "internal"
	default:
		return "unknown"
	}
}
