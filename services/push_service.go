package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/AnakhaSuresh15/nibblenotes-backend/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"gorm.io/gorm"
)

// PushService delivers log events to a user's registered devices through
// SNS platform endpoints. Delivery is best effort: a dropped push never
// fails the request that triggered it.
type PushService struct {
	db             *gorm.DB
	sns            *awssns.Client
	fcmPlatformArn string
}

func NewPushService(db *gorm.DB) (*PushService, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &PushService{
		db:             db,
		sns:            awssns.NewFromConfig(cfg),
		fcmPlatformArn: os.Getenv("SNS_FCM_ARN"),
	}, nil
}

type RegisterDeviceInput struct {
	Platform string `json:"platform" binding:"required"` // "android" | "ios"
	Token    string `json:"token" binding:"required"`
}

func tokenHash(tok string) string {
	h := sha256.Sum256([]byte(tok))
	return hex.EncodeToString(h[:])
}

func (p *PushService) platformArn(platform string) (string, error) {
	switch strings.ToLower(platform) {
	case "android", "ios":
		if p.fcmPlatformArn == "" {
			return "", fmt.Errorf("%w: SNS_FCM_ARN not set", ErrStoreUnavailable)
		}
		return p.fcmPlatformArn, nil
	default:
		return "", fmt.Errorf("%w: unknown platform %q", ErrInvalidArgument, platform)
	}
}

// RegisterDevice creates (or refreshes) the SNS endpoint for a device token
// and records it against the user. Re-registering the same token updates the
// existing row instead of growing the endpoint list.
func (p *PushService) RegisterDevice(ctx context.Context, userID uint, in RegisterDeviceInput) (*models.UserDevice, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}

	appArn, err := p.platformArn(in.Platform)
	if err != nil {
		return nil, err
	}

	out, err := p.sns.CreatePlatformEndpoint(ctx, &awssns.CreatePlatformEndpointInput{
		PlatformApplicationArn: aws.String(appArn),
		Token:                  aws.String(in.Token),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	hash := tokenHash(in.Token)
	var existing models.UserDevice
	if err := p.db.WithContext(ctx).
		Where("user_id = ? AND token_hash = ?", userID, hash).
		First(&existing).Error; err == nil {
		existing.Platform = strings.ToLower(in.Platform)
		existing.EndpointARN = aws.ToString(out.EndpointArn)
		if err := p.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, storeErr(err)
		}
		return &existing, nil
	}

	dev := models.UserDevice{
		UserID:      userID,
		Platform:    strings.ToLower(in.Platform),
		TokenHash:   hash,
		EndpointARN: aws.ToString(out.EndpointArn),
		Enabled:     true,
	}
	if err := p.db.WithContext(ctx).Create(&dev).Error; err != nil {
		return nil, storeErr(err)
	}
	return &dev, nil
}

// NotifyLogCreated pushes the same log.created event the realtime hub
// broadcasts, so closed dashboard sessions still hear about new entries.
func (p *PushService) NotifyLogCreated(userID uint, entry *models.Log) {
	p.pushToUser(userID, "Meal logged", entry.DishName, map[string]string{
		"event": "log.created",
		"logId": fmt.Sprintf("%d", entry.ID),
	})
}

func (p *PushService) pushToUser(userID uint, title, body string, data map[string]string) {
	var endpoints []models.UserDevice
	if err := p.db.Where("user_id = ? AND enabled = ?", userID, true).Find(&endpoints).Error; err != nil {
		return
	}
	if len(endpoints) == 0 {
		return
	}

	msg := map[string]any{
		"default": body,
		"GCM": map[string]any{
			"notification": map[string]string{
				"title": title,
				"body":  body,
			},
			"data": data,
		},
	}

	raw, _ := json.Marshal(msg)
	for _, d := range endpoints {
		_, _ = p.sns.Publish(context.TODO(), &awssns.PublishInput{
			MessageStructure: aws.String("json"),
			Message:          aws.String(string(raw)),
			TargetArn:        aws.String(d.EndpointARN),
		})
	}
}
