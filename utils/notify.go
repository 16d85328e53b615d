package utils

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kinmelhub/kinmel-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AdminNotifier records a notification row for the admin dashboard and,
// when ADMIN_WEBHOOK_URL is configured, forwards it there. Delivery is
// fire-and-forget: a failed insert or webhook is logged and nothing more.
type AdminNotifier struct {
	DB *gorm.DB
}

func (n AdminNotifier) Notify(title, message, severity string, entityID uint, entityType string) {
	metadata, err := json.Marshal(map[string]any{
		"relatedEntityId":   entityID,
		"relatedEntityType": entityType,
	})
	if err != nil {
		metadata = nil
	}

	notification := models.Notification{
		Title:             title,
		Message:           message,
		Severity:          severity,
		RelatedEntityID:   entityID,
		RelatedEntityType: entityType,
		Metadata:          datatypes.JSON(metadata),
	}
	if err := n.DB.Create(&notification).Error; err != nil {
		log.Println("Failed to save admin notification:", err)
	}

	webhookURL := os.Getenv("ADMIN_WEBHOOK_URL")
	if webhookURL == "" {
		return
	}

	go func() {
		resp, err := resty.New().SetTimeout(10 * time.Second).
			R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]any{
				"title":             title,
				"message":           message,
				"severity":          severity,
				"relatedEntityId":   entityID,
				"relatedEntityType": entityType,
			}).
			Post(webhookURL)
		if err != nil {
			log.Println("Failed to deliver admin webhook:", err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("Admin webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
		}
	}()
}
