package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationSeverityInfo    = "info"
	NotificationSeverityWarning = "warning"
)

type Notification struct {
	gorm.Model
	Title             string         `json:"title"`
	Message           string         `json:"message"`
	Severity          string         `json:"severity"`
	RelatedEntityID   uint           `json:"relatedEntityId"`
	RelatedEntityType string         `json:"relatedEntityType"`
	Read              bool           `json:"read"`
	Metadata          datatypes.JSON `json:"metadata,omitempty"`
}
