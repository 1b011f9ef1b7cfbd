package usecases

import (
	"github.com/conseccomms/conseccomms/internal/domain/insight"
)

type Classifier interface {
	Classify(text string, domain insight.Domain) insight.Classification
}

type DriveSynthesizer interface {
	SynthesizeDrive(files []insight.FileFacts) insight.DriveInsight
}

// StorageKeyFunc returns a fresh opaque object key for a user's upload.
type StorageKeyFunc func(userID uint) string
