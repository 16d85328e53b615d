package controllers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
)

const maxEvidenceSize = 5 << 20 // 5 MiB

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadPaymentEvidence stores a payment screenshot in S3 and returns the
// public URL the checkout request should carry as its evidence reference.
// Only presence, size and content type are checked here; the rest of the
// system treats the URL as opaque.
func UploadPaymentEvidence(ctx *gin.Context) {
	file, err := ctx.FormFile("evidence")
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "No evidence file uploaded", err)
		return
	}

	if file.Size > maxEvidenceSize {
		respondWithError(ctx, http.StatusBadRequest, "Evidence file exceeds the 5MB limit", nil)
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondWithError(ctx, http.StatusBadRequest, "Evidence must be an image", nil)
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	f, err := file.Open()
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}
	defer f.Close()

	// Unique key so two customers uploading "screenshot.png" never collide.
	key := fmt.Sprintf("evidence/%s-%s", time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("EVIDENCE_BUCKET")),
		Key:         aws.String(key),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to upload evidence", err)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Evidence uploaded",
		"url":     result.Location,
	})
}
