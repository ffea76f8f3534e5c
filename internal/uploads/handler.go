package uploads

import (
	"context"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"

	"interview-backend/internal/shared/server/respond"
	"interview-backend/internal/shared/telemetry"
	"interview-backend/internal/shared/util"
)

// Presigned PUT URLs expire after one hour; the frontend uploads the
// résumé directly to S3 and the parser picks it up from there.
const presignExpires = time.Hour

// Handler issues presigned upload URLs.
type Handler struct {
	presign *s3.PresignClient
	bucket  string
	prefix  string
}

// New constructs an uploads handler backed by S3.
func New(ctx context.Context, region, bucket, prefix string) (*Handler, error) {
	if strings.TrimSpace(bucket) == "" {
		return nil, errConfig("uploads bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errConfig("failed to load aws config")
	}

	return &Handler{
		presign: s3.NewPresignClient(s3.NewFromConfig(cfg)),
		bucket:  bucket,
		prefix:  strings.Trim(strings.TrimSpace(prefix), "/"),
	}, nil
}

type presignResponse struct {
	URL              string `json:"url"`
	S3Key            string `json:"s3Key"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/uploads/presign", h.presignPut)
}

func (h *Handler) presignPut(c *gin.Context) {
	objectName := strings.TrimSpace(c.Query("objectName"))
	if objectName == "" {
		respond.Error(c, http.StatusBadRequest, "objectName is required")
		return
	}

	sanitized, err := util.SanitizeFileName(objectName)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid objectName")
		return
	}

	key := sanitized
	if h.prefix != "" {
		key = path.Join(h.prefix, sanitized)
	}

	out, err := h.presign.PresignPutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket: aws.String(h.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = presignExpires
	})
	if err != nil {
		telemetry.Error("uploads.presign.failed", map[string]any{
			"err":        err.Error(),
			"bucket":     h.bucket,
			"key":        key,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, "failed to generate upload url")
		return
	}

	respond.OK(c, presignResponse{
		URL:              out.URL,
		S3Key:            key,
		ExpiresInSeconds: int64(presignExpires.Seconds()),
	})
}

type errConfig string

func (e errConfig) Error() string { return string(e) }
