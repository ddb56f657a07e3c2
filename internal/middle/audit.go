package middle

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"fabshop-api/config"
	"fabshop-api/models"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuditMiddlewareParams struct {
	fx.In

	DB     *gorm.DB
	Config *config.AppConfig
	Logger *zap.Logger
}

// AuditMiddleware records mutating API requests into the api_messages
// table. Audit failures are logged and never change the outcome of the
// audited request.
type AuditMiddleware struct {
	db      *gorm.DB
	logger  *zap.Logger
	enabled bool
}

func NewAuditMiddleware(params AuditMiddlewareParams) *AuditMiddleware {
	return &AuditMiddleware{
		db:      params.DB,
		logger:  params.Logger,
		enabled: params.Config.AuditLog,
	}
}

func (m *AuditMiddleware) Middleware(next http.Handler) http.Handler {
	if !m.enabled {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only mutations are audited; reads and health checks pass through.
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}

		// Multipart uploads are audited without their body; BLOB payloads
		// do not belong in a text column.
		var bodyBytes []byte
		if r.Body != nil && !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
			data, err := io.ReadAll(r.Body)
			if err != nil {
				m.logger.Error("failed to read request body for audit", zap.Error(err))
			} else {
				bodyBytes = data
			}
			r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		msg := &models.APIMessage{
			ID:          uuid.New().String(),
			MessageTime: time.Now().UnixNano(),
			HTTPMethod:  r.Method,
			RawEndpoint: r.URL.Path,
			HTTPBody:    string(bodyBytes),
		}
		if err := m.db.Create(msg).Error; err != nil {
			m.logger.Error("failed to audit API call", zap.Error(err))
		}

		next.ServeHTTP(w, r)
	})
}

var Module = fx.Module("middle",
	fx.Provide(
		NewAuditMiddleware,
	),
)
