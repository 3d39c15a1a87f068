package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/daily-horoscope/internal/domain/horoscope"
	apperrors "github.com/yanqian/daily-horoscope/pkg/errors"
)

const invalidSignMessage = "Geçersiz burç. Örnek: ?sign=koc veya ?sign=koç"

// Handler wires the HTTP transport to the horoscope service.
type Handler struct {
	svc    horoscope.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(svc horoscope.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger.With("component", "http.handler"),
	}
}

// Daily returns the horoscope of one sign. The sign query parameter accepts
// any casing and Turkish spelling; date defaults to today.
func (h *Handler) Daily(c *gin.Context) {
	key := normalizeSign(c.Query("sign"))
	if key == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_sign", invalidSignMessage, nil))
		return
	}

	rec, err := h.svc.Daily(c.Request.Context(), horoscope.Request{Sign: key, Date: c.Query("date")})
	if err != nil {
		abortWithError(c, translateError(err))
		return
	}

	c.JSON(http.StatusOK, toView(rec))
}

// All returns the horoscopes of every sign for one day.
func (h *Handler) All(c *gin.Context) {
	resp, err := h.svc.AllDaily(c.Request.Context(), horoscope.Request{Date: c.Query("date")})
	if err != nil {
		abortWithError(c, translateError(err))
		return
	}

	c.JSON(http.StatusOK, toAllView(resp))
}

// Signs lists the accepted sign keys with their display metadata.
func (h *Handler) Signs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"signs": toSignViews(h.svc.Signs())})
}

// Health is a liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func translateError(err error) *HTTPError {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidKey:
		return NewHTTPError(http.StatusBadRequest, "invalid_sign", invalidSignMessage, err)
	case apperrors.CodeInvalidArgument:
		return NewHTTPError(http.StatusBadRequest, "invalid_date", apperrors.MessageOf(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "horoscope_failed", "failed to generate horoscope", err)
	}
}
