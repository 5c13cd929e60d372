package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"AstroChart/internal/domain/models"
	"AstroChart/internal/service/metrics"
	"AstroChart/internal/usecase"
	pkgcache "AstroChart/pkg/cache"
	xhttp "AstroChart/pkg/http"
	xlogger "AstroChart/pkg/logger"
	"AstroChart/pkg/util"

	"github.com/labstack/echo/v4"
)

const (
	ServiceName = "astrochart"
	Version     = "0.3.1"
)

// ChartHandler implements the Echo-based HTTP handlers.
type ChartHandler struct {
	logger   *xlogger.Logger
	builder  *usecase.ChartBuilder
	composer *usecase.Composer

	cache       pkgcache.Service
	cacheTTL    time.Duration
	defaultHsys string
}

func NewChartHandler(logger *xlogger.Logger, builder *usecase.ChartBuilder, composer *usecase.Composer, defaultHsys string) *ChartHandler {
	metrics.Register()
	if defaultHsys == "" {
		defaultHsys = "P"
	}
	return &ChartHandler{
		logger:      logger,
		builder:     builder,
		composer:    composer,
		defaultHsys: defaultHsys,
	}
}

// SetCache enables response caching. Positions output is deterministic per
// query, so cached bytes are as good as a fresh computation.
func (h *ChartHandler) SetCache(c pkgcache.Service, ttl time.Duration) {
	h.cache = c
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	h.cacheTTL = ttl
}

func (h *ChartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/positions", h.Positions)
	g.GET("/houses", h.Houses)
	g.POST("/chat", h.Chat)
	e.GET("/healthz", h.Health)
}

func (h *ChartHandler) Positions(c echo.Context) error {
	start := time.Now()
	endpoint := "positions"
	defer func() { metrics.ChartLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	q, verr := h.readQuery(c)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	key := cacheKey(endpoint, q)
	if b, ok := h.cacheGet(c, key, endpoint); ok {
		return c.JSONBlob(http.StatusOK, b)
	}

	res, err := h.builder.Build(c.Request().Context(), q.build)
	if err != nil {
		metrics.ChartErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("positions usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("internal error").WithError(err))
	}

	resp := models.PositionsResponse{
		Success: true,
		JDUT:    res.JDUT,
		Input:   q.input,
		Planets: res.Chart.Planets,
		Houses:  res.Chart.Houses,
		Angles:  res.Chart.Angles,
	}
	return h.writeCached(c, key, endpoint, resp)
}

func (h *ChartHandler) Houses(c echo.Context) error {
	start := time.Now()
	endpoint := "houses"
	defer func() { metrics.ChartLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	q, verr := h.readQuery(c)
	if verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	key := cacheKey(endpoint, q)
	if b, ok := h.cacheGet(c, key, endpoint); ok {
		return c.JSONBlob(http.StatusOK, b)
	}

	res, err := h.builder.BuildHouses(c.Request().Context(), q.build)
	if err != nil {
		metrics.ChartErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("houses usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("internal error").WithError(err))
	}
	if res.HousesUnavailable {
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("houses unavailable"))
	}

	resp := models.HousesResponse{
		Success: true,
		JDUT:    res.JDUT,
		Input:   q.input,
		Houses:  res.Chart.Houses,
		Angles:  res.Chart.Angles,
	}
	return h.writeCached(c, key, endpoint, resp)
}

func (h *ChartHandler) Chat(c echo.Context) error {
	start := time.Now()
	endpoint := "chat"
	defer func() { metrics.ChartLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ChatRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	reply := h.composer.Compose(req.Message, req.Chart)
	return xhttp.SuccessResponse(c, models.ChatResponse{Reply: reply})
}

func (h *ChartHandler) Health(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.SuccessResponse(c, models.HealthResponse{
		OK:      true,
		Service: ServiceName,
		Time:    time.Now().UTC().Format(time.RFC3339),
		Version: Version,
	})
}

// chartQuery pairs the parsed build parameters with the echoed input block.
type chartQuery struct {
	build usecase.BuildQuery
	input models.PositionsInput
}

// readQuery binds, validates, and parses the shared time/place parameters.
func (h *ChartHandler) readQuery(c echo.Context) (chartQuery, []xhttp.ValidationError) {
	req := &models.PositionsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return chartQuery{}, verr
	}

	// house_system is the long-form alias for hsys.
	hsys := req.HouseSystem
	if hsys == "" {
		hsys = c.QueryParam("house_system")
		if hsys != "" && len(hsys) != 1 {
			return chartQuery{}, []xhttp.ValidationError{{
				Code:    "ERR_LEN",
				Field:   "house_system",
				Message: "house_system must be exactly 1 characters",
			}}
		}
	}
	if hsys == "" {
		hsys = h.defaultHsys
	}

	year, month, day, err := util.ParseCivilDate(req.Date)
	if err != nil {
		return chartQuery{}, []xhttp.ValidationError{{
			Code:    "ERR_FORMAT",
			Field:   "date",
			Message: err.Error(),
		}}
	}

	hours, err := util.ParseClock(req.Time)
	if err != nil {
		return chartQuery{}, []xhttp.ValidationError{{
			Code:    "ERR_FORMAT",
			Field:   "time",
			Message: err.Error(),
		}}
	}

	q := chartQuery{
		build: usecase.BuildQuery{
			Year:            year,
			Month:           month,
			Day:             day,
			LocalHours:      hours,
			TZOffsetMinutes: req.TZOffsetMinutes,
			Lat:             *req.Lat,
			Lng:             *req.Lng,
			HouseSystem:     hsys,
		},
		input: models.PositionsInput{
			Date:            req.Date,
			Time:            req.Time,
			Lat:             *req.Lat,
			Lng:             *req.Lng,
			HouseSystem:     hsys,
			TZOffsetMinutes: req.TZOffsetMinutes,
		},
	}
	return q, nil
}

func cacheKey(endpoint string, q chartQuery) string {
	return fmt.Sprintf("%s:%s:%s:%v:%v:%s:%d",
		endpoint, q.input.Date, q.input.Time, q.input.Lat, q.input.Lng,
		q.input.HouseSystem, q.input.TZOffsetMinutes)
}

func (h *ChartHandler) cacheGet(c echo.Context, key, endpoint string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	b, ok, err := h.cache.Get(c.Request().Context(), key)
	if err != nil {
		h.logger.Warn("cache get error", xlogger.Error(err), xlogger.String("key", key))
		return nil, false
	}
	if ok {
		metrics.CacheHits.WithLabelValues(endpoint).Inc()
	}
	return b, ok
}

// writeCached marshals once so the cached bytes and the response bytes are
// identical; repeated identical queries then return byte-identical JSON.
func (h *ChartHandler) writeCached(c echo.Context, key, endpoint string, resp interface{}) error {
	b, err := json.Marshal(resp)
	if err != nil {
		metrics.ChartErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("marshal error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("internal error").WithError(err))
	}
	if h.cache != nil {
		if err := h.cache.Set(c.Request().Context(), key, b, h.cacheTTL); err != nil {
			h.logger.Warn("cache set error", xlogger.Error(err), xlogger.String("key", key))
		}
	}
	return c.JSONBlob(http.StatusOK, b)
}
