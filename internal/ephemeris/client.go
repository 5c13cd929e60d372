package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	xhttp "AstroChart/pkg/http"
	applogger "AstroChart/pkg/logger"
)

// ClientConfig configures the sidecar client.
type ClientConfig struct {
	ServiceURL string
	DataPath   string
	Timeout    time.Duration
}

// Client is a Provider backed by the ephemeris sidecar service over HTTP.
// The sidecar wraps the native astronomical library; this client only issues
// documented calls and hands raw results to the configured adapter.
type Client struct {
	baseURL  string
	dataPath string
	client   *xhttp.Client
	adapter  ResponseAdapter
	metrics  CallMetrics
	l        *applogger.Logger

	housesReady atomic.Bool
}

// NewClient builds a sidecar client. Call Init before Houses.
func NewClient(cfg ClientConfig, adapter ResponseAdapter, m CallMetrics, l *applogger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:  cfg.ServiceURL,
		dataPath: cfg.DataPath,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		adapter:  adapter,
		metrics:  m,
		l:        l,
	}
}

// Init points the provider at its ephemeris data files. A failure here is
// non-fatal for position computation but fatal for house computation: the
// house subsystem stays unavailable and callers get ErrHousesUnavailable.
func (c *Client) Init(ctx context.Context) error {
	payload := map[string]string{"ephe_path": c.dataPath}
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/init",
		Body:   payload,
	}, nil)
	if err != nil {
		c.housesReady.Store(false)
		if c.l != nil {
			c.l.Warn("ephemeris init failed, houses unavailable",
				applogger.Error(err),
				applogger.String("data_path", c.dataPath),
			)
		}
		return fmt.Errorf("ephemeris init: %w", err)
	}
	c.housesReady.Store(true)
	if c.l != nil {
		c.l.Info("ephemeris initialized", applogger.String("data_path", c.dataPath))
	}
	return nil
}

// HousesAvailable reports whether house computation can run.
func (c *Client) HousesAvailable() bool {
	return c.housesReady.Load()
}

// Calc returns the raw position of one body at the given Julian Day.
func (c *Client) Calc(ctx context.Context, body string, jd float64) (RawPosition, error) {
	start := time.Now()

	var raw json.RawMessage
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/calc",
		QueryParams: map[string][]string{
			"body": {body},
			"jd":   {formatFloat(jd)},
		},
	}, &raw)

	c.observe("calc", start, err)
	if err != nil {
		return RawPosition{}, fmt.Errorf("calc %s: %w", body, err)
	}

	return c.adapter.DecodePosition(raw), nil
}

// Houses returns house cusps and chart angles for a moment and place.
func (c *Client) Houses(ctx context.Context, jd, lat, lng float64, houseSystem string) (RawHouses, error) {
	if !c.housesReady.Load() {
		return RawHouses{}, ErrHousesUnavailable
	}

	start := time.Now()

	var raw json.RawMessage
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/houses",
		QueryParams: map[string][]string{
			"jd":   {formatFloat(jd)},
			"lat":  {formatFloat(lat)},
			"lng":  {formatFloat(lng)},
			"hsys": {houseSystem},
		},
	}, &raw)

	c.observe("houses", start, err)
	if err != nil {
		return RawHouses{}, fmt.Errorf("houses: %w", err)
	}

	h, err := c.adapter.DecodeHouses(raw)
	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordError("houses")
		}
		return RawHouses{}, err
	}
	return h, nil
}

func (c *Client) observe(op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordCall(op, time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordError(op)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
