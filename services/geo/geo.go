package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"sevasetu/models"
	"sevasetu/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// Lookup resolves address parts. Failures never surface: the returned
// location simply has blank fields.
type Lookup interface {
	LookupPincode(ctx context.Context, pincode string) models.Location
	ReverseGeocode(ctx context.Context, lat, lon float64) models.Location
}

// HTTPLookup calls the postal pincode directory and a Nominatim-compatible
// reverse geocoder. Successful answers are cached in Redis.
type HTTPLookup struct {
	Client     *http.Client
	PincodeURL string
	ReverseURL string
	Cache      *redis.Client
	CacheTTL   time.Duration
	UserAgent  string
	Logger     *zap.Logger
}

func NewHTTPLookup(pincodeURL, reverseURL string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *HTTPLookup {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPLookup{
		Client:     &http.Client{Timeout: timeout},
		PincodeURL: strings.TrimRight(pincodeURL, "/"),
		ReverseURL: reverseURL,
		Cache:      cache,
		CacheTTL:   cacheTTL,
		UserAgent:  "SevaSetu/1.0",
		Logger:     logger,
	}
}

type postOffice struct {
	District string `json:"District"`
	State    string `json:"State"`
}

type pincodeResponse struct {
	Status     string       `json:"Status"`
	PostOffice []postOffice `json:"PostOffice"`
}

type nominatimResponse struct {
	Address struct {
		Postcode     string `json:"postcode"`
		CityDistrict string `json:"city_district"`
		County       string `json:"county"`
		City         string `json:"city"`
		State        string `json:"state"`
		Road         string `json:"road"`
		Suburb       string `json:"suburb"`
		Village      string `json:"village"`
	} `json:"address"`
}

// LookupPincode fills district and state from the first post office listed for pincode.
func (l *HTTPLookup) LookupPincode(ctx context.Context, pincode string) models.Location {
	loc := models.Location{Pincode: pincode}
	if !pincodePattern.MatchString(pincode) {
		return loc
	}

	cacheKey := utils.PincodeKeyPrefix + pincode
	if cached, ok := l.fromCache(ctx, cacheKey); ok {
		return cached
	}

	var body []pincodeResponse
	if err := l.getJSON(ctx, l.PincodeURL+"/"+url.PathEscape(pincode), &body); err != nil {
		l.Logger.Warn("Pincode lookup failed", zap.String("pincode", pincode), zap.Error(err))
		return loc
	}
	if len(body) == 0 || body[0].Status != "Success" || len(body[0].PostOffice) == 0 {
		l.Logger.Info("Pincode not found", zap.String("pincode", pincode))
		return loc
	}

	loc.District = body[0].PostOffice[0].District
	loc.State = body[0].PostOffice[0].State
	l.toCache(ctx, cacheKey, loc)
	return loc
}

// ReverseGeocode resolves coordinates into pincode, district, state and a street line.
func (l *HTTPLookup) ReverseGeocode(ctx context.Context, lat, lon float64) models.Location {
	latS := strconv.FormatFloat(lat, 'f', 5, 64)
	lonS := strconv.FormatFloat(lon, 'f', 5, 64)
	cacheKey := utils.ReverseKeyPrefix + latS + "," + lonS
	if cached, ok := l.fromCache(ctx, cacheKey); ok {
		return cached
	}

	q := url.Values{}
	q.Set("lat", latS)
	q.Set("lon", lonS)
	q.Set("format", "json")

	var body nominatimResponse
	if err := l.getJSON(ctx, l.ReverseURL+"?"+q.Encode(), &body); err != nil {
		l.Logger.Warn("Reverse geocode failed", zap.String("lat", latS), zap.String("lon", lonS), zap.Error(err))
		return models.Location{}
	}

	a := body.Address
	loc := models.Location{
		Pincode:  a.Postcode,
		District: firstNonEmpty(a.CityDistrict, a.County, a.City),
		State:    a.State,
		Line1:    joinNonEmpty(", ", a.Road, a.Suburb, a.Village),
	}
	l.toCache(ctx, cacheKey, loc)
	return loc
}

func (l *HTTPLookup) getJSON(ctx context.Context, target string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if l.UserAgent != "" {
		req.Header.Set("User-Agent", l.UserAgent)
	}

	resp, err := l.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (l *HTTPLookup) fromCache(ctx context.Context, key string) (models.Location, bool) {
	if l.Cache == nil {
		return models.Location{}, false
	}
	data, err := l.Cache.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			l.Logger.Debug("Lookup cache read failed", zap.String("key", key), zap.Error(err))
		}
		return models.Location{}, false
	}
	var loc models.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return models.Location{}, false
	}
	return loc, true
}

func (l *HTTPLookup) toCache(ctx context.Context, key string, loc models.Location) {
	if l.Cache == nil {
		return
	}
	data, err := json.Marshal(loc)
	if err != nil {
		return
	}
	if err := l.Cache.Set(ctx, key, data, l.CacheTTL).Err(); err != nil {
		l.Logger.Debug("Lookup cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, sep)
}
