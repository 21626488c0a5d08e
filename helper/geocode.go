package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"event_agenda/constants"
	"event_agenda/model"
)

// MappableLocation derives the free-text geocoder query for a location from
// its address fields, collapsing line breaks the way editors paste them in.
func MappableLocation(location *model.EventLocation) string {
	address := strings.NewReplacer("\n", " ", "\r", " ").Replace(location.Address)
	parts := []string{address}
	if location.PostalCode != "" {
		parts = append(parts, location.PostalCode)
	}
	if location.City != "" {
		parts = append(parts, location.City)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// GeocodeLocation fills in lat/lon for a location that has neither, querying
// Nominatim with its mappable location. A lookup miss is reported as a
// validation failure with remediation advice; it is never retried here.
func GeocodeLocation(location *model.EventLocation) error {
	if location.Lat != nil && location.Lon != nil {
		return nil
	}
	if (location.Lat == nil) != (location.Lon == nil) {
		return errors.New(constants.LAT_LON_PAIR)
	}
	if location.MappableLocation == "" {
		location.MappableLocation = MappableLocation(location)
	}

	lat, lon, err := geocode(location.MappableLocation)
	if err != nil {
		return fmt.Errorf("%s (%v)", constants.GEOCODE_FAILED, err)
	}
	location.Lat = &lat
	location.Lon = &lon
	return nil
}

func geocode(query string) (lat, lon float64, err error) {
	endpoint := fmt.Sprintf("https://nominatim.openstreetmap.org/search?format=json&q=%s&limit=1",
		url.QueryEscape(query),
	)

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create geocode request: %v", err)
	}
	req.Header.Set("User-Agent", "event-agenda/"+Version)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to call geocoder: %v", err)
	}
	defer resp.Body.Close()

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocoder response: %v", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no results for %q", query)
	}

	lat, err = strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse latitude: %v", err)
	}
	lon, err = strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse longitude: %v", err)
	}
	return lat, lon, nil
}
