// Package maps builds navigation links for free-form addresses.
package maps

import (
	"errors"
	"net/url"
	"strings"
)

const searchBase = "https://www.google.com/maps/search/"

// SearchURL returns a map search link for an address or place name.
func SearchURL(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("maps: empty location")
	}
	v := url.Values{}
	v.Set("api", "1")
	v.Set("query", query)
	return searchBase + "?" + v.Encode(), nil
}
