package city

import (
	"fmt"
	"strings"
)

// City identifies one of the bikeshare data sets the explorer knows about
type City string

const (
	Chicago    City = "chicago"
	NewYork    City = "new_york"
	Washington City = "washington"
)

var displayNames = map[City]string{
	Chicago:    "Chicago",
	NewYork:    "New York",
	Washington: "Washington",
}

// All returns the known cities in the order they are offered to the user
func All() []City {
	return []City{Chicago, NewYork, Washington}
}

// Parse accepts the config key or the display name of a city, case-insensitive.
// + e.g: "chicago", "New York", "new york", "NEW_YORK", "new_york_city"
func Parse(name string) (City, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.TrimSuffix(normalized, "_city")

	for _, c := range All() {
		if string(c) == normalized {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

// Name returns the display name, e.g: "New York"
func (c City) Name() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

func (c City) String() string {
	return c.Name()
}

// UnmarshalText lets yaml map keys and values decode straight into a City
func (c *City) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
