package config

import (
	"log"
	"os"
	"time"
)

// Loc is the shop's local timezone. Invoice days, attendance dates and
// discount windows are all evaluated in this location.
var Loc *time.Location

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func ShopName() string {
	return getenv("SHOP_NAME", "Putera Barbershop")
}

func AdminUsername() string {
	return getenv("ADMIN_USERNAME", "admin")
}

func AdminPassword() string {
	return getenv("ADMIN_PASSWORD", "admin123")
}

func AdminName() string {
	return getenv("ADMIN_NAME", "Owner")
}

// LoadTimezone resolves the TIMEZONE env var into Loc. Falls back to UTC
// if the zone name is unknown.
func LoadTimezone() {
	name := getenv("TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown timezone %q, falling back to UTC", name)
		loc = time.UTC
	}
	Loc = loc
}

// Now returns the current time in the shop's timezone.
func Now() time.Time {
	if Loc == nil {
		LoadTimezone()
	}
	return time.Now().In(Loc)
}
