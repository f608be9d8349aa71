package utils

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"
)

// UserAgentInfo describes the console client an operator acted from.
type UserAgentInfo struct {
	Device  string `json:"device"`
	OS      string `json:"os"`
	Browser string `json:"browser"`
	Locale  string `json:"locale"`
}

func (i *UserAgentInfo) String() string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%s on %s (%s)", i.Browser, i.OS, i.Device)
}

// ParseUserAgent returns nil for agents that are not a recognised device,
// e.g. scripts calling the API directly.
func ParseUserAgent(uaString string, acceptLanguage string) *UserAgentInfo {
	ua := uasurfer.Parse(uaString)

	device := "Unknown"
	switch ua.DeviceType {
	case uasurfer.DeviceComputer:
		device = "Computer"
	case uasurfer.DeviceTablet:
		device = "Tablet"
	case uasurfer.DevicePhone:
		device = "Phone"
	case uasurfer.DeviceConsole:
		device = "Console"
	case uasurfer.DeviceWearable:
		device = "Wearable"
	case uasurfer.DeviceTV:
		device = "TV"
	default:
		return nil
	}

	os := fmt.Sprintf("%s %d.%d",
		strings.TrimPrefix(ua.OS.Name.String(), "OS"), ua.OS.Version.Major, ua.OS.Version.Minor)
	browser := fmt.Sprintf("%s %d.%d",
		strings.TrimPrefix(ua.Browser.Name.String(), "Browser"), ua.Browser.Version.Major, ua.Browser.Version.Minor)

	locale := acceptLanguage
	if i := strings.IndexByte(acceptLanguage, ','); i >= 0 {
		locale = acceptLanguage[:i]
	}

	return &UserAgentInfo{
		Device:  device,
		OS:      os,
		Browser: browser,
		Locale:  strings.TrimSpace(locale),
	}
}
