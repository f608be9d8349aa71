package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeOnMac = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestParseUserAgent_Browser(t *testing.T) {
	info := ParseUserAgent(chromeOnMac, "en-GB,en;q=0.9")
	require.NotNil(t, info)

	assert.Equal(t, "Computer", info.Device)
	assert.Contains(t, info.Browser, "Chrome")
	assert.Equal(t, "en-GB", info.Locale)
	assert.Contains(t, info.String(), " on ")
}

func TestParseUserAgent_Unrecognised(t *testing.T) {
	assert.Nil(t, ParseUserAgent("", ""))
	assert.Equal(t, "", (*UserAgentInfo)(nil).String())
}
