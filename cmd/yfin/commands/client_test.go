package commands

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamwoolhether/yahoofinance/client"
)

func TestParseUserAgent(t *testing.T) {
	testCases := map[string]struct {
		input   string
		want    client.UserAgent
		wantErr bool
	}{
		"empty":   {input: "", want: ""},
		"random":  {input: "random", want: ""},
		"safari":  {input: "Safari", want: client.Safari},
		"chrome":  {input: " chrome ", want: client.Chrome},
		"mobile":  {input: "mobile", want: client.Mobile},
		"literal": {input: "curl/8.5.0", want: "curl/8.5.0"},
		"unknown": {input: "netscape", wantErr: true},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := parseUserAgent(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewClient(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("user-agent", "chrome")
	viper.Set("timeout", "3s")

	c, err := NewClient()
	require.NoError(t, err)
	assert.Equal(t, client.Chrome, c.UserAgent())

	viper.Set("user-agent", "netscape")
	_, err = NewClient()
	assert.Error(t, err)
}
