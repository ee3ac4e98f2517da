package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arigatoo-utils/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Fetcher.RequestTimeout = 5 * time.Second
	cfg.Fetcher.MaxBodySize = 1 << 20
	cfg.Fetcher.UserAgent = "arigatoo-test"
	return cfg
}

func TestExtractText_PrefersDescriptionSelector(t *testing.T) {
	description := strings.Repeat("Build and operate backend services. ", 10)
	html := fmt.Sprintf(`<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">%s</div>
		<footer>All rights reserved</footer>
	</body></html>`, description)

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Build and operate backend services.")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "All rights reserved")
}

func TestExtractText_ShortSelectorFallsBackToBody(t *testing.T) {
	html := `<html><body>
		<div class="job-description">too short</div>
		<p>Looking for a senior engineer with Python experience.</p>
	</body></html>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	// Selector content is under the trust threshold; body text wins
	assert.Contains(t, text, "too short")
	assert.Contains(t, text, "Looking for a senior engineer")
}

func TestExtractText_StripsScriptsAndChrome(t *testing.T) {
	html := `<html>
		<head><style>body { color: red; }</style></head>
		<body>
			<header>Site Header</header>
			<script>var tracking = true;</script>
			<p>Actual job content here.</p>
		</body>
	</html>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Actual job content here.")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Site Header")
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	html := "<html><body><p>Senior    Engineer</p>\n\n\n<p>Remote   role</p></body></html>"

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer\nRemote role", text)
}

func TestFetchJobDescription(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<html><body><p>Backend Engineer position at Acme.</p></body></html>`)
	}))
	defer server.Close()

	f := NewFetcher(testConfig())
	text, err := f.FetchJobDescription(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, text, "Backend Engineer position at Acme.")
	assert.Equal(t, "arigatoo-test", gotUserAgent)
}

func TestFetchJobDescription_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	f := NewFetcher(testConfig())
	_, err := f.FetchJobDescription(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestFetchJobDescription_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	f := NewFetcher(testConfig())
	_, err := f.FetchJobDescription(context.Background(), url)
	assert.Error(t, err)
}
