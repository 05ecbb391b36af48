package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body><h1>Go Engineer</h1></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.URL)
	assert.Contains(t, result.HTML, "<h1>Go Engineer</h1>")
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, DefaultUserAgent, gotAgent)
}

func TestURL_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not-a-valid-url", "example.com/jobs", "ftp://example.com/job", "http://"} {
		_, err := URL(context.Background(), raw, nil)
		require.Error(t, err, raw)

		var fetchErr *Error
		assert.ErrorAs(t, err, &fetchErr)
		assert.Contains(t, err.Error(), "invalid URL")
	}
}

func TestURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestURL_MaxBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, &Options{MaxBytes: 100})
	require.NoError(t, err)
	assert.Len(t, result.HTML, 100)
}

func TestExtractMainText_DropsNoise(t *testing.T) {
	html := `
	<html>
		<body>
			<nav>Navigation</nav>
			<main>
				<h1>Backend Engineer</h1>
				<p>Build Go services.</p>
			</main>
			<footer>Footer</footer>
		</body>
	</html>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nBuild Go services.", text)
}

func TestExtractMainText_ListItemsOnSeparateLines(t *testing.T) {
	html := `<div class="job-description"><ul><li>Python</li><li>Docker   and Kubernetes</li></ul><p>Remote<br>friendly</p></div>`

	text, err := ExtractMainText(html, JobPostingSelectors())
	require.NoError(t, err)
	assert.Equal(t, "Python\nDocker and Kubernetes\nRemote\nfriendly", text)
}

func TestExtractMainText_NoiseSelectors(t *testing.T) {
	html := `
	<body>
		<div class="job-description">
			<p>5 years experience in Go</p>
			<div class="eeo-statement">Equal opportunity employer</div>
		</div>
	</body>`

	text, err := ExtractMainText(html, JobPostingSelectors(), PlatformUnknown.NoiseSelectors()...)
	require.NoError(t, err)
	assert.Contains(t, text, "5 years experience in Go")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestExtractMainText_FallbackToBody(t *testing.T) {
	text, err := ExtractMainText(`<html><body><span>Some content here.</span></body></html>`, []string{".missing"})
	require.NoError(t, err)
	assert.Equal(t, "Some content here.", text)
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "Senior Go Engineer", ExtractTitle(`<html><head><title>Careers</title></head><body><h1> Senior   Go Engineer </h1></body></html>`))
	assert.Equal(t, "Careers at Acme", ExtractTitle(`<html><head><title>Careers at Acme</title></head><body></body></html>`))
	assert.Equal(t, "", ExtractTitle(`<p>no title</p>`))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("   Loading...   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("a", MinContentLength)))
}

func TestRender_InvalidURL(t *testing.T) {
	_, err := Render(context.Background(), "not-a-url", 0, nil)
	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
}
