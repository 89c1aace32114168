package standings_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/boudmarinus-tech/ene-chille-app/internal/standings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standingsPage = `
<html><body>
<ul class="team-standings">
  <li class="table-header">
    <div class="cell"><span class="position">Pos</span><span class="team">Ploeg</span></div>
    <div class="cell">Gespeeld</div>
    <div class="cell"><span>#</span><span>Ptn/M</span></div>
    <div class="cell"><abbr>Ptn</abbr><span>Punten</span></div>
  </li>
  <li>
    <div class="cell"><span class="position">1</span><span class="team">TeamA</span></div>
    <div class="cell">10</div>
    <div class="cell">1.5</div>
    <div class="cell">15</div>
  </li>
  <li>
    <div class="cell"><span class="position">2</span><span class="team">Ene  Chille</span></div>
    <div class="cell">10</div>
    <div class="cell">1.3</div>
    <div class="cell">13</div>
  </li>
</ul>
</body></html>`

func TestParse_DropsPointsPerMatchColumn(t *testing.T) {
	table, err := standings.Parse(strings.NewReader(standingsPage), "https://example.test/stand")
	require.NoError(t, err)

	assert.Equal(t, []string{"Pos", "Ploeg", "Gespeeld", "Punten"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1", "TeamA", "10", "15"}, table.Rows[0])
	assert.Equal(t, []string{"2", "Ene Chille", "10", "13"}, table.Rows[1])
	assert.Equal(t, "https://example.test/stand", table.Source)
}

func TestParse_HeaderCellPrefersLongestLabel(t *testing.T) {
	page := `
<ul class="team-standings">
  <li class="table-header">
    <div class="cell"><span class="position">Pos</span><span class="team">Ploeg</span></div>
    <div class="cell"><abbr>G</abbr><span>Gespeeld</span></div>
  </li>
</ul>`
	table, err := standings.Parse(strings.NewReader(page), "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pos", "Ploeg", "Gespeeld"}, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestParse_MissingSubLabelsUseDefaults(t *testing.T) {
	page := `
<ul class="team-standings">
  <li class="table-header">
    <div class="cell"></div>
    <div class="cell">Punten</div>
  </li>
  <li>
    <div class="cell"><span class="position">1</span><span class="team">TeamA</span></div>
    <div class="cell">15</div>
  </li>
</ul>`
	table, err := standings.Parse(strings.NewReader(page), "src")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pos", "Ploeg", "Punten"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"1", "TeamA", "15"}, table.Rows[0])
}

func TestParse_MissingHeaderFallsBack(t *testing.T) {
	page := `
<ul class="team-standings">
  <li>
    <div class="cell"><span class="position">1</span><span class="team">TeamA</span></div>
    <div class="cell">10</div>
  </li>
</ul>`
	table, err := standings.Parse(strings.NewReader(page), "src")
	require.NoError(t, err)

	// fixed fallback labels, minus the dropped points-per-match column
	assert.Equal(t, []string{
		"Pos", "Ploeg", "Gespeeld", "Gewonnen", "Gelijk", "Verloren",
		"Doelpunten voor", "Doelpunten tegen", "Saldo", "Punten",
	}, table.Headers)
	require.Len(t, table.Rows, 1)
}

func TestParse_NoRowsIsValid(t *testing.T) {
	page := `<div>geen stand beschikbaar</div>`
	table, err := standings.Parse(strings.NewReader(page), "src")
	require.NoError(t, err)
	assert.NotEmpty(t, table.Headers)
	assert.Empty(t, table.Rows)
}

func TestFetch_Success(t *testing.T) {
	var gotUserAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte(standingsPage))
	}))
	defer srv.Close()

	table, err := standings.NewClient(srv.URL).Fetch()
	require.NoError(t, err)
	assert.Equal(t, srv.URL, table.Source)
	assert.Equal(t, []string{"Pos", "Ploeg", "Gespeeld", "Punten"}, table.Headers)
	assert.Contains(t, gotUserAgent, "ene-chille-app")
}

func TestFetch_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := standings.NewClient(srv.URL).Fetch()
	require.Error(t, err)

	var upstream *standings.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.Status)
}
