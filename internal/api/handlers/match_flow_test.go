package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/boudmarinus-tech/ene-chille-app/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
	CreatedAt string `json:"createdAt"`
}

type rankedPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type matchSummary struct {
	MotmRanking   []rankedPlayer `json:"motmRanking"`
	DonkeyRanking []rankedPlayer `json:"donkeyRanking"`
}

type attendanceSummary struct {
	Yes        []string `json:"yes"`
	No         []string `json:"no"`
	Maybe      []string `json:"maybe"`
	NoResponse []string `json:"noResponse"`
}

// TestMatchFlow walks one full match night over the HTTP API: create a
// match, join it by short code, record stats, cast ballots and read the
// aggregated results and attendance back.
func TestMatchFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := testutil.NewTestServer(t)
	players := testutil.SeedRoster(t, ts.DB.DB, "Alice", "Bob", "Carol", "Dirk")
	alice, bob, carol, dirk := players[0], players[1], players[2], players[3]

	// Create the match
	resp := postJSON(t, ts.APIURL("/matches"), map[string]string{"name": "vs Cafe Sport"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var match matchResponse
	decodeBody(t, resp, &match)
	require.NotEmpty(t, match.ShortCode)

	// The short code resolves to the same match
	resp = getURL(t, ts.APIURL("/matches/"+match.ShortCode))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var joined matchResponse
	decodeBody(t, resp, &joined)
	assert.Equal(t, match.ID, joined.ID)

	// Voting before saving own stats is rejected
	resp = postJSON(t, ts.APIURL("/matches/"+match.ID+"/votes/motm"), map[string]string{
		"voterId": alice.ID.String(),
		"first":   bob.ID.String(),
		"second":  carol.ID.String(),
		"third":   dirk.ID.String(),
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	resp.Body.Close()

	// Everyone records stats, via the short code route
	for _, p := range players {
		resp = postJSON(t, ts.APIURL("/matches/"+match.ShortCode+"/stats"), map[string]interface{}{
			"rosterId": p.ID.String(),
			"goals":    1,
			"assists":  0,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	// Alice and Bob both put Carol first
	for _, voter := range []struct{ id, first, second, third string }{
		{alice.ID.String(), carol.ID.String(), bob.ID.String(), dirk.ID.String()},
		{bob.ID.String(), carol.ID.String(), alice.ID.String(), dirk.ID.String()},
	} {
		resp = postJSON(t, ts.APIURL("/matches/"+match.ID+"/votes/motm"), map[string]string{
			"voterId": voter.id,
			"first":   voter.first,
			"second":  voter.second,
			"third":   voter.third,
		})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()
	}

	// Alice names Dirk the donkey
	resp = postJSON(t, ts.APIURL("/matches/"+match.ID+"/votes/donkey"), map[string]string{
		"voterId":     alice.ID.String(),
		"candidateId": dirk.ID.String(),
		"reason":      "own goal from the halfway line",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Results reflect the ballots
	resp = getURL(t, ts.APIURL("/matches/"+match.ShortCode+"/results"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary matchSummary
	decodeBody(t, resp, &summary)
	require.NotEmpty(t, summary.MotmRanking)
	assert.Equal(t, "Carol", summary.MotmRanking[0].Name)
	assert.Equal(t, 6, summary.MotmRanking[0].Score)
	require.NotEmpty(t, summary.DonkeyRanking)
	assert.Equal(t, "Dirk", summary.DonkeyRanking[0].Name)
	assert.Equal(t, 1, summary.DonkeyRanking[0].Score)

	// Attendance answer and summary
	resp = putJSON(t, ts.APIURL("/matches/"+match.ID+"/attendance"), map[string]string{
		"rosterId": alice.ID.String(),
		"status":   "yes",
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = getURL(t, ts.APIURL("/matches/"+match.ID+"/attendance"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var att attendanceSummary
	decodeBody(t, resp, &att)
	assert.Equal(t, []string{"Alice"}, att.Yes)
	assert.ElementsMatch(t, []string{"Bob", "Carol", "Dirk"}, att.NoResponse)

	// Unknown match yields 404 on sub-routes too
	resp = getURL(t, ts.APIURL("/matches/ZZZZZZ/results"))
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func putJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getURL(t *testing.T, url string) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
