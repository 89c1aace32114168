package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Match struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
	CreatedAt string `json:"createdAt"`
}

type RankedPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type StatsRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Goals   int    `json:"goals"`
	Assists int    `json:"assists"`
}

type DonkeyReason struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type MatchSummary struct {
	MotmRanking   []RankedPlayer `json:"motmRanking"`
	DonkeyRanking []RankedPlayer `json:"donkeyRanking"`
	StatsRanking  []StatsRow     `json:"statsRanking"`
	DonkeyReasons []DonkeyReason `json:"donkeyReasons"`
}

// GetRoster fetches the full team roster
func (c *APIClient) GetRoster() ([]Player, error) {
	resp, err := c.get("/roster")
	if err != nil {
		return nil, fmt.Errorf("roster request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("roster failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var players []Player
	if err := json.NewDecoder(resp.Body).Decode(&players); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return players, nil
}

// CreateMatch creates a new match night
func (c *APIClient) CreateMatch(name string) (*Match, error) {
	body := map[string]string{"name": name}

	resp, err := c.post("/matches", body)
	if err != nil {
		return nil, fmt.Errorf("create match request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create match failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var match Match
	if err := json.NewDecoder(resp.Body).Decode(&match); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &match, nil
}

// GetMatch fetches a match by ID or short code
func (c *APIClient) GetMatch(idOrCode string) (*Match, error) {
	resp, err := c.get("/matches/" + idOrCode)
	if err != nil {
		return nil, fmt.Errorf("get match request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get match failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var match Match
	if err := json.NewDecoder(resp.Body).Decode(&match); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &match, nil
}

// SaveStats records a player's goals and assists for a match
func (c *APIClient) SaveStats(matchID, rosterID string, goals, assists int) error {
	body := map[string]interface{}{
		"rosterId": rosterID,
		"goals":    goals,
		"assists":  assists,
	}

	resp, err := c.post("/matches/"+matchID+"/stats", body)
	if err != nil {
		return fmt.Errorf("save stats request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("save stats failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// SubmitMotm casts a voter's 3-2-1 man-of-the-match ballot
func (c *APIClient) SubmitMotm(matchID, voterID, first, second, third string) error {
	body := map[string]string{
		"voterId": voterID,
		"first":   first,
		"second":  second,
		"third":   third,
	}

	resp, err := c.post("/matches/"+matchID+"/votes/motm", body)
	if err != nil {
		return fmt.Errorf("motm vote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("motm vote failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// SubmitDonkey casts a voter's donkey-of-the-match pick
func (c *APIClient) SubmitDonkey(matchID, voterID, candidateID, reason string) error {
	body := map[string]string{
		"voterId":     voterID,
		"candidateId": candidateID,
		"reason":      reason,
	}

	resp, err := c.post("/matches/"+matchID+"/votes/donkey", body)
	if err != nil {
		return fmt.Errorf("donkey vote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("donkey vote failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// SetAttendance answers the attendance question for a player
func (c *APIClient) SetAttendance(matchID, rosterID, status string) error {
	body := map[string]string{
		"rosterId": rosterID,
		"status":   status,
	}

	resp, err := c.put("/matches/"+matchID+"/attendance", body)
	if err != nil {
		return fmt.Errorf("attendance request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("attendance failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// GetResults fetches the aggregated vote results for a match
func (c *APIClient) GetResults(matchID string) (*MatchSummary, error) {
	resp, err := c.get("/matches/" + matchID + "/results")
	if err != nil {
		return nil, fmt.Errorf("results request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("results failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var summary MatchSummary
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &summary, nil
}

// HTTP helpers

func (c *APIClient) get(path string) (*http.Response, error) {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func (c *APIClient) post(path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func (c *APIClient) put(path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest("PUT", c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
