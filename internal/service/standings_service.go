package service

import (
	"github.com/boudmarinus-tech/ene-chille-app/internal/standings"
)

// StandingsService republishes the external league standings as JSON.
// Stateless; every call fetches the upstream page again.
type StandingsService struct {
	client *standings.Client
}

func NewStandingsService(client *standings.Client) *StandingsService {
	return &StandingsService{client: client}
}

func (s *StandingsService) Get() (*standings.Table, error) {
	return s.client.Fetch()
}
