package secrets

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/patrickmn/go-cache"
)

const dopplerBaseURL = "https://api.doppler.com/v3/configs/config/secret"

// Manager resolves secrets from Doppler with a process-env fallback.
// Lookups are cached so repeated reads do not hit the Doppler API.
type Manager struct {
	token   string
	project string
	config  string
	client  *http.Client
	cache   *cache.Cache
}

func NewManager(token, project, config string) *Manager {
	return &Manager{
		token:   token,
		project: project,
		config:  config,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New(15*time.Minute, 30*time.Minute),
	}
}

// Get returns the secret value for name. Order of precedence:
// cached value, Doppler (when a token is configured), process env.
func (m *Manager) Get(name string) string {
	if v, found := m.cache.Get(name); found {
		return v.(string)
	}

	if m.token != "" {
		if v, err := m.fetchFromDoppler(name); err == nil && v != "" {
			m.cache.SetDefault(name, v)
			return v
		}
	}

	return os.Getenv(name)
}

type dopplerSecretResponse struct {
	Value struct {
		Raw      string `json:"raw"`
		Computed string `json:"computed"`
	} `json:"value"`
}

func (m *Manager) fetchFromDoppler(name string) (string, error) {
	q := url.Values{}
	q.Set("project", m.project)
	q.Set("config", m.config)
	q.Set("name", name)

	req, err := http.NewRequest("GET", dopplerBaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+m.token)
	req.Header.Set("Accept", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("doppler returned status %d for %s", res.StatusCode, name)
	}

	var payload dopplerSecretResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return "", err
	}

	if payload.Value.Computed != "" {
		return payload.Value.Computed, nil
	}
	return payload.Value.Raw, nil
}
