package sites

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func recordedManager(opts Options) (*Manager, *[]string) {
	m := NewManager(opts)
	var calls []string
	m.run = func(name string, args ...string) error {
		calls = append(calls, name+" "+strings.Join(args, " "))
		return nil
	}
	return m, &calls
}

func TestDeployBothHalvesByDefault(t *testing.T) {
	m, calls := recordedManager(Options{
		Endpoint:  "https://cloud.appwrite.io/v1",
		ProjectID: "proj",
		APIKey:    "key",
		SiteID:    "site",
	})

	err := m.Deploy()
	assert.NoError(t, err)

	joined := strings.Join(*calls, "\n")
	assert.Contains(t, joined, "appwrite client")
	assert.Contains(t, joined, "sites create-deployment")
	assert.Contains(t, joined, "push functions")
}

func TestDeployStaticOnlySkipsApp(t *testing.T) {
	m, calls := recordedManager(Options{SiteID: "site", StaticOnly: true})

	err := m.Deploy()
	assert.NoError(t, err)

	joined := strings.Join(*calls, "\n")
	assert.Contains(t, joined, "sites create-deployment")
	assert.NotContains(t, joined, "push functions")
}

func TestDeployAppOnlySkipsStatic(t *testing.T) {
	m, calls := recordedManager(Options{AppOnly: true})

	err := m.Deploy()
	assert.NoError(t, err)

	joined := strings.Join(*calls, "\n")
	assert.NotContains(t, joined, "sites create-deployment")
	assert.Contains(t, joined, "push functions")
}

func TestDeployRejectsConflictingFlags(t *testing.T) {
	m, calls := recordedManager(Options{StaticOnly: true, AppOnly: true})

	err := m.Deploy()
	assert.Error(t, err)
	assert.Empty(t, *calls)
}

func TestVerifyMissingCLIPrintsManualSteps(t *testing.T) {
	var out bytes.Buffer
	err := verify(func(string) (string, error) {
		return "", errors.New("not found")
	}, &out)

	assert.Error(t, err)
	assert.Contains(t, out.String(), "npm install -g appwrite-cli")
	assert.Contains(t, out.String(), "appwrite client --endpoint")
	assert.Contains(t, out.String(), "sites create-deployment")
	assert.Contains(t, out.String(), "push functions")
}

func TestVerifyInstalledCLIStaysQuiet(t *testing.T) {
	var out bytes.Buffer
	err := verify(func(string) (string, error) {
		return "/usr/local/bin/appwrite", nil
	}, &out)

	assert.NoError(t, err)
	assert.Empty(t, out.String())
}
