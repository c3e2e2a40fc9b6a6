package sites

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Options selects which halves of the deployment run. Both false means
// deploy everything.
type Options struct {
	Endpoint   string
	ProjectID  string
	APIKey     string
	SiteID     string
	Domain     string
	StaticOnly bool
	AppOnly    bool
}

// Manager drives the appwrite CLI for site deployments. It shells out
// rather than speaking the REST API; the CLI owns upload chunking and
// build polling.
type Manager struct {
	opts Options
	run  func(name string, args ...string) error
}

func NewManager(opts Options) *Manager {
	return &Manager{
		opts: opts,
		run:  runCommand,
	}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Deploy pushes the static site, the app function, or both.
func (m *Manager) Deploy() error {
	if m.opts.StaticOnly && m.opts.AppOnly {
		return errors.New("--static-only and --app-only are mutually exclusive")
	}

	if err := m.login(); err != nil {
		return errors.Wrap(err, "appwrite login failed")
	}

	if !m.opts.AppOnly {
		if err := m.deployStatic(); err != nil {
			return errors.Wrap(err, "static site deployment failed")
		}
	}

	if !m.opts.StaticOnly {
		if err := m.deployApp(); err != nil {
			return errors.Wrap(err, "app deployment failed")
		}
	}

	if m.opts.Domain != "" {
		color.Green("✔ Deployed. Site should be live at https://%s", m.opts.Domain)
	} else {
		color.Green("✔ Deployed.")
	}
	return nil
}

func (m *Manager) login() error {
	color.Cyan("→ Configuring appwrite CLI (%s)", m.opts.Endpoint)
	if err := m.run("appwrite", "client",
		"--endpoint", m.opts.Endpoint,
		"--project-id", m.opts.ProjectID,
		"--key", m.opts.APIKey,
	); err != nil {
		return err
	}
	return nil
}

func (m *Manager) deployStatic() error {
	color.Cyan("→ Deploying static site (id: %s)", m.opts.SiteID)
	return m.run("appwrite", "sites", "create-deployment",
		"--site-id", m.opts.SiteID,
		"--code", ".",
		"--activate", "true",
	)
}

func (m *Manager) deployApp() error {
	color.Cyan("→ Deploying app function")
	return m.run("appwrite", "push", "functions")
}

// Verify checks the appwrite CLI is installed before anything runs. When
// it is missing, the operator gets the manual deployment steps so the
// rollout can still happen by hand.
func Verify() error {
	return verify(exec.LookPath, os.Stdout)
}

func verify(lookPath func(string) (string, error), out io.Writer) error {
	if _, err := lookPath("appwrite"); err == nil {
		return nil
	}

	fmt.Fprintln(out, "appwrite CLI not found in PATH. Deploy manually:")
	fmt.Fprintln(out, "  1. npm install -g appwrite-cli")
	fmt.Fprintln(out, "  2. appwrite client --endpoint <endpoint> --project-id <project> --key <api-key>")
	fmt.Fprintln(out, "  3. appwrite sites create-deployment --site-id <site-id> --code . --activate true")
	fmt.Fprintln(out, "  4. appwrite push functions")

	return fmt.Errorf("appwrite CLI not found in PATH")
}
