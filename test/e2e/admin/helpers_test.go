package admin_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/intlakaa/backoffice/pkg/adminsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for back-office end-to-end tests.
 * This includes container setup, login helpers, and assertions.
 */

const (
	testImageName = "intlakaa-backoffice-test:latest"

	ownerName     = "Owner"
	ownerEmail    = "owner@intlakaa.test"
	ownerPassword = "Owner123!"
)

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Back-Office Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Back-Office Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/backoffice/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupBackofficeContainer starts the back-office service in a container and
// returns the base URL. The container runs without SMTP settings, so invite
// tokens come back in API responses, and with the owner identity seeded from
// the environment.
func setupBackofficeContainer(t *testing.T) (string, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"JWT_SECRET":          "e2e-test-secret-at-least-32-bytes-long!",
			"ADMIN_ISSUER":        "intlakaa-backoffice",
			"ADMIN_DATABASE_FILE": "/tmp/backoffice.db",
			"ADMIN_PEPPER_FILE":   "/tmp/pepper",
			"OWNER_NAME":          ownerName,
			"OWNER_EMAIL":         ownerEmail,
			"OWNER_PASSWORD":      ownerPassword,
			"ENV":                 "test",
			"LOG_LEVEL":           "info",
			"LOG_FORMAT":          "json",
		},
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// loginOwner authenticates as the seeded owner and returns a client with the
// session token installed.
func loginOwner(t *testing.T, baseURL string) *adminsdk.Client {
	t.Helper()

	client := adminsdk.NewClient(baseURL)
	resp, err := client.Login(t.Context(), ownerEmail, ownerPassword)
	require.NoError(t, err, "Owner login should succeed")
	require.NotEmpty(t, resp.Token, "Session token should not be empty")
	require.Equal(t, "owner", resp.Admin.Role, "Seeded identity should carry the owner role")

	return client
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *adminsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertAPIError checks that an error is an APIError with the given code.
func assertAPIError(t *testing.T, err error, code string, context string) {
	t.Helper()
	require.Error(t, err, context)

	var apiErr *adminsdk.APIError
	require.ErrorAs(t, err, &apiErr, "Should return APIError")
	require.Equal(t, code, apiErr.Code, "%s - unexpected error code", context)
}

// sendDevModeInvite mints an invite and returns the token from the dev-mode
// response body.
func sendDevModeInvite(t *testing.T, owner *adminsdk.Client, email string) *adminsdk.InviteResponse {
	t.Helper()

	resp, err := owner.SendInvite(t.Context(), email)
	require.NoError(t, err)
	require.NotNil(t, resp)
	require.NotEmpty(t, resp.Token, "Without SMTP the invite token should come back in the response")
	require.NotZero(t, resp.ExpiresAt, "Expiry should be set")

	return resp
}
