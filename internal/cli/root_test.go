package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/infohub/infohub-api/internal/core/domain"
	"github.com/infohub/infohub-api/pkg/logger"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("LOG_FILE", "")
	logger.Reset()
	t.Cleanup(logger.Reset)

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestUsersCreate(t *testing.T) {
	out, err := run(t, "users", "create", "--username", "root", "--password", "S3cretPass", "--email", "root@example.com", "--role", "admin")
	if err != nil {
		t.Fatalf("users create returned error: %v", err)
	}
	if !strings.HasPrefix(out, "created admin user root (") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestUsersCreate_InvalidRole(t *testing.T) {
	_, err := run(t, "users", "create", "--username", "root", "--password", "S3cretPass", "--email", "root@example.com", "--role", "owner")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUsersCreate_MissingFlags(t *testing.T) {
	if _, err := run(t, "users", "create", "--username", "root"); err == nil {
		t.Fatalf("expected error for missing required flags")
	}
}

func TestMigrate_Memory(t *testing.T) {
	out, err := run(t, "migrate")
	if err != nil {
		t.Fatalf("migrate returned error: %v", err)
	}
	if out != "memory store is up to date\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRoot_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("STORE_DRIVER", "memory")
	logger.Reset()
	t.Cleanup(logger.Reset)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"migrate"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected config error without JWT_SECRET")
	}
}
